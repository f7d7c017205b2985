package chat

import (
	"sort"
	"strings"
)

// Roster is the set of display names currently present in the room.
// Storage is unordered; Names renders a stable order for display.
type Roster struct {
	names map[string]struct{}
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{names: make(map[string]struct{})}
}

// Add inserts name. Adding a present name is a no-op.
func (r *Roster) Add(name string) {
	if name == "" {
		return
	}
	r.names[name] = struct{}{}
}

// Remove deletes name. Removing an absent name is a no-op.
func (r *Roster) Remove(name string) {
	delete(r.names, name)
}

// Has reports whether name is present.
func (r *Roster) Has(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns the number of users present.
func (r *Roster) Len() int {
	return len(r.names)
}

// Names returns all names sorted case-insensitively (case-sensitive
// tie-break) so the rendered roster is stable across renders.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}

// Matching returns the names whose lowercase form starts with the
// lowercased fragment, in Names order. Used for mention autocomplete.
func (r *Roster) Matching(fragment string) []string {
	frag := strings.ToLower(fragment)
	var out []string
	for _, n := range r.Names() {
		if strings.HasPrefix(strings.ToLower(n), frag) {
			out = append(out, n)
		}
	}
	return out
}
