package chat

// Mode describes whether the viewport follows new arrivals or is
// pinned to a historical window.
type Mode int

const (
	// ModeNormal means the viewport shows the newest content and
	// auto-follows arrivals (live-tail).
	ModeNormal Mode = iota
	// ModeScrolling means the viewport is pinned to history and does
	// not move when new messages arrive.
	ModeScrolling
)

func (m Mode) String() string {
	if m == ModeScrolling {
		return "scrolling"
	}
	return "normal"
}

// Scroll tracks the viewport offset into the message log at message
// granularity: Position is the count of messages held back from the
// bottom. Position == 0 is live-tail mode.
//
// Invariant: 0 <= Position <= MaxScroll(total, capacity), and
// Mode == ModeNormal exactly when Position == 0.
type Scroll struct {
	Position int
	Mode     Mode
}

// MaxScroll returns the largest valid scroll position for a log of
// total messages rendered with the given visible capacity.
func MaxScroll(total, capacity int) int {
	m := total - capacity
	if m < 0 {
		return 0
	}
	return m
}

// VisibleCapacity approximates how many messages fit in contentRows
// terminal rows without a full layout pass, dividing by an average
// lines-per-message factor (1.2 for very small viewports, else 1.5).
// The estimate can be off by a row for unusually tall wrapped
// messages; that is accepted.
func VisibleCapacity(contentRows int) int {
	if contentRows < 1 {
		contentRows = 1
	}
	factor := 1.5
	if contentRows < 10 {
		factor = 1.2
	}
	c := int(float64(contentRows) / factor)
	if c < 1 {
		c = 1
	}
	return c
}

// set clamps pos into [0, MaxScroll] and keeps Mode in sync.
func (s *Scroll) set(pos, total, capacity int) {
	max := MaxScroll(total, capacity)
	if pos > max {
		pos = max
	}
	if pos < 0 {
		pos = 0
	}
	s.Position = pos
	if pos == 0 {
		s.Mode = ModeNormal
	} else {
		s.Mode = ModeScrolling
	}
}

// Up scrolls one message toward history.
func (s *Scroll) Up(total, capacity int) {
	s.set(s.Position+1, total, capacity)
}

// Down scrolls one message toward the present.
func (s *Scroll) Down(total, capacity int) {
	s.set(s.Position-1, total, capacity)
}

// PageUp scrolls by one viewport of messages (minus one for overlap).
func (s *Scroll) PageUp(total, capacity int) {
	s.set(s.Position+pageStep(capacity), total, capacity)
}

// PageDown scrolls toward the present by one viewport of messages.
func (s *Scroll) PageDown(total, capacity int) {
	s.set(s.Position-pageStep(capacity), total, capacity)
}

func pageStep(capacity int) int {
	step := capacity - 1
	if step < 1 {
		step = 1
	}
	return step
}

// ToTop jumps to the oldest retained message.
func (s *Scroll) ToTop(total, capacity int) {
	s.set(MaxScroll(total, capacity), total, capacity)
}

// ToBottom returns to live-tail mode. Called after every outgoing send.
func (s *Scroll) ToBottom() {
	s.Position = 0
	s.Mode = ModeNormal
}

// Clamp re-validates the position against new bounds, e.g. after a
// terminal resize changed the visible capacity.
func (s *Scroll) Clamp(total, capacity int) {
	s.set(s.Position, total, capacity)
}

// Anchor keeps the viewport pinned to the same logical messages after
// the log mutated: appended new records arrived at the bottom (the
// window must not move while scrolled, so the offset grows by that
// many), and dropped records were trimmed from the front (the offset
// shrinks so it stays anchored as the log slides). In live-tail mode
// appends are followed, not compensated.
func (s *Scroll) Anchor(appended, dropped int) {
	if s.Position > 0 {
		s.Position += appended
	}
	s.Position -= dropped
	if s.Position <= 0 {
		s.Position = 0
		s.Mode = ModeNormal
	} else {
		s.Mode = ModeScrolling
	}
}
