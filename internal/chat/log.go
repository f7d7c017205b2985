package chat

// DefaultCapacity is the maximum number of records a log retains by
// default. Oldest records are dropped from the front once exceeded.
const DefaultCapacity = 500

// Log is a capacity-bounded, append-only sequence of message records.
// Insertion order is arrival order; records are never reordered. The
// only in-place mutation is the pending→chat replacement in Confirm.
//
// Log is not safe for concurrent use. The app model owns it and all
// mutations happen on the Bubble Tea update loop.
type Log struct {
	records  []Record
	capacity int
}

// NewLog returns an empty log with DefaultCapacity.
func NewLog() *Log {
	return NewLogWithCapacity(DefaultCapacity)
}

// NewLogWithCapacity returns an empty log bounded to cap records.
func NewLogWithCapacity(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity}
}

// Len returns the number of retained records.
func (l *Log) Len() int {
	return len(l.records)
}

// At returns the record at index i (0 = oldest).
func (l *Log) At(i int) Record {
	return l.records[i]
}

// Records returns the retained records, oldest first. The slice is a
// view into the log; callers must not mutate it.
func (l *Log) Records() []Record {
	return l.records
}

// Append adds rec to the end and enforces the capacity bound. It
// returns the number of records dropped from the front so the caller
// can adjust scroll state.
func (l *Log) Append(rec Record) int {
	l.records = append(l.records, rec)
	return l.Trim()
}

// AppendPending appends a pending record for an outgoing message and
// returns the drop count, like Append. The caller is expected to snap
// the viewport to the bottom afterwards.
func (l *Log) AppendPending(name, text string) int {
	return l.Append(NewPending(name, text))
}

// Confirm resolves a server-confirmed message against the log. It
// searches from the newest record backward for a pending record with
// matching text and replaces it in place with a chat record carrying
// the confirmed name and stamp. Newest-first search is deliberate: when
// duplicate texts are in flight, the most recently sent one is matched
// first. If no pending record matches, the message is appended as a
// new chat record.
//
// It returns whether a replacement happened and how many records were
// dropped by the append path (zero on replacement).
func (l *Log) Confirm(name, text, stamp string) (replaced bool, dropped int) {
	for i := len(l.records) - 1; i >= 0; i-- {
		r := l.records[i]
		if r.Kind == KindPending && r.Text == text {
			l.records[i] = NewChat(name, text, stamp)
			return true, 0
		}
	}
	return false, l.Append(NewChat(name, text, stamp))
}

// Trim enforces the capacity bound, dropping the oldest excess records
// from the front, and returns the number dropped.
func (l *Log) Trim() int {
	excess := len(l.records) - l.capacity
	if excess <= 0 {
		return 0
	}
	l.records = append(l.records[:0], l.records[excess:]...)
	return excess
}
