package conn

// EventType identifies what a connection event carries.
type EventType int

const (
	// Connected is emitted when the websocket handshake succeeds,
	// including after an automatic reconnect.
	Connected EventType = iota
	// Disconnected is emitted when the connection drops. The client
	// keeps retrying in the background; Text carries the cause.
	Disconnected
	// Error is emitted for failures the user should see in the log pane.
	Error
	// Message is a chat message from a user (possibly ourselves, echoed
	// back by the server).
	Message
	// UserJoined announces a user entering the room.
	UserJoined
	// UserLeft announces a user leaving the room.
	UserLeft
	// RoomReady is sent once after join, when history replay is done
	// and the roster snapshot is complete.
	RoomReady
)

func (t EventType) String() string {
	switch t {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	case Error:
		return "error"
	case Message:
		return "message"
	case UserJoined:
		return "user_joined"
	case UserLeft:
		return "user_left"
	case RoomReady:
		return "room_ready"
	default:
		return "unknown"
	}
}

// Event is what the client delivers to the UI. Name and Text are only
// meaningful for the types that carry them.
type Event struct {
	Type EventType
	Name string // sender or joining/leaving user
	Text string // message body or error description
}
