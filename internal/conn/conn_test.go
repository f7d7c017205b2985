package conn

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestRoomURL(t *testing.T) {
	tests := []struct {
		server string
		room   string
		want   string
	}{
		{"http://localhost:8080", "lobby", "ws://localhost:8080/rooms/lobby/ws?name=alice"},
		{"https://chat.example.com", "lobby", "wss://chat.example.com/rooms/lobby/ws?name=alice"},
		{"https://chat.example.com/", "lobby", "wss://chat.example.com/rooms/lobby/ws?name=alice"},
		{"http://host/base", "dev talk", "ws://host/base/rooms/dev%20talk/ws?name=alice"},
	}
	for _, tt := range tests {
		got, err := roomURL(tt.server, tt.room, "alice")
		if err != nil {
			t.Fatalf("roomURL(%q, %q): %v", tt.server, tt.room, err)
		}
		if got != tt.want {
			t.Errorf("roomURL(%q, %q) = %q, want %q", tt.server, tt.room, got, tt.want)
		}
	}
}

func TestRoomURLRejectsBadScheme(t *testing.T) {
	if _, err := roomURL("ftp://host", "lobby", "alice"); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

// echoServer upgrades, announces ready, then echoes message frames back.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer ws.Close()

		name := r.URL.Query().Get("name")
		ws.WriteJSON(frame{Type: "join", Name: name})
		ws.WriteJSON(frame{Type: "ready"})

		for {
			var f frame
			if err := ws.ReadJSON(&f); err != nil {
				return
			}
			if f.Type == "message" {
				ws.WriteJSON(f)
			}
		}
	}))
}

func waitFor(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %v", want)
			}
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestClientRoundTrip(t *testing.T) {
	ts := echoServer(t)
	defer ts.Close()

	client, err := Dial(ts.URL, "lobby", "alice")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	waitFor(t, client.Events(), Connected)
	joined := waitFor(t, client.Events(), UserJoined)
	if joined.Name != "alice" {
		t.Errorf("join name = %q, want alice", joined.Name)
	}
	waitFor(t, client.Events(), RoomReady)

	if err := client.Send("hello room"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	msg := waitFor(t, client.Events(), Message)
	if msg.Name != "alice" || msg.Text != "hello room" {
		t.Errorf("echoed message = %+v", msg)
	}
}

func TestClientIgnoresMalformedFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		// Unknown type, then frames missing required fields, then one
		// well-formed message.
		ws.WriteJSON(frame{Type: "banana"})
		ws.WriteJSON(frame{Type: "message"})
		ws.WriteJSON(frame{Type: "join"})
		ws.WriteJSON(frame{Type: "message", Name: "bob", Text: "ok"})

		var f frame
		for ws.ReadJSON(&f) == nil {
		}
	}))
	defer ts.Close()

	client, err := Dial(ts.URL, "lobby", "alice")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	// The only message event delivered is the well-formed one.
	msg := waitFor(t, client.Events(), Message)
	if msg.Name != "bob" || msg.Text != "ok" {
		t.Errorf("message = %+v", msg)
	}
}

// Send is called from per-message goroutines while the ping loop writes
// on its own; all writes must come out intact and error-free.
func TestClientSendConcurrent(t *testing.T) {
	ts := echoServer(t)
	defer ts.Close()

	client, err := Dial(ts.URL, "lobby", "alice")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()
	waitFor(t, client.Events(), RoomReady)

	const workers, perWorker = 8, 25
	errs := make(chan error, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				errs <- client.Send("burst")
			}
		}()
	}

	// Drain echoes while the senders run so the event buffer never fills.
	got := 0
	deadline := time.After(5 * time.Second)
	for got < workers*perWorker {
		select {
		case ev := <-client.Events():
			if ev.Type == Message {
				got++
			}
		case <-deadline:
			t.Fatalf("received %d of %d echoes", got, workers*perWorker)
		}
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("Send: %v", err)
		}
	}
}

func TestClientCloseIdempotent(t *testing.T) {
	ts := echoServer(t)
	defer ts.Close()

	client, err := Dial(ts.URL, "lobby", "alice")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	client.Close()
	client.Close() // second close must not panic

	if err := client.Send("after close"); err == nil {
		t.Error("Send after Close succeeded")
	}
}
