package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parleyhq/parley/internal/errors"
)

func TestCreateRoom(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/rooms" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if body["name"] != "general" {
			t.Errorf("room name = %q, want general", body["name"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Room{ID: "r1", Name: "general"})
	}))
	defer ts.Close()

	room, err := CreateRoom(context.Background(), ts.URL, "general")
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.ID != "r1" || room.Name != "general" {
		t.Errorf("room = %+v", room)
	}
}

func TestCreateRoomServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer ts.Close()

	_, err := CreateRoom(context.Background(), ts.URL, "taken")
	if err == nil {
		t.Fatal("expected error for conflict status")
	}
	if !errors.Is(err, errors.KindProtocol) {
		t.Errorf("kind = %v, want protocol", errors.GetKind(err))
	}
}

func TestCheckUpdate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"version": "1.4.0"})
	}))
	defer ts.Close()

	tests := []struct {
		current       string
		wantAvailable bool
	}{
		{"1.3.9", true},
		{"1.4.0", false},
		{"2.0.0", false},
		{"dev", false},
	}
	for _, tt := range tests {
		latest, available, err := CheckUpdate(context.Background(), ts.URL, tt.current)
		if err != nil {
			t.Fatalf("CheckUpdate(%q): %v", tt.current, err)
		}
		if latest != "1.4.0" {
			t.Errorf("latest = %q", latest)
		}
		if available != tt.wantAvailable {
			t.Errorf("current %q: available = %v, want %v", tt.current, available, tt.wantAvailable)
		}
	}
}

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.3", "1.2.2", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.3.0", false},
		{"2.0.0", "1.9.9", true},
		{"v1.1.0", "1.0.0", true},
		{"1.10.0", "1.9.0", true}, // numeric, not lexicographic
		{"garbage", "1.0.0", false},
		{"1.0.0", "dev", false},
		{"1.2.4-rc1", "1.2.3", true},
	}
	for _, tt := range tests {
		if got := newerVersion(tt.latest, tt.current); got != tt.want {
			t.Errorf("newerVersion(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}
