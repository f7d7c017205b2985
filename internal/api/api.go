// Package api holds the small HTTP surface of the chat server that is
// not the websocket: room creation and the version endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/parleyhq/parley/internal/errors"
	"github.com/parleyhq/parley/internal/logger"
)

const requestTimeout = 10 * time.Second

var httpClient = &http.Client{Timeout: requestTimeout}

// Room is the server's representation of a chat room.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateRoom registers a new room on the server.
func CreateRoom(ctx context.Context, server, name string) (Room, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return Room{}, errors.RoomCreateFailed(name, err)
	}

	url := strings.TrimSuffix(server, "/") + "/api/rooms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Room{}, errors.RoomCreateFailed(name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Room{}, errors.RoomCreateFailed(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Room{}, errors.UnexpectedStatus(errors.Op("api.CreateRoom"), resp.StatusCode)
	}

	var room Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return Room{}, errors.E(errors.Op("api.CreateRoom"), errors.KindProtocol, "bad response body", err)
	}
	logger.Info("api: created room %s (%s)", room.Name, room.ID)
	return room, nil
}

// versionResponse is the body of GET /api/version.
type versionResponse struct {
	Version string `json:"version"`
}

// CheckUpdate asks the server for its latest client version and reports
// whether it is newer than current. Callers treat errors as "no notice".
func CheckUpdate(ctx context.Context, server, current string) (latest string, available bool, err error) {
	url := strings.TrimSuffix(server, "/") + "/api/version"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, errors.E(errors.Op("api.CheckUpdate"), errors.KindNetwork, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", false, errors.E(errors.Op("api.CheckUpdate"), errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, errors.UnexpectedStatus(errors.Op("api.CheckUpdate"), resp.StatusCode)
	}

	var vr versionResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", false, errors.E(errors.Op("api.CheckUpdate"), errors.KindProtocol, "bad response body", err)
	}
	return vr.Version, newerVersion(vr.Version, current), nil
}

// newerVersion compares two dotted numeric versions (a leading "v" is
// tolerated). Anything unparseable compares as not newer.
func newerVersion(latest, current string) bool {
	l, lok := parseVersion(latest)
	c, cok := parseVersion(current)
	if !lok || !cok {
		return false
	}
	for i := 0; i < 3; i++ {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parseVersion(v string) ([3]int, bool) {
	var out [3]int
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" || v == "dev" {
		return out, false
	}
	parts := strings.SplitN(v, ".", 4)
	for i := 0; i < len(parts) && i < 3; i++ {
		// Tolerate suffixes like "2-rc1" on the last component.
		num := parts[i]
		if idx := strings.IndexFunc(num, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
			num = num[:idx]
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// ServerReachable does a quick health probe, used before the first
// dial to give a friendlier startup error.
func ServerReachable(ctx context.Context, server string) error {
	url := strings.TrimSuffix(server, "/") + "/api/version"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.E(errors.Op("api.ServerReachable"), errors.KindInvalid, fmt.Sprintf("bad server URL %q", server), err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.E(errors.Op("api.ServerReachable"), errors.KindNetwork, fmt.Sprintf("cannot reach %s", server), err)
	}
	resp.Body.Close()
	return nil
}
