package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/parleyhq/parley/internal/api"
	"github.com/parleyhq/parley/internal/conn"
	"github.com/parleyhq/parley/internal/logger"
)

// ConnEventMsg delivers one connection event into Update.
type ConnEventMsg struct {
	Event conn.Event
}

// connClosedMsg is sent when the event channel closes (client shut down).
type connClosedMsg struct{}

// sendFailedMsg reports a failed outbound write. It is synthesized by
// the submit command, not read from the event channel, so handling it
// must not re-arm the listener.
type sendFailedMsg struct {
	err error
}

// UpdateCheckMsg carries the result of the background version check.
type UpdateCheckMsg struct {
	Latest    string
	Available bool
}

// listenForEvent creates a command that waits for the next connection
// event. Update re-arms it after every delivery, so exactly one
// listener goroutine exists at a time.
func (m *Model) listenForEvent() tea.Cmd {
	ch := m.client.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return connClosedMsg{}
		}
		return ConnEventMsg{Event: ev}
	}
}

// checkUpdate asks the server for its latest client version. Failures
// are logged and swallowed; the notice simply never appears.
func (m *Model) checkUpdate() tea.Cmd {
	server := m.cfg.GetServer()
	version := m.version
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		latest, available, err := api.CheckUpdate(ctx, server, version)
		if err != nil {
			logger.Debug("app: update check failed: %v", err)
			return nil
		}
		return UpdateCheckMsg{Latest: latest, Available: available}
	}
}
