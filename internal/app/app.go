// Package app wires the chat engine, the connection and the UI regions
// into the Bubble Tea model. All state mutation happens in Update; the
// connection goroutines reach the model only through typed messages.
package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/parleyhq/parley/internal/chat"
	"github.com/parleyhq/parley/internal/clipboard"
	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/conn"
	"github.com/parleyhq/parley/internal/keys"
	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/notification"
	"github.com/parleyhq/parley/internal/ui"
)

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg     *config.Config
	version string
	room    string

	client *conn.Client

	log    *chat.Log
	scroll chat.Scroll
	roster *chat.Roster

	header   *ui.Header
	messages *ui.MessagePane
	users    *ui.RosterPane
	input    *ui.Input
	footer   *ui.Footer

	width  int
	height int
	ready  bool // first WindowSizeMsg seen
}

// New creates the application model. The client must already be dialed.
func New(cfg *config.Config, client *conn.Client, room, version string) *Model {
	return &Model{
		cfg:      cfg,
		version:  version,
		room:     room,
		client:   client,
		log:      chat.NewLog(),
		roster:   chat.NewRoster(),
		header:   ui.NewHeader(),
		messages: ui.NewMessagePane(),
		users:    ui.NewRosterPane(),
		input:    ui.NewInput(),
		footer:   ui.NewFooter(),
	}
}

// Init starts the connection listener and the background update check.
func (m *Model) Init() tea.Cmd {
	m.header.SetRoom(m.room)
	return tea.Batch(
		m.listenForEvent(),
		m.checkUpdate(),
	)
}

// Update is the single dispatch point for all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.relayout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case ConnEventMsg:
		cmd := m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, m.listenForEvent())

	case connClosedMsg:
		return m, nil

	case sendFailedMsg:
		m.appendLocal(chat.NewError("send failed: " + msg.err.Error()))
		return m, nil

	case UpdateCheckMsg:
		m.handleUpdateCheck(msg)
		return m, nil
	}
	return m, nil
}

// relayout recomputes region sizes from the terminal dimensions.
func (m *Model) relayout() {
	vc := ui.Layout(m.width, m.height, m.header.HasNotice())
	m.header.SetWidth(vc.TerminalWidth)
	m.messages.SetSize(vc.MessageWidth, vc.ContentHeight)
	m.users.SetSize(vc.RosterWidth, vc.ContentHeight)
	m.input.SetWidth(vc.TerminalWidth)
	m.footer.SetWidth(vc.TerminalWidth)
	m.scroll.Clamp(m.log.Len(), m.messages.Capacity())
}

// handleKey is the key dispatch table.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	total := m.log.Len()
	capacity := m.messages.Capacity()

	switch msg.String() {
	case keys.CtrlC:
		return m, m.quit()

	// Escape dismisses the innermost thing first: suggestions, then
	// scrollback, then the program itself.
	case keys.Escape:
		if m.input.HasSuggestions() {
			m.input.ClearSuggestions()
			return m, nil
		}
		if m.scroll.Mode == chat.ModeScrolling {
			m.scroll.ToBottom()
			return m, nil
		}
		return m, m.quit()

	case keys.Enter:
		if m.input.HasSuggestions() {
			m.input.AcceptSuggestion()
			return m, nil
		}
		return m, m.submit()

	case keys.Tab:
		if m.input.HasSuggestions() {
			m.input.CycleSuggestion()
		}
		return m, nil

	case keys.Up:
		m.scroll.Up(total, capacity)
		return m, nil

	case keys.Down:
		m.scroll.Down(total, capacity)
		return m, nil

	case keys.PgUp:
		m.scroll.PageUp(total, capacity)
		return m, nil

	case keys.PgDown:
		m.scroll.PageDown(total, capacity)
		return m, nil

	case keys.Home:
		m.scroll.ToTop(total, capacity)
		return m, nil

	case keys.End:
		m.scroll.ToBottom()
		return m, nil

	case keys.CtrlY:
		m.copyLastMessage()
		return m, nil
	}

	// Everything else edits the input.
	cmd := m.input.Update(msg)
	m.input.RefreshSuggestions(m.roster)
	return m, cmd
}

// submit sends the input text: pending echo first, then the wire write.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.input.Reset()

	// Sending snaps the viewport back to live tail, so the drop count
	// needs no anchoring.
	m.log.AppendPending(m.cfg.GetDisplayName(), text)
	m.scroll.ToBottom()

	client := m.client
	return func() tea.Msg {
		if err := client.Send(text); err != nil {
			logger.Error("app: send failed: %v", err)
			return sendFailedMsg{err: err}
		}
		return nil
	}
}

// handleEvent applies one connection event to the engine state.
func (m *Model) handleEvent(ev conn.Event) tea.Cmd {
	var appended, dropped int
	var cmd tea.Cmd

	switch ev.Type {
	case conn.Connected:
		m.header.SetConnected(true)
		dropped = m.log.Append(chat.NewInfo("connected"))
		appended = 1

	case conn.Disconnected:
		m.header.SetConnected(false)
		dropped = m.log.Append(chat.NewError("disconnected: " + ev.Text))
		appended = 1

	case conn.Error:
		dropped = m.log.Append(chat.NewError(ev.Text))
		appended = 1

	case conn.Message:
		appended, dropped, cmd = m.handleMessage(ev)

	case conn.UserJoined:
		m.roster.Add(ev.Name)
		m.header.SetUserCount(m.roster.Len())
		dropped = m.log.Append(chat.NewSystem(ev.Name + " joined"))
		appended = 1

	case conn.UserLeft:
		m.roster.Remove(ev.Name)
		m.header.SetUserCount(m.roster.Len())
		dropped = m.log.Append(chat.NewSystem(ev.Name + " left"))
		appended = 1

	case conn.RoomReady:
		dropped = m.log.Append(chat.NewInfo("joined #" + m.room))
		appended = 1
	}

	if m.scroll.Mode == chat.ModeScrolling {
		m.scroll.Anchor(appended, dropped)
	}
	return cmd
}

// handleMessage routes an incoming chat message: our own echoes confirm
// a pending record in place, everyone else's append, and mentions of
// our name fire a desktop notification.
func (m *Model) handleMessage(ev conn.Event) (appended, dropped int, cmd tea.Cmd) {
	self := m.cfg.GetDisplayName()
	stamp := chat.Timestamp(time.Now())

	if ev.Name == self {
		replaced, d := m.log.Confirm(ev.Name, ev.Text, stamp)
		if !replaced {
			appended = 1
		}
		return appended, d, nil
	}

	dropped = m.log.Append(chat.NewChat(ev.Name, ev.Text, stamp))
	appended = 1

	if m.cfg.GetNotificationsEnabled() && mentions(ev.Text, self) {
		room, sender, text := m.room, ev.Name, ev.Text
		cmd = func() tea.Msg {
			notification.MentionAlert(room, sender, text)
			return nil
		}
	}
	return appended, dropped, cmd
}

// mentions reports whether text contains "@name" as a whole token.
func mentions(text, name string) bool {
	if name == "" {
		return false
	}
	needle := "@" + name
	for idx := strings.Index(text, needle); idx >= 0; {
		end := idx + len(needle)
		if end == len(text) || text[end] == ' ' || text[end] == ',' || text[end] == '.' || text[end] == '!' || text[end] == '?' {
			return true
		}
		next := strings.Index(text[end:], needle)
		if next < 0 {
			return false
		}
		idx = end + next
	}
	return false
}

// copyLastMessage puts the newest chat message body on the clipboard.
func (m *Model) copyLastMessage() {
	for i := m.log.Len() - 1; i >= 0; i-- {
		rec := m.log.At(i)
		if rec.Kind != chat.KindChat && rec.Kind != chat.KindPending {
			continue
		}
		if err := clipboard.WriteText(rec.Text); err != nil {
			m.appendLocal(chat.NewError("copy failed: " + err.Error()))
			return
		}
		m.appendLocal(chat.NewInfo("copied last message"))
		return
	}
}

// appendLocal appends a locally generated record, keeping the scroll
// anchored if pinned.
func (m *Model) appendLocal(rec chat.Record) {
	dropped := m.log.Append(rec)
	if m.scroll.Mode == chat.ModeScrolling {
		m.scroll.Anchor(1, dropped)
	}
}

// handleUpdateCheck shows the header notice once per newer version.
func (m *Model) handleUpdateCheck(msg UpdateCheckMsg) {
	if !msg.Available || msg.Latest == m.cfg.GetLastSeenVersion() {
		return
	}
	m.header.SetNotice("update available: " + m.version + " → " + msg.Latest)
	m.cfg.SetLastSeenVersion(msg.Latest)
	if err := m.cfg.Save(); err != nil {
		logger.Warn("app: saving config failed: %v", err)
	}
	m.relayout()
}

// quit tears the connection down and exits the program.
func (m *Model) quit() tea.Cmd {
	m.client.Close()
	return tea.Quit
}
