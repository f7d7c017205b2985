// Package chat holds the message data model and the engine state the
// render layer draws from: the bounded message log, the scroll state,
// the roster, and the line wrapper.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a message record.
type Kind int

const (
	// KindChat is a confirmed message from a user (including ourselves).
	KindChat Kind = iota
	// KindSystem is a room-level announcement (joins, leaves, ready).
	KindSystem
	// KindError is a connection or protocol error surfaced to the user.
	KindError
	// KindInfo is informational output that is neither chat nor error.
	KindInfo
	// KindPending is a locally echoed outgoing message awaiting server
	// confirmation.
	KindPending
)

// Record is one entry in the message log. A record is immutable once
// confirmed; the only in-place mutation the log performs is replacing a
// pending record with its confirmed chat counterpart.
type Record struct {
	Kind Kind
	// Name is the sender's display name. Empty for system/error/info.
	Name string
	// Text is the raw message body. It never contains newlines.
	Text string
	// Stamp is the HH:MM:SS label, fixed when the record is created:
	// send time for outgoing pending records, receipt time for
	// everything that arrives over the wire.
	Stamp string
	// CorrelationID is set only on pending records and ties the local
	// echo to the eventual server confirmation.
	CorrelationID string
}

// Timestamp formats t as the HH:MM:SS label records carry.
func Timestamp(t time.Time) string {
	return t.Format("15:04:05")
}

// NewChat builds a confirmed chat record with the given stamp.
func NewChat(name, text, stamp string) Record {
	return Record{Kind: KindChat, Name: name, Text: text, Stamp: stamp}
}

// NewSystem builds a system record stamped with the current time.
func NewSystem(text string) Record {
	return Record{Kind: KindSystem, Text: text, Stamp: Timestamp(time.Now())}
}

// NewError builds an error record stamped with the current time.
func NewError(text string) Record {
	return Record{Kind: KindError, Text: text, Stamp: Timestamp(time.Now())}
}

// NewInfo builds an info record stamped with the current time.
func NewInfo(text string) Record {
	return Record{Kind: KindInfo, Text: text, Stamp: Timestamp(time.Now())}
}

// NewPending builds a locally echoed outgoing record. The stamp is the
// send time; the correlation ID lets Confirm match it later.
func NewPending(name, text string) Record {
	return Record{
		Kind:          KindPending,
		Name:          name,
		Text:          text,
		Stamp:         Timestamp(time.Now()),
		CorrelationID: uuid.New().String(),
	}
}
