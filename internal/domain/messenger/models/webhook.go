package models

import "time"

// WebhookPayload is the body the platform POSTs to /webhook
type WebhookPayload struct {
	Object string  `json:"object,omitempty"`
	Entry  []Entry `json:"entry" validate:"required,min=1,dive"`
}

// Entry groups the messaging events delivered for one page
type Entry struct {
	ID        string           `json:"id,omitempty"`
	Time      int64            `json:"time,omitempty"`
	Messaging []MessagingEvent `json:"messaging" validate:"required,min=1,dive"`
}

// MessagingEvent is a single inbound message
type MessagingEvent struct {
	Sender    Participant `json:"sender"`
	Recipient Participant `json:"recipient"`
	// Timestamp is in milliseconds since the epoch. Zero means the platform did not send one.
	Timestamp int64           `json:"timestamp,omitempty"`
	Message   *InboundMessage `json:"message" validate:"required"`
}

// Participant identifies a sender or recipient by page-scoped id
type Participant struct {
	ID string `json:"id" validate:"required"`
}

// InboundMessage is the message object of a webhook event. Attachments, stickers and
// quick-reply-only messages carry no text field and fail validation; empty text is accepted.
type InboundMessage struct {
	MID  string  `json:"mid,omitempty"`
	Text *string `json:"text" validate:"required"`
}

// Content returns the message as relayed onward
func (m InboundMessage) Content() Message {
	msg := Message{MID: m.MID}
	if m.Text != nil {
		msg.Text = *m.Text
	}
	return msg
}

// Message is the text content of a relayed message
type Message struct {
	MID  string `json:"mid,omitempty"`
	Text string `json:"text"`
}

// First returns the first messaging event of the first entry, or false when either list is empty
func (p WebhookPayload) First() (MessagingEvent, bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Messaging) == 0 {
		return MessagingEvent{}, false
	}
	return p.Entry[0].Messaging[0], true
}

// SentAt converts the event timestamp to a time. The second value is false when no timestamp was sent.
func (e MessagingEvent) SentAt() (time.Time, bool) {
	if e.Timestamp <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(e.Timestamp), true
}

// IsStale reports whether the event is older than maxAge at now. Events without a timestamp are never stale.
func (e MessagingEvent) IsStale(now time.Time, maxAge time.Duration) bool {
	sentAt, ok := e.SentAt()
	if !ok {
		return false
	}
	return now.Sub(sentAt) > maxAge
}
