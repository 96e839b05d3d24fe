package models

// MessagingType tags why a message is being sent outside the standard messaging window
type MessagingType string

const (
	MessagingTypeResponse MessagingType = "Response"
	MessagingTypeUpdate   MessagingType = "Update"
)

// OutboundMessage is the body POSTed to the send API
type OutboundMessage struct {
	Recipient     Participant   `json:"recipient"`
	MessagingType MessagingType `json:"messaging_type"`
	Message       Message       `json:"message"`
}

// NewResponse builds a reply to recipientID
func NewResponse(recipientID, text string) OutboundMessage {
	return OutboundMessage{
		Recipient:     Participant{ID: recipientID},
		MessagingType: MessagingTypeResponse,
		Message:       Message{Text: text},
	}
}
