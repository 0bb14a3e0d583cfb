package mailer

// Message is a templated email to a single recipient.
type Message struct {
	To         string
	TemplateID string
	Data       map[string]any
}

// Result reports the provider's acknowledgement of an accepted message.
type Result struct {
	MessageID  string
	StatusCode int
}

// Mailer sends a templated message to an address and reports success or
// failure together with the provider's external message id.
type Mailer interface {
	Send(msg Message) (*Result, error)
}
