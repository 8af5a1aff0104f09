package mailer

// Message is one outbound email. Bodies are fully rendered HTML.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer delivers messages through a transactional email provider.
type Mailer interface {
	Send(msg Message) error
}
