package domain

// MessageKind selects the template used for a stakeholder message.
type MessageKind string

const (
	MessageInvitation MessageKind = "invitation"
	MessageReminder   MessageKind = "reminder"
)

func (k MessageKind) String() string { return string(k) }

// MailMessage is a rendered message ready for delivery.
type MailMessage struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}
