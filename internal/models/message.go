package models

const (
	SourceContact    = "contact"
	SourceNewsletter = "newsletter"
)

var MessageSources = []string{SourceContact, SourceNewsletter}

// Message es un mensaje recibido por el formulario de contacto
type Message struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Subject string `json:"subject" bson:"subject"`
	Message string `json:"message" bson:"message"`
	Source  string `json:"source" bson:"source"`
}

func (Message) EntityName() string { return "Message" }

type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

func NewMessage(in MessageInput) (*Message, error) {
	c := &checker{}
	c.required("name", in.Name)
	c.email("email", in.Email)
	c.required("subject", in.Subject)
	c.required("message", in.Message)
	source := stringOr(in.Source, SourceContact)
	c.oneOf("source", source, MessageSources)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Source:  source,
	}, nil
}
