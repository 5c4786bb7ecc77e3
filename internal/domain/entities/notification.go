package entities

// EmailMessage is an outbound HTML email
type EmailMessage struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}
