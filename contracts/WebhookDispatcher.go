package contracts

// Submission is the payload delivered to webhooks and the hub
type Submission struct {
	Id      string    `json:"id,omitempty"`
	Email   string    `json:"email,omitempty"`
	Results SheetList `json:"results"`
}

type WebhookDispatcher interface {
	Notify(webhookUrl string, submission *Submission)
	Start()
	Close()
}
