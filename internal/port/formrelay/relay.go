package formrelay

import "context"

// Submission is the JSON body the third-party form relay expects. The
// underscore-prefixed fields are relay directives, not form values.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Subject  string `json:"_subject"`
	Template string `json:"_template"`
}

type Sender interface {
	Send(ctx context.Context, submission Submission) error
}
