// Package email defines the transactional email collaborator used by the
// contact endpoint and provides a Resend-backed implementation.
package email

import (
	"context"
	"fmt"
)

// Message represents an email to be sent.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// SendResult holds the provider's identifier for an accepted message.
type SendResult struct {
	ID string
}

// Sender delivers a single message. Implementations must be safe to call
// from a goroutine other than the one that created them.
type Sender interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// Factory builds a Sender for the given provider credential.
type Factory func(apiKey string) Sender

// ProviderError reports that the provider rejected or failed a send.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
