package adapter

import (
	"context"
	"time"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ExpiryDigestItem is one objective listed in the expiry digest.
type ExpiryDigestItem struct {
	Department      string
	Name            string
	EndDate         string
	DaysUntilExpiry int
	ProgressPercent float64
	Status          string
	Expired         bool
}

// QueueExpiryDigestInput represents the input for queueing the expiry digest.
type QueueExpiryDigestInput struct {
	Recipients  []string
	GeneratedAt time.Time
	WindowDays  int
	Items       []ExpiryDigestItem
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueExpiryDigest queues one digest email per recipient and returns how many were queued.
	QueueExpiryDigest(ctx context.Context, input QueueExpiryDigestInput) (int, error)
}
