package mailer

import (
	"sync"
)

// Email is one recorded delivery: who it went to, which template rendered it,
// and the template data.
type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer satisfies Mailer by recording deliveries instead of dialing SMTP.
// Safe for concurrent use; booking confirmations are sent from background
// goroutines.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		emails: make([]Email, 0),
	}
}

// Send records the email that would have been delivered.
func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})

	return nil
}

// GetSentEmails returns a snapshot of everything recorded so far.
func (m *MockMailer) GetSentEmails() []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

// Reset discards the recorded emails.
func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = m.emails[:0]
}
