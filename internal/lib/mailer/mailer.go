package mailer

import (
	"github.com/sirupsen/logrus"
)

// Mailer is the delivery boundary for password-reset mail. Actual delivery is
// an external concern; this layer only hands the reset link over.
type Mailer interface {
	SendPasswordReset(email, url string) error
}

// LogMailer writes the reset link to the application log instead of sending
// mail. Used outside production and in tests.
type LogMailer struct {
	log *logrus.Entry
}

func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: logrus.NewEntry(log)}
}

func (m *LogMailer) SendPasswordReset(email, url string) error {
	m.log.WithFields(logrus.Fields{
		"email": email,
		"url":   url,
	}).Info("password reset mail")
	return nil
}
