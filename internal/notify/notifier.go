package notify

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Filename string
	MIME     string
	Data     []byte
}

// Notifier delivers a message to one or more addresses. Delivery is
// fire-and-forget from the caller's point of view: failures are returned so
// they can be logged but nothing in the core retries them.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...Attachment) error
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, username, password, from string) Notifier {
	return &smtpNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *smtpNotifier) Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...Attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	for _, att := range attachments {
		data := att.Data
		m.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(data))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {att.MIME}}),
		)
	}

	return n.dialer.DialAndSend(m)
}

// NoopNotifier logs instead of sending. Used when SMTP is not configured so
// local environments still exercise the full flow.
type NoopNotifier struct{}

func (NoopNotifier) Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...Attachment) error {
	zap.L().Named("notify.noop").Info("email suppressed",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.Int("attachments", len(attachments)),
	)
	return nil
}
