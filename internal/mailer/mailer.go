// Package mailer is the SMTP boundary: it accepts fully formed messages
// and delivers them. Transport details (host, port, credentials, TLS)
// live here and nowhere else.
package mailer

import "gopkg.in/gomail.v2"

type Message struct {
	// Display name put in front of the sender address.
	FromName string
	To       string
	Subject  string
	HTML     string
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(cfg Config) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
	}
}

func (s *SMTP) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, msg.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	return s.dialer.DialAndSend(m)
}
