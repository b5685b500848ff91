package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(to, nickname string) error
}

type emailService struct {
	host       string
	port       int
	email      string
	password   string
	senderName string
}

func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	return &emailService{
		host:       host,
		port:       port,
		email:      email,
		password:   password,
		senderName: senderName,
	}
}

// SendWelcome is fired after registration. Delivery is best-effort; callers
// run it in a goroutine and only log failures.
func (s *emailService) SendWelcome(to, nickname string) error {
	if s.host == "" || s.email == "" {
		return fmt.Errorf("smtp not configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.email, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to AstroObserver")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Your observation account is ready. Sign in to start classifying galaxies, recognizing constellations and plate-solving your images.</p>",
		nickname,
	))

	d := gomail.NewDialer(s.host, s.port, s.email, s.password)
	return d.DialAndSend(m)
}
