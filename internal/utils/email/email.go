package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendWelcome sends a welcome email to a newly registered user
func (s *Sender) SendWelcome(to, username string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to the blog"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your account has been created. You can now log in and start\n"+
			"publishing posts and commenting.\n",
		username,
	)
	body += "\nBest regards,\nBlog Service"
	e.Text = []byte(body)

	return s.send(e)
}

// SendAdminDigest sends a content activity summary to an admin
func (s *Sender) SendAdminDigest(to string, stats *models.ContentStats) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Blog activity digest"

	body := fmt.Sprintf(
		"Activity since %s:\n\n"+
			"New users:    %d\n"+
			"New posts:    %d\n"+
			"New comments: %d\n",
		stats.Since.Format("2006-01-02 15:04:05"),
		stats.NewUsers, stats.NewPosts, stats.NewComments,
	)
	body += "\nBest regards,\nBlog Service"
	e.Text = []byte(body)

	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}
