package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/shootbook-backend/internal/config"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// BookingSummary e-posta şablonlarına giden rezervasyon özeti
type BookingSummary struct {
	Reference    string
	CustomerName string
	LocationName string
	Date         time.Time
	RentalDays   int
	Total        float64
	Status       string
	Lines        []string
}

type EmailService struct {
	client      *resend.Client
	from        string
	fromName    string
	frontendURL string
	templates   *template.Template
	logger      *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) (*EmailService, error) {
	tmpl, err := template.New("email").Funcs(template.FuncMap{
		"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	var client *resend.Client
	if cfg.Email.APIKey != "" {
		client = resend.NewClient(cfg.Email.APIKey)
	}

	return &EmailService{
		client:      client,
		from:        cfg.Email.From,
		fromName:    cfg.Email.FromName,
		frontendURL: cfg.FrontendURL,
		templates:   tmpl,
		logger:      logger.Named("email"),
	}, nil
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	return s.send(email, "Welcome to Shootbook!", "welcome.html", map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	})
}

func (s *EmailService) SendBookingConfirmation(email string, summary BookingSummary) error {
	return s.send(email, "Booking received - "+summary.Reference, "booking-created.html", map[string]interface{}{
		"Booking": summary,
		"Link":    s.frontendURL + "/bookings/" + summary.Reference,
		"Year":    time.Now().Year(),
	})
}

func (s *EmailService) SendBookingStatusChanged(email string, summary BookingSummary) error {
	return s.send(email, "Booking "+summary.Reference+" is now "+summary.Status, "booking-status.html", map[string]interface{}{
		"Booking": summary,
		"Link":    s.frontendURL + "/bookings/" + summary.Reference,
		"Year":    time.Now().Year(),
	})
}

func (s *EmailService) send(to, subject, templateName string, data interface{}) error {
	html, err := s.render(templateName, data)
	if err != nil {
		s.logger.Error("failed to render template", zap.String("template", templateName), zap.Error(err))
		return err
	}

	// API key yoksa (local) sadece logla
	if s.client == nil {
		s.logger.Info("email delivery disabled, skipping", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	resp, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		s.logger.Error("failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return err
	}

	s.logger.Info("email sent", zap.String("to", to), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) render(templateName string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return "", err
	}
	return body.String(), nil
}
