package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/anjiri1684/course_platform/configs"
)

// EmailService sends transactional mail through the Brevo HTTP API.
// It is constructed once at startup from config and handed to the
// handlers that need it; a nil-configured service drops mail with a
// log line instead of failing requests.
type EmailService struct {
	apiKey      string
	senderEmail string
	senderName  string
	client      *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func NewEmailService(cfg config.AppConfig) *EmailService {
	if cfg.BrevoAPIKey == "" || cfg.EmailSender == "" || cfg.EmailSenderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return &EmailService{}
	}

	log.Printf("✅ Email service initialized (sender: %s)", cfg.EmailSender)
	return &EmailService{
		apiKey:      cfg.BrevoAPIKey,
		senderEmail: cfg.EmailSender,
		senderName:  cfg.EmailSenderName,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EmailService) configured() bool {
	return s != nil && s.apiKey != ""
}

func (s *EmailService) send(toEmail, toName, subject, htmlContent string) error {
	url := "https://api.brevo.com/v3/smtp/email"

	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.senderName, "email": s.senderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (s *EmailService) SendEmail(toName, toEmail, subject, htmlContent string) {
	if !s.configured() {
		log.Printf("Email service not configured; dropping mail to %s (%s)", toEmail, subject)
		return
	}
	if err := s.send(toEmail, toName, subject, htmlContent); err != nil {
		log.Printf("Failed to send email to %s: %v", toEmail, err)
	}
}
