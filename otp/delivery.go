package otp

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// SMSSender delivers codes over the fast2sms DLT route. When no API key is
// configured it emits the code to the operational log instead and still
// reports success, so development setups are never blocked on a gateway.
type SMSSender struct {
	APIKey     string
	SenderID   string
	TemplateID string
	BaseURL    string
	client     *resty.Client
}

func NewSMSSender(apiKey, senderID, templateID, baseURL string, timeout time.Duration) *SMSSender {
	if baseURL == "" {
		baseURL = "https://www.fast2sms.com/dev/bulkV2"
	}
	return &SMSSender{
		APIKey:     apiKey,
		SenderID:   senderID,
		TemplateID: templateID,
		BaseURL:    baseURL,
		client:     resty.New().SetTimeout(timeout),
	}
}

func (s *SMSSender) Send(identifier, code string, validity time.Duration) error {
	if s.APIKey == "" {
		log.Printf("[MOCK SMS] To: %s | OTP: %s | Expires in %d minutes",
			identifier, code, int(validity.Minutes()))
		return nil
	}

	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"authorization":    s.APIKey,
			"route":            "dlt",
			"sender_id":        s.SenderID,
			"message":          s.TemplateID,
			"variables_values": fmt.Sprintf("%s|%d", code, int(validity.Minutes())),
			"flash":            "0",
			"numbers":          identifier,
		}).
		Get(s.BaseURL)
	if err != nil {
		log.Printf("Error while sending OTP: %v", err)
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	log.Println("OTP sent successfully to", identifier)
	return nil
}
