package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/amrhendawy/vetdesk/configs"
)

type BrevoSMSService struct {
	APIKey string
	Sender string
}

var SMSClient *BrevoSMSService

type brevoSMSPayload struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

func InitSMSService() {
	apiKey := config.Config("BREVO_API_KEY")
	sender := config.Config("SMS_SENDER_NAME")

	if apiKey == "" || sender == "" {
		log.Println("⚠️ SMS service not configured. Missing API Key or Sender Name.")
		SMSClient = nil
		return
	}

	SMSClient = &BrevoSMSService{
		APIKey: apiKey,
		Sender: sender,
	}
	log.Println("✅ SMS service initialized successfully.")
}

func (s *BrevoSMSService) send(toPhone, content string) error {
	url := "https://api.brevo.com/v3/transactionalSMS/sms"

	if toPhone == "" {
		return fmt.Errorf("missing recipient phone number")
	}

	payload := brevoSMSPayload{
		Sender:    s.Sender,
		Recipient: toPhone,
		Content:   content,
		Type:      "transactional",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		log.Printf("Brevo SMS API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send SMS via Brevo: %s", string(bodyBytes))
	}

	return nil
}

// SendSMS fires a transactional SMS and only logs failures; callers never
// block a clinic workflow on the gateway.
func SendSMS(toPhone, content string) error {
	if SMSClient == nil {
		log.Println("SMS client not initialized, skipping SMS send.")
		return fmt.Errorf("sms client not initialized")
	}

	if err := SMSClient.send(toPhone, content); err != nil {
		log.Printf("🔥 Failed to send SMS to %s: %v", toPhone, err)
		return err
	}

	log.Printf("✅ SMS sent successfully to %s", toPhone)
	return nil
}
