package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotifier sends confirmations through the Gmail API.
type GmailNotifier struct {
	service *gmail.Service
	sender  string
}

// NewGmailNotifier builds a notifier from credential.json/token.json in the
// working directory. It returns nil (caller falls back to the log notifier)
// when the OAuth material is missing, so an unconfigured deployment still
// runs.
func NewGmailNotifier(ctx context.Context, sender string) *GmailNotifier {
	client := gmailHTTPClient()
	if client == nil {
		return nil
	}

	service, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Printf("⚠️  Failed to create Gmail Service: %v", err)
		return nil
	}
	log.Println("✅ Gmail Service connected successfully.")
	return &GmailNotifier{service: service, sender: sender}
}

func (n *GmailNotifier) SendApplicationConfirmation(toEmail, jobTitle, company string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Application Confirmation - %s\r\n\r\n"+
			"Thank you for applying to %s at %s!\r\n"+
			"We will review your application and contact you soon.\r\n",
		n.sender, toEmail, jobTitle, jobTitle, company,
	)

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(body))}
	if _, err := n.service.Users.Messages.Send("me", msg).Do(); err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	return nil
}

// gmailHTTPClient assembles an authenticated HTTP client from credential.json
// and a previously saved token.json. Send scope only.
func gmailHTTPClient() *http.Client {
	b, err := os.ReadFile("credential.json")
	if err != nil {
		log.Println("⚠️ Gmail notifier disabled (no credential.json). Confirmations go to the log.")
		return nil
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		log.Printf("⚠️ Unable to parse client secret file: %v", err)
		return nil
	}

	tok, err := tokenFromFile("token.json")
	if err != nil {
		log.Println("⚠️ Gmail notifier disabled (no token.json). Run the OAuth flow to enable it.")
		return nil
	}
	return config.Client(context.Background(), tok)
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	return tok, json.NewDecoder(f).Decode(tok)
}
