package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/EminenceChannel/models"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendRequestReceivedEmail acknowledges a prayer request to the person who
// submitted it. Only sent when their contact preference is email.
func (s *EmailService) SendRequestReceivedEmail(toEmail string, firstName string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Your Prayer Request Has Been Received</h2>
    <p>Dear %s,</p>
    <p>Thank you for sharing your prayer request with us. Our ministry team has received it and will be praying along with you.</p>
    <p>If you asked to be contacted, we will reach out to you by email.</p>
    <p>God bless you,<br>Eminence Channel Ministries</p>
</body>
</html>
`, firstName)

	textBody := fmt.Sprintf(`
Your Prayer Request Has Been Received

Dear %s,

Thank you for sharing your prayer request with us. Our ministry team has received it and will be praying along with you.

If you asked to be contacted, we will reach out to you by email.

God bless you,
Eminence Channel Ministries
`, firstName)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: "Your prayer request has been received",
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send request acknowledgment to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent request acknowledgment to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}

// SendNewRequestAlert notifies the ministry inbox that a prayer request
// arrived, so requests are seen even when nobody has the dashboard open.
func (s *EmailService) SendNewRequestAlert(request models.PrayerRequest) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	notifyEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if notifyEmail == "" {
		return fmt.Errorf("ADMIN_NOTIFY_EMAIL not set")
	}

	phone := "No phone"
	if request.Phone != nil && *request.Phone != "" {
		phone = *request.Phone
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>New Prayer Request</h2>
    <p><strong>%s %s</strong> (%s | %s)</p>
    <p><strong>Contact preference:</strong> %s</p>
    <div style="margin-top: 10px; padding: 10px; border: 1px dashed #ccc; border-radius: 4px;">
        <p>%s</p>
    </div>
    <p>Open the dashboard to review it.</p>
</body>
</html>
`, request.First_Name, request.Last_Name, request.Email, phone, request.Contact_Preference, request.Request_Text)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{notifyEmail},
		Subject: fmt.Sprintf("New prayer request from %s %s", request.First_Name, request.Last_Name),
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send new request alert: %v", err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent new request alert. Email ID: %s", sent.Id)
	return nil
}

// SendNewCommentAlert notifies the ministry inbox that a comment is waiting
// for moderation.
func (s *EmailService) SendNewCommentAlert(comment models.Comment) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	notifyEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if notifyEmail == "" {
		return fmt.Errorf("ADMIN_NOTIFY_EMAIL not set")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Comment Awaiting Approval</h2>
    <p><strong>From:</strong> %s</p>
    <p><strong>Post ID:</strong> %d</p>
    <div style="margin-top: 10px; padding: 10px; border: 1px dashed #ccc; border-radius: 4px;">
        <p>%s</p>
    </div>
    <p>Open the dashboard to approve or delete it.</p>
</body>
</html>
`, comment.Name, comment.Post_ID, comment.Comment_Text)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{notifyEmail},
		Subject: fmt.Sprintf("Comment from %s awaiting approval", comment.Name),
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send new comment alert: %v", err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent new comment alert. Email ID: %s", sent.Id)
	return nil
}
