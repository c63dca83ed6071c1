package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/EminenceChannel/models"
)

// NotifyAdminsOfNewComment alerts admins that a comment entered the
// moderation queue. Called from a goroutine after the comment is stored;
// delivery failures are logged, never surfaced to the visitor.
func NotifyAdminsOfNewComment(comment models.Comment) {
	pushService := GetPushNotificationService()
	if pushService != nil {
		payload := NotificationPayload{
			Title: "Comment awaiting approval",
			Body:  fmt.Sprintf("%s commented on post %d", comment.Name, comment.Post_ID),
			Data: map[string]string{
				"type":      "comment_pending",
				"commentId": strconv.Itoa(comment.Comment_ID),
				"postId":    strconv.Itoa(comment.Post_ID),
			},
		}

		if err := pushService.SendNotificationToAdmins(payload); err != nil {
			log.Printf("Failed to send comment push notification: %v", err)
		}
	} else {
		log.Println("Push notification service not available")
	}

	email := GetEmailService()
	if email == nil {
		log.Println("Email service not available")
		return
	}
	if err := email.SendNewCommentAlert(comment); err != nil {
		log.Printf("Failed to send comment email alert: %v", err)
	}
}

// NotifyAdminsOfNewRequest alerts admins that a prayer request arrived and,
// when the requester chose email contact, acknowledges receipt to them.
func NotifyAdminsOfNewRequest(request models.PrayerRequest) {
	pushService := GetPushNotificationService()
	if pushService != nil {
		payload := NotificationPayload{
			Title: "New prayer request",
			Body:  fmt.Sprintf("%s %s sent a prayer request", request.First_Name, request.Last_Name),
			Data: map[string]string{
				"type":      "request_received",
				"requestId": strconv.Itoa(request.Request_ID),
			},
			Priority: "high",
		}

		if err := pushService.SendNotificationToAdmins(payload); err != nil {
			log.Printf("Failed to send request push notification: %v", err)
		}
	} else {
		log.Println("Push notification service not available")
	}

	email := GetEmailService()
	if email == nil {
		log.Println("Email service not available")
		return
	}

	if err := email.SendNewRequestAlert(request); err != nil {
		log.Printf("Failed to send request email alert: %v", err)
	}

	if request.Contact_Preference == models.ContactPreferenceEmail && request.Email != "" {
		if err := email.SendRequestReceivedEmail(request.Email, request.First_Name); err != nil {
			log.Printf("Failed to send request acknowledgment: %v", err)
		}
	}
}
