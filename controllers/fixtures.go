package controllers

import (
	"time"

	"github.com/EminenceChannel/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockAdmin creates a sample admin user for testing
func MockAdmin() models.AdminUser {
	return models.AdminUser{
		Admin_User_ID:   1,
		Email:           "pastor@example.com",
		Display_Name:    "Pastor Test",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockAdminWithPassword creates a sample admin with a bcrypt hashed password
// Password is "admin123" - use this in login tests
func MockAdminWithPassword() models.AdminUser {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return models.AdminUser{
		Admin_User_ID:   1,
		Email:           "pastor@example.com",
		Password:        string(hashedPassword),
		Display_Name:    "Pastor Test",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockPost creates a sample article post for testing
func MockPost() models.Post {
	scripture := "Psalm 23:1"
	return models.Post{
		Post_ID:         1,
		Title:           "A Word for the Week",
		Category:        models.CategoryQuickWord,
		Scripture:       &scripture,
		Image:           "https://example.com/banner.jpg",
		Content:         "The Lord is my shepherd; I shall not want.",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockComment creates a sample pending comment for testing
func MockComment() models.Comment {
	return models.Comment{
		Comment_ID:      1,
		Post_ID:         1,
		Name:            "Grace",
		Comment_Text:    "This blessed me today.",
		Approved:        false,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockPrayerRequest creates a sample prayer request for testing
func MockPrayerRequest() models.PrayerRequest {
	phone := "5551234567"
	return models.PrayerRequest{
		Request_ID:         1,
		First_Name:         "John",
		Last_Name:          "Doe",
		Email:              "john@example.com",
		Phone:              &phone,
		Request_Text:       "Please pray for my family.",
		Contact_Preference: models.ContactPreferenceEmail,
		Datetime_Create:    time.Now(),
	}
}

func postColumns() []string {
	return []string{"post_id", "title", "category", "scripture", "image", "content", "datetime_create", "datetime_update"}
}

func commentColumns() []string {
	return []string{"comment_id", "post_id", "name", "comment_text", "approved", "datetime_create", "datetime_update"}
}

func requestColumns() []string {
	return []string{"request_id", "first_name", "last_name", "email", "phone", "request_text", "contact_preference", "datetime_create"}
}
