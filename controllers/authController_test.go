package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/EminenceChannel/models"
)

func adminUserColumns() []string {
	return []string{"admin_user_id", "email", "password", "display_name", "datetime_create", "datetime_update"}
}

// Test AdminLogin - credential exchange
func TestAdminLogin(t *testing.T) {
	os.Setenv("SECRET", "test-secret-key")
	defer os.Unsetenv("SECRET")

	tests := []struct {
		name           string
		body           map[string]interface{}
		adminExists    bool
		expectedStatus int
		expectToken    bool
	}{
		{
			name: "successful login",
			body: map[string]interface{}{
				"email":    "pastor@example.com",
				"password": "admin123",
			},
			adminExists:    true,
			expectedStatus: http.StatusOK,
			expectToken:    true,
		},
		{
			name: "wrong password",
			body: map[string]interface{}{
				"email":    "pastor@example.com",
				"password": "wrong-password",
			},
			adminExists:    true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			body: map[string]interface{}{
				"email":    "stranger@example.com",
				"password": "admin123",
			},
			adminExists:    false,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.adminExists {
				admin := MockAdminWithPassword()
				now := time.Now()
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(adminUserColumns()).AddRow(
						admin.Admin_User_ID, admin.Email, admin.Password,
						admin.Display_Name, now, now))
			} else {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(adminUserColumns()))
			}

			jsonData, _ := json.Marshal(tt.body)
			c, w := SetupTestContext()
			c.Request = httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			AdminLogin(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectToken {
				assert.NotEmpty(t, response["token"])
				admin := response["admin"].(map[string]interface{})
				// Hashed password never leaves the server
				assert.NotContains(t, admin, "password")
			} else {
				assert.NotNil(t, response["error"])
			}
		})
	}
}

// Test GetAdminProfile
func TestGetAdminProfile(t *testing.T) {
	c, w := SetupTestContext()
	SetAuthenticatedAdmin(c, MockAdmin())
	c.Request = httptest.NewRequest("GET", "/admin/profile", nil)

	GetAdminProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	admin := response["admin"].(map[string]interface{})
	assert.Equal(t, "pastor@example.com", admin["email"])
}

// Test StorePushToken - admin device registration
func TestStorePushToken(t *testing.T) {
	tests := []struct {
		name           string
		tokenData      models.PushTokenRequest
		expectedStatus int
		expectError    bool
	}{
		{
			name: "successful token storage - iOS",
			tokenData: models.PushTokenRequest{
				PushToken: strings.Repeat("a", 100),
				Platform:  "ios",
			},
			expectedStatus: http.StatusOK,
			expectError:    false,
		},
		{
			name: "successful token storage - Android",
			tokenData: models.PushTokenRequest{
				PushToken: strings.Repeat("b", 152),
				Platform:  "android",
			},
			expectedStatus: http.StatusOK,
			expectError:    false,
		},
		{
			name: "token too short",
			tokenData: models.PushTokenRequest{
				PushToken: "short",
				Platform:  "ios",
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name: "token too long",
			tokenData: models.PushTokenRequest{
				PushToken: strings.Repeat("c", 501),
				Platform:  "android",
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if !tt.expectError {
				mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
			}

			jsonData, _ := json.Marshal(tt.tokenData)
			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Request = httptest.NewRequest("POST", "/admin/push-token", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			StorePushToken(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectError {
				assert.NotNil(t, response["error"])
			} else {
				assert.NotNil(t, response["message"])
			}
		})
	}
}
