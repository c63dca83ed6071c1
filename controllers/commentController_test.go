package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/EminenceChannel/models"
)

// Test CreateComment - visitor comment submission
func TestCreateComment(t *testing.T) {
	tests := []struct {
		name           string
		postID         string
		body           map[string]interface{}
		postExists     bool
		expectedStatus int
		expectError    bool
	}{
		{
			name:   "successful submission",
			postID: "1",
			body: map[string]interface{}{
				"name":        "Grace",
				"commentText": "Amen to this word.",
			},
			postExists:     true,
			expectedStatus: http.StatusCreated,
			expectError:    false,
		},
		{
			name:   "payload claiming approval is still stored pending",
			postID: "1",
			body: map[string]interface{}{
				"name":        "Sly",
				"commentText": "Trying to skip the queue",
				"approved":    true,
			},
			postExists:     true,
			expectedStatus: http.StatusCreated,
			expectError:    false,
		},
		{
			name:   "missing name",
			postID: "1",
			body: map[string]interface{}{
				"commentText": "Anonymous words",
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:   "missing comment text",
			postID: "1",
			body: map[string]interface{}{
				"name": "Grace",
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:   "post does not exist",
			postID: "999",
			body: map[string]interface{}{
				"name":        "Grace",
				"commentText": "Is anyone there?",
			},
			postExists:     false,
			expectedStatus: http.StatusNotFound,
			expectError:    true,
		},
		{
			name:   "invalid post ID",
			postID: "abc",
			body: map[string]interface{}{
				"name":        "Grace",
				"commentText": "Hello",
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()

			if tt.expectedStatus == http.StatusNotFound {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(postColumns()))
			}
			if tt.expectedStatus == http.StatusCreated {
				post := MockPost()
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows(postColumns()).AddRow(
						post.Post_ID, post.Title, post.Category, post.Scripture,
						post.Image, post.Content, now, now))
				mock.ExpectQuery("INSERT").WillReturnRows(
					sqlmock.NewRows([]string{"comment_id", "datetime_create", "datetime_update"}).
						AddRow(42, now, now))
			}

			jsonData, _ := json.Marshal(tt.body)
			c, w := SetupTestContext()
			c.Params = []gin.Param{{Key: "post_id", Value: tt.postID}}
			c.Request = httptest.NewRequest("POST", "/posts/"+tt.postID+"/comments", bytes.NewBuffer(jsonData))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateComment(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)

			if tt.expectError {
				assert.NotNil(t, response["error"])
				return
			}

			assert.NotNil(t, response["message"])
			comment := response["comment"].(map[string]interface{})
			// Moderation state is server-owned; the payload cannot pre-approve
			assert.Equal(t, false, comment["approved"])
			assert.Equal(t, float64(42), comment["commentId"])
		})
	}
}

// Test GetPostComments - public thread shows approved comments only
func TestGetPostComments(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`"approved" IS TRUE`).WillReturnRows(
		sqlmock.NewRows(commentColumns()).
			AddRow(1, 1, "Grace", "First!", true, now.Add(-time.Hour), now).
			AddRow(2, 1, "Ruth", "Amen.", true, now, now))

	c, w := SetupTestContext()
	c.Params = []gin.Param{{Key: "post_id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/posts/1/comments", nil)

	GetPostComments(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	comments := response["comments"].([]interface{})
	assert.Len(t, comments, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostCommentsEmptyThread(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(commentColumns()))

	c, w := SetupTestContext()
	c.Params = []gin.Param{{Key: "post_id", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/posts/7/comments", nil)

	GetPostComments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":[]`)
}

// Test GetModerationQueue - pending first, newest first within each group
func TestGetModerationQueue(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`ORDER BY "approved" ASC, "datetime_create" DESC`).WillReturnRows(
		sqlmock.NewRows(commentColumns()).
			AddRow(3, 1, "Newer Pending", "text", false, now, now).
			AddRow(2, 1, "Older Pending", "text", false, now.Add(-time.Hour), now).
			AddRow(1, 1, "Approved", "text", true, now.Add(-2*time.Hour), now))

	c, w := SetupTestContext()
	SetAuthenticatedAdmin(c, MockAdmin())
	c.Request = httptest.NewRequest("GET", "/admin/comments", nil)

	GetModerationQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	comments := response["comments"].([]interface{})
	assert.Len(t, comments, 3)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, false, first["approved"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test ApproveComment / UnapproveComment - moderation state transitions
func TestCommentApprovalTransitions(t *testing.T) {
	tests := []struct {
		name           string
		commentID      string
		handler        func(*gin.Context)
		exists         bool
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "approve pending comment",
			commentID:      "1",
			handler:        ApproveComment,
			exists:         true,
			expectedStatus: http.StatusOK,
			expectedState:  models.CommentStatusApproved,
		},
		{
			name:           "unapprove approved comment",
			commentID:      "1",
			handler:        UnapproveComment,
			exists:         true,
			expectedStatus: http.StatusOK,
			expectedState:  models.CommentStatusPending,
		},
		{
			name:           "approve missing comment",
			commentID:      "999",
			handler:        ApproveComment,
			exists:         false,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid comment ID",
			commentID:      "bad",
			handler:        ApproveComment,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()

			if tt.commentID != "bad" {
				if tt.exists {
					comment := MockComment()
					mock.ExpectQuery("SELECT").WillReturnRows(
						sqlmock.NewRows(commentColumns()).AddRow(
							comment.Comment_ID, comment.Post_ID, comment.Name,
							comment.Comment_Text, comment.Approved, now, now))
					mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(commentColumns()))
				}
			}

			c, w := SetupTestContext()
			SetAuthenticatedAdmin(c, MockAdmin())
			c.Params = []gin.Param{{Key: "comment_id", Value: tt.commentID}}
			c.Request = httptest.NewRequest("PATCH", "/admin/comments/"+tt.commentID, nil)

			tt.handler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &response)
				assert.Equal(t, tt.expectedState, response["status"])
			}
		})
	}
}

// Test DeleteComment
func TestDeleteComment(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		now := time.Now()
		comment := MockComment()
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(commentColumns()).AddRow(
				comment.Comment_ID, comment.Post_ID, comment.Name,
				comment.Comment_Text, comment.Approved, now, now))
		mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 1))

		c, w := SetupTestContext()
		SetAuthenticatedAdmin(c, MockAdmin())
		c.Params = []gin.Param{{Key: "comment_id", Value: "1"}}
		c.Request = httptest.NewRequest("DELETE", "/admin/comments/1", nil)

		DeleteComment(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("comment not found", func(t *testing.T) {
		_, mock, cleanup := SetupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(commentColumns()))

		c, w := SetupTestContext()
		SetAuthenticatedAdmin(c, MockAdmin())
		c.Params = []gin.Param{{Key: "comment_id", Value: "999"}}
		c.Request = httptest.NewRequest("DELETE", "/admin/comments/999", nil)

		DeleteComment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
