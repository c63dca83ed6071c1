package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EminenceChannel/initializers"
	"github.com/EminenceChannel/models"
	"github.com/EminenceChannel/services"
	"github.com/doug-martin/goqu/v9"
)

// CommentTextMaxLength bounds a single comment body.
const CommentTextMaxLength = 500

// GetPostComments returns the approved comments under a post in
// chronological reading order. Pending comments never appear here.
func GetPostComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID", "details": err.Error()})
		return
	}

	var comments []models.Comment
	err = initializers.DB.From("comment").
		Where(goqu.C("post_id").Eq(postID)).
		Where(goqu.C("approved").Eq(true)).
		Order(goqu.C("datetime_create").Asc()).
		ScanStructs(&comments)
	if err != nil {
		log.Printf("Failed to fetch comments for post %d: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment accepts a visitor comment. Whatever the payload claims,
// the stored comment starts pending; the visitor gets only an
// acknowledgment and will not see their comment until an admin approves it.
func CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID", "details": err.Error()})
		return
	}

	var commentData models.CommentCreate
	if err := c.BindJSON(&commentData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if commentData.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if commentData.Comment_Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}
	if len(commentData.Comment_Text) > CommentTextMaxLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text exceeds maximum length of 500 characters"})
		return
	}

	var post models.Post
	postFound, err := initializers.DB.From("post").
		Where(goqu.C("post_id").Eq(postID)).
		ScanStruct(&post)
	if err != nil || !postFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	commentInsert := models.Comment{
		Post_ID:      postID,
		Name:         commentData.Name,
		Comment_Text: commentData.Comment_Text,
		Approved:     false,
	}

	insert := initializers.DB.Insert("comment").
		Rows(commentInsert).
		Returning("comment_id", "datetime_create", "datetime_update")

	var inserted struct {
		Comment_ID      int       `db:"comment_id"`
		Datetime_Create time.Time `db:"datetime_create"`
		Datetime_Update time.Time `db:"datetime_update"`
	}

	_, err = insert.Executor().ScanStruct(&inserted)
	if err != nil {
		log.Printf("Failed to create comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment", "details": err.Error()})
		return
	}

	commentInsert.Comment_ID = inserted.Comment_ID
	commentInsert.Datetime_Create = inserted.Datetime_Create
	commentInsert.Datetime_Update = inserted.Datetime_Update

	go services.NotifyAdminsOfNewComment(commentInsert)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment submitted for approval",
		"comment": commentInsert,
	})
}

// GetModerationQueue returns every comment for the admin dashboard:
// pending before approved, newest first within each partition. Two admins
// working from stale lists still see urgent items on top.
func GetModerationQueue(c *gin.Context) {
	var comments []models.Comment
	err := initializers.DB.From("comment").
		Order(goqu.C("approved").Asc(), goqu.C("datetime_create").Desc()).
		ScanStructs(&comments)
	if err != nil {
		log.Printf("Failed to fetch moderation queue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func setCommentApproval(c *gin.Context, approved bool) {
	commentID, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID", "details": err.Error()})
		return
	}

	var existing models.Comment
	found, err := initializers.DB.From("comment").
		Where(goqu.C("comment_id").Eq(commentID)).
		ScanStruct(&existing)
	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	// Re-applying the current state is a no-op write that still succeeds
	updateQuery := initializers.DB.Update("comment").
		Set(goqu.Record{
			"approved":        approved,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("comment_id").Eq(commentID))

	result, err := updateQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to update comment approval: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment status", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No rows were updated"})
		return
	}

	status := models.CommentStatusPending
	if approved {
		status = models.CommentStatusApproved
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Comment status updated",
		"approved": approved,
		"status":   status,
	})
}

// ApproveComment makes a comment publicly visible under its post.
func ApproveComment(c *gin.Context) {
	setCommentApproval(c, true)
}

// UnapproveComment returns a comment to the pending state, removing it
// from public view.
func UnapproveComment(c *gin.Context) {
	setCommentApproval(c, false)
}

// DeleteComment removes a comment permanently.
func DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID", "details": err.Error()})
		return
	}

	var existing models.Comment
	found, err := initializers.DB.From("comment").
		Where(goqu.C("comment_id").Eq(commentID)).
		ScanStruct(&existing)
	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	deleteQuery := initializers.DB.Delete("comment").
		Where(goqu.C("comment_id").Eq(commentID))

	result, err := deleteQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to delete comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No rows were deleted"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
