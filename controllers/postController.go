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

// GetPublicPosts returns the publication views for one category page,
// newest first. The category is explicit request configuration; pages that
// resolve no valid category fetch nothing.
func GetPublicPosts(c *gin.Context) {
	category := c.Query("category")
	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown or missing category"})
		return
	}

	var posts []models.Post
	err := initializers.DB.From("post").
		Where(goqu.C("category").Eq(category)).
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&posts)
	if err != nil {
		log.Printf("Failed to fetch posts for category %s: %v", category, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"posts":    services.BuildPostViews(posts),
	})
}

// GetAllPosts returns every post for the admin list, newest first.
func GetAllPosts(c *gin.Context) {
	var posts []models.Post
	err := initializers.DB.From("post").
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&posts)
	if err != nil {
		log.Printf("Failed to fetch posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost returns one post by id for the admin editor.
func GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID", "details": err.Error()})
		return
	}

	var post models.Post
	found, err := initializers.DB.From("post").
		Where(goqu.C("post_id").Eq(postID)).
		ScanStruct(&post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost stores a new post. The id and timestamps are assigned by the
// database, never by the caller.
func CreatePost(c *gin.Context) {
	var postData models.PostCreate

	if err := c.BindJSON(&postData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if postData.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if !models.IsValidCategory(postData.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if postData.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	postInsert := models.Post{
		Title:     postData.Title,
		Category:  postData.Category,
		Scripture: postData.Scripture,
		Image:     postData.Image,
		Content:   postData.Content,
	}

	insert := initializers.DB.Insert("post").
		Rows(postInsert).
		Returning("post_id", "datetime_create", "datetime_update")

	var inserted struct {
		Post_ID         int       `db:"post_id"`
		Datetime_Create time.Time `db:"datetime_create"`
		Datetime_Update time.Time `db:"datetime_update"`
	}

	_, err := insert.Executor().ScanStruct(&inserted)
	if err != nil {
		log.Printf("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "details": err.Error()})
		return
	}

	postInsert.Post_ID = inserted.Post_ID
	postInsert.Datetime_Create = inserted.Datetime_Create
	postInsert.Datetime_Update = inserted.Datetime_Update

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    postInsert,
	})
}

// UpdatePost merges the provided fields into an existing post.
func UpdatePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID", "details": err.Error()})
		return
	}

	var updateData models.PostUpdate
	if err := c.BindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if updateData.Category != nil && !models.IsValidCategory(*updateData.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	var existing models.Post
	found, err := initializers.DB.From("post").
		Where(goqu.C("post_id").Eq(postID)).
		ScanStruct(&existing)
	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	record := goqu.Record{"datetime_update": goqu.L("NOW()")}
	if updateData.Title != nil {
		record["title"] = *updateData.Title
	}
	if updateData.Category != nil {
		record["category"] = *updateData.Category
	}
	if updateData.Scripture != nil {
		record["scripture"] = *updateData.Scripture
	}
	if updateData.Image != nil {
		record["image"] = *updateData.Image
	}
	if updateData.Content != nil {
		record["content"] = *updateData.Content
	}

	updateQuery := initializers.DB.Update("post").
		Set(record).
		Where(goqu.C("post_id").Eq(postID))

	result, err := updateQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to update post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No rows were updated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeletePost removes a post permanently. Comments attached to it stay in
// the store; they simply stop being reachable from any public page.
func DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID", "details": err.Error()})
		return
	}

	var existing models.Post
	found, err := initializers.DB.From("post").
		Where(goqu.C("post_id").Eq(postID)).
		ScanStruct(&existing)
	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	deleteQuery := initializers.DB.Delete("post").
		Where(goqu.C("post_id").Eq(postID))

	result, err := deleteQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to delete post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No rows were deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
