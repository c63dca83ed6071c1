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

// CreateRequest accepts a visitor prayer request. Requests have no public
// view; the visitor receives only a synchronous acknowledgment.
func CreateRequest(c *gin.Context) {
	var requestData models.PrayerRequestCreate
	if err := c.BindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if requestData.First_Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name is required"})
		return
	}
	if requestData.Last_Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Last name is required"})
		return
	}
	if requestData.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if requestData.Request_Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request text is required"})
		return
	}
	if len([]rune(requestData.Request_Text)) > models.RequestTextMaxLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request text exceeds maximum length of 600 characters"})
		return
	}
	if !models.IsValidContactPreference(requestData.Contact_Preference) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contact preference is required"})
		return
	}

	requestInsert := models.PrayerRequest{
		First_Name:         requestData.First_Name,
		Last_Name:          requestData.Last_Name,
		Email:              requestData.Email,
		Phone:              requestData.Phone,
		Request_Text:       requestData.Request_Text,
		Contact_Preference: requestData.Contact_Preference,
	}

	insert := initializers.DB.Insert("prayer_request").
		Rows(requestInsert).
		Returning("request_id", "datetime_create")

	var inserted struct {
		Request_ID      int       `db:"request_id"`
		Datetime_Create time.Time `db:"datetime_create"`
	}

	_, err := insert.Executor().ScanStruct(&inserted)
	if err != nil {
		log.Printf("Failed to create prayer request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request", "details": err.Error()})
		return
	}

	requestInsert.Request_ID = inserted.Request_ID
	requestInsert.Datetime_Create = inserted.Datetime_Create

	go services.NotifyAdminsOfNewRequest(requestInsert)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your request has been received. God bless you.",
	})
}

// GetRequests returns prayer requests for the admin dashboard, newest
// first. By default only the latest request is returned alongside the
// total count; ?all=true expands the full list.
func GetRequests(c *gin.Context) {
	showAll, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	var requests []models.PrayerRequest
	err := initializers.DB.From("prayer_request").
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&requests)
	if err != nil {
		log.Printf("Failed to fetch prayer requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	if requests == nil {
		requests = []models.PrayerRequest{}
	}

	total := len(requests)
	if !showAll && total > 1 {
		requests = requests[:1]
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    total,
		"showAll":  showAll,
	})
}

// DeleteRequest removes a prayer request permanently.
func DeleteRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID", "details": err.Error()})
		return
	}

	var existing models.PrayerRequest
	found, err := initializers.DB.From("prayer_request").
		Where(goqu.C("request_id").Eq(requestID)).
		ScanStruct(&existing)
	if err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	deleteQuery := initializers.DB.Delete("prayer_request").
		Where(goqu.C("request_id").Eq(requestID))

	result, err := deleteQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to delete request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No rows were deleted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}
