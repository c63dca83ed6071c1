package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EminenceChannel/initializers"
	"github.com/EminenceChannel/models"
	"github.com/doug-martin/goqu/v9"
)

// StorePushToken registers or refreshes a device token for the
// authenticated admin so moderation alerts reach their phone.
func StorePushToken(c *gin.Context) {
	currentAdmin := c.MustGet("currentAdmin").(models.AdminUser)

	var tokenData models.PushTokenRequest
	if err := c.ShouldBindJSON(&tokenData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if len(tokenData.PushToken) < 10 || len(tokenData.PushToken) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid push token length"})
		return
	}

	insert := initializers.DB.Insert("admin_push_tokens").
		Rows(goqu.Record{
			"admin_user_id": currentAdmin.Admin_User_ID,
			"push_token":    tokenData.PushToken,
			"platform":      tokenData.Platform,
		}).
		OnConflict(goqu.DoUpdate("push_token", goqu.Record{
			"admin_user_id":   currentAdmin.Admin_User_ID,
			"platform":        tokenData.Platform,
			"datetime_update": goqu.L("NOW()"),
		}))

	if _, err := insert.Executor().Exec(); err != nil {
		log.Printf("Failed to store push token for admin %d: %v", currentAdmin.Admin_User_ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token stored successfully"})
}
