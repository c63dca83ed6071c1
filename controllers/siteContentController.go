package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EminenceChannel/initializers"
	"github.com/EminenceChannel/models"
	"github.com/doug-martin/goqu/v9"
)

// GetSiteContent returns the editable field map for one of the fixed page
// documents.
func GetSiteContent(c *gin.Context) {
	pageID := c.Param("page_id")
	if !models.IsValidPage(pageID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var content models.SiteContent
	found, err := initializers.DB.From("site_content").
		Where(goqu.C("page_id").Eq(pageID)).
		ScanStruct(&content)
	if err != nil {
		log.Printf("Failed to fetch site content for %s: %v", pageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page content", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// UpdateSiteContent overwrites a page document with the submitted field
// map. Fields absent from the payload are gone afterward; the page set
// itself is fixed, so updates never create documents.
func UpdateSiteContent(c *gin.Context) {
	pageID := c.Param("page_id")
	if !models.IsValidPage(pageID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var updateData models.SiteContentUpdate
	if err := c.BindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if updateData.Fields == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fields are required"})
		return
	}

	fieldsJSON, err := json.Marshal(updateData.Fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields", "details": err.Error()})
		return
	}

	updateQuery := initializers.DB.Update("site_content").
		Set(goqu.Record{
			"fields":          fieldsJSON,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("page_id").Eq(pageID))

	result, err := updateQuery.Executor().Exec()
	if err != nil {
		log.Printf("Failed to update site content for %s: %v", pageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page content", "details": err.Error()})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page content updated successfully"})
}
