package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"appeals-api/services"
)

// ownerRestriction returns nil for admins (no restriction) and the
// caller's user id for everyone else.
func ownerRestriction(c *gin.Context) *int {
	if isAdmin, _ := c.Get("isAdmin"); isAdmin == true {
		return nil
	}
	userID, _ := c.Get("userID")
	id := userID.(int)
	return &id
}

func respondAppealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAppealNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrStatusNotFound),
		errors.Is(err, services.ErrAttachmentsMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process appeal"})
	}
}

// CreateAppeal registers a new appeal owned by the caller
func CreateAppeal(c *gin.Context) {
	type CreateAppealRequest struct {
		Subject       string `json:"subject" binding:"required"`
		Message       string `json:"message" binding:"required"`
		AttachmentIDs []int  `json:"attachment_ids"`
	}

	var req CreateAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	appeal, err := svc.Appeal.Create(services.CreateAppealInput{
		Subject:       req.Subject,
		Message:       req.Message,
		AttachmentIDs: req.AttachmentIDs,
	}, userID.(int))
	if err != nil {
		respondAppealError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Appeal created successfully",
		"appeal":  appeal,
	})
}

// GetAppeals returns the caller's appeals, or every appeal for admins,
// optionally filtered by status_id and a date_from/date_to range given
// as epoch milliseconds.
func GetAppeals(c *gin.Context) {
	var filter services.ListFilter

	if status := c.Query("status_id"); status != "" {
		statusID, err := strconv.Atoi(status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status_id"})
			return
		}
		filter.StatusID = &statusID
	}
	if from := c.Query("date_from"); from != "" {
		millis, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from"})
			return
		}
		t := time.UnixMilli(millis)
		filter.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		millis, err := strconv.ParseInt(to, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to"})
			return
		}
		t := time.UnixMilli(millis)
		filter.DateTo = &t
	}

	appeals, err := svc.Appeal.List(ownerRestriction(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appeals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appeals": appeals,
		"total":   len(appeals),
	})
}

// GetAppeal returns a single appeal, ownership-checked unless admin
func GetAppeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appeal id"})
		return
	}

	appeal, err := svc.Appeal.Get(id, ownerRestriction(c))
	if err != nil {
		respondAppealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appeal": appeal,
	})
}

// GetAppealHistory returns the audit trail of an appeal, newest first
func GetAppealHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appeal id"})
		return
	}

	history, err := svc.Appeal.History(id, ownerRestriction(c))
	if err != nil {
		respondAppealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// UpdateAppeal lets an administrator change status and/or record a response
func UpdateAppeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appeal id"})
		return
	}

	type UpdateAppealRequest struct {
		StatusID *int    `json:"status_id"`
		Response *string `json:"response"`
	}

	var req UpdateAppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StatusID == nil && req.Response == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	userID, _ := c.Get("userID")

	appeal, err := svc.Appeal.Update(id, services.UpdateAppealInput{
		StatusID: req.StatusID,
		Response: req.Response,
	}, userID.(int))
	if err != nil {
		respondAppealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Appeal updated successfully",
		"appeal":  appeal,
	})
}

// DeleteAppeal hard-deletes an appeal (admin only)
func DeleteAppeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appeal id"})
		return
	}

	if err := svc.Appeal.Delete(id); err != nil {
		respondAppealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appeal deleted successfully"})
}

// GetAppealStatuses returns the four canonical statuses for UI pickers
func GetAppealStatuses(c *gin.Context) {
	statuses, err := svc.Appeal.Statuses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statuses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": statuses,
	})
}
