package handlers

import (
	"net/http"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitContact accepts a public contact form submission.
func SubmitContact(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	submission := models.ContactSubmission{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.ContactStatusUnread,
	}
	if err := ContactRepo.Create(&submission); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you, we will be in touch shortly."})
}

// ListContacts returns submissions for the admin inbox, filterable by status.
func ListContacts(c *gin.Context) {
	submissions, err := ContactRepo.GetAll(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list submissions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": submissions, "count": len(submissions)})
}

// GetContact returns one submission by ID.
func GetContact(c *gin.Context) {
	submission, err := ContactRepo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch submission", err.Error())
		return
	}
	if submission == nil {
		utils.JSONError(c, http.StatusNotFound, "Submission not found", "")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// UpdateContactStatus moves a submission between unread/read/responded.
func UpdateContactStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	switch input.Status {
	case models.ContactStatusUnread, models.ContactStatusRead, models.ContactStatusResponded:
	default:
		utils.JSONError(c, http.StatusBadRequest, "Unknown status", input.Status)
		return
	}
	if err := ContactRepo.UpdateStatus(c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update submission", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
