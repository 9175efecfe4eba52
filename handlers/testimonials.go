package handlers

import (
	"net/http"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListTestimonials returns testimonials; public callers see active ones only.
func ListTestimonials(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	testimonials, err := TestimonialRepo.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list testimonials", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": testimonials, "count": len(testimonials)})
}

// GetTestimonial returns one testimonial by ID.
func GetTestimonial(c *gin.Context) {
	t, err := TestimonialRepo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch testimonial", err.Error())
		return
	}
	if t == nil {
		utils.JSONError(c, http.StatusNotFound, "Testimonial not found", "")
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTestimonial adds a testimonial.
func CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5", "")
		return
	}
	t.ID = uuid.New().String()
	if err := TestimonialRepo.Create(&t); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create testimonial", err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial replaces a testimonial by ID.
func UpdateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5", "")
		return
	}
	t.ID = c.Param("id")
	if err := TestimonialRepo.Update(&t); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update testimonial", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTestimonial removes a testimonial.
func DeleteTestimonial(c *gin.Context) {
	if err := TestimonialRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete testimonial", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// ReorderTestimonials applies new display priorities.
func ReorderTestimonials(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := TestimonialRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder testimonials", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
