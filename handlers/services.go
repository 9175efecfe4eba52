package handlers

import (
	"fmt"
	"net/http"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func decorateService(s *models.ConsultationService) {
	s.FormattedPrice = utils.FormatMoney(s.Price, s.Currency)
	if s.DurationMinutes >= 60 && s.DurationMinutes%60 == 0 {
		hours := s.DurationMinutes / 60
		unit := "hours"
		if hours == 1 {
			unit = "hour"
		}
		s.FormattedDuration = fmt.Sprintf("%d %s", hours, unit)
	} else {
		s.FormattedDuration = fmt.Sprintf("%d minutes", s.DurationMinutes)
	}
}

// ListConsultationServices returns bookable services; public callers see
// active ones only.
func ListConsultationServices(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	services, err := ServiceRepo.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	for i := range services {
		decorateService(&services[i])
	}
	c.JSON(http.StatusOK, gin.H{"results": services, "count": len(services)})
}

// GetConsultationService returns one service by slug.
func GetConsultationService(c *gin.Context) {
	s, err := ServiceRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
		return
	}
	if s == nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", "")
		return
	}
	decorateService(s)
	c.JSON(http.StatusOK, s)
}

// FeaturedConsultationServices returns featured active services.
func FeaturedConsultationServices(c *gin.Context) {
	services, err := ServiceRepo.GetFeatured()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list featured services", err.Error())
		return
	}
	for i := range services {
		decorateService(&services[i])
	}
	c.JSON(http.StatusOK, gin.H{"results": services})
}

// CreateConsultationService adds a service.
func CreateConsultationService(c *gin.Context) {
	var s models.ConsultationService
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	s.ID = uuid.New().String()
	if s.Slug == "" {
		s.Slug = utils.Slugify(s.Name)
	}
	if err := ServiceRepo.Create(&s); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service", err.Error())
		return
	}
	decorateService(&s)
	c.JSON(http.StatusCreated, s)
}

// UpdateConsultationService replaces a service by ID.
func UpdateConsultationService(c *gin.Context) {
	var s models.ConsultationService
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	s.ID = c.Param("id")
	if s.Slug == "" {
		s.Slug = utils.Slugify(s.Name)
	}
	if err := ServiceRepo.Update(&s); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update service", err.Error())
		return
	}
	decorateService(&s)
	c.JSON(http.StatusOK, s)
}

// DeleteConsultationService removes a service.
func DeleteConsultationService(c *gin.Context) {
	if err := ServiceRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ReorderConsultationServices applies new display priorities.
func ReorderConsultationServices(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := ServiceRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
