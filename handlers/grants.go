package handlers

import (
	"net/http"
	"time"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type grantView struct {
	models.Grant
	IsApplicationOpen bool `json:"is_application_open"`
	DaysUntilDeadline int  `json:"days_until_deadline"`
}

func toGrantView(g models.Grant) grantView {
	now := time.Now()
	return grantView{
		Grant:             g,
		IsApplicationOpen: g.IsApplicationOpen(now),
		DaysUntilDeadline: g.DaysUntilDeadline(now),
	}
}

func toGrantViews(grants []models.Grant) []grantView {
	views := make([]grantView, 0, len(grants))
	for _, g := range grants {
		views = append(views, toGrantView(g))
	}
	return views
}

// ListGrants returns grants; public callers see active ones only.
func ListGrants(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	grants, err := GrantRepo.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list grants", err.Error())
		return
	}
	views := toGrantViews(grants)
	c.JSON(http.StatusOK, gin.H{"results": views, "count": len(views)})
}

// GetGrant returns one grant by slug.
func GetGrant(c *gin.Context) {
	g, err := GrantRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch grant", err.Error())
		return
	}
	if g == nil {
		utils.JSONError(c, http.StatusNotFound, "Grant not found", "")
		return
	}
	c.JSON(http.StatusOK, toGrantView(*g))
}

// FeaturedGrants returns the top three featured grants.
func FeaturedGrants(c *gin.Context) {
	grants, err := GrantRepo.GetFeatured(3)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list featured grants", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": toGrantViews(grants)})
}

// OpenGrants returns open grants ordered by nearest deadline.
func OpenGrants(c *gin.Context) {
	grants, err := GrantRepo.GetOpen()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list open grants", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": toGrantViews(grants)})
}

// CreateGrant adds a grant.
func CreateGrant(c *gin.Context) {
	var g models.Grant
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	g.ID = uuid.New().String()
	if g.Slug == "" {
		g.Slug = utils.Slugify(g.Title)
	}
	if err := GrantRepo.Create(&g); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create grant", err.Error())
		return
	}
	c.JSON(http.StatusCreated, toGrantView(g))
}

// UpdateGrant replaces a grant by ID.
func UpdateGrant(c *gin.Context) {
	var g models.Grant
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	g.ID = c.Param("id")
	if g.Slug == "" {
		g.Slug = utils.Slugify(g.Title)
	}
	if err := GrantRepo.Update(&g); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update grant", err.Error())
		return
	}
	c.JSON(http.StatusOK, toGrantView(g))
}

// DeleteGrant removes a grant.
func DeleteGrant(c *gin.Context) {
	if err := GrantRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete grant", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Grant deleted"})
}

// ReorderGrants applies new display priorities.
func ReorderGrants(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := GrantRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder grants", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
