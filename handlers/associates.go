package handlers

import (
	"net/http"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListAssociates returns associates. Public callers see active profiles only;
// admins pass ?all=true for the full set.
func ListAssociates(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	associates, err := AssociateRepo.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list associates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": associates, "count": len(associates)})
}

// GetAssociate returns one associate by slug.
func GetAssociate(c *gin.Context) {
	a, err := AssociateRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch associate", err.Error())
		return
	}
	if a == nil {
		utils.JSONError(c, http.StatusNotFound, "Associate not found", "")
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateAssociate adds a new associate profile.
func CreateAssociate(c *gin.Context) {
	var a models.Associate
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	a.ID = uuid.New().String()
	if a.Slug == "" {
		a.Slug = utils.Slugify(a.Name)
	}
	if err := AssociateRepo.Create(&a); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create associate", err.Error())
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAssociate replaces an associate profile by ID.
func UpdateAssociate(c *gin.Context) {
	var a models.Associate
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	a.ID = c.Param("id")
	if a.Slug == "" {
		a.Slug = utils.Slugify(a.Name)
	}
	if err := AssociateRepo.Update(&a); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update associate", err.Error())
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAssociate removes an associate profile.
func DeleteAssociate(c *gin.Context) {
	if err := AssociateRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete associate", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Associate deleted"})
}

// ReorderAssociates applies new display priorities.
func ReorderAssociates(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := AssociateRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder associates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
