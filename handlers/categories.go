package handlers

import (
	"net/http"

	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListCategories returns all blog categories.
func ListCategories(c *gin.Context) {
	categories, err := CategoryRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": categories, "count": len(categories)})
}

// GetCategory returns one category by ID.
func GetCategory(c *gin.Context) {
	cat, err := CategoryRepo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch category", err.Error())
		return
	}
	if cat == nil {
		utils.JSONError(c, http.StatusNotFound, "Category not found", "")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateCategory adds a new blog category.
func CreateCategory(c *gin.Context) {
	var cat models.BlogCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	cat.ID = uuid.New().String()
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Name)
	}
	if err := CategoryRepo.Create(&cat); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create category", err.Error())
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory replaces a category by ID.
func UpdateCategory(c *gin.Context) {
	var cat models.BlogCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	cat.ID = c.Param("id")
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Name)
	}
	if err := CategoryRepo.Update(&cat); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update category", err.Error())
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory removes a category.
func DeleteCategory(c *gin.Context) {
	if err := CategoryRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete category", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ReorderCategories applies new display priorities.
func ReorderCategories(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := CategoryRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
