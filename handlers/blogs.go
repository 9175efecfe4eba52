package handlers

import (
	"net/http"
	"strconv"
	"time"

	blogRepo "lightfield/database/repository/blog"
	"lightfield/models"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListBlogs returns blog posts. Public callers see published posts only,
// paginated; admins pass ?all=true for drafts too.
func ListBlogs(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "12"), 10, 64)

	filter := blogRepo.ListFilter{
		PublishedOnly: c.Query("all") != "true",
		Category:      c.Query("category"),
		FeaturedOnly:  c.Query("featured") == "true",
		Search:        c.Query("search"),
		Page:          page,
		PageSize:      pageSize,
	}
	posts, total, err := BlogRepo.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list blog posts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": posts, "count": total, "page": page, "page_size": pageSize})
}

// GetBlog returns one post by slug. Public detail views bump the view count.
func GetBlog(c *gin.Context) {
	post, err := BlogRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch blog post", err.Error())
		return
	}
	if post == nil || (!post.IsPublished && c.Query("preview") != "true") {
		utils.JSONError(c, http.StatusNotFound, "Blog post not found", "")
		return
	}
	if post.IsPublished {
		if err := BlogRepo.IncrementViewCount(post.Slug); err == nil {
			post.ViewCount++
		}
	}
	c.JSON(http.StatusOK, post)
}

// CreateBlog adds a post and queues AI overview generation.
func CreateBlog(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	post.ID = uuid.New().String()
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.IsPublished && post.PublishDate == nil {
		now := time.Now()
		post.PublishDate = &now
	}
	if err := BlogRepo.Create(&post); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create blog post", err.Error())
		return
	}
	if EnqueueOverview != nil && post.IsPublished {
		EnqueueOverview(post.ID)
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateBlog replaces a post by ID and re-queues overview generation.
func UpdateBlog(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	post.ID = c.Param("id")
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.IsPublished && post.PublishDate == nil {
		now := time.Now()
		post.PublishDate = &now
	}
	if err := BlogRepo.Update(&post); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to update blog post", err.Error())
		return
	}
	if EnqueueOverview != nil && post.IsPublished {
		EnqueueOverview(post.ID)
	}
	c.JSON(http.StatusOK, post)
}

// DeleteBlog removes a post.
func DeleteBlog(c *gin.Context) {
	if err := BlogRepo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete blog post", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}

// ReorderBlogs applies new display priorities.
func ReorderBlogs(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := BlogRepo.Reorder(req.Items); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reorder blog posts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// BlogAIAssist generates an editorial suggestion for the admin editor.
func BlogAIAssist(c *gin.Context) {
	var input struct {
		Instruction string `json:"instruction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	suggestion, err := Gemini.BlogAssist(c.Request.Context(), input.Instruction)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "AI assist failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// BlogAIOverview generates an overview for a stored post (by slug) or for
// ad-hoc title+content, storing it when the post exists.
func BlogAIOverview(c *gin.Context) {
	var input struct {
		Slug    string `json:"slug"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	title, content := input.Title, input.Content
	var postID string
	if input.Slug != "" {
		post, err := BlogRepo.GetBySlug(input.Slug)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch blog post", err.Error())
			return
		}
		if post == nil {
			utils.JSONError(c, http.StatusNotFound, "Blog post not found", "")
			return
		}
		title, content, postID = post.Title, post.Content, post.ID
	}
	if content == "" {
		utils.JSONError(c, http.StatusBadRequest, "Nothing to summarize", "")
		return
	}

	overview, err := Gemini.GenerateOverview(c.Request.Context(), title, content)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Overview generation failed", err.Error())
		return
	}
	if postID != "" {
		if err := BlogRepo.SetAIOverview(postID, overview); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to store overview", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ai_overview": overview})
}
