package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"lightfield/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// UploadImage accepts a multipart image and stores it in Cloudinary.
func UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing image file", err.Error())
		return
	}
	if header.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image too large", "Maximum size is 10MB")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported image type", ext)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read image", err.Error())
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "lightfield")
	result, err := Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Upload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// Health reports the latest stored health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
