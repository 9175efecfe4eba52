package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SoloChat streams an assistant reply as chunked plain text. The session ID is
// echoed (or minted) in the X-Session-Id header before the stream starts.
func SoloChat(c *gin.Context) {
	var input struct {
		Message   string `json:"message" binding:"required"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message must not be empty", "")
		return
	}

	sessionID := SoloService.ResolveSession(input.SessionID)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Header("X-Session-Id", sessionID)
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)
	err := SoloService.Chat(c.Request.Context(), sessionID, input.Message, func(chunk string) error {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		if canFlush {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		// Headers are already out; the error goes down the stream as text.
		utils.GetLogger().Error("Solo stream failed", zap.String("session", sessionID), zap.Error(err))
		c.Writer.WriteString("Error: something went wrong while generating a response.")
		if canFlush {
			flusher.Flush()
		}
	}
}

// SoloAnalytics returns overall chat usage aggregates for admins.
func SoloAnalytics(c *gin.Context) {
	analytics, err := ConversationRepo.Analytics()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// SoloTrends returns chat exchanges per day over the requested window.
func SoloTrends(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		utils.JSONError(c, http.StatusBadRequest, "days must be between 1 and 365", "")
		return
	}
	rows, err := ConversationRepo.SessionsPerDay(days)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute trends", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows, "days": days})
}
