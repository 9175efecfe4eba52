package handlers

import (
	"net/http"

	blogRepo "lightfield/database/repository/blog"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
)

// DashboardStats returns the headline numbers for the admin dashboard.
func DashboardStats(c *gin.Context) {
	bookingStats, err := BookingRepo.Stats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	totalViews, err := BlogRepo.TotalViews()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	contactCounts, err := ContactRepo.CountByStatus()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	chatAnalytics, err := ConversationRepo.Analytics()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":        bookingStats,
		"blog_views":      totalViews,
		"contacts":        contactCounts,
		"unread_contacts": contactCounts["unread"],
		"chat":            chatAnalytics,
	})
}

// PostsByCategoryChart feeds the posts-per-category chart.
func PostsByCategoryChart(c *gin.Context) {
	counts, err := BlogRepo.CountByCategory()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute chart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": counts})
}

// PostsOverTimeChart feeds the posts-per-month chart.
func PostsOverTimeChart(c *gin.Context) {
	rows, err := BlogRepo.CountByMonth(12)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute chart", err.Error())
		return
	}
	if rows == nil {
		rows = []blogRepo.MonthCount{}
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}

// BlogViewsChart feeds the blog-views-over-time chart.
func BlogViewsChart(c *gin.Context) {
	rows, err := BlogRepo.ViewsByMonth(12)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute chart", err.Error())
		return
	}
	if rows == nil {
		rows = []blogRepo.MonthViews{}
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}

// ContactsByStatusChart feeds the contact inbox breakdown chart.
func ContactsByStatusChart(c *gin.Context) {
	counts, err := ContactRepo.CountByStatus()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute chart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": counts})
}

// ChatTrendChart feeds the chat-usage-over-time chart.
func ChatTrendChart(c *gin.Context) {
	rows, err := ConversationRepo.SessionsPerDay(30)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute chart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}
