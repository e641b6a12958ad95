package controllers

import (
	"net/http"
	"time"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardOverview struct {
	TotalClients      int64                `json:"totalClients"`
	TotalTeamMembers  int64                `json:"totalTeamMembers"`
	TotalServices     int64                `json:"totalServices"`
	TotalAppointments int64                `json:"totalAppointments"`
	MonthlyRevenue    float64              `json:"monthlyRevenue"`
	TodayAppointments []models.Appointment `json:"todayAppointments"`
}

// GetDashboardOverview aggregates the business's headline numbers: entity
// counts, scheduled revenue for the current month and today's appointments.
func GetDashboardOverview(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "business_id is required")
		return
	}

	var overview DashboardOverview

	config.DB.Model(&models.Client{}).Where("business_id = ?", businessUUID).Count(&overview.TotalClients)
	config.DB.Model(&models.TeamMember{}).Where("business_id = ?", businessUUID).Count(&overview.TotalTeamMembers)
	config.DB.Model(&models.Service{}).Where("business_id = ?", businessUUID).Count(&overview.TotalServices)
	config.DB.Model(&models.Appointment{}).Where("business_id = ?", businessUUID).Count(&overview.TotalAppointments)

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND appointment_date >= ? AND status != ?",
			businessUUID, firstOfMonth, models.StatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").Scan(&overview.MonthlyRevenue)

	today := utils.BeginningOfDay(now)
	if err := config.DB.Preload("Services").Preload("Staff").Preload("Client").
		Where("business_id = ? AND appointment_date = ?", businessUUID, today).
		Find(&overview.TodayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
