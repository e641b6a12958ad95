package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/services"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	BusinessID      uuid.UUID   `json:"business_id" binding:"required"`
	ClientID        uuid.UUID   `json:"client_id" binding:"required"`
	StaffID         *uuid.UUID  `json:"staff_id"`
	ServiceIDs      []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	PackageIDs      []uuid.UUID `json:"package_ids"`
	AppointmentDate time.Time   `json:"appointment_date" binding:"required"`
	AppointmentTime string      `json:"appointment_time" binding:"required"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	PayMode         string      `json:"pay_mode"`
	Notes           string      `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for updates
type UpdateAppointmentInput struct {
	ClientID        *uuid.UUID   `json:"client_id"`
	StaffID         *uuid.UUID   `json:"staff_id"`
	ServiceIDs      *[]uuid.UUID `json:"service_ids" binding:"omitempty,min=1"`
	PackageIDs      *[]uuid.UUID `json:"package_ids"`
	AppointmentDate *time.Time   `json:"appointment_date"`
	AppointmentTime *string      `json:"appointment_time"`
	Status          *string      `json:"status"`
	PaymentStatus   *string      `json:"payment_status"`
	PayMode         *string      `json:"pay_mode"`
	Notes           *string      `json:"notes"`
}

// resolveClient checks the client exists and is owned by the business
func resolveClient(db *gorm.DB, businessID, clientID uuid.UUID) (*models.Client, int, string) {
	var client models.Client
	if err := db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusBadRequest, "Client not found"
		}
		return nil, http.StatusInternalServerError, "Database error"
	}
	if client.BusinessID != businessID {
		return nil, http.StatusBadRequest, "Client belongs to a different business"
	}
	return &client, 0, ""
}

// resolveStaff checks the team member exists and is owned by the business
func resolveStaff(db *gorm.DB, businessID, staffID uuid.UUID) (*models.TeamMember, int, string) {
	var staff models.TeamMember
	if err := db.First(&staff, "id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusBadRequest, "Staff member not found"
		}
		return nil, http.StatusInternalServerError, "Database error"
	}
	if staff.BusinessID != businessID {
		return nil, http.StatusBadRequest, "Staff member belongs to a different business"
	}
	return &staff, 0, ""
}

// resolveServices loads the selected services, all owned by the business
func resolveServices(db *gorm.DB, businessID uuid.UUID, ids []uuid.UUID) ([]models.Service, int, string) {
	svcs := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		var svc models.Service
		if err := db.First(&svc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, http.StatusBadRequest, "Service not found: " + id.String()
			}
			return nil, http.StatusInternalServerError, "Database error"
		}
		if svc.BusinessID != businessID {
			return nil, http.StatusBadRequest, "Service belongs to a different business: " + id.String()
		}
		svcs = append(svcs, svc)
	}
	return svcs, 0, ""
}

// resolvePackages loads the selected packages, all owned by the business
func resolvePackages(db *gorm.DB, businessID uuid.UUID, ids []uuid.UUID) ([]models.Package, int, string) {
	pkgs := make([]models.Package, 0, len(ids))
	for _, id := range ids {
		var pkg models.Package
		if err := db.First(&pkg, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, http.StatusBadRequest, "Package not found: " + id.String()
			}
			return nil, http.StatusInternalServerError, "Database error"
		}
		if pkg.BusinessID != businessID {
			return nil, http.StatusBadRequest, "Package belongs to a different business: " + id.String()
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, 0, ""
}

// CreateAppointment books an appointment. Client, staff, services and
// packages must all belong to the given business; total price and duration
// are derived from the selection at write time. The appointment and its
// associations are written in one transaction.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status != "" && !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	if input.PaymentStatus != "" && !models.ValidPaymentStatus(input.PaymentStatus) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment status")
		return
	}
	if input.PayMode != "" && !models.ValidPayMode(input.PayMode) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pay mode")
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", input.BusinessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, code, msg := resolveClient(config.DB, input.BusinessID, input.ClientID); code != 0 {
		utils.RespondWithError(c, code, msg)
		return
	}
	if input.StaffID != nil {
		if _, code, msg := resolveStaff(config.DB, input.BusinessID, *input.StaffID); code != 0 {
			utils.RespondWithError(c, code, msg)
			return
		}
	}

	svcs, code, msg := resolveServices(config.DB, input.BusinessID, input.ServiceIDs)
	if code != 0 {
		utils.RespondWithError(c, code, msg)
		return
	}
	pkgs, code, msg := resolvePackages(config.DB, input.BusinessID, input.PackageIDs)
	if code != 0 {
		utils.RespondWithError(c, code, msg)
		return
	}

	totalPrice, duration := services.AppointmentTotals(svcs, pkgs)

	appointment := models.Appointment{
		BusinessID:      input.BusinessID,
		ClientID:        input.ClientID,
		StaffID:         input.StaffID,
		Services:        svcs,
		Packages:        pkgs,
		AppointmentDate: utils.BeginningOfDay(input.AppointmentDate),
		AppointmentTime: input.AppointmentTime,
		Status:          input.Status,
		PaymentStatus:   input.PaymentStatus,
		PayMode:         input.PayMode,
		Notes:           input.Notes,
		TotalPrice:      totalPrice,
		DurationInMins:  duration,
	}
	if appointment.Status == "" {
		appointment.Status = models.StatusScheduled
	}
	if appointment.PaymentStatus == "" {
		appointment.PaymentStatus = models.PaymentPending
	}
	if appointment.PayMode == "" {
		appointment.PayMode = models.PayModeOffline
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments filtered by business_id and an
// inclusive start_date/end_date range (applied only when both are present).
func GetAppointments(c *gin.Context) {
	query := config.DB.Preload("Services").Preload("Packages").Preload("Staff").Preload("Client")

	if businessID := c.Query("business_id"); businessID != "" {
		businessUUID, err := uuid.Parse(businessID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid business_id format")
			return
		}
		query = query.Where("business_id = ?", businessUUID)
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start_date format, expected YYYY-MM-DD")
			return
		}
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end_date format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("appointment_date BETWEEN ? AND ?", start, end)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves an appointment by ID
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	err = config.DB.Preload("Services").Preload("Packages").Preload("Staff").Preload("Client").
		First(&appointment, "id = ?", appointmentUUID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment applies a partial update. Changing the service or
// package selection recomputes the stored totals; cross-tenant references
// are re-checked.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	err = tx.Preload("Services").Preload("Packages").
		First(&appointment, "id = ?", appointmentUUID).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientID != nil {
		if _, code, msg := resolveClient(tx, appointment.BusinessID, *input.ClientID); code != 0 {
			tx.Rollback()
			utils.RespondWithError(c, code, msg)
			return
		}
		appointment.ClientID = *input.ClientID
	}
	if input.StaffID != nil {
		if _, code, msg := resolveStaff(tx, appointment.BusinessID, *input.StaffID); code != 0 {
			tx.Rollback()
			utils.RespondWithError(c, code, msg)
			return
		}
		appointment.StaffID = input.StaffID
	}
	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		appointment.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*input.PaymentStatus) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment status")
			return
		}
		appointment.PaymentStatus = *input.PaymentStatus
	}
	if input.PayMode != nil {
		if !models.ValidPayMode(*input.PayMode) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid pay mode")
			return
		}
		appointment.PayMode = *input.PayMode
	}
	if input.AppointmentDate != nil {
		appointment.AppointmentDate = utils.BeginningOfDay(*input.AppointmentDate)
	}
	if input.AppointmentTime != nil {
		appointment.AppointmentTime = *input.AppointmentTime
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	selectionChanged := input.ServiceIDs != nil || input.PackageIDs != nil
	if selectionChanged {
		svcs := appointment.Services
		pkgs := appointment.Packages

		if input.ServiceIDs != nil {
			var code int
			var msg string
			svcs, code, msg = resolveServices(tx, appointment.BusinessID, *input.ServiceIDs)
			if code != 0 {
				tx.Rollback()
				utils.RespondWithError(c, code, msg)
				return
			}
			if err := tx.Model(&appointment).Association("Services").Replace(svcs); err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update services")
				return
			}
			appointment.Services = svcs
		}
		if input.PackageIDs != nil {
			var code int
			var msg string
			pkgs, code, msg = resolvePackages(tx, appointment.BusinessID, *input.PackageIDs)
			if code != 0 {
				tx.Rollback()
				utils.RespondWithError(c, code, msg)
				return
			}
			if err := tx.Model(&appointment).Association("Packages").Replace(pkgs); err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update packages")
				return
			}
			appointment.Packages = pkgs
		}

		appointment.TotalPrice, appointment.DurationInMins = services.AppointmentTotals(svcs, pkgs)
	}

	if err := tx.Omit("Services", "Packages").Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Select("Services", "Packages").Delete(&models.Appointment{ID: appointmentUUID})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
