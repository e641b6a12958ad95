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

// CreateBookingInput defines the expected JSON structure for app bookings
type CreateBookingInput struct {
	BusinessID      uuid.UUID   `json:"business_id" binding:"required"`
	ServiceIDs      []uuid.UUID `json:"service_ids" binding:"required,min=1"`
	PackageIDs      []uuid.UUID `json:"package_ids"`
	StaffID         *uuid.UUID  `json:"staff_id"`
	AppointmentDate time.Time   `json:"appointment_date" binding:"required"`
	AppointmentTime string      `json:"appointment_time" binding:"required"`
	PayMode         string      `json:"pay_mode"`
	Notes           string      `json:"notes"`
}

// CancelBookingInput defines the expected JSON structure for cancellation
type CancelBookingInput struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

// bookingClient finds the business-side client row for the customer, creating
// a walk-in record on first booking so the salon sees the customer in its
// client list.
func bookingClient(tx *gorm.DB, businessID uuid.UUID, customer *models.Customer) (*models.Client, error) {
	var client models.Client
	err := tx.Where("business_id = ? AND client_phone = ?", businessID, customer.Phone).
		First(&client).Error
	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		BusinessID:  businessID,
		ClientName:  customer.Name,
		ClientType:  models.ClientTypeWalkIn,
		ClientEmail: customer.Email,
		ClientPhone: customer.Phone,
		ClientDOB:   customer.DOB,
	}
	if err := tx.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateBooking books an appointment on behalf of the authenticated customer
func CreateBooking(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.PayMode != "" && !models.ValidPayMode(input.PayMode) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pay mode")
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", input.BusinessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
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

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	client, err := bookingClient(tx, input.BusinessID, customer)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	customerID := customer.ID
	appointment := models.Appointment{
		BusinessID:      input.BusinessID,
		ClientID:        client.ID,
		StaffID:         input.StaffID,
		CustomerID:      &customerID,
		Services:        svcs,
		Packages:        pkgs,
		AppointmentDate: utils.BeginningOfDay(input.AppointmentDate),
		AppointmentTime: input.AppointmentTime,
		Status:          models.StatusScheduled,
		PaymentStatus:   models.PaymentPending,
		PayMode:         input.PayMode,
		Notes:           input.Notes,
		TotalPrice:      totalPrice,
		DurationInMins:  duration,
	}
	if appointment.PayMode == "" {
		appointment.PayMode = models.PayModeOffline
	}

	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":     appointment.ID,
		"status":         appointment.Status,
		"payment_status": appointment.PaymentStatus,
		"total_price":    appointment.TotalPrice,
		"duration":       appointment.DurationInMins,
	})
}

// customerBooking loads a booking owned by the authenticated customer
func customerBooking(c *gin.Context, customer *models.Customer, bookingID uuid.UUID) (*models.Appointment, bool) {
	var appointment models.Appointment
	err := config.DB.Where("id = ? AND customer_id = ?", bookingID, customer.ID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &appointment, true
}

// CancelBooking flips the booking to Cancelled
func CancelBooking(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input CancelBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "booking_id is required")
		return
	}

	appointment, ok := customerBooking(c, customer, input.BookingID)
	if !ok {
		return
	}

	if appointment.Status == models.StatusCancelled {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking is already cancelled")
		return
	}
	if appointment.Status == models.StatusCompleted {
		utils.RespondWithError(c, http.StatusBadRequest, "Completed bookings cannot be cancelled")
		return
	}

	if err := config.DB.Model(appointment).Update("status", models.StatusCancelled).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "status": models.StatusCancelled})
}

// BookingStatus returns the booking's status and payment state
func BookingStatus(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	appointment, ok := customerBooking(c, customer, bookingUUID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":       appointment.ID,
		"status":           appointment.Status,
		"payment_status":   appointment.PaymentStatus,
		"appointment_date": appointment.AppointmentDate.Format("2006-01-02"),
		"appointment_time": appointment.AppointmentTime,
		"total_price":      appointment.TotalPrice,
	})
}
