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
	"gorm.io/gorm"
)

// SignupInput defines the expected JSON structure for customer signup
type SignupInput struct {
	Name  string     `json:"name" binding:"required"`
	Email string     `json:"email" binding:"required,email"`
	Phone string     `json:"phone" binding:"required"`
	DOB   *time.Time `json:"dob"`
}

// CustomerLoginInput defines the expected JSON structure for customer login
type CustomerLoginInput struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// Signup creates a customer account. The phone number must hold a fresh OTP
// verification; the short public id is drawn by rejection sampling.
func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	otpService := services.NewOTPService(config.DB)
	verified, err := otpService.HasRecentVerification(input.Phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !verified {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number not verified")
		return
	}

	var existing models.Customer
	err = config.DB.Where("phone = ? OR email = ?", input.Phone, input.Email).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone or email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customerID, err := utils.NewCustomerID(func(id string) (bool, error) {
		var count int64
		if err := config.DB.Model(&models.Customer{}).Where("customer_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to allocate customer id")
		return
	}

	customer := models.Customer{
		CustomerID: customerID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		DOB:        input.DOB,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	token, err := utils.GenerateCustomerToken(customer.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"token":   token,
		"customer": gin.H{
			"id":          customer.ID,
			"customer_id": customer.CustomerID,
			"name":        customer.Name,
			"phone":       customer.Phone,
		},
	})
}

// CustomerLogin verifies the submitted OTP inline and returns a JWT
func CustomerLogin(c *gin.Context) {
	var input CustomerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone and OTP are required")
		return
	}

	var customer models.Customer
	err := config.DB.Where("phone = ?", input.Phone).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	otpService := services.NewOTPService(config.DB)
	if err := otpService.Verify(input.Phone, input.OTP); err != nil {
		switch {
		case errors.Is(err, utils.ErrOTPNotFound),
			errors.Is(err, utils.ErrOTPMismatch),
			errors.Is(err, utils.ErrOTPExpired):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	token, err := utils.GenerateCustomerToken(customer.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"customer": gin.H{
			"id":          customer.ID,
			"customer_id": customer.CustomerID,
			"name":        customer.Name,
			"phone":       customer.Phone,
		},
	})
}
