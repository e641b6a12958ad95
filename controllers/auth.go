// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/services"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SendOTPInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type VerifyOTPInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

type CheckBusinessInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type SetPasswordInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

type BusinessLoginInput struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// SendOTP issues a fresh code for the phone number
func SendOTP(c *gin.Context) {
	var input SendOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	otpService := services.NewOTPService(config.DB)
	if _, err := otpService.Issue(input.PhoneNumber); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTP checks the submitted code against the most recent one
func VerifyOTP(c *gin.Context) {
	var input VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number and OTP are required")
		return
	}

	otpService := services.NewOTPService(config.DB)
	if err := otpService.Verify(input.PhoneNumber, input.OTP); err != nil {
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

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully"})
}

// CheckBusiness reports whether a business is registered for the phone number
func CheckBusiness(c *gin.Context) {
	var input CheckBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	var business models.Business
	err := config.DB.Where("phone_number = ?", input.PhoneNumber).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":      true,
		"redirect":    "/dashboard",
		"business_id": business.ID,
	})
}

// SetPassword stores a bcrypt hash on the business once the phone number
// holds a fresh OTP verification.
func SetPassword(c *gin.Context) {
	var input SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	otpService := services.NewOTPService(config.DB)
	verified, err := otpService.HasRecentVerification(input.PhoneNumber)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !verified {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number not verified")
		return
	}

	var business models.Business
	if err := config.DB.Where("phone_number = ?", input.PhoneNumber).First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to set password")
		return
	}

	if err := config.DB.Model(&business).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to set password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password set successfully"})
}

// BusinessLogin exchanges phone + password for a JWT
func BusinessLogin(c *gin.Context) {
	var input BusinessLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var business models.Business
	err := config.DB.Where("phone_number = ?", input.PhoneNumber).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if business.Password == "" || !utils.CheckPasswordHash(input.Password, business.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(business.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"business": gin.H{
			"id":        business.ID,
			"salonName": business.SalonName,
			"phone":     business.PhoneNumber,
		},
	})
}
