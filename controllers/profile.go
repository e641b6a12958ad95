package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProfileInput defines the expected JSON structure for profile updates
type UpdateProfileInput struct {
	Name  *string    `json:"name"`
	Email *string    `json:"email" binding:"omitempty,email"`
	Phone *string    `json:"phone"`
	DOB   *time.Time `json:"dob"`
}

func currentCustomer(c *gin.Context) (*models.Customer, bool) {
	customerID, exists := c.Get("customerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return nil, false
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &customer, true
}

// ViewProfile returns the authenticated customer's profile
func ViewProfile(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id": customer.CustomerID,
		"name":        customer.Name,
		"email":       customer.Email,
		"phone":       customer.Phone,
		"dob":         customer.DOB,
		"profile_img": customer.ProfileImg,
	})
}

// UpdateProfile applies a partial update to the authenticated customer
func UpdateProfile(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if customer.Phone != *input.Phone {
			var existing models.Customer
			err := config.DB.Where("phone = ?", *input.Phone).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		if customer.Email != *input.Email {
			var existing models.Customer
			err := config.DB.Where("email = ?", *input.Email).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Email = *input.Email
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.DOB != nil {
		customer.DOB = input.DOB
	}

	if err := config.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id": customer.CustomerID,
		"name":        customer.Name,
		"email":       customer.Email,
		"phone":       customer.Phone,
		"dob":         customer.DOB,
	})
}

// DeleteProfile removes the authenticated customer's account
func DeleteProfile(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
