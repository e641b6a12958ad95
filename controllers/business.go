package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBusinessInput defines the expected JSON structure for registering a business
type CreateBusinessInput struct {
	PhoneNumber string   `json:"phone_number" binding:"required"`
	OwnerName   string   `json:"owner_name" binding:"required"`
	SalonName   string   `json:"salon_name" binding:"required"`
	OwnerEmail  string   `json:"owner_email" binding:"required,email"`
	GST         string   `json:"gst"`
	SalonDesc   string   `json:"salon_description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// UpdateBusinessInput defines the expected JSON structure for partial updates
type UpdateBusinessInput struct {
	PhoneNumber *string  `json:"phone_number"`
	OwnerName   *string  `json:"owner_name"`
	SalonName   *string  `json:"salon_name"`
	OwnerEmail  *string  `json:"owner_email" binding:"omitempty,email"`
	GST         *string  `json:"gst"`
	SalonDesc   *string  `json:"salon_description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// CreateBusiness registers a new salon
func CreateBusiness(c *gin.Context) {
	var input CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Phone number is unique across businesses
	var existing models.Business
	err := config.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Business with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	business := models.Business{
		PhoneNumber: input.PhoneNumber,
		OwnerName:   input.OwnerName,
		SalonName:   input.SalonName,
		OwnerEmail:  input.OwnerEmail,
		GST:         input.GST,
		SalonDesc:   input.SalonDesc,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	if err := config.DB.Create(&business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create business")
		return
	}

	c.JSON(http.StatusCreated, business)
}

// GetBusinesses lists all registered salons
func GetBusinesses(c *gin.Context) {
	var businesses []models.Business
	if err := config.DB.Find(&businesses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve businesses")
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusiness retrieves a salon by ID
func GetBusiness(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateBusiness applies a partial update to a salon
func UpdateBusiness(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	var input UpdateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PhoneNumber != nil {
		if !utils.ValidatePhone(*input.PhoneNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if business.PhoneNumber != *input.PhoneNumber {
			var existing models.Business
			err := config.DB.Where("phone_number = ?", *input.PhoneNumber).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another business with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		business.PhoneNumber = *input.PhoneNumber
	}
	if input.OwnerName != nil {
		business.OwnerName = *input.OwnerName
	}
	if input.SalonName != nil {
		business.SalonName = *input.SalonName
	}
	if input.OwnerEmail != nil {
		business.OwnerEmail = *input.OwnerEmail
	}
	if input.GST != nil {
		business.GST = *input.GST
	}
	if input.SalonDesc != nil {
		business.SalonDesc = *input.SalonDesc
	}
	if input.Latitude != nil {
		business.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = input.Longitude
	}

	if err := config.DB.Save(&business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update business")
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness removes a salon and cascades to everything it owns
func DeleteBusiness(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	// Dependent rows go with the business
	result := config.DB.Select(clause.Associations).Where("id = ?", businessUUID).Delete(&models.Business{ID: businessUUID})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete business")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

// UploadBusinessImage accepts a multipart profile image capped at 2 MB
func UploadBusinessImage(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	var business models.Business
	if err := config.DB.First(&business, "id = ?", businessUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	file, err := c.FormFile("profile_img")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "profile_img file is required")
		return
	}
	if !utils.ValidateImageSize(file.Size) {
		utils.RespondWithError(c, http.StatusBadRequest, "File size exceeds the 2 MB limit")
		return
	}

	dir := filepath.Join(config.Cfg.UploadDir, "profiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	dst := filepath.Join(dir, business.ID.String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	if err := config.DB.Model(&business).Update("profile_img", dst).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_img": dst})
}
