// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/services"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	BusinessID     uuid.UUID  `json:"business_id" binding:"required"`
	CategoryID     *uuid.UUID `json:"category_id"`
	ServiceName    string     `json:"service_name" binding:"required"`
	ServiceType    string     `json:"service_type" binding:"required"`
	DurationInMins int        `json:"duration_in_mins" binding:"min=0"`
	Price          float64    `json:"price" binding:"min=0"`
	Rating         float64    `json:"rating" binding:"omitempty,min=0,max=5"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	CategoryID     *uuid.UUID `json:"category_id"`
	ServiceName    *string    `json:"service_name"`
	ServiceType    *string    `json:"service_type"`
	DurationInMins *int       `json:"duration_in_mins" binding:"omitempty,min=0"`
	Price          *float64   `json:"price" binding:"omitempty,min=0"`
	Rating         *float64   `json:"rating" binding:"omitempty,min=0,max=5"`
}

// checkServiceCategory verifies the category exists and is owned by the same business
func checkServiceCategory(businessID, categoryID uuid.UUID) (int, string) {
	var category models.ServiceCategory
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusBadRequest, "Category not found"
		}
		return http.StatusInternalServerError, "Database error"
	}
	if category.BusinessID != businessID {
		return http.StatusBadRequest, "Category belongs to a different business"
	}
	return 0, ""
}

// CreateService creates a new service for a business
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidServiceType(input.ServiceType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type")
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

	if input.CategoryID != nil {
		if code, msg := checkServiceCategory(input.BusinessID, *input.CategoryID); code != 0 {
			utils.RespondWithError(c, code, msg)
			return
		}
	}

	service := models.Service{
		BusinessID:     input.BusinessID,
		CategoryID:     input.CategoryID,
		ServiceName:    input.ServiceName,
		ServiceType:    input.ServiceType,
		DurationInMins: input.DurationInMins,
		Price:          input.Price,
		Rating:         input.Rating,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// parseFloatQuery reads an optional float query parameter
func parseFloatQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// GetServices lists services with optional catalog filters: business_id,
// category (case-insensitive substring), min_price, max_price, min_rating.
// Supplied filters are conjunctive; absent filters impose no constraint.
func GetServices(c *gin.Context) {
	query := config.DB.Preload("Category")
	if businessID := c.Query("business_id"); businessID != "" {
		businessUUID, err := uuid.Parse(businessID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid business_id format")
			return
		}
		query = query.Where("business_id = ?", businessUUID)
	}

	filter := services.ServiceFilter{Category: c.Query("category")}
	var ok bool
	if filter.MinPrice, ok = parseFloatQuery(c, "min_price"); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid min_price")
		return
	}
	if filter.MaxPrice, ok = parseFloatQuery(c, "max_price"); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid max_price")
		return
	}
	if filter.MinRating, ok = parseFloatQuery(c, "min_rating"); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid min_rating")
		return
	}

	var all []models.Service
	if err := query.Find(&all).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	matched := filter.Apply(all, func(svc models.Service) string {
		if svc.Category != nil {
			return svc.Category.Name
		}
		return ""
	})

	c.JSON(http.StatusOK, matched)
}

// GetService retrieves a service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Preload("Category").First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService applies a partial update to a service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ServiceType != nil {
		if !models.ValidServiceType(*input.ServiceType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type")
			return
		}
		service.ServiceType = *input.ServiceType
	}
	if input.CategoryID != nil {
		if code, msg := checkServiceCategory(service.BusinessID, *input.CategoryID); code != 0 {
			utils.RespondWithError(c, code, msg)
			return
		}
		service.CategoryID = input.CategoryID
	}
	if input.ServiceName != nil {
		service.ServiceName = *input.ServiceName
	}
	if input.DurationInMins != nil {
		service.DurationInMins = *input.DurationInMins
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Rating != nil {
		service.Rating = *input.Rating
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// UploadServiceImage accepts a multipart service image capped at 2 MB
func UploadServiceImage(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
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

	dir := filepath.Join(config.Cfg.UploadDir, "services")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	dst := filepath.Join(dir, service.ID.String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	if err := config.DB.Model(&service).Update("profile_img", dst).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_img": dst})
}
