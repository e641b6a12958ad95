package controllers

import (
	"errors"
	"net/http"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePackageInput defines the expected JSON structure for creating a package
type CreatePackageInput struct {
	BusinessID            uuid.UUID `json:"business_id" binding:"required"`
	PackageName           string    `json:"package_name" binding:"required"`
	PackageDurationInMins int       `json:"package_duration_in_mins" binding:"min=0"`
	PackagePrice          float64   `json:"package_price" binding:"min=0"`
}

// UpdatePackageInput defines the expected JSON structure for updating a package
type UpdatePackageInput struct {
	PackageName           *string  `json:"package_name"`
	PackageDurationInMins *int     `json:"package_duration_in_mins" binding:"omitempty,min=0"`
	PackagePrice          *float64 `json:"package_price" binding:"omitempty,min=0"`
}

// CreatePackage creates a new package for a business
func CreatePackage(c *gin.Context) {
	var input CreatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	pkg := models.Package{
		BusinessID:            input.BusinessID,
		PackageName:           input.PackageName,
		PackageDurationInMins: input.PackageDurationInMins,
		PackagePrice:          input.PackagePrice,
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetPackages lists packages, optionally scoped to a business
func GetPackages(c *gin.Context) {
	query := config.DB
	if businessID := c.Query("business_id"); businessID != "" {
		businessUUID, err := uuid.Parse(businessID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid business_id format")
			return
		}
		query = query.Where("business_id = ?", businessUUID)
	}

	var packages []models.Package
	if err := query.Find(&packages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetPackage retrieves a package by ID
func GetPackage(c *gin.Context) {
	packageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, "id = ?", packageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage applies a partial update to a package
func UpdatePackage(c *gin.Context) {
	packageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	var input UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, "id = ?", packageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PackageName != nil {
		pkg.PackageName = *input.PackageName
	}
	if input.PackageDurationInMins != nil {
		pkg.PackageDurationInMins = *input.PackageDurationInMins
	}
	if input.PackagePrice != nil {
		pkg.PackagePrice = *input.PackagePrice
	}

	if err := config.DB.Save(&pkg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package
func DeletePackage(c *gin.Context) {
	packageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid package ID format")
		return
	}

	result := config.DB.Where("id = ?", packageUUID).Delete(&models.Package{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}
