package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	BusinessID   uuid.UUID  `json:"business_id" binding:"required"`
	ClientName   string     `json:"client_name" binding:"required"`
	ClientType   string     `json:"client_type" binding:"required"`
	ClientEmail  string     `json:"client_email" binding:"required,email"`
	ClientPhone  string     `json:"client_phone" binding:"required"`
	ClientDOB    *time.Time `json:"client_dob"`
	ClientGender string     `json:"client_gender"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	ClientName   *string    `json:"client_name"`
	ClientType   *string    `json:"client_type"`
	ClientEmail  *string    `json:"client_email" binding:"omitempty,email"`
	ClientPhone  *string    `json:"client_phone"`
	ClientDOB    *time.Time `json:"client_dob"`
	ClientGender *string    `json:"client_gender"`
}

// CreateClient creates a new client for a business
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidClientType(input.ClientType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client type")
		return
	}
	if input.ClientGender != "" && !models.ValidGender(input.ClientGender) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid gender")
		return
	}
	if !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
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

	// Email and phone are globally unique across clients
	var existing models.Client
	err := config.DB.Where("client_email = ? OR client_phone = ?", input.ClientEmail, input.ClientPhone).
		First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this email or phone already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		BusinessID:   input.BusinessID,
		ClientName:   input.ClientName,
		ClientType:   input.ClientType,
		ClientEmail:  input.ClientEmail,
		ClientPhone:  input.ClientPhone,
		ClientDOB:    input.ClientDOB,
		ClientGender: input.ClientGender,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients lists clients, optionally scoped to a business
func GetClients(c *gin.Context) {
	query := config.DB
	if businessID := c.Query("business_id"); businessID != "" {
		businessUUID, err := uuid.Parse(businessID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid business_id format")
			return
		}
		query = query.Where("business_id = ?", businessUUID)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a client by ID
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient applies a partial update to a client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientType != nil {
		if !models.ValidClientType(*input.ClientType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client type")
			return
		}
		client.ClientType = *input.ClientType
	}
	if input.ClientGender != nil {
		if !models.ValidGender(*input.ClientGender) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid gender")
			return
		}
		client.ClientGender = *input.ClientGender
	}
	if input.ClientPhone != nil {
		if !utils.ValidatePhone(*input.ClientPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if client.ClientPhone != *input.ClientPhone {
			var existing models.Client
			err := config.DB.Where("client_phone = ?", *input.ClientPhone).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.ClientPhone = *input.ClientPhone
	}
	if input.ClientEmail != nil {
		if client.ClientEmail != *input.ClientEmail {
			var existing models.Client
			err := config.DB.Where("client_email = ?", *input.ClientEmail).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.ClientEmail = *input.ClientEmail
	}
	if input.ClientName != nil {
		client.ClientName = *input.ClientName
	}
	if input.ClientDOB != nil {
		client.ClientDOB = input.ClientDOB
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client and its appointments
func DeleteClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	result := config.DB.Where("id = ?", clientUUID).Delete(&models.Client{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// GetClientMetadata returns the enum choices the client forms render
func GetClientMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"client_types": []string{
			models.ClientTypeRegular,
			models.ClientTypePremium,
			models.ClientTypeCorporate,
			models.ClientTypeWalkIn,
		},
		"genders": []string{
			models.GenderMale,
			models.GenderFemale,
			models.GenderUndisclosed,
		},
	})
}
