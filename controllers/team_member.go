package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTeamMemberInput defines the expected JSON structure for adding staff
type CreateTeamMemberInput struct {
	BusinessID    uuid.UUID `json:"business_id" binding:"required"`
	FirstName     string    `json:"first_name" binding:"required"`
	LastName      string    `json:"last_name" binding:"required"`
	PhoneNumber   string    `json:"phone_number" binding:"required"`
	MemberEmail   string    `json:"member_email" binding:"required,email"`
	DateOfJoining time.Time `json:"date_of_joining" binding:"required"`
	AccessType    string    `json:"access_type" binding:"required"`
	IsAvailable   *bool     `json:"is_available"`
}

// UpdateTeamMemberInput defines the expected JSON structure for updating staff
type UpdateTeamMemberInput struct {
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	PhoneNumber   *string    `json:"phone_number"`
	MemberEmail   *string    `json:"member_email" binding:"omitempty,email"`
	DateOfJoining *time.Time `json:"date_of_joining"`
	AccessType    *string    `json:"access_type"`
	IsAvailable   *bool      `json:"is_available"`
}

// CreateTeamMember adds a staff member to a business
func CreateTeamMember(c *gin.Context) {
	var input CreateTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidAccessType(input.AccessType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid access type")
		return
	}
	if !utils.ValidatePhone(input.PhoneNumber) {
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

	// Phone and email are globally unique across team members
	var existing models.TeamMember
	err := config.DB.Where("phone_number = ? OR member_email = ?", input.PhoneNumber, input.MemberEmail).
		First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Team member with this phone or email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	member := models.TeamMember{
		BusinessID:    input.BusinessID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		PhoneNumber:   input.PhoneNumber,
		MemberEmail:   input.MemberEmail,
		DateOfJoining: input.DateOfJoining,
		AccessType:    input.AccessType,
		IsAvailable:   true,
	}
	if input.IsAvailable != nil {
		member.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetTeamMembers lists staff, optionally scoped to a business
func GetTeamMembers(c *gin.Context) {
	query := config.DB
	if businessID := c.Query("business_id"); businessID != "" {
		businessUUID, err := uuid.Parse(businessID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid business_id format")
			return
		}
		query = query.Where("business_id = ?", businessUUID)
	}

	var members []models.TeamMember
	if err := query.Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetTeamMember retrieves a staff member by ID
func GetTeamMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember applies a partial update to a staff member
func UpdateTeamMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var input UpdateTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.AccessType != nil {
		if !models.ValidAccessType(*input.AccessType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid access type")
			return
		}
		member.AccessType = *input.AccessType
	}
	if input.PhoneNumber != nil {
		if !utils.ValidatePhone(*input.PhoneNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if member.PhoneNumber != *input.PhoneNumber {
			var existing models.TeamMember
			err := config.DB.Where("phone_number = ?", *input.PhoneNumber).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another team member with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		member.PhoneNumber = *input.PhoneNumber
	}
	if input.MemberEmail != nil {
		if member.MemberEmail != *input.MemberEmail {
			var existing models.TeamMember
			err := config.DB.Where("member_email = ?", *input.MemberEmail).First(&existing).Error
			if err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another team member with this email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		member.MemberEmail = *input.MemberEmail
	}
	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.DateOfJoining != nil {
		member.DateOfJoining = *input.DateOfJoining
	}
	if input.IsAvailable != nil {
		member.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember removes a staff member. Appointments that referenced the
// member survive with their staff reference cleared.
func DeleteTeamMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Appointment{}).Where("staff_id = ?", memberUUID).
		Update("staff_id", nil).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}

	result := tx.Where("id = ?", memberUUID).Delete(&models.TeamMember{})
	if result.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}

// UploadTeamMemberImage accepts a multipart profile image capped at 2 MB
func UploadTeamMemberImage(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
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

	dir := filepath.Join(config.Cfg.UploadDir, "team_members")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	dst := filepath.Join(dir, member.ID.String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	if err := config.DB.Model(&member).Update("profile_img", dst).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_img": dst})
}
