package controllers

import (
	"net/http"
	"strconv"

	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NearbySalon is one row of the nearby lookup response
type NearbySalon struct {
	ID         uuid.UUID `json:"id"`
	SalonName  string    `json:"salon_name"`
	SalonDesc  string    `json:"salon_description"`
	ProfileImg string    `json:"profile_img"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance_km"`
}

// GetNearbySalons returns every salon with stored coordinates within 10 km
// of the given point. Linear scan over the businesses, no spatial index.
func GetNearbySalons(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "latitude is required")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "longitude is required")
		return
	}

	var businesses []models.Business
	if err := config.DB.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&businesses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	nearby := make([]NearbySalon, 0)
	for _, business := range businesses {
		distance := utils.Haversine(lat, lng, *business.Latitude, *business.Longitude)
		if distance > utils.NearbyRadiusKm {
			continue
		}
		nearby = append(nearby, NearbySalon{
			ID:         business.ID,
			SalonName:  business.SalonName,
			SalonDesc:  business.SalonDesc,
			ProfileImg: business.ProfileImg,
			Latitude:   *business.Latitude,
			Longitude:  *business.Longitude,
			DistanceKm: distance,
		})
	}

	c.JSON(http.StatusOK, nearby)
}
