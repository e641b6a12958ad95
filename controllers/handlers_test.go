package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation-path tests: every request here must be rejected (or answered)
// before the handler touches the database.

func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(handler gin.HandlerFunc, route, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(route, handler)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendOTPRequiresPhone(t *testing.T) {
	w := postJSON(SendOTP, "/send-otp/", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSendOTPRejectsMalformedPhone(t *testing.T) {
	w := postJSON(SendOTP, "/send-otp/", `{"phone_number": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid phone number format")
}

func TestVerifyOTPRequiresBothFields(t *testing.T) {
	w := postJSON(VerifyOTP, "/verify-otp/", `{"phone_number": "+919876543210"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentRequiresServices(t *testing.T) {
	body := `{
		"business_id": "7b2f4a7e-3b1c-4f77-9f44-1f6f2c9b8a01",
		"client_id": "b1a0c7de-59f6-4df0-9a37-0f0b4d7aa102",
		"appointment_date": "2025-07-01T00:00:00Z",
		"appointment_time": "14:30"
	}`
	w := postJSON(CreateAppointment, "/appointments/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentRejectsBadStatus(t *testing.T) {
	body := `{
		"business_id": "7b2f4a7e-3b1c-4f77-9f44-1f6f2c9b8a01",
		"client_id": "b1a0c7de-59f6-4df0-9a37-0f0b4d7aa102",
		"service_ids": ["c2b1d8ef-6a05-4e21-8c53-2a1b3c4d5e6f"],
		"appointment_date": "2025-07-01T00:00:00Z",
		"appointment_time": "14:30",
		"status": "Rescheduled"
	}`
	w := postJSON(CreateAppointment, "/appointments/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
}

func TestCreateServiceRejectsBadType(t *testing.T) {
	body := `{
		"business_id": "7b2f4a7e-3b1c-4f77-9f44-1f6f2c9b8a01",
		"service_name": "Haircut",
		"service_type": "Deluxe",
		"price": 500
	}`
	w := postJSON(CreateService, "/services/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid service type")
}

func TestGetNearbySalonsRequiresCoordinates(t *testing.T) {
	w := getPath(GetNearbySalons, "/salons/", "/salons/?longitude=72.8777")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestGetClientMetadata(t *testing.T) {
	w := getPath(GetClientMetadata, "/client-metadata/", "/client-metadata/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Walk-in")
	assert.Contains(t, w.Body.String(), "Rather Not to Say")
}
