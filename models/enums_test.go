package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceTypeChoices(t *testing.T) {
	assert.True(t, ValidServiceType("Basic"))
	assert.True(t, ValidServiceType("Premium"))
	assert.True(t, ValidServiceType("Add-on"))
	assert.False(t, ValidServiceType("Deluxe"))
	assert.False(t, ValidServiceType(""))
}

func TestClientTypeChoices(t *testing.T) {
	assert.True(t, ValidClientType("Walk-in"))
	assert.False(t, ValidClientType("walk-in")) // choices are case-sensitive
}

func TestGenderChoices(t *testing.T) {
	assert.True(t, ValidGender("Rather Not to Say"))
	assert.False(t, ValidGender("Other"))
}

func TestAppointmentStatusChoices(t *testing.T) {
	assert.True(t, ValidStatus("Scheduled"))
	assert.True(t, ValidStatus("Completed"))
	assert.True(t, ValidStatus("Cancelled"))
	assert.False(t, ValidStatus("Rescheduled"))

	assert.True(t, ValidPaymentStatus("Pending"))
	assert.False(t, ValidPaymentStatus("Paid"))

	assert.True(t, ValidPayMode("Online"))
	assert.True(t, ValidPayMode("Offline"))
	assert.False(t, ValidPayMode("UPI"))
}

func TestAccessTypeChoices(t *testing.T) {
	assert.True(t, ValidAccessType("Super Admin"))
	assert.True(t, ValidAccessType("Admin"))
	assert.False(t, ValidAccessType("Owner"))
}
