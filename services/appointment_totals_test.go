package services

import (
	"testing"

	"github.com/amyssnippet/wavvy/models"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTotals(t *testing.T) {
	svcs := []models.Service{
		{ServiceName: "Haircut", Price: 500, DurationInMins: 30},
		{ServiceName: "Beard Trim", Price: 300, DurationInMins: 15},
	}
	pkgs := []models.Package{
		{PackageName: "Grooming Combo", PackagePrice: 200, PackageDurationInMins: 45},
	}

	price, duration := AppointmentTotals(svcs, pkgs)
	assert.Equal(t, 1000.0, price)
	assert.Equal(t, 90, duration)
}

func TestAppointmentTotalsServicesOnly(t *testing.T) {
	svcs := []models.Service{
		{Price: 250, DurationInMins: 20},
	}

	price, duration := AppointmentTotals(svcs, nil)
	assert.Equal(t, 250.0, price)
	assert.Equal(t, 20, duration)
}

func TestAppointmentTotalsEmptySelection(t *testing.T) {
	price, duration := AppointmentTotals(nil, nil)
	assert.Zero(t, price)
	assert.Zero(t, duration)
}
