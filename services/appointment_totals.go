package services

import (
	"github.com/amyssnippet/wavvy/models"
)

// AppointmentTotals derives the booked price and duration from the selected
// services and packages. Snapshot semantics: later catalog edits do not
// touch existing appointments.
func AppointmentTotals(services []models.Service, packages []models.Package) (totalPrice float64, durationInMins int) {
	for _, svc := range services {
		totalPrice += svc.Price
		durationInMins += svc.DurationInMins
	}
	for _, pkg := range packages {
		totalPrice += pkg.PackagePrice
		durationInMins += pkg.PackageDurationInMins
	}
	return totalPrice, durationInMins
}
