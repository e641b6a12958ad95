package services

import (
	"testing"

	"github.com/amyssnippet/wavvy/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestServiceFilterNoConstraints(t *testing.T) {
	svc := models.Service{Price: 500, Rating: 3.0}
	assert.True(t, ServiceFilter{}.Matches(svc, "Hair"))
}

func TestServiceFilterCategorySubstring(t *testing.T) {
	f := ServiceFilter{Category: "hair"}

	assert.True(t, f.Matches(models.Service{}, "Hair Styling"))
	assert.True(t, f.Matches(models.Service{}, "HAIRCARE"))
	assert.False(t, f.Matches(models.Service{}, "Nails"))
	assert.False(t, f.Matches(models.Service{}, ""))
}

func TestServiceFilterPriceBounds(t *testing.T) {
	f := ServiceFilter{MinPrice: floatPtr(200), MaxPrice: floatPtr(800)}

	assert.True(t, f.Matches(models.Service{Price: 200}, ""))
	assert.True(t, f.Matches(models.Service{Price: 800}, ""))
	assert.False(t, f.Matches(models.Service{Price: 199}, ""))
	assert.False(t, f.Matches(models.Service{Price: 801}, ""))
}

func TestServiceFilterConjunctive(t *testing.T) {
	f := ServiceFilter{
		Category:  "spa",
		MinPrice:  floatPtr(100),
		MinRating: floatPtr(4.0),
	}

	// Every supplied filter has to pass
	assert.True(t, f.Matches(models.Service{Price: 150, Rating: 4.5}, "Spa Treatments"))
	assert.False(t, f.Matches(models.Service{Price: 150, Rating: 3.9}, "Spa Treatments"))
	assert.False(t, f.Matches(models.Service{Price: 50, Rating: 4.5}, "Spa Treatments"))
	assert.False(t, f.Matches(models.Service{Price: 150, Rating: 4.5}, "Massage"))
}

func TestServiceFilterApply(t *testing.T) {
	svcs := []models.Service{
		{ServiceName: "Cheap", Price: 100},
		{ServiceName: "Mid", Price: 500},
		{ServiceName: "Expensive", Price: 2000},
	}

	f := ServiceFilter{MaxPrice: floatPtr(600)}
	out := f.Apply(svcs, func(models.Service) string { return "" })

	assert.Len(t, out, 2)
	assert.Equal(t, "Cheap", out[0].ServiceName)
	assert.Equal(t, "Mid", out[1].ServiceName)
}
