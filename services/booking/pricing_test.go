package booking

import (
	"testing"

	"tatya/models"

	"github.com/stretchr/testify/assert"
)

func TestUnitPriceFromDroneRates(t *testing.T) {
	drone := &models.Drone{PricePerAcre: 450, PricePerHour: 600}

	assert.Equal(t, 450.0, UnitPrice(drone, models.UnitAcre))
	assert.Equal(t, 600.0, UnitPrice(drone, models.UnitHour))
	// Day is eight billable hours.
	assert.Equal(t, 4800.0, UnitPrice(drone, models.UnitDay))
}

func TestUnitPriceFallsBackWhenRateMissing(t *testing.T) {
	assert.Equal(t, float64(DefaultUnitPrice), UnitPrice(nil, models.UnitAcre))
	assert.Equal(t, float64(DefaultUnitPrice), UnitPrice(&models.Drone{}, models.UnitAcre))
	assert.Equal(t, float64(DefaultUnitPrice), UnitPrice(&models.Drone{}, models.UnitHour))
	assert.Equal(t, float64(DefaultUnitPrice), UnitPrice(&models.Drone{}, models.UnitDay))
}

func TestCheckoutBreakdown(t *testing.T) {
	// 3 acres at the fallback rate.
	itemTotal := TotalCost(3, UnitPrice(&models.Drone{}, models.UnitAcre))
	assert.Equal(t, 1200.0, itemTotal)

	summary := Checkout(itemTotal)
	assert.Equal(t, 1200.0, summary.ItemTotal)
	assert.Equal(t, 216.0, summary.GSTAmount)
	assert.Equal(t, 1416.0, summary.TotalPayable)

	assert.True(t, summary.DeliveryFeeWaived)
	assert.True(t, summary.TravelCostWaived)
	assert.Equal(t, float64(DeliveryFee), summary.DeliveryFee)
	assert.Equal(t, float64(TravelCost), summary.TravelCost)
}

func TestTotalCostRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 1333.33, TotalCost(3, 444.444))
}
