package booking

import (
	"math"

	"tatya/models"
)

// DefaultUnitPrice is the fallback rate when the selected drone
// carries no per-unit pricing.
const DefaultUnitPrice = 400

// Checkout constants. Delivery and travel fees are always waived but
// kept in the summary as struck-through originals.
const (
	GSTRate     = 0.18
	DeliveryFee = 35
	TravelCost  = 20
)

// hoursPerDay converts an hourly rate into the Day unit rate.
const hoursPerDay = 8

// UnitPrice derives the per-unit rate for a drone and billing unit.
// This is a display computation; the same number is sent as the
// draft's authoritative pricePerUnit when the booking is created.
func UnitPrice(drone *models.Drone, unit models.Unit) float64 {
	if drone == nil {
		return DefaultUnitPrice
	}
	switch unit {
	case models.UnitAcre:
		if drone.PricePerAcre > 0 {
			return drone.PricePerAcre
		}
	case models.UnitHour:
		if drone.PricePerHour > 0 {
			return drone.PricePerHour
		}
	case models.UnitDay:
		if drone.PricePerHour > 0 {
			return drone.PricePerHour * hoursPerDay
		}
	}
	return DefaultUnitPrice
}

// TotalCost is quantity * pricePerUnit rounded to two decimals.
func TotalCost(quantity int, pricePerUnit float64) float64 {
	return round2(float64(quantity) * pricePerUnit)
}

// Checkout computes the payable breakdown for an item total: GST on
// top, delivery and travel waived to zero. GST and the payable total
// are rounded to whole rupees.
func Checkout(itemTotal float64) models.CheckoutSummary {
	gst := math.Round(itemTotal * GSTRate)
	return models.CheckoutSummary{
		ItemTotal:         itemTotal,
		DeliveryFee:       DeliveryFee,
		DeliveryFeeWaived: true,
		TravelCost:        TravelCost,
		TravelCostWaived:  true,
		GSTRate:           GSTRate,
		GSTAmount:         gst,
		TotalPayable:      itemTotal + gst,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
