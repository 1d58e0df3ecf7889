package catalog

import "aerotours/internal/domain"

// DisplayInfo holds the derived values shown on catalog cards and detail
// pages. Computed the same way on the list and detail paths.
type DisplayInfo struct {
	MinPrice      float64 `json:"min_price"`
	MinPassengers int     `json:"min_passengers,omitempty"`
	ShowGallery   bool    `json:"show_gallery"`
}

// MinPrice is the lowest tier price when tiers exist, otherwise the
// record's flat price_from.
func MinPrice(tiers domain.AircraftPricing, priceFrom float64) float64 {
	if len(tiers) == 0 {
		return priceFrom
	}
	min := tiers[0].Price
	for _, tier := range tiers[1:] {
		if tier.Price < min {
			min = tier.Price
		}
	}
	return min
}

// MinPassengers is the capacity of the cheapest tier — the "from $X"
// price refers to that aircraft, so the badge shows its capacity, not the
// smallest capacity overall.
func MinPassengers(tiers domain.AircraftPricing) int {
	if len(tiers) == 0 {
		return 0
	}
	cheapest := tiers[0]
	for _, tier := range tiers[1:] {
		if tier.Price < cheapest.Price {
			cheapest = tier
		}
	}
	return cheapest.MaxPassengers
}

// ShowGallery is true only for an explicitly curated non-empty gallery;
// there is no fallback to the hero image.
func ShowGallery(gallery domain.StringList) bool {
	return len(gallery) > 0
}

func displayFor(tiers domain.AircraftPricing, priceFrom float64, gallery domain.StringList) DisplayInfo {
	return DisplayInfo{
		MinPrice:      MinPrice(tiers, priceFrom),
		MinPassengers: MinPassengers(tiers),
		ShowGallery:   ShowGallery(gallery),
	}
}
