package catalog

import (
	"testing"

	"aerotours/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMinPricePrefersTiers(t *testing.T) {
	tiers := domain.AircraftPricing{
		{Aircraft: "Cessna Grand Caravan", MaxPassengers: 9, Price: 2500},
		{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 750},
	}

	assert.Equal(t, 750.0, MinPrice(tiers, 999))
	// Without tiers the flat price_from is the display price.
	assert.Equal(t, 999.0, MinPrice(nil, 999))
}

func TestMinPassengersFollowsCheapestTier(t *testing.T) {
	// The "from $750" price belongs to the 5-seat aircraft, so the badge
	// must show 5 even though a bigger aircraft exists.
	tiers := domain.AircraftPricing{
		{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 750},
		{Aircraft: "Cessna Grand Caravan", MaxPassengers: 9, Price: 2500},
	}
	assert.Equal(t, 5, MinPassengers(tiers))

	// Order in the list must not matter.
	reversed := domain.AircraftPricing{tiers[1], tiers[0]}
	assert.Equal(t, 5, MinPassengers(reversed))

	assert.Zero(t, MinPassengers(nil))
}

func TestShowGalleryRequiresCuratedImages(t *testing.T) {
	assert.False(t, ShowGallery(nil))
	assert.False(t, ShowGallery(domain.StringList{}))
	assert.True(t, ShowGallery(domain.StringList{"/images/holbox-1.jpg"}))
}

func TestDisplayForConsistency(t *testing.T) {
	tiers := domain.AircraftPricing{
		{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 750},
		{Aircraft: "Cessna Grand Caravan", MaxPassengers: 9, Price: 2500},
	}
	info := displayFor(tiers, 999, domain.StringList{"/a.jpg"})

	assert.Equal(t, 750.0, info.MinPrice)
	assert.Equal(t, 5, info.MinPassengers)
	assert.True(t, info.ShowGallery)
}
