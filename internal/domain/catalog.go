package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a JSON-encoded array column (highlights, gallery).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// AircraftOption is one pricing tier within a catalog item's
// aircraft_pricing array: a specific aircraft, its capacity and price.
type AircraftOption struct {
	Aircraft      string  `json:"aircraft"`
	MaxPassengers int     `json:"max_passengers"`
	Price         float64 `json:"price"`
	NotesEs       string  `json:"notes_es,omitempty"`
	NotesEn       string  `json:"notes_en,omitempty"`
}

// AircraftPricing is the ordered tier list embedded per catalog item.
type AircraftPricing []AircraftOption

func (p AircraftPricing) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *AircraftPricing) Scan(src any) error {
	return scanJSON(src, p)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
}

// Destination is a charter destination page: localized copy, images and
// the embedded aircraft pricing tiers.
type Destination struct {
	ID                int64           `json:"id"`
	Slug              string          `json:"slug" gorm:"uniqueIndex" validate:"required"`
	NameEs            string          `json:"name_es" validate:"required"`
	NameEn            string          `json:"name_en" validate:"required"`
	DescriptionEs     string          `json:"description_es,omitempty" gorm:"type:text"`
	DescriptionEn     string          `json:"description_en,omitempty" gorm:"type:text"`
	LongDescriptionEs string          `json:"long_description_es,omitempty" gorm:"type:text"`
	LongDescriptionEn string          `json:"long_description_en,omitempty" gorm:"type:text"`
	HighlightsEs      StringList      `json:"highlights_es,omitempty" gorm:"type:text"`
	HighlightsEn      StringList      `json:"highlights_en,omitempty" gorm:"type:text"`
	ImageURL          string          `json:"image_url,omitempty"`
	Gallery           StringList      `json:"gallery,omitempty" gorm:"type:text"`
	FlightTime        string          `json:"flight_time,omitempty"`
	PriceFrom         float64         `json:"price_from"`
	AircraftPricing   AircraftPricing `json:"aircraft_pricing,omitempty" gorm:"type:text"`
	IsActive          bool            `json:"is_active"`
	DisplayOrder      int             `json:"display_order"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AirTour is a sightseeing flight over a fixed route.
type AirTour struct {
	ID                int64           `json:"id"`
	Slug              string          `json:"slug" gorm:"uniqueIndex" validate:"required"`
	NameEs            string          `json:"name_es" validate:"required"`
	NameEn            string          `json:"name_en" validate:"required"`
	DescriptionEs     string          `json:"description_es,omitempty" gorm:"type:text"`
	DescriptionEn     string          `json:"description_en,omitempty" gorm:"type:text"`
	LongDescriptionEs string          `json:"long_description_es,omitempty" gorm:"type:text"`
	LongDescriptionEn string          `json:"long_description_en,omitempty" gorm:"type:text"`
	HighlightsEs      StringList      `json:"highlights_es,omitempty" gorm:"type:text"`
	HighlightsEn      StringList      `json:"highlights_en,omitempty" gorm:"type:text"`
	ImageURL          string          `json:"image_url,omitempty"`
	Gallery           StringList      `json:"gallery,omitempty" gorm:"type:text"`
	DurationMinutes   int             `json:"duration_minutes,omitempty"`
	PriceFrom         float64         `json:"price_from"`
	AircraftPricing   AircraftPricing `json:"aircraft_pricing,omitempty" gorm:"type:text"`
	IsActive          bool            `json:"is_active"`
	DisplayOrder      int             `json:"display_order"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
