package admin

import "aerotours/internal/domain"

// ---------- DESTINATIONS / TOURS ----------

type CreateDestinationRequest struct {
	Slug              string                 `json:"slug" validate:"required"`
	NameEs            string                 `json:"name_es" validate:"required"`
	NameEn            string                 `json:"name_en" validate:"required"`
	DescriptionEs     string                 `json:"description_es"`
	DescriptionEn     string                 `json:"description_en"`
	LongDescriptionEs string                 `json:"long_description_es"`
	LongDescriptionEn string                 `json:"long_description_en"`
	HighlightsEs      []string               `json:"highlights_es"`
	HighlightsEn      []string               `json:"highlights_en"`
	ImageURL          string                 `json:"image_url"`
	Gallery           []string               `json:"gallery"`
	FlightTime        string                 `json:"flight_time"`
	PriceFrom         float64                `json:"price_from" validate:"gte=0"`
	AircraftPricing   domain.AircraftPricing `json:"aircraft_pricing"`
}

type UpdateDestinationRequest struct {
	Slug              *string                 `json:"slug,omitempty"`
	NameEs            *string                 `json:"name_es,omitempty"`
	NameEn            *string                 `json:"name_en,omitempty"`
	DescriptionEs     *string                 `json:"description_es,omitempty"`
	DescriptionEn     *string                 `json:"description_en,omitempty"`
	LongDescriptionEs *string                 `json:"long_description_es,omitempty"`
	LongDescriptionEn *string                 `json:"long_description_en,omitempty"`
	HighlightsEs      *[]string               `json:"highlights_es,omitempty"`
	HighlightsEn      *[]string               `json:"highlights_en,omitempty"`
	ImageURL          *string                 `json:"image_url,omitempty"`
	Gallery           *[]string               `json:"gallery,omitempty"`
	FlightTime        *string                 `json:"flight_time,omitempty"`
	PriceFrom         *float64                `json:"price_from,omitempty"`
	AircraftPricing   *domain.AircraftPricing `json:"aircraft_pricing,omitempty"`
}

type CreateTourRequest struct {
	Slug              string                 `json:"slug" validate:"required"`
	NameEs            string                 `json:"name_es" validate:"required"`
	NameEn            string                 `json:"name_en" validate:"required"`
	DescriptionEs     string                 `json:"description_es"`
	DescriptionEn     string                 `json:"description_en"`
	LongDescriptionEs string                 `json:"long_description_es"`
	LongDescriptionEn string                 `json:"long_description_en"`
	HighlightsEs      []string               `json:"highlights_es"`
	HighlightsEn      []string               `json:"highlights_en"`
	ImageURL          string                 `json:"image_url"`
	Gallery           []string               `json:"gallery"`
	DurationMinutes   int                    `json:"duration_minutes" validate:"gte=0"`
	PriceFrom         float64                `json:"price_from" validate:"gte=0"`
	AircraftPricing   domain.AircraftPricing `json:"aircraft_pricing"`
}

type UpdateTourRequest struct {
	Slug              *string                 `json:"slug,omitempty"`
	NameEs            *string                 `json:"name_es,omitempty"`
	NameEn            *string                 `json:"name_en,omitempty"`
	DescriptionEs     *string                 `json:"description_es,omitempty"`
	DescriptionEn     *string                 `json:"description_en,omitempty"`
	LongDescriptionEs *string                 `json:"long_description_es,omitempty"`
	LongDescriptionEn *string                 `json:"long_description_en,omitempty"`
	HighlightsEs      *[]string               `json:"highlights_es,omitempty"`
	HighlightsEn      *[]string               `json:"highlights_en,omitempty"`
	ImageURL          *string                 `json:"image_url,omitempty"`
	Gallery           *[]string               `json:"gallery,omitempty"`
	DurationMinutes   *int                    `json:"duration_minutes,omitempty"`
	PriceFrom         *float64                `json:"price_from,omitempty"`
	AircraftPricing   *domain.AircraftPricing `json:"aircraft_pricing,omitempty"`
}

// ---------- SERVICES ----------

type CreateServiceRequest struct {
	Icon          string `json:"icon"`
	TitleEs       string `json:"title_es" validate:"required"`
	TitleEn       string `json:"title_en" validate:"required"`
	DescriptionEs string `json:"description_es"`
	DescriptionEn string `json:"description_en"`
}

type UpdateServiceRequest struct {
	Icon          *string `json:"icon,omitempty"`
	TitleEs       *string `json:"title_es,omitempty"`
	TitleEn       *string `json:"title_en,omitempty"`
	DescriptionEs *string `json:"description_es,omitempty"`
	DescriptionEn *string `json:"description_en,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// ---------- IMAGES ----------

type CreateImageRequest struct {
	Section      string `json:"section" validate:"required"`
	URL          string `json:"url" validate:"required"`
	AltEs        string `json:"alt_es"`
	AltEn        string `json:"alt_en"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateImageRequest struct {
	Section      *string `json:"section,omitempty"`
	URL          *string `json:"url,omitempty"`
	AltEs        *string `json:"alt_es,omitempty"`
	AltEn        *string `json:"alt_en,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// ---------- MESSAGES / CONTACT INFO / SETTINGS ----------

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateContactInfoRequest struct {
	Phone      string `json:"phone"`
	WhatsApp   string `json:"whatsapp"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	ScheduleEs string `json:"schedule_es"`
	ScheduleEn string `json:"schedule_en"`
}

type SetSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

type ReorderRequest struct {
	Direction string `json:"direction" validate:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
