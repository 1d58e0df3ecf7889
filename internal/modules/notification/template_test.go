package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "10 de marzo de 2025", FormatLongDate("2025-03-10"))
	assert.Equal(t, "1 de enero de 2026", FormatLongDate("2026-01-01"))
	// Timestamps are truncated to their date part, never shifted.
	assert.Equal(t, "31 de diciembre de 2025", FormatLongDate("2025-12-31T23:00:00Z"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "mañana", FormatLongDate("mañana"))
	assert.Equal(t, "", FormatLongDate(""))
}

func TestSlugLabel(t *testing.T) {
	assert.Equal(t, "Playa Del Carmen", SlugLabel("playa-del-carmen"))
	assert.Equal(t, "Cancun", SlugLabel("cancun"))
	assert.Equal(t, "Ángel Albino", SlugLabel("ángel-albino"))
	assert.Equal(t, "", SlugLabel(""))
}

func TestRenderLeadEmailCharter(t *testing.T) {
	subject, html := RenderLeadEmail(LeadPayload{
		Name:              "Ana Torres",
		Email:             "ana@example.com",
		Phone:             "+52 998 111 2233",
		ServiceType:       "charter",
		DepartureLocation: "playa-del-carmen",
		Destination:       "holbox",
		TravelDate:        "2025-03-10",
		DepartureTime:     "09:00",
		ReturnDate:        "2025-03-15",
		ReturnTime:        "18:00",
		AircraftSelected:  "Cessna 206",
		PreSelectedPrice:  "$650 USD",
	})

	assert.Contains(t, subject, "Vuelo Charter")
	assert.Contains(t, subject, "Ana Torres")

	assert.Contains(t, html, "Playa Del Carmen")
	assert.Contains(t, html, "Holbox")
	assert.Contains(t, html, "10 de marzo de 2025")
	assert.Contains(t, html, "15 de marzo de 2025")
	assert.Contains(t, html, "Cessna 206")
	assert.Contains(t, html, "$650 USD")
	assert.NotContains(t, html, "Tour")
}

func TestRenderLeadEmailCharterOtherOverrides(t *testing.T) {
	_, html := RenderLeadEmail(LeadPayload{
		Name:                   "Ana Torres",
		Email:                  "ana@example.com",
		ServiceType:            "charter",
		DepartureLocation:      "other",
		DepartureLocationOther: "Pista privada Xcalak",
		Destination:            "other",
		DestinationOther:       "Bacalar",
		TravelDate:             "2025-03-10",
	})

	assert.Contains(t, html, "Pista privada Xcalak")
	assert.Contains(t, html, "Bacalar")
	assert.NotContains(t, html, ">Other<")
}

func TestRenderLeadEmailTour(t *testing.T) {
	subject, html := RenderLeadEmail(LeadPayload{
		Name:               "Luis Pérez",
		Email:              "luis@example.com",
		ServiceType:        "tour",
		Tour:               "zona-hotelera",
		NumberOfPassengers: 3,
		TravelDate:         "2025-04-02",
		DepartureTime:      "10:00",
	})

	assert.Contains(t, subject, "Tour Aéreo")
	assert.Contains(t, html, "Zona Hotelera")
	assert.Contains(t, html, "2 de abril de 2025")
	assert.Contains(t, html, ">3<")
	assert.NotContains(t, html, "Destino")
}

func TestRenderLeadEmailContact(t *testing.T) {
	subject, html := RenderLeadEmail(LeadPayload{
		Name:    "Curiosa",
		Email:   "c@example.com",
		Message: "¿Vuelan en diciembre?",
	})

	assert.Contains(t, subject, "Mensaje de Contacto")
	assert.Contains(t, html, "¿Vuelan en diciembre?")
	// Empty optional fields produce no rows at all.
	assert.NotContains(t, html, "Fecha de vuelo")
	assert.NotContains(t, html, "Teléfono")
}
