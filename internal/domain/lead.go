package domain

import (
	"fmt"
	"time"
)

type ServiceType string

const (
	ServiceCharter ServiceType = "charter"
	ServiceTour    ServiceType = "tour"
)

type LeadStatus string

const (
	LeadPending   LeadStatus = "pending"
	LeadContacted LeadStatus = "contacted"
	LeadCompleted LeadStatus = "completed"
)

func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadPending, LeadContacted, LeadCompleted:
		return LeadStatus(s), true
	}
	return "", false
}

// DepartureOther / DestinationOther mark the "other" choice in the fixed
// selectors; the matching *_other free-text field carries the real value.
const OtherChoice = "other"

// DepartureLocations is the fixed set of departure cities offered on the
// charter form, plus "other".
func DepartureLocations() []string {
	return []string{"cancun", "playa-del-carmen", "cozumel", "merida", "tulum", OtherChoice}
}

// DepartureTimeSlots lists the selectable hourly slots, 06:00 through 20:00.
func DepartureTimeSlots() []string {
	slots := make([]string, 0, 15)
	for h := 6; h <= 20; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// IsDepartureTimeSlot reports whether s is one of the fixed hourly slots.
func IsDepartureTimeSlot(s string) bool {
	for _, slot := range DepartureTimeSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// ContactRequest is one persisted lead: a prospective customer inquiry
// captured by the quote form. Exactly one of the charter- or tour-specific
// field groups is populated, matching ServiceType; the other group stays
// null. Rows are created by the public form, mutated only by an admin
// changing Status, and deleted only by an explicit admin action.
type ContactRequest struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Phone       string      `json:"phone,omitempty"`
	ServiceType ServiceType `json:"service_type,omitempty"`
	Message     string      `json:"message,omitempty" gorm:"type:text"`
	Status      LeadStatus  `json:"status"`

	// Charter branch
	DepartureLocation      *string `json:"departure_location,omitempty"`
	DepartureLocationOther *string `json:"departure_location_other,omitempty"`
	Destination            *string `json:"destination,omitempty"`
	DestinationOther       *string `json:"destination_other,omitempty"`
	DestinationID          *int64  `json:"destination_id,omitempty"`
	ReturnDate             *Date   `json:"return_date,omitempty"`
	ReturnTime             *string `json:"return_time,omitempty"`
	AircraftSelected       *string `json:"aircraft_selected,omitempty"`

	// Tour branch
	Tour               *string `json:"tour,omitempty"`
	TourID             *int64  `json:"tour_id,omitempty"`
	NumberOfPassengers *int    `json:"number_of_passengers,omitempty"`

	// Shared trip fields, set whenever a service type is chosen
	TravelDate    *Date   `json:"travel_date,omitempty"`
	DepartureTime *string `json:"departure_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactRequest) TableName() string { return "contact_requests" }
