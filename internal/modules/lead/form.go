package lead

import (
	"aerotours/internal/domain"
	"aerotours/internal/pkg/validator"
)

// FormState is the immutable value object holding everything the quote
// form collects. Field requirements are derived from it as a pure
// function, never scattered across handlers.
type FormState struct {
	ServiceType            string `json:"service_type"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	Message                string `json:"message"`
	DepartureLocation      string `json:"departure_location"`
	DepartureLocationOther string `json:"departure_location_other"`
	Destination            string `json:"destination"`
	DestinationOther       string `json:"destination_other"`
	TravelDate             string `json:"travel_date"`
	DepartureTime          string `json:"departure_time"`
	ReturnDate             string `json:"return_date"`
	ReturnTime             string `json:"return_time"`
	AircraftSelected       string `json:"aircraft_selected"`
	Tour                   string `json:"tour"`
	NumberOfPassengers     int    `json:"number_of_passengers"`
}

// WithServiceType returns a copy switched to the given service type with
// every field exclusive to the other branch cleared, so no stale value
// survives a charter↔tour switch. Shared trip fields (travel date,
// departure time) are kept.
func (f FormState) WithServiceType(serviceType string) FormState {
	next := f
	next.ServiceType = serviceType

	if serviceType != string(domain.ServiceCharter) {
		next.DepartureLocation = ""
		next.DepartureLocationOther = ""
		next.Destination = ""
		next.DestinationOther = ""
		next.ReturnDate = ""
		next.ReturnTime = ""
		next.AircraftSelected = ""
	}
	if serviceType != string(domain.ServiceTour) {
		next.Tour = ""
		next.NumberOfPassengers = 0
	}
	if serviceType == "" {
		next.TravelDate = ""
		next.DepartureTime = ""
	}
	return next
}

// FormType tags the submission for analytics.
func (f FormState) FormType() string {
	switch domain.ServiceType(f.ServiceType) {
	case domain.ServiceCharter:
		return "charter_quote"
	case domain.ServiceTour:
		return "tour_quote"
	default:
		return "contact"
	}
}

// RequiredFields returns the exact required set for the current state.
// It is a deterministic function of service_type and the dependent
// selector values.
func (f FormState) RequiredFields() []string {
	// With no service type chosen the form is a plain contact message.
	if f.ServiceType == "" {
		return []string{"name", "email"}
	}

	required := []string{"name", "email", "phone", "service_type"}

	switch domain.ServiceType(f.ServiceType) {
	case domain.ServiceCharter:
		required = append(required, "travel_date", "departure_time", "departure_location", "destination")
		if f.DepartureLocation == domain.OtherChoice {
			required = append(required, "departure_location_other")
		}
		if f.Destination == domain.OtherChoice {
			required = append(required, "destination_other")
		}
		if f.ReturnDate != "" {
			required = append(required, "return_time")
		}
	case domain.ServiceTour:
		required = append(required, "tour", "number_of_passengers", "travel_date", "departure_time")
	}

	return required
}

const (
	codeRequired      = "required"
	codeInvalidEmail  = "email"
	codeInvalidDate   = "invalid_date"
	codeInvalidTime   = "invalid_time_slot"
	codeInvalidChoice = "invalid_choice"
	codeOutOfRange    = "out_of_range"
)

// Validate checks the form against the derived required set plus format
// and range rules, returning a field→code map. An empty map means the
// form may be submitted.
func (f FormState) Validate() map[string]string {
	problems := make(map[string]string)

	for _, field := range f.RequiredFields() {
		if f.fieldEmpty(field) {
			problems[field] = codeRequired
		}
	}

	if f.ServiceType != "" &&
		f.ServiceType != string(domain.ServiceCharter) &&
		f.ServiceType != string(domain.ServiceTour) {
		problems["service_type"] = codeInvalidChoice
	}

	if f.Email != "" && !validator.IsEmail(f.Email) {
		problems["email"] = codeInvalidEmail
	}

	if f.TravelDate != "" {
		if _, err := domain.ParseDate(f.TravelDate); err != nil {
			problems["travel_date"] = codeInvalidDate
		}
	}
	if f.ReturnDate != "" {
		if _, err := domain.ParseDate(f.ReturnDate); err != nil {
			problems["return_date"] = codeInvalidDate
		}
	}

	if f.DepartureTime != "" && !domain.IsDepartureTimeSlot(f.DepartureTime) {
		problems["departure_time"] = codeInvalidTime
	}
	if f.ReturnTime != "" && !domain.IsDepartureTimeSlot(f.ReturnTime) {
		problems["return_time"] = codeInvalidTime
	}

	if f.DepartureLocation != "" && !validDepartureLocation(f.DepartureLocation) {
		problems["departure_location"] = codeInvalidChoice
	}

	if f.ServiceType == string(domain.ServiceTour) && f.NumberOfPassengers != 0 {
		if f.NumberOfPassengers < 1 || f.NumberOfPassengers > 20 {
			problems["number_of_passengers"] = codeOutOfRange
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

func (f FormState) fieldEmpty(field string) bool {
	switch field {
	case "name":
		return f.Name == ""
	case "email":
		return f.Email == ""
	case "phone":
		return f.Phone == ""
	case "service_type":
		return f.ServiceType == ""
	case "travel_date":
		return f.TravelDate == ""
	case "departure_time":
		return f.DepartureTime == ""
	case "departure_location":
		return f.DepartureLocation == ""
	case "departure_location_other":
		return f.DepartureLocationOther == ""
	case "destination":
		return f.Destination == ""
	case "destination_other":
		return f.DestinationOther == ""
	case "return_time":
		return f.ReturnTime == ""
	case "tour":
		return f.Tour == ""
	case "number_of_passengers":
		return f.NumberOfPassengers == 0
	default:
		return false
	}
}

func validDepartureLocation(choice string) bool {
	for _, loc := range domain.DepartureLocations() {
		if choice == loc {
			return true
		}
	}
	return false
}
