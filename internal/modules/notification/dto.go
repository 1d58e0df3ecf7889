package notification

// LeadPayload is the raw quote-form payload as posted by the lead
// service, plus the transient display price from a pricing-tier deep
// link. Field names mirror the form exactly.
type LeadPayload struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	ServiceType            string `json:"service_type"`
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
	PreSelectedPrice       string `json:"preSelectedPrice"`
}
