package get_candidate_dates

import "github.com/cashforcars/CFC-AppointmentService/internal/domain"

// Request selects the scheduling rules for the date walk
type Request struct {
	Kind domain.LocationKind
}

// Date is one selectable day over the full booking horizon
type Date struct {
	Weekday string `json:"weekday"`
	Display string `json:"display"`
	ISODate string `json:"date"`
}

// Response is the full-horizon candidate date list
type Response struct {
	Kind  string `json:"kind"`
	Dates []Date `json:"dates"`
}
