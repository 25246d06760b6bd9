package journeyservice

// Journey is the customer-journey record tracking one seller's progress
// through the valuation funnel
type Journey struct {
	ID          string `json:"customerJourneyId"`
	VisitID     string `json:"visitId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	ZipCode     string `json:"zipCode"`
	VehicleYear int    `json:"vehicleYear"`
	VehicleMake string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
}

// AppointmentSubmission is the booking payload attached to a journey
type AppointmentSubmission struct {
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"location"`
	Date         string `json:"date"`          // YYYY-MM-DD
	DateDisplay  string `json:"dateFormatted"` // "Thursday 11/12/2025"
	Time         string `json:"time"`          // Morning/Afternoon/Evening
	Phone        string `json:"phone"`         // branch contact phone
	Type         string `json:"type"`          // branch or home

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Telephone  string `json:"telephone"`
	ReceiveSMS bool   `json:"receiveSMS"`

	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	StateZip string `json:"stateZip,omitempty"`
}
