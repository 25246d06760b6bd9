package book_appointment

import (
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// Request carries one confirmed slot selection with contact details
type Request struct {
	JourneyID  string
	LocationID int64
	Kind       domain.LocationKind
	ISODate    string // YYYY-MM-DD
	Period     domain.Period
	Zip        string

	FirstName string
	LastName  string
	Phone     string
	SMSOptIn  bool

	// Address block, required for home-visit appointments
	Address1 string
	Address2 string
	City     string
	StateZip string
}

// Response describes the stored booking intent. AlreadyBooked marks a
// repeat dispatch of an identical selection: the original intent is
// returned and no second submission reaches the journey backend.
type Response struct {
	IntentID      string    `json:"intentId"`
	JourneyID     string    `json:"journeyId"`
	LocationID    int64     `json:"locationId"`
	LocationName  string    `json:"locationName"`
	Kind          string    `json:"kind"`
	Date          string    `json:"date"`
	DateDisplay   string    `json:"dateFormatted"`
	Period        string    `json:"period"`
	BranchPhone   string    `json:"branchPhone"`
	AlreadyBooked bool      `json:"alreadyBooked"`
	CreatedAt     time.Time `json:"createdAt"`
}
