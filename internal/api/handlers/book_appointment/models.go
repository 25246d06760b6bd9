package book_appointment

import (
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	bookAppointment "github.com/cashforcars/CFC-AppointmentService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	JourneyID  string `json:"journeyId"`
	LocationID int64  `json:"locationId"`
	Kind       string `json:"kind"` // branch or home
	Date       string `json:"date"` // YYYY-MM-DD
	Period     string `json:"period"`
	Zip        string `json:"zip,omitempty"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	SMSOptIn  bool   `json:"receiveSMS"`

	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	StateZip string `json:"stateZip,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		JourneyID:  r.JourneyID,
		LocationID: r.LocationID,
		Kind:       domain.LocationKind(r.Kind),
		ISODate:    r.Date,
		Period:     domain.Period(r.Period),
		Zip:        r.Zip,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		SMSOptIn:   r.SMSOptIn,
		Address1:   r.Address1,
		Address2:   r.Address2,
		City:       r.City,
		StateZip:   r.StateZip,
	}
}
