// Package selection tracks one in-progress booking attempt: appointment kind,
// location, date, time and contact details, with strict downstream
// invalidation when an earlier field changes. A Selection lives for a single
// booking attempt and is never persisted.
package selection

import (
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/ranking"
)

// State names how far the selection has progressed
type State string

const (
	StateEmpty           State = "empty"
	StateKindChosen      State = "kind_chosen"
	StateLocationChosen  State = "location_chosen"
	StateDateChosen      State = "date_chosen"
	StateTimeChosen      State = "time_chosen"
	StateContactComplete State = "contact_complete"
)

// Selection is the single mutable booking state. Only its own transition
// methods may mutate it.
type Selection struct {
	Kind       domain.LocationKind
	LocationID *int64
	ISODate    string
	Period     domain.Period

	FirstName string
	LastName  string
	Phone     string
	SMSOptIn  bool

	// Address block, required for home-visit bookings
	Address1 string
	Address2 string
	City     string
	StateZip string
}

// New creates an empty selection defaulting to a branch appointment
func New() *Selection {
	return &Selection{Kind: domain.KindBranch}
}

// SetKind switches the appointment kind. A chosen location of an
// incompatible kind is cleared along with everything downstream of it;
// when switching to home with no compatible location chosen, the unique
// home-visit unit is auto-selected if the list carries one.
func (s *Selection) SetKind(kind domain.LocationKind, locations []domain.Location) error {
	if !kind.IsValid() {
		return ErrInvalidKind
	}
	s.Kind = kind

	if s.LocationID != nil {
		current, ok := findLocation(locations, *s.LocationID)
		if ok && current.Kind == kind {
			return nil
		}
		s.LocationID = nil
		s.clearDate()
	}

	if kind == domain.KindHome {
		if home, ok := ranking.FindHome(locations); ok {
			id := home.ID
			s.LocationID = &id
		}
	}
	return nil
}

// SetLocation chooses a location, clearing date and time
func (s *Selection) SetLocation(id int64, locations []domain.Location) error {
	loc, ok := findLocation(locations, id)
	if !ok {
		return ErrUnknownLocation
	}
	s.LocationID = &loc.ID
	s.Kind = loc.Kind
	s.clearDate()
	return nil
}

// SetDate chooses a date, clearing the chosen time
func (s *Selection) SetDate(isoDate string) {
	s.ISODate = isoDate
	s.Period = ""
}

// SetTime chooses a day part. Terminal data field before contact info,
// nothing downstream to clear.
func (s *Selection) SetTime(period domain.Period) {
	s.Period = period
}

// SetContact fills the contact fields. Contact entry never invalidates the
// slot selection.
func (s *Selection) SetContact(firstName, lastName, phone string, smsOptIn bool) {
	s.FirstName = firstName
	s.LastName = lastName
	s.Phone = phone
	s.SMSOptIn = smsOptIn
}

// SetAddress fills the home-visit address block
func (s *Selection) SetAddress(line1, line2, city, stateZip string) {
	s.Address1 = line1
	s.Address2 = line2
	s.City = city
	s.StateZip = stateZip
}

// State reports how far the selection has progressed
func (s *Selection) State() State {
	switch {
	case s.Kind == "":
		return StateEmpty
	case s.LocationID == nil:
		return StateKindChosen
	case s.ISODate == "":
		return StateLocationChosen
	case s.Period == "":
		return StateDateChosen
	case !s.contactComplete():
		return StateTimeChosen
	default:
		return StateContactComplete
	}
}

// ValidatePhone checks the contact phone. A failure blocks submission only.
func (s *Selection) ValidatePhone() error {
	if !domain.IsValidPhone(s.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// CanSubmit reports whether the selection is complete enough to dispatch:
// location, date, time and contact identity for every kind, plus address
// line 1 and city for home visits.
func (s *Selection) CanSubmit() bool {
	return s.State() == StateContactComplete
}

func (s *Selection) contactComplete() bool {
	if s.FirstName == "" || s.LastName == "" || !domain.IsValidPhone(s.Phone) {
		return false
	}
	if s.Kind == domain.KindHome && (s.Address1 == "" || s.City == "") {
		return false
	}
	return true
}

func (s *Selection) clearDate() {
	s.ISODate = ""
	s.Period = ""
}

func findLocation(locations []domain.Location, id int64) (*domain.Location, bool) {
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i], true
		}
	}
	return nil, false
}
