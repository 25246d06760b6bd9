package book_appointment

import (
	"fmt"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/selection"
)

// validateRequest checks the shape of the request before any upstream call
func validateRequest(req *Request) error {
	if req.JourneyID == "" {
		return fmt.Errorf("%w: journeyID is required", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.KindBranch, domain.KindHome)
	}

	if _, err := time.Parse(domain.DateFormat, req.ISODate); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if !req.Period.IsValid() {
		return fmt.Errorf("%w: period must be one of %v", ErrInvalidInput, domain.Periods)
	}

	if !domain.IsValidPhone(req.Phone) {
		return ErrInvalidPhone
	}

	return nil
}

// buildSelection replays the request through the selection state machine
// against the journey's actual location list. It fails when the requested
// location is not sellable-to, and rejects incomplete selections (a home
// visit without an address block).
func buildSelection(req *Request, locations []domain.Location) (*selection.Selection, error) {
	sel := selection.New()
	if err := sel.SetKind(req.Kind, locations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := sel.SetLocation(req.LocationID, locations); err != nil {
		return nil, ErrLocationNotFound
	}
	sel.SetDate(req.ISODate)
	sel.SetTime(req.Period)
	sel.SetContact(req.FirstName, req.LastName, req.Phone, req.SMSOptIn)
	sel.SetAddress(req.Address1, req.Address2, req.City, req.StateZip)

	if !sel.CanSubmit() {
		return nil, fmt.Errorf("%w: selection incomplete (state=%s)", ErrInvalidInput, sel.State())
	}
	return sel, nil
}
