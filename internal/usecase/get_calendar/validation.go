package get_calendar

import (
	"fmt"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// validateRequest validates the calendar query parameters
func validateRequest(req *Request) error {
	if req.JourneyID == "" {
		return fmt.Errorf("%w: journeyID is required", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.KindBranch, domain.KindHome)
	}

	if req.Zip != "" && !domain.IsValidZip(req.Zip) {
		return fmt.Errorf("%w: zip must be %d digits", ErrInvalidInput, domain.ZipCodeLength)
	}

	return nil
}
