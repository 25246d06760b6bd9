package get_slot_times

import (
	"fmt"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// validateRequest validates the slot-times query parameters
func validateRequest(req *Request) error {
	if req.JourneyID == "" {
		return fmt.Errorf("%w: journeyID is required", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be %s", ErrInvalidInput, domain.DateFormat)
	}

	return nil
}
