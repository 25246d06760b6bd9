package get_availability

import (
	"strconv"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	getCalendar "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_calendar"
)

// ToUseCaseRequest builds the usecase request from query parameters.
// kind defaults to branch, offset to 0.
func ToUseCaseRequest(journeyID, kindStr, offsetStr, zip string) (*getCalendar.Request, error) {
	kind := domain.KindBranch
	if kindStr != "" {
		kind = domain.LocationKind(kindStr)
	}

	offset := 0
	if offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
		offset = parsed
	}

	return &getCalendar.Request{
		JourneyID: journeyID,
		Kind:      kind,
		Offset:    offset,
		Zip:       zip,
	}, nil
}
