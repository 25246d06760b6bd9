package branchservice

import (
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// RawTimeSlot is one backend slot record. The shape is a union keyed by
// the owning branch's type: home units populate timeOfDay, physical
// branches populate timeSlot24Hour.
type RawTimeSlot struct {
	TimeSlotID     int64  `json:"timeSlotId"`
	TimeOfDay      string `json:"timeOfDay,omitempty"`
	TimeSlot24Hour string `json:"timeSlot24Hour,omitempty"`
}

// Branch is one sellable-to location with its slot availability.
// TimeSlots keys are date-time strings with a fixed midnight suffix
// ("2025-12-11T00:00:00").
type Branch struct {
	BranchID      int64                    `json:"branchId"`
	BranchName    string                   `json:"branchName"`
	Address1      string                   `json:"address1"`
	BranchPhone   string                   `json:"branchPhone"`
	Type          string                   `json:"type"` // "branch" or "home"
	DistanceMiles *float64                 `json:"distanceMiles,omitempty"`
	TimeSlots     map[string][]RawTimeSlot `json:"timeSlots"`
}

// OperationHour is one row of a branch's weekly schedule
type OperationHour struct {
	DayOfWeek string  `json:"dayOfWeek"`
	Type      string  `json:"type"` // "open" or "closed"
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// BranchDetail is the full branch record behind "Click for branch info"
type BranchDetail struct {
	BranchName     string          `json:"branchName"`
	Address1       string          `json:"address1"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	BranchPhone    string          `json:"branchPhone"`
	BranchEmail    string          `json:"branchEmail"`
	OperationHours []OperationHour `json:"operationHours"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	BranchImageURL string          `json:"branchImageUrl"`
	MapURL         string          `json:"mapURL"`
}

// branchDetailEnvelope wraps the detail payload as the backend ships it
type branchDetailEnvelope struct {
	BranchLocation BranchDetail `json:"branchLocation"`
}

// ToDomainLocation converts a backend branch into a domain location,
// resolving the slot union by branch type and normalizing date keys.
func (b *Branch) ToDomainLocation() domain.Location {
	kind := domain.KindBranch
	if b.Type == string(domain.KindHome) {
		kind = domain.KindHome
	}

	availability := make(map[string][]domain.SlotRecord, len(b.TimeSlots))
	for key, raw := range b.TimeSlots {
		records := make([]domain.SlotRecord, len(raw))
		for i, slot := range raw {
			records[i] = domain.SlotRecord{
				ID:        slot.TimeSlotID,
				Period:    domain.Period(slot.TimeOfDay),
				ClockTime: slot.TimeSlot24Hour,
			}
		}
		availability[domain.NormalizeISODate(key)] = records
	}

	return domain.Location{
		ID:            b.BranchID,
		Name:          b.BranchName,
		Address:       b.Address1,
		Phone:         b.BranchPhone,
		Kind:          kind,
		DistanceMiles: b.DistanceMiles,
		Availability:  availability,
	}
}

// ToDomainLocations converts a backend branch list in order
func ToDomainLocations(branches []Branch) []domain.Location {
	locations := make([]domain.Location, len(branches))
	for i := range branches {
		locations[i] = branches[i].ToDomainLocation()
	}
	return locations
}
