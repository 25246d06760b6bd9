package domain

// LocationKind distinguishes fixed branches from home-visit service
type LocationKind string

const (
	// KindBranch is an appointment at a fixed physical branch
	KindBranch LocationKind = "branch"

	// KindHome is a "We Come to You" appointment at the customer's address
	KindHome LocationKind = "home"
)

// IsValid reports whether k is a known location kind
func (k LocationKind) IsValid() bool {
	return k == KindBranch || k == KindHome
}

// Location is a sellable-to entity: either a physical branch or the
// home-visit unit covering the customer's area.
type Location struct {
	ID            int64
	Name          string
	Address       string
	Phone         string
	Kind          LocationKind
	DistanceMiles *float64 // nil when the backend provided no distance

	// Availability maps ISO dates (YYYY-MM-DD) to that day's slot records,
	// in backend order. Keys are normalized at ingestion.
	Availability map[string][]SlotRecord
}

// DistanceOrSentinel returns the ranking distance, substituting the
// sentinel for locations without distance data
func (l *Location) DistanceOrSentinel() float64 {
	if l.DistanceMiles == nil {
		return NoDistanceSentinel
	}
	return *l.DistanceMiles
}

// IsHome reports whether this is the home-visit unit
func (l *Location) IsHome() bool {
	return l.Kind == KindHome
}
