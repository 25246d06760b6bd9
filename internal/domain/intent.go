package domain

import "time"

// BookingIntent is the record emitted when a customer confirms a slot.
// One intent is stored per (journey, location, date, period) so that
// repeated identical submissions stay idempotent.
type BookingIntent struct {
	ID           int64
	PublicID     string // UUID exposed to callers
	JourneyID    string
	LocationID   int64
	LocationName string
	Kind         LocationKind
	ISODate      string // YYYY-MM-DD
	Period       Period
	BranchPhone  string

	FirstName string
	LastName  string
	Phone     string
	SMSOptIn  bool

	// Address block, populated for home-visit intents only
	Address1 string
	Address2 string
	City     string
	StateZip string

	CreatedAt time.Time
}

// DisplayDate renders the appointment date for confirmation surfaces
func (i *BookingIntent) DisplayDate() string {
	return FormatDisplayDate(i.ISODate)
}

// RequiresAddress reports whether the intent must carry an address block
func (i *BookingIntent) RequiresAddress() bool {
	return i.Kind == KindHome
}
