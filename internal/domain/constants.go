package domain

// Calendar window configuration
const (
	// MaxDaysAhead is the furthest day offset shown in the booking calendar
	MaxDaysAhead = 10

	// WindowSize is the number of candidate dates rendered per page
	WindowSize = 7

	// AllDatesScanLimit bounds the day walk for the full-horizon date list
	AllDatesScanLimit = 30
)

// Day-part classification boundaries for branch clock-time slots.
// A slot classifies as Morning at [MorningStartHour, AfternoonStartHour),
// Afternoon at [AfternoonStartHour, EveningStartHour), Evening at EveningStartHour and later.
const (
	MorningStartHour   = 9
	AfternoonStartHour = 12
	EveningStartHour   = 18
)

// NoDistanceSentinel substitutes for a missing distance when ranking locations,
// pushing undistanced locations behind any real measurement
const NoDistanceSentinel = 999

// PhoneDigitCount is the number of digits a valid US contact phone reduces to
const PhoneDigitCount = 10

// ZipCodeLength is the number of digits in a valid US ZIP code
const ZipCodeLength = 5

// Time format constants
const (
	TimeFormat    = "15:04"      // HH:MM
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	DisplayFormat = "02/01/2006" // DD/MM/YYYY
)
