package get_slot_times

// Request identifies the location-day whose concrete times are listed
type Request struct {
	JourneyID  string
	LocationID int64
	Date       string // ISO YYYY-MM-DD
}

// SlotTime is one bookable time of the day. Branch slots display in
// 12-hour clock form, home slots show their day-part label.
type SlotTime struct {
	SlotID  int64  `json:"slotId"`
	Display string `json:"display"`
}

// Response carries the day's bookable day parts and concrete times
type Response struct {
	LocationID int64      `json:"locationId"`
	Date       string     `json:"date"`
	Periods    []string   `json:"periods"`
	Times      []SlotTime `json:"times"`
}
