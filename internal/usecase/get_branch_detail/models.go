package get_branch_detail

// Request identifies the branch to describe
type Request struct {
	BranchID int64
}

// DayHours is one weekday's folded operating hours
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"` // "9:00 AM - 6:00 PM" ranges or "Closed"
}

// Response is the branch info card
type Response struct {
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	ZipCode   string     `json:"zipCode"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Hours     []DayHours `json:"hours"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	ImageURL  string     `json:"imageUrl"`
	MapURL    string     `json:"mapUrl"`
}
