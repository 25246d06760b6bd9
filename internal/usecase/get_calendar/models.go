package get_calendar

import (
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// Request carries the calendar query parameters
type Request struct {
	JourneyID string
	Kind      domain.LocationKind
	Offset    int
	Zip       string
}

// DayCell is one location/date intersection in the calendar grid
type DayCell struct {
	ISODate   string `json:"date"`
	Morning   bool   `json:"morning"`
	Afternoon bool   `json:"afternoon"`
	Evening   bool   `json:"evening"`
}

// DateColumn is one column header of the calendar grid
type DateColumn struct {
	Weekday string `json:"weekday"`
	Display string `json:"display"`
	ISODate string `json:"date"`
}

// LocationRow is one location with its per-date day-part availability
type LocationRow struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Kind          string    `json:"kind"`
	DistanceMiles float64   `json:"distanceMiles"`
	Days          []DayCell `json:"days"`
}

// PagerState reports which window moves are currently possible
type PagerState struct {
	Offset     int  `json:"offset"`
	CanAdvance bool `json:"canAdvance"`
	CanRetreat bool `json:"canRetreat"`
	NextOffset int  `json:"nextOffset"`
	PrevOffset int  `json:"prevOffset"`
}

// Response is the ranked calendar grid for one journey
type Response struct {
	JourneyID string        `json:"journeyId"`
	Kind      string        `json:"kind"`
	Dates     []DateColumn  `json:"dates"`
	Locations []LocationRow `json:"locations"`
	Pager     PagerState    `json:"pager"`
}
