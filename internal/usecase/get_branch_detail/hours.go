package get_branch_detail

import (
	"strings"

	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	"github.com/cashforcars/CFC-AppointmentService/pkg/types"
)

const closedLabel = "Closed"

// weekDays fixes the display order of the hours card
var weekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// foldHours collapses the backend's per-range schedule rows into one line
// per weekday. A day with no open row, or only "closed" rows, renders as
// Closed; multiple open ranges join in backend order. Times display in
// 12-hour format.
func foldHours(rows []branchservice.OperationHour) []DayHours {
	ranges := make(map[string][]string, len(weekDays))
	for _, row := range rows {
		if !strings.EqualFold(row.Type, "open") || row.OpenTime == nil || row.CloseTime == nil {
			continue
		}
		day := normalizeDay(row.DayOfWeek)
		ranges[day] = append(ranges[day], displayTime(*row.OpenTime)+" - "+displayTime(*row.CloseTime))
	}

	folded := make([]DayHours, len(weekDays))
	for i, day := range weekDays {
		hours := closedLabel
		if r := ranges[day]; len(r) > 0 {
			hours = strings.Join(r, ", ")
		}
		folded[i] = DayHours{Day: day, Hours: hours}
	}
	return folded
}

// displayTime renders a 24-hour backend time as "9:00 AM"; unparseable
// values pass through verbatim
func displayTime(clock string) string {
	ts, err := types.NewTimeStringFromString(clock)
	if err != nil {
		return clock
	}
	return ts.Format12Hour()
}

// normalizeDay maps backend day names onto the display set, tolerating
// case differences
func normalizeDay(day string) string {
	for _, d := range weekDays {
		if strings.EqualFold(day, d) {
			return d
		}
	}
	return day
}
