package formatting

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

// FormatDate renders an ISO date the Brazilian way, 02/01/2006. Dates
// that do not parse are shown as stored.
func FormatDate(isoDate string) string {
	t, err := time.Parse(isoDateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// FormatWhen renders a slot's date and time together, e.g.
// "01/05/2024 às 10:00".
func FormatWhen(isoDate, timeOfDay string) string {
	return fmt.Sprintf("%s às %s", FormatDate(isoDate), timeOfDay)
}
