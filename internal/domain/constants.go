package domain

// Date format constants
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	MonthFormat      = "2006-01"    // YYYY-MM
	MonthLabelFormat = "January 2006"
	DayLabelFormat   = "Monday, Jan 2"
)

// Canonical slot range: hourly from 9:00 AM to 10:00 PM
const (
	FirstSlotHour = 9
	LastSlotHour  = 22
)

// Booking durations offered by the flow
const (
	Duration30Mins  = "30 mins"
	Duration1Hour   = "1 hour"
	Duration2Hours  = "2 hours"
	Duration4Hours  = "4 hours"
	DefaultDuration = Duration1Hour
)

// Durations ordered list of selectable durations
var Durations = []string{Duration30Mins, Duration1Hour, Duration2Hours, Duration4Hours}

// IsValidDuration returns true if the label is one of Durations
func IsValidDuration(label string) bool {
	for _, d := range Durations {
		if d == label {
			return true
		}
	}
	return false
}
