package timezone

import "time"

const DefaultTimezone = "UTC"

// DateLayout is the calendar-date form every entity stores.
const DateLayout = "2006-01-02"

// TimeLayout is the local display slot form (24h).
const TimeLayout = "15:04"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// TodayIn returns the current calendar-date string in the clinic timezone.
func TodayIn(tz string) string {
	return NowIn(tz).Format(DateLayout)
}

// ParseSlot parses a (date, time) pair in the clinic timezone.
func ParseSlot(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		dateStr+" "+timeStr,
		Location(tz),
	)
}
