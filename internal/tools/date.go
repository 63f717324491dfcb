package tools

import "time"

// DateDiff is the breakdown between two dates.
type DateDiff struct {
	Days   int `json:"days"`
	Weeks  int `json:"weeks"`
	Months int `json:"months"`
	Years  int `json:"years"`
}

// DiffDates returns the difference between a and b, order-insensitive.
// Days is the total day count; Weeks is Days/7; Months counts calendar
// months; Years is Months/12.
func DiffDates(a, b time.Time) DateDiff {
	if b.Before(a) {
		a, b = b, a
	}
	a = truncateToDay(a)
	b = truncateToDay(b)

	days := int(b.Sub(a).Hours() / 24)
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return DateDiff{
		Days:   days,
		Weeks:  days / 7,
		Months: months,
		Years:  months / 12,
	}
}

// Age is an exact age at a reference date.
type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// AgeAt returns the calendar-exact age for a birth date at the given
// reference time. A birth date in the future yields a zero Age.
func AgeAt(birth, at time.Time) Age {
	birth = truncateToDay(birth)
	at = truncateToDay(at)
	if at.Before(birth) {
		return Age{}
	}

	years := at.Year() - birth.Year()
	months := int(at.Month()) - int(birth.Month())
	days := at.Day() - birth.Day()

	if days < 0 {
		// borrow the previous month's length
		prevMonth := at.AddDate(0, 0, -at.Day())
		days += prevMonth.Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return Age{Years: years, Months: months, Days: days}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
