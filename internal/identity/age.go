package identity

import "time"

// DateLayout is the only accepted birth date format.
const DateLayout = "2006-01-02"

// AdultAge is the age of legal majority.
const AdultAge = 18

// AgeBreakdown is calendar elapsed time between a birth date and a reference date.
type AgeBreakdown struct {
	Years   int
	Months  int
	Days    int
	IsAdult bool
}

// AgeResult carries either an AgeBreakdown or the reason it could not be computed.
type AgeResult struct {
	Age    AgeBreakdown
	Reason Reason
}

// OK reports whether the age was computed.
func (r AgeResult) OK() bool { return r.Reason.OK() }

// CalculateAge returns the years, months and days elapsed from birthDate
// (YYYY-MM-DD) to the calendar date of ref in UTC.
func CalculateAge(birthDate string, ref time.Time) AgeResult {
	if birthDate == "" {
		return AgeResult{Reason: ReasonEmptyInput}
	}
	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return AgeResult{Reason: ReasonInvalidFormat}
	}

	ref = ref.UTC()
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	if birth.After(today) {
		return AgeResult{Reason: ReasonFutureDate}
	}

	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	if days < 0 {
		months--
		// Day 0 of the reference month is the last day of the month before it.
		days += time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
		if days < 0 {
			// Birth day exceeds the length of the preceding month (e.g. born on
			// the 31st, reference on 1 March); count the reference day itself.
			days = today.Day()
		}
	}
	if months < 0 {
		years--
		months += 12
	}

	return AgeResult{Age: AgeBreakdown{
		Years:   years,
		Months:  months,
		Days:    days,
		IsAdult: years >= AdultAge,
	}}
}
