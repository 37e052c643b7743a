package zemen

import "time"

// eatZone is East Africa Time (UTC+3), the civil timezone of Ethiopia,
// used to normalize input times to a calendar date before conversion.
var eatZone = time.FixedZone("EAT", 3*60*60)

// IsGregorianLeapYear reports whether the given proleptic Gregorian year
// is a leap year: divisible by 4, but not by 100 unless also by 400.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsEthiopianLeapYear reports whether the given Ethiopian year is a leap
// year, one in which Pagume has 6 days instead of 5. The Ethiopian cycle
// marks the year before each multiple of four: 2003, 2007, 2011, ...
func IsEthiopianLeapYear(year int) bool {
	return floorMod(year+1, 4) == 0
}

// DaysInGregorianMonth returns the number of days in the given month of
// a proleptic Gregorian year, or 0 if the month is not 1–12.
func DaysInGregorianMonth(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month == 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case month == 4 || month == 6 || month == 9 || month == 11:
		return 30
	default:
		return 31
	}
}

// DaysInEthiopianMonth returns the number of days in the given month of
// an Ethiopian year, or 0 if the month is not 1–13. Months 1–12 always
// have 30 days; Pagume (month 13) has 5, or 6 in a leap year.
func DaysInEthiopianMonth(year, month int) int {
	switch {
	case month < 1 || month > 13:
		return 0
	case month == 13:
		if IsEthiopianLeapYear(year) {
			return 6
		}
		return 5
	default:
		return 30
	}
}

// FromTime converts a moment in time to the Ethiopian calendar date it
// falls on in East Africa Time (UTC+3). The input is normalized to EAT
// first, so the result is the same regardless of the input timezone.
func FromTime(t time.Time) (EthiopianDate, error) {
	et := t.In(eatZone)
	y, m, d := et.Date()
	return GregorianToEthiopian(y, int(m), d)
}

// Today returns the current Ethiopian date in East Africa Time.
func Today() EthiopianDate {
	ed, _ := FromTime(time.Now()) // cannot fail for the current era
	return ed
}
