// Package zemen converts dates between the Gregorian and Ethiopian
// calendars through an integer Julian Day Number (JDN).
//
// The JDN is a continuous day count used as the calendar-agnostic
// interchange value: every conversion goes through it, and both
// directions are exact inverses of each other. The supported range
// starts at [MinJDN], Gregorian 0001-01-01 in the proleptic Gregorian
// calendar.
//
// All functions are pure and stateless, safe to call concurrently.
//
// Basic usage:
//
//	ed, err := zemen.GregorianToEthiopian(2015, 9, 11)
//	// ed == zemen.EthiopianDate{Year: 2008, Month: 1, Day: 1}
//
//	gd, err := zemen.EthiopianToGregorian(2008, 1, 1)
//	// gd == zemen.GregorianDate{Year: 2015, Month: 9, Day: 11}
//
// Invalid input is reported through [InvalidDateError] (the triple does
// not exist in the stated calendar) or [InvalidJDNError] (the day number
// is before [MinJDN]).
package zemen

const (
	// gregorianEpochOffset relates a JDN to the proleptic Gregorian
	// ordinal day count: JDN = ordinal + gregorianEpochOffset, where
	// ordinal 1 is 0001-01-01.
	gregorianEpochOffset = 1721425

	// ethiopicEpoch anchors the Ethiopian 4-year leap cycle on the JDN
	// scale. Positions are taken modulo the 1461-day cycle (three
	// 365-day years followed by one 366-day year).
	ethiopicEpoch = 1723856
)

// MinJDN is the smallest supported Julian Day Number. It corresponds to
// Gregorian 0001-01-01; conversions reject anything earlier.
const MinJDN = gregorianEpochOffset + 1

// daysBeforeMonth[m] is the number of days before month m in a common
// Gregorian year.
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// GregorianToJDN converts a proleptic Gregorian date to its Julian Day
// Number. The year must be at least 1 and the month and day must exist
// in that year; otherwise an [InvalidDateError] is returned.
func GregorianToJDN(year, month, day int) (int, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > DaysInGregorianMonth(year, month) {
		return 0, &InvalidDateError{Calendar: CalendarGregorian, Year: year, Month: month, Day: day}
	}
	ordinal := 365*(year-1) + (year-1)/4 - (year-1)/100 + (year-1)/400 + daysBeforeMonth[month] + day
	if month > 2 && IsGregorianLeapYear(year) {
		ordinal++
	}
	return ordinal + gregorianEpochOffset, nil
}

// JDNToGregorian converts a Julian Day Number back to a proleptic
// Gregorian date. It is the exact inverse of [GregorianToJDN]. Day
// numbers before [MinJDN] yield an [InvalidJDNError].
func JDNToGregorian(jdn int) (GregorianDate, error) {
	if jdn < MinJDN {
		return GregorianDate{}, &InvalidJDNError{JDN: jdn}
	}

	// Peel off 400-, 100-, 4- and 1-year cycles. The last century of a
	// 400-cycle and the last year of a 4-cycle run long, hence the two
	// clamps.
	n := jdn - MinJDN
	n400 := n / 146097
	n %= 146097
	n100 := n / 36524
	if n100 == 4 {
		n100 = 3
	}
	n -= n100 * 36524
	n4 := n / 1461
	n -= n4 * 1461
	n1 := n / 365
	if n1 == 4 {
		n1 = 3
	}
	n -= n1 * 365

	year := 400*n400 + 100*n100 + 4*n4 + n1 + 1
	month := 1
	for n >= DaysInGregorianMonth(year, month) {
		n -= DaysInGregorianMonth(year, month)
		month++
	}
	return GregorianDate{Year: year, Month: month, Day: n + 1}, nil
}

// JDNToEthiopian converts a Julian Day Number to an Ethiopian date. Day
// numbers before [MinJDN] yield an [InvalidJDNError].
func JDNToEthiopian(jdn int) (EthiopianDate, error) {
	if jdn < MinJDN {
		return EthiopianDate{}, &InvalidJDNError{JDN: jdn}
	}

	d := jdn - ethiopicEpoch
	r := floorMod(d, 1461)
	n := r%365 + 365*(r/1460)
	year := 4*floorDiv(d, 1461) + r/365 - r/1460
	month := n/30 + 1
	day := n%30 + 2

	// The raw cycle decomposition can land one day past the end of a
	// month, or past the end of Pagume; such days belong to the start
	// of the next month or year.
	if day == 31 {
		month, day = month+1, 1
	}
	if month == 13 && day > DaysInEthiopianMonth(year, 13) {
		year, month, day = year+1, 1, 1
	}
	return EthiopianDate{Year: year, Month: month, Day: day}, nil
}

// EthiopianToJDN converts an Ethiopian date to its Julian Day Number.
// It is the exact inverse of [JDNToEthiopian]. The month must be 1–13
// and the day must exist in that month (months 1–12 have 30 days;
// Pagume has 5, or 6 in a leap year); otherwise an [InvalidDateError]
// is returned.
func EthiopianToJDN(year, month, day int) (int, error) {
	if month < 1 || month > 13 || day < 1 || day > DaysInEthiopianMonth(year, month) {
		return 0, &InvalidDateError{Calendar: CalendarEthiopian, Year: year, Month: month, Day: day}
	}
	return ethiopicEpoch - 1 + 1461*floorDiv(year, 4) + 365*floorMod(year, 4) + 30*(month-1) + day - 1, nil
}

// GregorianToEthiopian converts a proleptic Gregorian date to an
// Ethiopian date. Errors from the underlying conversions are returned
// unchanged.
func GregorianToEthiopian(year, month, day int) (EthiopianDate, error) {
	jdn, err := GregorianToJDN(year, month, day)
	if err != nil {
		return EthiopianDate{}, err
	}
	return JDNToEthiopian(jdn)
}

// EthiopianToGregorian converts an Ethiopian date to a proleptic
// Gregorian date. It is the exact inverse of [GregorianToEthiopian].
// Ethiopian dates before Gregorian 0001-01-01 yield an
// [InvalidJDNError]; errors are returned unchanged.
func EthiopianToGregorian(year, month, day int) (GregorianDate, error) {
	jdn, err := EthiopianToJDN(year, month, day)
	if err != nil {
		return GregorianDate{}, err
	}
	return JDNToGregorian(jdn)
}

// floorDiv is integer division rounding toward negative infinity.
// Go's / truncates toward zero, which is one too high for negative
// operands near the Ethiopian epoch.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the modulus matching floorDiv: the result has the sign of b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
