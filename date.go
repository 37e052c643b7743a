package zemen

import "time"

// GregorianDate is a calendar date in the proleptic Gregorian calendar.
// It is a plain comparable value; equality is structural. Construct one
// through [JDNToGregorian] or [EthiopianToGregorian] to get a validated
// date.
type GregorianDate struct {
	Year  int
	Month int // 1–12
	Day   int
}

// EthiopianDate is a calendar date in the Ethiopian calendar: twelve
// 30-day months plus the short 13th month Pagume (5 days, 6 in a leap
// year). It is a plain comparable value; equality is structural.
// Construct one through [JDNToEthiopian] or [GregorianToEthiopian] to
// get a validated date.
type EthiopianDate struct {
	Year  int
	Month int // 1–13
	Day   int
}

// Time returns the date as a time.Time at midnight UTC.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether g is strictly earlier than other.
func (g GregorianDate) Before(other GregorianDate) bool {
	if g.Year != other.Year {
		return g.Year < other.Year
	}
	if g.Month != other.Month {
		return g.Month < other.Month
	}
	return g.Day < other.Day
}

// After reports whether g is strictly later than other.
func (g GregorianDate) After(other GregorianDate) bool {
	return other.Before(g)
}

// Before reports whether e is strictly earlier than other.
func (e EthiopianDate) Before(other EthiopianDate) bool {
	if e.Year != other.Year {
		return e.Year < other.Year
	}
	if e.Month != other.Month {
		return e.Month < other.Month
	}
	return e.Day < other.Day
}

// After reports whether e is strictly later than other.
func (e EthiopianDate) After(other EthiopianDate) bool {
	return other.Before(e)
}
