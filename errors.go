package zemen

import "fmt"

// Calendar names used in [InvalidDateError].
const (
	CalendarGregorian = "gregorian"
	CalendarEthiopian = "ethiopian"
)

// InvalidDateError reports a (year, month, day) triple that does not
// exist in the named calendar, such as February 30 or a 7-day Pagume.
type InvalidDateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %d-%02d-%02d", e.Calendar, e.Year, e.Month, e.Day)
}

// InvalidJDNError reports a Julian Day Number below [MinJDN], the
// earliest day the library supports.
type InvalidJDNError struct {
	JDN int
}

func (e *InvalidJDNError) Error() string {
	return fmt.Sprintf("invalid Julian Day Number %d: before %d (Gregorian 0001-01-01)", e.JDN, MinJDN)
}
