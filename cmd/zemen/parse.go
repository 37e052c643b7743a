package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDate parses a numeric yyyy-mm-dd string. A leading '-' marks a
// negative year. Calendar validity is left to the conversion functions.
func parseDate(s string) (year, month, day int, err error) {
	rest := s
	negYear := strings.HasPrefix(rest, "-")
	if negYear {
		rest = rest[1:]
	}

	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want yyyy-mm-dd", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid date %q: want yyyy-mm-dd", s)
		}
		nums[i] = n
	}

	year, month, day = nums[0], nums[1], nums[2]
	if negYear {
		year = -year
	}
	return year, month, day, nil
}

// formatYMD renders a date as zero-padded yyyy-mm-dd, keeping the year
// sign in front of the padding.
func formatYMD(year, month, day int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
