package platforms

import (
	"fmt"
	"strconv"
	"strings"
)

// maxClockHourDigits keeps hours*60+59 within a 32-bit int.
const maxClockHourDigits = 7

// ParseClock converts an "H:MM" or "HH:MM" wall-clock time into minutes since
// midnight.
//
// Hours above 23 are accepted so that services running past midnight can be
// written as "24:15" or "25:40", the usual timetable convention. Minutes must
// be between 00 and 59. Both fields are plain decimal digits, with no sign.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(mm) != 2 {
		return 0, fmt.Errorf("%w: clock %q must be HH:MM", ErrInvalidArgument, s)
	}

	if !isDigits(hh) || len(hh) > maxClockHourDigits {
		return 0, fmt.Errorf("%w: clock %q has invalid hours", ErrInvalidArgument, s)
	}
	if !isDigits(mm) {
		return 0, fmt.Errorf("%w: clock %q has invalid minutes", ErrInvalidArgument, s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: clock %q has invalid hours", ErrInvalidArgument, s)
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: clock %q has invalid minutes", ErrInvalidArgument, s)
	}

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

func isDigits(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
}
