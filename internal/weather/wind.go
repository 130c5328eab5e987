package weather

import (
	"fmt"
	"regexp"
	"strconv"
)

var firstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseWindSpeed returns the first number in a forecast wind string such as
// "10 mph" or "5 to 10 mph".
func ParseWindSpeed(raw string) (float64, error) {
	match := firstNumber.FindString(raw)
	if match == "" {
		return 0, fmt.Errorf("%w: wind speed %q has no number", ErrUpstream, raw)
	}
	return strconv.ParseFloat(match, 64)
}
