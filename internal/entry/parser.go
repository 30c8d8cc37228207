package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// unitsPattern matches plain decimal unit values (e.g., "2", "1.5", ".75", "2,3")
var unitsPattern = regexp.MustCompile(`^(\d+([.,]\d*)?|[.,]\d+)$`)

// MaxUnits is the maximum number of units accepted for a single entry
const MaxUnits = 50.0

// ParseUnits parses a units value as typed by a user.
// A trailing "u" is accepted and a comma may be used as decimal separator.
// Valid inputs: "2" (returns 2), "1.5" (returns 1.5), "2,3u" (returns 2.3), "0" (returns 0)
// Invalid inputs: "", "-1", "abc", values exceeding MaxUnits
func ParseUnits(input string) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.TrimSuffix(s, "u")
	if !unitsPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid units: expected a non-negative number like 1.5, got %q", input)
	}

	units, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid units: expected a non-negative number like 1.5, got %q", input)
	}

	if units > MaxUnits {
		return 0, fmt.Errorf("invalid units: exceeds maximum of %.0f per entry", MaxUnits)
	}

	return units, nil
}

// NormalizeName collapses whitespace in a drink name typed on the command line.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
