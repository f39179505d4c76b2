package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// StrToBool converts a string to a bool.
// Besides what strconv accepts it understands "yes"/"no" and "on"/"off".
func StrToBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("failed to parse '%s' as bool: %w", s, err)
	}
	return b, nil
}
