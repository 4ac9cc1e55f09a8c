package util

import "strings"

// Truthy reports whether s spells an enabled boolean switch.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}

	return false
}
