package parser

import (
	"fmt"
	"strings"
)

// UniqueKey derives the natural upsert key for a row: stable across
// re-imports of the same file as long as row order is unchanged.
func UniqueKey(domain string, index int) string {
	return fmt.Sprintf("%s_row_%d", domain, index)
}

// IsYear reports whether s is a 4-digit year, the naming convention for
// ESPAR data sheets.
func IsYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// upper3 is the 3-letter prefix used in derived readiness record ids.
func upper3(s string) string {
	if len(s) > 3 {
		s = s[:3]
	}
	return strings.ToUpper(s)
}
