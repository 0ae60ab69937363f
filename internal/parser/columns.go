package parser

import (
	"regexp"
	"strings"
)

var (
	camelBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// SnakeCase converts CamelCase/PascalCase source column names to
// snake_case while keeping acronym runs together ("CategoryCode" →
// "category_code", "NationalYN" → "national_yn"). The literal "PoEName"
// is special-cased so the PoE acronym does not get split.
func SnakeCase(name string) string {
	if name == "PoEName" {
		return "poe_name"
	}

	name = camelBoundary.ReplaceAllString(name, "${1}_${2}")
	name = acronymBoundary.ReplaceAllString(name, "${1}_${2}")

	return strings.ToLower(name)
}

// NormalizeStarColumn strips a single leading underscore and lowercases;
// STAR registry exports prefix positional columns ("_N") that way.
func NormalizeStarColumn(name string) string {
	if strings.HasPrefix(name, "_") {
		name = name[1:]
	}
	return strings.ToLower(name)
}

// TrimColumn is the identity regime for workbook sheets whose headers
// are already the canonical vocabulary.
func TrimColumn(name string) string {
	return strings.TrimSpace(name)
}
