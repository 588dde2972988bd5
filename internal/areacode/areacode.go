// Package areacode handles the hierarchical administrative area codes.
//
// Codes travel in dotted form (e.g. "32.04.05") at the HTTP boundary and are
// kept dotted inside services. Storage keeps the dot-stripped fixed-width form
// ("320405"); Compact and Expand convert between the two. The extraction
// helpers operate on the dotted form only.
package areacode

import (
	"regexp"
	"strings"

	"idn-area/internal/domain"
)

// Kind identifies the administrative level a code belongs to.
type Kind string

const (
	Province Kind = "province"
	Regency  Kind = "regency"
	District Kind = "district"
	Village  Kind = "village"
	Island   Kind = "island"
)

const separator = "."

// Lengths of the dotted prefixes that identify each ancestor.
const (
	provinceLen = 2
	regencyLen  = 5
	districtLen = 8
)

// An island's third segment starts with 4 so it cannot be mistaken for a
// village or district segment.
var patterns = map[Kind]*regexp.Regexp{
	Province: regexp.MustCompile(`^\d{2}$`),
	Regency:  regexp.MustCompile(`^\d{2}\.\d{2}$`),
	District: regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`),
	Village:  regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}\.\d{4}$`),
	Island:   regexp.MustCompile(`^\d{2}\.\d{2}\.4\d{4}$`),
}

// Segment widths of the stored (undotted) form, per kind.
var segments = map[Kind][]int{
	Province: {2},
	Regency:  {2, 2},
	District: {2, 2, 2},
	Village:  {2, 2, 2, 4},
	Island:   {2, 2, 5},
}

var formats = map[Kind]string{
	Province: "DD",
	Regency:  "DD.DD",
	District: "DD.DD.DD",
	Village:  "DD.DD.DD.DDDD",
	Island:   "DD.DD.4DDDD",
}

// ProvinceCode returns the province part of a dotted code.
func ProvinceCode(code string) string { return prefix(code, provinceLen) }

// RegencyCode returns the province and regency parts of a dotted code.
func RegencyCode(code string) string { return prefix(code, regencyLen) }

// DistrictCode returns the province, regency and district parts of a dotted code.
func DistrictCode(code string) string { return prefix(code, districtLen) }

func prefix(code string, n int) string {
	if len(code) < n {
		return code
	}
	return code[:n]
}

// Valid reports whether code is a well-formed dotted code of the given kind.
func Valid(kind Kind, code string) bool {
	re, ok := patterns[kind]
	return ok && re.MatchString(code)
}

// Validate returns a domain.ValidationError naming field when code does not
// match the dotted format of kind.
func Validate(kind Kind, field, code string) error {
	if Valid(kind, code) {
		return nil
	}
	return domain.ValidationError{
		Field: field,
		Msg:   "must be a valid " + string(kind) + " code in " + formats[kind] + " format",
	}
}

// Compact strips the separators, producing the stored form.
func Compact(code string) string {
	return strings.ReplaceAll(code, separator, "")
}

// Expand turns a stored code back into its dotted form. Codes that already
// contain separators, or whose length does not fit kind, are returned as-is.
func Expand(kind Kind, code string) string {
	if code == "" || strings.Contains(code, separator) {
		return code
	}
	widths, ok := segments[kind]
	if !ok {
		return code
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(code) != total {
		return code
	}

	var b strings.Builder
	b.Grow(total + len(widths) - 1)
	pos := 0
	for i, w := range widths {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(code[pos : pos+w])
		pos += w
	}
	return b.String()
}
