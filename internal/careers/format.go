package careers

import (
	"strings"
	"unicode"
)

// FormatEmploymentType turns a raw enum value into its display label by
// capitalizing each hyphen-separated segment, e.g. "full-time" ->
// "Full-Time". It is total: any input is transformed by the same rule.
func FormatEmploymentType(raw string) string {
	parts := strings.Split(raw, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, "-")
}

// EmploymentTypeOptions lists the filter options shown on the careers page:
// the sentinel followed by the formatted label of every known enum value.
func EmploymentTypeOptions() []string {
	out := make([]string, 0, len(EmploymentTypes)+1)
	out = append(out, AllTypes)
	for _, et := range EmploymentTypes {
		out = append(out, FormatEmploymentType(string(et)))
	}
	return out
}
