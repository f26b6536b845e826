package importer

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Employment types recognized in import results.
const (
	EmploymentFullTime  = "full-time"
	EmploymentPartTime  = "part-time"
	EmploymentFreelance = "freelance"
)

// Contract types recognized in import results.
const (
	ContractPermanent = "permanent"
	ContractFixedTerm = "fixed-term"
	ContractFreelance = "freelance"
)

// Seniority levels recognized in import results.
const (
	SeniorityIntern = "intern"
	SeniorityJunior = "junior"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
	SeniorityLead   = "lead"
)

var wsRun = regexp.MustCompile(`\s+`)

// normWS collapses all whitespace runs (including newlines) to single spaces
// and trims the result.
func normWS(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// strOrNil trims s and returns nil for the empty string. Extracted fields never
// carry empty strings as values.
func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// toStr coerces a decoded JSON value to a trimmed string. Arrays collapse to
// their first usable element. Returns nil for anything else.
func toStr(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return strOrNil(t)
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case float64:
		return strOrNil(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		if len(t) == 0 {
			return nil
		}
		return toStr(t[0])
	default:
		return nil
	}
}

// decodeText resolves HTML entities and collapses whitespace. Used on every
// string pulled out of structured data or markup.
func decodeText(s string) string {
	return normWS(html.UnescapeString(s))
}

// normVal coerces a JSON value to a decoded, whitespace-normalized string.
func normVal(v any) *string {
	s := toStr(v)
	if s == nil {
		return nil
	}
	return strOrNil(decodeText(*s))
}

// joined flattens a string-or-array JSON value into one lowercase string for
// keyword matching.
func joined(v any) string {
	switch t := v.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(t))
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := toStr(item); s != nil {
				parts = append(parts, *s)
			}
		}
		return strings.ToLower(strings.Join(parts, " "))
	default:
		if s := toStr(v); s != nil {
			return strings.ToLower(*s)
		}
		return ""
	}
}

// MapEmploymentType maps free text (e.g. schema.org "FULL_TIME") onto the
// fixed employment-type vocabulary. Unknown values map to the empty string.
func MapEmploymentType(v any) string {
	t := joined(v)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "full"):
		return EmploymentFullTime
	case strings.Contains(t, "part"):
		return EmploymentPartTime
	case strings.Contains(t, "freelance"), strings.Contains(t, "contract"):
		return EmploymentFreelance
	default:
		return ""
	}
}

// MapContractType maps free text onto the contract-type vocabulary. German
// listings use "befristet"/"unbefristet" for fixed-term/permanent.
func MapContractType(v any) string {
	t := joined(v)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "unbefrist"), strings.Contains(t, "perm"):
		return ContractPermanent
	case strings.Contains(t, "befrist"):
		return ContractFixedTerm
	case strings.Contains(t, "freelance"), strings.Contains(t, "contract"):
		return ContractFreelance
	default:
		return ""
	}
}

var seniorityMarkers = []struct {
	re    *regexp.Regexp
	level string
}{
	{regexp.MustCompile(`(?i)\b(intern(ship)?\b|praktik|werkstudent)`), SeniorityIntern},
	{regexp.MustCompile(`(?i)\bjunior\b`), SeniorityJunior},
	{regexp.MustCompile(`(?i)\b(lead|principal|head of|staff)\b`), SeniorityLead},
	{regexp.MustCompile(`(?i)\bsenior\b`), SenioritySenior},
}

// MapSeniority infers a seniority level from a posting title. Titles without a
// marker stay unclassified rather than defaulting to mid.
func MapSeniority(title string) *string {
	if title == "" {
		return nil
	}
	for _, m := range seniorityMarkers {
		if m.re.MatchString(title) {
			level := m.level
			return &level
		}
	}
	return nil
}

// truncateDate reduces an ISO-like timestamp to its date part (YYYY-MM-DD).
func truncateDate(v any) *string {
	s := toStr(v)
	if s == nil {
		return nil
	}
	d := *s
	if len(d) > 10 {
		d = d[:10]
	}
	return strOrNil(d)
}

// toFloat coerces a JSON value to a finite float64, nil otherwise.
func toFloat(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// mapSalaryPeriod maps schema.org unitText onto the salary-period vocabulary.
func mapSalaryPeriod(v any) *string {
	t := joined(v)
	switch {
	case strings.Contains(t, "year"), strings.Contains(t, "annum"), t == "yr":
		return strPtr("year")
	case strings.Contains(t, "month"), t == "mo":
		return strPtr("month")
	default:
		return nil
	}
}

func strPtr(s string) *string { return &s }
