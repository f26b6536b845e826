package importer

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// firstJobPostingLD returns the first JSON-LD JobPosting object embedded in
// the document, or nil. Script blocks are tried in document order; each may
// hold the object directly, inside a top-level array, or inside an @graph
// array. Malformed JSON never fails the scan, the next block is simply tried.
func firstJobPostingLD(doc *goquery.Document) map[string]any {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return true
		}
		if jp := findJobPosting(payload); jp != nil {
			found = jp
			return false
		}
		return true
	})
	return found
}

// findJobPosting walks a decoded JSON-LD payload and returns the first
// JobPosting object it contains.
func findJobPosting(payload any) map[string]any {
	switch t := payload.(type) {
	case map[string]any:
		if isJobPostingType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				if jp := findJobPosting(item); jp != nil {
					return jp
				}
			}
		}
	case []any:
		for _, item := range t {
			if jp := findJobPosting(item); jp != nil {
				return jp
			}
		}
	}
	return nil
}

// isJobPostingType handles @type given as a string or a list of strings.
func isJobPostingType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "JobPosting"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "JobPosting" {
				return true
			}
		}
	}
	return false
}

// ldGet walks nested maps along the given key path, returning nil as soon as a
// segment is missing or not an object.
func ldGet(ld map[string]any, path ...string) any {
	var cur any = ld
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

// ldLocality extracts the best available locality from a JobPosting's
// jobLocation: addressLocality, then addressRegion, then the country name.
func ldLocality(ld map[string]any) *string {
	// jobLocation may itself be an array of places
	loc := ld["jobLocation"]
	if arr, ok := loc.([]any); ok && len(arr) > 0 {
		loc = arr[0]
	}
	place, ok := loc.(map[string]any)
	if !ok {
		return nil
	}
	if s := normVal(ldGet(place, "address", "addressLocality")); s != nil {
		return s
	}
	if s := normVal(ldGet(place, "address", "addressRegion")); s != nil {
		return s
	}
	return normVal(ldGet(place, "address", "addressCountry", "name"))
}

// ldSalary extracts min/max/period from a JobPosting's baseSalary block.
func ldSalary(ld map[string]any) (min, max *float64, period *string) {
	value, ok := ldGet(ld, "baseSalary", "value").(map[string]any)
	if !ok {
		return nil, nil, nil
	}
	min = toFloat(value["minValue"])
	max = toFloat(value["maxValue"])
	if min == nil && max == nil {
		if v := toFloat(value["value"]); v != nil {
			min, max = v, v
		}
	}
	period = mapSalaryPeriod(value["unitText"])
	return min, max, period
}
