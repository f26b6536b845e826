// Package importer converts semi-structured HTML captured from Glassdoor into
// normalized company and job records. Extraction is best-effort: structured
// metadata is preferred when present, a chain of heuristics fills the gaps,
// and every missing field degrades to nil instead of failing the call.
package importer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CompanyMeta carries secondary facts that are folded into the note digest but
// not persisted as first-class fields.
type CompanyMeta struct {
	Rating         *string `json:"rating"`
	RecommendPct   *string `json:"recommend_pct"`
	ReviewCount    *string `json:"review_count"`
	CEOName        *string `json:"ceo_name"`
	CEOApproval    *string `json:"ceo_approval"`
	Founded        *string `json:"founded"`
	Revenue        *string `json:"revenue"`
	CompanyType    *string `json:"company_type"`
	LocationsCount *string `json:"locations_count"`
	Canonical      *string `json:"canonical"`
	SourceURL      *string `json:"source_url"`
}

// CompanyProfile is the result of parsing a company page. Name is the only
// load-bearing field; it may still be empty and callers must validate it.
// Everything else is advisory.
type CompanyProfile struct {
	Name       string      `json:"name"`
	Website    *string     `json:"website"`
	City       *string     `json:"city"`
	SizeRange  *string     `json:"size_range"`
	Industry   *string     `json:"industry"`
	HiringPage *string     `json:"hiring_page"`
	Note       *string     `json:"note"`
	Meta       CompanyMeta `json:"meta"`
}

// ParseCompanyProfile extracts a company record from raw HTML. It never fails:
// any string input, including empty or non-HTML text, yields a profile whose
// absent fields are nil.
func ParseCompanyProfile(rawHTML, sourceURL string) *CompanyProfile {
	profile := &CompanyProfile{
		Meta: CompanyMeta{SourceURL: strOrNil(sourceURL)},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return profile
	}

	name := findFirstH1(doc)
	if name == nil {
		if content, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
			name = strOrNil(content)
		}
	}
	if name != nil {
		profile.Name = *name
	}

	var canonical *string
	if href, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		canonical = strOrNil(href)
	}

	website := findWebsite(doc)
	details := extractFromDetails(overviewListItems(doc))
	desc := findCompanyDescription(doc)
	ratings := extractRatings(doc)

	profile.Website = website
	profile.City = details.City
	profile.SizeRange = details.Size
	profile.Industry = details.Industry
	profile.HiringPage = website
	profile.Note = buildNote(desc, details, ratings, canonical)

	profile.Meta.Rating = ratings.Rating
	profile.Meta.RecommendPct = ratings.RecommendPct
	profile.Meta.ReviewCount = ratings.ReviewCount
	profile.Meta.CEOName = ratings.CEOName
	profile.Meta.CEOApproval = ratings.CEOApproval
	profile.Meta.Founded = details.Founded
	profile.Meta.Revenue = details.Revenue
	profile.Meta.CompanyType = details.CompanyType
	profile.Meta.LocationsCount = details.LocationsCount
	profile.Meta.Canonical = canonical

	return profile
}

// buildNote assembles the markdown digest of secondary facts. The order is
// fixed; absent facts are skipped.
func buildNote(desc *string, details overviewDetails, ratings ratingFacts, canonical *string) *string {
	var lines []string
	add := func(label string, v *string) {
		if v != nil {
			lines = append(lines, "- "+label+": "+*v)
		}
	}

	if desc != nil {
		lines = append(lines, "**Kurzbeschreibung (Glassdoor):**\n\n"+*desc)
	}
	add("Unternehmenstyp", details.CompanyType)
	add("Gegründet", details.Founded)
	add("Umsatz", details.Revenue)
	add("Standorte", details.LocationsCount)
	add("Bewertung", ratings.Rating)
	add("Empfehlung", ratings.RecommendPct)
	add("Bewertungen", ratings.ReviewCount)
	add("CEO", ratings.CEOName)
	add("CEO-Zustimmung", ratings.CEOApproval)
	add("Canonical", canonical)

	if len(lines) == 0 {
		return nil
	}
	return strPtr(strings.Join(lines, "\n"))
}
