package importer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Overview facts on company pages render as bare <li> items without stable
// markers, so classification runs regex chains over all list items. First
// match per category wins; later conflicting items are ignored.
var (
	cityRe      = regexp.MustCompile(`(?i)deutschland|straße|gasse|stadt|münchen|berlin|hamburg`)
	sizeRe      = regexp.MustCompile(`(?i)mitarbeiter|employees`)
	mehrAlsRe   = regexp.MustCompile(`(?i)^mehr als\s*`)
	locationsRe = regexp.MustCompile(`(?i)standorte`)
	typeRe      = regexp.MustCompile(`(?i)^art:\s*`)
	foundedRe   = regexp.MustCompile(`(?i)gegründet`)
	foundedPre  = regexp.MustCompile(`(?i)^gegründet\s*`)
	revenueRe   = regexp.MustCompile(`(?i)umsatz`)
	revenuePre  = regexp.MustCompile(`(?i)^umsatz:\s*`)
	industryRe  = regexp.MustCompile(`(?i)unternehmenssoftware|netzwerk|industrie|branche`)
	selfHostRe  = regexp.MustCompile(`(?i)glassdoor\.`)
)

// textOf returns the normalized text of the first element matching selector.
func textOf(doc *goquery.Document, selector string) *string {
	return strOrNil(normWS(doc.Find(selector).First().Text()))
}

// firstLinkHref returns the trimmed href of the first element matching selector.
func firstLinkHref(doc *goquery.Document, selector string) *string {
	href, _ := doc.Find(selector).First().Attr("href")
	return strOrNil(href)
}

// findFirstH1 returns the page's first h1 text.
func findFirstH1(doc *goquery.Document) *string {
	return strOrNil(normWS(doc.Find("h1").First().Text()))
}

// findWebsite prefers the employer-website marker, then falls back to the
// first external link that does not point back at the source site.
func findWebsite(doc *goquery.Document) *string {
	if href := firstLinkHref(doc, `a[data-test="employer-website"]`); href != nil {
		return href
	}
	var found *string
	doc.Find(`a[href^="http"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if ok && href != "" && !selfHostRe.MatchString(href) {
			found = strOrNil(href)
			return false
		}
		return true
	})
	return found
}

// overviewListItems collects the normalized text of every list item on the page.
func overviewListItems(doc *goquery.Document) []string {
	var items []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		if t := normWS(s.Text()); t != "" {
			items = append(items, t)
		}
	})
	return items
}

// overviewDetails holds facts classified out of the flat list-item scan.
type overviewDetails struct {
	City           *string
	Size           *string
	Founded        *string
	Revenue        *string
	CompanyType    *string
	LocationsCount *string
	Industry       *string
}

// extractFromDetails classifies list items by label keywords. Within a
// category the earliest item wins; categories are independent of each other.
func extractFromDetails(items []string) overviewDetails {
	var out overviewDetails
	for _, item := range items {
		if out.City == nil && cityRe.MatchString(item) {
			out.City = strPtr(item)
		}
		if out.Size == nil && sizeRe.MatchString(item) {
			out.Size = strPtr(strings.TrimLeft(mehrAlsRe.ReplaceAllString(item, "Mehr als "), " "))
		}
		if out.LocationsCount == nil && locationsRe.MatchString(item) {
			out.LocationsCount = strPtr(item)
		}
		if out.CompanyType == nil && typeRe.MatchString(item) {
			out.CompanyType = strOrNil(typeRe.ReplaceAllString(item, ""))
		}
		if out.Founded == nil && foundedRe.MatchString(item) {
			out.Founded = strOrNil(foundedPre.ReplaceAllString(item, ""))
		}
		if out.Revenue == nil && revenueRe.MatchString(item) {
			out.Revenue = strOrNil(revenuePre.ReplaceAllString(item, ""))
		}
		if out.Industry == nil && industryRe.MatchString(item) {
			out.Industry = strPtr(item)
		}
	}
	return out
}

// findCompanyDescription prefers the employerDescription marker, then the
// first sufficiently long text block near the overview.
func findCompanyDescription(doc *goquery.Document) *string {
	if t := textOf(doc, `[data-test="employerDescription"]`); t != nil {
		return t
	}
	var found *string
	doc.Find(`[class*="Description"], [class*="textBlock"], p`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := normWS(s.Text())
		if len(t) > 120 {
			found = strPtr(t)
			return false
		}
		return true
	})
	return found
}

// ratingFacts holds the review indicators scraped from a company page. Each
// field is extracted independently and tolerates absent markup.
type ratingFacts struct {
	Rating       *string
	RecommendPct *string
	ReviewCount  *string
	CEOName      *string
	CEOApproval  *string
}

// extractRatings pulls aggregate rating, recommendation percentage, review
// count and CEO facts from their data-test markers.
func extractRatings(doc *goquery.Document) ratingFacts {
	rating := textOf(doc, `[data-test="employerReviewsHeader"] ~ div [data-test="rating-headline"] p`)
	if rating == nil {
		rating = textOf(doc, `[data-test="employerOverviewModule"] header + span`)
	}
	if rating != nil {
		rating = strOrNil(strings.ReplaceAll(*rating, "★", ""))
	}

	ceoName := textOf(doc, `[data-test="ceo-overview"] .review-overview_ceoName__8AcsH`)
	if ceoName == nil {
		ceoName = textOf(doc, `[data-test="ceo-overview"] p`)
	}

	ceoApproval := textOf(doc, `[data-test="ceo-overview"] .review-overview_ceoApproval__oy27U`)
	if ceoApproval == nil {
		sel := doc.Find(`[data-test="ceo-overview"] p`).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.Contains(s.Text(), "%")
		}).First()
		ceoApproval = strOrNil(normWS(sel.Text()))
	}

	return ratingFacts{
		Rating:       rating,
		RecommendPct: textOf(doc, `[data-test="recommendToFriend"]`),
		ReviewCount:  textOf(doc, `[data-test="review-count"]`),
		CEOName:      ceoName,
		CEOApproval:  ceoApproval,
	}
}

// selectDescriptionRoot picks the canonical container for a job posting's
// narrative description: the current site class, then older description
// markers, then the description module container.
func selectDescriptionRoot(doc *goquery.Document) *goquery.Selection {
	root := doc.Find(".JobDetails_jobDescription__uW_fK").First()
	if root.Length() == 0 {
		root = doc.Find(`.jobDescription, [data-test="job-description"]`).First()
	}
	if root.Length() == 0 {
		root = doc.Find(`[data-brandviews="MODULE:n=jobview-description"]`).First()
	}
	if root.Length() == 0 {
		return nil
	}
	return root
}
