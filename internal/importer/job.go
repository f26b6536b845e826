package importer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// JobImport is the result of parsing a job posting page. Every field is
// independently optional; absence is nil or the empty string, never an error.
type JobImport struct {
	Title          *string  `json:"title"`
	CompanyName    *string  `json:"company_name"`
	City           *string  `json:"city"`
	Description    *string  `json:"description"`
	DescriptionMD  string   `json:"description_md,omitempty"`
	SourceURL      *string  `json:"source_url"`
	EmploymentType string   `json:"employment_type,omitempty"`
	ContractType   string   `json:"contract_type,omitempty"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	SalaryPeriod   *string  `json:"salary_period"`
	SalaryCurrency *string  `json:"salary_currency"`
	Seniority      *string  `json:"seniority"`
	DatePosted     *string  `json:"date_posted"`
	ValidThrough   *string  `json:"valid_through"`
}

// ParseJobPosting extracts a job record from raw posting HTML. Fields present
// in an embedded JSON-LD JobPosting block take precedence; DOM heuristics fill
// whatever the structured data leaves open. Never fails for string input.
func ParseJobPosting(rawHTML string) *JobImport {
	out := &JobImport{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return out
	}

	ld := firstJobPostingLD(doc)
	if ld != nil {
		out.Title = normVal(ld["title"])
		out.SourceURL = normVal(ld["url"])
		if out.SourceURL == nil {
			out.SourceURL = normVal(ld["og:url"])
		}
		if cur := toStr(ld["salaryCurrency"]); cur != nil {
			out.SalaryCurrency = cur
		}

		out.City = ldLocality(ld)
		if out.City == nil {
			out.City = textOf(doc, `[data-test="location"]`)
		}

		out.DatePosted = truncateDate(ld["datePosted"])
		out.ValidThrough = truncateDate(ld["validThrough"])

		out.EmploymentType = MapEmploymentType(ld["employmentType"])
		out.ContractType = MapContractType(ld["employmentType"])
		out.CompanyName = normVal(ldGet(ld, "hiringOrganization", "name"))

		out.SalaryMin, out.SalaryMax, out.SalaryPeriod = ldSalary(ld)
	}

	if root := selectDescriptionRoot(doc); root != nil {
		if md := markdownFromSelection(root); md != "" {
			out.DescriptionMD = md
			out.Description = strPtr(md)
		}
	}

	// No DOM root found: fall back to the JSON-LD description, which is an
	// HTML fragment, wrapped in a synthetic container.
	if out.DescriptionMD == "" && ld != nil {
		if frag := toStr(ld["description"]); frag != nil {
			if md := markdownFromFragment(*frag); md != "" {
				out.DescriptionMD = md
				out.Description = strPtr(md)
			}
		}
	}

	if out.Title == nil {
		out.Title = findFirstH1(doc)
	}
	if out.City == nil {
		out.City = textOf(doc, `[data-test="location"]`)
	}
	if out.SourceURL == nil {
		if canon, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
			out.SourceURL = strOrNil(canon)
		}
	}

	if out.Title != nil {
		out.Seniority = MapSeniority(*out.Title)
	}

	return out
}

// markdownFromFragment converts an HTML fragment (typically the JSON-LD
// description value) to markdown.
func markdownFromFragment(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + fragment + "</div>"))
	if err != nil {
		return ""
	}
	return markdownFromSelection(doc.Find("div").First())
}
