package importer

import (
	"context"
	"errors"
	"regexp"

	"github.com/jonathan/jobtracker/internal/fetch"
)

// sourceURLRe matches company/job URLs on any Glassdoor national domain.
var sourceURLRe = regexp.MustCompile(`(?i)^https?://(www\.)?glassdoor\.[a-z.]+/.+`)

// FetchAndParseCompanyProfile retrieves a Glassdoor company page and parses
// it. The URL is validated before any network call; non-Glassdoor URLs are
// rejected with InvalidSourceDomainError. Transport failures and non-2xx
// responses surface as FetchError. No retries.
func FetchAndParseCompanyProfile(ctx context.Context, url string) (*CompanyProfile, error) {
	if !sourceURLRe.MatchString(url) {
		return nil, &InvalidSourceDomainError{URL: url}
	}

	opts := fetch.DefaultOptions()
	opts.Headers = fetch.BrowserHeaders()
	opts.Headers["Referer"] = "https://www.glassdoor.de/"

	result, err := fetch.URL(ctx, url, opts)
	if err != nil {
		fe := &FetchError{URL: url, Cause: err}
		var ferr *fetch.Error
		if errors.As(err, &ferr) && result != nil {
			fe.StatusCode = result.StatusCode
		}
		return nil, fe
	}

	return ParseCompanyProfile(result.HTML, url), nil
}
