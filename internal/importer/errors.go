package importer

import "fmt"

// InvalidSourceDomainError is returned by the fetch variant before any network
// call when the URL does not belong to the supported source site.
type InvalidSourceDomainError struct {
	URL string
}

func (e *InvalidSourceDomainError) Error() string {
	return fmt.Sprintf("not a Glassdoor URL: %s", e.URL)
}

// FetchError is returned when retrieving a page fails, either at transport
// level or with a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
