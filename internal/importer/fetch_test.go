package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAndParseCompanyProfile_RejectsForeignDomain(t *testing.T) {
	_, err := FetchAndParseCompanyProfile(context.Background(), "https://evil.example/page")

	require.Error(t, err)
	var domainErr *InvalidSourceDomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "https://evil.example/page", domainErr.URL)
}

func TestFetchAndParseCompanyProfile_RejectsNonHTTPScheme(t *testing.T) {
	var domainErr *InvalidSourceDomainError

	_, err := FetchAndParseCompanyProfile(context.Background(), "ftp://www.glassdoor.de/Overview")
	require.ErrorAs(t, err, &domainErr)
}

func TestFetchAndParseCompanyProfile_AcceptsNationalDomains(t *testing.T) {
	for _, u := range []string{
		"https://www.glassdoor.de/Overview/acme",
		"https://glassdoor.com/Overview/acme",
		"http://www.glassdoor.co.uk/Overview/acme",
	} {
		assert.True(t, sourceURLRe.MatchString(u), "url %s", u)
	}
	assert.False(t, sourceURLRe.MatchString("https://www.glassdoor.de/"))
}
