package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyPage = `
<html><head>
  <link rel="canonical" href="https://www.glassdoor.de/Overview/acme.htm" />
  <meta property="og:title" content="ACME GmbH | Glassdoor" />
</head><body>
  <h1>ACME GmbH</h1>
  <a data-test="employer-website" href="https://www.acme.example">Website</a>
  <ul>
    <li>München, Deutschland</li>
    <li>Mehr als 10.000 Mitarbeiter</li>
    <li>Gegründet 1987</li>
    <li>Umsatz: Mehr als 10 Milliarden</li>
    <li>Art: Börsennotiertes Unternehmen</li>
    <li>12 Standorte</li>
    <li>Unternehmenssoftware und Netzwerklösungen</li>
  </ul>
  <div data-test="employerDescription">ACME baut verteilte Systeme für die Industrie.</div>
  <div data-test="recommendToFriend">85 % würden uns einem Freund empfehlen</div>
  <div data-test="review-count">(166 Bewertungen)</div>
  <div data-test="ceo-overview"><p>Jane Doe</p><p>92 %</p></div>
</body></html>
`

func TestParseCompanyProfile_ExtractsCoreFields(t *testing.T) {
	p := ParseCompanyProfile(companyPage, "https://www.glassdoor.de/Overview/acme.htm")

	assert.Equal(t, "ACME GmbH", p.Name)

	require.NotNil(t, p.Website)
	assert.Equal(t, "https://www.acme.example", *p.Website)
	require.NotNil(t, p.HiringPage)
	assert.Equal(t, *p.Website, *p.HiringPage)

	require.NotNil(t, p.City)
	assert.Contains(t, *p.City, "München")

	require.NotNil(t, p.SizeRange)
	assert.Equal(t, "Mehr als 10.000 Mitarbeiter", *p.SizeRange)

	require.NotNil(t, p.Industry)
	assert.Contains(t, *p.Industry, "Unternehmenssoftware")
}

func TestParseCompanyProfile_MetaFacts(t *testing.T) {
	p := ParseCompanyProfile(companyPage, "https://www.glassdoor.de/Overview/acme.htm")

	require.NotNil(t, p.Meta.Founded)
	assert.Equal(t, "1987", *p.Meta.Founded)
	require.NotNil(t, p.Meta.Revenue)
	assert.Equal(t, "Mehr als 10 Milliarden", *p.Meta.Revenue)
	require.NotNil(t, p.Meta.CompanyType)
	assert.Equal(t, "Börsennotiertes Unternehmen", *p.Meta.CompanyType)
	require.NotNil(t, p.Meta.LocationsCount)
	assert.Equal(t, "12 Standorte", *p.Meta.LocationsCount)
	require.NotNil(t, p.Meta.RecommendPct)
	assert.Contains(t, *p.Meta.RecommendPct, "85 %")
	require.NotNil(t, p.Meta.ReviewCount)
	assert.Contains(t, *p.Meta.ReviewCount, "166")
	require.NotNil(t, p.Meta.CEOName)
	assert.Equal(t, "Jane Doe", *p.Meta.CEOName)
	require.NotNil(t, p.Meta.CEOApproval)
	assert.Contains(t, *p.Meta.CEOApproval, "92")
	require.NotNil(t, p.Meta.Canonical)
	assert.Equal(t, "https://www.glassdoor.de/Overview/acme.htm", *p.Meta.Canonical)
	require.NotNil(t, p.Meta.SourceURL)
}

func TestParseCompanyProfile_NoteDigestOrder(t *testing.T) {
	p := ParseCompanyProfile(companyPage, "")

	require.NotNil(t, p.Note)
	note := *p.Note

	assert.Contains(t, note, "**Kurzbeschreibung (Glassdoor):**")
	assert.Contains(t, note, "- Unternehmenstyp: Börsennotiertes Unternehmen")
	assert.Contains(t, note, "- Gegründet: 1987")
	assert.Contains(t, note, "- Standorte: 12 Standorte")
	assert.Contains(t, note, "- Empfehlung: 85 %")
	assert.Contains(t, note, "- CEO: Jane Doe")

	// fixed order: description first, canonical last
	assert.Less(t, strings.Index(note, "Kurzbeschreibung"), strings.Index(note, "Unternehmenstyp"))
	assert.Less(t, strings.Index(note, "Unternehmenstyp"), strings.Index(note, "Gegründet"))
	assert.Less(t, strings.Index(note, "CEO-Zustimmung"), strings.Index(note, "Canonical"))
}

func TestParseCompanyProfile_NameFromOGTitleWhenNoH1(t *testing.T) {
	html := `<html><head><meta property="og:title" content="Fallback AG" /></head><body></body></html>`
	p := ParseCompanyProfile(html, "")

	assert.Equal(t, "Fallback AG", p.Name)
}

func TestParseCompanyProfile_WebsiteFallbackSkipsSelfLinks(t *testing.T) {
	html := `<html><body>
      <a href="https://www.glassdoor.de/something">internal</a>
      <a href="https://jobs.example.org/careers">external</a>
    </body></html>`
	p := ParseCompanyProfile(html, "")

	require.NotNil(t, p.Website)
	assert.Equal(t, "https://jobs.example.org/careers", *p.Website)
}

func TestParseCompanyProfile_SizePrefixNormalized(t *testing.T) {
	html := `<html><body><ul><li>mehr als 500 Mitarbeiter</li></ul></body></html>`
	p := ParseCompanyProfile(html, "")

	require.NotNil(t, p.SizeRange)
	assert.Equal(t, "Mehr als 500 Mitarbeiter", *p.SizeRange)
}

func TestParseCompanyProfile_FirstMatchWinsPerCategory(t *testing.T) {
	html := `<html><body><ul>
      <li>100 Mitarbeiter</li>
      <li>200 Mitarbeiter</li>
    </ul></body></html>`
	p := ParseCompanyProfile(html, "")

	require.NotNil(t, p.SizeRange)
	assert.Equal(t, "100 Mitarbeiter", *p.SizeRange)
}

func TestParseCompanyProfile_RatingStarsStripped(t *testing.T) {
	html := `<html><body>
      <div data-test="employerOverviewModule"><header>x</header><span>4,1 ★</span></div>
    </body></html>`
	p := ParseCompanyProfile(html, "")

	require.NotNil(t, p.Meta.Rating)
	assert.Equal(t, "4,1", *p.Meta.Rating)
}

func TestParseCompanyProfile_NeverFailsOnAnyInput(t *testing.T) {
	inputs := []string{
		"",
		"plain text, no markup",
		"<html><head><title>x</title>",
		strings.Repeat("<ul><li>", 200),
		"\x00\x01 binary-ish",
	}
	for _, input := range inputs {
		p := ParseCompanyProfile(input, "https://www.glassdoor.de/x")
		require.NotNil(t, p)
		assert.Equal(t, "", p.Name)
		assert.Nil(t, p.Note)
	}
}
