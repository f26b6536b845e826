package importer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mdFromHTML(t *testing.T, body string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div id="root">` + body + `</div>`))
	require.NoError(t, err)
	return markdownFromSelection(doc.Find("#root"))
}

func TestMarkdown_HeadingsClampedToThreeLevels(t *testing.T) {
	md := mdFromHTML(t, `<h1>One</h1><h2>Two</h2><h3>Three</h3><h4>Four</h4><h6>Six</h6>`)

	assert.Contains(t, md, "# One")
	assert.Contains(t, md, "## Two")
	assert.Contains(t, md, "### Three")
	assert.Contains(t, md, "### Four")
	assert.Contains(t, md, "### Six")
	assert.NotContains(t, md, "####")
}

func TestMarkdown_ParagraphsAndInlineMarkup(t *testing.T) {
	md := mdFromHTML(t, `<p>This is <strong>bold</strong> and <em>italic</em> text.</p>`)

	assert.Equal(t, "This is **bold** and *italic* text.", md)
}

func TestMarkdown_Links(t *testing.T) {
	md := mdFromHTML(t, `<p>See <a href="https://example.org/jobs">our jobs</a>.</p>`)
	assert.Contains(t, md, "[our jobs](https://example.org/jobs)")
}

func TestMarkdown_LinkWithoutTextUsesHref(t *testing.T) {
	md := mdFromHTML(t, `<p><a href="https://example.org"></a></p>`)
	assert.Contains(t, md, "[https://example.org](https://example.org)")
}

func TestMarkdown_UnorderedAndOrderedLists(t *testing.T) {
	md := mdFromHTML(t, `<ul><li>Alpha</li><li>Beta</li></ul><ol><li>First</li><li>Second</li></ol>`)

	assert.Contains(t, md, "- Alpha")
	assert.Contains(t, md, "- Beta")
	assert.Contains(t, md, "1. First")
	assert.Contains(t, md, "1. Second")
}

func TestMarkdown_NestedListsIndented(t *testing.T) {
	md := mdFromHTML(t, `<ul><li>Outer<ul><li>Inner</li></ul></li></ul>`)

	assert.Contains(t, md, "- Outer")
	assert.Contains(t, md, "  - Inner")
	// nested item text must not leak into the parent item
	assert.NotContains(t, md, "OuterInner")
	assert.NotContains(t, md, "Outer Inner")
}

func TestMarkdown_ScriptAndStyleSkipped(t *testing.T) {
	md := mdFromHTML(t, `<p>Visible</p><script>var hidden = 1;</script><style>.x{color:red}</style><noscript>enable js</noscript>`)

	assert.Contains(t, md, "Visible")
	assert.NotContains(t, md, "hidden")
	assert.NotContains(t, md, "color:red")
	assert.NotContains(t, md, "enable js")
}

func TestMarkdown_UnknownInlineWrappersUnwrapped(t *testing.T) {
	md := mdFromHTML(t, `<p><span>Hello</span> <u>there</u></p>`)
	assert.Equal(t, "Hello there", md)
}

func TestMarkdown_LineBreaksWithinParagraph(t *testing.T) {
	md := mdFromHTML(t, `<p>line one<br/>line two</p>`)
	assert.Equal(t, "line one\nline two", md)
}

func TestMarkdown_WhitespaceCollapsed(t *testing.T) {
	md := mdFromHTML(t, "<p>lots   of\n\t  space</p>")
	assert.Equal(t, "lots of space", md)
}

func TestMarkdown_GenericContainersRecurse(t *testing.T) {
	md := mdFromHTML(t, `<section>intro text<div><p>nested paragraph</p></div></section>`)

	assert.Contains(t, md, "intro text")
	assert.Contains(t, md, "nested paragraph")
	assert.Equal(t, 1, strings.Count(md, "nested paragraph"))
}

func TestMarkdown_DedupeIsCaseAndWhitespaceInsensitive(t *testing.T) {
	md := mdFromHTML(t, `<p>Same   Block</p><p>same block</p><p>Other</p>`)

	blocks := strings.Split(md, "\n\n")
	assert.Len(t, blocks, 2)
	assert.Equal(t, "Same Block", blocks[0])
	assert.Equal(t, "Other", blocks[1])
}

func TestMarkdown_NoTripleBlankLines(t *testing.T) {
	md := mdFromHTML(t, `<p>a</p><br/><br/><br/><br/><p>b</p>`)
	assert.NotContains(t, md, "\n\n\n")
}

func TestMarkdown_EmptyRootYieldsEmptyString(t *testing.T) {
	assert.Equal(t, "", mdFromHTML(t, ``))
	assert.Equal(t, "", mdFromHTML(t, `<script>only()</script>`))
}

func TestMarkdown_IdempotentOnDuplicatedDescription(t *testing.T) {
	body := `<p>Para one.</p><p>Para two.</p>`
	once := mdFromHTML(t, body)
	twice := mdFromHTML(t, body+body)

	assert.Equal(t, once, twice)
}
