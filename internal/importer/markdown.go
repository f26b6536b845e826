package importer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	spaceRuns      = regexp.MustCompile(`[ \t]{2,}`)
	trailingWS     = regexp.MustCompile(`[ \t]+\n`)
	leadingWS      = regexp.MustCompile(`\n[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
	blockSeparator = regexp.MustCompile(`\n{2,}`)
)

// markdownFromSelection converts the subtree under sel into a markdown
// document. The walk handles headings (clamped to three levels), paragraphs,
// nested lists, bold/italic/link inlines and generic containers; everything
// else is transparently unwrapped. Repeated blocks are deduplicated since job
// pages often render the same description twice.
func markdownFromSelection(sel *goquery.Selection) string {
	var blocks []string
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, blockMarkdown(c, 0)...)
		}
	}
	md := dedupeBlocks(strings.Join(blocks, "\n\n"))
	return collapseBlankLines(md)
}

// blockMarkdown renders one node as a list of markdown blocks. Pure function
// of the subtree; callers join the fragments.
func blockMarkdown(n *html.Node, listDepth int) []string {
	if n.Type != html.ElementNode {
		return nil
	}
	tag := strings.ToLower(n.Data)
	switch {
	case tag == "script" || tag == "style" || tag == "noscript":
		return nil
	case len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6':
		level := int(tag[1] - '0')
		if level > 3 {
			level = 3
		}
		if t := normWS(nodeText(n)); t != "" {
			return []string{strings.Repeat("#", level) + " " + t}
		}
		return nil
	case tag == "p":
		if t := inlineMarkdown(n); t != "" {
			return []string{t}
		}
		return nil
	case tag == "br":
		return []string{""}
	case tag == "ul" || tag == "ol":
		if lines := listLines(n, listDepth, tag == "ol"); len(lines) > 0 {
			return []string{strings.Join(lines, "\n")}
		}
		return nil
	case tag == "div" || tag == "section" || tag == "article":
		var blocks []string
		if t := directInlineMarkdown(n); t != "" {
			blocks = append(blocks, t)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, blockMarkdown(c, listDepth)...)
		}
		return blocks
	default:
		var blocks []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, blockMarkdown(c, listDepth)...)
		}
		return blocks
	}
}

// listLines renders a ul/ol element as consecutive lines, tracking nesting
// with two-space indents. Nested lists inside an item follow the item's own
// line.
func listLines(n *html.Node, listDepth int, ordered bool) []string {
	prefix := "-"
	if ordered {
		prefix = "1."
	}
	var lines []string
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || strings.ToLower(li.Data) != "li" {
			continue
		}
		itemText := inlineMarkdown(li)
		if itemText == "" {
			continue
		}
		lines = append(lines, strings.Repeat("  ", listDepth)+prefix+" "+itemText)
		for sub := li.FirstChild; sub != nil; sub = sub.NextSibling {
			if sub.Type != html.ElementNode {
				continue
			}
			subTag := strings.ToLower(sub.Data)
			if subTag == "ul" || subTag == "ol" {
				lines = append(lines, listLines(sub, listDepth+1, subTag == "ol")...)
			}
		}
	}
	return lines
}

// inlineMarkdown renders the direct inline content of a node: text, line
// breaks, bold, italic and links. Nested block elements are separated by
// newlines; unknown wrappers contribute their children only.
func inlineMarkdown(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendInline(&sb, c)
	}
	return cleanInline(sb.String())
}

// directInlineMarkdown renders only the direct inline content of a container,
// leaving nested block elements to the block walk. This is what lets generic
// containers flush loose text without double-rendering their paragraphs.
func directInlineMarkdown(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlockTag(strings.ToLower(c.Data)) {
			continue
		}
		appendInline(&sb, c)
	}
	return cleanInline(sb.String())
}

// appendInline renders a single child node into sb.
func appendInline(sb *strings.Builder, c *html.Node) {
	switch c.Type {
	case html.TextNode:
		// Runs of whitespace collapse to one space; boundary spaces stay so
		// words around inline markup do not glue together.
		sb.WriteString(wsRun.ReplaceAllString(c.Data, " "))
	case html.ElementNode:
		tag := strings.ToLower(c.Data)
		switch {
		case tag == "script" || tag == "style" || tag == "noscript":
			// skipped entirely
		case tag == "ul" || tag == "ol":
			// lists are block-level; rendered by listMarkdown
		case tag == "br":
			sb.WriteString("\n")
		case tag == "strong" || tag == "b":
			if t := inlineMarkdown(c); t != "" {
				sb.WriteString("**" + t + "**")
			}
		case tag == "em" || tag == "i":
			if t := inlineMarkdown(c); t != "" {
				sb.WriteString("*" + t + "*")
			}
		case tag == "a":
			text := inlineMarkdown(c)
			href := strings.TrimSpace(attrVal(c, "href"))
			if text == "" {
				text = normWS(href)
			}
			if text != "" && href != "" {
				sb.WriteString("[" + text + "](" + href + ")")
			} else if text != "" {
				sb.WriteString(text)
			}
		case tag == "p" || (len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'):
			if t := inlineMarkdown(c); t != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(t)
			}
		default:
			sb.WriteString(inlineMarkdown(c))
		}
	}
}

func cleanInline(s string) string {
	out := spaceRuns.ReplaceAllString(s, " ")
	out = trailingWS.ReplaceAllString(out, "\n")
	out = leadingWS.ReplaceAllString(out, "\n")
	out = blankLineRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "ul", "ol", "table", "header", "footer", "aside", "nav":
		return true
	}
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return true
	}
	return false
}

// nodeText concatenates all text content under n, skipping scripts and styles.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node.Type == html.ElementNode {
			tag := strings.ToLower(node.Data)
			if tag == "script" || tag == "style" || tag == "noscript" {
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// collapseBlankLines reduces runs of three or more newlines to a single blank
// line.
func collapseBlankLines(s string) string {
	return strings.TrimSpace(blankLineRuns.ReplaceAllString(s, "\n\n"))
}

// dedupeBlocks removes repeated paragraph-level blocks, keeping first
// occurrence order. Comparison is case-insensitive with collapsed whitespace.
func dedupeBlocks(md string) string {
	blocks := blockSeparator.Split(md, -1)
	seen := make(map[string]bool, len(blocks))
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		key := strings.ToLower(normWS(b))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return strings.Join(out, "\n\n")
}
