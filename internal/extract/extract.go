package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// skipElements lists structural nodes whose text is never document content.
// Traversal is allow-list shaped: everything outside this set is walked.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"iframe":   true,
	"template": true,
}

// Fragments extracts the visible text of an HTML document as an ordered list
// of trimmed fragments. Text nodes spanning multiple lines contribute one
// fragment per non-empty line, preserving document order. Fragments are
// NFC-normalized so a combining sequence counts as a single code point
// downstream. Malformed HTML never errors; the worst case is zero fragments.
func Fragments(input []byte) []string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return nil
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElements[strings.ToLower(n.Data)] {
			return
		}
		if n.Type == html.TextNode {
			for _, line := range strings.Split(n.Data, "\n") {
				if s := strings.TrimSpace(line); s != "" {
					out = append(out, norm.NFC.String(s))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return out
}
