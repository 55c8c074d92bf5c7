package contentdump

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// PlainText extracts the visible text of rendered HTML for indexing,
// collapsing runs of whitespace to single spaces. Script and style contents
// are skipped. Unparseable input degrades to an empty string rather than
// failing the dump.
func PlainText(rendered []byte) string {
	doc, err := html.Parse(bytes.NewReader(rendered))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
