package analyze

import (
	"strings"

	"golang.org/x/net/html"
)

// Normalize prepares free text for pattern matching. Situation descriptions
// are often pasted from chat tools or status pages and carry markup; visible
// text is extracted and whitespace collapsed. Plain text passes through with
// whitespace normalization only.
func Normalize(text string) string {
	if strings.ContainsRune(text, '<') {
		if doc, err := html.Parse(strings.NewReader(text)); err == nil {
			text = visibleText(doc)
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// visibleText extracts text nodes, skipping script/style content.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
