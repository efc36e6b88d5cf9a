package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Serialization escapes only what HTML syntax requires. Quote marks in text
// and attribute values are written as they were parsed.

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Children of these elements are written verbatim.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")
	dqEscaper   = strings.NewReplacer("&", "&amp;", `"`, "&#34;")
	sqEscaper   = strings.NewReplacer("&", "&amp;")
)

// innerHTML serializes the children of n.
func innerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&b, c)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c)
		}
	case html.TextNode:
		if n.Parent != nil && n.Parent.Type == html.ElementNode && rawTextElements[n.Parent.Data] {
			b.WriteString(n.Data)
			return
		}
		textEscaper.WriteString(b, n.Data)
	case html.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case html.DoctypeNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Data)
		b.WriteString(">")
	case html.ElementNode:
		renderElement(b, n)
	}
}

func renderElement(b *strings.Builder, n *html.Node) {
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(a.Key)
		writeAttrValue(b, a.Val)
	}

	if voidElements[n.Data] {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	// The parser drops a newline directly after these start tags.
	if c := n.FirstChild; c != nil && c.Type == html.TextNode && strings.HasPrefix(c.Data, "\n") {
		switch n.Data {
		case "pre", "listing", "textarea":
			b.WriteByte('\n')
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(n.Data)
	b.WriteByte('>')
}

// writeAttrValue quotes with double quotes unless the value holds double
// quotes and no single quotes.
func writeAttrValue(b *strings.Builder, v string) {
	if strings.Contains(v, `"`) && !strings.Contains(v, "'") {
		b.WriteString(`='`)
		sqEscaper.WriteString(b, v)
		b.WriteByte('\'')
		return
	}
	b.WriteString(`="`)
	dqEscaper.WriteString(b, v)
	b.WriteByte('"')
}
