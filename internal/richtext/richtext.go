// Package richtext converts tree-structured rich-text documents, as returned
// by the careers API, into HTML strings for page rendering.
package richtext

import "strings"

// Node kinds understood by the renderer. Anything else degrades to its
// children so newer documents still render.
const (
	NodeRoot      = "root"
	NodeText      = "text"
	NodeParagraph = "paragraph"
	NodeHeading   = "heading"
	NodeList      = "list"
	NodeListItem  = "listitem"
	NodeLink      = "link"
)

// Document is a rich-text field as delivered on a job detail payload. Each
// field carries a single root node.
type Document struct {
	Root *Node `json:"root"`
}

// Node is one node of a rich-text tree. Type discriminates the variant:
// text nodes carry Text plus style flags, container nodes carry Children,
// headings carry Tag, lists carry ListType and links carry URL.
type Node struct {
	Type      string  `json:"type"`
	Text      string  `json:"text,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Tag       string  `json:"tag,omitempty"`
	ListType  string  `json:"listType,omitempty"`
	URL       string  `json:"url,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}

// Render converts a document into an HTML string with a depth-first,
// order-preserving walk. It returns "" for a nil document or nil root so
// callers can render unconditionally, and it never fails.
func Render(doc *Document) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	var b strings.Builder
	renderNode(&b, doc.Root)
	return b.String()
}

func renderNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	if n.Type == NodeText {
		text := n.Text
		if n.Bold {
			text = "<strong>" + text + "</strong>"
		}
		if n.Italic {
			text = "<em>" + text + "</em>"
		}
		if n.Underline {
			text = "<u>" + text + "</u>"
		}
		b.WriteString(text)
		return
	}

	switch n.Type {
	case NodeParagraph:
		b.WriteString("<p>")
		renderChildren(b, n)
		b.WriteString("</p>")
	case NodeHeading:
		tag := n.Tag
		if tag == "" {
			tag = "h2"
		}
		b.WriteString("<" + tag + ">")
		renderChildren(b, n)
		b.WriteString("</" + tag + ">")
	case NodeList:
		tag := "ul"
		if n.ListType == "number" {
			tag = "ol"
		}
		b.WriteString("<" + tag + ">")
		renderChildren(b, n)
		b.WriteString("</" + tag + ">")
	case NodeListItem:
		b.WriteString("<li>")
		renderChildren(b, n)
		b.WriteString("</li>")
	case NodeLink:
		b.WriteString(`<a href="` + n.URL + `" target="_blank" rel="noopener noreferrer">`)
		renderChildren(b, n)
		b.WriteString("</a>")
	default:
		// Root and unknown kinds contribute only their children.
		renderChildren(b, n)
	}
}

func renderChildren(b *strings.Builder, n *Node) {
	for _, child := range n.Children {
		renderNode(b, child)
	}
}
