package output

import (
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TableToHTML renders t as a <table>. With header the first row is emitted
// in <thead> as <th> cells. Empty cells render as empty elements.
func TableToHTML(t grid.Grid, header bool) (string, error) {
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "border", Val: "1"}, {Key: "class", Val: "dataframe"}}

	start := 0
	if header && t.Rows() > 0 {
		thead := element(atom.Thead)
		thead.AppendChild(row(t, 0, atom.Th))
		table.AppendChild(thead)
		start = 1
	}

	tbody := element(atom.Tbody)
	for r := start; r < t.Rows(); r++ {
		tbody.AppendChild(row(t, r, atom.Td))
	}
	table.AppendChild(tbody)

	var b strings.Builder
	if err := html.Render(&b, table); err != nil {
		return "", err
	}
	return b.String(), nil
}

// HTMLText returns the text content of an HTML fragment, one line per
// table row with cells separated by spaces.
func HTMLText(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	var lines []string
	var cur []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				cur = append(cur, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr && len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}
	walk(doc)
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}

	return strings.Join(lines, "\n"), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func row(t grid.Grid, r int, cell atom.Atom) *html.Node {
	tr := element(atom.Tr)
	for c := 0; c < t.Cols(); c++ {
		td := element(cell)
		if s := t.At(r, c).String(); s != "" {
			td.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		}
		tr.AppendChild(td)
	}
	return tr
}
