package parser

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/eparse-go/pkg/eparse/grid"
	"github.com/ukaji3/eparse-go/pkg/eparse/models"
	"golang.org/x/net/html"
)

// ErrNoTables indicates an HTML document without any <table>.
var ErrNoTables = errors.New("no tables found")

// LoadHTML parses every <table> of an HTML document into a grid, in
// document order. Cells spanning several rows or columns repeat their value
// in each covered slot.
func LoadHTML(r io.Reader) ([]*grid.Matrix, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var tables []*html.Node
	findTables(doc, &tables)
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	result := make([]*grid.Matrix, 0, len(tables))
	for _, t := range tables {
		result = append(result, tableGrid(t))
	}
	return result, nil
}

// HTMLToRecords serializes the first table of an HTML document.
func HTMLToRecords(r io.Reader, meta models.Metadata) ([]models.SerializedCell, error) {
	grids, err := LoadHTML(r)
	if err != nil {
		return nil, err
	}
	return SerializeTable(grids[0], meta), nil
}

func findTables(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.Data == "table" {
		*out = append(*out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findTables(c, out)
	}
}

// tableRows returns the <tr> elements that belong to table t itself.
func tableRows(t *html.Node) []*html.Node {
	var rows []*html.Node
	for c := t.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					rows = append(rows, tr)
				}
			}
		case "tr":
			rows = append(rows, c)
		}
	}
	return rows
}

func tableGrid(t *html.Node) *grid.Matrix {
	var cells [][]grid.Cell
	place := func(r, c int, cell grid.Cell) {
		for len(cells) <= r {
			cells = append(cells, nil)
		}
		for len(cells[r]) <= c {
			cells[r] = append(cells[r], grid.EmptyCell)
		}
		cells[r][c] = cell
	}
	taken := make(map[[2]int]bool)

	for r, tr := range tableRows(t) {
		c := 0
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			for taken[[2]int{r, c}] {
				c++
			}

			cell := inferCell(textContent(td))
			rowSpan, colSpan := span(td, "rowspan"), span(td, "colspan")
			for i := 0; i < rowSpan; i++ {
				for j := 0; j < colSpan; j++ {
					taken[[2]int{r + i, c + j}] = true
					place(r+i, c+j, cell)
				}
			}
			c += colSpan
		}
		if len(cells) <= r {
			place(r, 0, grid.EmptyCell)
		}
	}

	return grid.NewMatrix(cells)
}

// Span limits browsers apply when laying out tables.
const (
	maxColSpan = 1000
	maxRowSpan = 65534
)

// span returns a cell's rowspan or colspan, clamped to the browser limits.
func span(n *html.Node, key string) int {
	limit := maxColSpan
	if key == "rowspan" {
		limit = maxRowSpan
	}

	for _, attr := range n.Attr {
		if attr.Key == key {
			if v, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && v > 0 {
				return min(v, limit)
			}
		}
	}
	return 1
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
