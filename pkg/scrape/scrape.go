package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Class names the extractor looks for inside each row.
const (
	titleClass  = "title"
	ratingClass = "rating"
	yearClass   = "year"
	genreClass  = "genre"
)

var yearDigitsRegex = regexp.MustCompile(`\d{4}`)

// Record is one extracted listing row. HasRating distinguishes a genuine
// 0.0 rating from an absent one.
type Record struct {
	Title     string
	Rating    float64
	HasRating bool
	Year      int
	Genre     string
}

// Rows collects every element beneath root that carries rowClass in its
// class attribute, in document order.
func Rows(root *html.Node, rowClass string) []*html.Node {
	var rows []*html.Node
	walk(root, func(n *html.Node) {
		if hasClass(n, rowClass) {
			rows = append(rows, n)
		}
	})
	return rows
}

// Extract builds one Record per row node. The returned slice is freshly
// allocated on every call. Extraction stops at the first row missing a
// required element; the error wraps the relevant sentinel and the row
// index.
func Extract(rows []*html.Node) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := extractRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w (row %d)", err, i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func extractRow(row *html.Node) (Record, error) {
	var rec Record

	title := findByClass(row, titleClass)
	if title == nil {
		return rec, ErrMissingTitle
	}
	rec.Title = strings.TrimSpace(text(title))

	if rating := findByClass(row, ratingClass); rating != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(text(rating)), 64); err == nil {
			rec.Rating = v
			rec.HasRating = true
		}
	}

	year := findByClass(row, yearClass)
	if year == nil {
		return rec, ErrMissingYear
	}
	digits := yearDigitsRegex.FindString(text(year))
	if digits == "" {
		return rec, ErrBadYear
	}
	rec.Year, _ = strconv.Atoi(digits)

	genre := findByClass(row, genreClass)
	if genre == nil {
		return rec, ErrMissingGenre
	}
	rec.Genre = strings.TrimSpace(text(genre))

	return rec, nil
}

// walk visits n and all its descendants in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findByClass returns the first descendant of n (excluding n itself)
// carrying the given class, or nil.
func findByClass(n *html.Node, class string) *html.Node {
	var found *html.Node
	var search func(*html.Node)
	search = func(cur *html.Node) {
		if found != nil {
			return
		}
		if cur != n && hasClass(cur, class) {
			found = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			search(c)
		}
	}
	search(n)
	return found
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// text concatenates every text node beneath n.
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
	})
	return sb.String()
}
