package scrape_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/datakit-go/datakit/pkg/scrape"
)

const listingPage = `
<html><body>
<div class="item-row">
    <a class="title"> The Picture </a>
    <span class="rating">8.1</span>
    <span class="year">(2019)</span>
    <span class="genre">Drama</span>
</div>
<div class="item-row">
    <a class="title">Unrated Feature</a>
    <span class="year">(2021)</span>
    <span class="genre">Documentary</span>
</div>
<div class="footer">not a row</div>
</body></html>`

func parse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestRows(t *testing.T) {
	rows := scrape.Rows(parse(t, listingPage), "item-row")
	assert.Len(t, rows, 2)

	assert.Empty(t, scrape.Rows(parse(t, listingPage), "product-row"))
}

func TestExtract(t *testing.T) {
	doc := parse(t, listingPage)
	records, err := scrape.Extract(scrape.Rows(doc, "item-row"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "The Picture", records[0].Title)
	assert.True(t, records[0].HasRating)
	assert.InDelta(t, 8.1, records[0].Rating, 1e-9)
	assert.Equal(t, 2019, records[0].Year)
	assert.Equal(t, "Drama", records[0].Genre)

	assert.Equal(t, "Unrated Feature", records[1].Title)
	assert.False(t, records[1].HasRating, "rating is optional")
	assert.Zero(t, records[1].Rating)
	assert.Equal(t, 2021, records[1].Year)
}

func TestExtractFreshSliceEachCall(t *testing.T) {
	doc := parse(t, listingPage)
	rows := scrape.Rows(doc, "item-row")

	first, err := scrape.Extract(rows)
	require.NoError(t, err)
	second, err := scrape.Extract(rows)
	require.NoError(t, err)

	assert.Len(t, second, len(first), "repeated calls must not accumulate")
}

func TestExtractMissingMarkup(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected error
	}{
		{
			name:     "missing title",
			page:     `<div class="item-row"><span class="year">(2019)</span><span class="genre">Drama</span></div>`,
			expected: scrape.ErrMissingTitle,
		},
		{
			name:     "missing year",
			page:     `<div class="item-row"><a class="title">X</a><span class="genre">Drama</span></div>`,
			expected: scrape.ErrMissingYear,
		},
		{
			name:     "missing genre",
			page:     `<div class="item-row"><a class="title">X</a><span class="year">(2019)</span></div>`,
			expected: scrape.ErrMissingGenre,
		},
		{
			name:     "year without digits",
			page:     `<div class="item-row"><a class="title">X</a><span class="year">TBA</span><span class="genre">Drama</span></div>`,
			expected: scrape.ErrBadYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.page)
			_, err := scrape.Extract(scrape.Rows(doc, "item-row"))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
