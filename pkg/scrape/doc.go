// Package scrape extracts per-item records from parsed HTML listing pages.
//
// It operates on x/net/html parse trees supplied by the caller; fetching
// is out of scope. A listing page is expected to contain repeated "row"
// elements, each carrying class-tagged children for the title, rating,
// release year and genre. Rows finds the row elements, Extract turns them
// into records.
//
// Both functions take their inputs explicitly and Extract allocates a
// fresh result slice on every call, so repeated or concurrent invocations
// never see each other's results.
//
// # Expected markup
//
// Within each row node the extractor looks for the first descendant
// carrying the relevant class:
//
//	<div class="item-row">
//	    <a class="title">The Picture</a>
//	    <span class="rating">8.1</span>
//	    <span class="year">(2019)</span>
//	    <span class="genre">Drama</span>
//	</div>
//
// Rating is optional: a row without one produces a record with
// HasRating=false. Title, year and genre are required; a row missing any
// of them aborts extraction with a sentinel error naming the field and
// the row index.
//
// # Usage
//
//	doc, err := html.Parse(resp.Body)
//	if err != nil { ... }
//
//	rows := scrape.Rows(doc, "item-row")
//	records, err := scrape.Extract(rows)
package scrape
