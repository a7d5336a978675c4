// Package incident fetches no pages itself; it models one month of a
// campus crime log and turns the log's HTML table into JSON-ready
// records.
//
// The package handles three concerns:
//
//  1. Validating a month/year query and deriving the page URL
//  2. Parsing the log table into records
//  3. Writing the records as pretty-printed JSON
//
// # Queries
//
// A Query is a validated month/year pair:
//
//	query, err := incident.NewQuery(8, 2026)
//	if err != nil {
//	    // usage error
//	}
//	fmt.Println(query.URL())        // page to fetch
//	fmt.Println(query.OutputFile()) // "8-2026.json"
//
// # Parsing
//
// The Parser understands the log's continuation-row layout, where each
// record spans two consecutive table rows:
//
//	parser := incident.NewParser(false)
//	records, err := parser.Parse(html)
//
// Strict mode treats a table that cannot be paired as a parse error;
// lenient mode drops the unpaired trailing row the way older versions
// of this tool did.
//
// # Page Format
//
// The upstream log renders a single table: one header row, then two
// physical rows per record with three cells each. The six cells map, in
// order, to the report identifier, occurrence date, report date,
// incident type, disposition and location. The source changed to this
// format in 2011, which is why queries reject earlier years.
package incident
