package incident

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// recordCells is the number of text cells that make up one record once
// its two physical rows are joined.
const recordCells = 6

// ErrNoTable is returned when the page contains no table element.
var ErrNoTable = errors.New("no table found in page")

// ErrUnpairedRow is returned in strict mode when the data rows cannot
// be grouped into pairs.
var ErrUnpairedRow = errors.New("unpaired trailing row in table")

// Parser extracts incident records from a crime log HTML page.
//
// The log table uses a continuation-row layout: each logical record
// spans two consecutive <tr> elements, three cells in the first and
// three in the second. The Parser drops the header row, joins each row
// pair and maps the six cells onto an Incident.
//
// Example usage:
//
//	parser := incident.NewParser(false)
//	records, err := parser.Parse(html)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records.Save(query.OutputFile())
type Parser struct {
	lenient bool
}

// NewParser creates a new Parser.
//
// In strict mode (lenient false) a table whose data rows cannot be
// paired is a parse error. Lenient mode restores the historical
// behavior of dropping the unpaired trailing row.
func NewParser(lenient bool) *Parser {
	return &Parser{lenient: lenient}
}

// Parse extracts all records from the page HTML.
//
// This method performs the following steps:
//  1. Locates the first table element
//  2. Drops the table's first row, the header
//  3. Groups the remaining rows into consecutive pairs
//  4. Joins each pair's cells into one six-value record, trimming
//     surrounding whitespace from every value
//  5. Keys the record by its first cell, the report identifier
//
// A record with a cell count other than six is a parse error in both
// modes; the column layout changing upstream must not produce shifted
// fields. A duplicated report identifier is not an error; the later
// record wins.
//
// Returns ErrNoTable if the page has no table and ErrUnpairedRow if the
// data rows cannot be paired in strict mode. A table with a header and
// no data rows yields an empty, non-nil Records.
func (p *Parser) Parse(html string) (Records, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	rows := table.Find("tr")
	if rows.Length() <= 1 {
		return Records{}, nil
	}

	data := rows.Slice(1, rows.Length())
	n := data.Length()
	if n%2 != 0 {
		if !p.lenient {
			return nil, fmt.Errorf("%w: %d data rows", ErrUnpairedRow, n)
		}
		n-- // historical behavior: ignore the unpaired trailing row
	}

	records := make(Records, n/2)
	for i := 0; i < n; i += 2 {
		cells := rowCells(data.Eq(i), data.Eq(i+1))
		if len(cells) != recordCells {
			return nil, fmt.Errorf("record %d: %d cells, want %d", i/2+1, len(cells), recordCells)
		}
		records[cells[0]] = Incident{
			OccurredDate: cells[1],
			ReportDate:   cells[2],
			Type:         cells[3],
			Disposition:  cells[4],
			Location:     cells[5],
		}
	}

	return records, nil
}

// rowCells collects the trimmed text of every data cell across the
// given rows, in document order.
func rowCells(rows ...*goquery.Selection) []string {
	var cells []string
	for _, row := range rows {
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
	}
	return cells
}
