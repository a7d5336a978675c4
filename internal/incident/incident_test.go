package incident

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// logPage is a minimal crime log page: one header row, then two
// physical rows per record with three cells each.
const logPage = `<html><body>
<table>
	<tr><th>Report #</th><th>Occurred</th><th>Reported</th></tr>
	<tr><td>26-0101</td><td> 08/01/2026 03:15 </td><td>08/01/2026 04:00</td></tr>
	<tr><td> Larceny </td><td>Closed</td><td>Library West</td></tr>
	<tr><td>26-0102</td><td>08/02/2026 11:30</td><td>08/02/2026 11:45</td></tr>
	<tr><td>Vandalism</td><td>Open</td><td>Parking Deck 4</td></tr>
</table>
</body></html>`

func TestParser_Parse(t *testing.T) {
	records, err := NewParser(false).Parse(logPage)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first, ok := records["26-0101"]
	if !ok {
		t.Fatalf("record 26-0101 missing, got keys %v", keys(records))
	}
	if first.OccurredDate != "08/01/2026 03:15" {
		t.Errorf("OccurredDate = %q, want trimmed %q", first.OccurredDate, "08/01/2026 03:15")
	}
	if first.ReportDate != "08/01/2026 04:00" {
		t.Errorf("ReportDate = %q, want %q", first.ReportDate, "08/01/2026 04:00")
	}
	if first.Type != "Larceny" {
		t.Errorf("Type = %q, want trimmed %q", first.Type, "Larceny")
	}
	if first.Disposition != "Closed" {
		t.Errorf("Disposition = %q, want %q", first.Disposition, "Closed")
	}
	if first.Location != "Library West" {
		t.Errorf("Location = %q, want %q", first.Location, "Library West")
	}

	second := records["26-0102"]
	if second.Type != "Vandalism" || second.Location != "Parking Deck 4" {
		t.Errorf("second record = %+v, want Vandalism at Parking Deck 4", second)
	}
}

func TestParser_Parse_OddRows(t *testing.T) {
	// Two full records plus one unpaired trailing row.
	oddPage := strings.Replace(logPage, "</table>",
		`<tr><td>26-0103</td><td>08/03/2026 09:00</td><td>08/03/2026 09:10</td></tr>
</table>`, 1)

	t.Run("strict", func(t *testing.T) {
		_, err := NewParser(false).Parse(oddPage)
		if !errors.Is(err, ErrUnpairedRow) {
			t.Errorf("Parse() error = %v, want ErrUnpairedRow", err)
		}
	})

	t.Run("lenient", func(t *testing.T) {
		records, err := NewParser(true).Parse(oddPage)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if len(records) != 2 {
			t.Errorf("got %d records, want 2 (trailing row dropped)", len(records))
		}
		if _, ok := records["26-0103"]; ok {
			t.Error("unpaired trailing row must not become a record")
		}
	})
}

func TestParser_Parse_DuplicateKeyLastWins(t *testing.T) {
	page := `<html><body><table>
	<tr><th>h</th></tr>
	<tr><td>26-0200</td><td>d1</td><td>r1</td></tr>
	<tr><td>Theft</td><td>Open</td><td>North Ave</td></tr>
	<tr><td>26-0200</td><td>d2</td><td>r2</td></tr>
	<tr><td>Theft</td><td>Closed</td><td>North Ave</td></tr>
	</table></body></html>`

	records, err := NewParser(false).Parse(page)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records["26-0200"].Disposition; got != "Closed" {
		t.Errorf("Disposition = %q, want %q (later record wins)", got, "Closed")
	}
}

func TestParser_Parse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantErr error
	}{
		{
			name:    "no table",
			html:    `<html><body><p>maintenance</p></body></html>`,
			wantErr: ErrNoTable,
		},
		{
			name: "short record",
			html: `<html><table>
			<tr><th>h</th></tr>
			<tr><td>26-0300</td><td>d</td><td>r</td></tr>
			<tr><td>Theft</td><td>Open</td></tr>
			</table></html>`,
		},
		{
			name: "record with extra cell",
			html: `<html><table>
			<tr><th>h</th></tr>
			<tr><td>26-0301</td><td>d</td><td>r</td><td>x</td></tr>
			<tr><td>Theft</td><td>Open</td><td>North Ave</td></tr>
			</table></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, lenient := range []bool{false, true} {
				_, err := NewParser(lenient).Parse(tt.html)
				if err == nil {
					t.Errorf("Parse(lenient=%v) should fail", lenient)
					continue
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse(lenient=%v) error = %v, want %v", lenient, err, tt.wantErr)
				}
			}
		})
	}
}

func TestParser_Parse_HeaderOnly(t *testing.T) {
	page := `<html><table><tr><th>Report #</th></tr></table></html>`

	records, err := NewParser(false).Parse(page)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if records == nil {
		t.Fatal("Parse() should return an empty map, not nil")
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestNewQuery(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name    string
		month   int
		year    int
		wantErr bool
	}{
		{"valid", 8, 2026, false},
		{"first month", 1, MinYear, false},
		{"current year", 12, currentYear, false},
		{"month zero", 0, 2026, true},
		{"month thirteen", 13, 2026, true},
		{"year before format change", 6, MinYear - 1, true},
		{"future year", 6, currentYear + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuery(tt.month, tt.year)
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewQuery_InvalidMonthSentinel(t *testing.T) {
	_, err := NewQuery(0, 2026)
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("NewQuery() error = %v, want ErrInvalidMonth", err)
	}
}

func TestQuery_URL(t *testing.T) {
	query, err := NewQuery(3, 2026)
	if err != nil {
		t.Fatal(err)
	}

	want := "https://police.gatech.edu/crimelog?month=3&year=2026"
	if got := query.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}

	query.URLTemplate = "http://127.0.0.1:8080/log?m=%d&y=%d"
	if got := query.URL(); got != "http://127.0.0.1:8080/log?m=3&y=2026" {
		t.Errorf("URL() with override = %q", got)
	}
}

func TestQuery_OutputFile(t *testing.T) {
	query, err := NewQuery(3, 2026)
	if err != nil {
		t.Fatal(err)
	}

	// No zero padding on the month.
	if got := query.OutputFile(); got != "3-2026.json" {
		t.Errorf("OutputFile() = %q, want %q", got, "3-2026.json")
	}
}

func TestRecords_Save(t *testing.T) {
	records := Records{
		"26-0101": {
			OccurredDate: "08/01/2026 03:15",
			ReportDate:   "08/01/2026 04:00",
			Type:         "Larceny",
			Disposition:  "Closed",
			Location:     "Library West",
		},
	}

	path := filepath.Join(t.TempDir(), "8-2026.json")
	if err := records.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Pretty-printed: indented keys, one field per line.
	if !strings.Contains(string(data), "\n  \"26-0101\"") {
		t.Errorf("output not pretty-printed:\n%s", data)
	}

	var loaded map[string]Incident
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if loaded["26-0101"].Type != "Larceny" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func keys(r Records) []string {
	var out []string
	for k := range r {
		out = append(out, k)
	}
	return out
}
