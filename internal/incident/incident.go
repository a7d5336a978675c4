package incident

import (
	"encoding/json"
	"os"
)

// Incident is one logical record from the log table.
//
// All fields are kept as the page presents them, whitespace-trimmed but
// otherwise unparsed. Dates in particular stay strings; the upstream
// format has drifted over the years and the output mirrors the source.
type Incident struct {
	OccurredDate string `json:"occurred_date"`
	ReportDate   string `json:"report_date"`
	Type         string `json:"type"`
	Disposition  string `json:"disposition"`
	Location     string `json:"location"`
}

// Records maps a report identifier to its incident.
//
// When the source repeats an identifier, the later record wins; the
// page is ordered and the overwrite mirrors how the log corrects itself.
type Records map[string]Incident

// Save writes the records as pretty-printed JSON, overwriting path.
//
// Keys are emitted in sorted order, so the same page always produces
// byte-identical output.
func (r Records) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
