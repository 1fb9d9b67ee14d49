package reportresponse

import (
	"fmt"
	"io"
	"time"

	"github.com/l2enel/Revisited-Udacity/domain/entities"
)

// Stat one line of a report
// + Label: text printed before the value
// + Value: value of the statistic
// + Inline: if true the value is printed on the same line as the label
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Inline bool   `json:"-"`
}

// ReportResponse contains the result of a report
type ReportResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	ReportID string            `json:"report_id"`
	Stats    []Stat            `json:"stats"`
	Elapsed  time.Duration     `json:"elapsed"`
}

func NewReportResponse(reportID string, reportType string) *ReportResponse {
	return &ReportResponse{
		Metadata: entities.Metadata{Type: reportType},
		ReportID: reportID,
	}
}

func (rr *ReportResponse) GetMetadata() entities.Metadata {
	return rr.Metadata
}

func (rr *ReportResponse) SetMetadata(metadata entities.Metadata) {
	rr.Metadata = metadata
}

func (rr *ReportResponse) GetReportID() string {
	return rr.ReportID
}

// AddStat appends a statistic printed as "label\nvalue"
func (rr *ReportResponse) AddStat(label string, value string) {
	rr.Stats = append(rr.Stats, Stat{Label: label, Value: value})
}

// AddInlineStat appends a statistic printed in a single line, label is a format with one %s verb
func (rr *ReportResponse) AddInlineStat(label string, value string) {
	rr.Stats = append(rr.Stats, Stat{Label: label, Value: value, Inline: true})
}

// AddMessage appends a line without value
func (rr *ReportResponse) AddMessage(message string) {
	rr.Stats = append(rr.Stats, Stat{Label: message, Inline: true})
}

// GetStat returns the value of the first stat with the given label
func (rr *ReportResponse) GetStat(label string) (string, bool) {
	for _, stat := range rr.Stats {
		if stat.Label == label {
			return stat.Value, true
		}
	}
	return "", false
}

// HasMessage returns true if some stat has the given label
func (rr *ReportResponse) HasMessage(message string) bool {
	_, ok := rr.GetStat(message)
	return ok
}

// Print writes the stats of the report in w
func (rr *ReportResponse) Print(w io.Writer) error {
	for _, stat := range rr.Stats {
		var err error
		switch {
		case stat.Inline && stat.Value == "":
			_, err = fmt.Fprintln(w, stat.Label)
		case stat.Inline:
			_, err = fmt.Fprintf(w, stat.Label+"\n", stat.Value)
		default:
			_, err = fmt.Fprintf(w, "%s\n%s\n", stat.Label, stat.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
