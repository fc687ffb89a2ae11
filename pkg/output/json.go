package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vertti/clustercheck/pkg/check"
)

type jsonFinding struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type jsonResult struct {
	Group    string        `json:"group"`
	Title    string        `json:"title"`
	Status   string        `json:"status"`
	Findings []jsonFinding `json:"findings"`
}

// JSON renders one JSON object per check, one per line.
type JSON struct {
	enc   *json.Encoder
	group string
	err   error
}

// NewJSON returns a JSON-lines renderer writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

func (j *JSON) BeginGroup(title string) {
	j.group = title
}

func (j *JSON) Render(r check.Result) {
	if j.err != nil {
		return
	}
	out := jsonResult{
		Group:    j.group,
		Title:    r.Title,
		Status:   string(r.Status()),
		Findings: make([]jsonFinding, 0, len(r.Findings)),
	}
	for _, f := range r.Findings {
		out.Findings = append(out.Findings, jsonFinding{Severity: f.Severity.String(), Message: f.Message})
	}
	if err := j.enc.Encode(out); err != nil {
		j.err = fmt.Errorf("write report: %w", err)
	}
}

// Err returns the first encode or write error.
func (j *JSON) Err() error {
	return j.err
}

func (j *JSON) EndGroup() {
	j.group = ""
}
