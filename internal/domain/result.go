package domain

import "encoding/json"

// Test record statuses as written by the Jest/Vitest JSON reporters
const (
	StatusFailed  = "failed"
	StatusPassed  = "passed"
	StatusPending = "pending"
	StatusSkipped = "skipped"
	StatusTodo    = "todo"
)

// TestResultsDocument is the parsed content of a results file
type TestResultsDocument struct {
	TestResults []TestRecord
}

// UnmarshalJSON reads the exact "testResults" key. Struct tags would also
// match "TestResults" or "TESTRESULTS".
func (d *TestResultsDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	d.TestResults = nil
	raw, ok := fields["testResults"]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, &d.TestResults)
}

// TestRecord represents one test file entry in the results document.
// Only name and status are decoded eagerly; the rest of the record is kept
// raw so that unexpected shapes elsewhere in it never break the failed-name report.
type TestRecord struct {
	Name   Text
	Status Text
	Raw    json.RawMessage
}

// UnmarshalJSON decodes the exact "name" and "status" keys leniently and
// keeps the raw record. Keys differing only in case are other fields.
func (r *TestRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = TestRecord{Raw: append(json.RawMessage(nil), data...)}
	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &r.Name); err != nil {
			return err
		}
	}
	if raw, ok := fields["status"]; ok {
		if err := json.Unmarshal(raw, &r.Status); err != nil {
			return err
		}
	}
	return nil
}

// Failed reports whether the record's status is exactly "failed"
func (r TestRecord) Failed() bool {
	return r.Status.Equals(StatusFailed)
}

// RecordDetail holds the optional parts of a test record
type RecordDetail struct {
	Message          string            `json:"message"`
	StartTime        float64           `json:"startTime"`
	EndTime          float64           `json:"endTime"`
	AssertionResults []AssertionResult `json:"assertionResults"`
}

// AssertionResult is a single test case inside a test file
type AssertionResult struct {
	FullName        string   `json:"fullName"`
	Title           string   `json:"title"`
	AncestorTitles  []string `json:"ancestorTitles"`
	Status          string   `json:"status"`
	Duration        float64  `json:"duration"`
	FailureMessages []string `json:"failureMessages"`
}
