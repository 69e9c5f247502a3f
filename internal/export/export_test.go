//nolint:testpackage // Tests require internal access for thorough testing
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bitserrors "github.com/abatilo/tasks/internal/errors"
	"github.com/abatilo/tasks/internal/task"
)

func sampleEntries() []task.Entry {
	return []task.Entry{
		{Task: task.Task{ID: 4, Title: "Renew passport", DueDate: "2024-01-10", Priority: task.PriorityHigh}, Overdue: true},
		{Task: task.Task{ID: 1, Title: "Water plants", Priority: task.PriorityLow, Completed: true}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				var fErr bitserrors.UnsupportedFormatError
				if !errors.As(err, &fErr) {
					t.Errorf("ParseFormat(%q) error = %v, want UnsupportedFormatError", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = (%q, %v), want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func checkRecords(t *testing.T, got []record) {
	t.Helper()
	if len(got) != 2 {
		t.Fatalf("decoded %d records, want 2", len(got))
	}
	if got[0].ID != 4 || got[0].DueDate != "2024-01-10" || !got[0].Overdue {
		t.Errorf("first record = %+v", got[0])
	}
	if got[1].ID != 1 || got[1].DueDate != "" || !got[1].Completed {
		t.Errorf("second record = %+v", got[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleEntries(), FormatJSON); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	checkRecords(t, got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleEntries(), FormatYAML); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got []record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	checkRecords(t, got)
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleEntries(), FormatTOML); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc tomlDocument
	if _, err := toml.Decode(buf.String(), &doc); err != nil {
		t.Fatalf("invalid TOML: %v\n%s", err, buf.String())
	}
	checkRecords(t, doc.Tasks)
}

func TestWriteUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleEntries(), Format("csv"))

	var fErr bitserrors.UnsupportedFormatError
	if !errors.As(err, &fErr) {
		t.Errorf("Write error = %v, want UnsupportedFormatError", err)
	}
}
