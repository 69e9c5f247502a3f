// Package export writes the ordered task view in interchange formats.
package export

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bitserrors "github.com/abatilo/tasks/internal/errors"
	"github.com/abatilo/tasks/internal/task"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", bitserrors.UnsupportedFormatError{Format: s}
	}
}

// record is one exported task. Absent due dates are omitted.
type record struct {
	ID        int    `json:"id"                 yaml:"id"                 toml:"id"`
	Title     string `json:"title"              yaml:"title"              toml:"title"`
	DueDate   string `json:"due_date,omitempty" yaml:"due_date,omitempty" toml:"due_date,omitempty"`
	Priority  string `json:"priority"           yaml:"priority"           toml:"priority"`
	Completed bool   `json:"completed"          yaml:"completed"          toml:"completed"`
	Overdue   bool   `json:"overdue"            yaml:"overdue"            toml:"overdue"`
}

// tomlDocument wraps the records since TOML has no top-level arrays.
type tomlDocument struct {
	Tasks []record `toml:"task"`
}

func toRecords(entries []task.Entry) []record {
	records := make([]record, len(entries))
	for i, e := range entries {
		records[i] = record{
			ID:        e.ID,
			Title:     e.Title,
			DueDate:   e.DueDate,
			Priority:  string(e.Priority),
			Completed: e.Completed,
			Overdue:   e.Overdue,
		}
	}
	return records
}

// Write encodes entries to w in the given format, preserving their order.
func Write(w io.Writer, entries []task.Entry, format Format) error {
	records := toRecords(entries)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(tomlDocument{Tasks: records})
	default:
		return bitserrors.UnsupportedFormatError{Format: string(format)}
	}
}
