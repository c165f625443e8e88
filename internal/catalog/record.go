package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sonard/pkg/types"
)

// record is the on-disk/on-wire event shape. It accepts "title" as an alias
// of "name" and numeric ids in JSON and YAML.
type record struct {
	ID              flexID   `json:"id" yaml:"id" toml:"id"`
	Name            string   `json:"name" yaml:"name" toml:"name"`
	Title           string   `json:"title" yaml:"title" toml:"title"`
	Description     string   `json:"description" yaml:"description" toml:"description"`
	Tags            []string `json:"tags" yaml:"tags" toml:"tags"`
	Date            string   `json:"date" yaml:"date" toml:"date"`
	StartTime       string   `json:"startTime" yaml:"startTime" toml:"startTime"`
	EndTime         string   `json:"endTime" yaml:"endTime" toml:"endTime"`
	Location        string   `json:"location" yaml:"location" toml:"location"`
	Image           string   `json:"image" yaml:"image" toml:"image"`
	Energy          *float64 `json:"energy" yaml:"energy" toml:"energy"`
	Informativeness *float64 `json:"informativeness" yaml:"informativeness" toml:"informativeness"`
}

func (r record) event() types.Event {
	name := r.Name
	if name == "" {
		name = r.Title
	}
	return types.Event{
		ID:              string(r.ID),
		Name:            name,
		Description:     r.Description,
		Tags:            r.Tags,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Location:        r.Location,
		Image:           r.Image,
		Energy:          r.Energy,
		Informativeness: r.Informativeness,
	}
}

type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("event id must be a string or number: %s", string(b))
	}
	*id = flexID(n.String())
	return nil
}

func (id *flexID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("event id must be a scalar (line %d)", node.Line)
	}
	*id = flexID(node.Value)
	return nil
}

type envelope struct {
	Events []record `json:"events" yaml:"events" toml:"events"`
}

// Decode parses a catalog document. format is a file extension (".json",
// ".yaml", ".yml", ".toml"). JSON and YAML accept either a bare list or an
// object with an "events" list; TOML requires [[events]] tables.
func Decode(b []byte, format string) ([]types.Event, error) {
	var recs []record
	switch f := strings.ToLower(format); f {
	case ".json", "json":
		trimmed := bytes.TrimSpace(b)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &recs); err != nil {
				return nil, err
			}
			break
		}
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		recs = env.Events
	case ".yaml", ".yml", "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(b, &node); err != nil {
			return nil, err
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&recs); err != nil {
				return nil, err
			}
			break
		}
		var env envelope
		if err := yaml.Unmarshal(b, &env); err != nil {
			return nil, err
		}
		recs = env.Events
	case ".toml", "toml":
		var env envelope
		if err := toml.Unmarshal(b, &env); err != nil {
			return nil, err
		}
		recs = env.Events
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}
	out := make([]types.Event, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.event())
	}
	return out, nil
}

// formatOf returns the extension used to pick a decoder for path.
func formatOf(path string) string { return strings.ToLower(filepath.Ext(path)) }
