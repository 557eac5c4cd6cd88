// Package puzzle post-processes crossword files produced by the external
// grid generator: it locates each answer in the solved grid, numbers and
// bundles the puzzles and reports how often words are reused.
package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Block is the grid cell that separates answers.
const Block = '■'

const rawSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["cell_data", "hints"],
  "properties": {
    "cell_data": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "hints": {
      "type": "object",
      "required": ["h", "v"],
      "properties": {
        "h": {"$ref": "#/definitions/hintList"},
        "v": {"$ref": "#/definitions/hintList"}
      }
    }
  },
  "definitions": {
    "hintList": {
      "type": "array",
      "items": {
        "type": "array",
        "minItems": 3,
        "maxItems": 3,
        "items": [
          {"type": "integer", "minimum": 1},
          {"type": "string", "minLength": 1},
          {"type": "string", "minLength": 1}
        ]
      }
    }
  }
}`

var rawSchema = mustCompileSchema(rawSchemaJSON)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("puzzle: compile schema: %v", err))
	}
	return schema
}

// Hint is one clue of a raw puzzle: its clue number, the katakana answer and
// the word it was drawn from.
type Hint struct {
	Number  int
	Reading string
	Word    string
}

// UnmarshalJSON decodes the generator's [number, reading, word] triples.
func (h *Hint) UnmarshalJSON(data []byte) error {
	var triple [3]json.RawMessage
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if err := json.Unmarshal(triple[0], &h.Number); err != nil {
		return fmt.Errorf("hint number: %w", err)
	}
	if err := json.Unmarshal(triple[1], &h.Reading); err != nil {
		return fmt.Errorf("hint reading: %w", err)
	}
	if err := json.Unmarshal(triple[2], &h.Word); err != nil {
		return fmt.Errorf("hint word: %w", err)
	}
	return nil
}

// Raw is a puzzle as written by the generator.
type Raw struct {
	CellData []string `json:"cell_data"`
	Hints    struct {
		Across []Hint `json:"h"`
		Down   []Hint `json:"v"`
	} `json:"hints"`
}

// Words returns the source words of every hint, across first.
func (r *Raw) Words() []string {
	out := make([]string, 0, len(r.Hints.Across)+len(r.Hints.Down))
	for _, h := range r.Hints.Across {
		out = append(out, h.Word)
	}
	for _, h := range r.Hints.Down {
		out = append(out, h.Word)
	}
	return out
}

// ParseRaw validates data against the generator schema and decodes it.
func ParseRaw(data []byte) (*Raw, error) {
	result, err := rawSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate puzzle: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid puzzle: %s", strings.Join(msgs, "; "))
	}

	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}
	return &raw, nil
}

// LoadRaw reads and parses a generator file.
func LoadRaw(path string) (*Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := ParseRaw(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}
