// Package results reads red-team result documents and turns their case
// records into classified model.Case values.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/QTest-hq/rtjunit/pkg/model"
	"github.com/rs/zerolog/log"
)

// caseLocations are tried in order; the first array found wins
var caseLocations = [][]string{
	{"results", "results"},
	{"results", "outputs"},
	{"outputs"},
}

// Document is a parsed result document
type Document struct {
	Path string

	// Location is the dotted path the case list came from, empty if none matched
	Location string

	Cases []model.Case
}

// Load reads and parses the document at path and decodes its case list
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	doc.Path = path

	return doc, nil
}

// Parse decodes a result document held in memory
func Parse(data []byte) (*Document, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items, location := Discover(Value(raw))

	log.Debug().
		Str("location", location).
		Int("cases", len(items)).
		Msg("case list discovered")

	doc := &Document{
		Location: location,
		Cases:    make([]model.Case, 0, len(items)),
	}
	for i, item := range items {
		doc.Cases = append(doc.Cases, Decode(i, item))
	}

	return doc, nil
}

// Discover returns the case records of a document and where they were found.
// Locations are never merged; a document without any yields an empty list.
func Discover(doc Value) ([]Value, string) {
	for _, loc := range caseLocations {
		if items, ok := doc.Get(loc...).Array(); ok {
			return items, strings.Join(loc, ".")
		}
	}
	return []Value{}, ""
}
