package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Feature is one region of a boundary document.
type Feature struct {
	ID       string
	Name     string
	Geometry json.RawMessage
}

// Boundaries is a parsed GeoJSON FeatureCollection keyed by region id.
type Boundaries struct {
	Features []Feature
	// Skipped counts features dropped for a missing id or name.
	Skipped int
	byID    map[string]int
}

type rawCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

type rawFeature struct {
	ID         json.RawMessage `json:"id"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

func LoadBoundaries(r io.Reader) (*Boundaries, error) {
	var doc rawCollection
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode boundary document: %w", err)
	}

	b := &Boundaries{byID: make(map[string]int, len(doc.Features))}
	for _, rf := range doc.Features {
		var id string
		if err := json.Unmarshal(rf.ID, &id); err != nil || id == "" {
			b.Skipped++
			continue
		}
		name, ok := rf.Properties["name"].(string)
		if !ok {
			b.Skipped++
			continue
		}
		if _, dup := b.byID[id]; dup {
			// First feature for an id wins.
			b.Skipped++
			continue
		}
		b.byID[id] = len(b.Features)
		b.Features = append(b.Features, Feature{ID: id, Name: name, Geometry: rf.Geometry})
	}
	return b, nil
}

func LoadBoundariesFile(path string) (*Boundaries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()
	return LoadBoundaries(f)
}

func (b *Boundaries) Feature(id string) (Feature, bool) {
	if b == nil {
		return Feature{}, false
	}
	idx, ok := b.byID[id]
	if !ok {
		return Feature{}, false
	}
	return b.Features[idx], true
}

// Names builds the id -> display name mapping.
func (b *Boundaries) Names() StateNames {
	if b == nil {
		return StateNames{}
	}
	names := make(StateNames, len(b.Features))
	for _, f := range b.Features {
		names[f.ID] = f.Name
	}
	return names
}

// Attach returns a copy of table where every row with a matching feature
// carries that feature's geometry. Rows without a feature keep theirs.
func (b *Boundaries) Attach(table Table) Table {
	out := make(Table, len(table))
	for id, ref := range table {
		if f, ok := b.Feature(id); ok && len(f.Geometry) > 0 {
			ref.Geometry = f.Geometry
		}
		out[id] = ref
	}
	return out
}

// StateNames maps a state code to its display name.
type StateNames map[string]string

// Lookup is safe on a nil map and on unknown ids.
func (n StateNames) Lookup(id string) (string, bool) {
	name, ok := n[id]
	return name, ok
}
