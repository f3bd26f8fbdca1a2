package timely

import (
	"encoding/json"
	"fmt"
	"sort"
)

// GlyphTable maps every GlyphID to its outline. A table is validated when it
// is built and never mutated afterwards, so one table can be shared by any
// number of displays. Build custom tables with NewGlyphTable or
// LoadGlyphTable; DefaultGlyphTable returns the built-in digits.
type GlyphTable struct {
	paths  [glyphCount]GlyphPath
	points int
}

// defaultTable is built at package initialization. Broken built-in geometry
// aborts initialization instead of surfacing during an animation.
var defaultTable = mustGlyphTable(defaultGlyphs)

func mustGlyphTable(paths map[GlyphID]GlyphPath) *GlyphTable {
	t, err := NewGlyphTable(paths)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultGlyphTable returns the built-in table of digit outlines.
func DefaultGlyphTable() *GlyphTable {
	return defaultTable
}

// NewGlyphTable validates paths and builds a table from copies of them.
//
// Every digit and GlyphBlank must be present, every path must be a move
// anchor plus whole cubic triplets inside the unit square, and all paths must
// share one point count so that any two glyphs can be morphed. Errors wrap
// ErrAuthoring, or ErrGlyphOutOfRange for keys outside the glyph set.
func NewGlyphTable(paths map[GlyphID]GlyphPath) (*GlyphTable, error) {
	for _, id := range sortedGlyphs(paths) {
		if !id.Valid() {
			return nil, fmt.Errorf("timely: glyph table: %w", glyphOutOfRange(id))
		}
	}

	t := &GlyphTable{points: -1}
	for _, id := range AllGlyphs {
		p, ok := paths[id]
		if !ok {
			return nil, &AuthoringError{Glyph: id, Index: -1, Reason: "missing from glyph table"}
		}
		if err := p.validate(id, true); err != nil {
			return nil, err
		}
		if t.points < 0 {
			t.points = len(p)
		} else if len(p) != t.points {
			return nil, &AuthoringError{Glyph: id, Index: -1,
				Reason: fmt.Sprintf("%d points, other glyphs have %d", len(p), t.points)}
		}
		t.paths[id.index()] = p.Clone()
	}
	return t, nil
}

// Path returns a copy of the outline for id. The copy may be modified freely.
func (t *GlyphTable) Path(id GlyphID) (GlyphPath, error) {
	if !id.Valid() {
		return nil, glyphOutOfRange(id)
	}
	return t.paths[id.index()].Clone(), nil
}

// MustPath is like Path but panics on an undefined GlyphID.
func (t *GlyphTable) MustPath(id GlyphID) GlyphPath {
	p, err := t.Path(id)
	if err != nil {
		panic(err)
	}
	return p
}

// path returns the table's own slice for id without copying. Callers must
// not modify it.
func (t *GlyphTable) path(id GlyphID) (GlyphPath, error) {
	if !id.Valid() {
		return nil, glyphOutOfRange(id)
	}
	return t.paths[id.index()], nil
}

// PointCount returns the number of control points shared by every glyph.
func (t *GlyphTable) PointCount() int {
	return t.points
}

// --- JSON authoring format ---

// jsonGlyphTable is the on-disk layout:
//
//	{"glyphs": {"0": [[x, y], ...], ..., "9": [...], "blank": [...]}}
type jsonGlyphTable struct {
	Glyphs map[string][][2]float64 `json:"glyphs"`
}

// jsonGlyphInput is jsonGlyphTable as read. Points decode into slices of
// pointers so that short, long and null entries stay visible to validation
// instead of being zero-filled.
type jsonGlyphInput struct {
	Glyphs map[string][][]*float64 `json:"glyphs"`
}

// LoadGlyphTable parses a glyph table from JSON and validates it like
// NewGlyphTable. Point order in each list is preserved exactly.
func LoadGlyphTable(jsonData []byte) (*GlyphTable, error) {
	var doc jsonGlyphInput
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("timely: failed to parse glyph table JSON: %w", err)
	}
	if len(doc.Glyphs) == 0 {
		return nil, fmt.Errorf("timely: glyph table JSON has no \"glyphs\" entries")
	}

	paths := make(map[GlyphID]GlyphPath, len(doc.Glyphs))
	for key, pts := range doc.Glyphs {
		id, err := parseGlyphKey(key)
		if err != nil {
			return nil, err
		}
		p := make(GlyphPath, len(pts))
		for i, xy := range pts {
			if len(xy) != 2 || xy[0] == nil || xy[1] == nil {
				return nil, &AuthoringError{Glyph: id, Index: i, Reason: "point must be [x, y]"}
			}
			p[i] = Point{X: *xy[0], Y: *xy[1]}
		}
		paths[id] = p
	}
	return NewGlyphTable(paths)
}

// MarshalJSON encodes the table in the format read by LoadGlyphTable.
func (t *GlyphTable) MarshalJSON() ([]byte, error) {
	doc := jsonGlyphTable{Glyphs: make(map[string][][2]float64, glyphCount)}
	for _, id := range AllGlyphs {
		p := t.paths[id.index()]
		pts := make([][2]float64, len(p))
		for i, pt := range p {
			pts[i] = [2]float64{pt.X, pt.Y}
		}
		doc.Glyphs[id.String()] = pts
	}
	return json.Marshal(doc)
}

func parseGlyphKey(key string) (GlyphID, error) {
	if key == "blank" {
		return GlyphBlank, nil
	}
	if len(key) == 1 {
		if id, err := GlyphForRune(rune(key[0])); err == nil && id != GlyphBlank {
			return id, nil
		}
	}
	return GlyphBlank, fmt.Errorf("timely: glyph table key %q: %w", key, ErrGlyphOutOfRange)
}

// sortedGlyphs returns the keys of paths in ascending order. Used for
// deterministic diagnostics.
func sortedGlyphs(paths map[GlyphID]GlyphPath) []GlyphID {
	ids := make([]GlyphID, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
