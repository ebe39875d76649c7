package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/framecode/pkg/scene"
)

// Map is an insertion-ordered property map. The zero value is not usable;
// create maps with [New] or [FromDeclarations].
type Map struct {
	keys []string
	vals map[string]string
}

// New returns an empty map.
func New() *Map {
	return &Map{vals: make(map[string]string)}
}

// FromDeclarations builds a map from host declarations, keeping their order.
// Later duplicates update the earlier entry in place.
func FromDeclarations(decls []scene.Declaration) *Map {
	m := New()
	for _, d := range decls {
		m.Set(d.Property, d.Value)
	}
	return m
}

// Set stores value under the dash-cased name. Existing entries keep their
// position.
func (m *Map) Set(name, value string) {
	name = DashCase(name)
	if _, ok := m.vals[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.vals[name] = value
}

// SetPx stores a pixel length, e.g. SetPx("marginTop", 10) -> "10px".
func (m *Map) SetPx(name string, v float64) {
	m.Set(name, Px(v))
}

// SetDefault stores value only when name is absent.
func (m *Map) SetDefault(name, value string) {
	if !m.Has(name) {
		m.Set(name, value)
	}
}

// Get returns the value stored under name.
func (m *Map) Get(name string) (string, bool) {
	v, ok := m.vals[DashCase(name)]
	return v, ok
}

// Value returns the value stored under name, or "".
func (m *Map) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

// Has reports whether name is set.
func (m *Map) Has(name string) bool {
	_, ok := m.vals[DashCase(name)]
	return ok
}

// Delete removes name.
func (m *Map) Delete(name string) {
	name = DashCase(name)
	if _, ok := m.vals[name]; !ok {
		return
	}
	delete(m.vals, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of properties.
func (m *Map) Len() int { return len(m.keys) }

// Each calls fn for every property in insertion order.
func (m *Map) Each(fn func(name, value string)) {
	for _, k := range m.keys {
		fn(k, m.vals[k])
	}
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	c := &Map{keys: m.Keys(), vals: make(map[string]string, len(m.vals))}
	for k, v := range m.vals {
		c.vals[k] = v
	}
	return c
}

// String renders the map as a declaration block.
func (m *Map) String() string {
	return strings.Join(Declarations(m), "")
}

// =============================================================================
// Numbers
// =============================================================================

// Number formats v without trailing zeros: 10 -> "10", 12.5 -> "12.5".
func Number(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px formats v as a pixel length.
func Px(v float64) string {
	return Number(v) + "px"
}
