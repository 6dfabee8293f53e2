package rdfa

// orderedMap is an insertion-ordered string-to-string mapping with
// tombstone deletion, used for prefix maps and term maps (list mappings use
// listMap, in context.go).
//
// The teacher's RDF/XML decoder keeps its namespace bindings as a flat
// []string of alternating prefix/URI pairs (rdfxml.go's d.ns). orderedMap
// generalizes that idea into something that also supports lookup and
// deletion of a key while a caller is still iterating a snapshot of the
// keys -- hence tombstones rather than a real delete.
type orderedMap struct {
	keys    []string
	vals    []string
	deleted []bool
	index   map[string]int
}

func newOrderedMap() *orderedMap {
	return &orderedMap{index: make(map[string]int)}
}

// clone returns a deep, independent copy of m. Children receive a copy of
// their parent's prefix/term maps at element-open time (§5's "copy-on-
// descent" rule) so sibling frames never observe each other's mutations.
func (m *orderedMap) clone() *orderedMap {
	if m == nil {
		return newOrderedMap()
	}
	c := &orderedMap{
		keys:    append([]string(nil), m.keys...),
		vals:    append([]string(nil), m.vals...),
		deleted: append([]bool(nil), m.deleted...),
		index:   make(map[string]int, len(m.index)),
	}
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}

// set inserts or overwrites key with val. An overwrite keeps the key's
// original insertion position.
func (m *orderedMap) set(key, val string) {
	if i, ok := m.index[key]; ok && !m.deleted[i] {
		m.vals[i] = val
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	m.deleted = append(m.deleted, false)
}

// get returns the value for key and whether it is present (and not deleted).
func (m *orderedMap) get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[key]
	if !ok || m.deleted[i] {
		return "", false
	}
	return m.vals[i], true
}

// delete tombstones key without shifting indices, so an in-flight
// iteration over liveKeys() from before the call stays valid.
func (m *orderedMap) delete(key string) {
	if i, ok := m.index[key]; ok {
		m.deleted[i] = true
	}
}

// liveKeys returns the live (non-tombstoned) keys in insertion order. The
// returned slice is a snapshot; deleting from m afterwards does not affect it.
func (m *orderedMap) liveKeys() []string {
	out := make([]string, 0, len(m.keys))
	for i, k := range m.keys {
		if !m.deleted[i] {
			out = append(out, k)
		}
	}
	return out
}

func (m *orderedMap) len() int {
	n := 0
	for i := range m.keys {
		if !m.deleted[i] {
			n++
		}
	}
	return n
}
