package rdfa

import (
	"strings"
	"sync"
)

// contextPool recycles frame structs across an element's push/pop
// lifetime, per spec.md §9's "arena of frames indexed by depth" note: a
// deeply nested document pushes and pops one frame per element, and
// sync.Pool gives that churn back to the allocator instead of the GC.
var contextPool = sync.Pool{
	New: func() interface{} { return new(context) },
}

// releaseContext returns c to contextPool once its element has fully
// closed and nothing (not even a child's parentSubject/parentObject
// pointer, which alias *string fields rather than c itself) still
// references it.
func releaseContext(c *context) {
	*c = context{}
	contextPool.Put(c)
}

// direction labels an incomplete triple's pending role.
type direction int8

const (
	forward direction = iota // predicate awaits (parent, P, ?)
	reverse                  // predicate awaits (?, P, parent)
	none                     // predicate is folded into a list instead
)

// incompleteTriple is a pending triple whose subject or object is not yet
// known; it is completed by the first descendant that establishes a new
// subject (spec.md §4.5 step 3 / step 5).
type incompleteTriple struct {
	Predicate string
	Dir       direction
}

// listItem is one member of a list mapping accumulator.
type listItem struct {
	Value    string
	Kind     ObjectKind
	Datatype string
	Lang     string
}

// listAccum accumulates the members of one (subject, predicate) list
// mapping, per spec.md §4.7.
type listAccum struct {
	Items   []listItem
	Depth   int // depth at which this key was first instantiated
	Deleted bool
}

// listMap is a (subject+" "+predicate) -> *listAccum map with insertion
// order preserved, mirroring orderedMap but carrying accumulator values
// instead of strings.
type listMap struct {
	order []string
	vals  map[string]*listAccum
}

func newListMap() *listMap {
	return &listMap{vals: make(map[string]*listAccum)}
}

func listKey(subject, predicate string) string {
	return subject + " " + predicate
}

func (m *listMap) get(key string) (*listAccum, bool) {
	if m == nil {
		return nil, false
	}
	a, ok := m.vals[key]
	if !ok || a.Deleted {
		return nil, false
	}
	return a, true
}

// getOrCreate returns the accumulator for key, creating one stamped with
// depth if absent.
func (m *listMap) getOrCreate(key string, depth int) *listAccum {
	if a, ok := m.vals[key]; ok {
		return a
	}
	a := &listAccum{Depth: depth}
	m.vals[key] = a
	m.order = append(m.order, key)
	return a
}

// clone performs the deep copy used to hand a frame's local list mappings
// down to a child (as its inherited list_mappings) or up to a parent on
// close (§4.7's "propagated ... via a deep copy at close").
func (m *listMap) clone() *listMap {
	c := newListMap()
	if m == nil {
		return c
	}
	for _, k := range m.order {
		a := m.vals[k]
		if a == nil {
			continue
		}
		cp := &listAccum{
			Items: append([]listItem(nil), a.Items...),
			Depth: a.Depth,
		}
		c.vals[k] = cp
		c.order = append(c.order, k)
	}
	return c
}

// context is one evaluation frame, pushed on element open and popped on
// element close. Field names follow spec.md §3 directly.
type context struct {
	base         string
	hostLanguage HostLanguage
	rdfaVersion  Version

	parentSubject         *string
	parentObject          *string
	newSubject            *string
	currentObjectResource *string
	typedResource         *string

	language          *string
	defaultVocabulary *string

	prefixMap *orderedMap
	termMap   *orderedMap

	incompleteTriples      []incompleteTriple
	localIncompleteTriples []incompleteTriple

	listMappings      *listMap
	localListMappings *listMap

	skipElement bool
	recurse     bool // false once a rdf:XMLLiteral subtree is entered

	plainLiteral strings.Builder
	xmlLiteral   strings.Builder

	depth int

	// attrs and hadChildElement are working state for the element this
	// frame belongs to, filled in at open time and consulted again at
	// close time; childFrame never copies them, since they describe one
	// specific element, not inheritable environment.
	attrs           attrs
	hadChildElement bool
}

// childFrame builds the frame for a child element, copying the parent's
// inheritable state per spec.md §4.8's "Start event" paragraph: base,
// host language, RDFa version, language, default vocabulary, prefix/term
// maps (deep copy, so siblings never see each other's mutations -- §5) and
// the parent's local list mappings, rebound as the child's inherited
// list_mappings.
func (c *context) childFrame() *context {
	child := contextPool.Get().(*context)
	*child = context{
		base:              c.base,
		hostLanguage:      c.hostLanguage,
		rdfaVersion:       c.rdfaVersion,
		language:          c.language,
		defaultVocabulary: c.defaultVocabulary,
		prefixMap:         c.prefixMap.clone(),
		termMap:           c.termMap.clone(),
		listMappings:      c.localListMappings.clone(),
		localListMappings: c.localListMappings.clone(),
		recurse:           true,
		depth:             c.depth + 1,
	}

	if !c.skipElement {
		// parent subject <- new subject, else parent's own parent subject.
		if c.newSubject != nil {
			child.parentSubject = c.newSubject
		} else {
			child.parentSubject = c.parentSubject
		}
		// parent object <- current object resource, else new subject,
		// else parent's own parent subject.
		switch {
		case c.currentObjectResource != nil:
			child.parentObject = c.currentObjectResource
		case c.newSubject != nil:
			child.parentObject = c.newSubject
		default:
			child.parentObject = c.parentSubject
		}
		child.incompleteTriples = append([]incompleteTriple(nil), c.localIncompleteTriples...)
	} else {
		// skip_element: this frame established nothing, so its still-
		// pending incomplete triples and parent/object pointers pass
		// straight through unchanged.
		child.parentSubject = c.parentSubject
		child.parentObject = c.parentObject
		child.incompleteTriples = append([]incompleteTriple(nil), c.incompleteTriples...)
	}
	return child
}

func strPtr(s string) *string { return &s }

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
