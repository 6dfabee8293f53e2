package rdfa

import (
	gocontext "context"
	"encoding/xml"
	"io"

	"github.com/knakk/rdf"
)

// Config configures a Decoder, mirroring spec.md §6.4.
type Config struct {
	// Base is the document's base IRI. Required: NewDecoder returns
	// ErrMissingBase when it is the zero value.
	Base rdf.IRI

	RDFaVersionHint  Version
	HostLanguageHint HostLanguage

	// Bounds on the per-frame mapping stores. Only MaxURIMappings is
	// enforced: once a frame holds that many prefixes, further prefix
	// declarations are dropped with a processor warning. The other four
	// are filled with defaults
	// but not checked; term maps, list mappings and list items grow
	// without limit.
	MaxURIMappings        int
	MaxTermMappings       int
	MaxListMappings       int
	MaxLocalListMappings  int
	MaxListItems          int
}

const (
	defaultMaxURIMappings       = 128
	defaultMaxTermMappings      = 64
	defaultMaxListMappings      = 48
	defaultMaxLocalListMappings = 32
	defaultMaxListItems         = 16
)

func (c Config) withDefaults() Config {
	if c.MaxURIMappings == 0 {
		c.MaxURIMappings = defaultMaxURIMappings
	}
	if c.MaxTermMappings == 0 {
		c.MaxTermMappings = defaultMaxTermMappings
	}
	if c.MaxListMappings == 0 {
		c.MaxListMappings = defaultMaxListMappings
	}
	if c.MaxLocalListMappings == 0 {
		c.MaxLocalListMappings = defaultMaxLocalListMappings
	}
	if c.MaxListItems == 0 {
		c.MaxListItems = defaultMaxListItems
	}
	return c
}

// Decoder extracts RDFa triples from a single io.Reader. It is not safe for
// concurrent use by multiple goroutines, matching rdf.TripleDecoder's own
// contract.
type Decoder struct {
	cfg Config
	r   io.Reader

	lc     *lineCounter
	xmlDec *xml.Decoder
	stack  []*context

	bnodeN       int
	anonBlank    string
	anonBlankSet bool

	// queue/procQueue hold triples emitted during the walk that have not
	// yet been handed to the active sink; they are drained after each
	// element close (see drain).
	queue     []Triple
	procQueue []Triple

	// processorSink is the warn Sink of the in-progress Run call, kept as
	// a field so deep call chains (emit.go, errors.go) can gate pseudo-
	// triple construction on "is anyone listening" without threading a
	// parameter through every method.
	processorSink Sink

	procWarnings []*ProcessorWarning
	procErrs     []*ProcessorError

	ran          bool
	runErr       error
	outQueue     []Triple
	outProcQueue []Triple
}

// NewDecoder returns a Decoder reading RDFa-annotated markup from r.
func NewDecoder(r io.Reader, cfg Config) (*Decoder, error) {
	if cfg.Base.Value() == "" {
		return nil, ErrMissingBase
	}
	return &Decoder{cfg: cfg.withDefaults(), r: r}, nil
}

// lineCounter wraps an io.Reader, counting newline bytes as they are read
// so pos() can report an approximate line number for diagnostics. Column
// tracking is not attempted; spec.md §7's LineCharPointer only requires a
// line.
type lineCounter struct {
	r    io.Reader
	line int
}

func (lc *lineCounter) Read(p []byte) (int, error) {
	n, err := lc.r.Read(p)
	for _, b := range p[:n] {
		if b == '\n' {
			lc.line++
		}
	}
	return n, err
}

func (d *Decoder) pos() Pos {
	if d.lc == nil {
		return Pos{}
	}
	return Pos{Line: d.lc.line + 1}
}

func (d *Decoder) newBlankNode() string {
	d.bnodeN++
	return "_:rdfa" + itoa(d.bnodeN)
}

// anonymousBlank returns the single blank node CURIE step 4 of spec.md
// §4.2 designates for "[_:]" / "_:" with no reference part: one fixed
// label, shared by every such reference within a document.
func (d *Decoder) anonymousBlank() string {
	if !d.anonBlankSet {
		d.anonBlank = d.newBlankNode()
		d.anonBlankSet = true
	}
	return d.anonBlank
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Decode returns the next default-graph triple, or io.EOF once the parse is
// exhausted. The first call runs the whole parse via Run, buffering its
// output; subsequent calls just drain that buffer. This trades true
// incremental pull semantics for the simplicity of the teacher's own
// rdfXMLDecoder.Decode buffering pattern -- see DESIGN.md.
func (d *Decoder) Decode() (Triple, error) {
	d.ensureRun()
	if len(d.outQueue) == 0 {
		if d.runErr != nil {
			return Triple{}, d.runErr
		}
		return Triple{}, io.EOF
	}
	t := d.outQueue[0]
	d.outQueue = d.outQueue[1:]
	return t, nil
}

// DecodeAll decodes and returns every default-graph triple, or an error.
func (d *Decoder) DecodeAll() ([]Triple, error) {
	var ts []Triple
	for {
		t, err := d.Decode()
		if err == io.EOF {
			return ts, nil
		}
		if err != nil {
			return ts, err
		}
		ts = append(ts, t)
	}
}

// DecodeProcessor is Decode's counterpart for the processor graph.
func (d *Decoder) DecodeProcessor() (Triple, error) {
	d.ensureRun()
	if len(d.outProcQueue) == 0 {
		if d.runErr != nil {
			return Triple{}, d.runErr
		}
		return Triple{}, io.EOF
	}
	t := d.outProcQueue[0]
	d.outProcQueue = d.outProcQueue[1:]
	return t, nil
}

// DecodeAllProcessor is DecodeAll's counterpart for the processor graph.
func (d *Decoder) DecodeAllProcessor() ([]Triple, error) {
	var ts []Triple
	for {
		t, err := d.DecodeProcessor()
		if err == io.EOF {
			return ts, nil
		}
		if err != nil {
			return ts, err
		}
		ts = append(ts, t)
	}
}

func (d *Decoder) ensureRun() {
	if d.ran {
		return
	}
	d.ran = true
	d.runErr = d.Run(gocontext.Background(),
		func(t Triple) error { d.outQueue = append(d.outQueue, t); return nil },
		func(t Triple) error { d.outProcQueue = append(d.outProcQueue, t); return nil },
	)
}

// Run drives the whole parse, calling sink for every default-graph triple
// and warn for every processor-graph triple as they become available. A
// non-nil return from either sink aborts the parse immediately, its error
// propagated from Run. warn may be nil, in which case processor-graph
// diagnostics are computed as warnings/errors (available afterwards has no
// public accessor -- callers that want them must supply warn) but no
// pseudo-triples are built.
func (d *Decoder) Run(ctx gocontext.Context, sink, warn Sink) error {
	d.processorSink = warn

	br, sniffed := sniff(d.r)
	d.lc = &lineCounter{r: br}
	d.xmlDec = xml.NewDecoder(d.lc)

	host := d.cfg.HostLanguageHint
	if host == HostAuto {
		host = sniffed.host
	}
	version := d.cfg.RDFaVersionHint
	if version == VersionAuto {
		version = sniffed.version
	}
	base := d.cfg.Base.Value()
	if sniffed.base != "" {
		base = resolveIRI(base, sniffed.base)
	}

	root := &context{
		base:              base,
		hostLanguage:      host,
		rdfaVersion:       version,
		prefixMap:         newOrderedMap(),
		termMap:           newOrderedMap(),
		listMappings:      newListMap(),
		localListMappings: newListMap(),
		recurse:           true,
		depth:             0,
	}
	seedInitialContext(root)

	d.stack = d.stack[:0]
	var cur *context

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tok, err := d.xmlDec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &ParseError{Pos: d.pos(), Err: err}
		}

		switch el := tok.(type) {
		case xml.StartElement:
			parent := root
			if cur != nil {
				parent = cur
			}
			parent.hadChildElement = true

			if v, ok := detectVersionUpgrade(attrValue(el.Attr, "", "version")); ok {
				parent.rdfaVersion = v
			}

			child := parent.childFrame()
			a := d.parseAttrs(child, parent, el)
			applyImplicitAbout(child, &a, child.depth, el.Name.Local)

			if wholeElementSkip(a, a.HasVocab, a.HasPrefix) {
				child.skipElement = true
				child.newSubject = child.parentSubject
			} else {
				d.establishSubject(child, a)
				d.emitOpenTriples(child, a)
			}
			child.attrs = a

			appendStartTag(child, el, child.language, a.hasLangAttr)

			d.stack = append(d.stack, child)
			cur = child

			if err := d.drain(sink, warn); err != nil {
				return err
			}

		case xml.EndElement:
			if cur == nil {
				break
			}
			closing := cur
			a := closing.attrs

			if !closing.skipElement {
				lit := computePropertyValue(closing, a, closing.hadChildElement, closing.currentObjectResource)
				lang := ""
				if lit.Kind == PlainLiteral || lit.Kind == TypedLiteral {
					lang = strVal(closing.language)
				}
				if len(a.Property) > 0 && closing.newSubject != nil {
					for _, p := range a.Property {
						if closing.rdfaVersion == Version11 && a.HasInlist {
							acc := closing.localListMappings.getOrCreate(listKey(*closing.newSubject, p), closing.depth)
							acc.Items = append(acc.Items, listItem{
								Value: lit.Value, Kind: lit.Kind, Datatype: lit.Datatype, Lang: lang,
							})
							continue
						}
						d.emitTriple(Triple{
							Subject:   *closing.newSubject,
							Predicate: p,
							Object:    lit.Value,
							Kind:      lit.Kind,
							Datatype:  lit.Datatype,
							Lang:      lang,
							Pos:       d.pos(),
						})
					}
				}
			}

			appendEndTag(closing, el.Name)
			d.completeParentIncompletes(closing)
			d.flushLists(closing)

			d.stack = d.stack[:len(d.stack)-1]
			var parent *context
			if len(d.stack) == 0 {
				parent = root
				cur = nil
			} else {
				parent = d.stack[len(d.stack)-1]
				cur = parent
			}

			parent.xmlLiteral.WriteString(closing.xmlLiteral.String())
			for _, key := range closing.localListMappings.order {
				childAcc := closing.localListMappings.vals[key]
				if childAcc == nil || childAcc.Deleted {
					continue
				}
				parentAcc := parent.localListMappings.getOrCreate(key, childAcc.Depth)
				parentAcc.Items = childAcc.Items
			}

			if err := d.drain(sink, warn); err != nil {
				return err
			}
			releaseContext(closing)

		case xml.CharData:
			if cur != nil {
				appendCharData(cur, []byte(el))
			}
		}
	}

	return d.drain(sink, warn)
}

// drain hands every queued triple to its sink, in order, clearing the
// queues. A sink error aborts the parse.
func (d *Decoder) drain(sink, warn Sink) error {
	for _, t := range d.queue {
		if sink != nil {
			if err := sink(t); err != nil {
				return err
			}
		}
	}
	d.queue = d.queue[:0]
	for _, t := range d.procQueue {
		if warn != nil {
			if err := warn(t); err != nil {
				return err
			}
		}
	}
	d.procQueue = d.procQueue[:0]
	return nil
}

func attrValue(attr []xml.Attr, space, local string) string {
	for _, a := range attr {
		if a.Name.Local == local && (space == "" || a.Name.Space == space) {
			return a.Value
		}
	}
	return ""
}
