package rdfa

import (
	"errors"
	"fmt"
)

// Exported sentinel errors, in the style of the module's own rdf.go
// (ErrBlankNodeMissingID, ErrIRIEmptyInput, ...).
var (
	// ErrMissingBase is returned by NewDecoder when Config.Base is empty.
	// spec.md §7 category 2: construction fails.
	ErrMissingBase = errors.New("rdfa: base IRI is required")
)

// ParseError wraps an XML well-formedness failure reported by the
// underlying encoding/xml.Decoder (spec.md §7 category 3): fatal, parsing
// stops.
type ParseError struct {
	Pos Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rdfa: parse error at line %d: %v", e.Pos.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ProcessorWarning is a non-fatal diagnostic delivered to the processor
// graph: unrecognized prefix/term, invalid prefix-name start, a `_`
// prefix declaration, or a blank-node predicate (spec.md §7 categories
// 4-5). Parsing continues.
type ProcessorWarning struct {
	Pos     Pos
	Message string
}

func (w *ProcessorWarning) Error() string {
	return fmt.Sprintf("rdfa: warning at line %d: %s", w.Pos.Line, w.Message)
}

// ProcessorError is a non-fatal diagnostic for an unknown object kind at
// emission time (spec.md §7 category 6): the offending triple is dropped,
// parsing continues.
type ProcessorError struct {
	Pos     Pos
	Message string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("rdfa: error at line %d: %s", e.Pos.Line, e.Message)
}

// dcDescription is the predicate used for processor-graph diagnostic
// triples, per spec.md §7.
const dcDescription = "http://purl.org/dc/terms/description"

// lineCharPointer is the rdf:type object attached to a diagnostic triple
// that carries a line-number pointer, per spec.md §7.
const lineCharPointer = "http://www.w3.org/2009/pointers#LineCharPointer"

// warnf records a processor-graph warning and, if a processor-graph sink
// is registered, queues its pseudo-triples (spec.md §6.2: "Absence of a
// processor-graph sink silently discards warnings").
func (d *Decoder) warnf(format string, args ...interface{}) {
	d.warnProcessorRaw(&ProcessorWarning{Pos: d.pos(), Message: fmt.Sprintf(format, args...)})
}

func (d *Decoder) warnProcessor(ctx *context, format string, args ...interface{}) {
	d.warnf(format, args...)
}

func (d *Decoder) errorProcessor(format string, args ...interface{}) {
	pe := &ProcessorError{Pos: d.pos(), Message: fmt.Sprintf(format, args...)}
	d.procErrs = append(d.procErrs, pe)
	if d.processorSink == nil {
		return
	}
	bnode := d.newBlankNode()
	d.procQueue = append(d.procQueue,
		Triple{Subject: bnode, Predicate: dcDescription, Object: pe.Message, Kind: PlainLiteral, Pos: pe.Pos})
}

func (d *Decoder) warnProcessorRaw(w *ProcessorWarning) {
	d.procWarnings = append(d.procWarnings, w)
	if d.processorSink == nil {
		return
	}
	bnode := d.newBlankNode()
	d.procQueue = append(d.procQueue,
		Triple{Subject: bnode, Predicate: dcDescription, Object: w.Message, Kind: PlainLiteral, Pos: w.Pos})
	if w.Pos.Line > 0 {
		d.procQueue = append(d.procQueue,
			Triple{Subject: bnode, Predicate: rdfType, Object: lineCharPointer, Kind: IRI, Pos: w.Pos})
	}
}
