// Package rdf introduces data structures and functions for creating and
// working with RDF resources.
//
// The main use case is representing data coming from or going to a
// triple/quad-store via the SPARQL protocol.
// The package will not include graph traversing or querying functions, as
// this is much more efficently handled by a SPARQL query engine.
package rdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Exported errors.
var (
	ErrBlankNodeMissingID   = errors.New("blank node cannot have an empty ID")
	ErrIRIEmptyInput        = errors.New("empty IRI")
	ErrIRIInvalidCharacters = errors.New("IRI contains a disallowed character")
)

// DateFormat defines the string representation of xsd:DateTime values. You can override
// it if you need another layout.
var DateFormat = time.RFC3339

// The XML schema built-in datatypes (xsd), exported for convenience. See
// package xsd for the same constants under shorter names.
// https://dvcs.w3.org/hg/rdf/raw-file/default/rdf-concepts/index.html#xsd-datatypes
var (
	// Core types:
	XSDString  = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#string")
	XSDBoolean = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#boolean")
	XSDDecimal = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#decimal")
	XSDInteger = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#integer")

	// IEEE floating-point numbers:
	XSDDouble = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#double")
	XSDFloat  = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#float")

	// Time and date:
	XSDDate          = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#date")
	XSDTime          = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#time")
	XSDDateTime      = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#dateTime")
	XSDDateTimeStamp = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#dateTimeStamp")

	// Recurring and partial dates:
	XSDYear              = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#gYear")
	XSDMonth             = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#gMonth")
	XSDDay               = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#gDay")
	XSDYearMonth         = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#gYearMonth")
	XSDDuration          = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#Duration")
	XSDYearMonthDuration = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#yearMonthDuration")
	XSDDayTimeDuration   = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#dayTimeDuration")

	// Limited-range integer numbers
	XSDByte = NewIRIUnsafe("http://www.w3.org/2001/XMLSchema#byte")
)

// Internal, unexported aliases for the datatypes the NT/TTL/RDF-XML
// lexers and decoders compare against directly.
var (
	xsdString     = XSDString
	xsdBoolean    = XSDBoolean
	xsdDecimal    = XSDDecimal
	xsdInteger    = XSDInteger
	xsdDouble     = XSDDouble
	xsdFloat      = XSDFloat
	xsdDateTime   = XSDDateTime
	xsdByte       = XSDByte
	rdfLangString = NewIRIUnsafe(rdfNS + "langString")
)

// Term is the interface for the RDF term types: blank node, IRI and literal.
type Term interface {
	// String returns the string representation of a RDF term, in a
	// form suitable for insertion into a SPARQL query or N-Triples document.
	String() string

	// Eq tests for equality with another RDF term.
	Eq(other Term) bool

	// Type returns the RDF term type.
	Type() termType

	// Serialize renders the term the way it appears as a triple component
	// in the given serialization format.
	Serialize(f Format) string
}

// Subject, Predicate and Object are aliases for Term, used where the role
// of a term in a Triple/Quad is otherwise ambiguous from context.
type (
	Subject   = Term
	Predicate = Term
	Object    = Term
)

// Context is the graph a Quad's statement belongs to: an IRI or a blank
// node, never a literal.
type Context = Term

type termType int

// Exported RDF term types.
const (
	TermBlank termType = iota
	TermIRI
	TermLiteral
)

// TermsEqual reports whether a and b are the same RDF term. A nil operand
// is never equal to anything, including another nil.
func TermsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Eq(b)
}

// QuadsEqual reports whether a and b have the same subject, predicate,
// object and graph context. A nil Ctx on either side is only equal to a
// nil Ctx on the other.
func QuadsEqual(a, b Quad) bool {
	if (a.Ctx == nil) != (b.Ctx == nil) {
		return false
	}
	if a.Ctx != nil && !TermsEqual(a.Ctx, b.Ctx) {
		return false
	}
	return TermsEqual(a.Subj, b.Subj) && TermsEqual(a.Pred, b.Pred) && TermsEqual(a.Obj, b.Obj)
}

// Blank represents a RDF blank node; an unqualified identifier scoped to a
// single document or graph.
type Blank struct {
	id string
}

// NewBlank returns a new blank node with a given ID. It returns
// an error only if the supplied ID is blank.
func NewBlank(id string) (Blank, error) {
	if len(strings.TrimSpace(id)) == 0 {
		return Blank{}, ErrBlankNodeMissingID
	}
	return Blank{id: "_:" + id}, nil
}

// NewBlankUnsafe is like NewBlank, except it doesn't fail on invalid input.
func NewBlankUnsafe(id string) Blank {
	return Blank{id: "_:" + id}
}

// ID returns the blank node's label, without the "_:" prefix.
func (b Blank) ID() string { return strings.TrimPrefix(b.id, "_:") }

// String returns the string representation of a blank node.
func (b Blank) String() string {
	return b.id
}

// Eq tests a blank node's equality with other RDF terms.
func (b Blank) Eq(other Term) bool {
	o, ok := other.(Blank)
	return ok && o.id == b.id
}

// Type returns the termType of a blank node.
func (b Blank) Type() termType {
	return TermBlank
}

// Serialize renders the blank node the way it appears in f.
func (b Blank) Serialize(f Format) string {
	return b.String()
}

// IRI represents a RDF IRI resource (formerly called a URI reference), which
// may consist of non-latin characters as well as the usual URI ones.
type IRI struct {
	str string
}

// NewIRI returns a new IRI, or an error if it's not valid.
func NewIRI(iri string) (IRI, error) {
	if len(strings.TrimSpace(iri)) == 0 {
		return IRI{}, ErrIRIEmptyInput
	}
	for _, r := range iri {
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\', ' ', '\n', '\t', '\r':
			return IRI{}, fmt.Errorf("disallowed character: %q", r)
		}
	}
	return IRI{str: iri}, nil
}

// NewIRIUnsafe returns a new IRI, with no validation performed on input.
func NewIRIUnsafe(iri string) IRI {
	return IRI{str: iri}
}

// Value returns the bare IRI string, without the surrounding angle
// brackets String uses.
func (u IRI) Value() string { return u.str }

// String returns the string representation of an IRI.
func (u IRI) String() string {
	return "<" + u.str + ">"
}

// Eq tests an IRI's equality with other RDF terms.
func (u IRI) Eq(other Term) bool {
	o, ok := other.(IRI)
	return ok && o.str == u.str
}

// Type returns the termType of an IRI.
func (u IRI) Type() termType {
	return TermIRI
}

// Serialize renders the IRI the way it appears in f.
func (u IRI) Serialize(f Format) string {
	if f == formatInternal {
		return u.str
	}
	return u.String()
}

// Split breaks the IRI into a namespace and a local name, splitting after
// the last '#', or else after the last '/'. It returns ("", "") when
// neither separator is present.
func (u IRI) Split() (namespace, local string) {
	if i := strings.LastIndexByte(u.str, '#'); i >= 0 {
		return u.str[:i+1], u.str[i+1:]
	}
	if i := strings.LastIndexByte(u.str, '/'); i >= 0 {
		return u.str[:i+1], u.str[i+1:]
	}
	return "", ""
}

// Literal represents a RDF literal; a string value with a datatype and,
// optionally, a language tag.
//
// So called untyped literals are given the datatype xsd:string, so in
// practice they are not untyped anymore. This is according to the RDF 1.1
// spec:
// http://www.w3.org/TR/2014/REC-rdf11-concepts-20140225/#section-Graph-Literal
type Literal struct {
	str  string
	lang string

	// DataType is the datatype IRI of the Literal.
	DataType IRI
}

// Value returns the literal's lexical string value.
func (l Literal) Value() string { return l.str }

// Lang returns the literal's language tag, or "" if it has none.
func (l Literal) Lang() string { return l.lang }

// String returns the string representation of a Literal.
func (l Literal) String() string {
	return l.Serialize(FormatNT)
}

// Eq tests a Literal's equality with other RDF terms.
func (l Literal) Eq(other Term) bool {
	o, ok := other.(Literal)
	return ok && o.str == l.str && o.lang == l.lang && o.DataType.str == l.DataType.str
}

// Type returns the termType of a Literal.
func (l Literal) Type() termType {
	return TermLiteral
}

// Serialize renders the literal the way it appears in f.
func (l Literal) Serialize(f Format) string {
	escaped := escapeNTString(l.str)
	if f == formatInternal {
		return escaped
	}
	if l.lang != "" {
		return "\"" + escaped + "\"@" + l.lang
	}
	switch l.DataType.str {
	case xsdString.str, "":
		return "\"" + escaped + "\""
	default:
		return "\"" + escaped + "\"^^" + l.DataType.String()
	}
}

func escapeNTString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewLiteral returns a new Literal, or an error on invalid input. It tries
// to map the given Go value to a corresponding xsd datatype.
//
// If you need a custom datatype, construct the Literal directly with
// NewTypedLiteral.
func NewLiteral(v interface{}) (Literal, error) {
	switch t := v.(type) {
	case bool:
		return Literal{str: strconv.FormatBool(t), DataType: xsdBoolean}, nil
	case int:
		return Literal{str: strconv.Itoa(t), DataType: xsdInteger}, nil
	case int32:
		return Literal{str: strconv.FormatInt(int64(t), 10), DataType: xsdInteger}, nil
	case int64:
		return Literal{str: strconv.FormatInt(t, 10), DataType: xsdInteger}, nil
	case float32:
		return Literal{str: strconv.FormatFloat(float64(t), 'g', -1, 64), DataType: xsdDouble}, nil
	case float64:
		return Literal{str: strconv.FormatFloat(t, 'g', -1, 64), DataType: xsdDouble}, nil
	case string:
		return Literal{str: t, DataType: xsdString}, nil
	case []byte:
		return Literal{str: string(t), DataType: xsdByte}, nil
	case time.Time:
		return Literal{str: t.Format(DateFormat), DataType: xsdDateTime}, nil
	default:
		return Literal{}, fmt.Errorf("cannot infer XSD datatype from %#v", t)
	}
}

// NewLiteralUnsafe returns a new literal without performing any validation
// on input. Any input on which the type cannot be inferred is forced to
// xsd:string.
func NewLiteralUnsafe(v interface{}) Literal {
	l, err := NewLiteral(v)
	if err != nil {
		l, _ = NewLiteral(fmt.Sprintf("%v", v))
	}
	return l
}

// NewTypedLiteral creates a RDF literal with an explicit datatype IRI,
// performing no validation that str actually conforms to it.
func NewTypedLiteral(str string, datatype IRI) Literal {
	return Literal{str: str, DataType: datatype}
}

// NewLangLiteral creates a RDF literal with a given language tag. The tag
// is checked against a permissive approximation of BCP 47 (a primary
// subtag followed by at most one '-'-separated region/variant subtag).
func NewLangLiteral(v, lang string) (Literal, error) {
	if err := validateLangTag(lang); err != nil {
		return Literal{}, err
	}
	return Literal{str: v, lang: lang, DataType: xsdString}, nil
}

// NewLangLiteralUnsafe is like NewLangLiteral, but performs no validation.
func NewLangLiteralUnsafe(v, lang string) Literal {
	return Literal{str: v, lang: lang, DataType: xsdString}
}

func validateLangTag(tag string) error {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, "-")
	if len(parts) > 2 {
		return errors.New("invalid language tag: only one '-' allowed")
	}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return errors.New("invalid language tag: must start with a letter")
			}
			return errors.New("invalid language tag: trailing '-' disallowed")
		}
		for j, r := range p {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case j > 0 && r >= '0' && r <= '9':
			default:
				return fmt.Errorf("invalid language tag: unexpected character: %q", r)
			}
		}
	}
	return nil
}

// Triple represents a RDF triple.
type Triple struct {
	Subj, Pred, Obj Term
}

// Serialize renders t as a single statement line in the given format.
func (t Triple) Serialize(f Format) string {
	switch f {
	case FormatNQ:
		f = FormatNT
	}
	return t.Subj.Serialize(f) + " " + t.Pred.Serialize(f) + " " + t.Obj.Serialize(f) + " .\n"
}

// Quad represents a RDF quad; that is, a triple within a named graph.
type Quad struct {
	Triple
	Ctx Context
}

// Serialize renders q as a single statement line in the given format.
func (q Quad) Serialize(f Format) string {
	line := q.Subj.Serialize(FormatNT) + " " + q.Pred.Serialize(FormatNT) + " " + q.Obj.Serialize(FormatNT)
	if q.Ctx != nil {
		if _, isDefault := q.Ctx.(Blank); !isDefault || q.Ctx.String() != "_:defaultGraph" {
			line += " " + q.Ctx.Serialize(FormatNT)
		}
	}
	return line + " .\n"
}
