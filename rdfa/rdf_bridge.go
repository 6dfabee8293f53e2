package rdfa

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"
)

// ToRDF converts t into a rdf.Triple for use with rdf.TripleEncoder or
// rdf.TripleDecoder-compatible tooling. It fails for NamespacePrefix-kind
// rows (processor-graph pseudo-triples, not real RDF statements) and for
// any row whose predicate is a blank node -- a case emitTriple already
// refuses to queue, kept here as a defensive second check for callers that
// build a Triple by hand instead of through the Decoder.
func (t Triple) ToRDF() (rdf.Triple, error) {
	if t.Kind == NamespacePrefix {
		return rdf.Triple{}, fmt.Errorf("rdfa: %q is a namespace declaration, not a triple", t.Predicate)
	}
	if strings.HasPrefix(t.Predicate, "_:") {
		return rdf.Triple{}, fmt.Errorf("rdfa: predicate %q is a blank node", t.Predicate)
	}

	subj, err := termToRDF(t.Subject)
	if err != nil {
		return rdf.Triple{}, err
	}
	pred, err := termToRDF(t.Predicate)
	if err != nil {
		return rdf.Triple{}, err
	}

	var obj rdf.Term
	switch t.Kind {
	case IRI:
		obj, err = termToRDF(t.Object)
	case XMLLiteral:
		obj = rdf.NewTypedLiteral(t.Object, rdf.NewIRIUnsafe(rdfNS+"XMLLiteral"))
	case TypedLiteral:
		obj = rdf.NewTypedLiteral(t.Object, rdf.NewIRIUnsafe(t.Datatype))
	default: // PlainLiteral
		if t.Lang != "" {
			obj, err = rdf.NewLangLiteral(t.Object, t.Lang)
		} else {
			obj, err = rdf.NewLiteral(t.Object)
		}
	}
	if err != nil {
		return rdf.Triple{}, err
	}

	return rdf.Triple{Subj: subj, Pred: pred, Obj: obj}, nil
}

func termToRDF(s string) (rdf.Term, error) {
	if strings.HasPrefix(s, "_:") {
		return rdf.NewBlank(s[2:])
	}
	return rdf.NewIRI(s)
}
