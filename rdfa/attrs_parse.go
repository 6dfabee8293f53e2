package rdfa

import (
	"encoding/xml"
	"strings"
)

// parseAttrs runs spec.md §4.8's "Start event" attribute handling for one
// element: it first folds @vocab, @prefix and any xmlns:* declarations into
// child's environment (so the element's own CURIEs can use them), then
// resolves every RDFa-bearing attribute against that environment. Grounded
// on original_source/librdfa/rdfa.c's start_element, which processes
// @vocab/@prefix before the subject-bearing attributes for the same reason.
func (d *Decoder) parseAttrs(child, parent *context, elem xml.StartElement) attrs {
	var a attrs

	for _, at := range elem.Attr {
		switch {
		case at.Name.Local == "vocab" && at.Name.Space == "":
			a.HasVocab = true
			v := resolveIRI(child.base, at.Value)
			child.defaultVocabulary = &v

		case at.Name.Local == "prefix" && at.Name.Space == "":
			a.HasPrefix = true
			d.applyPrefixAttr(child, at.Value)

		case at.Name.Space == "xmlns":
			a.HasPrefix = true
			d.setPrefix(child, at.Name.Local, at.Value)
			if child.depth == 1 {
				d.emitNamespaceTriple(at.Name.Local, at.Value)
			}

		case at.Name.Local == "xmlns" && at.Name.Space == "":
			if child.depth == 1 {
				d.emitNamespaceTriple("", at.Value)
			}
		}
	}

	var hasXMLLang, hasLang bool
	var xmlLangVal, langVal string
	for _, at := range elem.Attr {
		switch {
		case at.Name.Local == "lang" && at.Name.Space == "xml":
			hasXMLLang, xmlLangVal = true, at.Value
		case at.Name.Local == "lang" && at.Name.Space == "":
			hasLang, langVal = true, at.Value
		}
	}
	switch {
	case hasXMLLang:
		child.language = &xmlLangVal
		a.hasLangAttr = true
	case hasLang:
		child.language = &langVal
		a.hasLangAttr = true
	}

	for _, at := range elem.Attr {
		raw := at.Value
		switch {
		case at.Name.Local == "about" && at.Name.Space == "":
			a.About = d.resolveCurie(child, raw, modeAboutResource)
		case at.Name.Local == "resource" && at.Name.Space == "":
			a.Resource = d.resolveCurie(child, raw, modeAboutResource)
		case at.Name.Local == "href" && at.Name.Space == "":
			a.Href = d.resolveCurie(child, raw, modeHrefSrc)
		case at.Name.Local == "src" && at.Name.Space == "":
			a.Src = d.resolveCurie(child, raw, modeHrefSrc)
		case at.Name.Local == "typeof" && at.Name.Space == "":
			a.TypeOf = d.resolveCurieList(child, raw, modeTypeOrDatatype)
		case at.Name.Local == "datatype" && at.Name.Space == "":
			if raw != "" {
				a.Datatype = d.resolveCurie(child, raw, modeTypeOrDatatype)
			}
		case at.Name.Local == "property" && at.Name.Space == "":
			a.Property = d.resolveCurieList(child, raw, modeProperty)
		case at.Name.Local == "rel" && at.Name.Space == "":
			a.HasRel = true
			a.Rel = d.resolveCurieList(child, raw, modeRelRev)
		case at.Name.Local == "rev" && at.Name.Space == "":
			a.HasRev = true
			a.Rev = d.resolveCurieList(child, raw, modeRelRev)
		case at.Name.Local == "content" && at.Name.Space == "":
			a.Content = &raw
		case at.Name.Local == "inlist" && at.Name.Space == "":
			a.HasInlist = true
		}
	}

	return a
}

// applyPrefixAttr parses RDFa 1.1's @prefix syntax: whitespace-separated
// "prefix: iri" pairs, per spec.md §4.3.
func (d *Decoder) applyPrefixAttr(ctx *context, raw string) {
	fields := strings.Fields(raw)
	for i := 0; i+1 < len(fields); i += 2 {
		name := strings.TrimSuffix(fields[i], ":")
		if name == "" {
			d.warnf("invalid prefix name %q in @prefix", fields[i])
			continue
		}
		if strings.EqualFold(name, "_") {
			d.warnf("prefix \"_\" is reserved for blank nodes")
			continue
		}
		if !isValidPrefixStart(name) {
			// Still recorded, per spec.md §4.3: a prefix whose first byte
			// is outside the Name-start-char set only warrants a warning.
			d.warnf("invalid prefix name %q in @prefix", fields[i])
		}
		d.setPrefix(ctx, name, fields[i+1])
	}
}

func isValidPrefixStart(name string) bool {
	r := rune(name[0])
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (d *Decoder) setPrefix(ctx *context, name, iri string) {
	if ctx.prefixMap.len() >= d.cfg.MaxURIMappings {
		d.warnf("prefix mapping limit reached; dropping declaration of %q", name)
		return
	}
	ctx.prefixMap.set(strings.ToLower(name), iri)
}

// emitNamespaceTriple queues a NamespacePrefix pseudo-triple for the
// processor graph, per spec.md §6.2's "namespace pseudo-triples at root
// only". It is gated on a processor-graph sink being registered, like every
// other processor-graph diagnostic (errors.go's warnProcessorRaw).
func (d *Decoder) emitNamespaceTriple(prefix, uri string) {
	if d.processorSink == nil {
		return
	}
	d.procQueue = append(d.procQueue, Triple{
		Subject:   "@prefix",
		Predicate: prefix,
		Object:    uri,
		Kind:      NamespacePrefix,
	})
}
