package rdfa

import (
	"encoding/xml"
	"strings"
)

// appendStartTag serializes elem's opening tag into ctx's own XML literal
// buffer. xmlns declarations are fabricated for any namespace the element
// uses that is not already declared somewhere on its own attribute list,
// and an xml:lang is injected when the enclosing context carries a
// language the element itself does not override -- both per spec.md §4.6.
// Grounded on original_source/librdfa/rdfa.c's start_element, which builds
// the new element's own xml_literal buffer starting from its own start tag.
func appendStartTag(ctx *context, elem xml.StartElement, inheritedLang *string, declaredLang bool) {
	ctx.xmlLiteral.WriteByte('<')
	ctx.xmlLiteral.WriteString(qname(elem.Name))

	seen := map[string]bool{}
	for _, a := range elem.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			seen[a.Value] = true
		}
	}
	if elem.Name.Space != "" && !seen[elem.Name.Space] {
		ctx.xmlLiteral.WriteString(` xmlns="`)
		ctx.xmlLiteral.WriteString(escapeXMLAttr(elem.Name.Space))
		ctx.xmlLiteral.WriteByte('"')
	}

	for _, a := range elem.Attr {
		ctx.xmlLiteral.WriteByte(' ')
		ctx.xmlLiteral.WriteString(qname(a.Name))
		ctx.xmlLiteral.WriteString(`="`)
		ctx.xmlLiteral.WriteString(escapeXMLAttr(a.Value))
		ctx.xmlLiteral.WriteByte('"')
	}

	if !declaredLang && inheritedLang != nil {
		ctx.xmlLiteral.WriteString(` xml:lang="`)
		ctx.xmlLiteral.WriteString(escapeXMLAttr(*inheritedLang))
		ctx.xmlLiteral.WriteByte('"')
	}

	ctx.xmlLiteral.WriteByte('>')
}

func appendEndTag(ctx *context, name xml.Name) {
	ctx.xmlLiteral.WriteString("</")
	ctx.xmlLiteral.WriteString(qname(name))
	ctx.xmlLiteral.WriteByte('>')
}

// qname renders n's local name without a prefix: encoding/xml resolves an
// element's Name.Space to the namespace URI itself (the original prefix
// string, if any, isn't retained on the token), so there is no prefix left
// to reconstruct here. The namespace is instead carried by the xmlns
// declaration appendStartTag fabricates for it.
func qname(n xml.Name) string {
	return n.Local
}

func escapeXMLText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeXMLAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// appendCharData implements spec.md §4.8's "Characters event": the bytes
// are appended to the top frame's plain-literal and XML-literal buffers
// verbatim (XML-escaped for the latter).
func appendCharData(ctx *context, data []byte) {
	ctx.plainLiteral.Write(data)
	ctx.xmlLiteral.WriteString(escapeXMLText(string(data)))
}

// literalResult is the outcome of spec.md §4.6's property-value
// determination for one closing element.
type literalResult struct {
	Value    string
	Kind     ObjectKind
	Datatype string
}

// computePropertyValue runs the spec.md §4.6 table, given the fully
// accumulated plain/XML literal buffers of the closing element.
func computePropertyValue(ctx *context, a attrs, hadChildElements bool, resourceIRI *string) literalResult {
	switch {
	case a.Content != nil:
		return literalResult{Value: *a.Content, Kind: PlainLiteral}
	case a.Datatype != nil && *a.Datatype == rdfNS+"XMLLiteral":
		return literalResult{Value: ctx.xmlLiteral.String(), Kind: XMLLiteral}
	case a.Datatype != nil && *a.Datatype != "":
		v := ctx.plainLiteral.String()
		if a.Content != nil {
			v = *a.Content
		}
		return literalResult{Value: v, Kind: TypedLiteral, Datatype: *a.Datatype}
	case hadChildElements:
		return literalResult{Value: ctx.xmlLiteral.String(), Kind: XMLLiteral}
	case ctx.rdfaVersion == Version11 && !a.HasRel && !a.HasRev && a.Content == nil && resourceIRI != nil:
		return literalResult{Value: *resourceIRI, Kind: IRI}
	default:
		return literalResult{Value: ctx.plainLiteral.String(), Kind: PlainLiteral}
	}
}
