package rdfa

// Initial prefix and term mappings seeded into the root frame before
// parsing starts, per spec.md §4.3 and §4.8. Grounded directly on
// original_source/librdfa/context.c's rdfa_setup_initial_context, which
// hard-codes the RDFa 1.1 Initial Context and the XHTML1 reserved-word
// term set.
var rdfa11Prefixes = map[string]string{
	"grddl":   "http://www.w3.org/2003/g/data-view#",
	"ma":      "http://www.w3.org/ns/ma-ont#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"rdf":     rdfNS,
	"rdfa":    "http://www.w3.org/ns/rdfa#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"rif":     "http://www.w3.org/2007/rif#",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"skosxl":  "http://www.w3.org/2008/05/skos-xl#",
	"wdr":     "http://www.w3.org/2007/05/powder#",
	"void":    "http://rdfs.org/ns/void#",
	"wdrs":    "http://www.w3.org/2007/05/powder-s#",
	"xhv":     XHTMLVocab,
	"xml":     "http://www.w3.org/XML/1998/namespace",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
	"cc":      "http://creativecommons.org/ns#",
	"ctag":    "http://commontag.org/ns#",
	"dc":      "http://purl.org/dc/terms/",
	"dcterms": "http://purl.org/dc/terms/",
	"foaf":    "http://xmlns.com/foaf/0.1/",
	"gr":      "http://purl.org/goodrelations/v1#",
	"ical":    "http://www.w3.org/2002/12/cal/icaltzd#",
	"og":      "http://ogp.me/ns#",
	"rev":     "http://purl.org/stuff/rev#",
	"sioc":    "http://rdfs.org/sioc/ns#",
	"v":       "http://rdf.data-vocabulary.org/#",
	"vcard":   "http://www.w3.org/2006/vcard/ns#",
	"schema":  "http://schema.org/",
}

var rdfa11Terms = map[string]string{
	"describedby": "http://www.w3.org/2007/05/powder-s#describedby",
	"license":     XHTMLVocab + "license",
	"role":        XHTMLVocab + "role",
}

// xhtml1Terms is both the XHTML1 term map seed and the reserved @rel/@rev
// word set consulted case-insensitively by spec.md §4.2 step 5.
var xhtml1Terms = map[string]string{
	"alternate":   XHTMLVocab + "alternate",
	"appendix":    XHTMLVocab + "appendix",
	"cite":        XHTMLVocab + "cite",
	"bookmark":    XHTMLVocab + "bookmark",
	"contents":    XHTMLVocab + "contents",
	"chapter":     XHTMLVocab + "chapter",
	"copyright":   XHTMLVocab + "copyright",
	"first":       XHTMLVocab + "first",
	"glossary":    XHTMLVocab + "glossary",
	"help":        XHTMLVocab + "help",
	"icon":        XHTMLVocab + "icon",
	"index":       XHTMLVocab + "index",
	"last":        XHTMLVocab + "last",
	"license":     XHTMLVocab + "license",
	"meta":        XHTMLVocab + "meta",
	"next":        XHTMLVocab + "next",
	"prev":        XHTMLVocab + "prev",
	"previous":    XHTMLVocab + "previous",
	"section":     XHTMLVocab + "section",
	"start":       XHTMLVocab + "start",
	"stylesheet":  XHTMLVocab + "stylesheet",
	"subsection":  XHTMLVocab + "subsection",
	"top":         XHTMLVocab + "top",
	"up":          XHTMLVocab + "up",
	"p3pv1":       XHTMLVocab + "p3pv1",
	"role":        XHTMLVocab + "role",
}

// seedInitialContext installs the fixed RDFa 1.1 prefix set and, where
// applicable, the XHTML1/RDFa-1.1 term sets into the root frame.
func seedInitialContext(root *context) {
	if root.rdfaVersion == Version11 {
		for p, uri := range rdfa11Prefixes {
			root.prefixMap.set(p, uri)
		}
		for t, uri := range rdfa11Terms {
			root.termMap.set(t, uri)
		}
	}
	if root.hostLanguage == HostXHTML1 {
		for t, uri := range xhtml1Terms {
			root.termMap.set(t, uri)
		}
	}
}
