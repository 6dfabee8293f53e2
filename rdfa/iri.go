package rdfa

import "strings"

// stripToBase returns the substring of iri up to but excluding the first
// '?' or, failing that, the first '#'. If neither appears, it returns iri
// unchanged.
func stripToBase(iri string) string {
	if i := strings.IndexByte(iri, '?'); i >= 0 {
		return iri[:i]
	}
	if i := strings.IndexByte(iri, '#'); i >= 0 {
		return iri[:i]
	}
	return iri
}

// resolveIRI implements RFC 3986 §5 reference resolution, as spelled out in
// spec.md §4.1: an empty ref returns base; a ref containing a scheme colon
// is absolute; a ref starting with '#' replaces base's fragment (keeping its
// query); a ref starting with '?' replaces base's query and fragment; a ref
// starting with '/' replaces the path from the authority; otherwise the
// last path segment of base is replaced by ref. Dot-segment removal
// (RFC 3986 §5.2.4) is applied to the path of the result whenever both base
// and the result carry a scheme authority ("://").
//
// This generalizes the teacher's rdfXMLDecoder.resolve (rdfxml.go), which
// performs the same cases but skips dot-segment removal.
func resolveIRI(base, ref string) string {
	if ref == "" {
		return base
	}
	if isAbsolute(ref) {
		return ref
	}
	if base == "" {
		return ref
	}

	var resolved string
	switch ref[0] {
	case '#':
		resolved = base
		if i := strings.IndexByte(base, '#'); i >= 0 {
			resolved = base[:i]
		}
		resolved += ref
	case '?':
		resolved = stripToBase(base) + ref
	case '/':
		resolved = authorityOf(base) + ref
	default:
		resolved = replaceLastSegment(base, ref)
	}

	if hasAuthority(base) && hasAuthority(resolved) {
		resolved = removeDotSegmentsInPath(resolved)
	}
	return resolved
}

// isAbsolute reports whether ref begins with a URI scheme, i.e. contains a
// ':' before any '/', '?' or '#'.
func isAbsolute(ref string) bool {
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case ':':
			return i > 0
		case '/', '?', '#':
			return false
		}
	}
	return false
}

func hasAuthority(iri string) bool {
	return strings.Contains(iri, "://")
}

// authorityOf returns scheme://authority of iri (everything up to, but not
// including, the path).
func authorityOf(iri string) string {
	i := strings.Index(iri, "://")
	if i < 0 {
		return ""
	}
	rest := iri[i+3:]
	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		return iri
	}
	return iri[:i+3+end]
}

// replaceLastSegment replaces everything after the last '/' in base's path
// with ref, preserving base's scheme/authority and dropping its query and
// fragment.
func replaceLastSegment(base, ref string) string {
	b := stripToBase(base)
	i := strings.LastIndexByte(b, '/')
	if i < 0 {
		return ref
	}
	auth := authorityOf(b)
	if i < len(auth) {
		// No path segments beyond the authority; keep the authority and
		// append ref as the first path segment.
		return b + "/" + ref
	}
	return b[:i+1] + ref
}

// removeDotSegmentsInPath applies the five cases of RFC 3986 §5.2.4 to the
// path portion of iri, leaving scheme, authority and any query untouched.
func removeDotSegmentsInPath(iri string) string {
	auth := authorityOf(iri)
	rest := iri[len(auth):]

	var query string
	if q := strings.IndexByte(rest, '?'); q >= 0 {
		query = rest[q:]
		rest = rest[:q]
	}

	rest = removeDotSegments(rest)
	return auth + rest + query
}

// removeDotSegments is the RFC 3986 §5.2.4 algorithm restricted to a path
// string (no scheme/authority/query).
func removeDotSegments(path string) string {
	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			// Move the first path segment (including a leading '/', if
			// any) from in to out.
			i := 1
			if in[0] != '/' {
				i = 0
			}
			j := strings.IndexByte(in[i:], '/')
			if j < 0 {
				out = append(out, in)
				in = ""
			} else {
				out = append(out, in[:i+j])
				in = in[i+j:]
			}
		}
	}
	return strings.Join(out, "")
}
