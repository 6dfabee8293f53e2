package rdfa

import (
	"bufio"
	"io"
	"regexp"
)

// MaxSniffBytes bounds how much of the leading input spec.md §4.8's
// base-IRI sniffing pass will examine before giving up.
const MaxSniffBytes = 131072

var (
	rgxpRDFa10Doctype = regexp.MustCompile(`-//W3C//DTD XHTML\+RDFa 1\.0//EN`)
	rgxpRDFa11Doctype = regexp.MustCompile(`-//W3C//DTD XHTML\+RDFa 1\.1//EN`)
	rgxpHTMLOpener    = regexp.MustCompile(`(?i)<html[\s>]`)
	rgxpBaseHref      = regexp.MustCompile(`(?i)<base[^>]+href\s*=\s*["']([^"']*)["']`)
	rgxpHeadClose     = regexp.MustCompile(`(?i)</head`)
	rgxpVersionAttr   = regexp.MustCompile(`RDFa\s+(1\.0|1\.1)`)
)

// sniffResult captures what the leading-bytes scan discovered.
type sniffResult struct {
	host    HostLanguage
	version Version
	base    string // "" if no <base href> was found
}

// sniff implements spec.md §4.8's "Base-IRI sniffing" paragraph: it peeks
// up to MaxSniffBytes of r for the RDFa 1.0/1.1 XHTML DOCTYPE public
// identifiers, an `<html` opener, and a `<base href="...">` inside
// `<head>`.
//
// It returns a bufio.Reader that still has the peeked bytes available, so
// the caller's encoding/xml.Decoder sees the full document from the start.
func sniff(r io.Reader) (*bufio.Reader, sniffResult) {
	br := bufio.NewReaderSize(r, MaxSniffBytes)
	peek, _ := br.Peek(MaxSniffBytes)

	res := sniffResult{host: HostXML1, version: Version11}
	switch {
	case rgxpRDFa10Doctype.Match(peek):
		res.host, res.version = HostXHTML1, Version10
	case rgxpRDFa11Doctype.Match(peek):
		res.host, res.version = HostXHTML1, Version11
	case rgxpHTMLOpener.Match(peek):
		res.host = HostHTML
	}

	head := peek
	if loc := rgxpHeadClose.FindIndex(peek); loc != nil {
		head = peek[:loc[0]]
	}
	if m := rgxpBaseHref.FindSubmatch(head); m != nil {
		res.base = string(m[1])
	}

	return br, res
}

// detectVersionUpgrade implements spec.md §9's "Version auto-upgrade":
// a `version="...RDFa 1.x..."` attribute on any element may upgrade the
// RDFa version mid-document; already-processed elements do not re-run.
func detectVersionUpgrade(value string) (Version, bool) {
	m := rgxpVersionAttr.FindStringSubmatch(value)
	if m == nil {
		return VersionAuto, false
	}
	if m[1] == "1.0" {
		return Version10, true
	}
	return Version11, true
}
