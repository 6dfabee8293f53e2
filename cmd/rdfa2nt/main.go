// Command rdfa2nt extracts RDFa triples from an XHTML/HTML/XML document and
// writes them as N-Triples.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/knakk/rdf"
	"github.com/knakk/rdf/rdfa"
)

func main() {
	base := flag.String("base", "", "base IRI of the document (required)")
	version := flag.String("rdfa-version", "auto", "RDFa version hint: auto, 1.0 or 1.1")
	host := flag.String("host", "auto", "host language hint: auto, xml, xhtml1 or html")
	warnings := flag.Bool("warnings", false, "print processor-graph warnings to stderr")
	flag.Parse()

	if *base == "" {
		fmt.Fprintln(os.Stderr, "rdfa2nt: -base is required")
		flag.Usage()
		os.Exit(2)
	}

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("rdfa2nt: %v", err)
		}
		defer f.Close()
		r = f
	}

	baseIRI, err := rdf.NewIRI(*base)
	if err != nil {
		log.Fatalf("rdfa2nt: invalid -base: %v", err)
	}

	cfg := rdfa.Config{
		Base:              baseIRI,
		RDFaVersionHint:   parseVersion(*version),
		HostLanguageHint:  parseHost(*host),
	}

	dec, err := rdfa.NewDecoder(r, cfg)
	if err != nil {
		log.Fatalf("rdfa2nt: %v", err)
	}

	enc := rdf.NewTripleEncoder(os.Stdout, rdf.FormatNT)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("rdfa2nt: %v", err)
		}
		rt, err := t.ToRDF()
		if err != nil {
			continue
		}
		if err := enc.Encode(rt); err != nil {
			log.Fatalf("rdfa2nt: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("rdfa2nt: %v", err)
	}

	// dec.Decode() above has already triggered the single buffered walk
	// (ensureRun), so outProcQueue is fully populated: draining it here,
	// after the main loop, never races with it.
	if *warnings {
		for {
			t, err := dec.DecodeProcessor()
			if err != nil {
				break
			}
			fmt.Fprintln(os.Stderr, t)
		}
	}
}

func parseVersion(s string) rdfa.Version {
	switch s {
	case "1.0":
		return rdfa.Version10
	case "1.1":
		return rdfa.Version11
	default:
		return rdfa.VersionAuto
	}
}

func parseHost(s string) rdfa.HostLanguage {
	switch s {
	case "xml":
		return rdfa.HostXML1
	case "xhtml1":
		return rdfa.HostXHTML1
	case "html":
		return rdfa.HostHTML
	default:
		return rdfa.HostAuto
	}
}
