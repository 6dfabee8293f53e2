package rdfa

import "testing"

func newTestContext(version Version, host HostLanguage) *context {
	ctx := &context{
		base:         "http://example.org/",
		hostLanguage: host,
		rdfaVersion:  version,
		prefixMap:    newOrderedMap(),
		termMap:      newOrderedMap(),
	}
	ctx.prefixMap.set("foaf", "http://xmlns.com/foaf/0.1/")
	return ctx
}

// TestResolveCurieBareAbsoluteIRI guards the fix described in DESIGN.md:
// a bare absolute IRI in @property/@typeof/@rel must resolve to itself,
// not be misparsed as an unresolvable "http:"-prefixed CURIE and dropped.
func TestResolveCurieBareAbsoluteIRI(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	tests := []struct {
		raw  string
		mode attrMode
	}{
		{"http://xmlns.com/foaf/0.1/name", modeProperty},
		{"http://schema.org/Thing", modeTypeOrDatatype},
		{"http://xmlns.com/foaf/0.1/knows", modeRelRev},
	}
	for _, tt := range tests {
		got := d.resolveCurie(ctx, tt.raw, tt.mode)
		if got == nil || *got != tt.raw {
			t.Errorf("resolveCurie(%q, mode=%v) = %v; want %q", tt.raw, tt.mode, got, tt.raw)
		}
	}
}

func TestResolveCuriePrefixedValue(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	got := d.resolveCurie(ctx, "foaf:name", modeProperty)
	want := "http://xmlns.com/foaf/0.1/name"
	if got == nil || *got != want {
		t.Errorf("resolveCurie(%q) = %v; want %q", "foaf:name", got, want)
	}
}

func TestResolveCurieSafeCurieUnknownPrefixDropped(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	got := d.resolveCurie(ctx, "[bogus:x]", modeAboutResource)
	if got != nil {
		t.Errorf("resolveCurie([bogus:x]) = %v; want nil", got)
	}
}

func TestResolveCurieAnonymousBlank(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	got := d.resolveCurie(ctx, "[_:]", modeAboutResource)
	if got == nil || !hasBlankPrefix(*got) {
		t.Errorf("resolveCurie([_:]) = %v; want a blank-node label", got)
	}
	// A second reference to the same anonymous blank node must resolve to
	// the same label.
	got2 := d.resolveCurie(ctx, "_:", modeAboutResource)
	if got2 == nil || *got2 != *got {
		t.Errorf("resolveCurie(_:) = %v; want same label as [_:] (%v)", got2, got)
	}
}

func TestResolveCurieNamedBlank(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	got := d.resolveCurie(ctx, "[_:x]", modeAboutResource)
	want := "_:x"
	if got == nil || *got != want {
		t.Errorf("resolveCurie([_:x]) = %v; want %q", got, want)
	}
}

func TestResolveCurieDefaultVocabularyExpansion(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)
	vocab := "http://schema.org/"
	ctx.defaultVocabulary = &vocab

	got := d.resolveCurie(ctx, "name", modeProperty)
	want := "http://schema.org/name"
	if got == nil || *got != want {
		t.Errorf("resolveCurie(%q) with default vocabulary = %v; want %q", "name", got, want)
	}
}

func TestResolveCurieDefaultVocabularyDoesNotApplyToAbsoluteIRI(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)
	vocab := "http://schema.org/"
	ctx.defaultVocabulary = &vocab

	raw := "http://xmlns.com/foaf/0.1/name"
	got := d.resolveCurie(ctx, raw, modeProperty)
	if got == nil || *got != raw {
		t.Errorf("resolveCurie(%q) with default vocabulary = %v; want unchanged %q", raw, got, raw)
	}
}

// TestResolveCurieXHTML1ReservedRelWord guards the fix described in
// DESIGN.md: an XHTML1 RDFa-1.0 document with no default vocabulary must
// expand a reserved @rel/@rev word like "license" through the term map
// (spec.md §4.2 step 5) rather than treat it as a bogus relative IRI.
func TestResolveCurieXHTML1ReservedRelWord(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version10, HostXHTML1)
	seedInitialContext(ctx)

	got := d.resolveCurie(ctx, "license", modeRelRev)
	want := XHTMLVocab + "license"
	if got == nil || *got != want {
		t.Errorf("resolveCurie(%q, modeRelRev) = %v; want %q", "license", got, want)
	}
}

// TestResolveCurieNonXHTML1RelWordFallsBackToRelativeIRI ensures the
// reserved-word lookup is scoped to XHTML1: the same bare word in an HTML5
// document still resolves as a (likely useless) relative IRI, matching
// spec.md's restriction of step 5 to the XHTML1 host language.
func TestResolveCurieNonXHTML1RelWordFallsBackToRelativeIRI(t *testing.T) {
	d := &Decoder{}
	ctx := newTestContext(Version11, HostHTML)

	got := d.resolveCurie(ctx, "license", modeRelRev)
	want := resolveIRI(ctx.base, "license")
	if got == nil || *got != want {
		t.Errorf("resolveCurie(%q, modeRelRev) = %v; want %q", "license", got, want)
	}
}

func hasBlankPrefix(s string) bool {
	return len(s) >= 2 && s[:2] == "_:"
}
