package rdfa

// attrs holds the already-CURIE/IRI-resolved RDFa attributes of one
// element, as consumed by establishSubject (spec.md §4.4) and emitOpenTriples
// (spec.md §4.5).
type attrs struct {
	About     *string
	Src       *string
	Resource  *string
	Href      *string
	TypeOf    []string
	Property  []string
	Content   *string
	Datatype  *string
	HasRel    bool
	HasRev    bool
	Rel       []string
	Rev       []string
	HasInlist bool

	// HasVocab and HasPrefix record whether this element itself carried a
	// @vocab or @prefix/xmlns:* declaration, for wholeElementSkip -- an
	// inherited vocabulary/prefix does not keep an otherwise bare element
	// from being inert.
	HasVocab bool
	HasPrefix bool

	// hasLangAttr records whether this element itself declared xml:lang or
	// lang, for appendStartTag's inherited-language injection.
	hasLangAttr bool
}

func firstNonNil(ps ...*string) *string {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

// establishSubject applies the RDFa 1.0 or 1.1 subject-establishment rules
// of spec.md §4.4, setting ctx.newSubject, ctx.currentObjectResource and
// (RDFa 1.1 only) ctx.typedResource. Grounded on
// original_source/librdfa/subject.c's rdfa_establish_new_1_0_subject,
// rdfa_establish_new_1_0_subject_with_relrev,
// rdfa_establish_new_1_1_subject and rdfa_establish_new_1_1_subject_with_relrev.
func (d *Decoder) establishSubject(ctx *context, a attrs) {
	hasRelRev := a.HasRel || a.HasRev
	switch {
	case ctx.rdfaVersion == Version10 && !hasRelRev:
		d.establish10NoRelRev(ctx, a)
	case ctx.rdfaVersion == Version10 && hasRelRev:
		d.establish10RelRev(ctx, a)
	case ctx.rdfaVersion == Version11 && !hasRelRev:
		d.establish11NoRelRev(ctx, a)
	default:
		d.establish11RelRev(ctx, a)
	}
}

func (d *Decoder) establish10NoRelRev(ctx *context, a attrs) {
	switch {
	case a.About != nil:
		ctx.newSubject = a.About
	case a.Src != nil:
		ctx.newSubject = a.Src
	case a.Resource != nil:
		ctx.newSubject = a.Resource
	case a.Href != nil:
		ctx.newSubject = a.Href
	case len(a.TypeOf) > 0:
		ctx.newSubject = strPtr(d.newBlankNode())
	default:
		ctx.newSubject = ctx.parentObject
		ctx.skipElement = true
	}
}

func (d *Decoder) establish10RelRev(ctx *context, a attrs) {
	switch {
	case a.About != nil:
		ctx.newSubject = a.About
	case a.Src != nil:
		ctx.newSubject = a.Src
	case len(a.TypeOf) > 0:
		ctx.newSubject = strPtr(d.newBlankNode())
	default:
		ctx.newSubject = ctx.parentObject
	}
	ctx.currentObjectResource = firstNonNil(a.Resource, a.Href)
}

func (d *Decoder) establish11NoRelRev(ctx *context, a attrs) {
	if len(a.Property) > 0 && a.Content == nil && a.Datatype == nil {
		if a.About != nil {
			ctx.newSubject = a.About
		} else {
			ctx.newSubject = ctx.parentObject
		}
		if len(a.TypeOf) > 0 {
			if a.About != nil {
				ctx.typedResource = a.About
			} else {
				res := firstNonNil(a.Resource, a.Href, a.Src)
				if res == nil {
					b := d.newBlankNode()
					res = &b
					ctx.currentObjectResource = res
				}
				ctx.typedResource = res
			}
		}
		return
	}

	switch {
	case firstNonNil(a.About, a.Resource, a.Href, a.Src) != nil:
		ctx.newSubject = firstNonNil(a.About, a.Resource, a.Href, a.Src)
	case len(a.TypeOf) > 0:
		ctx.newSubject = strPtr(d.newBlankNode())
	default:
		ctx.newSubject = ctx.parentObject
		if len(a.Property) == 0 {
			ctx.skipElement = true
		}
	}
	if len(a.TypeOf) > 0 {
		ctx.typedResource = ctx.newSubject
	}
}

func (d *Decoder) establish11RelRev(ctx *context, a attrs) {
	if a.About != nil {
		ctx.newSubject = a.About
	} else {
		ctx.newSubject = ctx.parentObject
	}
	if len(a.TypeOf) > 0 {
		ctx.typedResource = ctx.newSubject
	}
	ctx.currentObjectResource = firstNonNil(a.Resource, a.Href, a.Src)
	if ctx.currentObjectResource == nil && len(a.TypeOf) > 0 && a.About == nil {
		b := d.newBlankNode()
		ctx.currentObjectResource = &b
		ctx.typedResource = &b
	}
}

// applyImplicitAbout implements spec.md §4.4's "Root-element implicit
// about": the document root, and (in XHTML1/HTML) head/body elements with
// no subject attribute, behave as though @about="" were present.
func applyImplicitAbout(ctx *context, a *attrs, depth int, localName string) {
	hasSubjectAttr := a.About != nil || a.Resource != nil || a.Href != nil || a.Src != nil
	if hasSubjectAttr {
		return
	}
	if depth == 1 {
		base := ctx.base
		a.About = &base
		return
	}
	if ctx.hostLanguage == HostXHTML1 || ctx.hostLanguage == HostHTML {
		ln := localName
		if (ln == "head" || ln == "body") && (ctx.parentSubject == nil || len(a.TypeOf) > 0) {
			base := ctx.base
			a.About = &base
		}
	}
}

// wholeElementSkip implements spec.md §4.4's "Whole-element skip": an
// element carrying none of the RDFa-bearing attributes and no @vocab or
// @prefix is entirely inert. This is the documented correction to the
// published RDFa processing rules' step 4 (see spec.md §9's open question).
func wholeElementSkip(a attrs, hasVocab, hasPrefix bool) bool {
	return a.About == nil && a.Resource == nil && a.Href == nil && a.Src == nil &&
		len(a.TypeOf) == 0 && len(a.Property) == 0 && !a.HasRel && !a.HasRev &&
		!hasVocab && !hasPrefix
}
