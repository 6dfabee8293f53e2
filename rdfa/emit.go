package rdfa

// emitTriple queues t for the default graph, enforcing spec.md §3's global
// invariants: subject/predicate must be non-empty, and a blank-node
// predicate never reaches the default graph (spec.md §7 category 5).
func (d *Decoder) emitTriple(t Triple) {
	if t.Subject == "" || t.Predicate == "" || t.Object == "" {
		return
	}
	if len(t.Predicate) >= 2 && t.Predicate[:2] == "_:" {
		d.warnf("predicate %q is a blank node; dropping triple", t.Predicate)
		return
	}
	d.queue = append(d.queue, t)
}

// emitOpenTriples runs spec.md §4.5 steps 1-3, invoked when an element
// opens, after establishSubject has run. Grounded on
// original_source/librdfa/triple.c's rdfa_complete_type_triples,
// rdfa_complete_relrev_triples and rdfa_save_incomplete_triples.
func (d *Decoder) emitOpenTriples(ctx *context, a attrs) {
	// Step 1: type triples.
	typeSubject := ctx.newSubject
	if ctx.rdfaVersion == Version11 {
		typeSubject = ctx.typedResource
	}
	if typeSubject != nil {
		for _, t := range a.TypeOf {
			d.emitTriple(Triple{Subject: *typeSubject, Predicate: rdfType, Object: t, Kind: IRI})
		}
	}

	// Step 2/3: rel/rev triples, inlist folding, or incomplete deferral.
	if ctx.newSubject == nil {
		return
	}
	subj := *ctx.newSubject

	if ctx.currentObjectResource != nil {
		obj := *ctx.currentObjectResource
		for _, p := range a.Rel {
			if ctx.rdfaVersion == Version11 && a.HasInlist {
				key := listKey(subj, p)
				acc := ctx.localListMappings.getOrCreate(key, ctx.depth)
				acc.Items = append(acc.Items, listItem{Value: obj, Kind: IRI})
				continue
			}
			d.emitTriple(Triple{Subject: subj, Predicate: p, Object: obj, Kind: IRI})
		}
		for _, p := range a.Rev {
			d.emitTriple(Triple{Subject: obj, Predicate: p, Object: subj, Kind: IRI})
		}
		return
	}

	if !a.HasRel && !a.HasRev {
		return
	}

	if ctx.rdfaVersion == Version10 {
		b := d.newBlankNode()
		ctx.currentObjectResource = &b
	}

	if ctx.rdfaVersion == Version11 && a.HasInlist {
		for _, p := range a.Rel {
			ctx.deferInlist(subj, p)
			ctx.localIncompleteTriples = append(ctx.localIncompleteTriples, incompleteTriple{Predicate: p, Dir: none})
		}
		for _, p := range a.Rev {
			ctx.localIncompleteTriples = append(ctx.localIncompleteTriples, incompleteTriple{Predicate: p, Dir: reverse})
		}
		return
	}

	for _, p := range a.Rel {
		ctx.localIncompleteTriples = append(ctx.localIncompleteTriples, incompleteTriple{Predicate: p, Dir: forward})
	}
	for _, p := range a.Rev {
		ctx.localIncompleteTriples = append(ctx.localIncompleteTriples, incompleteTriple{Predicate: p, Dir: reverse})
	}
}

// completeParentIncompletes runs spec.md §4.5 step 5 on element close:
// the frame's inherited incomplete_triples (handed down by the parent at
// open time) are resolved against this element's new_subject, unless
// skip_element suppresses it. Grounded on
// original_source/librdfa/triple.c's rdfa_complete_incomplete_triples.
func (d *Decoder) completeParentIncompletes(ctx *context) {
	if ctx.skipElement || ctx.newSubject == nil {
		return
	}
	subj := *ctx.newSubject
	parent := strVal(ctx.parentSubject)
	for _, inc := range ctx.incompleteTriples {
		switch inc.Dir {
		case forward:
			d.emitTriple(Triple{Subject: parent, Predicate: inc.Predicate, Object: subj, Kind: IRI})
		case reverse:
			d.emitTriple(Triple{Subject: subj, Predicate: inc.Predicate, Object: parent, Kind: IRI})
		case none:
			key := listKey(parent, inc.Predicate)
			acc := ctx.localListMappings.getOrCreate(key, ctx.depth)
			acc.Items = append(acc.Items, listItem{Value: subj, Kind: IRI})
		}
	}
}
