package rdfa

// deferInlist pre-stamps the list-mapping key for a @rel(+@inlist)
// predicate whose object is not yet known, at the depth of the element
// declaring it, before the predicate is queued as a none-direction
// incomplete triple. Grounded on
// original_source/librdfa/lists.c's rdfa_save_incomplete_list_triples,
// which calls rdfa_create_list_mapping before rdfa_add_item.
func (ctx *context) deferInlist(subject, predicate string) {
	ctx.localListMappings.getOrCreate(listKey(subject, predicate), ctx.depth)
}

// flushLists runs spec.md §4.7 on element close: local list-mapping keys
// first instantiated strictly deeper than the closing element (i.e. whose
// declaring element's parent is closing right now, since a key propagates
// up exactly one frame per close -- see original_source/librdfa/lists.c's
// rdfa_complete_list_triples) are assembled into rdf:List triples and
// marked deleted; all other keys are left for the caller to propagate to
// the parent frame unchanged.
func (d *Decoder) flushLists(ctx *context) {
	for _, key := range ctx.localListMappings.order {
		acc := ctx.localListMappings.vals[key]
		if acc == nil || acc.Deleted {
			continue
		}
		if acc.Depth <= ctx.depth {
			continue
		}
		if _, inherited := ctx.listMappings.get(key); inherited {
			continue
		}
		d.flushOneList(key, acc)
		acc.Deleted = true
	}
}

// flushOneList emits the rdf:List structure (or the empty-list rdf:nil
// triple) for one list-mapping accumulator, per spec.md §3 invariant 4.
func (d *Decoder) flushOneList(key string, acc *listAccum) {
	subject, predicate := splitListKey(key)
	if len(acc.Items) == 0 {
		d.emitTriple(Triple{Subject: subject, Predicate: predicate, Object: rdfNil, Kind: IRI})
		return
	}

	bnodes := make([]string, len(acc.Items))
	for i := range acc.Items {
		bnodes[i] = d.newBlankNode()
	}
	for i, item := range acc.Items {
		d.emitTriple(Triple{Subject: bnodes[i], Predicate: rdfFirst, Object: item.Value, Kind: item.Kind, Datatype: item.Datatype, Lang: item.Lang})
		next := rdfNil
		if i+1 < len(bnodes) {
			next = bnodes[i+1]
		}
		d.emitTriple(Triple{Subject: bnodes[i], Predicate: rdfRest, Object: next, Kind: IRI})
	}
	d.emitTriple(Triple{Subject: subject, Predicate: predicate, Object: bnodes[0], Kind: IRI})
}

// splitListKey reverses listKey's "subject predicate" concatenation. The
// subject itself never contains a space (it is always an absolute IRI or a
// "_:label"), so splitting on the first space is unambiguous.
func splitListKey(key string) (subject, predicate string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ' ' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
