package cookies

import "slices"

// Merge combines two jars into a new one, deduplicating by the
// (name, domain, path) full key. Conflicts are settled by recency: the
// combined records are stable-sorted by expiry, latest first, with
// session cookies ranked ahead of everything, and walked in that order.
// A candidate whose full key is already in the result is admitted only
// when its value is non-empty and it beats the record found by name
// alone: either that record's value is empty or the candidate expires
// strictly later.
//
// The existence check uses the full key while the comparison looks the
// name up on its own; when several domain/path variants share a name,
// the comparison can run against an unrelated variant. That asymmetry is
// intentional (see TestMerge_TwoKeyLookup).
//
// The result owns copies of its records and is ordered by admission, not
// by the callers' insertion order. Merge(j, j) is the dedup idiom used
// by HeaderLine. The default domain of a carries over to the result.
func Merge(a, b *Jar) *Jar {
	scratch := make([]Cookie, 0, a.Len()+b.Len())
	scratch = append(scratch, a.records...)
	scratch = append(scratch, b.records...)

	slices.SortStableFunc(scratch, func(x, y Cookie) int {
		switch {
		case expiresAfter(x.Expires, y.Expires):
			return -1
		case expiresAfter(y.Expires, x.Expires):
			return 1
		default:
			return 0
		}
	})

	out := NewJar()
	out.defaultDomain = a.defaultDomain
	for _, cand := range scratch {
		if out.admissible(cand) {
			out.records = append(out.records, cand)
		}
	}
	return out
}

// admissible applies the merge policy against the records admitted so
// far.
func (j *Jar) admissible(cand Cookie) bool {
	if _, ok := j.Find(cand.Name, cand.Domain, cand.Path); !ok {
		return true
	}
	if cand.Value == "" {
		return false
	}
	existing, ok := j.FindByName(cand.Name)
	if !ok {
		return true
	}
	if existing.Value == "" {
		return true
	}
	return expiresAfter(cand.Expires, existing.Expires)
}
