package manifest

import (
	"slices"
	"sort"
)

// Keys with merge semantics other than "generated value replaces existing".
const (
	keyKeywords        = "keywords"
	keyScripts         = "scripts"
	keyDependencies    = "dependencies"
	keyDevDependencies = "devDependencies"
)

// collectionKeys are merged entry by entry: entries only present in the
// existing manifest survive, generated entries win on conflict.
var collectionKeys = []string{keyScripts, keyDependencies, keyDevDependencies}

// Merge combines an existing manifest with a generated one. Existing keys
// keep their position; new keys are appended in generated order. For keys in
// both, the generated value wins, except that keywords are unioned and the
// dependency-like collections are merged entry by entry. Any other nested
// object is replaced whole. Neither input is modified.
func Merge(existing, generated *Object) *Object {
	if existing == nil {
		return generated.Clone()
	}

	out := existing.Clone()
	for _, key := range generated.keys {
		gv := generated.values[key]
		ev, ok := out.values[key]

		switch {
		case !ok:
			out.Set(key, cloneValue(gv))
		case key == keyKeywords:
			out.Set(key, unionKeywords(ev, gv))
		case slices.Contains(collectionKeys, key):
			out.Set(key, mergeCollection(ev, gv))
		default:
			out.Set(key, cloneValue(gv))
		}
	}
	return out
}

// unionKeywords returns the sorted, de-duplicated union of two string
// arrays. If either side holds anything other than strings the generated
// keywords are used as they are.
func unionKeywords(existing, generated any) any {
	a, okA := stringSlice(existing)
	b, okB := stringSlice(generated)
	if !okA || !okB {
		return cloneValue(generated)
	}

	seen := make(map[string]bool, len(a)+len(b))
	var union []string
	for _, s := range append(a, b...) {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
		}
	}
	sort.Strings(union)
	return list(union...)
}

// mergeCollection merges two collection objects entry by entry. An existing
// value that is not an object is passed through untouched.
func mergeCollection(existing, generated any) any {
	eo, ok := existing.(*Object)
	if !ok {
		return existing
	}
	out := eo.Clone()
	if gen, ok := generated.(*Object); ok {
		for _, k := range gen.keys {
			out.Set(k, cloneValue(gen.values[k]))
		}
	}
	return out
}

func stringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// layer adds a fragment to a manifest under construction. Nested objects are
// combined key by key and arrays are extended with missing items, so
// independent fragments never erase each other.
func layer(dst, fragment *Object) {
	for _, key := range fragment.keys {
		fv := fragment.values[key]
		dv, ok := dst.values[key]
		if !ok {
			dst.Set(key, cloneValue(fv))
			continue
		}

		switch d := dv.(type) {
		case *Object:
			if f, ok := fv.(*Object); ok {
				layer(d, f)
				continue
			}
		case []any:
			if f, ok := fv.([]any); ok {
				for _, item := range f {
					if !slices.Contains(d, item) {
						d = append(d, item)
					}
				}
				dst.Set(key, d)
				continue
			}
		}
		dst.Set(key, cloneValue(fv))
	}
}
