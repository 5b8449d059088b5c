package manifest

import (
	"sort"
	"strings"
)

var lifecyclePrefixes = []string{"pre", "post"}

// SortKeys returns a copy of o with keys in alphabetical order.
func SortKeys(o *Object) *Object {
	keys := o.Keys()
	sort.Strings(keys)

	out := NewObject()
	for _, k := range keys {
		out.Set(k, cloneValue(o.values[k]))
	}
	return out
}

// SortScripts returns a copy of scripts in alphabetical order, except that a
// "preX" script sits immediately before X and a "postX" script immediately
// after it. Pre/post scripts without a matching X sort like any other key.
func SortScripts(scripts *Object) *Object {
	keys := scripts.Keys()
	sort.Strings(keys)

	out := NewObject()
	var emit func(string)
	emit = func(name string) {
		if out.Has(name) {
			return
		}
		if pre := "pre" + name; scripts.Has(pre) {
			emit(pre)
		}
		out.Set(name, cloneValue(scripts.values[name]))
		if post := "post" + name; scripts.Has(post) {
			emit(post)
		}
	}

	for _, k := range keys {
		if _, ok := lifecycleParent(scripts, k); ok {
			continue
		}
		emit(k)
	}
	return out
}

// lifecycleParent returns the script that key is a pre/post hook of.
func lifecycleParent(scripts *Object, key string) (string, bool) {
	for _, p := range lifecyclePrefixes {
		if core, ok := strings.CutPrefix(key, p); ok && core != "" && scripts.Has(core) {
			return core, true
		}
	}
	return "", false
}

// alphabetize re-sorts the collections of m in place. Collections that are
// not objects are left as they are.
func alphabetize(m *Object) {
	if scripts, ok := m.GetObject(keyScripts); ok {
		m.Set(keyScripts, SortScripts(scripts))
	}
	for _, key := range []string{keyDependencies, keyDevDependencies} {
		if deps, ok := m.GetObject(key); ok {
			m.Set(key, SortKeys(deps))
		}
	}
}
