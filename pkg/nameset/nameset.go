package nameset

import "sort"

// Set is an unordered collection of file names
type Set map[string]struct{}

func New(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func (s Set) Add(name string) {
	s[name] = struct{}{}
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Intersect returns the names present in both s and other
func (s Set) Intersect(other Set) Set {
	out := Set{}
	for name := range s {
		if other.Has(name) {
			out.Add(name)
		}
	}
	return out
}

// Minus returns the names of s that are absent from other
func (s Set) Minus(other Set) Set {
	out := Set{}
	for name := range s {
		if !other.Has(name) {
			out.Add(name)
		}
	}
	return out
}

// Sorted lists the names in lexical order. An empty set gives an empty, non-nil slice.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
