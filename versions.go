package vercompat

import "slices"

// VersionSet is an ordered set of version strings. The zero value is an empty
// set ready to use.
type VersionSet struct {
	vs []string
}

func NewVersionSet(vs ...string) *VersionSet {
	s := new(VersionSet)
	s.Add(vs...)
	return s
}

// Add appends all versions not yet in s.
func (s *VersionSet) Add(vs ...string) {
	for _, v := range vs {
		if !slices.Contains(s.vs, v) {
			s.vs = append(s.vs, v)
		}
	}
}

// Set replaces the content of s.
func (s *VersionSet) Set(vs ...string) {
	s.vs = s.vs[:0]
	s.Add(vs...)
}

func (s *VersionSet) Get() []string { return slices.Clone(s.vs) }

func (s *VersionSet) Len() int { return len(s.vs) }

func (s *VersionSet) Contains(v string) bool { return slices.Contains(s.vs, v) }
