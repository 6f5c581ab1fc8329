package vercompat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unpunctuate replaces '.' with "Dot" and '-' with "Dash" so that s can be
// part of a unit, scope or task name.
func Unpunctuate(s string) string {
	s = strings.ReplaceAll(s, ".", "Dot")
	return strings.ReplaceAll(s, "-", "Dash")
}

// Capitalize upper-cases the first rune of s if it is a lower case letter.
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// Cartesian computes the cartesian product of lists. The first list varies
// slowest. The product of no lists is one empty tuple, the product including
// an empty list has no tuples.
func Cartesian[T any](lists [][]T) [][]T {
	n := 1
	for _, l := range lists {
		n *= len(l)
	}
	if n == 0 {
		return [][]T{}
	}
	k := len(lists)
	elems := make([]T, n*k)
	res := make([][]T, n)
	for i := range res {
		tuple := elems[i*k : (i+1)*k : (i+1)*k]
		idx := i
		for j := k - 1; j >= 0; j-- {
			l := lists[j]
			tuple[j] = l[idx%len(l)]
			idx /= len(l)
		}
		res[i] = tuple
	}
	return res
}

// NamedVersion is the version of one test dimension.
type NamedVersion struct {
	Name    string
	Version string
}

func (nv NamedVersion) String() string { return nv.Name + " " + nv.Version }

// VersionTuple is one cell of a test matrix: one version for each dimension,
// in dimension registration order.
type VersionTuple []NamedVersion

// Versions returns the plain versions of the tuple.
func (vt VersionTuple) Versions() []string {
	res := make([]string, len(vt))
	for i, nv := range vt {
		res[i] = nv.Version
	}
	return res
}

// TaskName returns the name of the compatibility test task for vt, e.g.
// "testCompatibilityWithDimA1Dot0AndDimB2Dot1".
func (vt VersionTuple) TaskName(testUnit string) string {
	var sb strings.Builder
	sb.WriteString(testUnit)
	sb.WriteString("CompatibilityWith")
	for i, nv := range vt {
		if i > 0 {
			sb.WriteString("And")
		}
		sb.WriteString(Unpunctuate(Capitalize(nv.Name)))
		sb.WriteString(Unpunctuate(nv.Version))
	}
	return sb.String()
}

// Description returns the human readable form of vt like "dimA 1.0 and dimB
// 2.1".
func (vt VersionTuple) Description() string {
	parts := make([]string, len(vt))
	for i, nv := range vt {
		parts[i] = nv.String()
	}
	return strings.Join(parts, " and ")
}
