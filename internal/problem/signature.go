package problem

import (
	"strconv"
	"strings"
)

// Signature canonically identifies one point in a family's problem space
// at one difficulty: "{family}:d{difficulty}:{key}". Two problems are the
// same problem iff their signatures match.
type Signature string

// NewSignature builds a signature for family t at difficulty d. Key parts
// are joined with ":".
func NewSignature(t Type, d int, key ...string) Signature {
	var b strings.Builder
	b.WriteString(string(t))
	b.WriteString(":d")
	b.WriteString(strconv.Itoa(d))
	for _, k := range key {
		b.WriteByte(':')
		b.WriteString(k)
	}
	return Signature(b.String())
}

// split locates the ":d{n}:" difficulty marker. Family names may contain
// colons, so the first segment that parses as d{n} wins.
func (s Signature) split() (family string, difficulty int, key string, ok bool) {
	parts := strings.Split(string(s), ":")
	for i := 1; i < len(parts); i++ {
		p := parts[i]
		if len(p) < 2 || p[0] != 'd' {
			continue
		}
		n, err := strconv.Atoi(p[1:])
		if err != nil {
			continue
		}
		return strings.Join(parts[:i], ":"), n, strings.Join(parts[i+1:], ":"), true
	}
	return "", 0, "", false
}

// Family returns the family prefix, or "" if s is malformed.
func (s Signature) Family() Type {
	f, _, _, _ := s.split()
	return Type(f)
}

// Difficulty returns the encoded difficulty, or 0 if s is malformed.
func (s Signature) Difficulty() int {
	_, d, _, _ := s.split()
	return d
}

// Key returns the discriminating key after the difficulty segment.
func (s Signature) Key() string {
	_, _, k, _ := s.split()
	return k
}

// SignatureSet is a set of signatures.
type SignatureSet map[Signature]struct{}

// NewSignatureSet returns a set holding sigs.
func NewSignatureSet(sigs ...Signature) SignatureSet {
	set := make(SignatureSet, len(sigs))
	for _, s := range sigs {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is in the set. A nil set contains nothing.
func (set SignatureSet) Has(s Signature) bool {
	_, ok := set[s]
	return ok
}

// Add inserts s.
func (set SignatureSet) Add(s Signature) {
	set[s] = struct{}{}
}

// Len returns the number of signatures in the set.
func (set SignatureSet) Len() int {
	return len(set)
}
