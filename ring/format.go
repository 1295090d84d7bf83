// SPDX-License-Identifier: MIT

package ring

import (
	"sort"
	"strconv"
	"strings"
)

// String renders p canonically: terms by descending total degree, ties by
// descending lexicographic exponent vector; nested coefficients with more
// than one term are parenthesised. Equal polynomials of one ring always
// print identically.
func (p *Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, t := range p.sortedTerms() {
		s := p.termString(t)
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

func (p *Poly) sortedTerms() []term {
	ts := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		di, dj := sum(ts[i].exp), sum(ts[j].exp)
		if di != dj {
			return di > dj
		}
		for k := range ts[i].exp {
			if ts[i].exp[k] != ts[j].exp[k] {
				return ts[i].exp[k] > ts[j].exp[k]
			}
		}

		return false
	})

	return ts
}

func (p *Poly) termString(t term) string {
	mono := p.monomialString(t.exp)

	if p.ring.base == nil {
		q := t.c.q
		switch {
		case mono == "":
			return q.RatString()
		case q.IsInt() && q.Num().IsInt64() && q.Num().Int64() == 1:
			return mono
		case q.IsInt() && q.Num().IsInt64() && q.Num().Int64() == -1:
			return "-" + mono
		default:
			return q.RatString() + "*" + mono
		}
	}

	c := t.c.p
	switch {
	case mono == "":
		return c.String()
	case c.IsOne():
		return mono
	case c.Neg().IsOne():
		return "-" + mono
	case c.Terms() == 1:
		return c.String() + "*" + mono
	default:
		return "(" + c.String() + ")*" + mono
	}
}

func (p *Poly) monomialString(exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, p.ring.names[i])
		case e > 1:
			parts = append(parts, p.ring.names[i]+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, "*")
}
