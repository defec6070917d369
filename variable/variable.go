// Package variable provides totally ordered, hashable variable
// identifiers and ordered variable lists naming the indeterminates of a
// polynomial.
package variable

import "sort"

// Variable is a totally ordered, hashable variable identifier. The zero
// value is not a valid variable; obtain one from a Context.
type Variable struct {
	id   int
	name string
}

// Name returns the variable's display name.
func (v Variable) Name() string { return v.name }

// ID returns the variable's numeric id within its Context.
func (v Variable) ID() int { return v.id }

// Less orders variables by creation order within their Context.
func (v Variable) Less(o Variable) bool { return v.id < o.id }

// Equal reports whether v and o are the same variable.
func (v Variable) Equal(o Variable) bool { return v.id == o.id }

// Context issues Variables with compact ids, assigned monotonically on
// first use of each name.
type Context struct {
	byName map[string]Variable
	names  []string
}

// NewContext returns an empty variable context.
func NewContext() *Context {
	return &Context{byName: make(map[string]Variable)}
}

// Intern returns the Variable named name, creating it on first use.
func (c *Context) Intern(name string) Variable {
	if v, ok := c.byName[name]; ok {
		return v
	}
	v := Variable{id: len(c.names), name: name}
	c.byName[name] = v
	c.names = append(c.names, name)
	return v
}

// List is an ordered sequence of distinct Variables.
type List []Variable

// IndexOf returns the position of v in l, or -1 if absent.
func (l List) IndexOf(v Variable) int {
	for i, w := range l {
		if w.Equal(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether v appears in l.
func (l List) Contains(v Variable) bool { return l.IndexOf(v) >= 0 }

// Sorted returns a copy of l ordered by Variable.Less.
func (l List) Sorted() List {
	out := make(List, len(l))
	copy(out, l)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Tail returns l without its first element.
func (l List) Tail() List {
	if len(l) == 0 {
		return nil
	}
	return l[1:]
}

// Prepend returns a new List with v at the front, vs following.
func Prepend(v Variable, vs List) List {
	out := make(List, 0, len(vs)+1)
	out = append(out, v)
	out = append(out, vs...)
	return out
}
