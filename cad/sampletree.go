package cad

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/ralg"
	"github.com/real-cad/cad/rational"
)

var rationalOne = rational.One

func intervalSampleFast(a, b rational.Rational) rational.Rational {
	return interval.New(a, b).SampleFast()
}

// sampleEntry is one sample produced during lifting: a real algebraic
// number and whether it is a root of the polynomial that produced it.
type sampleEntry struct {
	value   ralg.Number
	isRoot  bool
	removed bool
}

// SampleList holds the samples produced so far at one sample-tree node,
// ordered by real-algebraic less-than, with FIFO views over the same
// entries. Popping an entry through any view hides it from all views.
type SampleList struct {
	entries []*sampleEntry // sorted ascending by value

	all      []*sampleEntry
	numeric  []*sampleEntry
	interval []*sampleEntry
	root     []*sampleEntry
	nonroot  []*sampleEntry

	headAll, headNumeric, headInterval, headRoot, headNonroot int
}

// Len returns the number of live entries.
func (s *SampleList) Len() int {
	n := 0
	for _, e := range s.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Empty reports whether no live entries remain.
func (s *SampleList) Empty() bool { return s.Len() == 0 }

func emptyView(view []*sampleEntry, head int) bool {
	for i := head; i < len(view); i++ {
		if !view[i].removed {
			return false
		}
	}
	return true
}

func (s *SampleList) EmptyNumeric() bool  { return emptyView(s.numeric, s.headNumeric) }
func (s *SampleList) EmptyInterval() bool { return emptyView(s.interval, s.headInterval) }
func (s *SampleList) EmptyRoot() bool     { return emptyView(s.root, s.headRoot) }
func (s *SampleList) EmptyNonroot() bool  { return emptyView(s.nonroot, s.headNonroot) }

// Insert adds a sample to every applicable view and to its sorted
// position. An existing equal entry is promoted in place instead of
// duplicated.
func (s *SampleList) Insert(n ralg.Number, isRoot bool) error {
	for _, e := range s.entries {
		if e.removed {
			continue
		}
		eq, err := e.value.Equal(n)
		if err != nil {
			return err
		}
		if eq {
			if isRoot && !e.isRoot {
				e.isRoot = true
				s.root = append(s.root, e)
			}
			if n.IsNumeric() && !e.value.IsNumeric() {
				e.value = n
				s.numeric = append(s.numeric, e)
			}
			return nil
		}
	}
	e := &sampleEntry{value: n, isRoot: isRoot}
	pos := 0
	for pos < len(s.entries) {
		less, err := n.Less(s.entries[pos].value)
		if err != nil {
			return err
		}
		if less {
			break
		}
		pos++
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e

	s.all = append(s.all, e)
	if isRoot {
		s.root = append(s.root, e)
	} else {
		s.nonroot = append(s.nonroot, e)
	}
	if n.IsNumeric() {
		s.numeric = append(s.numeric, e)
	} else {
		s.interval = append(s.interval, e)
	}
	return nil
}

func nextFrom(view []*sampleEntry, head *int, match func(*sampleEntry) bool) (*sampleEntry, bool) {
	for *head < len(view) {
		e := view[*head]
		if e.removed || !match(e) {
			*head++
			continue
		}
		return e, true
	}
	return nil, false
}

// Next returns the oldest live entry overall.
func (s *SampleList) Next() (ralg.Number, bool, bool) {
	e, ok := nextFrom(s.all, &s.headAll, func(*sampleEntry) bool { return true })
	if !ok {
		return ralg.Number{}, false, false
	}
	return e.value, e.isRoot, true
}

// NextNumeric returns the oldest live numeric-represented entry.
func (s *SampleList) NextNumeric() (ralg.Number, bool, bool) {
	e, ok := nextFrom(s.numeric, &s.headNumeric, func(se *sampleEntry) bool { return se.value.IsNumeric() })
	if !ok {
		return ralg.Number{}, false, false
	}
	return e.value, e.isRoot, true
}

// NextInterval returns the oldest live interval-represented entry.
func (s *SampleList) NextInterval() (ralg.Number, bool, bool) {
	e, ok := nextFrom(s.interval, &s.headInterval, func(se *sampleEntry) bool { return !se.value.IsNumeric() })
	if !ok {
		return ralg.Number{}, false, false
	}
	return e.value, e.isRoot, true
}

// NextRoot returns the oldest live root entry.
func (s *SampleList) NextRoot() (ralg.Number, bool, bool) {
	e, ok := nextFrom(s.root, &s.headRoot, func(se *sampleEntry) bool { return se.isRoot })
	if !ok {
		return ralg.Number{}, false, false
	}
	return e.value, e.isRoot, true
}

// NextNonroot returns the oldest live non-root entry.
func (s *SampleList) NextNonroot() (ralg.Number, bool, bool) {
	e, ok := nextFrom(s.nonroot, &s.headNonroot, func(se *sampleEntry) bool { return !se.isRoot })
	if !ok {
		return ralg.Number{}, false, false
	}
	return e.value, e.isRoot, true
}

// popEqual marks the live entry equal to n as removed across every
// view. Panics if no live entry matches.
func (s *SampleList) popEqual(n ralg.Number) error {
	for _, e := range s.entries {
		if e.removed {
			continue
		}
		eq, err := e.value.Equal(n)
		if err != nil {
			return err
		}
		if eq {
			e.removed = true
			return nil
		}
	}
	caderr.Invariant("cad: SampleList: popped sample not found among live entries")
	return nil
}

// entry is one (value, isRoot) pair returned by
// InsertRootWithSeparators for mirroring into the sample tree.
type entry struct {
	Value  ralg.Number
	IsRoot bool
}

// InsertRootWithSeparators inserts n as a root sample plus the
// intermediate non-root samples keeping cells separated: one between n
// and each adjacent root, and one beyond n on any side with no
// neighbor. Returns every entry newly added.
func (s *SampleList) InsertRootWithSeparators(n ralg.Number) ([]entry, error) {
	if err := s.Insert(n, true); err != nil {
		return nil, err
	}
	idx, err := s.indexOf(n)
	if err != nil {
		return nil, err
	}
	added := []entry{{Value: n, IsRoot: true}}

	rightIdx := s.nextLiveIndex(idx + 1)
	if rightIdx < 0 {
		sep := boundarySample(n, true)
		added = append(added, entry{Value: sep, IsRoot: false})
		if err := s.Insert(sep, false); err != nil {
			return nil, err
		}
	} else if s.entries[rightIdx].isRoot {
		sep := separatorBetween(n, s.entries[rightIdx].value)
		added = append(added, entry{Value: sep, IsRoot: false})
		if err := s.Insert(sep, false); err != nil {
			return nil, err
		}
	}

	leftIdx := s.prevLiveIndex(idx - 1)
	if leftIdx < 0 {
		sep := boundarySample(n, false)
		added = append(added, entry{Value: sep, IsRoot: false})
		if err := s.Insert(sep, false); err != nil {
			return nil, err
		}
	} else if s.entries[leftIdx].isRoot {
		sep := separatorBetween(s.entries[leftIdx].value, n)
		added = append(added, entry{Value: sep, IsRoot: false})
		if err := s.Insert(sep, false); err != nil {
			return nil, err
		}
	}
	return added, nil
}

func (s *SampleList) indexOf(n ralg.Number) (int, error) {
	for i, e := range s.entries {
		if e.removed {
			continue
		}
		eq, err := e.value.Equal(n)
		if err != nil {
			return 0, err
		}
		if eq {
			return i, nil
		}
	}
	caderr.Invariant("cad: SampleList: inserted value not found in sorted entries")
	return 0, nil
}

func (s *SampleList) nextLiveIndex(from int) int {
	for i := from; i < len(s.entries); i++ {
		if !s.entries[i].removed {
			return i
		}
	}
	return -1
}

func (s *SampleList) prevLiveIndex(from int) int {
	for i := from; i >= 0; i-- {
		if !s.entries[i].removed {
			return i
		}
	}
	return -1
}

// boundarySample returns a non-root sample beyond n on the given side.
func boundarySample(n ralg.Number, right bool) ralg.Number {
	if v, ok := n.RationalValue(); ok {
		if right {
			return ralg.FromRational(v.Add(rationalOne))
		}
		return ralg.FromRational(v.Sub(rationalOne))
	}
	if right {
		return ralg.FromRational(n.Interval().Right)
	}
	return ralg.FromRational(n.Interval().Left)
}

// separatorBetween returns a non-root rational sample strictly between
// left and right.
func separatorBetween(left, right ralg.Number) ralg.Number {
	lv, lok := left.RationalValue()
	rv, rok := right.RationalValue()
	switch {
	case lok && rok:
		return ralg.FromRational(intervalSampleFast(lv, rv))
	case lok && !rok:
		return ralg.FromRational(right.Interval().Left)
	default:
		return ralg.FromRational(left.Interval().Right)
	}
}

// Simplify tries one refinement step on every interval-represented live
// entry, promoting to numeric in place when refinement lands on the
// root.
func (s *SampleList) Simplify() {
	for _, e := range s.entries {
		if e.removed || e.value.IsNumeric() {
			continue
		}
		v := e.value
		v.Refine()
		e.value = v
		if v.IsNumeric() {
			s.numeric = append(s.numeric, e)
		}
	}
}

// Entries returns the live entries in sorted order.
func (s *SampleList) Entries() []struct {
	Value  ralg.Number
	IsRoot bool
} {
	var out []struct {
		Value  ralg.Number
		IsRoot bool
	}
	for _, e := range s.entries {
		if e.removed {
			continue
		}
		out = append(out, struct {
			Value  ralg.Number
			IsRoot bool
		}{e.value, e.isRoot})
	}
	return out
}
