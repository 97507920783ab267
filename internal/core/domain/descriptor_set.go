package domain

import "iter"

// DescriptorSet is an insertion-ordered set of descriptors keyed by structural equality.
// It is not safe for concurrent mutation.
type DescriptorSet struct {
	buckets map[uint64][]int
	items   []Descriptor
}

// NewDescriptorSet creates an empty DescriptorSet.
func NewDescriptorSet() *DescriptorSet {
	return &DescriptorSet{
		buckets: make(map[uint64][]int),
	}
}

// Add inserts d unless an equal descriptor is already present.
// It reports whether d was added.
func (s *DescriptorSet) Add(d Descriptor) bool {
	h := d.Hash()
	if s.find(h, d) >= 0 {
		return false
	}
	s.buckets[h] = append(s.buckets[h], len(s.items))
	s.items = append(s.items, d)
	return true
}

// Contains reports whether a descriptor equal to d is present.
func (s *DescriptorSet) Contains(d Descriptor) bool {
	return s.find(d.Hash(), d) >= 0
}

func (s *DescriptorSet) find(h uint64, d Descriptor) int {
	for _, i := range s.buckets[h] {
		if s.items[i].Equal(d) {
			return i
		}
	}
	return -1
}

// Len returns the number of distinct descriptors.
func (s *DescriptorSet) Len() int {
	return len(s.items)
}

// All iterates over the descriptors in insertion order.
func (s *DescriptorSet) All() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for _, d := range s.items {
			if !yield(d) {
				return
			}
		}
	}
}

// Slice returns the descriptors in insertion order.
func (s *DescriptorSet) Slice() []Descriptor {
	out := make([]Descriptor, len(s.items))
	copy(out, s.items)
	return out
}
