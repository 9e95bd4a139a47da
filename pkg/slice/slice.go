package slice

// FixedSizeSlice is a set of indices in [0, length), packed into 64 bit words
type FixedSizeSlice struct {
	words        []uint64
	length       int
	numSetValues int
}

func MakeFixedSizeSlice(length int) FixedSizeSlice {
	return FixedSizeSlice{words: make([]uint64, (length+63)/64), length: length}
}

func (s *FixedSizeSlice) Len() int { return s.numSetValues }
func (s *FixedSizeSlice) Cap() int { return s.length }

func (s *FixedSizeSlice) Add(indices ...int) {
	for _, index := range indices {
		s.check(index)
		word, bit := index/64, uint64(1)<<(index%64)
		if s.words[word]&bit == 0 {
			s.words[word] |= bit
			s.numSetValues++
		}
	}
}

func (s *FixedSizeSlice) Remove(indices ...int) {
	for _, index := range indices {
		s.check(index)
		word, bit := index/64, uint64(1)<<(index%64)
		if s.words[word]&bit != 0 {
			s.words[word] &^= bit
			s.numSetValues--
		}
	}
}

func (s *FixedSizeSlice) Has(index int) bool {
	s.check(index)
	return s.words[index/64]&(uint64(1)<<(index%64)) != 0
}

// Indices returns the members in ascending order
func (s *FixedSizeSlice) Indices() []int {
	indices := make([]int, 0, s.numSetValues)
	for w, word := range s.words {
		for b := 0; word != 0; b, word = b+1, word>>1 {
			if word&1 != 0 {
				indices = append(indices, w*64+b)
			}
		}
	}
	return indices
}

func (s *FixedSizeSlice) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
	s.numSetValues = 0
}

func (s *FixedSizeSlice) Ratio() float64 {
	if s.length == 0 {
		return 0
	}
	return float64(s.numSetValues) / float64(s.length)
}

// indices in the padding of the last word would pass silently otherwise
func (s *FixedSizeSlice) check(index int) {
	if index < 0 || index >= s.length {
		panic("slice: index out of range")
	}
}

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Contains reports whether value is an element of s
func Contains[T comparable](s []T, value T) bool {
	return Index(s, value) >= 0
}

// Index of the first occurrence of value in s, -1 if there is none
func Index[T comparable](s []T, value T) int {
	for i, a := range s {
		if a == value {
			return i
		}
	}
	return -1
}

// Count the positions at which both slices differ. Returns -1 if the lengths differ.
func Compare[T comparable](s1 []T, s2 []T) int {
	if len(s1) != len(s2) {
		return -1
	}
	differences := 0
	for i := range s1 {
		if s1[i] != s2[i] {
			differences++
		}
	}
	return differences
}
