// Package mask represents a cell's candidate digits as a 9-bit set, so that
// add/remove/count/iterate are all O(1) instead of the map-backed set
// (internal/set) used by the CLI's given-digit summary.
package mask

import "math/bits"

// Domain is a bitmask over the digits 1..9. Bit (v-1) is set iff v is a
// possible value. The zero Domain is the empty set.
type Domain uint16

// Full is the domain containing every digit 1..9.
const Full Domain = 0x1FF

// Of builds a Domain from the given digits.
func Of(values ...int) Domain {
	var d Domain
	for _, v := range values {
		d = d.Add(v)
	}
	return d
}

// Single returns the domain containing only v.
func Single(v int) Domain {
	return Domain(1) << uint(v-1)
}

// Has reports whether v is a member of d.
func (d Domain) Has(v int) bool {
	return d&Single(v) != 0
}

// Add returns d with v added.
func (d Domain) Add(v int) Domain {
	return d | Single(v)
}

// Remove returns d with v removed.
func (d Domain) Remove(v int) Domain {
	return d &^ Single(v)
}

// Count returns the number of digits remaining in d.
func (d Domain) Count() int {
	return bits.OnesCount16(uint16(d))
}

// Empty reports whether d has no remaining digits.
func (d Domain) Empty() bool {
	return d == 0
}

// SingleValue reports whether d contains exactly one digit, returning it.
func (d Domain) SingleValue() (int, bool) {
	if bits.OnesCount16(uint16(d)) != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(d)) + 1, true
}

// Values returns the member digits of d in ascending order.
func (d Domain) Values() []int {
	values := make([]int, 0, d.Count())
	for v := 1; v <= 9; v++ {
		if d.Has(v) {
			values = append(values, v)
		}
	}
	return values
}
