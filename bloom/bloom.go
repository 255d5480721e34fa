// Package bloom implements a bloom filter: a fixed-size probabilistic set
// with no false negatives and a tunable false-positive rate.
//
// Membership of a key is k bit positions derived from k rounds of xxhash,
// each round prefixed with a distinct marker so the rounds behave as
// independent hash functions. Insert sets the bits; Has reports whether
// all of them are set.
package bloom

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// wordBits is the width of a filter word.
const wordBits = 64

// Filter is a bloom filter over byte-string keys. Construct with New or
// NewOptimal; the bit count is fixed afterwards, since growing it would
// invalidate every previously set bit.
type Filter struct {
	words  []uint64
	hashes int
}

// New creates a filter of at least nbits bits (rounded up to a whole
// number of 64-bit words) using hashes hash rounds. hashes outside
// [1, 64] is construction misuse and panics.
func New(nbits, hashes int) *Filter {
	if hashes < 1 {
		panic("bloom: must use at least 1 hash")
	}
	if hashes > wordBits {
		panic("bloom: too many hashes")
	}

	return &Filter{
		words:  make([]uint64, (nbits+wordBits-1)/wordBits),
		hashes: hashes,
	}
}

// NewOptimal creates a filter sized for expectedItems insertions at the
// given falsePositiveRate, using the standard optimal-parameter formulas.
func NewOptimal(expectedItems int, falsePositiveRate float64) *Filter {
	hashes := int(-math.Log(falsePositiveRate) / math.Ln2)
	if hashes < 1 {
		hashes = 1
	}
	if hashes > wordBits {
		hashes = wordBits
	}
	nbits := int(float64(expectedItems) * -2.08 * math.Log(falsePositiveRate))
	if nbits < wordBits {
		nbits = wordBits
	}

	return New(nbits, hashes)
}

// NumHashes returns the number of hash rounds.
func (f *Filter) NumHashes() int { return f.hashes }

// NumBits returns the filter's capacity in bits.
func (f *Filter) NumBits() int { return len(f.words) * wordBits }

// NumSetBits returns the number of bits currently set.
func (f *Filter) NumSetBits() int {
	n := 0
	for _, w := range f.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Insert adds key to the set.
func (f *Filter) Insert(key []byte) {
	for round := 0; round < f.hashes; round++ {
		idx := f.bitIndex(key, round)
		f.words[idx/wordBits] |= 1 << (idx % wordBits)
	}
}

// Has reports whether key may be a member. False positives are possible at
// the configured rate; false negatives are not.
func (f *Filter) Has(key []byte) bool {
	for round := 0; round < f.hashes; round++ {
		idx := f.bitIndex(key, round)
		if f.words[idx/wordBits]&(1<<(idx%wordBits)) == 0 {
			return false
		}
	}

	return true
}

// InsertString is Insert for string keys.
func (f *Filter) InsertString(key string) { f.Insert([]byte(key)) }

// HasString is Has for string keys.
func (f *Filter) HasString(key string) bool { return f.Has([]byte(key)) }

// bitIndex hashes key under the given round's marker and maps the digest
// onto a bit position.
func (f *Filter) bitIndex(key []byte, round int) int {
	var marker [8]byte
	binary.LittleEndian.PutUint64(marker[:], 1<<round)

	d := xxhash.New()
	_, _ = d.Write(marker[:])
	_, _ = d.Write(key)

	return int(d.Sum64() % uint64(f.NumBits()))
}

// ApproxItems estimates how many distinct keys have been inserted, from
// the fill ratio of the bit array.
func (f *Filter) ApproxItems() int {
	k := float64(f.hashes)
	m := float64(f.NumBits())
	x := float64(f.NumSetBits())

	return int(math.Round(-(m / k) * math.Log(1.0-x/m)))
}

// FalsePositiveChance returns the probability that Has reports true for a
// key that was never inserted, given the current fill.
func (f *Filter) FalsePositiveChance() float64 {
	k := float64(f.hashes)
	m := float64(f.NumBits())
	n := float64(f.NumSetBits())

	return math.Pow(1.0-math.Exp(-k*n/m), k)
}
