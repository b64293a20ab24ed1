// SPDX-License-Identifier: MIT

package entropy

import "gonum.org/v1/gonum/mathext/prng"

// 53-bit double assembly constants.
const (
	twoPow26 = 67108864.0
	twoPow53 = 9007199254740992.0
)

// MT19937 is the 32-bit Mersenne Twister with numpy's double assembly on top.
// It is not safe for concurrent use; fixture generation is single-threaded.
type MT19937 struct {
	mt *prng.MT19937
}

// NewMT19937 returns a generator seeded like numpy.random.seed(seed).
func NewMT19937(seed uint32) *MT19937 {
	m := &MT19937{mt: prng.NewMT19937()}
	m.Seed(seed)

	return m
}

// Seed resets the state with the init_genrand recurrence, the one numpy's
// legacy seeding uses for an integer seed.
func (m *MT19937) Seed(seed uint32) {
	m.mt.Seed(uint64(seed))
}

// Uint32 returns the next tempered output.
func (m *MT19937) Uint32() uint32 {
	return m.mt.Uint32()
}

// Float64 consumes two outputs and returns a double in [0, 1).
func (m *MT19937) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6

	return (float64(a)*twoPow26 + float64(b)) / twoPow53
}
