// Package rng implements the bit-exact pseudo-random generators used by
// the Gen IV handheld titles: a 32-bit linear congruential generator for
// in-game RNG advancement, and a Mersenne-Twister variant for egg
// personality derivation.
package rng

// LCG constants for the Gen IV RNG. The multiplier/increment pair is
// fixed by the games; the inverse multiplier lets Prev walk the sequence
// backwards without search.
const (
	lcgMultiplier        uint32 = 0x41C64E6D
	lcgIncrement         uint32 = 0x6073
	lcgInverseMultiplier uint32 = 0xEEB9EB65
)

// Seed is a 32-bit LCG state.
type Seed = uint32

// Draw is the high 16 bits of an LCG state, treated as one RNG output.
type Draw = uint16

// Next advances the LCG state by one step.
func Next(s Seed) Seed {
	return uint32(uint64(s)*uint64(lcgMultiplier) + uint64(lcgIncrement))
}

// Prev reverses one LCG step. Prev(Next(s)) == s for all s.
func Prev(s Seed) Seed {
	diff := s - lcgIncrement
	return uint32(uint64(lcgInverseMultiplier) * uint64(diff))
}

// ExtractDraw returns the high 16 bits of a seed, the value consumers treat
// as one RNG draw. Lossy: the low 16 bits are discarded.
func ExtractDraw(s Seed) Draw {
	return Draw(s >> 16)
}

// MakeSeed packs two consecutive draws into a seed, high draw first.
func MakeSeed(high, low Draw) Seed {
	return uint32(high)<<16 | uint32(low)
}
