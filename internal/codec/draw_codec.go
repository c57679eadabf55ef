// Package codec packs and unpacks the 15-bit IV triples that the RNG's
// 16-bit draws carry.
package codec

import "potanist/internal/rng"

// IVTriple is an ordered triple of individual values, one half of a
// six-stat status (HP/Atk/Def or Spe/SpA/SpD).
type IVTriple [3]uint8

// Pack encodes a triple of IVs (0-31 each) into the low 15 bits of a draw.
// The 16th bit (MSB) carries no stat information and is left 0; callers
// that need to enumerate both possibilities OR in 0x8000 separately.
func Pack(a, b, c uint8) rng.Draw {
	return rng.Draw(uint16(a&0x1F) | uint16(b&0x1F)<<5 | uint16(c&0x1F)<<10)
}

// PackTriple is a convenience wrapper over Pack.
func PackTriple(t IVTriple) rng.Draw {
	return Pack(t[0], t[1], t[2])
}

// Unpack is the total inverse of Pack over the low 15 bits: the MSB is
// ignored.
func Unpack(draw rng.Draw) IVTriple {
	return IVTriple{
		uint8(draw & 0x1F),
		uint8((draw >> 5) & 0x1F),
		uint8((draw >> 10) & 0x1F),
	}
}
