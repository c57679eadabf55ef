// Package status derives the full observable Pokemon status — IVs, PID,
// nature, gender, ability, shinyness, and hidden power — from a seed
// position in the RNG sequence.
package status

import (
	"potanist/internal/codec"
	"potanist/internal/rng"
)

// Status is the full set of observable attributes recoverable from one
// seed position.
type Status struct {
	IVs              [6]uint8 // HP, Atk, Def, Spe, SpA, SpD
	PID              uint32
	Nature           uint8
	Ability          uint8
	Gender           uint8
	Shiny            bool
	HiddenPowerType  uint8
	HiddenPowerPower uint8
}

// IV slot indices, in the order the game partitions the two draws.
const (
	HP = iota
	Atk
	Def
	Spe
	SpA
	SpD
)

// DeriveFrom computes the full status given the first of the two IV
// seeds (iv1) plus the trainer's TID/SID for the shiny check. iv1 is the
// seed position whose draw yields the first IV triple (HP, Atk, Def);
// the second triple (Spe, SpA, SpD) comes from Next(iv1), and the PID
// comes from the two LCG positions immediately before iv1.
func DeriveFrom(iv1 rng.Seed, tid, sid uint16) Status {
	pid2 := rng.Prev(iv1)
	pid1 := rng.Prev(pid2)
	iv2 := rng.Next(iv1)

	pid := rng.MakeSeed(rng.ExtractDraw(pid2), rng.ExtractDraw(pid1))

	t1 := codec.Unpack(rng.ExtractDraw(iv1))
	t2 := codec.Unpack(rng.ExtractDraw(iv2))

	return fromPIDAndIVs(pid, [6]uint8{t1[0], t1[1], t1[2], t2[0], t2[1], t2[2]}, tid, sid)
}

// DeriveAt re-derives the status that a seed known to be `advances`
// LCG steps before iv1 would produce — used to verify that a search
// result's recorded advance count reproduces every field exactly
// (spec invariant 3).
func DeriveAt(seed rng.Seed, advances uint32, tid, sid uint16) Status {
	s := seed
	for i := uint32(0); i < advances; i++ {
		s = rng.Next(s)
	}
	return DeriveFrom(s, tid, sid)
}

func fromPIDAndIVs(pid uint32, ivs [6]uint8, tid, sid uint16) Status {
	return Status{
		IVs:              ivs,
		PID:              pid,
		Nature:           uint8(pid % 25),
		Ability:          uint8(pid & 1),
		Gender:           uint8(pid & 0xFF),
		Shiny:            IsShiny(pid, tid, sid),
		HiddenPowerType:  HiddenPowerType(ivs),
		HiddenPowerPower: HiddenPowerPower(ivs),
	}
}

// PIDFields is the subset of Status derivable from a PID alone, with no
// IV information — the shape the egg-PID search path can fill in.
type PIDFields struct {
	Nature  uint8
	Ability uint8
	Gender  uint8
	Shiny   bool
}

// DeriveFromPID computes nature/ability/gender/shiny directly from a PID,
// without needing the IV seeds that produced it.
func DeriveFromPID(pid uint32, tid, sid uint16) PIDFields {
	return PIDFields{
		Nature:  uint8(pid % 25),
		Ability: uint8(pid & 1),
		Gender:  uint8(pid & 0xFF),
		Shiny:   IsShiny(pid, tid, sid),
	}
}

// IsShiny implements the shiny condition: ((TID^SID) ^ (PID_hi^PID_lo)) <= 7.
func IsShiny(pid uint32, tid, sid uint16) bool {
	tsid := uint32(tid) ^ uint32(sid)
	pidXor := (pid >> 16) ^ (pid & 0xFFFF)
	return (tsid ^ pidXor) <= 7
}

// hiddenPowerWeights are the per-stat weights (1,2,4,8,16,32) applied to
// each stat's odd/even parity bit, in HP/Atk/Def/Spe/SpA/SpD order.
var hiddenPowerWeights = [6]uint32{1, 2, 4, 8, 16, 32}

func hiddenPowerSum(ivs [6]uint8) uint32 {
	var sum uint32
	for i, iv := range ivs {
		if iv%2 == 1 {
			sum += hiddenPowerWeights[i]
		}
	}
	return sum
}

// HiddenPowerType computes floor(sum*15/63) over the six IV parity bits.
func HiddenPowerType(ivs [6]uint8) uint8 {
	return uint8(hiddenPowerSum(ivs) * 15 / 63)
}

// HiddenPowerPower computes floor(sum*40/63) + 30 over the six IV parity bits.
func HiddenPowerPower(ivs [6]uint8) uint8 {
	return uint8(hiddenPowerSum(ivs)*40/63) + 30
}
