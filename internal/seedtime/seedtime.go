// Package seedtime resolves the initial-seed encoding that an accepted
// search result implies, and enumerates the real-world boot moments that
// would produce it.
package seedtime

import (
	"sort"

	"potanist/internal/rng"
	"potanist/internal/timesum"
)

// Decomposition is a 32-bit seed's three encoded fields: time_sum
// (bits 24-31), hour (bits 16-23), frame_sum (bits 0-15).
type Decomposition struct {
	TimeSum  uint16
	Hour     uint8
	FrameSum uint16
}

// Encode packs a decomposition back into a 32-bit seed.
func Encode(d Decomposition) rng.Seed {
	return uint32(d.TimeSum&0xFF)<<24 | uint32(d.Hour)<<16 | uint32(d.FrameSum)
}

// Decode splits a 32-bit seed into its three encoded fields.
func Decode(s rng.Seed) Decomposition {
	return Decomposition{
		TimeSum:  uint16(s >> 24),
		Hour:     uint8((s >> 16) & 0xFF),
		FrameSum: uint16(s & 0xFFFF),
	}
}

// maxTimeSum is the largest real time_sum TimeSumIndex can produce:
// 12*31 + 59 + 59.
const maxTimeSum = 490

// wrapThreshold is the point below which an encoded 8-bit time_sum is
// ambiguous with its |0x100 counterpart (490 = 0x1EA, so any encoded
// value below 0xEA could be either itself or itself+0x100).
const wrapThreshold = 0xEA

// ResolveResult is a feasible initial seed located by Resolve.
type ResolveResult struct {
	InitialSeed rng.Seed
	Advances    uint32
	Decoded     Decomposition
}

// Resolve walks iv1 backwards looking for a feasible initial-seed
// encoding, per spec §4.7. The pre-step (prev(iv1)) accounts for the
// possibility that the earlier of the two PID seeds is itself the
// initial seed; the loop's first checked candidate is therefore
// prev(prev(iv1)), and advances is reported net of that pre-step.
func Resolve(iv1 rng.Seed, maxAdvances uint32, maxFrameSum uint16) (ResolveResult, bool) {
	s := rng.Prev(iv1)
	for adv := uint32(0); adv <= maxAdvances; adv++ {
		s = rng.Prev(s)
		d := Decode(s)
		if feasible(d, maxFrameSum) {
			return ResolveResult{InitialSeed: s, Advances: adv, Decoded: d}, true
		}
	}
	return ResolveResult{}, false
}

// feasible reports whether a decomposition could be a genuine initial
// seed. d.TimeSum is always in [0, 255] (the high byte of a 32-bit
// seed), so the maxTimeSum (490) comparison never rejects anything by
// itself; it documents the wrapped time_sum feasibility bound from §3
// (the true time_sum may be d.TimeSum or d.TimeSum|0x100, and either way
// must not exceed 490) rather than enforcing it directly here.
func feasible(d Decomposition, maxFrameSum uint16) bool {
	if d.TimeSum > maxTimeSum {
		return false
	}
	if d.Hour >= 24 {
		return false
	}
	if d.FrameSum < 600 || d.FrameSum > maxFrameSum+99 {
		return false
	}
	return true
}

// BootEntry is one realizable real-world boot moment.
type BootEntry struct {
	Month, Day     uint8
	Hour, Minute   uint8
	BootSec, Second uint8
}

// CreateBootTimeMap enumerates every realizable boot moment for the given
// initial seed across years 0-99, per spec §4.8. Years producing nothing
// realizable are omitted from the returned map rather than included
// empty.
func CreateBootTimeMap(idx *timesum.Index, initialSeed rng.Seed, blankFrame int) map[int][]BootEntry {
	d := Decode(initialSeed)

	candidates := []uint16{d.TimeSum}
	if d.TimeSum < wrapThreshold {
		candidates = append(candidates, d.TimeSum|0x100)
	}

	result := make(map[int][]BootEntry)

	for year := 0; year <= 99; year++ {
		frame := int(d.FrameSum) - year
		if frame < 0 {
			continue
		}
		waitingTime := (frame + blankFrame) / 60
		if waitingTime < 14 {
			continue
		}

		best := make(map[[2]uint8]BootEntry)
		var order [][2]uint8

		for _, ts := range candidates {
			for _, e := range idx.Lookup(ts) {
				if int(e.Second) < waitingTime {
					continue
				}
				bootSec := int(e.Second) - waitingTime
				if bootSec < 10 {
					continue
				}

				key := [2]uint8{e.Month, e.Day}
				candidate := BootEntry{
					Month:   e.Month,
					Day:     e.Day,
					Hour:    d.Hour,
					Minute:  e.Minute,
					BootSec: uint8(bootSec),
					Second:  e.Second,
				}
				existing, seen := best[key]
				if !seen {
					order = append(order, key)
					best[key] = candidate
				} else if candidate.BootSec < existing.BootSec {
					best[key] = candidate
				}
			}
		}

		if len(order) == 0 {
			continue
		}
		sort.Slice(order, func(i, j int) bool {
			if order[i][0] != order[j][0] {
				return order[i][0] < order[j][0]
			}
			return order[i][1] < order[j][1]
		})

		entries := make([]BootEntry, 0, len(order))
		for _, key := range order {
			entries = append(entries, best[key])
		}
		result[year] = entries
	}

	return result
}
