package search

import (
	"context"

	"potanist/internal/codec"
	"potanist/internal/rng"
)

// EggIVParams constrains an egg-inheritance seed search: the same six IV
// ranges as StatusParams, plus both parents' stat vectors (HP, Atk, Def,
// Spe, SpA, SpD order) that may rescue an otherwise-out-of-range draw via
// inheritance.
type EggIVParams struct {
	IVRanges   IVRanges
	ParentIVs0 [6]uint8
	ParentIVs1 [6]uint8
}

// EggIVResult is a seed found by EggIVSearch: the iv1 seed position and
// the six resulting stats, whether produced directly by the LCG draws or
// rescued by inheritance. The egg-IV path never recovers a PID.
type EggIVResult struct {
	IV1Seed rng.Seed
	IVs     [6]uint8
}

// slotOrder is the ordered stat list the locus draws remove from, per
// spec §4.6: [HP, Atk, Def, Spe, SpA, SpD].
var slotOrder = [6]int{0, 1, 2, 3, 4, 5}

// EggIVSearch reuses the §4.4 IV-triple enumeration scaffold, but where a
// candidate's direct draws miss the target ranges, it additionally
// simulates the gen-IV egg-inheritance draws to see whether inherited
// stats would have rescued the match.
func EggIVSearch(ctx context.Context, params EggIVParams, progress Progress) []EggIVResult {
	smaller, _, forward := chooseSmaller(params.IVRanges)

	outerRange := smaller.ranges[0]
	outerCount := outerRange.width() + 1

	hits := runOverOuterDimension(ctx, outerCount, progress, func(i int) []EggIVResult {
		a := outerRange.Min + uint8(i)
		var out []EggIVResult

		for b := smaller.ranges[1].Min; b <= smaller.ranges[1].Max; b++ {
			for c := smaller.ranges[2].Min; c <= smaller.ranges[2].Max; c++ {
				rHi0 := codec.Pack(a, b, c)
				rHi1 := rHi0 | 0x8000

				for _, rHi := range [2]rng.Draw{rHi0, rHi1} {
					for rLo := 0; rLo <= 0xFFFF; rLo++ {
						candidate := rng.MakeSeed(rHi, rng.Draw(rLo))

						var iv1Seed, iv2Seed rng.Seed
						if forward {
							iv1Seed = candidate
							iv2Seed = rng.Next(candidate)
						} else {
							iv2Seed = candidate
							iv1Seed = rng.Prev(candidate)
						}

						t1 := codec.Unpack(rng.ExtractDraw(iv1Seed))
						t2 := codec.Unpack(rng.ExtractDraw(iv2Seed))
						directIVs := [6]uint8{t1[0], t1[1], t1[2], t2[0], t2[1], t2[2]}

						if allInRanges(directIVs, params.IVRanges) {
							out = append(out, EggIVResult{IV1Seed: iv1Seed, IVs: directIVs})
							continue
						}

						inherited := applyInheritance(iv2Seed, directIVs, params.ParentIVs0, params.ParentIVs1)
						if allInRanges(inherited, params.IVRanges) {
							out = append(out, EggIVResult{IV1Seed: iv1Seed, IVs: inherited})
						}
					}
				}
			}
		}
		return out
	})

	return hits
}

func allInRanges(ivs [6]uint8, rs IVRanges) bool {
	ranges := [6]IVRange{rs.HP, rs.Atk, rs.Def, rs.Spe, rs.SpA, rs.SpD}
	for i, r := range ranges {
		if !r.Contains(ivs[i]) {
			return false
		}
	}
	return true
}

// applyInheritance simulates the three locus draws and three parent draws
// that follow iv2, and overwrites the chosen three stat slots with the
// chosen parent's value at that slot.
func applyInheritance(iv2Seed rng.Seed, directIVs [6]uint8, parent0, parent1 [6]uint8) [6]uint8 {
	result := directIVs

	remaining := slotOrder
	remainingLen := 6
	s := iv2Seed

	var chosenSlots [3]int
	for i, mod := range [3]int{6, 5, 4} {
		s = rng.Next(s)
		idx := int(rng.ExtractDraw(s)) % mod
		chosenSlots[i] = remaining[idx]
		copy(remaining[idx:remainingLen-1], remaining[idx+1:remainingLen])
		remainingLen--
	}

	var chosenParents [3]int
	for i := 0; i < 3; i++ {
		s = rng.Next(s)
		chosenParents[i] = int(rng.ExtractDraw(s)) % 2
	}

	for i := 0; i < 3; i++ {
		slot := chosenSlots[i]
		if chosenParents[i] == 0 {
			result[slot] = parent0[slot]
		} else {
			result[slot] = parent1[slot]
		}
	}
	return result
}
