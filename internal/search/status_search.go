package search

import (
	"context"

	"potanist/internal/codec"
	"potanist/internal/rng"
	"potanist/internal/status"
)

// StatusParams constrains a status-based seed search. Nature/Ability/
// HiddenPowerType use -1 to mean "any"; HiddenPowerPower is only checked
// when HiddenPowerType is constrained (per the Rust original's
// check_hidden_power_power, which gates on hidden_power_type != -1).
type StatusParams struct {
	IVRanges         IVRanges
	Nature           int8 // -1 = any, else 0..24
	Ability          int8 // -1 = any, else 0..1
	HiddenPowerType  int8 // -1 = any, else 0..15
	HiddenPowerPower IVRange
	Shiny            bool
	TID, SID         uint16
}

// StatusResult is a seed found by StatusSearch: the seed position whose
// draws produce the first of the two IV-bearing seeds, plus the full
// status it derives. The initial seed is resolved separately from
// IV1Seed (see seedtime.Resolve).
type StatusResult struct {
	IV1Seed rng.Seed
	Status  status.Status
}

// StatusSearch enumerates every 32-bit iv1-seed whose two consecutive
// draws satisfy params, per spec §4.4. The smaller-volume IV triple
// (HP,Atk,Def) or (Spe,SpA,SpD) is enumerated; its outermost component is
// parallelized across a worker pool (spec §5).
func StatusSearch(ctx context.Context, params StatusParams, progress Progress) []StatusResult {
	smaller, larger, forward := chooseSmaller(params.IVRanges)

	outerRange := smaller.ranges[0]
	outerCount := outerRange.width() + 1

	hits := runOverOuterDimension(ctx, outerCount, progress, func(i int) []StatusResult {
		a := outerRange.Min + uint8(i)
		var out []StatusResult

		for b := smaller.ranges[1].Min; b <= smaller.ranges[1].Max; b++ {
			for c := smaller.ranges[2].Min; c <= smaller.ranges[2].Max; c++ {
				rHi0 := codec.Pack(a, b, c)
				rHi1 := rHi0 | 0x8000

				for _, rHi := range [2]rng.Draw{rHi0, rHi1} {
					for rLo := 0; rLo <= 0xFFFF; rLo++ {
						candidate := rng.MakeSeed(rHi, rng.Draw(rLo))

						var iv1Seed rng.Seed
						var complementaryDraw rng.Draw
						if forward {
							iv1Seed = candidate
							complementaryDraw = rng.ExtractDraw(rng.Next(candidate))
						} else {
							iv1Seed = rng.Prev(candidate)
							complementaryDraw = rng.ExtractDraw(iv1Seed)
						}

						complementary := codec.Unpack(complementaryDraw)
						if !larger.ranges[0].Contains(complementary[0]) ||
							!larger.ranges[1].Contains(complementary[1]) ||
							!larger.ranges[2].Contains(complementary[2]) {
							continue
						}

						st := status.DeriveFrom(iv1Seed, params.TID, params.SID)
						if matchesStatusParams(st, params) {
							out = append(out, StatusResult{IV1Seed: iv1Seed, Status: st})
						}
					}
				}
			}
		}
		return out
	})

	return hits
}

func matchesStatusParams(st status.Status, params StatusParams) bool {
	if params.Nature != -1 && int8(st.Nature) != params.Nature {
		return false
	}
	if params.Ability != -1 && int8(st.Ability) != params.Ability {
		return false
	}
	if params.HiddenPowerType != -1 {
		if int8(st.HiddenPowerType) != params.HiddenPowerType {
			return false
		}
		if !params.HiddenPowerPower.Contains(st.HiddenPowerPower) {
			return false
		}
	}
	if params.Shiny && !st.Shiny {
		return false
	}
	return true
}
