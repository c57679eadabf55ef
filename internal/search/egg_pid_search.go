package search

import (
	"context"

	"potanist/internal/rng"
	"potanist/internal/seedtime"
	"potanist/internal/status"
)

// EggPIDParams constrains an egg-PID-based seed search. Nature/Ability use
// -1 to mean "any"; GenderMin uses -1 to mean "any", else the PID's gender
// byte must be >= GenderMin. The egg-PID path never sees IVs, so hidden
// power cannot be tested here.
type EggPIDParams struct {
	Nature      int8  // -1 = any, else 0..24
	Ability     int8  // -1 = any, else 0..1
	GenderMin   int16 // -1 = any, else 0..255
	Shiny       bool
	TID, SID    uint16
	MaxAdvances uint32
	MaxFrameSum uint16
}

// EggPIDResult is a feasible initial seed found by EggPIDSearch, together
// with the encoded position and the PID it produces at that advance.
type EggPIDResult struct {
	InitialSeed rng.Seed
	TimeSum     uint16
	Hour        uint8
	FrameSum    uint16
	Advances    uint32
	PID         uint32
	Nature      uint8
	Ability     uint8
	Gender      uint8
	Shiny       bool
}

// EggPIDSearch enumerates feasible initial-seed encodings directly, per
// spec §4.5: for each time_sum the first matching (hour, frame_sum,
// advance) combination is kept and the search moves to the next time_sum.
// The outer time_sum dimension is parallelized across a worker pool.
func EggPIDSearch(ctx context.Context, params EggPIDParams, progress Progress) []EggPIDResult {
	const timeSumCount = 256

	hits := runOverOuterDimension(ctx, timeSumCount, progress, func(ts int) []EggPIDResult {
		timeSum := uint16(ts)

		for hour := 0; hour <= 23; hour++ {
			for frameSum := 600; frameSum <= int(params.MaxFrameSum); frameSum++ {
				seed := seedtime.Encode(seedtime.Decomposition{
					TimeSum:  timeSum,
					Hour:     uint8(hour),
					FrameSum: uint16(frameSum),
				})

				mt := rng.NewMT(seed)
				for adv := uint32(0); adv <= params.MaxAdvances; adv++ {
					pid := mt.NextPID()
					fields := status.DeriveFromPID(pid, params.TID, params.SID)
					if !matchesEggPIDParams(fields, params) {
						continue
					}
					return []EggPIDResult{{
						InitialSeed: seed,
						TimeSum:     timeSum,
						Hour:        uint8(hour),
						FrameSum:    uint16(frameSum),
						Advances:    adv,
						PID:         pid,
						Nature:      fields.Nature,
						Ability:     fields.Ability,
						Gender:      fields.Gender,
						Shiny:       fields.Shiny,
					}}
				}
			}
		}
		return nil
	})

	return hits
}

func matchesEggPIDParams(fields status.PIDFields, params EggPIDParams) bool {
	if params.Nature != -1 && int8(fields.Nature) != params.Nature {
		return false
	}
	if params.Ability != -1 && int8(fields.Ability) != params.Ability {
		return false
	}
	if params.GenderMin != -1 && int16(fields.Gender) < params.GenderMin {
		return false
	}
	if params.Shiny && !fields.Shiny {
		return false
	}
	return true
}
