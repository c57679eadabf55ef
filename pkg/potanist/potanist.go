// Package potanist is the engine's public facade: a stable import path
// that re-exports the operations of spec §6 without exposing the
// internal/ package layout to external callers (CLI, WebAssembly
// binding, or any other host).
package potanist

import (
	"context"

	"potanist/internal/engconfig"
	"potanist/internal/rng"
	"potanist/internal/search"
	"potanist/internal/seedtime"
	"potanist/internal/sidechannel"
	"potanist/internal/status"
	"potanist/internal/timesum"
)

// Core value types, re-exported so callers never import internal/.
type (
	Seed           = rng.Seed
	IVRange        = search.IVRange
	IVRanges       = search.IVRanges
	Progress       = search.Progress
	Status         = status.Status
	StatusParams   = search.StatusParams
	StatusResult   = search.StatusResult
	EggPIDParams   = search.EggPIDParams
	EggPIDResult   = search.EggPIDResult
	EggIVParams    = search.EggIVParams
	EggIVResult    = search.EggIVResult
	ResolveResult  = seedtime.ResolveResult
	BootEntry      = seedtime.BootEntry
	RoamerMask     = sidechannel.RoamerMask
	Game           = sidechannel.Game
	TimeSumIndex   = timesum.Index
)

// Game values, re-exported.
const (
	GameDiamondPearlPlatinum = sidechannel.GameDiamondPearlPlatinum
	GameHeartGoldSoulSilver  = sidechannel.GameHeartGoldSoulSilver
)

// SearchSeedsFromStatus enumerates seeds whose observed stats match
// params, per spec §4.4.
func SearchSeedsFromStatus(ctx context.Context, params StatusParams, progress Progress) []StatusResult {
	return search.StatusSearch(ctx, params, progress)
}

// SearchSeedsFromEggPID enumerates initial seeds whose egg-PID path
// matches params, per spec §4.5.
func SearchSeedsFromEggPID(ctx context.Context, params EggPIDParams, progress Progress) []EggPIDResult {
	return search.EggPIDSearch(ctx, params, progress)
}

// SearchSeedsFromEggIV enumerates seeds whose egg-IV path (direct or
// inheritance-rescued) matches params, per spec §4.6.
func SearchSeedsFromEggIV(ctx context.Context, params EggIVParams, parentIVs0, parentIVs1 [6]uint8, progress Progress) []EggIVResult {
	params.ParentIVs0 = parentIVs0
	params.ParentIVs1 = parentIVs1
	return search.EggIVSearch(ctx, params, progress)
}

// ResolveInitialSeed walks iv1Seed backwards to a feasible initial-seed
// encoding, per spec §4.7. The second return value is false when no
// feasible encoding exists within maxAdvances.
func ResolveInitialSeed(iv1Seed Seed, maxAdvances uint32, maxFrameSum uint16) (ResolveResult, bool) {
	return seedtime.Resolve(iv1Seed, maxAdvances, maxFrameSum)
}

// CreateBootTimeMap enumerates realizable real-world boot moments for
// initialSeed across years 0-99, per spec §4.8.
func CreateBootTimeMap(idx *TimeSumIndex, initialSeed Seed, blankFrame int) map[int][]BootEntry {
	return seedtime.CreateBootTimeMap(idx, initialSeed, blankFrame)
}

// CreateCallResponseSequenceMap implements the telephone-call side
// channel of spec §4.9.
func CreateCallResponseSequenceMap(initialSeed Seed, n, window int) map[Seed][10]int {
	return sidechannel.CreateCallResponseSequenceMap(initialSeed, n, window)
}

// CreateRoamersLocationMap implements the roaming-legendary side channel
// of spec §4.9.
func CreateRoamersLocationMap(initialSeed Seed, mask RoamerMask, window int) map[Seed][]string {
	return sidechannel.CreateRoamersLocationMap(initialSeed, mask, window)
}

// CreateCoinFlipResultMap implements the DPPt coin-flip side channel of
// spec §4.9. Callers passing GameHeartGoldSoulSilver get an empty map.
func CreateCoinFlipResultMap(game Game, initialSeed Seed, window int) map[Seed][10]bool {
	return sidechannel.CreateCoinFlipResultMap(game, initialSeed, window)
}

// LoadTimeSumIndex loads the persisted TimeSumIndex artifact. Per spec
// §7, a missing or corrupt artifact is engine-fatal.
func LoadTimeSumIndex(path string) (*TimeSumIndex, error) {
	return timesum.Load(path)
}

// LoadDefaultTimeSumIndex loads the persisted TimeSumIndex artifact from
// the configured default location: the POTANIST_TIMESUM_INDEX
// environment variable if set, else the engine's bundled default path.
// Hosts that don't need to override the artifact location can call this
// instead of resolving engconfig.IndexPath themselves.
func LoadDefaultTimeSumIndex() (*TimeSumIndex, error) {
	return timesum.Load(engconfig.IndexPath())
}

// BuildTimeSumIndex constructs the TimeSumIndex from scratch; this is the
// offline, build-time step a deployment runs once before persisting the
// result with SaveTimeSumIndex.
func BuildTimeSumIndex() *TimeSumIndex {
	return timesum.Build()
}

// SaveTimeSumIndex persists idx to path for later loading via
// LoadTimeSumIndex.
func SaveTimeSumIndex(idx *TimeSumIndex, path string) error {
	return timesum.Save(idx, path)
}

// DeriveStatus recovers the full observable status at iv1Seed, per
// spec §4.3. Exposed directly since callers that already hold a seed
// (e.g. from a prior search) often need this without going through
// SearchSeedsFromStatus again.
func DeriveStatus(iv1Seed Seed, tid, sid uint16) Status {
	return status.DeriveFrom(iv1Seed, tid, sid)
}
