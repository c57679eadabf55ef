// Package sidechannel implements the non-stat observables that can
// corroborate or narrow a seed search: telephone-call response patterns,
// roaming-legendary encounter locations, and the DPPt coin-flip minigame.
package sidechannel

import "potanist/internal/rng"

// windowCandidates returns every seed in [center-window, center+window],
// ascending. Arithmetic wraps modularly over uint32, matching every other
// seed-valued operation in this engine.
func windowCandidates(center rng.Seed, window int) []rng.Seed {
	candidates := make([]rng.Seed, 0, 2*window+1)
	for delta := -window; delta <= window; delta++ {
		candidates = append(candidates, center+rng.Seed(delta))
	}
	return candidates
}

// CreateCallResponseSequenceMap computes, for every candidate seed within
// window of initialSeed, the ten call-response indices (0-2) that follow
// n LCG advances, per spec §4.9.
func CreateCallResponseSequenceMap(initialSeed rng.Seed, n, window int) map[rng.Seed][10]int {
	result := make(map[rng.Seed][10]int)
	for _, candidate := range windowCandidates(initialSeed, window) {
		s := candidate
		for i := 0; i < n; i++ {
			s = rng.Next(s)
		}

		var responses [10]int
		for i := range responses {
			s = rng.Next(s)
			responses[i] = int(rng.ExtractDraw(s)) % 3
		}
		result[candidate] = responses
	}
	return result
}

// RoamerMask selects which of the three roamers (Raikou, Entei,
// Latios/Latias, in that order) are active.
type RoamerMask [3]bool

// CreateRoamersLocationMap computes, for every candidate seed within
// window of initialSeed, the route each active roamer in mask lands on.
// Indices 0 and 1 consult the Johto table (draw mod 16); index 2 consults
// the Kanto table (draw mod 25). A disabled index consumes no draw and
// contributes no entry to the result slice.
func CreateRoamersLocationMap(initialSeed rng.Seed, mask RoamerMask, window int) map[rng.Seed][]string {
	result := make(map[rng.Seed][]string)
	for _, candidate := range windowCandidates(initialSeed, window) {
		s := candidate
		var routes []string
		for i, enabled := range mask {
			if !enabled {
				continue
			}
			s = rng.Next(s)
			draw := rng.ExtractDraw(s)
			if i == 2 {
				routes = append(routes, kantoRoutes[int(draw)%len(kantoRoutes)])
			} else {
				routes = append(routes, johtoRoutes[int(draw)%len(johtoRoutes)])
			}
		}
		result[candidate] = routes
	}
	return result
}

// CreateCoinFlipResultMap computes, for every candidate seed within
// window of initialSeed, the next ten tempered-PID parity bits from an MT
// instantiated with that candidate. DPPt only: HGSS never exposes this
// minigame, so callers passing GameHeartGoldSoulSilver get an empty map
// rather than an error (searches that don't apply return nothing, per
// spec's failure semantics).
func CreateCoinFlipResultMap(game Game, initialSeed rng.Seed, window int) map[rng.Seed][10]bool {
	result := make(map[rng.Seed][10]bool)
	if game != GameDiamondPearlPlatinum {
		return result
	}

	for _, candidate := range windowCandidates(initialSeed, window) {
		mt := rng.NewMT(uint32(candidate))
		var flips [10]bool
		for i := range flips {
			flips[i] = mt.NextPID()%2 == 1
		}
		result[candidate] = flips
	}
	return result
}
