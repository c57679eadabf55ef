package sidechannel

import (
	"testing"

	"potanist/internal/rng"
)

func TestCallResponseMapWindowZeroMatchesDrawStream(t *testing.T) {
	const seed rng.Seed = 0x12345678
	const n = 5

	got := CreateCallResponseSequenceMap(seed, n, 0)
	if len(got) != 1 {
		t.Fatalf("window 0 produced %d candidates; want 1", len(got))
	}

	s := seed
	for i := 0; i < n; i++ {
		s = rng.Next(s)
	}
	var want [10]int
	for i := range want {
		s = rng.Next(s)
		want[i] = int(rng.ExtractDraw(s)) % 3
	}

	if got[seed] != want {
		t.Errorf("responses = %v; want %v", got[seed], want)
	}
}

func TestCallResponseMapWindowCoversEverySeed(t *testing.T) {
	const seed rng.Seed = 100
	got := CreateCallResponseSequenceMap(seed, 1, 3)
	if len(got) != 7 {
		t.Fatalf("window 3 produced %d candidates; want 7", len(got))
	}
	for delta := -3; delta <= 3; delta++ {
		if _, ok := got[seed+rng.Seed(delta)]; !ok {
			t.Errorf("missing candidate seed %d", seed+rng.Seed(delta))
		}
	}
}

func TestRoamerLocationMaskSelectsJohtoAndKanto(t *testing.T) {
	const seed rng.Seed = 0xCAFEBABE
	mask := RoamerMask{true, false, true}

	got := CreateRoamersLocationMap(seed, mask, 0)
	routes, ok := got[seed]
	if !ok {
		t.Fatal("missing entry for window-0 candidate")
	}
	if len(routes) != 2 {
		t.Fatalf("len(routes) = %d; want 2", len(routes))
	}

	s := rng.Next(seed)
	wantJohto := johtoRoutes[int(rng.ExtractDraw(s))%len(johtoRoutes)]
	s = rng.Next(s)
	wantKanto := kantoRoutes[int(rng.ExtractDraw(s))%len(kantoRoutes)]

	if routes[0] != wantJohto {
		t.Errorf("routes[0] = %q; want %q", routes[0], wantJohto)
	}
	if routes[1] != wantKanto {
		t.Errorf("routes[1] = %q; want %q", routes[1], wantKanto)
	}
}

func TestRoamerLocationSkippedIndexConsumesNoDraw(t *testing.T) {
	const seed rng.Seed = 42
	onlyFirst := CreateRoamersLocationMap(seed, RoamerMask{true, false, false}, 0)
	onlyFirstAndSecond := CreateRoamersLocationMap(seed, RoamerMask{true, true, false}, 0)

	if onlyFirst[seed][0] != onlyFirstAndSecond[seed][0] {
		t.Error("enabling index 1 changed index 0's route; disabled indices must not consume draws")
	}
}

func TestCoinFlipMapDPPtOnly(t *testing.T) {
	const seed rng.Seed = 0x78000489

	hgss := CreateCoinFlipResultMap(GameHeartGoldSoulSilver, seed, 2)
	if len(hgss) != 0 {
		t.Errorf("HGSS coin-flip map len = %d; want 0", len(hgss))
	}

	dppt := CreateCoinFlipResultMap(GameDiamondPearlPlatinum, seed, 0)
	flips, ok := dppt[seed]
	if !ok {
		t.Fatal("missing DPPt entry for window-0 candidate")
	}

	mt := rng.NewMT(uint32(seed))
	var want [10]bool
	for i := range want {
		want[i] = mt.NextPID()%2 == 1
	}
	if flips != want {
		t.Errorf("flips = %v; want %v", flips, want)
	}
}
