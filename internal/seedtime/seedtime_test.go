package seedtime

import (
	"testing"

	"potanist/internal/rng"
	"potanist/internal/timesum"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := Decomposition{TimeSum: 100, Hour: 12, FrameSum: 700}
	got := Decode(Encode(d))
	if got != d {
		t.Errorf("Decode(Encode(%+v)) = %+v", d, got)
	}
}

func TestResolveFindsKnownDecomposition(t *testing.T) {
	target := Decomposition{TimeSum: 100, Hour: 12, FrameSum: 700}
	targetSeed := Encode(target)

	// Resolve consumes a pre-step prev(iv1) before the loop even starts,
	// then prevs again each iteration, so its first checked candidate is
	// prev(prev(iv1)): an iv1 that is `advances+2` Next-steps ahead of
	// targetSeed should be reported with that exact advance count.
	iv1 := rng.Next(rng.Next(targetSeed))

	got, ok := Resolve(iv1, 3, target.FrameSum)
	if !ok {
		t.Fatal("Resolve did not find a feasible decomposition")
	}
	if got.Advances != 0 {
		t.Errorf("Advances = %d; want 0", got.Advances)
	}
	if got.Decoded != target {
		t.Errorf("Decoded = %+v; want %+v", got.Decoded, target)
	}
	if got.InitialSeed != targetSeed {
		t.Errorf("InitialSeed = %#x; want %#x", got.InitialSeed, targetSeed)
	}
}

func TestResolveCountsAdvancesPastPreStep(t *testing.T) {
	target := Decomposition{TimeSum: 100, Hour: 12, FrameSum: 700}
	targetSeed := Encode(target)

	iv1 := rng.Next(rng.Next(rng.Next(rng.Next(targetSeed))))

	got, ok := Resolve(iv1, 3, target.FrameSum)
	if !ok {
		t.Fatal("Resolve did not find a feasible decomposition")
	}
	if got.Advances != 2 {
		t.Errorf("Advances = %d; want 2", got.Advances)
	}
	if got.Decoded != target {
		t.Errorf("Decoded = %+v; want %+v", got.Decoded, target)
	}
}

func TestResolveReturnsAbsenceWhenBudgetExhausted(t *testing.T) {
	// With a zero-advance budget the only seed checked is
	// prev(prev(infeasible)), which decodes to hour 232 and frame_sum
	// 35744, outside the feasible window.
	infeasible := Encode(Decomposition{TimeSum: 0x1FF, Hour: 30, FrameSum: 10})
	_, ok := Resolve(infeasible, 0, 700)
	if ok {
		t.Fatal("expected no feasible decomposition within a zero-advance budget")
	}
}

func TestBootTimeEnumeratorScenario(t *testing.T) {
	idx := timesum.Build()
	seed := rng.Seed(0x0A140258)
	blankFrame := 0

	bootMap := CreateBootTimeMap(idx, seed, blankFrame)
	if len(bootMap) == 0 {
		t.Fatal("expected at least one realizable boot year for seed 0x0A140258")
	}

	d := Decode(seed)

	for year, entries := range bootMap {
		frame := int(d.FrameSum) - year
		waitingTime := (frame + blankFrame) / 60

		for _, e := range entries {
			if int(e.Second) < waitingTime {
				t.Errorf("year %d %02d/%02d: second %d < waiting_time %d", year, e.Month, e.Day, e.Second, waitingTime)
			}
			if e.BootSec < 10 {
				t.Errorf("year %d %02d/%02d: boot_sec %d < 10", year, e.Month, e.Day, e.BootSec)
			}

			fullTimeSum := uint16(int(e.Month)*int(e.Day) + int(e.Minute) + int(e.Second))
			recomposed := Encode(Decomposition{
				TimeSum:  fullTimeSum,
				Hour:     e.Hour,
				FrameSum: uint16(frame + year),
			})
			if recomposed != seed {
				t.Errorf("year %d %02d/%02d: recomposed seed %#x != input seed %#x", year, e.Month, e.Day, recomposed, seed)
			}
		}
	}
}

func TestBootTimeEnumeratorOmitsUnrealizableYears(t *testing.T) {
	idx := timesum.Build()
	// frame_sum = 600 with blank_frame 0 leaves no year with
	// waiting_time >= 14, so every year is omitted.
	seed := Encode(Decomposition{TimeSum: 1, Hour: 0, FrameSum: 600})
	bootMap := CreateBootTimeMap(idx, seed, 0)
	for year := range bootMap {
		t.Errorf("year %d present; no year is realizable for frame_sum 600", year)
	}
}
