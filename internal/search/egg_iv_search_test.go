package search

import (
	"context"
	"testing"
)

func TestEggIVSearchDirectMatchNeedsNoInheritance(t *testing.T) {
	params := EggIVParams{
		IVRanges: IVRanges{
			HP: IVRange{31, 31}, Atk: IVRange{31, 31}, Def: IVRange{31, 31},
			Spe: IVRange{31, 31}, SpA: IVRange{31, 31}, SpD: IVRange{31, 31},
		},
	}

	results := EggIVSearch(context.Background(), params, nil)
	if len(results) == 0 {
		t.Fatal("expected at least one all-31 IV egg result")
	}
	for _, r := range results {
		for i, iv := range r.IVs {
			if iv != 31 {
				t.Errorf("result IV[%d] = %d; want 31", i, iv)
			}
		}
	}
}

func TestAllInRanges(t *testing.T) {
	rs := IVRanges{
		HP: IVRange{0, 10}, Atk: IVRange{0, 10}, Def: IVRange{0, 10},
		Spe: IVRange{20, 31}, SpA: IVRange{20, 31}, SpD: IVRange{20, 31},
	}
	ok := [6]uint8{5, 5, 5, 25, 25, 25}
	if !allInRanges(ok, rs) {
		t.Error("allInRanges rejected an in-range vector")
	}
	bad := [6]uint8{5, 5, 5, 25, 25, 15}
	if allInRanges(bad, rs) {
		t.Error("allInRanges accepted an out-of-range vector")
	}
}

func TestApplyInheritanceChoosesThreeDistinctSlots(t *testing.T) {
	direct := [6]uint8{1, 1, 1, 1, 1, 1}
	parent0 := [6]uint8{10, 11, 12, 13, 14, 15}
	parent1 := [6]uint8{20, 21, 22, 23, 24, 25}

	result := applyInheritance(0x12345678, direct, parent0, parent1)

	changed := 0
	for i, v := range result {
		if v != direct[i] {
			changed++
			if v != parent0[i] && v != parent1[i] {
				t.Errorf("slot %d = %d; want a value from either parent", i, v)
			}
		}
	}
	if changed != 3 {
		t.Errorf("%d slots changed; want exactly 3", changed)
	}
}
