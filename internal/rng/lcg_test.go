package rng

import "testing"

func TestNextKnownValue(t *testing.T) {
	if got := Next(0x00000000); got != 0x00006073 {
		t.Errorf("Next(0) = %#08x; want 0x00006073", got)
	}
}

func TestPrevKnownValue(t *testing.T) {
	if got := Prev(0x00006073); got != 0x00000000 {
		t.Errorf("Prev(0x6073) = %#08x; want 0", got)
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	seeds := []uint32{0, 1, 0x12345678, 0xFFFFFFFF, 0x80000000, 0xDEADBEEF, 0x41C64E6D}
	for _, s := range seeds {
		if got := Prev(Next(s)); got != s {
			t.Errorf("Prev(Next(%#08x)) = %#08x; want %#08x", s, got, s)
		}
		if got := Next(Prev(s)); got != s {
			t.Errorf("Next(Prev(%#08x)) = %#08x; want %#08x", s, got, s)
		}
	}
}

func TestExtractDrawIsHighHalf(t *testing.T) {
	if got := ExtractDraw(0x12345678); got != 0x1234 {
		t.Errorf("ExtractDraw(0x12345678) = %#04x; want 0x1234", got)
	}
}

func TestMakeSeedRoundTrip(t *testing.T) {
	high, low := Draw(0x1234), Draw(0x5678)
	s := MakeSeed(high, low)
	if s != 0x12345678 {
		t.Errorf("MakeSeed(%#04x, %#04x) = %#08x; want 0x12345678", high, low, s)
	}
	if got := ExtractDraw(s); got != high {
		t.Errorf("ExtractDraw(MakeSeed(h, l)) = %#04x; want %#04x", got, high)
	}
}
