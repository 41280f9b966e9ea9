package babyjub

import (
	"math/big"
	"testing"
)

func TestAddPointOnCurve(t *testing.T) {
	result := Add(Identity(), Base8)
	if !InCurve(result) {
		t.Error("Base8 + identity should be on curve")
	}
}

func TestScalarMultiplication(t *testing.T) {
	pub := MulScalar(Base8, big.NewInt(324))
	if !InCurve(pub) {
		t.Error("324*Base8 should be on curve")
	}
}

func TestPackPointStructure(t *testing.T) {
	pub := MulScalar(Base8, big.NewInt(324))
	packed, err := Pack(pub)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	stripped := make([]byte, 32)
	copy(stripped, packed)
	stripped[31] &= 0x7f
	gotY := new(big.Int)
	for i := 31; i >= 0; i-- {
		gotY.Lsh(gotY, 8)
		gotY.Or(gotY, big.NewInt(int64(stripped[i])))
	}
	if gotY.Cmp(pub.Y) != 0 {
		t.Errorf("packed y mismatch: got %s, want %s", gotY, pub.Y)
	}
}

func TestUnpackPointMatchesOriginal(t *testing.T) {
	pub := MulScalar(Base8, big.NewInt(324))
	packed, err := Pack(pub)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	unpacked, err := Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if unpacked.X.Cmp(pub.X) != 0 || unpacked.Y.Cmp(pub.Y) != 0 {
		t.Errorf("unpack mismatch: got (%s,%s), want (%s,%s)", unpacked.X, unpacked.Y, pub.X, pub.Y)
	}
}

func TestUnpackCustomPoint(t *testing.T) {
	x, _ := new(big.Int).SetString("10207164244839265210731148792003399330071235260758262804307337735329782473514", 10)
	y, _ := new(big.Int).SetString("4504034976288485670718230979254896078098063043333320048161019268102694534400", 10)
	pub := Point{X: x, Y: y}

	packed, err := Pack(pub)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	unpacked, err := Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if unpacked.X.Cmp(pub.X) != 0 || unpacked.Y.Cmp(pub.Y) != 0 {
		t.Errorf("unpack mismatch: got (%s,%s), want (%s,%s)", unpacked.X, unpacked.Y, pub.X, pub.Y)
	}
}

func TestUnpackInvalidYFails(t *testing.T) {
	x, _ := new(big.Int).SetString("10207164244839265210731148792003399330071235260758262804307337735329782473514", 10)
	y := new(big.Int).Add(R, big.NewInt(1))
	pub := Point{X: x, Y: y}

	packed, err := Pack(pub)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if _, err := Unpack(packed); err == nil {
		t.Error("expected error unpacking a point with y >= R")
	}
}

func TestInSubGroup(t *testing.T) {
	if !InSubGroup(Base8) {
		t.Error("Base8 should be in the prime subgroup")
	}
	if !InSubGroup(Identity()) {
		t.Error("identity should be in the prime subgroup")
	}
}
