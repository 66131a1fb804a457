package channel

import (
	"testing"

	"github.com/vybium/vybium-gkr-core/field"
)

func TestDrawFeltDeterministic(t *testing.T) {
	t1 := New()
	t1.MixFelts([]field.E{field.FromF(field.FromU32(7))})
	a := t1.DrawFelt()

	t2 := New()
	t2.MixFelts([]field.E{field.FromF(field.FromU32(7))})
	b := t2.DrawFelt()

	if !a.Equals(b) {
		t.Errorf("identical transcript histories should draw identical challenges")
	}
}

func TestDrawFeltSensitiveToMixedValue(t *testing.T) {
	t1 := New()
	t1.MixFelts([]field.E{field.FromF(field.FromU32(7))})
	a := t1.DrawFelt()

	t2 := New()
	t2.MixFelts([]field.E{field.FromF(field.FromU32(8))})
	b := t2.DrawFelt()

	if a.Equals(b) {
		t.Errorf("different mixed values should draw different challenges")
	}
}

func TestDrawFeltsSuccessiveValuesDiffer(t *testing.T) {
	tr := New()
	felts := tr.DrawFelts(3)
	if felts[0].Equals(felts[1]) || felts[1].Equals(felts[2]) {
		t.Errorf("successive draws should not repeat")
	}
}

func TestDrawRandomBytesLength(t *testing.T) {
	tr := New()
	b := tr.DrawRandomBytes(50)
	if len(b) != 50 {
		t.Errorf("expected 50 bytes, got %d", len(b))
	}
}
