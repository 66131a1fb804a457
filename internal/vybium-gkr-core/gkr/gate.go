package gkr

import "github.com/vybium/vybium-gkr-core/field"

// normalizedKind maps a layer's storage kind to the kind its gate math uses.
// LogUpMultiplicities and LogUpSingles are only ever seen at the bottom
// (caller-supplied) layer; one step of NextLayer always collapses them into
// LogUpGeneric, so the gate evaluators below only need to know GrandProduct
// from LogUpGeneric.
func normalizedKind(k Kind) Kind {
	if k == GrandProduct {
		return GrandProduct
	}
	return LogUpGeneric
}

// gateScalar combines the two halves of an oracle's columns into the single
// scalar value the induced sum-check polynomial multiplies against eq(x,y).
// v0 and v1 hold one entry per column (length 1 for GrandProduct, length 2
// -- [numerator, denominator] -- for LogUp).
func gateScalar(kind Kind, v0, v1 []field.E, lambda field.E) field.E {
	switch normalizedKind(kind) {
	case GrandProduct:
		return v0[0].Mul(v1[0])
	default:
		aNum, aDen := v0[0], v0[1]
		bNum, bDen := v1[0], v1[1]
		num := aNum.Mul(bDen).Add(aDen.Mul(bNum))
		den := aDen.Mul(bDen)
		return num.Add(lambda.Mul(den))
	}
}
