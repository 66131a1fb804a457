package gkr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-gkr-core/channel"
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
)

func ef(v uint32) field.E { return field.FromF(field.FromU32(v)) }

func grandProductOf(values []field.E) field.E {
	product := field.EOne()
	for _, v := range values {
		product = product.Mul(v)
	}
	return product
}

// TestGrandProductRoundtrip proves and verifies a grand-product circuit over
// 2^5 elements: the prover's claimed output must equal the straightforward
// product of the witness, and the verifier must accept the honest proof.
func TestGrandProductRoundtrip(t *testing.T) {
	n := 32
	values := make([]field.E, n)
	for i := range values {
		values[i] = ef(uint32(i + 1))
	}
	inputLayer := Layer{Kind: GrandProduct, Data: poly.NewMLE(values)}

	proverTranscript := channel.New()
	instanceProof, artifact := ProveInstance(proverTranscript, inputLayer)

	if len(instanceProof.OutputValues) != 1 {
		t.Fatalf("expected 1 output value, got %d", len(instanceProof.OutputValues))
	}
	want := grandProductOf(values)
	if !instanceProof.OutputValues[0].Equals(want) {
		t.Fatalf("output value mismatch: got %s, want %s", instanceProof.OutputValues[0], want)
	}

	verifierTranscript := channel.New()
	gotArtifact, err := VerifyInstance(verifierTranscript, 0, inputLayer.NVariables(), instanceProof)
	require.NoError(t, err)

	require.Len(t, gotArtifact.OODPoint, inputLayer.NVariables())
	require.Len(t, gotArtifact.InputClaims, 1)

	wantClaim := inputLayer.Data.EvalAtPoint(gotArtifact.OODPoint)
	if !gotArtifact.InputClaims[0].Equals(wantClaim) {
		t.Errorf("input claim %s does not match input layer evaluated at OOD point, want %s", gotArtifact.InputClaims[0], wantClaim)
	}
	if artifact.OODPoint == nil {
		t.Errorf("prover artifact missing OOD point")
	}
}

// TestGrandProductRejectsTamperedOutput checks that a proof claiming the
// wrong product fails verification rather than silently succeeding.
func TestGrandProductRejectsTamperedOutput(t *testing.T) {
	n := 8
	values := make([]field.E, n)
	for i := range values {
		values[i] = ef(uint32(i + 1))
	}
	inputLayer := Layer{Kind: GrandProduct, Data: poly.NewMLE(values)}

	transcript := channel.New()
	instanceProof, _ := ProveInstance(transcript, inputLayer)
	instanceProof.OutputValues[0] = instanceProof.OutputValues[0].Add(field.EOne())

	verifierTranscript := channel.New()
	_, err := VerifyInstance(verifierTranscript, 0, inputLayer.NVariables(), instanceProof)
	if err == nil {
		t.Fatalf("expected verification failure for tampered output")
	}
}

// TestLogUpGenericRoundtrip proves and verifies a LogUp circuit whose
// fraction sum is known in advance.
func TestLogUpGenericRoundtrip(t *testing.T) {
	numerators := []field.E{ef(1), ef(1), ef(1), ef(1)}
	denominators := []field.E{ef(2), ef(3), ef(5), ef(7)}
	inputLayer := Layer{
		Kind:          LogUpGeneric,
		NumeratorsE:   poly.NewMLE(numerators),
		DenominatorsE: poly.NewMLE(denominators),
	}

	proverTranscript := channel.New()
	instanceProof, _ := ProveInstance(proverTranscript, inputLayer)
	if len(instanceProof.OutputValues) != 2 {
		t.Fatalf("expected 2 output values, got %d", len(instanceProof.OutputValues))
	}

	sum := poly.NewReciprocal(denominators[0])
	for _, d := range denominators[1:] {
		sum = sum.Add(poly.NewReciprocal(d))
	}
	if !instanceProof.OutputValues[0].Equals(sum.Numerator) || !instanceProof.OutputValues[1].Equals(sum.Denominator) {
		t.Fatalf("output fraction mismatch: got (%s, %s), want (%s, %s)",
			instanceProof.OutputValues[0], instanceProof.OutputValues[1], sum.Numerator, sum.Denominator)
	}

	verifierTranscript := channel.New()
	artifact, err := VerifyInstance(verifierTranscript, 0, inputLayer.NVariables(), instanceProof)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	wantNum := inputLayer.NumeratorsE.EvalAtPoint(artifact.OODPoint)
	wantDen := inputLayer.DenominatorsE.EvalAtPoint(artifact.OODPoint)
	if !artifact.InputClaims[0].Equals(wantNum) || !artifact.InputClaims[1].Equals(wantDen) {
		t.Errorf("logup input claims do not match direct evaluation")
	}
}

// TestVerifyBatchMixedSizeInstances proves several circuit instances of
// different sizes bound to one shared transcript, interleaved tier by
// tier, and checks each instance's input claim against its own input layer
// evaluated at the OOD point the batch produced for it.
func TestVerifyBatchMixedSizeInstances(t *testing.T) {
	valuesA := make([]field.E, 1<<5)
	for i := range valuesA {
		valuesA[i] = ef(uint32(i + 1))
	}
	valuesB := make([]field.E, 1<<7)
	for i := range valuesB {
		valuesB[i] = ef(uint32(2*i + 1))
	}
	layers := []Layer{
		{Kind: GrandProduct, Data: poly.NewMLE(valuesA)},
		{Kind: GrandProduct, Data: poly.NewMLE(valuesB)},
	}

	proverTranscript := channel.New()
	batchProof, proverArtifact := ProveBatch(proverTranscript, layers)

	verifierTranscript := channel.New()
	artifact, err := VerifyBatch(verifierTranscript, []int{5, 7}, batchProof)
	require.NoError(t, err)
	require.Len(t, artifact.Instances, 2)

	for i, layer := range layers {
		require.Len(t, artifact.Instances[i].OODPoint, layer.NVariables())
		want := layer.Data.EvalAtPoint(artifact.Instances[i].OODPoint)
		require.Truef(t, artifact.Instances[i].InputClaims[0].Equals(want),
			"instance %d input claim does not match direct evaluation at its OOD point", i)
		require.Equal(t, len(proverArtifact.Instances[i].OODPoint), len(artifact.Instances[i].OODPoint))
		for j := range artifact.Instances[i].OODPoint {
			require.Truef(t, artifact.Instances[i].OODPoint[j].Equals(proverArtifact.Instances[i].OODPoint[j]),
				"prover/verifier OOD point disagree at instance %d coordinate %d", i, j)
		}
	}
}

// TestVerifyBatchSharesPointAcrossEqualSizeInstances checks the batch's
// central property: two instances of identical depth, proven together,
// are reduced by the exact same sum-check rounds and so finish with
// bit-identical out-of-domain points, unlike running each independently
// through ProveInstance (which draws distinct per-instance challenges).
func TestVerifyBatchSharesPointAcrossEqualSizeInstances(t *testing.T) {
	valuesA := make([]field.E, 1<<4)
	for i := range valuesA {
		valuesA[i] = ef(uint32(i + 1))
	}
	valuesB := make([]field.E, 1<<4)
	for i := range valuesB {
		valuesB[i] = ef(uint32(3*i + 2))
	}
	layers := []Layer{
		{Kind: GrandProduct, Data: poly.NewMLE(valuesA)},
		{Kind: GrandProduct, Data: poly.NewMLE(valuesB)},
	}

	proverTranscript := channel.New()
	batchProof, _ := ProveBatch(proverTranscript, layers)

	verifierTranscript := channel.New()
	artifact, err := VerifyBatch(verifierTranscript, []int{4, 4}, batchProof)
	require.NoError(t, err)
	require.Len(t, artifact.Instances[0].OODPoint, len(artifact.Instances[1].OODPoint))
	for j := range artifact.Instances[0].OODPoint {
		require.Truef(t, artifact.Instances[0].OODPoint[j].Equals(artifact.Instances[1].OODPoint[j]),
			"coordinate %d differs between instances batched at the same depth", j)
	}
}

func TestVerifyBatchWrongInstanceCount(t *testing.T) {
	values := make([]field.E, 1<<3)
	for i := range values {
		values[i] = ef(uint32(i + 1))
	}
	layers := []Layer{{Kind: GrandProduct, Data: poly.NewMLE(values)}}

	proverTranscript := channel.New()
	batchProof, _ := ProveBatch(proverTranscript, layers)

	verifierTranscript := channel.New()
	_, err := VerifyBatch(verifierTranscript, []int{3, 3}, batchProof)
	if _, ok := err.(*NumInstancesMismatch); !ok {
		t.Fatalf("expected NumInstancesMismatch, got %v", err)
	}
}
