package gkr

import (
	"github.com/vybium/vybium-gkr-core/channel"
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/poly"
	"github.com/vybium/vybium-gkr-core/sumcheck"
)

// LambdaSource supplies the scalar a layer's sum-check run uses to combine
// its numerator and denominator claims (LogUp layers only; GrandProduct
// layers ignore it). DrawnLambda, the sound default, pulls a fresh
// transcript challenge every call; FixedLambda pins it to a caller-supplied
// value, which a Config with FixedBatchingLambda set converts to.
type LambdaSource func(transcript *channel.Transcript) field.E

// DrawnLambda draws a fresh challenge from the transcript. ProveInstance,
// VerifyInstance, ProveBatch, and VerifyBatch all use this unless a caller
// opts into a fixed lambda via the *WithLambda variants.
func DrawnLambda(transcript *channel.Transcript) field.E {
	return transcript.DrawFelt()
}

// FixedLambda returns a LambdaSource that ignores the transcript and always
// returns v. Sound only for reproducible tests: a lambda known in advance
// lets an adversary forge a layer's combined claim.
func FixedLambda(v field.E) LambdaSource {
	return func(*channel.Transcript) field.E { return v }
}

// LayerProof is the sum-check proof and extracted mask for one layer
// transition, ordered from the layer just below the output toward the
// input layer. Within a batch, instances sharing a depth tier carry an
// identical SumcheckProof (the combined proof for that tier) alongside
// their own Mask.
type LayerProof struct {
	SumcheckProof sumcheck.Proof
	Mask          Mask
}

// InstanceProof is the full GKR reduction for one circuit instance.
type InstanceProof struct {
	OutputValues []field.E
	LayerProofs  []LayerProof
}

// GkrBatchProof bundles one InstanceProof per circuit instance, all bound to
// a single Fiat-Shamir transcript.
type GkrBatchProof struct {
	Instances []InstanceProof
}

// InstanceArtifact is what a GKR reduction hands off to the caller: a claim
// about the raw input layer, to be checked separately (e.g. against a
// vector commitment) at OODPoint. For a batched proof, OODPoint is the
// point shared by every instance still active at the depth tier this
// instance's input layer sits at: two instances of equal n_variables
// batched together carry bit-identical OODPoints.
type InstanceArtifact struct {
	NVariables  int
	OODPoint    []field.E
	InputClaims []field.E
}

// GkrArtifact bundles one InstanceArtifact per circuit instance.
type GkrArtifact struct {
	Instances []InstanceArtifact
}

func kindFromColumns(n int) Kind {
	if n == 1 {
		return GrandProduct
	}
	return LogUpGeneric
}

func combineClaim(kind Kind, pair []field.E, lambda field.E) field.E {
	if normalizedKind(kind) == GrandProduct {
		return pair[0]
	}
	return pair[0].Add(lambda.Mul(pair[1]))
}

// hornerCombine folds claims into a single scalar the same way
// sumcheck.ProveBatch folds its per-oracle round polynomials: claims[0] +
// alpha*claims[1] + ... + alpha^(k-1)*claims[k-1]. Used on the verifier side
// to reconstruct the combined claim/expected-value sumcheck.ProveBatch
// combined on the prover side, without needing the individual oracles.
func hornerCombine(claims []field.E, alpha field.E) field.E {
	combined := claims[len(claims)-1]
	for i := len(claims) - 2; i >= 0; i-- {
		combined = combined.Mul(alpha).Add(claims[i])
	}
	return combined
}

// ProveInstance reduces inputLayer's output-layer claim down to a claim
// about inputLayer itself at a random point, running one sum-check per
// layer transition.
func ProveInstance(transcript *channel.Transcript, inputLayer Layer) (InstanceProof, InstanceArtifact) {
	return ProveInstanceWithLambda(transcript, inputLayer, DrawnLambda)
}

// ProveInstanceWithLambda is ProveInstance with the per-layer numerator/
// denominator combination scalar supplied by lambdaSource.
func ProveInstanceWithLambda(transcript *channel.Transcript, inputLayer Layer, lambdaSource LambdaSource) (InstanceProof, InstanceArtifact) {
	stack := []Layer{inputLayer}
	for stack[len(stack)-1].NVariables() > 0 {
		stack = append(stack, stack[len(stack)-1].NextLayer())
	}
	outputLayer := stack[len(stack)-1]
	outputValues := outputLayer.TryIntoOutputLayerValues()
	transcript.MixFelts(outputValues)

	y := []field.E{}
	currentClaimPair := outputValues
	layerProofs := make([]LayerProof, 0, len(stack)-1)

	for li := len(stack) - 2; li >= 0; li-- {
		layer := stack[li]
		lambda := lambdaSource(transcript)
		claim := combineClaim(layer.Kind, currentClaimPair, lambda)

		oracle := NewOracle(layer, y, lambda)
		proof, assignment, foldedOracles, _, err := sumcheck.ProveBatch([]field.E{claim}, []sumcheck.Oracle{oracle}, field.EOne(), transcript)
		if err != nil {
			panic(err)
		}
		folded := foldedOracles[0].(Oracle)
		mask := folded.ExtractMask()
		layerProofs = append(layerProofs, LayerProof{SumcheckProof: proof, Mask: mask})

		r := transcript.DrawFelt()
		newY := make([]field.E, len(assignment)+1)
		newY[0] = r
		copy(newY[1:], assignment)
		newClaimPair := make([]field.E, len(mask.Columns))
		for c, pair := range mask.Columns {
			newClaimPair[c] = pair[0].Add(r.Mul(pair[1].Sub(pair[0])))
		}
		y = newY
		currentClaimPair = newClaimPair
	}

	proof := InstanceProof{OutputValues: outputValues, LayerProofs: layerProofs}
	artifact := InstanceArtifact{NVariables: inputLayer.NVariables(), OODPoint: y, InputClaims: currentClaimPair}
	return proof, artifact
}

// ProveBatch proves several circuit instances bound to one shared
// transcript, interleaving instances of equal remaining depth into one
// combined sum-check call per depth tier instead of running each instance's
// full reduction independently. At tier t (t = 1 .. the deepest instance's
// n_variables), every instance with at least t variables contributes the
// oracle for its own layer of size t; all contributing oracles share the
// same n_variables at that tier (t-1), so they batch via sum-check's
// existing multi-oracle claim combination (powers of a freshly drawn
// alpha) with no mixed-size folding needed. Every instance still active at
// tier t is therefore reduced by the exact same sum-check round and ends
// the tier holding the exact same out-of-domain point; an instance with
// fewer variables than the batch's deepest instance stops contributing once
// its own depth is exhausted, with InputClaims fixed to the point shared at
// the tier it exited.
func ProveBatch(transcript *channel.Transcript, inputLayers []Layer) (GkrBatchProof, GkrArtifact) {
	return ProveBatchWithLambda(transcript, inputLayers, DrawnLambda)
}

// ProveBatchWithLambda is ProveBatch with the per-instance, per-tier
// numerator/denominator combination scalar supplied by lambdaSource.
func ProveBatchWithLambda(transcript *channel.Transcript, inputLayers []Layer, lambdaSource LambdaSource) (GkrBatchProof, GkrArtifact) {
	k := len(inputLayers)
	stacks := make([][]Layer, k)
	outputValues := make([][]field.E, k)
	maxN := 0
	for i, l := range inputLayers {
		stack := []Layer{l}
		for stack[len(stack)-1].NVariables() > 0 {
			stack = append(stack, stack[len(stack)-1].NextLayer())
		}
		stacks[i] = stack
		outputValues[i] = stack[len(stack)-1].TryIntoOutputLayerValues()
		transcript.MixFelts(outputValues[i])
		if n := l.NVariables(); n > maxN {
			maxN = n
		}
	}

	currentClaimPair := make([][]field.E, k)
	copy(currentClaimPair, outputValues)

	layerProofsByInstance := make([][]LayerProof, k)
	for i, l := range inputLayers {
		layerProofsByInstance[i] = make([]LayerProof, 0, l.NVariables())
	}
	artifact := make([]InstanceArtifact, k)

	y := []field.E{}
	for t := 1; t <= maxN; t++ {
		var active []int
		for i, l := range inputLayers {
			if l.NVariables() >= t {
				active = append(active, i)
			}
		}

		claims := make([]field.E, len(active))
		oracles := make([]sumcheck.Oracle, len(active))
		for idx, i := range active {
			layer := stacks[i][len(stacks[i])-1-t]
			lambda := lambdaSource(transcript)
			claims[idx] = combineClaim(layer.Kind, currentClaimPair[i], lambda)
			oracles[idx] = NewOracle(layer, y, lambda)
		}

		alpha := transcript.DrawFelt()
		proof, assignment, foldedOracles, _, err := sumcheck.ProveBatch(claims, oracles, alpha, transcript)
		if err != nil {
			panic(err)
		}

		masks := make([]Mask, len(active))
		for idx := range active {
			masks[idx] = foldedOracles[idx].(Oracle).ExtractMask()
			for _, pair := range masks[idx].Columns {
				transcript.MixFelts(pair[:])
			}
		}
		c := transcript.DrawFelt()
		newY := make([]field.E, len(assignment)+1)
		newY[0] = c
		copy(newY[1:], assignment)

		for idx, i := range active {
			mask := masks[idx]
			newClaimPair := make([]field.E, len(mask.Columns))
			for col, pair := range mask.Columns {
				newClaimPair[col] = pair[0].Add(c.Mul(pair[1].Sub(pair[0])))
			}
			layerProofsByInstance[i] = append(layerProofsByInstance[i], LayerProof{SumcheckProof: proof, Mask: mask})
			if inputLayers[i].NVariables() == t {
				artifact[i] = InstanceArtifact{NVariables: t, OODPoint: newY, InputClaims: newClaimPair}
			} else {
				currentClaimPair[i] = newClaimPair
			}
		}
		y = newY
	}

	batch := GkrBatchProof{Instances: make([]InstanceProof, k)}
	for i := range inputLayers {
		batch.Instances[i] = InstanceProof{OutputValues: outputValues[i], LayerProofs: layerProofsByInstance[i]}
	}
	return batch, GkrArtifact{Instances: artifact}
}

// VerifyInstance checks one instance's reduction, given the input layer's
// known variable count.
func VerifyInstance(transcript *channel.Transcript, instanceIndex, nVariables int, proof InstanceProof) (InstanceArtifact, error) {
	return VerifyInstanceWithLambda(transcript, instanceIndex, nVariables, proof, DrawnLambda)
}

// VerifyInstanceWithLambda is VerifyInstance with the per-layer
// numerator/denominator combination scalar supplied by lambdaSource. It
// must use the same lambdaSource the matching ProveInstanceWithLambda call
// used, or verification fails.
func VerifyInstanceWithLambda(transcript *channel.Transcript, instanceIndex, nVariables int, proof InstanceProof, lambdaSource LambdaSource) (InstanceArtifact, error) {
	if len(proof.LayerProofs) != nVariables {
		return InstanceArtifact{}, &MalformedProof{Reason: "layer proof count does not match declared n_variables"}
	}
	transcript.MixFelts(proof.OutputValues)

	y := []field.E{}
	currentClaimPair := proof.OutputValues

	for idx, lp := range proof.LayerProofs {
		kind := kindFromColumns(len(currentClaimPair))
		lambda := lambdaSource(transcript)
		claim := combineClaim(kind, currentClaimPair, lambda)

		assignment, finalClaim, err := sumcheck.PartiallyVerify(claim, lp.SumcheckProof, transcript)
		if err != nil {
			return InstanceArtifact{}, &InvalidSumcheck{Layer: idx, Source: err}
		}

		if len(lp.Mask.Columns) != 1 && len(lp.Mask.Columns) != 2 {
			return InstanceArtifact{}, &InvalidMask{Instance: instanceIndex, InstanceLayer: idx}
		}
		maskKind := kindFromColumns(len(lp.Mask.Columns))
		v0 := make([]field.E, len(lp.Mask.Columns))
		v1 := make([]field.E, len(lp.Mask.Columns))
		for c, pair := range lp.Mask.Columns {
			v0[c], v1[c] = pair[0], pair[1]
		}
		computed := poly.Eq(assignment, y, field.EOne()).Mul(gateScalar(maskKind, v0, v1, lambda))
		if !computed.Equals(finalClaim) {
			return InstanceArtifact{}, &CircuitCheckFailure{Layer: idx, Claim: finalClaim, Computed: computed}
		}

		r := transcript.DrawFelt()
		newY := make([]field.E, len(assignment)+1)
		newY[0] = r
		copy(newY[1:], assignment)
		newClaimPair := make([]field.E, len(lp.Mask.Columns))
		for c, pair := range lp.Mask.Columns {
			newClaimPair[c] = pair[0].Add(r.Mul(pair[1].Sub(pair[0])))
		}
		y = newY
		currentClaimPair = newClaimPair
	}

	return InstanceArtifact{NVariables: nVariables, OODPoint: y, InputClaims: currentClaimPair}, nil
}

// VerifyBatch checks a GkrBatchProof against the declared per-instance
// variable counts, mirroring ProveBatch's depth-tier grouping: at each
// tier, every still-active instance's claim is folded into one combined
// claim via powers of alpha, checked against that tier's single shared
// sum-check proof, then split back out per instance against each
// instance's own mask.
func VerifyBatch(transcript *channel.Transcript, nVariablesPerInstance []int, proof GkrBatchProof) (GkrArtifact, error) {
	return VerifyBatchWithLambda(transcript, nVariablesPerInstance, proof, DrawnLambda)
}

// VerifyBatchWithLambda is VerifyBatch with the per-instance, per-tier
// numerator/denominator combination scalar supplied by lambdaSource. It
// must use the same lambdaSource the matching ProveBatchWithLambda call
// used.
func VerifyBatchWithLambda(transcript *channel.Transcript, nVariablesPerInstance []int, proof GkrBatchProof, lambdaSource LambdaSource) (GkrArtifact, error) {
	k := len(nVariablesPerInstance)
	if len(proof.Instances) != k {
		return GkrArtifact{}, &NumInstancesMismatch{Given: len(proof.Instances), Expected: k}
	}

	maxN := 0
	currentClaimPair := make([][]field.E, k)
	cursor := make([]int, k)
	for i, inst := range proof.Instances {
		if len(inst.LayerProofs) != nVariablesPerInstance[i] {
			return GkrArtifact{}, &MalformedProof{Reason: "layer proof count does not match declared n_variables"}
		}
		transcript.MixFelts(inst.OutputValues)
		currentClaimPair[i] = inst.OutputValues
		if nVariablesPerInstance[i] > maxN {
			maxN = nVariablesPerInstance[i]
		}
	}

	artifact := make([]InstanceArtifact, k)
	y := []field.E{}
	for t := 1; t <= maxN; t++ {
		var active []int
		for i, n := range nVariablesPerInstance {
			if n >= t {
				active = append(active, i)
			}
		}

		claims := make([]field.E, len(active))
		masks := make([]Mask, len(active))
		lambdas := make([]field.E, len(active))
		var sharedProof sumcheck.Proof
		for idx, i := range active {
			lp := proof.Instances[i].LayerProofs[cursor[i]]
			cursor[i]++
			kind := kindFromColumns(len(currentClaimPair[i]))
			lambdas[idx] = lambdaSource(transcript)
			claims[idx] = combineClaim(kind, currentClaimPair[i], lambdas[idx])
			masks[idx] = lp.Mask
			sharedProof = lp.SumcheckProof
		}

		alpha := transcript.DrawFelt()
		combinedClaim := hornerCombine(claims, alpha)
		assignment, finalCombined, err := sumcheck.PartiallyVerify(combinedClaim, sharedProof, transcript)
		if err != nil {
			return GkrArtifact{}, &InvalidSumcheck{Layer: t, Source: err}
		}

		gateValues := make([]field.E, len(active))
		for idx, i := range active {
			mask := masks[idx]
			if len(mask.Columns) != 1 && len(mask.Columns) != 2 {
				return GkrArtifact{}, &InvalidMask{Instance: i, InstanceLayer: t}
			}
			maskKind := kindFromColumns(len(mask.Columns))
			v0 := make([]field.E, len(mask.Columns))
			v1 := make([]field.E, len(mask.Columns))
			for c, pair := range mask.Columns {
				v0[c], v1[c] = pair[0], pair[1]
			}
			gateValues[idx] = poly.Eq(assignment, y, field.EOne()).Mul(gateScalar(maskKind, v0, v1, lambdas[idx]))
			for _, pair := range mask.Columns {
				transcript.MixFelts(pair[:])
			}
		}
		computedCombined := hornerCombine(gateValues, alpha)
		if !computedCombined.Equals(finalCombined) {
			return GkrArtifact{}, &CircuitCheckFailure{Layer: t, Claim: finalCombined, Computed: computedCombined}
		}

		c := transcript.DrawFelt()
		newY := make([]field.E, len(assignment)+1)
		newY[0] = c
		copy(newY[1:], assignment)

		for idx, i := range active {
			mask := masks[idx]
			newClaimPair := make([]field.E, len(mask.Columns))
			for col, pair := range mask.Columns {
				newClaimPair[col] = pair[0].Add(c.Mul(pair[1].Sub(pair[0])))
			}
			if nVariablesPerInstance[i] == t {
				artifact[i] = InstanceArtifact{NVariables: t, OODPoint: newY, InputClaims: newClaimPair}
			} else {
				currentClaimPair[i] = newClaimPair
			}
		}
		y = newY
	}

	return GkrArtifact{Instances: artifact}, nil
}
