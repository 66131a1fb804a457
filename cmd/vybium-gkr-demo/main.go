// Command vybium-gkr-demo reads a witness from stdin, proves a GKR circuit
// over it, commits the witness columns with the Merkle vector commitment
// scheme and prints the root, and verifies the GKR proof, reporting success
// or the first typed failure. The Merkle commitment is not decommitted or
// verified.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	vybiumgkrcore "github.com/vybium/vybium-gkr-core/pkg/vybium-gkr-core"

	"github.com/vybium/vybium-gkr-core/channel"
	"github.com/vybium/vybium-gkr-core/field"
	"github.com/vybium/vybium-gkr-core/gkr"
	"github.com/vybium/vybium-gkr-core/merkle"
	"github.com/vybium/vybium-gkr-core/poly"
)

// WitnessInput is a single JSON line on stdin describing one circuit
// instance. Exactly one of GrandProduct or (Numerators, Denominators) must
// be set; lengths must be a power of two.
type WitnessInput struct {
	Kind         string   `json:"kind"` // "grand_product" or "logup"
	GrandProduct []uint64 `json:"grand_product,omitempty"`
	Numerators   []uint64 `json:"numerators,omitempty"`
	Denominators []uint64 `json:"denominators,omitempty"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fatal("failed to read witness")
	}
	var input WitnessInput
	if err := json.Unmarshal(scanner.Bytes(), &input); err != nil {
		fatal(fmt.Sprintf("failed to parse witness: %v", err))
	}

	layer, columns, err := buildLayer(input)
	if err != nil {
		fatal(err.Error())
	}

	cfg := vybiumgkrcore.DefaultConfig()
	hasher := cfg.BuildHasher()

	logStderr("committing witness columns...")
	prover, err := merkle.Commit(hasher, columns)
	if err != nil {
		fatal(fmt.Sprintf("commit failed: %v", err))
	}
	logStderr(fmt.Sprintf("committed root: %x", prover.Root()))

	logStderr("proving GKR circuit...")
	proverTranscript := channel.New()
	instanceProof, artifact := gkr.ProveInstanceWithLambda(proverTranscript, layer, cfg.LambdaSource())
	logStderr(fmt.Sprintf("reduced to %d input claims at a %d-variable point", len(artifact.InputClaims), artifact.NVariables))

	logStderr("verifying GKR circuit...")
	verifierTranscript := channel.New()
	gotArtifact, err := gkr.VerifyInstanceWithLambda(verifierTranscript, 0, layer.NVariables(), instanceProof, cfg.LambdaSource())
	if err != nil {
		fatal(fmt.Sprintf("verification failed: %v", err))
	}

	output := map[string]any{
		"output_values": formatFelts(instanceProof.OutputValues),
		"ood_point":     formatFelts(gotArtifact.OODPoint),
		"input_claims":  formatFelts(gotArtifact.InputClaims),
		"merkle_root":   fmt.Sprintf("%x", prover.Root()),
	}
	outBytes, err := json.Marshal(output)
	if err != nil {
		fatal(fmt.Sprintf("failed to serialize result: %v", err))
	}
	os.Stdout.Write(outBytes)
	os.Stdout.Write([]byte("\n"))
	logStderr("verification succeeded")
}

func buildLayer(input WitnessInput) (gkr.Layer, [][]field.F, error) {
	switch input.Kind {
	case "grand_product":
		if len(input.GrandProduct) == 0 {
			return gkr.Layer{}, nil, fmt.Errorf("grand_product witness is empty")
		}
		values := make([]field.E, len(input.GrandProduct))
		column := make([]field.F, len(input.GrandProduct))
		for i, v := range input.GrandProduct {
			f := field.FromU64(v)
			column[i] = f
			values[i] = field.FromF(f)
		}
		return gkr.Layer{Kind: gkr.GrandProduct, Data: poly.NewMLE(values)}, [][]field.F{column}, nil
	case "logup":
		if len(input.Numerators) != len(input.Denominators) || len(input.Numerators) == 0 {
			return gkr.Layer{}, nil, fmt.Errorf("logup numerators/denominators must be equal-length and nonempty")
		}
		numerators := make([]field.E, len(input.Numerators))
		denominators := make([]field.E, len(input.Denominators))
		numCol := make([]field.F, len(input.Numerators))
		denCol := make([]field.F, len(input.Denominators))
		for i := range input.Numerators {
			nf := field.FromU64(input.Numerators[i])
			df := field.FromU64(input.Denominators[i])
			numCol[i], denCol[i] = nf, df
			numerators[i], denominators[i] = field.FromF(nf), field.FromF(df)
		}
		layer := gkr.Layer{Kind: gkr.LogUpGeneric, NumeratorsE: poly.NewMLE(numerators), DenominatorsE: poly.NewMLE(denominators)}
		return layer, [][]field.F{numCol, denCol}, nil
	default:
		return gkr.Layer{}, nil, fmt.Errorf("unknown witness kind %q", input.Kind)
	}
}

func formatFelts(felts []field.E) []string {
	out := make([]string, len(felts))
	for i, f := range felts {
		out[i] = f.String()
	}
	return out
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-gkr-demo:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
