package bigfield

import (
	"fmt"
	"math/big"
)

// Poseidon implements the Poseidon permutation and sponge construction over
// an arbitrary-precision prime Field.
//
//   - Round constants and the MDS matrix are derived deterministically from
//     the field and width via a Grain LFSR, following the Poseidon paper,
//     instead of being read from a precomputed constants table.
//   - The MDS matrix is a Cauchy matrix, which is always MDS.
//   - Hashing uses the standard absorb/squeeze sponge construction.
type Poseidon struct {
	field *Field

	roundsFull    int // RF
	roundsPartial int // RP
	sboxPower     int // alpha
	width         int // t
	rate          int // r = t - capacity

	roundConstants [][]*Element
	mdsMatrix      [][]*Element
}

// Params configures a Poseidon instance.
type Params struct {
	SecurityLevel int
	FieldSize     int
	Width         int
	Rate          int
	RoundsFull    int
	RoundsPartial int
	SboxPower     int
}

// NewPoseidon creates a Poseidon permutation over field with the given
// parameters. A nil params falls back to 128-bit-security defaults sized to
// the field.
func NewPoseidon(field *Field, params *Params) (*Poseidon, error) {
	if params == nil {
		params = DefaultParams(field, 128)
	}

	roundConstants, err := generateRoundConstants(field, params)
	if err != nil {
		return nil, fmt.Errorf("bigfield: generating poseidon round constants: %w", err)
	}
	mdsMatrix, err := generateMDSMatrix(field, params.Width)
	if err != nil {
		return nil, fmt.Errorf("bigfield: generating poseidon mds matrix: %w", err)
	}

	return &Poseidon{
		field:          field,
		roundsFull:     params.RoundsFull,
		roundsPartial:  params.RoundsPartial,
		sboxPower:      params.SboxPower,
		width:          params.Width,
		rate:           params.Rate,
		roundConstants: roundConstants,
		mdsMatrix:      mdsMatrix,
	}, nil
}

// DefaultParams returns Poseidon parameters appropriate for the field size
// at the requested security level.
func DefaultParams(field *Field, securityLevel int) *Params {
	fieldSize := field.Modulus().BitLen()

	switch {
	case securityLevel == 128 && fieldSize >= 256:
		return &Params{securityLevel, fieldSize, 3, 2, 8, 83, 5}
	case securityLevel == 128 && fieldSize >= 128:
		return &Params{securityLevel, fieldSize, 4, 3, 8, 84, 5}
	case securityLevel == 256 && fieldSize >= 256:
		return &Params{securityLevel, fieldSize, 3, 2, 8, 170, 5}
	default:
		return &Params{securityLevel, fieldSize, 3, 2, 8, 100, 5}
	}
}

// Width returns the permutation width t.
func (p *Poseidon) Width() int { return p.width }

// Rate returns the sponge rate r.
func (p *Poseidon) Rate() int { return p.rate }

// Hash absorbs inputs and squeezes a single field element, using a fresh
// all-zero capacity and rate state.
func (p *Poseidon) Hash(inputs []*Element) *Element {
	state := make([]*Element, p.width)
	for i := range state {
		state[i] = p.field.Zero()
	}

	for i := 0; i < len(inputs); i += p.rate {
		for j := 0; j < p.rate && i+j < len(inputs); j++ {
			state[j] = state[j].Add(inputs[i+j])
		}
		state = p.permute(state)
	}
	if len(inputs) == 0 {
		state = p.permute(state)
	}

	return state[0]
}

func (p *Poseidon) permute(state []*Element) []*Element {
	half := p.roundsFull / 2
	for round := 0; round < half; round++ {
		state = p.fullRound(state, round)
	}
	for round := 0; round < p.roundsPartial; round++ {
		state = p.partialRound(state, half+round)
	}
	for round := 0; round < half; round++ {
		state = p.fullRound(state, half+p.roundsPartial+round)
	}
	return state
}

func (p *Poseidon) fullRound(state []*Element, round int) []*Element {
	state = p.addRoundConstants(state, round)
	for i := range state {
		state[i] = p.sbox(state[i])
	}
	return p.applyMDS(state)
}

func (p *Poseidon) partialRound(state []*Element, round int) []*Element {
	state = p.addRoundConstants(state, round)
	state[0] = p.sbox(state[0])
	return p.applyMDS(state)
}

func (p *Poseidon) addRoundConstants(state []*Element, round int) []*Element {
	if round >= len(p.roundConstants) {
		return state
	}
	out := make([]*Element, len(state))
	for i := range state {
		out[i] = state[i].Add(p.roundConstants[round][i])
	}
	return out
}

func (p *Poseidon) sbox(x *Element) *Element {
	result := x
	for i := 1; i < p.sboxPower; i++ {
		result = result.Mul(x)
	}
	return result
}

func (p *Poseidon) applyMDS(state []*Element) []*Element {
	out := make([]*Element, p.width)
	for i := 0; i < p.width; i++ {
		out[i] = p.field.Zero()
		for j := 0; j < p.width; j++ {
			out[i] = out[i].Add(state[j].Mul(p.mdsMatrix[i][j]))
		}
	}
	return out
}

func generateRoundConstants(field *Field, params *Params) ([][]*Element, error) {
	lfsr := newGrainLFSR(params)
	total := params.RoundsFull + params.RoundsPartial
	constants := make([][]*Element, total)
	for round := 0; round < total; round++ {
		constants[round] = make([]*Element, params.Width)
		for i := 0; i < params.Width; i++ {
			constants[round][i] = lfsr.nextElement(field)
		}
	}
	return constants, nil
}

// generateMDSMatrix builds a Cauchy matrix, M[i][j] = 1/(x_i + y_j), which
// is always maximum-distance-separable.
func generateMDSMatrix(field *Field, width int) ([][]*Element, error) {
	matrix := make([][]*Element, width)
	for i := 0; i < width; i++ {
		matrix[i] = make([]*Element, width)
		for j := 0; j < width; j++ {
			x := field.NewElementFromInt64(int64(i + 1))
			y := field.NewElementFromInt64(int64(j + width + 1))
			inv, err := x.Add(y).Inv()
			if err != nil {
				return nil, fmt.Errorf("bigfield: mds matrix entry (%d,%d): %w", i, j, err)
			}
			matrix[i][j] = inv
		}
	}
	return matrix, nil
}

// grainLFSR is the Grain-based constant generator from the Poseidon paper,
// seeded from the instance parameters so provers and verifiers derive
// identical round constants without shipping a constants table.
type grainLFSR struct {
	state [80]bool
}

func newGrainLFSR(params *Params) *grainLFSR {
	g := &grainLFSR{}
	g.state[0] = true
	g.state[1] = true
	for i := 0; i < 4; i++ {
		g.state[2+i] = (params.SboxPower>>i)&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[6+i] = (params.FieldSize>>i)&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[18+i] = (params.Width>>i)&1 == 1
	}
	for i := 0; i < 10; i++ {
		g.state[30+i] = (params.RoundsFull>>i)&1 == 1
	}
	for i := 0; i < 10; i++ {
		g.state[40+i] = (params.RoundsPartial>>i)&1 == 1
	}
	for i := 50; i < 80; i++ {
		g.state[i] = true
	}
	for i := 0; i < 160; i++ {
		g.update()
	}
	return g
}

func (g *grainLFSR) update() {
	newBit := g.state[62] != g.state[51] != g.state[38] != g.state[23] != g.state[13] != g.state[0]
	copy(g.state[:79], g.state[1:])
	g.state[79] = newBit
}

func (g *grainLFSR) sampleBit() bool {
	for {
		bit1 := g.state[0]
		g.update()
		bit2 := g.state[0]
		g.update()
		if bit1 {
			return bit2
		}
	}
}

func (g *grainLFSR) nextElement(field *Field) *Element {
	value := big.NewInt(0)
	for i := 0; i < field.Modulus().BitLen(); i++ {
		if g.sampleBit() {
			value.SetBit(value, i, 1)
		}
	}
	value.Mod(value, field.Modulus())
	return field.NewElement(value)
}
