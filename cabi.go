package cabac

// C-ABI Bridge
//
// This file exposes the function/struct surface a differential test
// harness drives symbolically against a reference decoder: fixed-layout
// structs and exported free functions named after their H.265 syntax
// elements rather than Go's exported-method convention. No cgo is
// involved — the corpus never demonstrates a //export surface in any of
// its five candidate teacher repositories, and this package never
// invokes the Go toolchain to verify one would build, so these are
// ordinary Go functions over ordinary Go structs. A real cgo boundary,
// if one is ever added on top of this, would marshal into exactly these
// shapes.
//
// CabacState mirrors ArithmeticState's field order so the two are
// layout-compatible; the bridge functions operate on CabacState
// directly rather than wrapping ArithmeticState, since a C caller would
// own this struct's memory, not Go's.

// CabacState is the C-ABI-visible arithmetic decoder state.
type CabacState struct {
	Range      uint32
	Value      uint32
	BitsNeeded int32
	data       []byte
	cursor     int
}

func (cs *CabacState) toEngine() *ArithmeticState {
	return &ArithmeticState{
		Range:      cs.Range,
		Value:      cs.Value,
		BitsNeeded: cs.BitsNeeded,
		data:       cs.data,
		cursor:     cs.cursor,
	}
}

func (cs *CabacState) fromEngine(s *ArithmeticState) {
	cs.Range = s.Range
	cs.Value = s.Value
	cs.BitsNeeded = s.BitsNeeded
	cs.data = s.data
	cs.cursor = s.cursor
}

// CabacInit implements cabac_init(state*, data*, len).
func CabacInit(state *CabacState, data []byte) {
	s := InitArithmeticState(data)
	state.fromEngine(s)
}

// CabacDecodeBypass implements cabac_decode_bypass(state*) -> int.
func CabacDecodeBypass(state *CabacState) int {
	s := state.toEngine()
	bit := s.DecodeBypass()
	state.fromEngine(s)
	return bit
}

// CabacDecodeBypassBits implements cabac_decode_bypass_bits(state*, n) -> u32.
func CabacDecodeBypassBits(state *CabacState, n int) uint32 {
	s := state.toEngine()
	v := DecodeBypassBits(s, n)
	state.fromEngine(s)
	return v
}

// CabacDecodeCoeffAbsLevelRemaining implements
// cabac_decode_coeff_abs_level_remaining(state*, rice) -> int.
func CabacDecodeCoeffAbsLevelRemaining(state *CabacState, rice int) int {
	s := state.toEngine()
	v := DecodeCoeffAbsLevelRemaining(s, rice)
	state.fromEngine(s)
	return v
}

// CabacDecodeBin implements cabac_decode_bin(state*, ctx*) -> int.
func CabacDecodeBin(state *CabacState, ctx *ContextModel) int {
	s := state.toEngine()
	bit := s.DecodeBin(ctx)
	state.fromEngine(s)
	return bit
}

// CabacGetState implements cabac_get_state(state*, out range*, out value*,
// out bits_needed*).
func CabacGetState(state *CabacState) (rng, value uint32, bitsNeeded int32) {
	return state.Range, state.Value, state.BitsNeeded
}

// ContextInit implements context_init(ctx*, initValue, sliceQp).
func ContextInit(ctx *ContextModel, initValue uint8, sliceQP int) {
	*ctx = InitContextModel(initValue, sliceQP)
}

// ContextGetState implements context_get_state(ctx*, out state*, out mps*).
func ContextGetState(ctx *ContextModel) (state, mps uint8) {
	return ctx.State, ctx.MPS
}

// LastSigResult is the out-parameter struct for
// decode_last_significant_coeff_xy.
type LastSigResult struct {
	X          int
	Y          int
	Range      uint32
	Value      uint32
	BitsNeeded int32
}

// DecodeLastSignificantCoeffXY implements
// decode_last_significant_coeff_xy(state*, ctxX*, ctxY*, log2_size, c_idx,
// scan_idx, out result*).
func DecodeLastSignificantCoeffXY(state *CabacState, store *ContextModelStore, ctxBaseX, ctxBaseY, log2Size, cIdx int, scanIdx ScanOrder, result *LastSigResult) {
	s := state.toEngine()
	x, y := LastSignificantCoeffXY(s, store, ctxBaseX, ctxBaseY, log2Size, cIdx, scanIdx)
	state.fromEngine(s)

	result.X = x
	result.Y = y
	result.Range = state.Range
	result.Value = state.Value
	result.BitsNeeded = state.BitsNeeded
}

// DecodeCodedSubBlockFlag implements decode_coded_sub_block_flag as in §4.
func DecodeCodedSubBlockFlag(state *CabacState, store *ContextModelStore, ctxBase, cIdx int, neighborRight, neighborBelow bool) int {
	s := state.toEngine()
	bit := CodedSubBlockFlag(s, store, ctxBase, cIdx, neighborRight, neighborBelow)
	state.fromEngine(s)
	return bit
}

// DecodeSigCoeffFlag implements decode_sig_coeff_flag as in §4.
func DecodeSigCoeffFlag(state *CabacState, store *ContextModelStore, ctxBase, x, y, log2Size, cIdx int, scanIdx ScanOrder, prevCsbf int) int {
	s := state.toEngine()
	bit := SigCoeffFlag(s, store, ctxBase, x, y, log2Size, cIdx, scanIdx, prevCsbf)
	state.fromEngine(s)
	return bit
}

// DecodeCoeffAbsLevelGreater1Flag implements
// decode_coeff_abs_level_greater1_flag as in §4.
func DecodeCoeffAbsLevelGreater1Flag(state *CabacState, store *ContextModelStore, ctxBase, cIdx, ctxSet, greater1Ctx int) int {
	s := state.toEngine()
	bit := CoeffAbsLevelGreater1Flag(s, store, ctxBase, cIdx, ctxSet, greater1Ctx)
	state.fromEngine(s)
	return bit
}

// DecodeCoeffAbsLevelGreater2Flag implements
// decode_coeff_abs_level_greater2_flag as in §4.
func DecodeCoeffAbsLevelGreater2Flag(state *CabacState, store *ContextModelStore, ctxBase, cIdx, ctxSet int) int {
	s := state.toEngine()
	bit := CoeffAbsLevelGreater2Flag(s, store, ctxBase, cIdx, ctxSet)
	state.fromEngine(s)
	return bit
}

// CabacCalcCtxSet implements calc_ctx_set(sb_idx, c_idx, prev_gt1).
func CabacCalcCtxSet(sbIdx, cIdx int, prevGreater1 bool) int {
	return CalcCtxSet(sbIdx, cIdx, prevGreater1)
}
