// Package cabac implements the Context-Adaptive Binary Arithmetic Coding
// entropy layer used by H.265/HEVC, together with the HEVC residual
// syntax-element decoders that drive transform-coefficient decoding.
//
// Given an HEVC sub-bitstream and the slice-level parameters needed to
// seed context models, this package produces the syntax values that a
// transform/reconstruction stage consumes: the position of the last
// significant coefficient, per-sub-block coded flags, per-coefficient
// significance flags, greater-than-one/two flags, and remainder
// magnitudes. NAL parsing, slice header parsing, and the transform and
// reconstruction stages themselves are out of scope; this package expects
// its caller to have already produced a de-emulated RBSP byte span and the
// slice QP.
//
// A decode session pairs one ArithmeticState with one ContextModelStore:
//
//	state := cabac.InitArithmeticState(rbsp)
//	store := cabac.InitContextModelStore(initValues, sliceQP)
//	bit := state.DecodeBin(store.At(ctxIdx))
//
// Session wraps this pairing for callers that decode a sub-bitstream
// start to finish and don't need the two pieces of state independently.
package cabac
