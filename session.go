package cabac

// Session pairs one ArithmeticState with one ContextModelStore for callers
// that decode a single sub-bitstream start to finish and don't need to
// thread both pieces of state through their own call sites.
type Session struct {
	State *ArithmeticState
	Store *ContextModelStore
}

// NewSession constructs a Session over data, seeding one context per
// entry in initValues at sliceQP.
func NewSession(data []byte, initValues []uint8, sliceQP int) *Session {
	return &Session{
		State: InitArithmeticState(data),
		Store: InitContextModelStore(initValues, sliceQP),
	}
}

// DecodeBin decodes one context-coded bin at ctxIdx.
func (sess *Session) DecodeBin(ctxIdx int) int {
	return sess.State.DecodeBin(sess.Store.At(ctxIdx))
}

// DecodeBypass decodes one bypass bin.
func (sess *Session) DecodeBypass() int {
	return sess.State.DecodeBypass()
}

// DecodeBypassBits decodes n bypass bits, MSB-first.
func (sess *Session) DecodeBypassBits(n int) uint32 {
	return DecodeBypassBits(sess.State, n)
}

// DecodeCoeffAbsLevelRemaining decodes coeff_abs_level_remaining with the
// given Rice parameter.
func (sess *Session) DecodeCoeffAbsLevelRemaining(rice int) int {
	return DecodeCoeffAbsLevelRemaining(sess.State, rice)
}
