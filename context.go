package cabac

// Context Model Store
//
// A ContextModel is a single probability estimate: a (state, mps) pair as
// defined by H.265 9.3.4.3.1. A ContextModelStore is a flat, fixed-order
// collection of ContextModel addressed by stable HEVC context identifiers
// (H.265 Table 9-4 assigns each syntax element's contexts a base offset
// into a single array of ~154 entries; this package treats those offsets
// as opaque and lets the caller name them).
//
// Mutation of a ContextModel happens exclusively inside
// ArithmeticState.DecodeBin — nothing else in this package writes State or
// MPS after initialization.

// ContextModel is a single CABAC probability state.
type ContextModel struct {
	State uint8 // probability bucket, in [0, 63]
	MPS   uint8 // most probable symbol, 0 or 1
}

// InitContextModel derives a ContextModel from an HEVC initValue and the
// slice QP, per H.265 9.3.2.2 (table 9-5 initialization process).
func InitContextModel(initValue uint8, sliceQP int) ContextModel {
	slope := int(initValue>>4)*5 - 45
	offset := (int(initValue&15) << 3) - 16

	preState := ((slope * (sliceQP - 16)) >> 4) + offset
	if preState < 1 {
		preState = 1
	} else if preState > 126 {
		preState = 126
	}

	if preState >= 64 {
		return ContextModel{State: uint8(preState - 64), MPS: 1}
	}
	return ContextModel{State: uint8(63 - preState), MPS: 0}
}

// ContextModelStore is a fixed-size, ordered collection of ContextModel
// values addressed by HEVC context identifiers (base offsets defined by
// the residual syntax layer's ctx* constants).
type ContextModelStore struct {
	models []ContextModel
}

// InitContextModelStore builds a store with one ContextModel per entry in
// initValues, all seeded from the same slice QP. len(initValues) fixes the
// store's size for its lifetime.
func InitContextModelStore(initValues []uint8, sliceQP int) *ContextModelStore {
	models := make([]ContextModel, len(initValues))
	for i, v := range initValues {
		models[i] = InitContextModel(v, sliceQP)
	}
	return &ContextModelStore{models: models}
}

// Len returns the number of contexts the store holds.
func (s *ContextModelStore) Len() int { return len(s.models) }

// At returns a pointer to the context at idx. idx out of range is a
// programming error and panics, matching Go's native slice-bounds
// behavior and the "undefined in release" contract for invalid context
// indices (spec §7).
func (s *ContextModelStore) At(idx int) *ContextModel {
	return &s.models[idx]
}

// Reset re-initializes every context in place from initValues (which must
// have the same length the store was built with) and sliceQP. Used when a
// caller reuses one store across dependent slice segments that share
// initialization values but not arithmetic state.
func (s *ContextModelStore) Reset(initValues []uint8, sliceQP int) error {
	if len(initValues) != len(s.models) {
		return ErrContextCountMismatch
	}
	for i, v := range initValues {
		s.models[i] = InitContextModel(v, sliceQP)
	}
	return nil
}
