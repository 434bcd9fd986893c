package cabac

// HEVC Residual Syntax Layer
//
// These are the HEVC-specific decoders that compose the arithmetic engine
// and binarization decoders: last-significant-coefficient position
// (prefix+suffix, with axis swap under vertical scan), coded-sub-block
// flag, significance flag with its full context-derivation rules,
// greater-than-one/two flags with their sub-block state machine, and the
// remainder decoder built in binarization.go. Each decoder here takes an
// explicit base offset into a ContextModelStore rather than assuming a
// fixed global layout. HEVC's context table is much larger (H.265
// Table 9-4 assigns roughly 154 entries across all syntax elements), so
// callers own the layout and pass in where each syntax element's block of
// contexts begins.

// ScanOrder identifies the coefficient scan used within a transform unit,
// as decoded from intra-prediction mode and transform size.
type ScanOrder int

const (
	ScanDiagonal   ScanOrder = 0
	ScanHorizontal ScanOrder = 1
	ScanVertical   ScanOrder = 2
)

// LastSignificantCoeffPrefix decodes last_sig_coeff_x_prefix or
// last_sig_coeff_y_prefix (H.265 9.3.4.2.3), returning a value in
// [0, 2*log2Size-1]. ctxBase is the base offset of the syntax element's
// context block (LAST_SIGNIFICANT_COEFFICIENT_X_PREFIX or ..._Y_PREFIX)
// within store.
func LastSignificantCoeffPrefix(s *ArithmeticState, store *ContextModelStore, ctxBase, log2Size, cIdx int) int {
	cMax := (log2Size << 1) - 1

	var ctxOffset, ctxShift int
	if cIdx == 0 {
		ctxOffset = 3*(log2Size-2) + ((log2Size - 1) >> 2)
		ctxShift = (log2Size + 1) >> 2
	} else {
		ctxOffset = 15
		ctxShift = log2Size - 2
	}

	for binIdx := 0; binIdx < cMax; binIdx++ {
		ctxIdx := ctxBase + ctxOffset + (binIdx >> uint(ctxShift))
		if s.DecodeBin(store.At(ctxIdx)) == 0 {
			return binIdx
		}
	}
	return cMax
}

// LastSignificantCoeffSuffix decodes the bypass-coded suffix that follows
// a prefix greater than 3.
func LastSignificantCoeffSuffix(s *ArithmeticState, prefix int) int {
	if prefix <= 3 {
		return prefix
	}
	nBits := (prefix >> 1) - 1
	suffix := DecodeBypassBits(s, nBits)
	return ((2 + (prefix & 1)) << uint(nBits)) + int(suffix)
}

// LastSignificantCoeffXY decodes last_sig_coeff_x and last_sig_coeff_y
// (prefix and suffix for each), swapping the two under vertical scan.
// ctxBaseX and ctxBaseY are the base offsets of the X and Y prefix
// context blocks.
func LastSignificantCoeffXY(s *ArithmeticState, store *ContextModelStore, ctxBaseX, ctxBaseY, log2Size, cIdx int, scan ScanOrder) (x, y int) {
	xPrefix := LastSignificantCoeffPrefix(s, store, ctxBaseX, log2Size, cIdx)
	x = LastSignificantCoeffSuffix(s, xPrefix)

	yPrefix := LastSignificantCoeffPrefix(s, store, ctxBaseY, log2Size, cIdx)
	y = LastSignificantCoeffSuffix(s, yPrefix)

	if scan == ScanVertical {
		x, y = y, x
	}
	return x, y
}

// CodedSubBlockFlag decodes coded_sub_block_flag. ctxBase is the base
// offset of the 4-entry CODED_SUB_BLOCK_FLAG context block.
// neighborRight and neighborBelow report whether the sub-block
// immediately to the right and below (respectively) were themselves
// coded.
func CodedSubBlockFlag(s *ArithmeticState, store *ContextModelStore, ctxBase, cIdx int, neighborRight, neighborBelow bool) int {
	csbfCtx := 0
	if neighborRight || neighborBelow {
		csbfCtx = 1
	}
	ctxIdx := ctxBase + csbfCtx
	if cIdx != 0 {
		ctxIdx += 2
	}
	return s.DecodeBin(store.At(ctxIdx))
}

// SigCoeffFlagContext computes sig_coeff_flag's ctxIdxInc for a
// coefficient at (x, y) within a TU of size 2^log2Size x 2^log2Size.
// prevCsbf encodes the coded_sub_block_flag of the sub-blocks to the
// right (bit 0) and below (bit 1) of the coefficient's own sub-block.
func SigCoeffFlagContext(x, y, log2Size, cIdx int, scan ScanOrder, prevCsbf int) int {
	if log2Size == 2 {
		return int(sigCtxIdxMap4x4[(y<<2)+x])
	}
	if x == 0 && y == 0 {
		return 0
	}

	xP, yP := x&3, y&3
	var sigCtx int
	switch prevCsbf {
	case 0:
		switch {
		case xP+yP >= 3:
			sigCtx = 0
		case xP+yP > 0:
			sigCtx = 1
		default:
			sigCtx = 2
		}
	case 1:
		switch yP {
		case 0:
			sigCtx = 2
		case 1:
			sigCtx = 1
		default:
			sigCtx = 0
		}
	case 2:
		switch xP {
		case 0:
			sigCtx = 2
		case 1:
			sigCtx = 1
		default:
			sigCtx = 0
		}
	default:
		sigCtx = 2
	}

	if cIdx == 0 {
		if (x>>2)+(y>>2) > 0 {
			sigCtx += 3
		}
		if log2Size == 3 {
			if scan == ScanDiagonal {
				sigCtx += 9
			} else {
				sigCtx += 15
			}
		} else {
			sigCtx += 21
		}
	} else {
		if log2Size == 3 {
			sigCtx += 9
		} else {
			sigCtx += 12
		}
	}
	return sigCtx
}

// SigCoeffFlag decodes sig_coeff_flag for a coefficient, deriving its
// context via SigCoeffFlagContext and applying the chroma block's +27
// offset. ctxBase is the base offset of the SIG_COEFF_FLAG context block
// (its first 27 entries serve luma, the rest chroma).
func SigCoeffFlag(s *ArithmeticState, store *ContextModelStore, ctxBase, x, y, log2Size, cIdx int, scan ScanOrder, prevCsbf int) int {
	sigCtx := SigCoeffFlagContext(x, y, log2Size, cIdx, scan, prevCsbf)
	ctxIdx := ctxBase + sigCtx
	if cIdx != 0 {
		ctxIdx = ctxBase + 27 + sigCtx
	}
	return s.DecodeBin(store.At(ctxIdx))
}

// CoeffAbsLevelGreater1Flag decodes coeff_abs_level_greater1_flag.
// ctxBase is the base offset of the 24-entry
// COEFF_ABS_LEVEL_GREATER1_FLAG context block (16 luma + 8 chroma).
// greater1Ctx is the per-sub-block state tracked by the caller across
// successive greater1 decisions.
func CoeffAbsLevelGreater1Flag(s *ArithmeticState, store *ContextModelStore, ctxBase, cIdx, ctxSet, greater1Ctx int) int {
	ctxIdx := ctxBase + ctxSet*4 + min(greater1Ctx, 3)
	if cIdx > 0 {
		ctxIdx += 16
	}
	return s.DecodeBin(store.At(ctxIdx))
}

// CoeffAbsLevelGreater2Flag decodes coeff_abs_level_greater2_flag.
// ctxBase is the base offset of the 6-entry
// COEFF_ABS_LEVEL_GREATER2_FLAG context block (4 luma + 2 chroma).
func CoeffAbsLevelGreater2Flag(s *ArithmeticState, store *ContextModelStore, ctxBase, cIdx, ctxSet int) int {
	ctxIdx := ctxBase + ctxSet
	if cIdx > 0 {
		ctxIdx += 4
	}
	return s.DecodeBin(store.At(ctxIdx))
}

// CalcCtxSet computes ctxSet for the greater1/greater2 flag decisions of
// a sub-block. sbIdx is the sub-block's scan index within its transform
// unit (0 = the DC sub-block); prevGreater1 reports whether the previous
// sub-block's c1 state ended nonzero (i.e. any coefficient in it had
// greater1_flag == 1).
func CalcCtxSet(sbIdx, cIdx int, prevGreater1 bool) int {
	base := 0
	if sbIdx != 0 && cIdx == 0 {
		base = 2
	}
	if prevGreater1 {
		return base + 1
	}
	return base
}
