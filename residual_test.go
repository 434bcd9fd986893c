package cabac

import "testing"

func TestSigCoeffFlagContext4x4UsesLookupTable(t *testing.T) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := SigCoeffFlagContext(x, y, 2, 0, ScanDiagonal, 0)
			want := int(sigCtxIdxMap4x4[(y<<2)+x])
			if got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestSigCoeffFlagContextDCIsAlwaysZero(t *testing.T) {
	for _, log2Size := range []int{3, 4, 5} {
		for _, cIdx := range []int{0, 1} {
			got := SigCoeffFlagContext(0, 0, log2Size, cIdx, ScanDiagonal, 0)
			if got != 0 {
				t.Errorf("log2Size=%d cIdx=%d: DC sigCtx = %d, want 0", log2Size, cIdx, got)
			}
		}
	}
}

func TestSigCoeffFlagContextChromaOffsetIsSmaller(t *testing.T) {
	lumaCtx := SigCoeffFlagContext(5, 5, 4, 0, ScanDiagonal, 0)
	chromaCtx := SigCoeffFlagContext(5, 5, 4, 1, ScanDiagonal, 0)
	if chromaCtx >= lumaCtx {
		t.Errorf("expected chroma sigCtx below luma sigCtx for a non-DC coefficient of a 16x16 TU, got luma %d chroma %d", lumaCtx, chromaCtx)
	}
}

func TestLastSignificantCoeffSuffixIdentityBelowFour(t *testing.T) {
	for prefix := 0; prefix <= 3; prefix++ {
		s := InitArithmeticState([]byte{0x00, 0x00})
		got := LastSignificantCoeffSuffix(s, prefix)
		if got != prefix {
			t.Errorf("prefix=%d: suffix decode = %d, want %d (identity)", prefix, got, prefix)
		}
	}
}

func TestLastSignificantCoeffSuffixBitWidth(t *testing.T) {
	tests := []struct {
		prefix  int
		nBits   int
	}{
		{4, 1}, {5, 1}, {6, 2}, {7, 2}, {8, 3}, {9, 3},
	}
	for _, tc := range tests {
		data := make([]byte, 4)
		s := InitArithmeticState(data)
		before := s.Cursor()
		_ = LastSignificantCoeffSuffix(s, tc.prefix)
		// bypass reads only pull a byte when BitsNeeded reaches zero, so the
		// cursor need not move; BitsNeeded, which starts at -8, advances by
		// one per bypass bin and so shows how many suffix bits were read.
		if s.Cursor() < before {
			t.Errorf("prefix=%d: cursor moved backwards", tc.prefix)
		}
		if s.BitsNeeded != int32(-8+tc.nBits) {
			t.Errorf("prefix=%d: BitsNeeded = %d, want %d", tc.prefix, s.BitsNeeded, -8+tc.nBits)
		}
	}
}

func TestCodedSubBlockFlagContextSelection(t *testing.T) {
	store := InitContextModelStore(make([]uint8, 8), 26)
	data := []byte{0x9a, 0x02, 0xff, 0x00}

	tests := []struct {
		name                        string
		cIdx                        int
		neighborRight, neighborBelow bool
		wantCtxIdx                  int
	}{
		{"luma no neighbors", 0, false, false, 0},
		{"luma right neighbor", 0, true, false, 1},
		{"luma below neighbor", 0, false, true, 1},
		{"chroma no neighbors", 1, false, false, 2},
		{"chroma both neighbors", 1, true, true, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := InitArithmeticState(data)
			sExpected := InitArithmeticState(data)
			ctxCopy := *store.At(tc.wantCtxIdx)

			got := CodedSubBlockFlag(s, store, 0, tc.cIdx, tc.neighborRight, tc.neighborBelow)
			want := sExpected.DecodeBin(&ctxCopy)

			if got != want {
				t.Errorf("CodedSubBlockFlag = %d, want %d (ctxIdx %d)", got, want, tc.wantCtxIdx)
			}
		})
	}
}

func TestCalcCtxSet(t *testing.T) {
	tests := []struct {
		sbIdx, cIdx int
		prevGT1     bool
		want        int
	}{
		{0, 0, false, 0},
		{0, 0, true, 1},
		{1, 0, false, 2},
		{1, 0, true, 3},
		{1, 1, false, 0}, // chroma always uses base 0
		{1, 1, true, 1},
		{0, 1, true, 1},
	}
	for _, tc := range tests {
		got := CalcCtxSet(tc.sbIdx, tc.cIdx, tc.prevGT1)
		if got != tc.want {
			t.Errorf("CalcCtxSet(%d,%d,%v) = %d, want %d", tc.sbIdx, tc.cIdx, tc.prevGT1, got, tc.want)
		}
	}
}

func TestCoeffAbsLevelGreater1FlagContextClampsAtThree(t *testing.T) {
	store := InitContextModelStore(make([]uint8, 32), 26)
	data := []byte{0x12, 0x34, 0x56, 0x78}

	for _, greater1Ctx := range []int{2, 3, 4, 10} {
		s := InitArithmeticState(data)
		sExpected := InitArithmeticState(data)

		clamped := greater1Ctx
		if clamped > 3 {
			clamped = 3
		}
		expectedIdx := 0*4 + clamped
		ctxCopy := *store.At(expectedIdx)

		got := CoeffAbsLevelGreater1Flag(s, store, 0, 0, 0, greater1Ctx)
		want := sExpected.DecodeBin(&ctxCopy)

		if got != want {
			t.Errorf("greater1Ctx=%d: got %d, want %d", greater1Ctx, got, want)
		}
	}
}

func TestCoeffAbsLevelGreater2FlagChromaOffset(t *testing.T) {
	store := InitContextModelStore(make([]uint8, 8), 26)
	data := []byte{0xaa, 0xbb, 0xcc, 0xdd}

	sLuma := InitArithmeticState(data)
	lumaCopy := *store.At(1)
	wantLuma := sLuma.DecodeBin(&lumaCopy)

	s := InitArithmeticState(data)
	gotLuma := CoeffAbsLevelGreater2Flag(s, store, 0, 0, 1)
	if gotLuma != wantLuma {
		t.Errorf("luma: got %d, want %d", gotLuma, wantLuma)
	}

	sChroma := InitArithmeticState(data)
	chromaCopy := *store.At(5)
	wantChroma := sChroma.DecodeBin(&chromaCopy)

	s2 := InitArithmeticState(data)
	gotChroma := CoeffAbsLevelGreater2Flag(s2, store, 0, 1, 1)
	if gotChroma != wantChroma {
		t.Errorf("chroma: got %d, want %d", gotChroma, wantChroma)
	}
}

func TestLastSignificantCoeffXYSwapsUnderVerticalScan(t *testing.T) {
	store := InitContextModelStore(make([]uint8, 40), 26)
	data := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}

	sDiag := InitArithmeticState(data)
	xDiag, yDiag := LastSignificantCoeffXY(sDiag, store, 0, 20, 3, 0, ScanDiagonal)

	storeVert := InitContextModelStore(make([]uint8, 40), 26)
	sVert := InitArithmeticState(data)
	xVert, yVert := LastSignificantCoeffXY(sVert, storeVert, 0, 20, 3, 0, ScanVertical)

	if xDiag != yVert || yDiag != xVert {
		t.Errorf("vertical scan should swap x/y relative to diagonal: diag=(%d,%d) vert=(%d,%d)", xDiag, yDiag, xVert, yVert)
	}
}
