package cabac

import "errors"

// ErrContextCountMismatch is returned by ContextModelStore.Reset when the
// supplied initValues slice does not match the store's fixed size. It is
// the one place this package returns an error to the caller; everything
// else follows the bit-exactness contract and either produces a value
// consistent with trailing zero bits or panics on a programming error
// (an out-of-range context index).
var ErrContextCountMismatch = errors.New("cabac: initValues length does not match context store size")
