// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument covers malformed input, violated size constraints
	// and unsupported argument combinations. Verification paths return it
	// for every reject cause without distinguishing which check failed.
	ErrInvalidArgument = errors.New("rsapad: invalid argument")

	// ErrBufferTooSmall means an output or scratch buffer is shorter than
	// the already-validated result requires. Remove operations still report
	// the true plaintext length alongside it.
	ErrBufferTooSmall = errors.New("rsapad: buffer too small")

	// ErrVerificationFailure is the uniform reject signal for PKCS#1 v1.5
	// signature padding checks.
	ErrVerificationFailure = errors.New("rsapad: signature verification failure")
)

// wrapRandom tags a failure of the caller's random source. The source
// error stays reachable through errors.Cause.
func wrapRandom(err error) error {
	return errors.Wrap(err, "rsapad: random source")
}
