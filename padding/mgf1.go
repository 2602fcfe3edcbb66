// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"encoding/binary"

	"github.com/cryptoplane/rsapad/digest"
)

// MaskGen fills mask with MGF1 output derived from seed: the concatenated
// digests of seed || bigEndian32(counter) for counter = 0, 1, ... until
// len(mask) bytes are produced. A zero-length mask is a no-op.
func MaskGen(alg *digest.Alg, seed, mask []byte) {
	if len(mask) == 0 {
		return
	}

	hLen := alg.ResultSize()
	iterations := (len(mask) + hLen - 1) / hLen

	// When every counter value fits in one byte, only position 3 of the
	// big-endian encoding is ever non-zero, so a full 4-byte encode can be
	// skipped. Both paths emit identical counter bytes.
	fastCounter := iterations < 256

	h := alg.New()
	var counter [4]byte
	var dig []byte

	out := mask
	for i := 0; i < iterations; i++ {
		h.Reset()
		h.Write(seed)
		if fastCounter {
			counter[3] = byte(i)
		} else {
			binary.BigEndian.PutUint32(counter[:], uint32(i))
		}
		h.Write(counter[:])
		dig = h.Sum(dig[:0])

		n := copy(out, dig)
		out = out[n:]
	}
}
