// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"crypto/subtle"
	"io"
)

// PKCS#1 v1.5 block types.
const (
	blockType1 = 0x01
	blockType2 = 0x02
)

// pkcs1EncryptOverhead is the fixed cost of Type-2 padding: two header
// bytes, at least eight padding bytes, and the zero delimiter.
const pkcs1EncryptOverhead = 11

// ApplyPkcs1EncryptionPadding formats plaintext into block as
//
//	0x00 || 0x02 || PS || 0x00 || M
//
// where PS is non-zero random padding drawn from random. block must be the
// modulus length; plaintext may be at most len(block)-11 bytes.
func ApplyPkcs1EncryptionPadding(random io.Reader, plaintext, block []byte) error {
	if len(plaintext)+pkcs1EncryptOverhead > len(block) {
		return ErrInvalidArgument
	}

	psLen := len(block) - (len(plaintext) + 3)

	block[0] = 0x00
	block[1] = blockType2

	ps := block[2 : 2+psLen]
	if _, err := io.ReadFull(random, ps); err != nil {
		return wrapRandom(err)
	}

	// PS may not contain zero bytes; resample each offending byte until
	// the source yields a non-zero one.
	for i := range ps {
		for ps[i] == 0x00 {
			if _, err := io.ReadFull(random, ps[i:i+1]); err != nil {
				return wrapRandom(err)
			}
		}
	}

	block[2+psLen] = 0x00
	copy(block[3+psLen:], plaintext)

	return nil
}

// RemovePkcs1EncryptionPadding parses a Type-2 block and copies the message
// into plaintext, returning the message length. A nil plaintext reports the
// length without copying. When plaintext is too short the true length is
// still returned alongside ErrBufferTooSmall.
func RemovePkcs1EncryptionPadding(block, plaintext []byte) (int, error) {
	if len(block) < 2 {
		return 0, ErrInvalidArgument
	}

	// Accumulate the header checks instead of branching on each one, so
	// that a reject takes the same path regardless of which byte is wrong.
	valid := subtle.ConstantTimeByteEq(block[0], 0x00)
	valid &= subtle.ConstantTimeByteEq(block[1], blockType2)

	// Note: the delimiter scan runs in time dependent on the padding
	// content; it is deliberately kept byte-compatible rather than
	// rewritten with different timing behavior.
	i := 2
	for ; i < len(block); i++ {
		if block[i] == 0x00 {
			break
		}
	}
	valid &= subtle.ConstantTimeLessOrEq(i+1, len(block))

	if valid != 1 {
		return 0, ErrInvalidArgument
	}
	i++

	n := len(block) - i
	if plaintext == nil {
		return n, nil
	}
	if len(plaintext) < n {
		return n, ErrBufferTooSmall
	}
	copy(plaintext, block[i:])

	return n, nil
}
