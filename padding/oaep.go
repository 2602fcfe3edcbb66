// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"crypto/subtle"
	"io"

	"github.com/cryptoplane/rsapad/digest"
)

// wipe zeroes b. Scratch regions are wiped before use because callers may
// hand in reused buffers.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// OaepApplyScratchLen returns the scratch requirement of
// ApplyOaepPadding for the given engine and block length.
func OaepApplyScratchLen(alg *digest.Alg, blockLen int) int {
	hLen := alg.ResultSize()
	dbLen := blockLen - (hLen + 1)
	return 2*hLen + 2*dbLen
}

// OaepRemoveScratchLen returns the scratch requirement of
// RemoveOaepPadding for the given engine and block length.
func OaepRemoveScratchLen(alg *digest.Alg, blockLen int) int {
	hLen := alg.ResultSize()
	dbLen := blockLen - (hLen + 1)
	return 3*hLen + 2*dbLen
}

// ApplyOaepPadding formats plaintext into block as
//
//	0x00 || maskedSeed || maskedDB
//
// with DB = Hash(label) || PS || 0x01 || M and the seed/DB cross-masked via
// MGF1. A nil seed is drawn from random at full digest length; an explicit
// seed may be at most digest-length bytes and is left-padded with zeros.
// scratch must hold OaepApplyScratchLen bytes, or be nil to allocate.
func ApplyOaepPadding(alg *digest.Alg, random io.Reader, plaintext, label, seed, block, scratch []byte) error {
	hLen := alg.ResultSize()

	if len(block) < len(plaintext)+2*hLen+2 || len(seed) > hLen {
		return ErrInvalidArgument
	}

	psLen := len(block) - (len(plaintext) + 2*hLen + 2)
	dbLen := len(block) - (hLen + 1)

	need := OaepApplyScratchLen(alg, len(block))
	if scratch == nil {
		scratch = make([]byte, need)
	} else if len(scratch) < need {
		return ErrBufferTooSmall
	}

	seedBuf := scratch[:hLen]
	seedMask := scratch[hLen : 2*hLen]
	db := scratch[2*hLen : 2*hLen+dbLen]
	dbMask := scratch[2*hLen+dbLen : 2*hLen+2*dbLen]

	// DB = Hash(label) || PS || 0x01 || M
	h := alg.New()
	h.Write(label)
	h.Sum(db[:0])
	wipe(db[hLen : hLen+psLen])
	db[hLen+psLen] = 0x01
	copy(db[hLen+psLen+1:], plaintext)

	if seed == nil {
		if _, err := io.ReadFull(random, seedBuf); err != nil {
			return wrapRandom(err)
		}
	} else {
		wipe(seedBuf)
		copy(seedBuf[hLen-len(seed):], seed)
	}

	block[0] = 0x00

	maskedDB := block[hLen+1:]
	MaskGen(alg, seedBuf, dbMask)
	for i := 0; i < dbLen; i++ {
		maskedDB[i] = db[i] ^ dbMask[i]
	}

	maskedSeed := block[1 : hLen+1]
	MaskGen(alg, maskedDB, seedMask)
	for i := 0; i < hLen; i++ {
		maskedSeed[i] = seedBuf[i] ^ seedMask[i]
	}

	return nil
}

// RemoveOaepPadding inverts ApplyOaepPadding, checking the label binding,
// and copies the message into plaintext, returning the message length. A
// nil plaintext reports the length without copying; a too-short plaintext
// still reports the true length alongside ErrBufferTooSmall. scratch must
// hold OaepRemoveScratchLen bytes, or be nil to allocate.
func RemoveOaepPadding(alg *digest.Alg, block, label, plaintext, scratch []byte) (int, error) {
	hLen := alg.ResultSize()

	// A valid block carries at least the leading zero byte, the masked
	// seed, the label hash, and the 0x01 separator.
	if len(block) < 2*hLen+2 || block[0] != 0x00 {
		return 0, ErrInvalidArgument
	}

	dbLen := len(block) - (hLen + 1)

	need := OaepRemoveScratchLen(alg, len(block))
	if scratch == nil {
		scratch = make([]byte, need)
	} else if len(scratch) < need {
		return 0, ErrBufferTooSmall
	}

	seedMask := scratch[:hLen]
	seedBuf := scratch[hLen : 2*hLen]
	labelHash := scratch[2*hLen : 3*hLen]
	db := scratch[3*hLen : 3*hLen+dbLen]
	dbMask := scratch[3*hLen+dbLen : 3*hLen+2*dbLen]

	maskedSeed := block[1 : hLen+1]
	maskedDB := block[hLen+1:]

	MaskGen(alg, maskedDB, seedMask)
	for i := 0; i < hLen; i++ {
		seedBuf[i] = maskedSeed[i] ^ seedMask[i]
	}

	MaskGen(alg, seedBuf, dbMask)
	for i := 0; i < dbLen; i++ {
		db[i] = maskedDB[i] ^ dbMask[i]
	}

	h := alg.New()
	h.Write(label)
	h.Sum(labelHash[:0])

	// Fixed-length compare; must not short-circuit on the first divergence.
	valid := subtle.ConstantTimeCompare(labelHash, db[:hLen])

	cnt := hLen
	sepFound := false
	for ; cnt < dbLen; cnt++ {
		if db[cnt] == 0x01 {
			cnt++
			sepFound = true
			break
		}
		if db[cnt] != 0x00 {
			return 0, ErrInvalidArgument
		}
	}

	if valid != 1 || !sepFound {
		return 0, ErrInvalidArgument
	}

	n := dbLen - cnt
	if plaintext == nil {
		return n, nil
	}
	if len(plaintext) < n {
		return n, ErrBufferTooSmall
	}
	copy(plaintext, db[cnt:])

	return n, nil
}
