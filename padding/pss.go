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

// pssEmLen returns the working encoded-message length for modBits: one byte
// shorter than the modulus when modBits == 1 (mod 8).
func pssEmLen(modBits int) int {
	return (modBits + 6) / 8
}

// PssApplyScratchLen returns the scratch requirement of ApplyPssPadding.
func PssApplyScratchLen(alg *digest.Alg, digestLen, saltLen, modBits int) int {
	dbLen := pssEmLen(modBits) - (alg.ResultSize() + 1)
	return 8 + digestLen + saltLen + 2*dbLen
}

// PssVerifyScratchLen returns the scratch requirement of VerifyPssPadding.
func PssVerifyScratchLen(alg *digest.Alg, digestLen, saltLen, modBits int) int {
	dbLen := pssEmLen(modBits) - (alg.ResultSize() + 1)
	return dbLen + 8 + digestLen + saltLen + alg.ResultSize()
}

// ApplyPssPadding formats digestVal into block as
//
//	maskedDB || H || 0xBC
//
// where H = Hash(0x00*8 || digestVal || salt) and DB = PS || 0x01 || salt.
// When modBits == 1 (mod 8) the leading block byte is forced to zero and
// the remainder of the block is treated as the encoded message. A nil salt
// draws saltLen random bytes from random; an explicit salt overrides
// saltLen with its own length. scratch must hold PssApplyScratchLen bytes,
// or be nil to allocate.
func ApplyPssPadding(alg *digest.Alg, random io.Reader, digestVal, salt []byte, saltLen, modBits int, block, scratch []byte) error {
	hLen := alg.ResultSize()

	if len(block) == 0 {
		return ErrInvalidArgument
	}

	em := block
	if modBits%8 == 1 {
		em[0] = 0x00
		em = em[1:]
	}

	if salt != nil {
		saltLen = len(salt)
	}

	zeroBits := 8*len(em) + 1 - modBits
	if zeroBits < 0 || zeroBits > 7 || len(em) < hLen+saltLen+2 {
		return ErrInvalidArgument
	}

	dbLen := len(em) - (hLen + 1)
	psLen := dbLen - saltLen - 1
	mLen := 8 + len(digestVal) + saltLen

	need := mLen + 2*dbLen
	if scratch == nil {
		scratch = make([]byte, need)
	} else if len(scratch) < need {
		return ErrBufferTooSmall
	}

	mPrime := scratch[:mLen]
	db := scratch[mLen : mLen+dbLen]
	dbMask := scratch[mLen+dbLen : mLen+2*dbLen]

	// M' = 0x00*8 || digestVal || salt
	wipe(mPrime[:8])
	copy(mPrime[8:], digestVal)
	if salt == nil {
		if _, err := io.ReadFull(random, mPrime[8+len(digestVal):]); err != nil {
			return wrapRandom(err)
		}
	} else {
		copy(mPrime[8+len(digestVal):], salt)
	}

	// H = Hash(M'), written into its final slot in the block.
	h := alg.New()
	h.Write(mPrime)
	h.Sum(em[dbLen:dbLen])

	wipe(db[:psLen])
	db[psLen] = 0x01
	copy(db[psLen+1:], mPrime[8+len(digestVal):])

	MaskGen(alg, em[dbLen:dbLen+hLen], dbMask)
	for i := 0; i < dbLen; i++ {
		em[i] = db[i] ^ dbMask[i]
	}

	em[0] &= byte(0xff >> uint(zeroBits))
	em[len(em)-1] = 0xbc

	return nil
}

// VerifyPssPadding checks block against digestVal for a salt of saltLen
// bytes. Every reject cause reports the same ErrInvalidArgument. scratch
// must hold PssVerifyScratchLen bytes, or be nil to allocate.
func VerifyPssPadding(alg *digest.Alg, digestVal []byte, saltLen int, block []byte, modBits int, scratch []byte) error {
	hLen := alg.ResultSize()

	if len(block) == 0 {
		return ErrInvalidArgument
	}

	em := block
	if modBits%8 == 1 {
		if em[0] != 0x00 {
			return ErrInvalidArgument
		}
		em = em[1:]
	}
	if len(em) == 0 {
		return ErrInvalidArgument
	}

	zeroBits := 8*len(em) + 1 - modBits
	if zeroBits < 0 || zeroBits > 7 {
		return ErrInvalidArgument
	}

	// The top zeroBits bits must be clear, the trailer byte fixed, and the
	// block long enough for digest, salt and delimiters.
	if em[0]&byte(0xff<<uint(8-zeroBits)) != 0 ||
		em[len(em)-1] != 0xbc ||
		len(em) < hLen+saltLen+2 {
		return ErrInvalidArgument
	}

	dbLen := len(em) - (hLen + 1)
	mLen := 8 + len(digestVal) + saltLen

	need := dbLen + mLen + hLen
	if scratch == nil {
		scratch = make([]byte, need)
	} else if len(scratch) < need {
		return ErrBufferTooSmall
	}

	db := scratch[:dbLen]
	mPrime := scratch[dbLen : dbLen+mLen]
	mPrimeHash := scratch[dbLen+mLen : dbLen+mLen+hLen]

	storedHash := em[dbLen : dbLen+hLen]

	MaskGen(alg, storedHash, db)
	for i := 0; i < dbLen; i++ {
		db[i] ^= em[i]
	}
	db[0] &= byte(0xff >> uint(zeroBits))

	for i := 0; i < dbLen-saltLen-1; i++ {
		if db[i] != 0x00 {
			return ErrInvalidArgument
		}
	}
	if db[dbLen-saltLen-1] != 0x01 {
		return ErrInvalidArgument
	}

	// M' = 0x00*8 || digestVal || recovered salt
	wipe(mPrime[:8])
	copy(mPrime[8:], digestVal)
	copy(mPrime[8+len(digestVal):], db[dbLen-saltLen:])

	h := alg.New()
	h.Write(mPrime)
	h.Sum(mPrimeHash[:0])

	if subtle.ConstantTimeCompare(storedHash, mPrimeHash) != 1 {
		return ErrInvalidArgument
	}

	return nil
}
