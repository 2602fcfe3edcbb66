// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package selftest runs power-up consistency checks over every padding
// codec and hash engine pair. All failures are collected and reported
// together rather than stopping at the first one.
package selftest

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/cryptoplane/rsapad/common"
	"github.com/cryptoplane/rsapad/digest"
	"github.com/cryptoplane/rsapad/padding"
)

const blockLen = 256 // 2048-bit modulus equivalent

// Run executes every check using random (crypto/rand when nil) and returns
// the aggregate of all failures, or nil when everything passes.
func Run(random io.Reader) error {
	if random == nil {
		random = rand.Reader
	}

	var result *multierror.Error

	if err := pkcs1Encryption(random); err != nil {
		result = multierror.Append(result, err)
	}

	for _, alg := range digest.All {
		for _, check := range []struct {
			name string
			fn   func(*digest.Alg, io.Reader) error
		}{
			{"mgf1", maskGeneration},
			{"oaep", oaepRoundTrip},
			{"pss", pssRoundTrip},
			{"pkcs1-sign", pkcs1Signature},
		} {
			if err := check.fn(alg, random); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "selftest %s/%s", check.name, alg.Name()))
				continue
			}
			common.Logger.Debugf("selftest %s/%s ok", check.name, alg.Name())
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		common.Logger.Errorf("selftest failed: %s", err)
		return err
	}
	return nil
}

// maskGeneration checks that repeated MGF1 calls are deterministic and that
// the single-byte counter encoding agrees with the general 4-byte one: a
// mask long enough to need 256+ iterations must share its prefix with a
// short mask over the same seed.
func maskGeneration(alg *digest.Alg, random io.Reader) error {
	seed := make([]byte, alg.ResultSize())
	if _, err := io.ReadFull(random, seed); err != nil {
		return err
	}

	hLen := alg.ResultSize()
	short := make([]byte, 255*hLen)  // fast counter path
	long := make([]byte, 256*hLen+1) // general path

	padding.MaskGen(alg, seed, short)
	padding.MaskGen(alg, seed, long)
	if !bytes.Equal(short, long[:len(short)]) {
		return errors.New("counter encodings disagree")
	}

	again := make([]byte, len(short))
	padding.MaskGen(alg, seed, again)
	if !bytes.Equal(short, again) {
		return errors.New("output not deterministic")
	}

	return nil
}

func pkcs1Encryption(random io.Reader) error {
	msg := make([]byte, 64)
	if _, err := io.ReadFull(random, msg); err != nil {
		return errors.Wrap(err, "selftest pkcs1-encrypt")
	}

	block := make([]byte, blockLen)
	if err := padding.ApplyPkcs1EncryptionPadding(random, msg, block); err != nil {
		return errors.Wrap(err, "selftest pkcs1-encrypt: apply")
	}

	out := make([]byte, blockLen)
	n, err := padding.RemovePkcs1EncryptionPadding(block, out)
	if err != nil {
		return errors.Wrap(err, "selftest pkcs1-encrypt: remove")
	}
	if !bytes.Equal(out[:n], msg) {
		return errors.New("selftest pkcs1-encrypt: round trip mismatch")
	}

	return nil
}

func oaepRoundTrip(alg *digest.Alg, random io.Reader) error {
	hLen := alg.ResultSize()
	if blockLen < 2*hLen+2+16 {
		return nil
	}

	msg := make([]byte, 16)
	label := []byte("selftest")
	if _, err := io.ReadFull(random, msg); err != nil {
		return err
	}

	block := make([]byte, blockLen)
	if err := padding.ApplyOaepPadding(alg, random, msg, label, nil, block, nil); err != nil {
		return err
	}

	out := make([]byte, blockLen)
	n, err := padding.RemoveOaepPadding(alg, block, label, out, nil)
	if err != nil {
		return err
	}
	if !bytes.Equal(out[:n], msg) {
		return errors.New("round trip mismatch")
	}

	return nil
}

func pssRoundTrip(alg *digest.Alg, random io.Reader) error {
	hLen := alg.ResultSize()
	digestVal := make([]byte, hLen)
	if _, err := io.ReadFull(random, digestVal); err != nil {
		return err
	}

	modBits := blockLen*8 - 1
	block := make([]byte, blockLen)
	if err := padding.ApplyPssPadding(alg, random, digestVal, nil, hLen, modBits, block, nil); err != nil {
		return err
	}

	return padding.VerifyPssPadding(alg, digestVal, hLen, block, modBits, nil)
}

func pkcs1Signature(alg *digest.Alg, random io.Reader) error {
	oids := padding.OidList(alg)
	if oids == nil {
		// no PKCS#1 v1.5 registration for this engine
		return nil
	}

	digestVal := make([]byte, alg.ResultSize())
	if _, err := io.ReadFull(random, digestVal); err != nil {
		return err
	}

	block := make([]byte, blockLen)
	for i := range oids {
		if err := padding.ApplyPkcs1SignaturePadding(digestVal, oids[i].Bytes, false, block); err != nil {
			return err
		}
		if err := padding.VerifyPkcs1SignaturePadding(digestVal, oids, block, false, nil); err != nil {
			return err
		}
	}

	// raw encoding must only be accepted through the fallback
	if err := padding.ApplyPkcs1SignaturePadding(digestVal, nil, true, block); err != nil {
		return err
	}
	if err := padding.VerifyPkcs1SignaturePadding(digestVal, oids, block, false, nil); err == nil {
		return errors.New("raw encoding accepted without fallback flag")
	}
	return padding.VerifyPkcs1SignaturePadding(digestVal, oids, block, true, nil)
}
