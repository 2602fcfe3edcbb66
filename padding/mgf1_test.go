// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoplane/rsapad/digest"
	"github.com/cryptoplane/rsapad/padding"
)

func TestMaskGenDeterministic(t *testing.T) {
	seed := []byte("mask generation seed")
	for _, alg := range digest.All {
		a := make([]byte, 1000)
		b := make([]byte, 1000)
		padding.MaskGen(alg, seed, a)
		padding.MaskGen(alg, seed, b)
		assert.Equal(t, a, b, alg.Name())
	}
}

func TestMaskGenZeroLength(t *testing.T) {
	padding.MaskGen(digest.SHA256, []byte("seed"), nil)
	padding.MaskGen(digest.SHA256, []byte("seed"), []byte{})
}

// A mask that needs 256 or more hash iterations switches to the general
// 4-byte counter encoding; its prefix must agree byte for byte with a mask
// short enough to use the single-byte path.
func TestMaskGenCounterPathsAgree(t *testing.T) {
	seed := []byte("counter path seed")
	for _, alg := range []*digest.Alg{digest.MD5, digest.SHA256} {
		hLen := alg.ResultSize()
		short := make([]byte, 255*hLen)
		long := make([]byte, 256*hLen+7)
		padding.MaskGen(alg, seed, short)
		padding.MaskGen(alg, seed, long)
		require.True(t, bytes.Equal(short, long[:len(short)]), alg.Name())
	}
}

// Prefix consistency: a shorter mask over the same seed is always a prefix
// of a longer one.
func TestMaskGenPrefixConsistent(t *testing.T) {
	seed := []byte{0x01, 0x02, 0x03}
	long := make([]byte, 300)
	padding.MaskGen(digest.SHA1, seed, long)

	for _, n := range []int{1, 19, 20, 21, 299} {
		short := make([]byte, n)
		padding.MaskGen(digest.SHA1, seed, short)
		assert.Equal(t, long[:n], short, "len %d", n)
	}
}
