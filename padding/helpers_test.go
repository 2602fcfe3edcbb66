// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding_test

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"sync"
	"testing"
)

// Test keys are generated once per run. The padding codecs never perform
// the modular exponentiation themselves; the tests drive it with big.Int so
// that crypto/rsa can act as the reference peer on the other side.
var (
	key2048Once sync.Once
	key2048     *rsa.PrivateKey

	key2049Once sync.Once
	key2049     *rsa.PrivateKey
)

func testKey2048(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key2048Once.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		key2048 = k
	})
	return key2048
}

// testKey2049 exercises the PSS corner case where the modulus bit length is
// 1 mod 8.
func testKey2049(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key2049Once.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2049)
		if err != nil {
			panic(err)
		}
		key2049 = k
	})
	return key2049
}

// rawPublic computes block^e mod n, the textbook RSA public operation.
func rawPublic(pub *rsa.PublicKey, block []byte) []byte {
	m := new(big.Int).SetBytes(block)
	c := new(big.Int).Exp(m, big.NewInt(int64(pub.E)), pub.N)
	return c.FillBytes(make([]byte, pub.Size()))
}

// rawPrivate computes block^d mod n, the textbook RSA private operation.
func rawPrivate(priv *rsa.PrivateKey, block []byte) []byte {
	m := new(big.Int).SetBytes(block)
	c := new(big.Int).Exp(m, priv.D, priv.N)
	return c.FillBytes(make([]byte, priv.Size()))
}
