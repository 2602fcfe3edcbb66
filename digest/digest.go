// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package digest describes the hash engines the padding codecs consume.
// A codec never names a concrete algorithm; it works against an *Alg
// selected by the caller.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Alg is an immutable descriptor for one hash algorithm: its digest size,
// the scratch footprint of one running instance, and a constructor.
type Alg struct {
	name      string
	size      int
	stateSize int
	newFn     func() hash.Hash
}

// Name returns the conventional algorithm name, e.g. "SHA-256".
func (a *Alg) Name() string { return a.name }

// ResultSize returns the digest length in bytes.
func (a *Alg) ResultSize() int { return a.size }

// StateSize returns the in-memory working-state footprint of one hash
// instance in bytes: chaining values plus one message block plus length
// bookkeeping. It is metadata for callers that budget scratch memory;
// instances returned by New own their state.
func (a *Alg) StateSize() int { return a.stateSize }

// New returns a fresh hash instance.
func (a *Alg) New() hash.Hash { return a.newFn() }

// Sum computes the digest of data in one shot.
func (a *Alg) Sum(data []byte) []byte {
	h := a.newFn()
	h.Write(data)
	return h.Sum(nil)
}

var (
	MD5    = &Alg{name: "MD5", size: md5.Size, stateSize: 96, newFn: md5.New}
	SHA1   = &Alg{name: "SHA-1", size: sha1.Size, stateSize: 100, newFn: sha1.New}
	SHA256 = &Alg{name: "SHA-256", size: sha256.Size, stateSize: 112, newFn: sha256.New}
	SHA384 = &Alg{name: "SHA-384", size: sha512.Size384, stateSize: 208, newFn: sha512.New384}
	SHA512 = &Alg{name: "SHA-512", size: sha512.Size, stateSize: 208, newFn: sha512.New}

	// SHA3_256 has no PKCS#1 v1.5 OID entry in this library; it is usable
	// with the mask generator, OAEP and PSS only.
	SHA3_256 = &Alg{name: "SHA3-256", size: 32, stateSize: 216, newFn: func() hash.Hash { return sha3.New256() }}
)

// All lists every supported engine, in registry order.
var All = []*Alg{MD5, SHA1, SHA256, SHA384, SHA512, SHA3_256}
