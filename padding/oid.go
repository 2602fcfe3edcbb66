// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"github.com/cryptoplane/rsapad/digest"
)

// Oid holds the DER contents of a DigestInfo AlgorithmIdentifier: the OID
// TLV, optionally followed by a NULL-parameters TLV. The byte strings are
// immutable; never modify an entry taken from the lists below.
type Oid struct {
	Bytes []byte
}

// Per supported digest, two encodings: the long form carries explicit NULL
// parameters, the short form omits them. Verification accepts either;
// apply paths use the long form first by convention.
var (
	Md5OidList = []Oid{
		{Bytes: []byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00}},
		{Bytes: []byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05}},
	}

	Sha1OidList = []Oid{
		{Bytes: []byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00}},
		{Bytes: []byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a}},
	}

	Sha256OidList = []Oid{
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00}},
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}},
	}

	Sha384OidList = []Oid{
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00}},
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}},
	}

	Sha512OidList = []Oid{
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00}},
		{Bytes: []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}},
	}
)

// OidList returns the AlgorithmIdentifier encodings registered for alg,
// long form first, or nil when alg has no PKCS#1 v1.5 registration.
func OidList(alg *digest.Alg) []Oid {
	switch alg {
	case digest.MD5:
		return Md5OidList
	case digest.SHA1:
		return Sha1OidList
	case digest.SHA256:
		return Sha256OidList
	case digest.SHA384:
		return Sha384OidList
	case digest.SHA512:
		return Sha512OidList
	}
	return nil
}
