// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package padding

import (
	"crypto/subtle"
)

const (
	asn1SequenceByte    = 0x30
	asn1OctetStringByte = 0x04
)

// ApplyPkcs1SignaturePadding formats a digest into block as
//
//	0x00 || 0x01 || 0xFF..FF || 0x00 || DigestInfo
//
// where DigestInfo is SEQUENCE[SEQUENCE[OID NULL] OCTETSTRING(hashVal)]
// built from oid. A nil or empty oid selects the legacy DigestInfo that
// carries only OCTETSTRING(hashVal); noAsn1 drops the wrapper entirely and
// places the raw digest after the delimiter. At least eight bytes of 0xFF
// padding are required, so large digests do not fit small moduli.
func ApplyPkcs1SignaturePadding(hashVal, oid []byte, noAsn1 bool, block []byte) error {
	var encLen int
	if !noAsn1 {
		if len(oid) > 0 {
			// two SEQUENCE headers plus the OCTET STRING header; the
			// oid entry carries its own TLV bytes
			encLen = 6 + len(oid) + len(hashVal)
		} else {
			encLen = 2 + len(hashVal)
		}
	} else {
		encLen = len(hashVal)
	}

	// Single-byte ASN.1 length fields only; this also guarantees the OID
	// and digest lengths each fit in one byte.
	if encLen > 0x80 {
		return ErrInvalidArgument
	}

	// 0x00 0x01, the 0x00 delimiter, and at least 8 bytes of 0xFF.
	if 3+8+encLen > len(block) {
		return ErrInvalidArgument
	}

	padLen := len(block) - 3 - encLen

	block[0] = 0x00
	block[1] = blockType1
	for i := 0; i < padLen; i++ {
		block[2+i] = 0xff
	}
	block[2+padLen] = 0x00

	enc := block[3+padLen:]
	if noAsn1 {
		copy(enc, hashVal)
		return nil
	}

	off := 0
	if len(oid) > 0 {
		enc[0] = asn1SequenceByte
		enc[1] = byte(encLen - 2)
		enc[2] = asn1SequenceByte
		enc[3] = byte(len(oid))
		copy(enc[4:], oid)
		off = 4 + len(oid)
	}

	enc[off] = asn1OctetStringByte
	enc[off+1] = byte(len(hashVal))
	copy(enc[off+2:], hashVal)

	return nil
}

// CheckPkcs1SignaturePadding rebuilds the expected block for (hashVal, oid,
// noAsn1) in scratch and compares it against block with a fixed-length
// equality. scratch must hold len(block) bytes, or be nil to allocate.
func CheckPkcs1SignaturePadding(hashVal, oid, block []byte, noAsn1 bool, scratch []byte) error {
	if scratch == nil {
		scratch = make([]byte, len(block))
	} else if len(scratch) < len(block) {
		return ErrBufferTooSmall
	}
	scratch = scratch[:len(block)]
	wipe(scratch)

	if err := ApplyPkcs1SignaturePadding(hashVal, oid, noAsn1, scratch); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(scratch, block) != 1 {
		return ErrVerificationFailure
	}
	return nil
}

// VerifyPkcs1SignaturePadding checks block against hashVal, trying each OID
// in oids in order and accepting the first match. When oids is empty, or
// when no OID matched and optionalOid is set, the ASN.1-free encoding is
// tried once as a fallback. The ordered fallback is a compatibility policy
// for peers with inconsistent OID conventions. scratch must hold
// len(block) bytes, or be nil to allocate.
func VerifyPkcs1SignaturePadding(hashVal []byte, oids []Oid, block []byte, optionalOid bool, scratch []byte) error {
	err := ErrVerificationFailure

	for i := range oids {
		err = CheckPkcs1SignaturePadding(hashVal, oids[i].Bytes, block, false, scratch)
		if err == nil {
			break
		}
	}

	if len(oids) == 0 || (err != nil && optionalOid) {
		err = CheckPkcs1SignaturePadding(hashVal, nil, block, true, scratch)
	}

	return err
}
