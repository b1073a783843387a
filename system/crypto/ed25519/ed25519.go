// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ed25519 ed25519系签名
package ed25519

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/33cn/pulsegame/common/crypto"
	"golang.org/x/crypto/ed25519"
)

// Driver 驱动
type Driver struct{}

// GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	seed := crypto.CRandBytes(ed25519.SeedSize)
	privKeyBytes := new([64]byte)
	copy(privKeyBytes[:], ed25519.NewKeyFromSeed(seed))
	return PrivKeyEd25519(*privKeyBytes), nil
}

// PrivKeyFromBytes 字节转为私钥
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != 64 && len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([64]byte)
	if len(b) == 32 {
		copy(privKeyBytes[:], ed25519.NewKeyFromSeed(b))
	} else {
		// 私钥的前32字节为种子，重新推导公钥部分，保证一致
		copy(privKeyBytes[:], ed25519.NewKeyFromSeed(b[:32]))
	}
	return PrivKeyEd25519(*privKeyBytes), nil
}

// PubKeyFromBytes 字节转为公钥
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != 32 {
		return nil, errors.New("invalid pub key byte")
	}
	pubKeyBytes := new([32]byte)
	copy(pubKeyBytes[:], b[:])
	return PubKeyEd25519(*pubKeyBytes), nil
}

// SignatureFromBytes 字节转为签名
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	if len(b) != 64 {
		return nil, errors.New("invalid sig len")
	}
	sigBytes := new([64]byte)
	copy(sigBytes[:], b[:])
	return SignatureEd25519(*sigBytes), nil
}

// PrivKeyEd25519 PrivKey
type PrivKeyEd25519 [64]byte

// Bytes 字节格式
func (privKey PrivKeyEd25519) Bytes() []byte {
	s := make([]byte, 64)
	copy(s, privKey[:])
	return s
}

// Sign 签名
func (privKey PrivKeyEd25519) Sign(msg []byte) crypto.Signature {
	sig := ed25519.Sign(ed25519.PrivateKey(privKey[:]), msg)
	sigBytes := new([64]byte)
	copy(sigBytes[:], sig)
	return SignatureEd25519(*sigBytes)
}

// PubKey 私钥生成公钥
func (privKey PrivKeyEd25519) PubKey() crypto.PubKey {
	pubBytes := new([32]byte)
	copy(pubBytes[:], privKey[32:])
	return PubKeyEd25519(*pubBytes)
}

// Equals 私钥是否相等
func (privKey PrivKeyEd25519) Equals(other crypto.PrivKey) bool {
	if otherEd, ok := other.(PrivKeyEd25519); ok {
		return bytes.Equal(privKey[:], otherEd[:])
	}
	return false
}

func (privKey PrivKeyEd25519) String() string {
	return "PrivKeyEd25519{*****}"
}

// PubKeyEd25519 PubKey
type PubKeyEd25519 [32]byte

// Bytes 字节格式
func (pubKey PubKeyEd25519) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 验证字节
func (pubKey PubKeyEd25519) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	sigEd, ok := sig.(SignatureEd25519)
	if !ok {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey[:]), msg, sigEd[:])
}

func (pubKey PubKeyEd25519) String() string {
	return fmt.Sprintf("PubKeyEd25519{%X}", pubKey[:])
}

// KeyString Must return the full bytes in hex.
// Used for map keying, etc.
func (pubKey PubKeyEd25519) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

// Equals 公钥是否相等
func (pubKey PubKeyEd25519) Equals(other crypto.PubKey) bool {
	if otherEd, ok := other.(PubKeyEd25519); ok {
		return bytes.Equal(pubKey[:], otherEd[:])
	}
	return false
}

// SignatureEd25519 Signature
type SignatureEd25519 [64]byte

// Bytes 字节格式
func (sig SignatureEd25519) Bytes() []byte {
	s := make([]byte, 64)
	copy(s, sig[:])
	return s
}

// IsZero 是否为0
func (sig SignatureEd25519) IsZero() bool { return len(sig) == 0 }

func (sig SignatureEd25519) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

// Equals 签名是否相等
func (sig SignatureEd25519) Equals(other crypto.Signature) bool {
	if otherEd, ok := other.(SignatureEd25519); ok {
		return bytes.Equal(sig[:], otherEd[:])
	}
	return false
}

// Name 名字
const Name = "ed25519"

// ID id
const ID = 2

func init() {
	crypto.Register(Name, &Driver{})
	crypto.RegisterType(Name, ID)
}
