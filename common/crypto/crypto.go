// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 加解密、签名接口定义
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sync"
)

// PrivKey 私钥接口
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

// Signature 签名接口
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
	Equals(Signature) bool
}

// PubKey 公钥接口
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

// Crypto 加密接口
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

var (
	drivers     = make(map[string]Crypto)
	driversType = make(map[string]int)
	driverMutex sync.Mutex
)

// Register 注册加密算法
func Register(name string, driver Crypto) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// RegisterType 注册类型
func RegisterType(name string, ty int) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	for n, t := range driversType {
		//由于可能存在同一个签名类型的多个插件，这里只检查类型号不能重复
		if t == ty && n != name {
			panic(fmt.Sprintf("crypto: Register dup type, %s and %s both use type %d", name, n, ty))
		}
	}
	driversType[name] = ty
}

// New new crypto driver
func New(name string) (c Crypto, err error) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	c, ok := drivers[name]
	if !ok {
		err = fmt.Errorf("unknown driver %q", name)
		return
	}
	return c, nil
}

// GetName 获取name
func GetName(ty int) string {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	for name, t := range driversType {
		if t == ty {
			return name
		}
	}
	return "unknown"
}

// GetType 获取type
func GetType(name string) int {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if ty, ok := driversType[name]; ok {
		return ty
	}
	return 0
}

// CRandBytes returns numBytes bytes of cryptographically secure random data
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

// Sha256 计算sha256值
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}
