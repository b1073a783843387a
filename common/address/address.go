// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 计算地址相关的函数
package address

import (
	"bytes"
	"errors"

	"github.com/33cn/pulsegame/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")

var addressCache *lru.Cache
var checkAddressCache *lru.Cache
var execAddressCache *lru.Cache
var execPubkeyCache *lru.Cache

// ErrCheckVersion :
var ErrCheckVersion = errors.New("check version error")

// ErrCheckChecksum :
var ErrCheckChecksum = errors.New("Address Checksum error")

// ErrAddressChecksum :
var ErrAddressChecksum = errors.New("address checksum error")

// MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// NormalVer 普通地址的版本号
const NormalVer byte = 0

func init() {
	var err error
	addressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	checkAddressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	execAddressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	execPubkeyCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

// ExecPubKey 计算公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	if value, ok := execPubkeyCache.Get(name); ok {
		return value.([]byte)
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	pub := common.Sha2Sum(buf)
	execPubkeyCache.Add(name, pub)
	return pub
}

// ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := execAddressCache.Get(name); ok {
		return value.(string)
	}
	addr := GetExecAddress(name)
	addrstr := addr.String()
	execAddressCache.Add(name, addrstr)
	return addrstr
}

// GetExecAddress 获取执行器地址
func GetExecAddress(name string) *Address {
	hash := ExecPubKey(name)
	return PubKeyToAddress(hash)
}

// PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = NormalVer
	a.SetBytes(common.Rimp160AfterSha256(in))
	return a
}

// PubKeyToAddr 公钥转为地址字符串
func PubKeyToAddr(in []byte) string {
	if value, ok := addressCache.Get(string(in)); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(in).String()
	addressCache.Add(string(in), addr)
	return addr
}

// CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	dat := base58.Decode(addr)
	if dat == nil || len(dat) != 25 {
		e = ErrCheckVersion
		checkAddressCache.Add(addr, e)
		return
	}
	if dat[0] != NormalVer {
		e = ErrCheckVersion
		checkAddressCache.Add(addr, e)
		return
	}
	sh := common.Sha2Sum(dat[0:21])
	if !bytes.Equal(sh[:4], dat[21:25]) {
		e = ErrCheckChecksum
	}
	checkAddressCache.Add(addr, e)
	return e
}

// Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte // For a stealth address: it's HASH160
	Checksum []byte   // Unused for a stealth address
	Pubkey   []byte   // Unused for a stealth address
	Enc58str string
}

// SetBytes 设置地址的bytes
func (a *Address) SetBytes(b []byte) {
	copy(a.Hash160[:], b)
}

// String 地址转换为字符串
func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

// Hash160FromAddress 从地址字符串中取出hash160
func Hash160FromAddress(addr string) ([]byte, error) {
	dat := base58.Decode(addr)
	if dat == nil || len(dat) != 25 {
		return nil, ErrAddressChecksum
	}
	return dat[1:21], nil
}
