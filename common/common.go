// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 提供哈希、编码等基础功能
package common

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
)

// ToHex returns the hex representation of b, prefixed with '0x'.
func ToHex(b []byte) string {
	hexb := hex.EncodeToString(b)
	if len(hexb) == 0 {
		return ""
	}
	return "0x" + hexb
}

// HashHex 返回十六进制编码（无前缀）
func HashHex(d []byte) string {
	return hex.EncodeToString(d)
}

// FromHex returns the bytes represented by the hexadecimal string s.
// s may be prefixed with "0x".
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// IsHex 检查是否调用十六进制编码
func IsHex(str string) bool {
	l := len(str)
	if l >= 4 && l%2 == 0 && str[0:2] == "0x" {
		str = str[2:]
		_, err := hex.DecodeString(str)
		return err == nil
	}
	return false
}

// GetRandBytes 获取随机字节
func GetRandBytes(min, max int) []byte {
	if max < min {
		max = min
	}
	length := min
	if max > min {
		d, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
		if err == nil {
			length = min + int(d.Int64())
		}
	}
	buf := make([]byte, length)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	return buf
}

// GetRandString 获取随机字符串
func GetRandString(length int) string {
	chars := "abcdefghijklmnopqrstuvwxyz0123456789"
	var sb strings.Builder
	buf := make([]byte, length)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	for i := 0; i < length; i++ {
		sb.WriteByte(chars[int(buf[i])%len(chars)])
	}
	return sb.String()
}

// GetRandPrintString 获取随机可打印字符串
func GetRandPrintString(min, max int) string {
	b := GetRandBytes(min, max)
	return ToHex(b)
}

// ErrHexLength 十六进制长度错误
var ErrHexLength = errors.New("ErrHexLength")

// FromHexFixed 解析定长十六进制
func FromHexFixed(s string, size int) ([]byte, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, ErrHexLength
	}
	return b, nil
}
