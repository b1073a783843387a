// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了基础结构体、接口、常量等的定义
package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// Message 这个包引用了 golang 的proto接口
type Message proto.Message

// AllowUserExec 尚未注册的执行器不允许执行交易
var AllowUserExec = [][]byte{ExecerNone}

// ExecerNone none执行器名称
var ExecerNone = []byte("none")

// AllowUserExecName 添加可执行的名字
func AllowUserExecName(name []byte) {
	AllowUserExec = append(AllowUserExec, name)
}

// IsAllowExecName 判断执行器名称是否合法
func IsAllowExecName(name []byte) bool {
	if bytes.HasPrefix(name, UserKey) {
		return false
	}
	for i := range AllowUserExec {
		if bytes.Equal(AllowUserExec[i], name) {
			return true
		}
	}
	return false
}

// UserKey 用户自定义执行器前缀，本链不开放
var UserKey = []byte("user.")

// ExecName 获取执行器名称
func ExecName(name string) string {
	return name
}

// Encode 编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Size 消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

// Decode 解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// JSONToPB json字符串转换成protobuf结构体
func JSONToPB(data []byte, msg proto.Message) error {
	return jsonpb.Unmarshal(bytes.NewReader(data), msg)
}

// PBToJSON 消息类型转换
func PBToJSON(r Message) ([]byte, error) {
	encode := &jsonpb.Marshaler{EmitDefaults: true}
	var buf bytes.Buffer
	if err := encode.Marshal(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustPBToJSON panic when error
func MustPBToJSON(req Message) []byte {
	data, err := PBToJSON(req)
	if err != nil {
		panic(err)
	}
	return data
}

// MustDecode 数据是否可以解码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

// Now 获取当前时间
func Now() time.Time {
	return time.Now()
}

// CloneTx 浅拷贝交易
func CloneTx(tx *Transaction) *Transaction {
	copytx := &Transaction{}
	copytx.Execer = tx.Execer
	copytx.Payload = tx.Payload
	copytx.Signature = tx.Signature
	copytx.Fee = tx.Fee
	copytx.Expire = tx.Expire
	copytx.Nonce = tx.Nonce
	copytx.To = tx.To
	return copytx
}

// GetParaName 平行链前缀，本链恒为空
func GetParaName() string {
	return ""
}

// IsPara 是否平行链
func IsPara() bool {
	return false
}

// FindExecer 查找交易对应的执行器名称
func FindExecer(key []byte) (execer []byte, err error) {
	if bytes.HasPrefix(key, UserKey) {
		return nil, ErrNotAllowKey
	}
	for _, e := range AllowUserExec {
		if bytes.Equal(e, key) {
			return e, nil
		}
	}
	return nil, ErrNotSupport
}

// GetRealExecName 获取真实的执行器名称
func GetRealExecName(execer []byte) []byte {
	return execer
}

func isLowerOrDigit(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// CheckExecName 校验执行器名称字符集
func CheckExecName(name string) bool {
	if len(name) == 0 || len(name) > 50 {
		return false
	}
	if strings.Contains(name, "-") {
		return false
	}
	return isLowerOrDigit(name)
}
