// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc相关的一些结构体定义
package types

// Query4Cli queryCli接口
type Query4Cli struct {
	Execer   string      `json:"execer"`
	FuncName string      `json:"funcName"`
	Payload  interface{} `json:"payload"`
}

// RawParm rawparm
type RawParm struct {
	Token string `json:"token"`
	Data  string `json:"data"`
}

// QueryParm 按哈希查询的参数
type QueryParm struct {
	Hash string `json:"hash"`
}

// ReplyHash reply hash
type ReplyHash struct {
	Hash string `json:"hash"`
}
