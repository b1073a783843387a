// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 本文件的结构体定义与 proto/chain.proto 保持一致

package types

import (
	fmt "fmt"
)

// Signature 交易签名
type Signature struct {
	Ty        int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return fmt.Sprintf("%+v", *m) }
func (*Signature) ProtoMessage()    {}

// GetTy 获取签名类型
func (m *Signature) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetPubkey 获取公钥
func (m *Signature) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

// GetSignature 获取签名数据
func (m *Signature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// Transaction 交易
type Transaction struct {
	Execer    []byte     `protobuf:"bytes,1,opt,name=execer,proto3" json:"execer,omitempty"`
	Payload   []byte     `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Signature *Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	Fee       int64      `protobuf:"varint,4,opt,name=fee,proto3" json:"fee,omitempty"`
	Expire    int64      `protobuf:"varint,5,opt,name=expire,proto3" json:"expire,omitempty"`
	Nonce     int64      `protobuf:"varint,6,opt,name=nonce,proto3" json:"nonce,omitempty"`
	To        string     `protobuf:"bytes,7,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return fmt.Sprintf("%+v", *m) }
func (*Transaction) ProtoMessage()    {}

// GetExecer 获取执行器名
func (m *Transaction) GetExecer() []byte {
	if m != nil {
		return m.Execer
	}
	return nil
}

// GetPayload 获取交易负载
func (m *Transaction) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

// GetSignature 获取签名
func (m *Transaction) GetSignature() *Signature {
	if m != nil {
		return m.Signature
	}
	return nil
}

// GetFee 获取手续费
func (m *Transaction) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

// GetExpire 获取过期时间
func (m *Transaction) GetExpire() int64 {
	if m != nil {
		return m.Expire
	}
	return 0
}

// GetNonce 获取随机值
func (m *Transaction) GetNonce() int64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// GetTo 获取接收方地址
func (m *Transaction) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

// KeyValue 数据库的kv对
type KeyValue struct {
	Key   []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return fmt.Sprintf("%+v", *m) }
func (*KeyValue) ProtoMessage()    {}

// GetKey 获取键
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// GetValue 获取值
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// ReceiptLog 执行日志
type ReceiptLog struct {
	Ty  int32  `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Log []byte `protobuf:"bytes,2,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *ReceiptLog) Reset()         { *m = ReceiptLog{} }
func (m *ReceiptLog) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptLog) ProtoMessage()    {}

// GetTy 获取日志类型
func (m *ReceiptLog) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetLog 获取日志内容
func (m *ReceiptLog) GetLog() []byte {
	if m != nil {
		return m.Log
	}
	return nil
}

// Receipt 执行交易并修改数据库的结果
type Receipt struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	KV   []*KeyValue   `protobuf:"bytes,2,rep,name=kv,proto3" json:"kv,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,3,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return fmt.Sprintf("%+v", *m) }
func (*Receipt) ProtoMessage()    {}

// GetTy 获取收据类型
func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetKV 获取kv对列表
func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// GetLogs 获取日志列表
func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// ReceiptData 收据数据
type ReceiptData struct {
	Ty   int32         `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Logs []*ReceiptLog `protobuf:"bytes,2,rep,name=logs,proto3" json:"logs,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptData) ProtoMessage()    {}

// GetTy 获取收据类型
func (m *ReceiptData) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetLogs 获取日志列表
func (m *ReceiptData) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// LocalDBSet 本地数据库kv列表
type LocalDBSet struct {
	KV []*KeyValue `protobuf:"bytes,1,rep,name=kv,proto3" json:"kv,omitempty"`
}

func (m *LocalDBSet) Reset()         { *m = LocalDBSet{} }
func (m *LocalDBSet) String() string { return fmt.Sprintf("%+v", *m) }
func (*LocalDBSet) ProtoMessage()    {}

// GetKV 获取kv对列表
func (m *LocalDBSet) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// Account 账户结构
type Account struct {
	Currency int32  `protobuf:"varint,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Balance  int64  `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Frozen   int64  `protobuf:"varint,3,opt,name=frozen,proto3" json:"frozen,omitempty"`
	Addr     string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return fmt.Sprintf("%+v", *m) }
func (*Account) ProtoMessage()    {}

// GetCurrency 获取币种
func (m *Account) GetCurrency() int32 {
	if m != nil {
		return m.Currency
	}
	return 0
}

// GetBalance 获取可用余额
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetFrozen 获取冻结余额
func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

// GetAddr 获取账户地址
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReceiptAccountTransfer 转账收据
type ReceiptAccountTransfer struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountTransfer) Reset()         { *m = ReceiptAccountTransfer{} }
func (m *ReceiptAccountTransfer) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptAccountTransfer) ProtoMessage()    {}

// GetPrev 获取转账前账户
func (m *ReceiptAccountTransfer) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取转账后账户
func (m *ReceiptAccountTransfer) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptExecAccountTransfer 执行器内账户变更收据
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `protobuf:"bytes,1,opt,name=execAddr,proto3" json:"execAddr,omitempty"`
	Prev     *Account `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current  *Account `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptExecAccountTransfer) Reset()         { *m = ReceiptExecAccountTransfer{} }
func (m *ReceiptExecAccountTransfer) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptExecAccountTransfer) ProtoMessage()    {}

// GetExecAddr 获取执行器地址
func (m *ReceiptExecAccountTransfer) GetExecAddr() string {
	if m != nil {
		return m.ExecAddr
	}
	return ""
}

// GetPrev 获取变更前账户
func (m *ReceiptExecAccountTransfer) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取变更后账户
func (m *ReceiptExecAccountTransfer) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptAccountMint 铸币收据
type ReceiptAccountMint struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountMint) Reset()         { *m = ReceiptAccountMint{} }
func (m *ReceiptAccountMint) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptAccountMint) ProtoMessage()    {}

// GetPrev 获取铸币前账户
func (m *ReceiptAccountMint) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取铸币后账户
func (m *ReceiptAccountMint) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptAccountBurn 销毁收据
type ReceiptAccountBurn struct {
	Prev    *Account `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *Account `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptAccountBurn) Reset()         { *m = ReceiptAccountBurn{} }
func (m *ReceiptAccountBurn) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptAccountBurn) ProtoMessage()    {}

// GetPrev 获取销毁前账户
func (m *ReceiptAccountBurn) GetPrev() *Account {
	if m != nil {
		return m.Prev
	}
	return nil
}

// GetCurrent 获取销毁后账户
func (m *ReceiptAccountBurn) GetCurrent() *Account {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReqNil 空请求
type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqNil) ProtoMessage()    {}

// ReqKey 按键查询请求
type ReqKey struct {
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *ReqKey) Reset()         { *m = ReqKey{} }
func (m *ReqKey) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqKey) ProtoMessage()    {}

// GetKey 获取键
func (m *ReqKey) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// Reply 通用应答
type Reply struct {
	IsOk bool   `protobuf:"varint,1,opt,name=isOk,proto3" json:"isOk,omitempty"`
	Msg  []byte `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *Reply) Reset()         { *m = Reply{} }
func (m *Reply) String() string { return fmt.Sprintf("%+v", *m) }
func (*Reply) ProtoMessage()    {}

// GetIsOk 是否成功
func (m *Reply) GetIsOk() bool {
	if m != nil {
		return m.IsOk
	}
	return false
}

// GetMsg 获取应答内容
func (m *Reply) GetMsg() []byte {
	if m != nil {
		return m.Msg
	}
	return nil
}

// Int64 整数应答
type Int64 struct {
	Data int64 `protobuf:"varint,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Int64) Reset()         { *m = Int64{} }
func (m *Int64) String() string { return fmt.Sprintf("%+v", *m) }
func (*Int64) ProtoMessage()    {}

// GetData 获取数据
func (m *Int64) GetData() int64 {
	if m != nil {
		return m.Data
	}
	return 0
}
