// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器基础框架
package dapp

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/33cn/pulsegame/account"
	"github.com/33cn/pulsegame/common/address"
	dbm "github.com/33cn/pulsegame/common/db"
	"github.com/33cn/pulsegame/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs")

// Driver 执行器接口
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	GetCoinsAccount() *account.DB
	GetName() string
	GetCurrentExecName() string
	GetDriverName() string
	GetExecutorType() types.ExecutorType
	GetFuncMap() map[string]reflect.Method
	GetHeight() int64
	GetBlockTime() int64
	GetDifficulty() uint64
	SetEnv(height, blocktime int64, difficulty uint64)
	SetName(string)
	SetCurrentExecName(string)
	SetChild(Driver)
	SetExecutorType(types.ExecutorType)
	Allow(tx *types.Transaction, index int) error
	IsFree() bool
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 执行器基础类
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	difficulty   uint64
	name         string
	curname      string
	child        Driver
	childValue   reflect.Value
	isFree       bool
	ety          types.ExecutorType
	fl           map[string]reflect.Method
}

// SetEnv 设置执行环境
func (d *DriverBase) SetEnv(height, blocktime int64, difficulty uint64) {
	d.height = height
	d.blocktime = blocktime
	d.difficulty = difficulty
}

// SetIsFree 设置是否免交易费
func (d *DriverBase) SetIsFree(isFree bool) {
	d.isFree = isFree
}

// IsFree 是否需要交易费
func (d *DriverBase) IsFree() bool {
	return d.isFree
}

// SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType 获取执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// GetPayloadValue 获取交易负载结构体
func (d *DriverBase) GetPayloadValue() types.Message {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetPayload()
}

// GetFuncMap 获取当前执行器的方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.fl
}

// SetChild 设置子执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.fl = types.ListMethodByType(reflect.TypeOf(e))
}

// GetChild 获取子执行器
func (d *DriverBase) GetChild() Driver {
	return d.child
}

// Allow 默认只允许本执行器名的交易
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if d.child == nil {
		return types.ErrActionNotSupport
	}
	if bytes.Equal(tx.Execer, []byte(d.child.GetDriverName())) {
		return nil
	}
	return types.ErrActionNotSupport
}

// CheckTx 基础检查：to地址必须是执行器地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// Exec 通过反射分发交易到 Exec_XXX
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("execute panic", "execer", string(tx.Execer), "err", r)
			receipt = nil
			err = types.ErrExecPanic
		}
	}()
	ety := d.GetExecutorType()
	if ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := ety.GetExecFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodNotFound
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

// ExecLocal 交易执行成功后更新本地数据库
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.callLocal("ExecLocal_", tx, receipt, index)
}

// ExecDelLocal 区块回退时删除本地数据库中的数据
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.callLocal("ExecDelLocal_", tx, receipt, index)
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call local execute panic", "prefix", prefix, "err", r)
			set = nil
			err = types.ErrExecPanic
		}
	}()
	ety := d.GetExecutorType()
	if ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := ety.GetExecFuncMap()
	funcname := prefix + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodNotFound
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.LocalDBSet); ok {
			set = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return set, err
}

// Query 查询分发到 Query_XXX
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			blog.Error("query panic", "funcname", funcname, "err", r)
			msg = nil
			err = types.ErrActionNotSupport
		}
	}()
	funcmap := d.GetFuncMap()
	funcname = "Query_" + funcname
	if _, ok := funcmap[funcname]; !ok {
		blog.Error(funcname + " not support")
		return nil, types.ErrQueryNotSupport
	}
	ty := funcmap[funcname].Type
	if ty.NumIn() != 2 {
		blog.Error(funcname + " err num in param")
		return nil, types.ErrQueryNotSupport
	}
	paramIn := ty.In(1)
	if paramIn.Kind() != reflect.Ptr {
		blog.Error(funcname + " err param in kind")
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(ty.In(1).Elem())
	queryin := p.Interface()
	if in, ok := queryin.(types.Message); ok {
		err = types.Decode(params, in)
		if err != nil {
			return nil, err
		}
		return types.CallQueryFunc(d.childValue, funcmap[funcname], in)
	}
	blog.Error(funcname + " in param is not proto.Message")
	return nil, types.ErrQueryNotSupport
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		//log.Error("new CoinsAccount")
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetStateDB 获取状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// GetCoinsAccount 获取coins账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB 获取本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 获取区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 获取区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetDifficulty 获取难度值
func (d *DriverBase) GetDifficulty() uint64 {
	return d.difficulty
}

// GetName 获取执行器名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// GetCurrentExecName 获取当前执行器名
func (d *DriverBase) GetCurrentExecName() string {
	if d.curname == "" {
		return d.child.GetDriverName()
	}
	return d.curname
}

// SetName 设置执行器名
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// SetCurrentExecName 设置当前执行器名
func (d *DriverBase) SetCurrentExecName(name string) {
	d.curname = name
}

// GetDriverName 获取driver名
func (d *DriverBase) GetDriverName() string {
	return "driver"
}

// GetExecutorAddress 获取本执行器的地址
func (d *DriverBase) GetExecutorAddress() string {
	return ExecAddress(d.child.GetDriverName())
}

// CheckSignatureData 检测签名数据
func (d *DriverBase) CheckSignatureData(tx *types.Transaction, index int) bool {
	return true
}

// GetAddr 获取交易发送方地址
func GetAddr(tx *types.Transaction) string {
	if tx == nil {
		return ""
	}
	return tx.From()
}

// ExecAddress 获取执行器的地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// HeightIndexStr 高度和索引组成的字符串
func HeightIndexStr(height, index int64) string {
	v := height*types.MaxTxsPerBlock + index
	return fmt.Sprintf("%018d", v)
}
