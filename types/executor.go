// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
)

// LogInfo 日志类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// ExecutorType 执行器类型接口
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	GetExecFuncMap() map[string]reflect.Method
	InitFuncList(list map[string]reflect.Method)
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	Amount(tx *Transaction) (int64, error)
	CreateTx(action string, message json.RawMessage) (*Transaction, error)
	SetChild(c ExecutorType)
}

var executorMap = map[string]ExecutorType{}

// RegistorExecutor 注册执行器
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

// LoadExecutorType 加载执行器
func LoadExecutorType(execer string) ExecutorType {
	//尽可能的加载执行器
	realname := string(GetRealExecName([]byte(execer)))
	if exec, exist := executorMap[realname]; exist {
		return exec
	}
	return nil
}

// GetLogName 获取日志名字
func GetLogName(execer []byte, ty int64) string {
	t := LoadExecutorType(string(execer))
	if t != nil {
		if logInfo, ok := t.GetLogMap()[ty]; ok {
			return logInfo.Name
		}
	}
	return "unknownLog"
}

// DecodeLog 根据日志类型解码日志数据
func DecodeLog(execer []byte, ty int64, data []byte) (Message, error) {
	t := LoadExecutorType(string(execer))
	if t == nil {
		return nil, ErrUnknowDriver
	}
	logInfo, ok := t.GetLogMap()[ty]
	if !ok {
		return nil, ErrNotFound
	}
	msg, ok := reflect.New(logInfo.Ty).Interface().(Message)
	if !ok {
		return nil, ErrDecode
	}
	err := Decode(data, msg)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ExecTypeBase 执行器类型基类
type ExecTypeBase struct {
	child         ExecutorType
	childValue    reflect.Value
	actionFunList map[string]reflect.Method
	execFuncList  map[string]reflect.Method
}

// SetChild 设置子执行器类型，并解析payload的oneof方法列表
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.childValue = reflect.ValueOf(child)
	action := child.GetPayload()
	if action == nil {
		return
	}
	base.actionFunList = ListMethod(action)
	if _, ok := base.actionFunList["GetValue"]; !ok {
		panic("payload must be oneof value")
	}
}

// GetName 执行器名称，由子类实现
func (base *ExecTypeBase) GetName() string {
	return "typedriverbase"
}

// GetExecFuncMap 获取执行器的函数列表
func (base *ExecTypeBase) GetExecFuncMap() map[string]reflect.Method {
	return base.execFuncList
}

// InitFuncList 初始化执行器的函数列表
func (base *ExecTypeBase) InitFuncList(list map[string]reflect.Method) {
	base.execFuncList = list
}

// DecodePayload 解码交易负载
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	if base.child == nil {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	err := Decode(tx.GetPayload(), payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// DecodePayloadValue 解码交易负载并返回action名称和参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	name, value, err := base.decodePayloadValue(tx)
	return name, value, err
}

func (base *ExecTypeBase) decodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	action, err := base.DecodePayload(tx)
	if err != nil {
		tlog.Error("DecodePayload", "err", err, "execer", string(tx.Execer))
		return "", nilValue, err
	}
	name, ty, val, err := GetActionValue(action, base.actionFunList)
	if err != nil {
		return "", nilValue, err
	}
	typemap := base.child.GetTypeMap()
	//check types is ok
	if v, ok := typemap[name]; !ok || v != ty {
		tlog.Error("GetTypeMap is not ok")
		return "", nilValue, ErrActionNotSupport
	}
	return name, val, nil
}

// ActionName 获取交易的action名称
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown-err"
	}
	tm := base.child.GetTypeMap()
	if get, ok := payload.(execTypeGet); ok {
		ty := get.GetTy()
		for k, v := range tm {
			if v == ty {
				return lowcaseFirst(k)
			}
		}
	}
	return "unknown"
}

// Amount 获取交易的金额
func (base *ExecTypeBase) Amount(tx *Transaction) (int64, error) {
	return 0, nil
}

// CreateTx 通过json参数构造交易，由子类实现具体的action
func (base *ExecTypeBase) CreateTx(action string, message json.RawMessage) (*Transaction, error) {
	return nil, ErrActionNotSupport
}
