// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nilValue = reflect.ValueOf(nil)

type execTypeGet interface {
	GetTy() int32
}

// ListMethod 列出接口的所有方法
func ListMethod(action interface{}) map[string]reflect.Method {
	return ListMethodByType(reflect.TypeOf(action))
}

// ListMethodByType 通过类型列出所有方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		methods[method.Name] = method
	}
	return methods
}

// IsOK 判断所有的返回值都可以被调用
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !list[i].CanInterface() {
			return false
		}
	}
	return true
}

func lowcaseFirst(v string) string {
	if len(v) == 0 {
		return ""
	}
	r, n := utf8.DecodeRuneInString(v)
	return string(unicode.ToLower(r)) + v[n:]
}

// GetActionValue 解析action结构体，返回oneof带的名字，类型和数据
func GetActionValue(action interface{}, funclist map[string]reflect.Method) (vname string, vty int32, v reflect.Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			vname = ""
			vty = 0
			v = nilValue
			err = ErrDecode
		}
	}()
	var ty int32
	if a, ok := action.(execTypeGet); ok {
		ty = a.GetTy()
	}
	value := reflect.ValueOf(action)
	if _, ok := funclist["GetValue"]; !ok {
		return "", 0, nilValue, ErrDecode
	}
	rets := funclist["GetValue"].Func.Call([]reflect.Value{value})
	if !IsOK(rets, 1) {
		return "", 0, nilValue, ErrDecode
	}
	if rets[0].IsNil() {
		return "", 0, nilValue, ErrActionNotSupport
	}
	pbname := reflect.Indirect(rets[0].Elem()).Type().String()
	index := strings.LastIndex(pbname, "_")
	if index == -1 || index == (len(pbname)-1) {
		return "", 0, nilValue, ErrDecode
	}
	vname = pbname[index+1:]
	funcname := "Get" + vname
	if _, ok := funclist[funcname]; !ok {
		return "", 0, nilValue, ErrDecode
	}
	val := funclist[funcname].Func.Call([]reflect.Value{value})
	if !IsOK(val, 1) {
		return "", 0, nilValue, ErrDecode
	}
	if val[0].Kind() == reflect.Ptr && val[0].IsNil() {
		return "", 0, nilValue, ErrDecode
	}
	return vname, ty, val[0], nil
}

// CallQueryFunc 获取查询接口数据
func CallQueryFunc(this reflect.Value, f reflect.Method, in Message) (reply Message, err error) {
	valueret := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if len(valueret) != 2 {
		return nil, ErrMethodNotFound
	}
	if !valueret[0].CanInterface() {
		return nil, ErrMethodNotFound
	}
	if !valueret[1].CanInterface() {
		return nil, ErrMethodNotFound
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(Message); ok {
			reply = r
		} else {
			return nil, ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, ErrMethodReturnType
		}
	}
	if reply == nil && err == nil {
		return nil, ErrActionNotSupport
	}
	return reply, err
}

// LowcaseFirst 首字母转小写
func LowcaseFirst(v string) string {
	return lowcaseFirst(v)
}
