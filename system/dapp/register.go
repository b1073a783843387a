// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/pulsegame/types"
)

// DriverCreate 创建执行器的函数
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register 注册执行器
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverWithHeight{
		create: create,
		height: height,
	}
	//注册的执行器，跳过字符检查
	if !types.CheckExecName(name) {
		blog.Info("register driver name not standard", "name", name)
	}
	types.AllowUserExecName([]byte(name))
}

// LoadDriver 根据高度加载执行器
func LoadDriver(name string, height int64) (driver Driver, err error) {
	//先查找非fork的执行器，它的是高度是 -1
	c, ok := registedExecDriver[name]
	if !ok {
		return nil, types.ErrUnknowDriver
	}
	if height == -1 || height >= c.height {
		return c.create(), nil
	}
	return nil, types.ErrUnknowDriver
}

// LoadDriverAllow 加载执行器并检查交易是否允许执行
func LoadDriverAllow(tx *types.Transaction, index int, height int64) (driver Driver) {
	exec, err := LoadDriver(string(tx.Execer), height)
	if err != nil {
		return nil
	}
	exec.SetEnv(height, 0, 0)
	err = exec.Allow(tx, index)
	if err != nil {
		return nil
	}
	return exec
}

// IsDriverRegisted 执行器是否注册过
func IsDriverRegisted(name string) bool {
	_, ok := registedExecDriver[name]
	return ok
}
