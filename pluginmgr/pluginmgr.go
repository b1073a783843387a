// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr dapp插件注册管理
package pluginmgr

import (
	"github.com/33cn/pulsegame/types"
	"github.com/spf13/cobra"
)

// PluginBase 插件结构体
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte)
	Cmd      func() *cobra.Command
}

var pluginItems = make(map[string]*PluginBase)
var pluginOrder []string

// Register 注册插件
func Register(p *PluginBase) {
	if p == nil || p.Name == "" {
		panic("plugin not allow name empty")
	}
	if _, exist := pluginItems[p.Name]; exist {
		panic("execute plugin item is existed. (name = " + p.Name + ")")
	}
	pluginItems[p.Name] = p
	pluginOrder = append(pluginOrder, p.Name)
}

// HasExec 是否存在该插件
func HasExec(name string) bool {
	_, ok := pluginItems[name]
	return ok
}

// InitExec 初始化所有插件的执行器
func InitExec(cfg *types.Config) {
	for _, name := range pluginOrder {
		item := pluginItems[name]
		if item.Exec != nil {
			item.Exec(item.ExecName, cfg.GetSubConfig(item.Name))
		}
	}
}

// AddCmd 添加所有插件的命令行命令
func AddCmd(rootCmd *cobra.Command) {
	for _, name := range pluginOrder {
		item := pluginItems[name]
		if item.Cmd != nil {
			rootCmd.AddCommand(item.Cmd())
		}
	}
}
