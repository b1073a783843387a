// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	tml "github.com/BurntSushi/toml"
)

// Config 根配置结构体
type Config struct {
	Title   string `toml:"title,omitempty"`
	Version string `toml:"version,omitempty"`
	Log     *Log   `toml:"log,omitempty"`
	Exec    *Exec  `toml:"exec,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction,omitempty"`
}

// Exec 执行器配置
type Exec struct {
	MinExecFee int64                  `toml:"minExecFee,omitempty"`
	Sub        map[string]interface{} `toml:"sub,omitempty"`
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetSubConfig 获取执行器的子配置，json编码
func (c *Config) GetSubConfig(name string) []byte {
	if c == nil || c.Exec == nil || c.Exec.Sub == nil {
		return nil
	}
	sub, ok := c.Exec.Sub[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(sub)
	if err != nil {
		tlog.Error("GetSubConfig marshal", "name", name, "err", err)
		return nil
	}
	return data
}

// GetMinExecFee 获取最低交易费
func (c *Config) GetMinExecFee() int64 {
	if c == nil || c.Exec == nil || c.Exec.MinExecFee <= 0 {
		return MinFee
	}
	return c.Exec.MinExecFee
}
