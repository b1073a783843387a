// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志初始化设置
package log

import (
	"os"

	"github.com/33cn/pulsegame/types"
	log "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

var fileLog = &lumberjack.Logger{}

// SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	handler := log.LvlFilterHandler(
		getLevel(logLevel),
		log.StreamHandler(os.Stdout, log.TerminalFormat()),
	)
	log.Root().SetHandler(handler)
}

// SetFileLog 设置文件日志和控制台日志信息
func SetFileLog(logCfg *types.Log) {
	if logCfg == nil {
		logCfg = &types.Log{LogFile: "logs/pulsegame.log"}
	}
	if logCfg.LogFile == "" {
		SetLogLevel(logCfg.Loglevel)
		return
	}
	initFileLog(logCfg)
}

func initFileLog(logCfg *types.Log) {
	fileLog.Filename = logCfg.LogFile
	fileLog.MaxSize = int(logCfg.MaxFileSize)
	fileLog.MaxBackups = int(logCfg.MaxBackups)
	fileLog.MaxAge = int(logCfg.MaxAge)
	fileLog.LocalTime = logCfg.LocalTime
	fileLog.Compress = logCfg.Compress

	fileHandler := log.LvlFilterHandler(
		getLevel(logCfg.Loglevel),
		log.StreamHandler(fileLog, log.LogfmtFormat()),
	)
	consoleHandler := log.LvlFilterHandler(
		getLevel(logCfg.LogConsoleLevel),
		log.StreamHandler(os.Stdout, log.TerminalFormat()),
	)
	var handler log.Handler = log.MultiHandler(fileHandler, consoleHandler)
	if logCfg.CallerFile {
		handler = log.CallerFileHandler(handler)
	}
	if logCfg.CallerFunction {
		handler = log.CallerFuncHandler(handler)
	}
	log.Root().SetHandler(handler)
}

func getLevel(lvlString string) log.Lvl {
	lvl, err := log.LvlFromString(lvlString)
	if err != nil {
		// 日志级别配置不正确时默认为info级别
		return log.LvlInfo
	}
	return lvl
}
