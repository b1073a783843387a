// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 测试和工具函数
package util

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/33cn/pulsegame/common"
	"github.com/33cn/pulsegame/common/address"
	"github.com/33cn/pulsegame/common/crypto"
	"github.com/33cn/pulsegame/common/db"
	"github.com/33cn/pulsegame/types"
	log "github.com/inconshreveable/log15"

	// 注册系统签名插件
	_ "github.com/33cn/pulsegame/system/crypto/ed25519"
	_ "github.com/33cn/pulsegame/system/crypto/secp256k1"
)

var ulog = log.New("module", "util")

// CreateTestDB 创建测试数据库
func CreateTestDB() (string, db.DB, db.KVDB) {
	dir, err := os.MkdirTemp("", "goleveldb")
	if err != nil {
		panic(err)
	}
	leveldb, err := db.NewGoLevelDB("goleveldb", dir, 128)
	if err != nil {
		panic(err)
	}
	return dir, leveldb, db.NewKVDB(leveldb)
}

// CloseTestDB 关闭测试数据库
func CloseTestDB(dir string, dbm db.DB) {
	err := os.RemoveAll(dir)
	if err != nil {
		ulog.Info("RemoveAll ", "dir", dir, "err", err)
	}
	dbm.Close()
}

// SaveKVList 保存kv列表到数据库，value为nil时删除key
func SaveKVList(kvdb db.DB, kvs []*types.KeyValue) {
	//printKV(kvs)
	batch := kvdb.NewBatch(true)
	for i := 0; i < len(kvs); i++ {
		if kvs[i].Value == nil {
			batch.Delete(kvs[i].Key)
			continue
		}
		batch.Set(kvs[i].Key, kvs[i].Value)
	}
	err := batch.Write()
	if err != nil {
		panic(err)
	}
}

// Genaddress 生成一个地址和私钥
func Genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

// HexToPrivkey hex私钥转换为私钥对象
func HexToPrivkey(key string) crypto.PrivKey {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

// CreateTxWithExecer 构造一笔签名交易
func CreateTxWithExecer(priv crypto.PrivKey, execer string) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(execer),
		Payload: []byte("none"),
		Fee:     types.MinFee,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(execer),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// JSONPrint 打印格式化json
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		fmt.Println(err)
		return
	}
	if t == nil {
		fmt.Println(string(data))
	} else {
		t.Log(string(data))
	}
}
