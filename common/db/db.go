// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库操作底层接口定义以及实现包括：leveldb、内存数据库
package db

import (
	"errors"
	"fmt"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

// 数据库查询的方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

// ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV kv底层接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
}

// Lister 列表接口
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

// KVDB kvdb接口
type KVDB interface {
	KV
	Lister
}

// DB 数据库接口
type DB interface {
	KV
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Iterator(prefix []byte, reverse bool) Iterator
	Print()
	Stats() map[string]string
}

// Batch batch接口
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	Reset()
}

// Iterator 迭代器接口
type Iterator interface {
	Next() bool
	Rewind() bool
	Seek(key []byte) bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB new 一个数据库
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
