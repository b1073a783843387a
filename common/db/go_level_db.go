// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path/filepath"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = dlog.New("submodule", "goleveldb")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(levelDBBackendStr, dbCreator, false)
}

const levelDBBackendStr = "leveldb"

// GoLevelDB leveldb数据库
type GoLevelDB struct {
	db *leveldb.DB
}

// NewGoLevelDB new
func NewGoLevelDB(name string, dir string, cache int32) (*GoLevelDB, error) {
	dbPath := filepath.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := cache
	if handles < 16 {
		handles = 16
	}
	if cache < 4 {
		cache = 4
	}
	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: int(handles),
		BlockCacheCapacity:     int(cache) / 2 * opt.MiB,
		WriteBuffer:            int(cache) / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

// Get 获取键值
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		llog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

// Set 设置kv
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value, nil)
	if err != nil {
		llog.Error("Set", "error", err)
		return err
	}
	return nil
}

// SetSync 设置同步
func (db *GoLevelDB) SetSync(key []byte, value []byte) error {
	err := db.db.Put(key, value, &opt.WriteOptions{Sync: true})
	if err != nil {
		llog.Error("SetSync", "error", err)
		return err
	}
	return nil
}

// Delete 删除
func (db *GoLevelDB) Delete(key []byte) error {
	err := db.db.Delete(key, nil)
	if err != nil {
		llog.Error("Delete", "error", err)
		return err
	}
	return nil
}

// DeleteSync 删除同步
func (db *GoLevelDB) DeleteSync(key []byte) error {
	err := db.db.Delete(key, &opt.WriteOptions{Sync: true})
	if err != nil {
		llog.Error("DeleteSync", "error", err)
		return err
	}
	return nil
}

// DB db
func (db *GoLevelDB) DB() *leveldb.DB {
	return db.db
}

// Close 关闭
func (db *GoLevelDB) Close() {
	err := db.db.Close()
	if err != nil {
		llog.Error("Close", "error", err)
	}
}

// Print 打印
func (db *GoLevelDB) Print() {
	str, err := db.db.GetProperty("leveldb.stats")
	if err != nil {
		return
	}
	llog.Info("Print", "stats", str)

	iter := db.db.NewIterator(nil, nil)
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		llog.Info("Print", "key", string(key), "value", fmt.Sprintf("%X", value))
	}
	iter.Release()
}

// Stats 统计
func (db *GoLevelDB) Stats() map[string]string {
	keys := []string{
		"leveldb.num-files-at-level{n}",
		"leveldb.stats",
		"leveldb.sstables",
		"leveldb.blockpool",
		"leveldb.cachedblock",
		"leveldb.openedtables",
		"leveldb.alivesnaps",
		"leveldb.aliveiters",
	}

	stats := make(map[string]string)
	for _, key := range keys {
		str, err := db.db.GetProperty(key)
		if err == nil {
			stats[key] = str
		}
	}
	return stats
}

// Iterator 迭代器
func (db *GoLevelDB) Iterator(prefix []byte, reverse bool) Iterator {
	r := util.BytesPrefix(prefix)
	it := db.db.NewIterator(r, nil)
	dbit := &goLevelDBIt{it: it, reverse: reverse, prefix: prefix}
	dbit.Rewind()
	return dbit
}

type goLevelDBIt struct {
	it      iterator.Iterator
	reverse bool
	prefix  []byte
	valid   bool
}

func (dbit *goLevelDBIt) Rewind() bool {
	if dbit.reverse {
		dbit.valid = dbit.it.Last()
	} else {
		dbit.valid = dbit.it.First()
	}
	return dbit.valid
}

func (dbit *goLevelDBIt) Seek(key []byte) bool {
	ok := dbit.it.Seek(key)
	if dbit.reverse {
		if !ok {
			ok = dbit.it.Last()
		} else if string(dbit.it.Key()) != string(key) {
			ok = dbit.it.Prev()
		}
	}
	dbit.valid = ok
	return dbit.valid
}

func (dbit *goLevelDBIt) Next() bool {
	if dbit.reverse {
		dbit.valid = dbit.it.Prev()
	} else {
		dbit.valid = dbit.it.Next()
	}
	return dbit.valid
}

func (dbit *goLevelDBIt) Valid() bool {
	return dbit.valid && dbit.it.Error() == nil
}

func (dbit *goLevelDBIt) Key() []byte {
	return dbit.it.Key()
}

func (dbit *goLevelDBIt) Value() []byte {
	return dbit.it.Value()
}

func (dbit *goLevelDBIt) ValueCopy() []byte {
	v := dbit.it.Value()
	return CopyBytes(v)
}

func (dbit *goLevelDBIt) Error() error {
	return dbit.it.Error()
}

func (dbit *goLevelDBIt) Close() {
	dbit.it.Release()
}

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
}

// NewBatch new一个batch
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	batch := new(leveldb.Batch)
	wop := &opt.WriteOptions{Sync: sync}
	return &goLevelDBBatch{db, batch, wop}
}

func (mBatch *goLevelDBBatch) Set(key, value []byte) {
	mBatch.batch.Put(key, value)
}

func (mBatch *goLevelDBBatch) Delete(key []byte) {
	mBatch.batch.Delete(key)
}

func (mBatch *goLevelDBBatch) Write() error {
	err := mBatch.db.db.Write(mBatch.batch, mBatch.wop)
	if err != nil {
		llog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goLevelDBBatch) Reset() {
	mBatch.batch.Reset()
}
