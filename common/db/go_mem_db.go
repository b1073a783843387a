// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
)

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(memDBBackendStr, dbCreator, false)
}

const memDBBackendStr = "memdb"

// GoMemDB 内存数据库模型
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB 创建内存数据库
func NewGoMemDB(name string, dir string, cache int32) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// CopyBytes 复制字节
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return
}

// Get 获取键值
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set 设置kv
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db[string(key)] = CopyBytes(value)
	return nil
}

// SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除键值
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

// DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoMemDB) Close() {
}

// Print 打印
func (db *GoMemDB) Print() {
	db.lock.RLock()
	defer db.lock.RUnlock()
	for key, value := range db.db {
		dlog.Info("Print", "key", key, "value", fmt.Sprintf("%X", value))
	}
}

// Stats 统计
func (db *GoMemDB) Stats() map[string]string {
	stats := make(map[string]string)
	db.lock.RLock()
	stats["database.size"] = fmt.Sprintf("%d", len(db.db))
	db.lock.RUnlock()
	return stats
}

// Iterator 迭代器
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()
	var keys []string
	for k := range db.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = CopyBytes(db.db[k])
	}
	it := &goMemDBIt{
		keys:    keys,
		values:  values,
		index:   -1,
		reverse: reverse,
		prefix:  prefix,
	}
	it.Rewind()
	return it
}

type goMemDBIt struct {
	keys    []string
	values  [][]byte
	index   int
	reverse bool
	prefix  []byte
}

// Rewind 重置迭代器
func (dbit *goMemDBIt) Rewind() bool {
	if dbit.reverse {
		dbit.index = len(dbit.keys) - 1
	} else {
		dbit.index = 0
	}
	return dbit.Valid()
}

// Seek 定位到key的位置（正向模式定位到>=key，反向模式定位到<=key）
func (dbit *goMemDBIt) Seek(key []byte) bool {
	n := sort.SearchStrings(dbit.keys, string(key))
	if dbit.reverse {
		if n >= len(dbit.keys) || dbit.keys[n] != string(key) {
			n--
		}
	}
	dbit.index = n
	return dbit.Valid()
}

// Next 下一个元素
func (dbit *goMemDBIt) Next() bool {
	if dbit.reverse {
		dbit.index--
	} else {
		dbit.index++
	}
	return dbit.Valid()
}

// Valid 当前位置是否有效
func (dbit *goMemDBIt) Valid() bool {
	return dbit.index >= 0 && dbit.index < len(dbit.keys)
}

// Key 当前key
func (dbit *goMemDBIt) Key() []byte {
	if !dbit.Valid() {
		return nil
	}
	return []byte(dbit.keys[dbit.index])
}

// Value 当前value
func (dbit *goMemDBIt) Value() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.values[dbit.index]
}

// ValueCopy 当前value的拷贝
func (dbit *goMemDBIt) ValueCopy() []byte {
	return CopyBytes(dbit.Value())
}

// Error 迭代错误
func (dbit *goMemDBIt) Error() error {
	return nil
}

// Close 关闭迭代器
func (dbit *goMemDBIt) Close() {
	dbit.keys = nil
	dbit.values = nil
}

// NewBatch new一个batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

type kv struct {
	k, v []byte
	del  bool
}

// Set batch set
func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{CopyBytes(key), CopyBytes(value), false})
	b.size += len(value)
}

// Delete batch delete
func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CopyBytes(key), nil, true})
	b.size++
}

// Write batch write
func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, w := range b.writes {
		if w.del {
			delete(b.db.db, string(w.k))
			continue
		}
		b.db.db[string(w.k)] = w.v
	}
	return nil
}

// Reset 重置batch
func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
