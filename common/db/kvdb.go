// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

// NewKVDB 基于DB生成一个带List能力的KVDB
func NewKVDB(db DB) KVDB {
	return &kvdbUtil{db: db}
}

type kvdbUtil struct {
	db DB
}

// Get 获取键值
func (kvd *kvdbUtil) Get(key []byte) (value []byte, err error) {
	return kvd.db.Get(key)
}

// Set 设置键值
func (kvd *kvdbUtil) Set(key []byte, value []byte) (err error) {
	if value == nil {
		return kvd.db.Delete(key)
	}
	return kvd.db.Set(key, value)
}

// List 列出该前缀下的value列表
// key非空时为分页游标，游标本身不包含在结果中
// count为0时返回全部，direction为1时升序，否则降序
func (kvd *kvdbUtil) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	reverse := direction != ListASC
	it := kvd.db.Iterator(prefix, reverse)
	defer it.Close()
	if len(key) > 0 {
		if it.Seek(key) && string(it.Key()) == string(key) {
			it.Next()
		}
	}
	var values [][]byte
	for ; it.Valid(); it.Next() {
		values = append(values, it.ValueCopy())
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

// PrefixCount 统计该前缀下的键个数
func (kvd *kvdbUtil) PrefixCount(prefix []byte) (count int64) {
	it := kvd.db.Iterator(prefix, false)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		count++
	}
	return count
}
