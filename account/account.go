// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account 实现账户余额的修改与查询
package account

import (
	"strings"

	dbm "github.com/33cn/pulsegame/common/db"
	"github.com/33cn/pulsegame/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB 某个执行器下某种资产的账本
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount 新建账户
func NewCoinsAccount() *DB {
	prefix := "mavl-coins-" + types.CoinSymbol + "-"
	return newAccountDB(prefix)
}

// NewAccountDB 新建DB账户
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	accDB := newAccountDB(symbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func symbolPrefix(execer string, symbol string) string {
	return "mavl-" + execer + "-" + symbol + "-"
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	acc.execAccountKeyPerfix = append([]byte(prefix), []byte("exec-")...)
	return acc
}

// SetDB 设置数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// GetExecer 获取执行器名
func (acc *DB) GetExecer() string {
	return acc.execer
}

// GetSymbol 获取资产符号
func (acc *DB) GetSymbol() string {
	return acc.symbol
}

func checkAmount(amount int64) error {
	if amount < 0 || amount > types.MaxCoin {
		return types.ErrAmount
	}
	return nil
}

// LoadAccount 读取账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err)
	}
	return &acc1
}

// SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户数据转成kv对
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// CheckTransfer 检查交易
func (acc *DB) CheckTransfer(from string, to string, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 转账
func (acc *DB) Transfer(from string, to string, amount int64) (*types.Receipt, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return nil, types.ErrSendSameToRecv
	}
	if accFrom.GetBalance()-amount >= 0 {
		copyfrom := *accFrom
		copyto := *accTo

		accFrom.Balance = accFrom.GetBalance() - amount
		accTo.Balance = accTo.GetBalance() + amount

		receiptBalanceFrom := &types.ReceiptAccountTransfer{
			Prev:    &copyfrom,
			Current: accFrom,
		}
		receiptBalanceTo := &types.ReceiptAccountTransfer{
			Prev:    &copyto,
			Current: accTo,
		}
		acc.SaveAccount(accFrom)
		acc.SaveAccount(accTo)
		return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
	}
	return nil, types.ErrNoBalance
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// Mint 铸币
func (acc *DB) Mint(addr string, amount int64) (*types.Receipt, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	accTo := acc.LoadAccount(addr)
	balance := accTo.GetBalance() + amount
	if balance > types.MaxCoin {
		return nil, types.ErrAmount
	}
	copyAcc := *accTo
	accTo.Balance = balance

	receipt := &types.ReceiptAccountMint{
		Prev:    &copyAcc,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	return acc.mintReceipt(accTo, receipt), nil
}

func (acc *DB) mintReceipt(accTo *types.Account, receipt *types.ReceiptAccountMint) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  int32(types.TyLogMint),
		Log: types.Encode(receipt),
	}
	kv := acc.GetKVSet(accTo)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1},
	}
}

// Burn 销毁
func (acc *DB) Burn(addr string, amount int64) (*types.Receipt, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	accTo := acc.LoadAccount(addr)
	if accTo.GetBalance() < amount {
		return nil, types.ErrNoBalance
	}
	copyAcc := *accTo
	accTo.Balance = accTo.GetBalance() - amount

	receipt := &types.ReceiptAccountBurn{
		Prev:    &copyAcc,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	log1 := &types.ReceiptLog{
		Ty:  int32(types.TyLogBurn),
		Log: types.Encode(receipt),
	}
	kv := acc.GetKVSet(accTo)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1},
	}, nil
}
