// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/pulsegame/common/db"
	"github.com/33cn/pulsegame/types"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	exec1 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func genAccDB(t *testing.T) *DB {
	memdb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	acc, err := NewAccountDB("pulsegame", "PGT", memdb)
	require.NoError(t, err)
	return acc
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("bad-name", "PGT", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("pulsegame", "bad-symbol", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)

	acc := genAccDB(t)
	assert.Equal(t, "pulsegame", acc.GetExecer())
	assert.Equal(t, "PGT", acc.GetSymbol())
}

func TestTransfer(t *testing.T) {
	acc := genAccDB(t)
	acc.SaveAccount(&types.Account{Balance: 1000 * 1e8, Addr: addr1})

	_, err := acc.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addr1, addr1, 10*1e8)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr2, addr1, 10*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.Transfer(addr1, addr2, 200*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, int64(800*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(200*1e8), acc.LoadAccount(addr2).Balance)
}

func TestMintBurn(t *testing.T) {
	acc := genAccDB(t)

	receipt, err := acc.Mint(addr1, 500*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogMint), receipt.Logs[0].Ty)
	var rl types.ReceiptAccountMint
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rl))
	assert.Equal(t, int64(0), rl.Prev.Balance)
	assert.Equal(t, int64(500*1e8), rl.Current.Balance)
	assert.Equal(t, int64(500*1e8), acc.LoadAccount(addr1).Balance)

	_, err = acc.Mint(addr1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)

	receipt, err = acc.Burn(addr1, 100*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogBurn), receipt.Logs[0].Ty)
	assert.Equal(t, int64(400*1e8), acc.LoadAccount(addr1).Balance)

	_, err = acc.Burn(addr1, 500*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecFrozenActive(t *testing.T) {
	acc := genAccDB(t)
	acc.SaveExecAccount(exec1, &types.Account{Balance: 100 * 1e8, Addr: addr1})

	_, err := acc.ExecFrozen(addr1, exec1, 200*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.ExecFrozen(addr1, exec1, 60*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)
	acc1 := acc.LoadExecAccount(addr1, exec1)
	assert.Equal(t, int64(40*1e8), acc1.Balance)
	assert.Equal(t, int64(60*1e8), acc1.Frozen)

	_, err = acc.ExecActive(addr1, exec1, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err = acc.ExecActive(addr1, exec1, 60*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecActive), receipt.Logs[0].Ty)
	acc1 = acc.LoadExecAccount(addr1, exec1)
	assert.Equal(t, int64(100*1e8), acc1.Balance)
	assert.Equal(t, int64(0), acc1.Frozen)
}

func TestExecTransferFrozen(t *testing.T) {
	acc := genAccDB(t)
	acc.SaveExecAccount(exec1, &types.Account{Balance: 100 * 1e8, Addr: addr1})
	_, err := acc.ExecFrozen(addr1, exec1, 100*1e8)
	require.NoError(t, err)

	_, err = acc.ExecTransferFrozen(addr1, addr2, exec1, 200*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.ExecTransferFrozen(addr1, addr2, exec1, 30*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, int64(70*1e8), acc.LoadExecAccount(addr1, exec1).Frozen)
	assert.Equal(t, int64(30*1e8), acc.LoadExecAccount(addr2, exec1).Balance)
}

func TestExecBurnFrozen(t *testing.T) {
	acc := genAccDB(t)
	acc.SaveExecAccount(exec1, &types.Account{Balance: 100 * 1e8, Addr: addr1})
	_, err := acc.ExecFrozen(addr1, exec1, 80*1e8)
	require.NoError(t, err)

	_, err = acc.ExecBurnFrozen(addr1, exec1, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.ExecBurnFrozen(addr1, exec1, 50*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogExecBurnFrozen), receipt.Logs[0].Ty)
	var rl types.ReceiptExecAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rl))
	assert.Equal(t, int64(80*1e8), rl.Prev.Frozen)
	assert.Equal(t, int64(30*1e8), rl.Current.Frozen)
	// 燃烧只动冻结部分
	acc1 := acc.LoadExecAccount(addr1, exec1)
	assert.Equal(t, int64(20*1e8), acc1.Balance)
	assert.Equal(t, int64(30*1e8), acc1.Frozen)
}

func TestExecMint(t *testing.T) {
	acc := genAccDB(t)

	receipt, err := acc.ExecMint(addr1, exec1, 70*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogMint), receipt.Logs[0].Ty)
	assert.Equal(t, int64(70*1e8), acc.LoadExecAccount(addr1, exec1).Balance)

	_, err = acc.ExecMint(addr1, exec1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransferToExecAndWithdraw(t *testing.T) {
	acc := genAccDB(t)
	acc.SaveAccount(&types.Account{Balance: 100 * 1e8, Addr: addr1})

	receipt, err := acc.TransferToExec(addr1, exec1, 40*1e8)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 3)
	assert.Equal(t, int64(60*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(40*1e8), acc.LoadAccount(exec1).Balance)
	assert.Equal(t, int64(40*1e8), acc.LoadExecAccount(addr1, exec1).Balance)

	_, err = acc.TransferWithdraw(addr1, exec1, 50*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.TransferWithdraw(addr1, exec1, 40*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(100*1e8), acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(exec1).Balance)
	assert.Equal(t, int64(0), acc.LoadExecAccount(addr1, exec1).Balance)
}
