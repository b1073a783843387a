package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/33cn/pulsegame/common/db"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func listRoundStatus(t *testing.T, env *execEnv, status int32) []*pgt.RoundRecord {
	values, err := env.kvdb.List(calcRoundStatusPrefix(status), nil, 0, dbm.ListASC)
	if err == dbm.ErrNotFoundInDb {
		return nil
	}
	require.NoError(t, err)
	records := make([]*pgt.RoundRecord, 0, len(values))
	for _, value := range values {
		var record pgt.RoundRecord
		require.NoError(t, types.Decode(value, &record))
		records = append(records, &record)
	}
	return records
}

func listTicketRecords(t *testing.T, env *execEnv, prefix []byte) []*pgt.TicketRecord {
	values, err := env.kvdb.List(prefix, nil, 0, dbm.ListASC)
	if err == dbm.ErrNotFoundInDb {
		return nil
	}
	require.NoError(t, err)
	records := make([]*pgt.TicketRecord, 0, len(values))
	for _, value := range values {
		var record pgt.TicketRecord
		require.NoError(t, types.Decode(value, &record))
		records = append(records, &record)
	}
	return records
}

func TestLocalRoundStatusIndex(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)

	tx, receipt := env.mustExec(env.authPriv, roundCreateAction(&pgt.RoundCreate{
		RoundId:          7,
		CommitDeadline:   100,
		RevealDeadline:   200,
		PulseIndexTarget: 777,
	}))
	env.applyLocal(tx, receipt)
	records := listRoundStatus(t, env, pgt.RoundStatusAnnounced)
	require.Len(t, records, 1)
	assert.Equal(t, uint64(7), records[0].RoundId)
	assert.Equal(t, int64(10)*types.MaxTxsPerBlock, records[0].Index)
	assert.Nil(t, listRoundStatus(t, env, pgt.RoundStatusPulseSet))

	// 脉冲落地后状态索引从announced迁到pulseSet
	env.setHeight(120)
	tx, receipt = env.mustExec(env.authPriv, mockPulseAction(7, make([]byte, pgt.PulseBytes)))
	env.applyLocal(tx, receipt)
	assert.Nil(t, listRoundStatus(t, env, pgt.RoundStatusAnnounced))
	records = listRoundStatus(t, env, pgt.RoundStatusPulseSet)
	require.Len(t, records, 1)
	assert.Equal(t, int64(120)*types.MaxTxsPerBlock, records[0].Index)

	// 空轮结算自动终结，索引随之迁到终态
	env.setHeight(250)
	settleTx, settleReceipt, err := env.execTx(env.authPriv, settleAction(7, nil))
	require.NoError(t, err)
	env.applyLocal(settleTx, settleReceipt)
	assert.Nil(t, listRoundStatus(t, env, pgt.RoundStatusPulseSet))
	records = listRoundStatus(t, env, pgt.RoundStatusFinalized)
	require.Len(t, records, 1)
	assert.Equal(t, int64(250)*types.MaxTxsPerBlock, records[0].Index)

	env.setHeight(1101)
	tx, receipt = env.mustExec(env.authPriv, sweepAction(7, nil))
	env.applyLocal(tx, receipt)
	closeTx, closeReceipt := env.mustExec(env.authPriv, closeRoundAction(7))
	env.applyLocal(closeTx, closeReceipt)
	assert.Nil(t, listRoundStatus(t, env, pgt.RoundStatusFinalized))

	// 回滚关闭交易，终态索引恢复
	env.rollbackLocal(closeTx, closeReceipt)
	records = listRoundStatus(t, env, pgt.RoundStatusFinalized)
	require.Len(t, records, 1)
	assert.Equal(t, uint64(7), records[0].RoundId)

	// 再回滚结算交易，索引退回pulseSet
	env.rollbackLocal(settleTx, settleReceipt)
	assert.Nil(t, listRoundStatus(t, env, pgt.RoundStatusFinalized))
	records = listRoundStatus(t, env, pgt.RoundStatusPulseSet)
	require.Len(t, records, 1)
	assert.Equal(t, int64(120)*types.MaxTxsPerBlock, records[0].Index)
}

func TestLocalTicketIndex(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	salt := testSalt(0x31)

	env.setHeight(50)
	commitTx, commitReceipt := env.mustExec(env.playerPriv, commitBatchAction(1, []*pgt.CommitEntry{
		{Nonce: 1, Commitment: makeCommitment(1, env.playerAddr, 1, 1, salt)},
		{Nonce: 2, Commitment: makeCommitment(1, env.playerAddr, 2, 1, salt)},
		{Nonce: 3, Commitment: makeCommitment(1, env.playerAddr, 3, 1, salt)},
	}))
	env.applyLocal(commitTx, commitReceipt)

	// 同一笔交易的三张票各占一个批内偏移
	base := int64(50) * types.MaxTxsPerBlock * int64(pgt.MaxBatch)
	byAddr := listTicketRecords(t, env, calcTicketAddrPrefix(env.playerAddr))
	require.Len(t, byAddr, 3)
	for i, record := range byAddr {
		assert.Equal(t, uint64(i+1), record.Nonce)
		assert.Equal(t, base+int64(i), record.Index)
		assert.Equal(t, env.playerAddr, record.Addr)
	}
	byRound := listTicketRecords(t, env, calcTicketRoundPrefix(1))
	require.Len(t, byRound, 3)

	// 披露不动索引
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{
		{Addr: env.playerAddr, Nonce: 1},
		{Addr: env.playerAddr, Nonce: 2},
		{Addr: env.playerAddr, Nonce: 3},
	}))

	// 关掉一张票只摘掉它自己的索引
	closeTx, closeReceipt := env.mustExec(env.playerPriv, closeTicketAction(1, env.playerAddr, 2))
	env.applyLocal(closeTx, closeReceipt)
	byAddr = listTicketRecords(t, env, calcTicketAddrPrefix(env.playerAddr))
	require.Len(t, byAddr, 2)
	assert.Equal(t, uint64(1), byAddr[0].Nonce)
	assert.Equal(t, uint64(3), byAddr[1].Nonce)
	require.Len(t, listTicketRecords(t, env, calcTicketRoundPrefix(1)), 2)

	// 回滚关闭，索引恢复
	env.rollbackLocal(closeTx, closeReceipt)
	require.Len(t, listTicketRecords(t, env, calcTicketAddrPrefix(env.playerAddr)), 3)

	// 回滚提交，索引全部消失
	env.rollbackLocal(commitTx, commitReceipt)
	assert.Nil(t, listTicketRecords(t, env, calcTicketAddrPrefix(env.playerAddr)))
	assert.Nil(t, listTicketRecords(t, env, calcTicketRoundPrefix(1)))
}

func TestLocalIgnoresNonIndexLogs(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	salt := testSalt(0x32)

	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, 1, makeCommitment(1, env.playerAddr, 1, 1, salt)))
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, pulseForGuess(1, env.playerAddr, 1, 1)))

	// 披露只产生票据回执，不触发任何本地索引变更
	env.setHeight(180)
	tx, receipt, err := env.execTx(env.playerPriv, revealAction(1, 1, 1, salt))
	require.NoError(t, err)
	set := env.applyLocal(tx, receipt)
	require.NotNil(t, set)
	assert.Empty(t, set.KV)
}
