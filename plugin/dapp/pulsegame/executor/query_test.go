package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/33cn/pulsegame/common/db"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
	"github.com/33cn/pulsegame/util"
)

func TestQuerySingletons(t *testing.T) {
	env := newExecEnv(t, 10)

	_, err := env.exec.Query("GetConfig", types.Encode(&types.ReqNil{}))
	assert.Equal(t, types.ErrNotFound, err)
	_, err = env.exec.Query("NoSuchFunc", types.Encode(&types.ReqNil{}))
	assert.Equal(t, types.ErrQueryNotSupport, err)

	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupConfig(true)
	env.setupRegistry()
	env.setupTokenomics(250, feePool, treasury)
	oracle := edKey(t)
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: oracle.PubKey().Bytes()}},
	})
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateOracleSet,
		Value: &pgt.PulsegameAction_CreateOracleSet{CreateOracleSet: &pgt.OracleSetCreate{}},
	})

	msg, err := env.exec.Query("GetConfig", types.Encode(&types.ReqNil{}))
	require.NoError(t, err)
	cfg := msg.(*pgt.PulseConfig)
	assert.Equal(t, env.authAddr, cfg.Authority)
	assert.Equal(t, testStake, cfg.StakeAmount)

	msg, err = env.exec.Query("GetRegistry", types.Encode(&types.ReqNil{}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), msg.(*pgt.RoundRegistry).NextRoundId)

	msg, err = env.exec.Query("GetTokenomics", types.Encode(&types.ReqNil{}))
	require.NoError(t, err)
	tk := msg.(*pgt.PulseTokenomics)
	assert.Equal(t, uint32(250), tk.RewardFeeBps)
	assert.Equal(t, treasury, tk.Treasury)

	// 配置里的预言机公钥作为集合首个成员
	msg, err = env.exec.Query("GetOracleSet", types.Encode(&types.ReqNil{}))
	require.NoError(t, err)
	set := msg.(*pgt.OracleSet)
	assert.Equal(t, uint32(1), set.Threshold)
	require.Len(t, set.Oracles, 1)
	assert.Equal(t, oracle.PubKey().Bytes(), set.Oracles[0])

	signer := edKey(t)
	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	msg, err = env.exec.Query("GetEscrow", types.Encode(&pgt.ReqEscrow{Addr: env.playerAddr}))
	require.NoError(t, err)
	assert.Equal(t, signer.PubKey().Bytes(), msg.(*pgt.UserEscrow).SignPubkey)

	msg, err = env.exec.Query("GetBitIndex", types.Encode(&pgt.ReqBitIndex{RoundId: 5, Addr: env.playerAddr, Nonce: 9}))
	require.NoError(t, err)
	assert.Equal(t, pgt.DeriveBitIndex(5, pgt.UserID(env.playerAddr), 9), msg.(*pgt.ReplyBitIndex).BitIndex)

	_, err = env.exec.Query("GetBitIndex", types.Encode(&pgt.ReqBitIndex{RoundId: 5}))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestQueryRoundList(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)

	_, err := env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{Status: pgt.RoundStatusAnnounced}))
	assert.Equal(t, types.ErrNotFound, err)

	for i, roundID := range []uint64{1, 2, 3} {
		env.setHeight(int64(11 + i))
		tx, receipt := env.mustExec(env.authPriv, roundCreateAction(&pgt.RoundCreate{
			RoundId:          roundID,
			CommitDeadline:   100,
			RevealDeadline:   200,
			PulseIndexTarget: 777,
		}))
		env.applyLocal(tx, receipt)
	}

	msg, err := env.exec.Query("GetRound", types.Encode(&pgt.ReqRoundInfo{RoundId: 2}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), msg.(*pgt.PulseRound).RoundId)

	msg, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusAnnounced,
		Direction: dbm.ListASC,
	}))
	require.NoError(t, err)
	rounds := msg.(*pgt.ReplyRoundList).Rounds
	require.Len(t, rounds, 3)
	assert.Equal(t, uint64(1), rounds[0].RoundId)
	assert.Equal(t, uint64(3), rounds[2].RoundId)

	msg, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusAnnounced,
		Direction: dbm.ListDESC,
	}))
	require.NoError(t, err)
	rounds = msg.(*pgt.ReplyRoundList).Rounds
	require.Len(t, rounds, 3)
	assert.Equal(t, uint64(3), rounds[0].RoundId)

	// 升序翻页，游标为上一页末尾的index
	msg, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusAnnounced,
		Count:     2,
		Direction: dbm.ListASC,
	}))
	require.NoError(t, err)
	rounds = msg.(*pgt.ReplyRoundList).Rounds
	require.Len(t, rounds, 2)
	assert.Equal(t, uint64(2), rounds[1].RoundId)

	msg, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusAnnounced,
		Count:     2,
		Direction: dbm.ListASC,
		Index:     rounds[1].Index,
	}))
	require.NoError(t, err)
	rounds = msg.(*pgt.ReplyRoundList).Rounds
	require.Len(t, rounds, 1)
	assert.Equal(t, uint64(3), rounds[0].RoundId)

	_, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusAnnounced,
		Direction: dbm.ListASC,
		Index:     rounds[0].Index,
	}))
	assert.Equal(t, types.ErrNotFound, err)

	// 状态库先行删除而索引未跟上时，条目被跳过
	env.setHeight(120)
	tx, receipt := env.mustExec(env.authPriv, mockPulseAction(3, make([]byte, pgt.PulseBytes)))
	env.applyLocal(tx, receipt)
	env.setHeight(250)
	tx, receipt, err = env.execTx(env.authPriv, settleAction(3, nil))
	require.NoError(t, err)
	env.applyLocal(tx, receipt)
	env.setHeight(1101)
	tx, receipt = env.mustExec(env.authPriv, sweepAction(3, nil))
	env.applyLocal(tx, receipt)
	env.mustExec(env.authPriv, closeRoundAction(3))
	_, err = env.exec.Query("GetRoundListByStatus", types.Encode(&pgt.ReqRoundList{
		Status:    pgt.RoundStatusFinalized,
		Direction: dbm.ListASC,
	}))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestQueryTicketLists(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	otherAddr, otherPriv := util.Genaddress()
	env.fundToken(otherAddr, 10*testStake)
	salt := testSalt(0x41)

	env.setHeight(50)
	tx, receipt := env.mustExec(env.playerPriv, commitBatchAction(1, []*pgt.CommitEntry{
		{Nonce: 1, Commitment: makeCommitment(1, env.playerAddr, 1, 1, salt)},
		{Nonce: 2, Commitment: makeCommitment(1, env.playerAddr, 2, 1, salt)},
		{Nonce: 3, Commitment: makeCommitment(1, env.playerAddr, 3, 1, salt)},
	}))
	env.applyLocal(tx, receipt)
	env.setHeight(51)
	tx, receipt = env.mustExec(otherPriv, commitAction(1, 1, makeCommitment(1, otherAddr, 1, 0, salt)))
	env.applyLocal(tx, receipt)

	msg, err := env.exec.Query("GetTicket", types.Encode(&pgt.ReqTicketInfo{RoundId: 1, Addr: env.playerAddr, Nonce: 2}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), msg.(*pgt.PulseTicket).Nonce)
	_, err = env.exec.Query("GetTicket", types.Encode(&pgt.ReqTicketInfo{RoundId: 1, Addr: env.playerAddr, Nonce: 9}))
	assert.Equal(t, types.ErrNotFound, err)

	// 地址维度只看到自己的票
	msg, err = env.exec.Query("GetTicketListByAddr", types.Encode(&pgt.ReqTicketListByAddr{
		Addr:      env.playerAddr,
		Direction: dbm.ListASC,
	}))
	require.NoError(t, err)
	tickets := msg.(*pgt.ReplyTicketList).Tickets
	require.Len(t, tickets, 3)
	assert.Equal(t, uint64(1), tickets[0].Nonce)
	assert.Equal(t, uint64(3), tickets[2].Nonce)

	// 轮次维度看到全部参与者，提交顺序即索引顺序
	msg, err = env.exec.Query("GetTicketListByRound", types.Encode(&pgt.ReqTicketListByRound{
		RoundId:   1,
		Direction: dbm.ListASC,
	}))
	require.NoError(t, err)
	tickets = msg.(*pgt.ReplyTicketList).Tickets
	require.Len(t, tickets, 4)
	assert.Equal(t, otherAddr, tickets[3].Addr)

	msg, err = env.exec.Query("GetTicketListByRound", types.Encode(&pgt.ReqTicketListByRound{
		RoundId:   1,
		Count:     3,
		Direction: dbm.ListASC,
	}))
	require.NoError(t, err)
	page := msg.(*pgt.ReplyTicketList).Tickets
	require.Len(t, page, 3)
	msg, err = env.exec.Query("GetTicketListByRound", types.Encode(&pgt.ReqTicketListByRound{
		RoundId:   1,
		Count:     3,
		Direction: dbm.ListASC,
		Index:     page[2].Index,
	}))
	require.NoError(t, err)
	page = msg.(*pgt.ReplyTicketList).Tickets
	require.Len(t, page, 1)
	assert.Equal(t, otherAddr, page[0].Addr)

	// 降序首条是最新提交
	msg, err = env.exec.Query("GetTicketListByAddr", types.Encode(&pgt.ReqTicketListByAddr{
		Addr:      env.playerAddr,
		Count:     1,
		Direction: dbm.ListDESC,
	}))
	require.NoError(t, err)
	page = msg.(*pgt.ReplyTicketList).Tickets
	require.Len(t, page, 1)
	assert.Equal(t, uint64(3), page[0].Nonce)

	emptyAddr, _ := util.Genaddress()
	_, err = env.exec.Query("GetTicketListByAddr", types.Encode(&pgt.ReqTicketListByAddr{Addr: emptyAddr}))
	assert.Equal(t, types.ErrNotFound, err)
}
