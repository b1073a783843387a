package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
	"github.com/33cn/pulsegame/util"
)

func refundAction(roundID uint64, addr string, nonce uint64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionRefundTicket,
		Value: &pgt.PulsegameAction_RefundTicket{RefundTicket: &pgt.TicketRefund{RoundId: roundID, Addr: addr, Nonce: nonce}},
	}
}

func closeTicketAction(roundID uint64, addr string, nonce uint64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCloseTicket,
		Value: &pgt.PulsegameAction_CloseTicket{CloseTicket: &pgt.TicketClose{RoundId: roundID, Addr: addr, Nonce: nonce}},
	}
}

// 提交一张票并落地中奖脉冲，停在披露完成的状态
func setupRevealedWinner(t *testing.T, env *execEnv, nonce uint64) {
	salt := testSalt(byte(nonce))
	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, nonce, makeCommitment(1, env.playerAddr, nonce, 1, salt)))
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, pulseForGuess(1, env.playerAddr, nonce, 1)))
	env.setHeight(180)
	env.mustExec(env.playerPriv, revealAction(1, nonce, 1, salt))
}

func TestSettleGates(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)

	big := make([]*pgt.TicketRef, pgt.MaxBatch+1)
	for i := range big {
		big[i] = &pgt.TicketRef{Addr: env.playerAddr, Nonce: uint64(i)}
	}
	_, _, err := env.execTx(env.authPriv, settleAction(1, big))
	assert.Equal(t, pgt.ErrBatchSize, err)

	// 脉冲未落地不能结算
	_, _, err = env.execTx(env.authPriv, settleAction(1, nil))
	assert.Equal(t, pgt.ErrPulseNotSet, err)

	setupRevealedWinner(t, env, 1)

	// 披露窗口内不能结算
	env.setHeight(200)
	ref := []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}
	_, _, err = env.execTx(env.authPriv, settleAction(1, ref))
	assert.Equal(t, pgt.ErrCannotFinalizeYet, err)

	env.setHeight(250)
	_, _, err = env.execTx(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 9}}))
	assert.Equal(t, types.ErrNotFound, err)

	_, _, err = env.execTx(env.authPriv, settleAction(1, []*pgt.TicketRef{
		{Addr: env.playerAddr, Nonce: 1},
		{Addr: env.playerAddr, Nonce: 1},
	}))
	assert.Equal(t, pgt.ErrTicketProcessed, err)

	// 结算不限定管理员，任何人都可以推进
	env.mustExec(env.playerPriv, settleAction(1, ref))
	assert.True(t, env.loadRound(1).TokenSettled)

	_, _, err = env.execTx(env.authPriv, settleAction(1, ref))
	assert.Equal(t, pgt.ErrTicketProcessed, err)

	// 全部结算完之后的空批次没有意义
	_, _, err = env.execTx(env.authPriv, settleAction(1, nil))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestSettleAutoFinalize(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	// 空批次也能把轮次终结掉
	env.setHeight(250)
	_, receipt, err := env.execTx(env.authPriv, settleAction(1, nil))
	require.NoError(t, err)
	round := env.loadRound(1)
	assert.True(t, round.Finalized)
	assert.False(t, round.TokenSettled)
	hasFinalize := false
	for _, l := range receipt.Logs {
		if l.Ty == pgt.TyLogRoundFinalize {
			hasFinalize = true
		}
	}
	assert.True(t, hasFinalize)

	// 补上票据后完成代币结算
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	round = env.loadRound(1)
	assert.True(t, round.TokenSettled)
	assert.Equal(t, int64(250), round.TokenSettledSlot)
}

func TestSettleEmptyRound(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)

	// 没有任何票的轮：第一笔空结算终结并直接完成清算
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, nil))
	round := env.loadRound(1)
	assert.True(t, round.Finalized)
	assert.True(t, round.TokenSettled)

	// 再来一笔空结算就报错
	_, _, err := env.execTx(env.authPriv, settleAction(1, nil))
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestClaimGuards(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	// 结算完成前不能领奖
	env.setHeight(250)
	_, _, err := env.execTx(env.playerPriv, claimAction(1, 1))
	assert.Equal(t, pgt.ErrRoundNotSettled, err)

	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))

	_, _, err = env.execTx(env.playerPriv, claimAction(1, 9))
	assert.Equal(t, types.ErrNotFound, err)
	// 领奖只认票据归属地址
	_, strangerPriv := util.Genaddress()
	_, _, err = env.execTx(strangerPriv, claimAction(1, 1))
	assert.Equal(t, types.ErrNotFound, err)

	env.mustExec(env.playerPriv, claimAction(1, 1))
	_, _, err = env.execTx(env.playerPriv, claimAction(1, 1))
	assert.Equal(t, pgt.ErrAlreadyClaimed, err)
}

func TestClaimNoTokenomics(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	env.mustExec(env.playerPriv, claimAction(1, 1))

	// 未配置抽成时全额奖励
	acc := env.tokenOf(env.playerAddr)
	assert.Equal(t, int64(0), acc.Frozen)
	assert.Equal(t, 11*testStake, acc.Balance)
	assert.Equal(t, int64(0), env.loadRound(1).VaultTokens)
}

func TestSweep(t *testing.T) {
	env := newExecEnv(t, 10)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupConfig(true)
	env.setupTokenomics(100, feePool, treasury)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)

	// 两张票：nonce 1披露成输家，nonce 2弃权不披露
	salt := testSalt(0x07)
	env.setHeight(50)
	env.mustExec(env.playerPriv, commitBatchAction(1, []*pgt.CommitEntry{
		{Nonce: 1, Commitment: makeCommitment(1, env.playerAddr, 1, 1, salt)},
		{Nonce: 2, Commitment: makeCommitment(1, env.playerAddr, 2, 1, salt)},
	}))
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(180)
	env.mustExec(env.playerPriv, revealAction(1, 1, 1, salt))

	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{
		{Addr: env.playerAddr, Nonce: 1},
		{Addr: env.playerAddr, Nonce: 2},
	}))
	round := env.loadRound(1)
	assert.True(t, round.TokenSettled)
	assert.Equal(t, int64(0), round.VaultTokens)

	// 双双被烧，没有可扫的赢家票，这里只验证空扫与重复扫
	_, _, err := env.execTx(env.playerPriv, sweepAction(1, nil))
	assert.Equal(t, pgt.ErrUnauthorized, err)
	env.setHeight(1100)
	_, _, err = env.execTx(env.authPriv, sweepAction(1, nil))
	assert.Equal(t, pgt.ErrGraceNotElapsed, err)
	env.setHeight(1101)
	env.mustExec(env.authPriv, sweepAction(1, nil))
	assert.True(t, env.loadRound(1).Swept)
	_, _, err = env.execTx(env.authPriv, sweepAction(1, nil))
	assert.Equal(t, pgt.ErrAlreadySwept, err)

	// 已烧掉的输家票不可扫
	_, _, err = env.execTx(env.authPriv, sweepAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 2}}))
	assert.Equal(t, pgt.ErrNotWinner, err)
}

func TestSweepUnclaimedWinner(t *testing.T) {
	env := newExecEnv(t, 10)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupConfig(true)
	env.setupTokenomics(100, feePool, treasury)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))

	// 赢家过期不领，押金全额转入国库
	env.setHeight(1101)
	env.mustExec(env.authPriv, sweepAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	ticket := env.loadTicket(1, env.playerAddr, 1)
	assert.True(t, ticket.Swept)
	assert.Equal(t, int64(0), env.tokenOf(env.playerAddr).Frozen)
	assert.Equal(t, testStake, env.tokenOf(treasury).Balance)
	round := env.loadRound(1)
	assert.True(t, round.Swept)
	assert.Equal(t, int64(0), round.VaultTokens)

	// 清扫后禁止领奖，重复清扫同一张票也被拒
	_, _, err := env.execTx(env.playerPriv, claimAction(1, 1))
	assert.Equal(t, pgt.ErrClaimAfterSweep, err)
	_, _, err = env.execTx(env.authPriv, sweepAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	assert.Equal(t, pgt.ErrTicketSwept, err)
}

func TestSweepClaimedAndUnprocessed(t *testing.T) {
	env := newExecEnv(t, 10)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupConfig(true)
	env.setupTokenomics(100, feePool, treasury)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	env.mustExec(env.playerPriv, claimAction(1, 1))

	// 已领奖的票不能再扫
	env.setHeight(1101)
	_, _, err := env.execTx(env.authPriv, sweepAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	assert.Equal(t, pgt.ErrAlreadyClaimed, err)

	// 另一轮只终结不结算，未处理的票也不能扫
	env.setHeight(1200)
	env.setupRound(2, 1300, 1400)
	env.setHeight(1250)
	env.mustExec(env.playerPriv, commitAction(2, 1, makeCommitment(2, env.playerAddr, 1, 1, testSalt(0x08))))
	env.setHeight(1320)
	env.mustExec(env.authPriv, mockPulseAction(2, make([]byte, pgt.PulseBytes)))
	env.setHeight(1401)
	env.mustExec(env.authPriv, finalizeAction(2))
	env.setHeight(2400)
	_, _, err = env.execTx(env.authPriv, sweepAction(2, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	assert.Equal(t, pgt.ErrTicketNotProcessed, err)
}

func TestSweepNeedsTokenomics(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	setupRevealedWinner(t, env, 1)

	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))

	// 没有国库地址就没法转押金
	env.setHeight(1101)
	_, _, err := env.execTx(env.authPriv, sweepAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestRefund(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	salt := testSalt(0x09)

	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, 1, makeCommitment(1, env.playerAddr, 1, 1, salt)))

	// 披露截止+150之内不允许退款
	env.setHeight(350)
	_, _, err := env.execTx(env.playerPriv, refundAction(1, env.playerAddr, 1))
	assert.Equal(t, pgt.ErrRefundTooEarly, err)

	env.setHeight(351)
	_, _, err = env.execTx(env.playerPriv, refundAction(1, env.playerAddr, 9))
	assert.Equal(t, types.ErrNotFound, err)

	// 退款不限定发起人，资金只会回到票据地址
	env.mustExec(env.authPriv, refundAction(1, env.playerAddr, 1))
	acc := env.tokenOf(env.playerAddr)
	assert.Equal(t, int64(0), acc.Frozen)
	assert.Equal(t, 10*testStake, acc.Balance)
	ticket := env.loadTicket(1, env.playerAddr, 1)
	assert.True(t, ticket.Processed)
	assert.True(t, ticket.Claimed)
	round := env.loadRound(1)
	assert.Equal(t, uint32(0), round.CommittedCount)
	assert.Equal(t, int64(0), round.VaultTokens)

	_, _, err = env.execTx(env.playerPriv, refundAction(1, env.playerAddr, 1))
	assert.Equal(t, pgt.ErrTicketProcessed, err)
}

func TestRefundBlockedByPulse(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)

	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, 1, makeCommitment(1, env.playerAddr, 1, 1, testSalt(0x0a))))
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))

	// 脉冲已经落地，走正常结算而不是退款
	env.setHeight(400)
	_, _, err := env.execTx(env.playerPriv, refundAction(1, env.playerAddr, 1))
	assert.Equal(t, pgt.ErrPulseAlreadySet, err)
}

func TestCloseTicket(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	salt := testSalt(0x0b)

	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, 1, makeCommitment(1, env.playerAddr, 1, 1, salt)))

	// 未决的票不能关
	_, _, err := env.execTx(env.playerPriv, closeTicketAction(1, env.playerAddr, 1))
	assert.Equal(t, pgt.ErrTicketUnresolved, err)

	// 全0脉冲让它成为输家并结算掉
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(250)
	env.mustExec(env.authPriv, settleAction(1, []*pgt.TicketRef{{Addr: env.playerAddr, Nonce: 1}}))

	// 非持有人非管理员不能关
	_, strangerPriv := util.Genaddress()
	_, _, err = env.execTx(strangerPriv, closeTicketAction(1, env.playerAddr, 1))
	assert.Equal(t, pgt.ErrUnauthorized, err)

	// 管理员可以代为清理
	env.mustExec(env.authPriv, closeTicketAction(1, env.playerAddr, 1))
	_, err = env.stateDB.Get(calcTicketKey(1, env.playerAddr, 1))
	assert.Error(t, err)

	_, _, err = env.execTx(env.authPriv, closeTicketAction(1, env.playerAddr, 1))
	assert.Equal(t, types.ErrNotFound, err)
}
