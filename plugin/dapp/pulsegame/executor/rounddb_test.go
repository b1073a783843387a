package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/pulsegame/common/crypto"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func edKey(t *testing.T) crypto.PrivKey {
	ed, err := crypto.New(types.GetSignName("", types.ED25519))
	require.NoError(t, err)
	priv, err := ed.GenKey()
	require.NoError(t, err)
	return priv
}

func signEvidence(priv crypto.PrivKey, msg []byte) *pgt.SignEvidence {
	return &pgt.SignEvidence{
		Pubkey:    priv.PubKey().Bytes(),
		Msg:       msg,
		Signature: priv.Sign(msg).Bytes(),
	}
}

func loadRegistry(t *testing.T, env *execEnv) *pgt.RoundRegistry {
	value, err := env.stateDB.Get(calcRegistryKey())
	require.NoError(t, err)
	var reg pgt.RoundRegistry
	require.NoError(t, types.Decode(value, &reg))
	return &reg
}

func roundCreateAction(payload *pgt.RoundCreate) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateRound,
		Value: &pgt.PulsegameAction_CreateRound{CreateRound: payload},
	}
}

func roundAutoAction(payload *pgt.RoundCreateAuto) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateRoundAuto,
		Value: &pgt.PulsegameAction_CreateRoundAuto{CreateRoundAuto: payload},
	}
}

func fundVaultAction(roundID uint64, amount int64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionFundVault,
		Value: &pgt.PulsegameAction_FundVault{FundVault: &pgt.VaultFund{RoundId: roundID, Amount: amount}},
	}
}

func finalizeAction(roundID uint64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionFinalizeRound,
		Value: &pgt.PulsegameAction_FinalizeRound{FinalizeRound: &pgt.RoundFinalize{RoundId: roundID}},
	}
}

func closeRoundAction(roundID uint64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCloseRound,
		Value: &pgt.PulsegameAction_CloseRound{CloseRound: &pgt.RoundClose{RoundId: roundID}},
	}
}

func sweepAction(roundID uint64, refs []*pgt.TicketRef) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSweepRound,
		Value: &pgt.PulsegameAction_SweepRound{SweepRound: &pgt.RoundSweep{RoundId: roundID, Tickets: refs}},
	}
}

func TestCreateRoundGuards(t *testing.T) {
	env := newExecEnv(t, 10)

	create := roundCreateAction(&pgt.RoundCreate{RoundId: 1, CommitDeadline: 100, RevealDeadline: 200})
	_, _, err := env.execTx(env.authPriv, create)
	assert.Equal(t, types.ErrNotFound, err)

	env.setupConfig(false)
	_, _, err = env.execTx(env.playerPriv, create)
	assert.Equal(t, pgt.ErrUnauthorized, err)

	// 截止高度必须在当前高度之后且保持顺序
	_, _, err = env.execTx(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 1, CommitDeadline: 10, RevealDeadline: 200}))
	assert.Equal(t, pgt.ErrDeadlineOrder, err)
	_, _, err = env.execTx(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 1, CommitDeadline: 100, RevealDeadline: 100}))
	assert.Equal(t, pgt.ErrDeadlineOrder, err)
	_, _, err = env.execTx(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 1, CommitDeadline: 100, RevealDeadline: 159}))
	assert.Equal(t, pgt.ErrWindowTooShort, err)
	// 正好60个块的披露窗口允许
	_, _, err = env.execTx(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 9, CommitDeadline: 100, RevealDeadline: 160}))
	require.NoError(t, err)

	env.mustExec(env.authPriv, create)
	_, _, err = env.execTx(env.authPriv, create)
	assert.Equal(t, pgt.ErrRoundExists, err)

	round := env.loadRound(1)
	assert.Equal(t, env.authAddr, round.Authority)
	assert.Equal(t, pgt.RoundStatusAnnounced, round.Status)
	assert.Equal(t, pgt.DefaultStakeAmount, round.StakeAmount)
	assert.Equal(t, int64(10), round.CreatedSlot)

	// 暂停时禁止开新轮
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetPause,
		Value: &pgt.PulsegameAction_SetPause{SetPause: &pgt.PulseConfigPause{Pause: true}},
	})
	_, _, err = env.execTx(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 2, CommitDeadline: 100, RevealDeadline: 200}))
	assert.Equal(t, pgt.ErrPaused, err)
}

func TestCreateRoundRegistryBump(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)
	env.setupRegistry()

	// 显式编号推进登记表，避免自动编号撞上
	env.mustExec(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 5, CommitDeadline: 100, RevealDeadline: 200}))
	assert.Equal(t, uint64(6), loadRegistry(t, env).NextRoundId)

	// 自动建轮使用下一个编号
	env.mustExec(env.authPriv, roundAutoAction(&pgt.RoundCreateAuto{}))
	round := env.loadRound(6)
	assert.Equal(t, int64(10+pgt.DefaultCommitWindow), round.CommitDeadline)
	assert.Equal(t, int64(10+pgt.DefaultCommitWindow+pgt.DefaultRevealWindow), round.RevealDeadline)
	assert.Equal(t, uint64(7), loadRegistry(t, env).NextRoundId)

	// 小于NextRoundId的显式编号不回拨登记表
	env.mustExec(env.authPriv, roundCreateAction(&pgt.RoundCreate{RoundId: 2, CommitDeadline: 100, RevealDeadline: 200}))
	assert.Equal(t, uint64(7), loadRegistry(t, env).NextRoundId)
}

func TestCreateRoundAuto(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	// 自动建轮依赖登记表
	_, _, err := env.execTx(env.authPriv, roundAutoAction(&pgt.RoundCreateAuto{}))
	assert.Equal(t, types.ErrNotFound, err)

	env.setupRegistry()
	_, _, err = env.execTx(env.authPriv, roundAutoAction(&pgt.RoundCreateAuto{CommitWindow: -5}))
	assert.Equal(t, types.ErrInvalidParam, err)

	env.mustExec(env.authPriv, roundAutoAction(&pgt.RoundCreateAuto{CommitWindow: 90, RevealWindow: 100, PulseIndexTarget: 42}))
	round := env.loadRound(0)
	assert.Equal(t, int64(100), round.CommitDeadline)
	assert.Equal(t, int64(200), round.RevealDeadline)
	assert.Equal(t, uint32(42), round.PulseIndexTarget)
	assert.Equal(t, uint64(1), loadRegistry(t, env).NextRoundId)

	env.mustExec(env.authPriv, roundAutoAction(&pgt.RoundCreateAuto{}))
	assert.Equal(t, uint64(1), env.loadRound(1).RoundId)
}

func TestFundVault(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.authAddr, 10*testStake)

	_, _, err := env.execTx(env.authPriv, fundVaultAction(9, testStake))
	assert.Equal(t, types.ErrNotFound, err)
	_, _, err = env.execTx(env.authPriv, fundVaultAction(1, 0))
	assert.Equal(t, types.ErrAmount, err)
	_, _, err = env.execTx(env.authPriv, fundVaultAction(1, types.MaxCoin+1))
	assert.Equal(t, types.ErrAmount, err)

	_, receipt, err := env.execTx(env.authPriv, fundVaultAction(1, 3*testStake))
	require.NoError(t, err)
	assert.Equal(t, int32(pgt.TyLogVaultFund), receipt.Logs[len(receipt.Logs)-1].Ty)
	assert.Equal(t, 3*testStake, env.loadRound(1).VaultTokens)
	acc := env.tokenOf(env.authAddr)
	assert.Equal(t, 3*testStake, acc.Frozen)
	assert.Equal(t, 7*testStake, acc.Balance)

	// 终结后禁止注资
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(201)
	env.mustExec(env.authPriv, finalizeAction(1))
	_, _, err = env.execTx(env.authPriv, fundVaultAction(1, testStake))
	assert.Equal(t, pgt.ErrAlreadyFinalized, err)
}

func TestPulseWindows(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	pulse := make([]byte, pgt.PulseBytes)

	// 提交截止前不能落脉冲
	env.setHeight(99)
	_, _, err := env.execTx(env.authPriv, mockPulseAction(1, pulse))
	assert.Equal(t, pgt.ErrCommitNotClosed, err)

	// 披露截止-50的保护线及之后拒绝
	env.setHeight(150)
	_, _, err = env.execTx(env.authPriv, mockPulseAction(1, pulse))
	assert.Equal(t, pgt.ErrPulseTooLate, err)

	env.setHeight(149)
	_, _, err = env.execTx(env.authPriv, mockPulseAction(1, pulse[:10]))
	assert.Equal(t, pgt.ErrBadPulseSize, err)

	env.mustExec(env.authPriv, mockPulseAction(1, pulse))
	round := env.loadRound(1)
	assert.True(t, round.PulseSet)
	assert.Equal(t, int64(149), round.PulseSlot)
	assert.Equal(t, round.Index, round.PrevIndex+int64(149-10)*types.MaxTxsPerBlock)

	_, _, err = env.execTx(env.authPriv, mockPulseAction(1, pulse))
	assert.Equal(t, pgt.ErrPulseAlreadySet, err)

	// 正好在提交截止高度可以落脉冲
	env.setupRound(2, 300, 400)
	env.setHeight(300)
	env.mustExec(env.authPriv, mockPulseAction(2, pulse))
}

func TestSetPulseMockGuards(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)
	env.setupRound(1, 100, 200)
	env.setHeight(120)

	pulse := make([]byte, pgt.PulseBytes)
	_, _, err := env.execTx(env.authPriv, mockPulseAction(1, pulse))
	assert.Equal(t, pgt.ErrMockPulseDisabled, err)
}

func TestSetPulseMockAuthority(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.setHeight(120)

	_, _, err := env.execTx(env.playerPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	assert.Equal(t, pgt.ErrUnauthorized, err)
}

func TestSetPulseSigned(t *testing.T) {
	env := newExecEnv(t, 10)
	oracle := edKey(t)

	// 未配置预言机公钥时拒绝真实脉冲
	env.mustExec(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{}))
	env.setupRound(1, 100, 200)
	env.setHeight(120)

	pulse := make([]byte, pgt.PulseBytes)
	pulse[7] = 0x3c
	msg := pgt.PulseMessage([]byte(env.execAddr), 1, 777, pulse)

	pulseSigned := func(ev *pgt.SignEvidence) *pgt.PulsegameAction {
		return &pgt.PulsegameAction{
			Ty:    pgt.PulsegameActionSetPulse,
			Value: &pgt.PulsegameAction_SetPulse{SetPulse: &pgt.PulseSet{RoundId: 1, Pulse: pulse, Evidence: ev}},
		}
	}

	_, _, err := env.execTx(env.playerPriv, pulseSigned(signEvidence(oracle, msg)))
	assert.Equal(t, pgt.ErrOracleNotSet, err)

	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: oracle.PubKey().Bytes()}},
	})

	_, _, err = env.execTx(env.playerPriv, pulseSigned(nil))
	assert.Equal(t, pgt.ErrEvidenceCount, err)

	// 证据消息必须逐字节等于规范消息
	badMsg := append([]byte{}, msg...)
	badMsg[0] ^= 0xff
	_, _, err = env.execTx(env.playerPriv, pulseSigned(signEvidence(oracle, badMsg)))
	assert.Equal(t, pgt.ErrEvidenceMessage, err)

	// 非预言机密钥签名拒绝
	stranger := edKey(t)
	_, _, err = env.execTx(env.playerPriv, pulseSigned(signEvidence(stranger, msg)))
	assert.Equal(t, pgt.ErrEvidencePubkey, err)

	// 签名本身校验不过
	broken := signEvidence(oracle, msg)
	broken.Signature = make([]byte, pgt.Ed25519SigBytes)
	_, _, err = env.execTx(env.playerPriv, pulseSigned(broken))
	assert.Equal(t, pgt.ErrEvidenceSignature, err)

	// 任何人拿着合法证据都能落脉冲
	env.mustExec(env.playerPriv, pulseSigned(signEvidence(oracle, msg)))
	round := env.loadRound(1)
	assert.True(t, round.PulseSet)
	assert.Equal(t, pulse, round.Pulse)
}

func TestFinalizeRound(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)

	_, _, err := env.execTx(env.playerPriv, finalizeAction(1))
	assert.Equal(t, pgt.ErrUnauthorized, err)

	// 没有脉冲不能终结
	env.setHeight(250)
	_, _, err = env.execTx(env.authPriv, finalizeAction(1))
	assert.Equal(t, pgt.ErrPulseNotSet, err)

	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))

	// 披露截止当天还不能终结
	env.setHeight(200)
	_, _, err = env.execTx(env.authPriv, finalizeAction(1))
	assert.Equal(t, pgt.ErrCannotFinalizeYet, err)

	env.setHeight(201)
	env.mustExec(env.authPriv, finalizeAction(1))
	round := env.loadRound(1)
	assert.True(t, round.Finalized)
	assert.Equal(t, pgt.RoundStatusFinalized, round.Status)
	assert.Equal(t, int64(201), round.FinalizedSlot)

	_, _, err = env.execTx(env.authPriv, finalizeAction(1))
	assert.Equal(t, pgt.ErrAlreadyFinalized, err)
}

func TestCloseRound(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)

	// 有票未终结不能关
	salt := testSalt(0x01)
	env.setHeight(50)
	env.mustExec(env.playerPriv, commitAction(1, 1, makeCommitment(1, env.playerAddr, 1, 1, salt)))
	_, _, err := env.execTx(env.authPriv, closeRoundAction(1))
	assert.Equal(t, pgt.ErrRoundNotEmpty, err)

	// 空轮未清扫不能关
	env.setupRound(2, 100, 200)
	_, _, err = env.execTx(env.authPriv, closeRoundAction(2))
	assert.Equal(t, pgt.ErrRoundNotSwept, err)

	// 空轮清扫后可以关
	env.setHeight(1150)
	env.mustExec(env.authPriv, sweepAction(2, nil))
	env.mustExec(env.authPriv, closeRoundAction(2))
	_, err = env.stateDB.Get(calcRoundKey(2))
	assert.Error(t, err)

	// 有票的轮终结清扫后还要求完成代币结算
	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, make([]byte, pgt.PulseBytes)))
	env.setHeight(201)
	env.mustExec(env.authPriv, finalizeAction(1))
	env.setHeight(1150)
	env.mustExec(env.authPriv, sweepAction(1, nil))
	_, _, err = env.execTx(env.authPriv, closeRoundAction(1))
	assert.Equal(t, pgt.ErrRoundNotSettled, err)
}
