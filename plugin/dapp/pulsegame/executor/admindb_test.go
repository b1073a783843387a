package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
	"github.com/33cn/pulsegame/util"
)

func setOracleKeyAction(pubkey []byte) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: pubkey}},
	}
}

func oracleSetCreateAction() *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateOracleSet,
		Value: &pgt.PulsegameAction_CreateOracleSet{CreateOracleSet: &pgt.OracleSetCreate{}},
	}
}

func oracleAddAction(pubkey []byte) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionAddOracle,
		Value: &pgt.PulsegameAction_AddOracle{AddOracle: &pgt.OracleAdd{Pubkey: pubkey}},
	}
}

func oracleRemoveAction(pubkey []byte) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionRemoveOracle,
		Value: &pgt.PulsegameAction_RemoveOracle{RemoveOracle: &pgt.OracleRemove{Pubkey: pubkey}},
	}
}

func oracleThresholdAction(threshold uint32) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleThreshold,
		Value: &pgt.PulsegameAction_SetOracleThreshold{SetOracleThreshold: &pgt.OracleThreshold{Threshold: threshold}},
	}
}

func tokenomicsCreateAction(bps uint32, feePool, treasury string) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCreateTokenomics,
		Value: &pgt.PulsegameAction_CreateTokenomics{CreateTokenomics: &pgt.TokenomicsCreate{
			RewardFeeBps: bps,
			FeePool:      feePool,
			Treasury:     treasury,
		}},
	}
}

func tokenomicsUpdateAction(payload *pgt.TokenomicsUpdate) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionUpdateTokenomics,
		Value: &pgt.PulsegameAction_UpdateTokenomics{UpdateTokenomics: payload},
	}
}

func treasuryWithdrawAction(amount int64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionWithdrawTreasury,
		Value: &pgt.PulsegameAction_WithdrawTreasury{WithdrawTreasury: &pgt.TreasuryWithdraw{Amount: amount}},
	}
}

func treasuryWithdrawTokenAction(amount int64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionWithdrawTreasuryToken,
		Value: &pgt.PulsegameAction_WithdrawTreasuryToken{WithdrawTreasuryToken: &pgt.TreasuryWithdrawToken{Amount: amount}},
	}
}

func loadOracleSet(t *testing.T, env *execEnv) *pgt.OracleSet {
	value, err := env.stateDB.Get(calcOracleSetKey())
	require.NoError(t, err)
	var set pgt.OracleSet
	require.NoError(t, types.Decode(value, &set))
	return &set
}

func loadTokenomics(t *testing.T, env *execEnv) *pgt.PulseTokenomics {
	value, err := env.stateDB.Get(calcTokenomicsKey())
	require.NoError(t, err)
	var tk pgt.PulseTokenomics
	require.NoError(t, types.Decode(value, &tk))
	return &tk
}

func TestOracleSetLifecycle(t *testing.T) {
	env := newExecEnv(t, 10)

	_, _, err := env.execTx(env.authPriv, oracleSetCreateAction())
	assert.Equal(t, types.ErrNotFound, err)

	env.setupConfig(true)
	_, _, err = env.execTx(env.playerPriv, oracleSetCreateAction())
	assert.Equal(t, pgt.ErrUnauthorized, err)
	_, _, err = env.execTx(env.authPriv, oracleAddAction(edKey(t).PubKey().Bytes()))
	assert.Equal(t, types.ErrNotFound, err)

	oracle1 := edKey(t)
	env.mustExec(env.authPriv, setOracleKeyAction(oracle1.PubKey().Bytes()))
	env.mustExec(env.authPriv, oracleSetCreateAction())
	set := loadOracleSet(t, env)
	assert.Equal(t, uint32(1), set.Threshold)
	require.Len(t, set.Oracles, 1)
	assert.Equal(t, oracle1.PubKey().Bytes(), set.Oracles[0])
	assert.Equal(t, int64(10), set.CreatedSlot)

	_, _, err = env.execTx(env.authPriv, oracleSetCreateAction())
	assert.Equal(t, pgt.ErrOracleSetExists, err)

	_, _, err = env.execTx(env.authPriv, oracleAddAction([]byte{1, 2, 3}))
	assert.Equal(t, pgt.ErrBadPubkeySize, err)
	_, _, err = env.execTx(env.authPriv, oracleAddAction(oracle1.PubKey().Bytes()))
	assert.Equal(t, pgt.ErrOracleExists, err)

	oracle2 := edKey(t)
	env.setHeight(20)
	env.mustExec(env.authPriv, oracleAddAction(oracle2.PubKey().Bytes()))
	set = loadOracleSet(t, env)
	require.Len(t, set.Oracles, 2)
	assert.Equal(t, int64(20), set.UpdatedSlot)

	_, _, err = env.execTx(env.authPriv, oracleThresholdAction(0))
	assert.Equal(t, pgt.ErrBadThreshold, err)
	_, _, err = env.execTx(env.authPriv, oracleThresholdAction(3))
	assert.Equal(t, pgt.ErrBadThreshold, err)
	env.mustExec(env.authPriv, oracleThresholdAction(2))
	assert.Equal(t, uint32(2), loadOracleSet(t, env).Threshold)

	_, _, err = env.execTx(env.authPriv, oracleRemoveAction(edKey(t).PubKey().Bytes()))
	assert.Equal(t, pgt.ErrOracleUnknown, err)
	// 移除后剩余成员凑不齐门限2
	_, _, err = env.execTx(env.authPriv, oracleRemoveAction(oracle2.PubKey().Bytes()))
	assert.Equal(t, pgt.ErrBadThreshold, err)

	env.mustExec(env.authPriv, oracleThresholdAction(1))
	_, receipt := env.mustExec(env.authPriv, oracleRemoveAction(oracle2.PubKey().Bytes()))
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(pgt.TyLogOracleSet), receipt.Logs[0].Ty)
	var rl pgt.ReceiptOracleSet
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rl))
	assert.Len(t, rl.Prev.Oracles, 2)
	assert.Len(t, rl.Current.Oracles, 1)
	set = loadOracleSet(t, env)
	require.Len(t, set.Oracles, 1)
	assert.Equal(t, oracle1.PubKey().Bytes(), set.Oracles[0])

	for i := 1; i < pgt.MaxOracles; i++ {
		env.mustExec(env.authPriv, oracleAddAction(edKey(t).PubKey().Bytes()))
	}
	_, _, err = env.execTx(env.authPriv, oracleAddAction(edKey(t).PubKey().Bytes()))
	assert.Equal(t, pgt.ErrTooManyOracles, err)
}

func TestTokenomicsLifecycle(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()

	_, _, err := env.execTx(env.playerPriv, tokenomicsCreateAction(250, feePool, treasury))
	assert.Equal(t, pgt.ErrUnauthorized, err)
	_, _, err = env.execTx(env.authPriv, tokenomicsCreateAction(pgt.MaxBps+1, feePool, treasury))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, _, err = env.execTx(env.authPriv, tokenomicsCreateAction(250, "not-an-address", treasury))
	assert.Error(t, err)

	env.mustExec(env.authPriv, tokenomicsCreateAction(250, feePool, treasury))
	tk := loadTokenomics(t, env)
	assert.Equal(t, uint32(250), tk.RewardFeeBps)
	assert.Equal(t, feePool, tk.FeePool)
	assert.Equal(t, treasury, tk.Treasury)
	assert.Equal(t, int64(10), tk.CreatedSlot)

	_, _, err = env.execTx(env.authPriv, tokenomicsCreateAction(250, feePool, treasury))
	assert.Equal(t, pgt.ErrTokenomicsExists, err)

	// 标志位未置时费率字段被忽略
	env.mustExec(env.authPriv, tokenomicsUpdateAction(&pgt.TokenomicsUpdate{RewardFeeBps: 9999}))
	assert.Equal(t, uint32(250), loadTokenomics(t, env).RewardFeeBps)

	_, _, err = env.execTx(env.authPriv, tokenomicsUpdateAction(&pgt.TokenomicsUpdate{
		RewardFeeBps: pgt.MaxBps + 1,
		UpdateBps:    true,
	}))
	assert.Equal(t, types.ErrInvalidParam, err)

	env.setHeight(30)
	_, receipt := env.mustExec(env.authPriv, tokenomicsUpdateAction(&pgt.TokenomicsUpdate{UpdateBps: true}))
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(pgt.TyLogTokenomics), receipt.Logs[0].Ty)
	var rl pgt.ReceiptTokenomics
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rl))
	assert.Equal(t, uint32(250), rl.Prev.RewardFeeBps)
	assert.Equal(t, uint32(0), rl.Current.RewardFeeBps)
	tk = loadTokenomics(t, env)
	assert.Equal(t, uint32(0), tk.RewardFeeBps)
	assert.Equal(t, int64(30), tk.UpdatedSlot)

	_, _, err = env.execTx(env.authPriv, tokenomicsUpdateAction(&pgt.TokenomicsUpdate{Treasury: "not-an-address"}))
	assert.Error(t, err)
	newTreasury, _ := util.Genaddress()
	env.mustExec(env.authPriv, tokenomicsUpdateAction(&pgt.TokenomicsUpdate{Treasury: newTreasury}))
	tk = loadTokenomics(t, env)
	assert.Equal(t, newTreasury, tk.Treasury)
	assert.Equal(t, feePool, tk.FeePool)
}

func TestTreasuryWithdraw(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()

	_, _, err := env.execTx(env.playerPriv, treasuryWithdrawAction(testStake))
	assert.Equal(t, pgt.ErrUnauthorized, err)
	_, _, err = env.execTx(env.authPriv, treasuryWithdrawAction(testStake))
	assert.Equal(t, types.ErrNotFound, err)

	env.setupTokenomics(0, feePool, treasury)
	_, _, err = env.execTx(env.authPriv, treasuryWithdrawAction(0))
	assert.Equal(t, types.ErrAmount, err)
	_, _, err = env.execTx(env.authPriv, treasuryWithdrawAction(types.MaxCoin+1))
	assert.Equal(t, types.ErrAmount, err)

	env.fundCoins(treasury, 5*testStake)
	_, _, err = env.execTx(env.authPriv, treasuryWithdrawAction(10*testStake))
	assert.Equal(t, types.ErrNoBalance, err)

	env.mustExec(env.authPriv, treasuryWithdrawAction(2*testStake))
	assert.Equal(t, 3*testStake, env.coinsOf(treasury).Balance)
	assert.Equal(t, 2*testStake, env.coinsOf(env.authAddr).Balance)
}

func TestTreasuryWithdrawToken(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(true)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupTokenomics(0, feePool, treasury)

	_, _, err := env.execTx(env.authPriv, treasuryWithdrawTokenAction(testStake))
	assert.Equal(t, types.ErrNoBalance, err)

	env.fundToken(treasury, 4*testStake)
	env.mustExec(env.authPriv, treasuryWithdrawTokenAction(testStake))
	assert.Equal(t, 3*testStake, env.tokenOf(treasury).Balance)
	assert.Equal(t, testStake, env.tokenOf(env.authAddr).Balance)
}
