package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func configCreateAction(payload *pgt.PulseConfigCreate) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateConfig,
		Value: &pgt.PulsegameAction_CreateConfig{CreateConfig: payload},
	}
}

func TestCreateConfigDefaults(t *testing.T) {
	env := newExecEnv(t, 10)
	_, receipt, err := env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{}))
	require.NoError(t, err)

	cfg := env.loadConfig()
	assert.Equal(t, env.authAddr, cfg.Authority)
	assert.Equal(t, pgt.DefaultStakeAmount, cfg.StakeAmount)
	assert.Equal(t, pgt.DefaultCommitWindow, cfg.CommitWindow)
	assert.Equal(t, pgt.DefaultRevealWindow, cfg.RevealWindow)
	assert.Equal(t, pgt.DefaultClaimGrace, cfg.ClaimGrace)
	assert.Equal(t, int64(0), cfg.ServiceFee)
	assert.Equal(t, pgt.InitialVersion, cfg.Version)
	assert.False(t, cfg.Paused)
	assert.Equal(t, int64(10), cfg.CreatedSlot)

	require.Len(t, receipt.Logs, 1)
	require.Equal(t, int32(pgt.TyLogPulseConfig), receipt.Logs[0].Ty)
	var rlog pgt.ReceiptPulseConfig
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rlog))
	assert.Equal(t, pgt.ConfigOpCreate, rlog.Op)
	assert.Nil(t, rlog.Prev)
	assert.Equal(t, pgt.InitialVersion, rlog.Current.GetVersion())
}

func TestCreateConfigGuards(t *testing.T) {
	env := newExecEnv(t, 10)

	// 负数参数拒绝
	_, _, err := env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{StakeAmount: -1}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, _, err = env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{CommitWindow: -5}))
	assert.Equal(t, types.ErrInvalidParam, err)

	// 预言机公钥要么为空要么32字节
	_, _, err = env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{OraclePubkey: []byte{1, 2, 3}}))
	assert.Equal(t, pgt.ErrBadPubkeySize, err)

	pub := make([]byte, pgt.Ed25519PubkeyBytes)
	pub[0] = 9
	_, _, err = env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{OraclePubkey: pub}))
	require.NoError(t, err)
	assert.Equal(t, pub, env.loadConfig().OraclePubkey)

	// 重复创建拒绝
	_, _, err = env.execTx(env.authPriv, configCreateAction(&pgt.PulseConfigCreate{}))
	assert.Equal(t, pgt.ErrConfigExists, err)
}

func TestConfigUpdateAuthority(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	pause := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetPause,
		Value: &pgt.PulsegameAction_SetPause{SetPause: &pgt.PulseConfigPause{Pause: true}},
	}
	_, _, err := env.execTx(env.playerPriv, pause)
	assert.Equal(t, pgt.ErrUnauthorized, err)

	env.setHeight(20)
	env.mustExec(env.authPriv, pause)
	cfg := env.loadConfig()
	assert.True(t, cfg.Paused)
	assert.Equal(t, int64(20), cfg.UpdatedSlot)

	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetPause,
		Value: &pgt.PulsegameAction_SetPause{SetPause: &pgt.PulseConfigPause{Pause: false}},
	})
	assert.False(t, env.loadConfig().Paused)
}

func TestUpdateStake(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	stake := func(v int64) *pgt.PulsegameAction {
		return &pgt.PulsegameAction{
			Ty:    pgt.PulsegameActionUpdateStake,
			Value: &pgt.PulsegameAction_UpdateStake{UpdateStake: &pgt.PulseConfigStake{StakeAmount: v}},
		}
	}
	_, _, err := env.execTx(env.authPriv, stake(0))
	assert.Equal(t, types.ErrAmount, err)
	_, _, err = env.execTx(env.authPriv, stake(types.MaxCoin+1))
	assert.Equal(t, types.ErrAmount, err)

	env.mustExec(env.authPriv, stake(5e8))
	assert.Equal(t, int64(5e8), env.loadConfig().StakeAmount)
}

func TestSetClaimGraceAndServiceFee(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	_, _, err := env.execTx(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetClaimGrace,
		Value: &pgt.PulsegameAction_SetClaimGrace{SetClaimGrace: &pgt.PulseConfigClaimGrace{ClaimGrace: 0}},
	})
	assert.Equal(t, types.ErrInvalidParam, err)

	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetClaimGrace,
		Value: &pgt.PulsegameAction_SetClaimGrace{SetClaimGrace: &pgt.PulseConfigClaimGrace{ClaimGrace: 300}},
	})
	assert.Equal(t, int64(300), env.loadConfig().ClaimGrace)

	_, _, err = env.execTx(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetServiceFee,
		Value: &pgt.PulsegameAction_SetServiceFee{SetServiceFee: &pgt.PulseConfigServiceFee{ServiceFee: -1}},
	})
	assert.Equal(t, types.ErrInvalidParam, err)

	// 服务费允许归零
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetServiceFee,
		Value: &pgt.PulsegameAction_SetServiceFee{SetServiceFee: &pgt.PulseConfigServiceFee{ServiceFee: 0}},
	})
	assert.Equal(t, int64(0), env.loadConfig().ServiceFee)
}

func TestSetOracleKey(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	_, _, err := env.execTx(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: []byte("short")}},
	})
	assert.Equal(t, pgt.ErrBadPubkeySize, err)

	pub := make([]byte, pgt.Ed25519PubkeyBytes)
	pub[31] = 1
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: pub}},
	})
	assert.Equal(t, pub, env.loadConfig().OraclePubkey)
}

func TestMigrateConfig(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	migrate := func(target uint32) *pgt.PulsegameAction {
		return &pgt.PulsegameAction{
			Ty:    pgt.PulsegameActionMigrateConfig,
			Value: &pgt.PulsegameAction_MigrateConfig{MigrateConfig: &pgt.PulseConfigMigrate{TargetVersion: target}},
		}
	}
	// 只接受逐级升版本
	_, _, err := env.execTx(env.authPriv, migrate(1))
	assert.Equal(t, pgt.ErrBadVersion, err)
	_, _, err = env.execTx(env.authPriv, migrate(3))
	assert.Equal(t, pgt.ErrBadVersion, err)

	_, receipt, err := env.execTx(env.authPriv, migrate(2))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), env.loadConfig().Version)
	var rlog pgt.ReceiptPulseConfig
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rlog))
	assert.Equal(t, pgt.ConfigOpMigrate, rlog.Op)
	assert.Equal(t, pgt.InitialVersion, rlog.Prev.GetVersion())
}

func TestCloseConfig(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	closeAct := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCloseConfig,
		Value: &pgt.PulsegameAction_CloseConfig{CloseConfig: &pgt.PulseConfigClose{}},
	}
	_, _, err := env.execTx(env.playerPriv, closeAct)
	assert.Equal(t, pgt.ErrUnauthorized, err)

	_, receipt, err := env.execTx(env.authPriv, closeAct)
	require.NoError(t, err)
	var rlog pgt.ReceiptPulseConfig
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &rlog))
	assert.Equal(t, pgt.ConfigOpClose, rlog.Op)
	assert.Nil(t, rlog.Current)

	// 配置删掉之后依赖配置的操作找不到
	_, _, err = env.execTx(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetPause,
		Value: &pgt.PulsegameAction_SetPause{SetPause: &pgt.PulseConfigPause{Pause: true}},
	})
	assert.Equal(t, types.ErrNotFound, err)
}

func TestCreateRegistry(t *testing.T) {
	env := newExecEnv(t, 10)
	env.setupConfig(false)

	registry := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateRegistry,
		Value: &pgt.PulsegameAction_CreateRegistry{CreateRegistry: &pgt.RegistryCreate{}},
	}
	_, _, err := env.execTx(env.playerPriv, registry)
	assert.Equal(t, pgt.ErrUnauthorized, err)

	_, receipt, err := env.execTx(env.authPriv, registry)
	require.NoError(t, err)
	require.Equal(t, int32(pgt.TyLogRegistry), receipt.Logs[0].Ty)

	value, err := env.stateDB.Get(calcRegistryKey())
	require.NoError(t, err)
	var reg pgt.RoundRegistry
	require.NoError(t, types.Decode(value, &reg))
	assert.Equal(t, uint64(0), reg.NextRoundId)
	assert.Equal(t, int64(10), reg.CreatedSlot)

	_, _, err = env.execTx(env.authPriv, registry)
	assert.Equal(t, pgt.ErrRegistryExists, err)
}
