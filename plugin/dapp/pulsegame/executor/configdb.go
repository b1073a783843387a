package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func (a *action) createConfig(payload *pgt.PulseConfigCreate) (*types.Receipt, error) {
	ok, err := a.exists(calcConfigKey())
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrConfigExists
	}
	if payload.GetStakeAmount() < 0 || payload.GetCommitWindow() < 0 ||
		payload.GetRevealWindow() < 0 || payload.GetClaimGrace() < 0 ||
		payload.GetServiceFee() < 0 {
		return nil, types.ErrInvalidParam
	}
	if len(payload.GetOraclePubkey()) != 0 && len(payload.GetOraclePubkey()) != pgt.Ed25519PubkeyBytes {
		return nil, pgt.ErrBadPubkeySize
	}
	cfg := &pgt.PulseConfig{
		Authority:      a.fromaddr,
		OraclePubkey:   payload.GetOraclePubkey(),
		StakeAmount:    payload.GetStakeAmount(),
		CommitWindow:   payload.GetCommitWindow(),
		RevealWindow:   payload.GetRevealWindow(),
		ClaimGrace:     payload.GetClaimGrace(),
		ServiceFee:     payload.GetServiceFee(),
		AllowMockPulse: payload.GetAllowMockPulse(),
		Version:        pgt.InitialVersion,
		CreatedSlot:    a.height,
		UpdatedSlot:    a.height,
	}
	// 零值回落到默认参数
	if cfg.StakeAmount == 0 {
		cfg.StakeAmount = pgt.DefaultStakeAmount
	}
	if cfg.CommitWindow == 0 {
		cfg.CommitWindow = pgt.DefaultCommitWindow
	}
	if cfg.RevealWindow == 0 {
		cfg.RevealWindow = pgt.DefaultRevealWindow
	}
	if cfg.ClaimGrace == 0 {
		cfg.ClaimGrace = pgt.DefaultClaimGrace
	}
	glog.Info("pulsegame create config", "authority", cfg.Authority, "stake", cfg.StakeAmount)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvConfig(cfg)},
		Logs: []*types.ReceiptLog{configLog(pgt.ConfigOpCreate, nil, cfg)},
	}, nil
}

// updateConfig 管理员修改配置的公共路径
func (a *action) updateConfig(op int32, mutate func(cfg *pgt.PulseConfig) error) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	prev := *cfg
	if err := mutate(cfg); err != nil {
		return nil, err
	}
	cfg.UpdatedSlot = a.height
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvConfig(cfg)},
		Logs: []*types.ReceiptLog{configLog(op, &prev, cfg)},
	}, nil
}

func (a *action) setPause(payload *pgt.PulseConfigPause) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpUpdate, func(cfg *pgt.PulseConfig) error {
		cfg.Paused = payload.GetPause()
		return nil
	})
}

func (a *action) updateStake(payload *pgt.PulseConfigStake) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpUpdate, func(cfg *pgt.PulseConfig) error {
		if payload.GetStakeAmount() <= 0 || payload.GetStakeAmount() > types.MaxCoin {
			return types.ErrAmount
		}
		// 只影响后续创建的轮次，已有轮次使用建轮时的快照
		cfg.StakeAmount = payload.GetStakeAmount()
		return nil
	})
}

func (a *action) setClaimGrace(payload *pgt.PulseConfigClaimGrace) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpUpdate, func(cfg *pgt.PulseConfig) error {
		if payload.GetClaimGrace() <= 0 {
			return types.ErrInvalidParam
		}
		cfg.ClaimGrace = payload.GetClaimGrace()
		return nil
	})
}

func (a *action) setServiceFee(payload *pgt.PulseConfigServiceFee) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpUpdate, func(cfg *pgt.PulseConfig) error {
		if payload.GetServiceFee() < 0 || payload.GetServiceFee() > types.MaxCoin {
			return types.ErrInvalidParam
		}
		cfg.ServiceFee = payload.GetServiceFee()
		return nil
	})
}

func (a *action) setOracleKey(payload *pgt.PulseConfigOracleKey) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpUpdate, func(cfg *pgt.PulseConfig) error {
		if len(payload.GetOraclePubkey()) != pgt.Ed25519PubkeyBytes {
			return pgt.ErrBadPubkeySize
		}
		cfg.OraclePubkey = payload.GetOraclePubkey()
		return nil
	})
}

func (a *action) migrateConfig(payload *pgt.PulseConfigMigrate) (*types.Receipt, error) {
	return a.updateConfig(pgt.ConfigOpMigrate, func(cfg *pgt.PulseConfig) error {
		// 目标版本必须恰好加一，防止重复迁移
		if payload.GetTargetVersion() != cfg.Version+1 {
			return pgt.ErrBadVersion
		}
		cfg.Version = payload.GetTargetVersion()
		return nil
	})
}

func (a *action) closeConfig(payload *pgt.PulseConfigClose) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	glog.Info("pulsegame close config", "authority", cfg.Authority)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvDelete(calcConfigKey())},
		Logs: []*types.ReceiptLog{configLog(pgt.ConfigOpClose, cfg, nil)},
	}, nil
}

func (a *action) createRegistry(payload *pgt.RegistryCreate) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	ok, err := a.exists(calcRegistryKey())
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrRegistryExists
	}
	reg := &pgt.RoundRegistry{NextRoundId: 0, CreatedSlot: a.height}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvRegistry(reg)},
		Logs: []*types.ReceiptLog{registryLog(reg)},
	}, nil
}
