package executor

import (
	"bytes"

	"github.com/33cn/pulsegame/common/address"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func findOracle(set *pgt.OracleSet, pubkey []byte) int {
	for i, key := range set.Oracles {
		if bytes.Equal(key, pubkey) {
			return i
		}
	}
	return -1
}

func (a *action) createOracleSet(payload *pgt.OracleSetCreate) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	ok, err := a.exists(calcOracleSetKey())
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrOracleSetExists
	}
	set := &pgt.OracleSet{
		Threshold:   1,
		CreatedSlot: a.height,
		UpdatedSlot: a.height,
	}
	// 配置里已有的预言机公钥作为首个成员
	if len(cfg.OraclePubkey) == pgt.Ed25519PubkeyBytes {
		set.Oracles = append(set.Oracles, cfg.OraclePubkey)
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvOracleSet(set)},
		Logs: []*types.ReceiptLog{oracleSetLog(nil, set)},
	}, nil
}

// updateOracleSet 管理员修改预言机集合的公共路径
func (a *action) updateOracleSet(mutate func(set *pgt.OracleSet) error) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	set, err := a.getOracleSet()
	if err != nil {
		return nil, err
	}
	prev := *set
	prev.Oracles = append([][]byte{}, set.Oracles...)
	if err := mutate(set); err != nil {
		return nil, err
	}
	set.UpdatedSlot = a.height
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvOracleSet(set)},
		Logs: []*types.ReceiptLog{oracleSetLog(&prev, set)},
	}, nil
}

func (a *action) addOracle(payload *pgt.OracleAdd) (*types.Receipt, error) {
	return a.updateOracleSet(func(set *pgt.OracleSet) error {
		if len(payload.GetPubkey()) != pgt.Ed25519PubkeyBytes {
			return pgt.ErrBadPubkeySize
		}
		if findOracle(set, payload.GetPubkey()) >= 0 {
			return pgt.ErrOracleExists
		}
		if len(set.Oracles) >= pgt.MaxOracles {
			return pgt.ErrTooManyOracles
		}
		set.Oracles = append(set.Oracles, payload.GetPubkey())
		return nil
	})
}

func (a *action) removeOracle(payload *pgt.OracleRemove) (*types.Receipt, error) {
	return a.updateOracleSet(func(set *pgt.OracleSet) error {
		idx := findOracle(set, payload.GetPubkey())
		if idx < 0 {
			return pgt.ErrOracleUnknown
		}
		set.Oracles = append(set.Oracles[:idx], set.Oracles[idx+1:]...)
		// 剩余成员必须仍能凑齐门限
		if int(set.Threshold) > len(set.Oracles) {
			return pgt.ErrBadThreshold
		}
		return nil
	})
}

func (a *action) setOracleThreshold(payload *pgt.OracleThreshold) (*types.Receipt, error) {
	return a.updateOracleSet(func(set *pgt.OracleSet) error {
		t := payload.GetThreshold()
		if t < 1 || int(t) > len(set.Oracles) {
			return pgt.ErrBadThreshold
		}
		set.Threshold = t
		return nil
	})
}

func (a *action) createTokenomics(payload *pgt.TokenomicsCreate) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	ok, err := a.exists(calcTokenomicsKey())
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrTokenomicsExists
	}
	if payload.GetRewardFeeBps() > pgt.MaxBps {
		return nil, types.ErrInvalidParam
	}
	if err := address.CheckAddress(payload.GetFeePool()); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(payload.GetTreasury()); err != nil {
		return nil, err
	}
	tk := &pgt.PulseTokenomics{
		RewardFeeBps: payload.GetRewardFeeBps(),
		FeePool:      payload.GetFeePool(),
		Treasury:     payload.GetTreasury(),
		CreatedSlot:  a.height,
		UpdatedSlot:  a.height,
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvTokenomics(tk)},
		Logs: []*types.ReceiptLog{tokenomicsLog(nil, tk)},
	}, nil
}

func (a *action) updateTokenomics(payload *pgt.TokenomicsUpdate) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	tk, err := a.getTokenomics()
	if err != nil {
		return nil, err
	}
	prev := *tk
	// updateBps 标志区分「改成 0」和「不改」
	if payload.GetUpdateBps() {
		if payload.GetRewardFeeBps() > pgt.MaxBps {
			return nil, types.ErrInvalidParam
		}
		tk.RewardFeeBps = payload.GetRewardFeeBps()
	}
	if payload.GetFeePool() != "" {
		if err := address.CheckAddress(payload.GetFeePool()); err != nil {
			return nil, err
		}
		tk.FeePool = payload.GetFeePool()
	}
	if payload.GetTreasury() != "" {
		if err := address.CheckAddress(payload.GetTreasury()); err != nil {
			return nil, err
		}
		tk.Treasury = payload.GetTreasury()
	}
	tk.UpdatedSlot = a.height
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvTokenomics(tk)},
		Logs: []*types.ReceiptLog{tokenomicsLog(&prev, tk)},
	}, nil
}

func (a *action) withdrawTreasury(payload *pgt.TreasuryWithdraw) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	tk, err := a.getTokenomics()
	if err != nil {
		return nil, err
	}
	if payload.GetAmount() <= 0 || payload.GetAmount() > types.MaxCoin {
		return nil, types.ErrAmount
	}
	receipt, err := a.coinsAccount.ExecTransfer(tk.Treasury, cfg.Authority, a.execaddr, payload.GetAmount())
	if err != nil {
		glog.Error("pulsegame treasury withdraw", "treasury", tk.Treasury, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	return receipt, nil
}

func (a *action) withdrawTreasuryToken(payload *pgt.TreasuryWithdrawToken) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	tk, err := a.getTokenomics()
	if err != nil {
		return nil, err
	}
	if payload.GetAmount() <= 0 || payload.GetAmount() > types.MaxCoin {
		return nil, types.ErrAmount
	}
	receipt, err := a.tokenAccount.ExecTransfer(tk.Treasury, cfg.Authority, a.execaddr, payload.GetAmount())
	if err != nil {
		glog.Error("pulsegame treasury withdraw token", "treasury", tk.Treasury, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	return receipt, nil
}
