package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func (a *action) checkDeadlines(commitDeadline, revealDeadline int64) error {
	if commitDeadline <= a.height {
		return pgt.ErrDeadlineOrder
	}
	if revealDeadline <= commitDeadline {
		return pgt.ErrDeadlineOrder
	}
	if revealDeadline-commitDeadline < pgt.MinRevealWindow {
		return pgt.ErrWindowTooShort
	}
	return nil
}

func (a *action) newRound(roundID uint64, commitDeadline, revealDeadline int64, target uint32, cfg *pgt.PulseConfig) *pgt.PulseRound {
	return &pgt.PulseRound{
		RoundId:          roundID,
		Status:           pgt.RoundStatusAnnounced,
		Authority:        a.fromaddr,
		CommitDeadline:   commitDeadline,
		RevealDeadline:   revealDeadline,
		PulseIndexTarget: target,
		StakeAmount:      cfg.StakeAmount,
		CreatedSlot:      a.height,
		Index:            a.heightIndex(),
	}
}

func (a *action) createRound(payload *pgt.RoundCreate) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	if cfg.Paused {
		return nil, pgt.ErrPaused
	}
	if err := a.checkDeadlines(payload.GetCommitDeadline(), payload.GetRevealDeadline()); err != nil {
		return nil, err
	}
	ok, err := a.exists(calcRoundKey(payload.GetRoundId()))
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrRoundExists
	}
	round := a.newRound(payload.GetRoundId(), payload.GetCommitDeadline(),
		payload.GetRevealDeadline(), payload.GetPulseIndexTarget(), cfg)
	kvs := []*types.KeyValue{kvRound(round)}
	// 显式编号不能让自动编号撞车，登记表存在时同步推进
	reg, err := a.getRegistry()
	if err == nil && round.RoundId >= reg.NextRoundId {
		reg.NextRoundId = round.RoundId + 1
		kvs = append(kvs, kvRegistry(reg))
	} else if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	glog.Info("pulsegame create round", "roundId", round.RoundId,
		"commitDeadline", round.CommitDeadline, "revealDeadline", round.RevealDeadline)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kvs,
		Logs: []*types.ReceiptLog{roundLog(pgt.TyLogRoundCreate, -1, round)},
	}, nil
}

func (a *action) createRoundAuto(payload *pgt.RoundCreateAuto) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	if cfg.Paused {
		return nil, pgt.ErrPaused
	}
	reg, err := a.getRegistry()
	if err != nil {
		return nil, err
	}
	commitWindow := payload.GetCommitWindow()
	if commitWindow == 0 {
		commitWindow = cfg.CommitWindow
	}
	revealWindow := payload.GetRevealWindow()
	if revealWindow == 0 {
		revealWindow = cfg.RevealWindow
	}
	if commitWindow <= 0 || revealWindow <= 0 {
		return nil, types.ErrInvalidParam
	}
	commitDeadline, err := safeAdd(a.height, commitWindow)
	if err != nil {
		return nil, err
	}
	revealDeadline, err := safeAdd(commitDeadline, revealWindow)
	if err != nil {
		return nil, err
	}
	if err := a.checkDeadlines(commitDeadline, revealDeadline); err != nil {
		return nil, err
	}
	roundID := reg.NextRoundId
	ok, err := a.exists(calcRoundKey(roundID))
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrRoundExists
	}
	reg.NextRoundId++
	round := a.newRound(roundID, commitDeadline, revealDeadline, payload.GetPulseIndexTarget(), cfg)
	glog.Info("pulsegame create round auto", "roundId", round.RoundId,
		"commitDeadline", round.CommitDeadline, "revealDeadline", round.RevealDeadline)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvRound(round), kvRegistry(reg)},
		Logs: []*types.ReceiptLog{roundLog(pgt.TyLogRoundCreate, -1, round)},
	}, nil
}

func (a *action) fundVault(payload *pgt.VaultFund) (*types.Receipt, error) {
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if round.Finalized {
		return nil, pgt.ErrAlreadyFinalized
	}
	if payload.GetAmount() <= 0 || payload.GetAmount() > types.MaxCoin {
		return nil, types.ErrAmount
	}
	receipt, err := a.tokenAccount.ExecFrozen(a.fromaddr, a.execaddr, payload.GetAmount())
	if err != nil {
		glog.Error("pulsegame fund vault", "addr", a.fromaddr, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	round.VaultTokens, err = safeAdd(round.VaultTokens, payload.GetAmount())
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	receipt.Logs = append(receipt.Logs, roundLog(pgt.TyLogVaultFund, round.Status, round))
	return receipt, nil
}

// applyPulse 公共的脉冲落地路径，窗口检查对真实与模拟脉冲一致
func (a *action) applyPulse(round *pgt.PulseRound, pulse []byte) (*types.Receipt, error) {
	if round.PulseSet {
		return nil, pgt.ErrPulseAlreadySet
	}
	if a.height < round.CommitDeadline {
		return nil, pgt.ErrCommitNotClosed
	}
	if a.height >= round.RevealDeadline-pgt.LatePulseSafetyBuffer {
		return nil, pgt.ErrPulseTooLate
	}
	if len(pulse) != pgt.PulseBytes {
		return nil, pgt.ErrBadPulseSize
	}
	prevStatus := round.Status
	round.Pulse = pulse
	round.PulseSet = true
	round.PulseSlot = a.height
	round.Status = pgt.RoundStatusPulseSet
	round.PrevIndex = round.Index
	round.Index = a.heightIndex()
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvRound(round)},
		Logs: []*types.ReceiptLog{roundLog(pgt.TyLogRoundPulse, prevStatus, round)},
	}, nil
}

func (a *action) setPulse(payload *pgt.PulseSet) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if len(cfg.OraclePubkey) != pgt.Ed25519PubkeyBytes {
		return nil, pgt.ErrOracleNotSet
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	msg := pgt.PulseMessage(a.progID(), round.RoundId, round.PulseIndexTarget, payload.GetPulse())
	if err := verifyEvidence(payload.GetEvidence(), cfg.OraclePubkey, msg); err != nil {
		return nil, err
	}
	glog.Info("pulsegame set pulse", "roundId", round.RoundId, "target", round.PulseIndexTarget)
	return a.applyPulse(round, payload.GetPulse())
}

func (a *action) setPulseMock(payload *pgt.PulseSetMock) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.AllowMockPulse {
		return nil, pgt.ErrMockPulseDisabled
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	glog.Info("pulsegame set mock pulse", "roundId", round.RoundId)
	return a.applyPulse(round, payload.GetPulse())
}

func (a *action) finalizeRound(payload *pgt.RoundFinalize) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if round.Finalized {
		return nil, pgt.ErrAlreadyFinalized
	}
	if !round.PulseSet {
		return nil, pgt.ErrPulseNotSet
	}
	if a.height <= round.RevealDeadline {
		return nil, pgt.ErrCannotFinalizeYet
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvRound(round)},
		Logs: []*types.ReceiptLog{a.doFinalize(round)},
	}, nil
}

// doFinalize 既服务于显式终结，也服务于结算时的自动终结，回执由调用方落库
func (a *action) doFinalize(round *pgt.PulseRound) *types.ReceiptLog {
	prevStatus := round.Status
	round.Finalized = true
	round.FinalizedSlot = a.height
	round.Status = pgt.RoundStatusFinalized
	round.PrevIndex = round.Index
	round.Index = a.heightIndex()
	glog.Info("pulsegame finalize round", "roundId", round.RoundId,
		"committed", round.CommittedCount, "revealed", round.RevealedCount, "win", round.WinCount)
	return roundLog(pgt.TyLogRoundFinalize, prevStatus, round)
}

func (a *action) closeRound(payload *pgt.RoundClose) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	if err := a.requireAuthority(cfg); err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	// 已终结的轮次要求代币清算完成，空轮只要求扫尾完成
	if !round.Finalized && round.CommittedCount > 0 {
		return nil, pgt.ErrRoundNotEmpty
	}
	if !round.Swept {
		return nil, pgt.ErrRoundNotSwept
	}
	if round.CommittedCount > 0 && !round.TokenSettled {
		return nil, pgt.ErrRoundNotSettled
	}
	glog.Info("pulsegame close round", "roundId", round.RoundId)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvDelete(calcRoundKey(round.RoundId))},
		Logs: []*types.ReceiptLog{roundLog(pgt.TyLogRoundClose, round.Status, round)},
	}, nil
}
