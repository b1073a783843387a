package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func (a *action) debitVault(round *pgt.PulseRound, amount int64) error {
	if round.VaultTokens < amount {
		return pgt.ErrInsufficientVault
	}
	round.VaultTokens -= amount
	return nil
}

func (a *action) settleRound(payload *pgt.RoundSettle) (*types.Receipt, error) {
	if len(payload.GetTickets()) > pgt.MaxBatch {
		return nil, pgt.ErrBatchSize
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if !round.PulseSet {
		return nil, pgt.ErrPulseNotSet
	}
	if a.height <= round.RevealDeadline {
		return nil, pgt.ErrCannotFinalizeYet
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if !round.Finalized {
		receipt.Logs = append(receipt.Logs, a.doFinalize(round))
	}
	var losers uint32
	var burned int64
	seen := make(map[string]bool, len(payload.GetTickets()))
	for _, ref := range payload.GetTickets() {
		key := string(calcTicketKey(round.RoundId, ref.GetAddr(), ref.GetNonce()))
		if seen[key] {
			return nil, pgt.ErrTicketProcessed
		}
		seen[key] = true
		ticket, err := a.getTicket(round.RoundId, ref.GetAddr(), ref.GetNonce())
		if err != nil {
			return nil, err
		}
		if ticket.Processed {
			return nil, pgt.ErrTicketProcessed
		}
		if !ticket.StakePaid {
			return nil, pgt.ErrStakeNotPaid
		}
		// 未披露与猜错同罪，押金销毁
		if !ticket.Revealed || !ticket.Win {
			burnReceipt, err := a.tokenAccount.ExecBurnFrozen(ticket.Addr, a.execaddr, ticket.StakeAmount)
			if err != nil {
				glog.Error("pulsegame settle burn", "addr", ticket.Addr, "stake", ticket.StakeAmount, "err", err)
				return nil, err
			}
			mergeReceipt(receipt, burnReceipt)
			if err := a.debitVault(round, ticket.StakeAmount); err != nil {
				return nil, err
			}
			losers++
			burned += ticket.StakeAmount
		}
		ticket.Processed = true
		ticket.SettledSlot = a.height
		round.SettledCount++
		receipt.KV = append(receipt.KV, kvTicket(ticket))
		receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketSettle, pgt.TicketOpSettle, ticket))
	}
	flipped := false
	if !round.TokenSettled && round.SettledCount == round.CommittedCount {
		round.TokenSettled = true
		round.TokenSettledSlot = a.height
		flipped = true
	}
	// 空列表只在推动状态时有意义
	if len(payload.GetTickets()) == 0 && !flipped && len(receipt.Logs) == 0 {
		return nil, types.ErrInvalidParam
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	settle := &pgt.ReceiptRoundSettle{
		RoundId:        round.RoundId,
		ProcessedCount: uint32(len(payload.GetTickets())),
		LosersBurned:   losers,
		TokensBurned:   burned,
		TokenSettled:   round.TokenSettled,
	}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: pgt.TyLogRoundSettle, Log: types.Encode(settle)})
	glog.Info("pulsegame settle round", "roundId", round.RoundId, "processed", len(payload.GetTickets()),
		"losers", losers, "tokenSettled", round.TokenSettled)
	return receipt, nil
}

func (a *action) claimReward(payload *pgt.RewardClaim) (*types.Receipt, error) {
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if !round.TokenSettled {
		return nil, pgt.ErrRoundNotSettled
	}
	if round.Swept {
		return nil, pgt.ErrClaimAfterSweep
	}
	// 票据键包含持票地址，非持票人取不到
	ticket, err := a.getTicket(round.RoundId, a.fromaddr, payload.GetNonce())
	if err != nil {
		return nil, err
	}
	if !ticket.Processed {
		return nil, pgt.ErrTicketNotProcessed
	}
	if !ticket.StakePaid {
		return nil, pgt.ErrStakeNotPaid
	}
	if !ticket.Revealed {
		return nil, pgt.ErrNotRevealed
	}
	if !ticket.Win {
		return nil, pgt.ErrNotWinner
	}
	if ticket.Claimed {
		return nil, pgt.ErrAlreadyClaimed
	}
	if ticket.Swept {
		return nil, pgt.ErrTicketSwept
	}
	stake := ticket.StakeAmount
	if round.VaultTokens < stake {
		return nil, pgt.ErrInsufficientVault
	}
	var fee int64
	tk, err := a.getTokenomics()
	if err == types.ErrNotFound {
		tk = nil
	} else if err != nil {
		return nil, err
	} else {
		product, perr := safeMul(stake, int64(tk.RewardFeeBps))
		if perr != nil {
			return nil, perr
		}
		fee = product / int64(pgt.MaxBps)
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	activeReceipt, err := a.tokenAccount.ExecActive(a.fromaddr, a.execaddr, stake)
	if err != nil {
		glog.Error("pulsegame claim active", "addr", a.fromaddr, "stake", stake, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, activeReceipt)
	if reward := stake - fee; reward > 0 {
		mintReceipt, err := a.tokenAccount.ExecMint(a.fromaddr, a.execaddr, reward)
		if err != nil {
			glog.Error("pulsegame claim mint", "addr", a.fromaddr, "reward", reward, "err", err)
			return nil, err
		}
		mergeReceipt(receipt, mintReceipt)
	}
	if fee > 0 {
		feeReceipt, err := a.tokenAccount.ExecMint(tk.FeePool, a.execaddr, fee)
		if err != nil {
			glog.Error("pulsegame claim fee mint", "feePool", tk.FeePool, "fee", fee, "err", err)
			return nil, err
		}
		mergeReceipt(receipt, feeReceipt)
	}
	ticket.Claimed = true
	ticket.ClaimedSlot = a.height
	if err := a.debitVault(round, stake); err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kvTicket(ticket), kvRound(round))
	receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketClaim, pgt.TicketOpClaim, ticket))
	glog.Info("pulsegame claim reward", "roundId", round.RoundId, "addr", a.fromaddr,
		"stake", stake, "fee", fee)
	return receipt, nil
}

func (a *action) sweepRound(payload *pgt.RoundSweep) (*types.Receipt, error) {
	if len(payload.GetTickets()) > pgt.MaxBatch {
		return nil, pgt.ErrBatchSize
	}
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
	if !round.Finalized && round.CommittedCount > 0 {
		return nil, pgt.ErrRoundNotFinalized
	}
	deadline, err := safeAdd(round.RevealDeadline, cfg.ClaimGrace)
	if err != nil {
		return nil, err
	}
	if a.height <= deadline {
		return nil, pgt.ErrGraceNotElapsed
	}
	first := !round.Swept
	if first {
		round.Swept = true
		round.SweptSlot = a.height
	}
	if !first && len(payload.GetTickets()) == 0 {
		return nil, pgt.ErrAlreadySwept
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if len(payload.GetTickets()) > 0 {
		tk, err := a.getTokenomics()
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(payload.GetTickets()))
		for _, ref := range payload.GetTickets() {
			key := string(calcTicketKey(round.RoundId, ref.GetAddr(), ref.GetNonce()))
			if seen[key] {
				return nil, pgt.ErrTicketSwept
			}
			seen[key] = true
			ticket, err := a.getTicket(round.RoundId, ref.GetAddr(), ref.GetNonce())
			if err != nil {
				return nil, err
			}
			if !ticket.Processed {
				return nil, pgt.ErrTicketNotProcessed
			}
			if !ticket.Win {
				return nil, pgt.ErrNotWinner
			}
			if ticket.Claimed {
				return nil, pgt.ErrAlreadyClaimed
			}
			if ticket.Swept {
				return nil, pgt.ErrTicketSwept
			}
			if !ticket.StakePaid {
				return nil, pgt.ErrStakeNotPaid
			}
			// 过期未领的奖金罚没进国库
			transferReceipt, err := a.tokenAccount.ExecTransferFrozen(ticket.Addr, tk.Treasury, a.execaddr, ticket.StakeAmount)
			if err != nil {
				glog.Error("pulsegame sweep transfer", "addr", ticket.Addr, "stake", ticket.StakeAmount, "err", err)
				return nil, err
			}
			mergeReceipt(receipt, transferReceipt)
			if err := a.debitVault(round, ticket.StakeAmount); err != nil {
				return nil, err
			}
			ticket.Swept = true
			receipt.KV = append(receipt.KV, kvTicket(ticket))
			receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketSweep, pgt.TicketOpSweep, ticket))
		}
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	receipt.Logs = append(receipt.Logs, roundLog(pgt.TyLogRoundSweep, round.Status, round))
	glog.Info("pulsegame sweep round", "roundId", round.RoundId, "tickets", len(payload.GetTickets()), "first", first)
	return receipt, nil
}

func (a *action) refundTicket(payload *pgt.TicketRefund) (*types.Receipt, error) {
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	// 脉冲已写入的轮次走正常结算，不走退款
	if round.PulseSet {
		return nil, pgt.ErrPulseAlreadySet
	}
	deadline, err := safeAdd(round.RevealDeadline, pgt.RefundTimeout)
	if err != nil {
		return nil, err
	}
	if a.height <= deadline {
		return nil, pgt.ErrRefundTooEarly
	}
	ticket, err := a.getTicket(round.RoundId, payload.GetAddr(), payload.GetNonce())
	if err != nil {
		return nil, err
	}
	if ticket.Processed {
		return nil, pgt.ErrTicketProcessed
	}
	if ticket.Claimed {
		return nil, pgt.ErrAlreadyClaimed
	}
	if !ticket.StakePaid {
		return nil, pgt.ErrStakeNotPaid
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if ticket.ViaEscrow {
		escrow, err := a.getEscrow(ticket.Addr)
		if err != nil {
			return nil, err
		}
		prevBalance := escrow.Balance
		escrow.Balance, err = safeAdd(escrow.Balance, ticket.StakeAmount)
		if err != nil {
			return nil, err
		}
		escrow.UpdatedSlot = a.height
		receipt.KV = append(receipt.KV, kvEscrow(escrow))
		receipt.Logs = append(receipt.Logs, escrowLog(pgt.EscrowOpCredit, escrow.Addr, prevBalance, escrow.Balance))
	} else {
		activeReceipt, err := a.tokenAccount.ExecActive(ticket.Addr, a.execaddr, ticket.StakeAmount)
		if err != nil {
			glog.Error("pulsegame refund active", "addr", ticket.Addr, "stake", ticket.StakeAmount, "err", err)
			return nil, err
		}
		mergeReceipt(receipt, activeReceipt)
	}
	// processed加claimed双标记，既算了结又永久封死领奖
	ticket.Processed = true
	ticket.Claimed = true
	ticket.SettledSlot = a.height
	round.CommittedCount--
	if err := a.debitVault(round, ticket.StakeAmount); err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kvTicket(ticket), kvRound(round))
	receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketRefund, pgt.TicketOpRefund, ticket))
	glog.Info("pulsegame refund ticket", "roundId", round.RoundId, "addr", ticket.Addr, "nonce", ticket.Nonce)
	return receipt, nil
}

func (a *action) closeTicket(payload *pgt.TicketClose) (*types.Receipt, error) {
	ticket, err := a.getTicket(payload.GetRoundId(), payload.GetAddr(), payload.GetNonce())
	if err != nil {
		return nil, err
	}
	if a.fromaddr != ticket.Addr {
		cfg, err := a.getConfig()
		if err != nil || a.fromaddr != cfg.Authority {
			return nil, pgt.ErrUnauthorized
		}
	}
	// 赢票要么领过要么被扫，输票和退款票只看processed
	resolved := ticket.Processed && (!ticket.Win || ticket.Claimed || ticket.Swept)
	if !resolved {
		return nil, pgt.ErrTicketUnresolved
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvDelete(calcTicketKey(ticket.RoundId, ticket.Addr, ticket.Nonce))},
		Logs: []*types.ReceiptLog{ticketLog(pgt.TyLogTicketClose, pgt.TicketOpClose, ticket)},
	}, nil
}
