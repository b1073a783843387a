package executor

import (
	"bytes"

	"github.com/33cn/pulsegame/common/address"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

// checkCommitOpen 提交路径的公共闸门
func (a *action) checkCommitOpen(cfg *pgt.PulseConfig, round *pgt.PulseRound) error {
	if cfg.Paused {
		return pgt.ErrPaused
	}
	if round.Finalized {
		return pgt.ErrAlreadyFinalized
	}
	// 脉冲一旦写入，提交即关闭，哪怕截止高度未到
	if round.PulseSet || a.height > round.CommitDeadline {
		return pgt.ErrCommitClosed
	}
	return nil
}

func (a *action) buildTicket(round *pgt.PulseRound, addr string, entry *pgt.CommitEntry, viaEscrow bool, pos int) (*pgt.PulseTicket, error) {
	if len(entry.GetCommitment()) != pgt.CommitmentBytes {
		return nil, pgt.ErrBadCommitmentSize
	}
	ok, err := a.exists(calcTicketKey(round.RoundId, addr, entry.GetNonce()))
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrTicketExists
	}
	user := pgt.UserID(addr)
	return &pgt.PulseTicket{
		RoundId:     round.RoundId,
		Addr:        addr,
		Nonce:       entry.GetNonce(),
		Commitment:  entry.GetCommitment(),
		BitIndex:    pgt.DeriveBitIndex(round.RoundId, user, entry.GetNonce()),
		StakePaid:   true,
		ViaEscrow:   viaEscrow,
		StakeAmount: round.StakeAmount,
		CommitSlot:  a.height,
		// 批量提交一笔交易产出多张票，索引尾部留出批内偏移保证唯一
		Index: a.heightIndex()*int64(pgt.MaxBatch) + int64(pos),
	}, nil
}

// chargeServiceFee 手续费走主币，进入国库子账户；未配置国库则免收
func (a *action) chargeServiceFee(cfg *pgt.PulseConfig, count int64) (*types.Receipt, error) {
	if cfg.ServiceFee <= 0 {
		return nil, nil
	}
	tk, err := a.getTokenomics()
	if err == types.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	total, err := safeMul(cfg.ServiceFee, count)
	if err != nil {
		return nil, err
	}
	receipt, err := a.coinsAccount.ExecTransfer(a.fromaddr, tk.Treasury, a.execaddr, total)
	if err != nil {
		glog.Error("pulsegame service fee", "addr", a.fromaddr, "fee", total, "err", err)
		return nil, err
	}
	return receipt, nil
}

func (a *action) commit(payload *pgt.TicketCommit) (*types.Receipt, error) {
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkCommitOpen(cfg, round); err != nil {
		return nil, err
	}
	entry := &pgt.CommitEntry{Nonce: payload.GetNonce(), Commitment: payload.GetCommitment()}
	ticket, err := a.buildTicket(round, a.fromaddr, entry, false, 0)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	stakeReceipt, err := a.tokenAccount.ExecFrozen(a.fromaddr, a.execaddr, round.StakeAmount)
	if err != nil {
		glog.Error("pulsegame commit freeze", "addr", a.fromaddr, "stake", round.StakeAmount, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, stakeReceipt)
	feeReceipt, err := a.chargeServiceFee(cfg, 1)
	if err != nil {
		return nil, err
	}
	if feeReceipt != nil {
		mergeReceipt(receipt, feeReceipt)
	}
	round.CommittedCount++
	round.VaultTokens, err = safeAdd(round.VaultTokens, round.StakeAmount)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, kvTicket(ticket), kvRound(round))
	receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketCommit, pgt.TicketOpCommit, ticket))
	return receipt, nil
}

func checkBatch(n int) error {
	if n < 1 || n > pgt.MaxBatch {
		return pgt.ErrBatchSize
	}
	return nil
}

func (a *action) commitBatch(payload *pgt.TicketCommitBatch) (*types.Receipt, error) {
	if err := checkBatch(len(payload.GetEntries())); err != nil {
		return nil, err
	}
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkCommitOpen(cfg, round); err != nil {
		return nil, err
	}
	// 全量预检，任何一条失败则整批回绝
	seen := make(map[uint64]bool, len(payload.GetEntries()))
	tickets := make([]*pgt.PulseTicket, 0, len(payload.GetEntries()))
	for i, entry := range payload.GetEntries() {
		if seen[entry.GetNonce()] {
			return nil, pgt.ErrTicketExists
		}
		seen[entry.GetNonce()] = true
		ticket, err := a.buildTicket(round, a.fromaddr, entry, false, i)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	count := int64(len(tickets))
	total, err := safeMul(round.StakeAmount, count)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	stakeReceipt, err := a.tokenAccount.ExecFrozen(a.fromaddr, a.execaddr, total)
	if err != nil {
		glog.Error("pulsegame commit batch freeze", "addr", a.fromaddr, "stake", total, "err", err)
		return nil, err
	}
	mergeReceipt(receipt, stakeReceipt)
	feeReceipt, err := a.chargeServiceFee(cfg, count)
	if err != nil {
		return nil, err
	}
	if feeReceipt != nil {
		mergeReceipt(receipt, feeReceipt)
	}
	round.CommittedCount += uint32(count)
	round.VaultTokens, err = safeAdd(round.VaultTokens, total)
	if err != nil {
		return nil, err
	}
	for _, ticket := range tickets {
		receipt.KV = append(receipt.KV, kvTicket(ticket))
		receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketCommit, pgt.TicketOpCommit, ticket))
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	return receipt, nil
}

func (a *action) commitBatchSigned(payload *pgt.TicketCommitBatchSigned) (*types.Receipt, error) {
	if err := checkBatch(len(payload.GetEntries())); err != nil {
		return nil, err
	}
	if len(payload.GetEvidence()) != len(payload.GetEntries()) {
		return nil, pgt.ErrEvidenceCount
	}
	if err := address.CheckAddress(payload.GetUser()); err != nil {
		return nil, err
	}
	cfg, err := a.getConfig()
	if err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkCommitOpen(cfg, round); err != nil {
		return nil, err
	}
	escrow, err := a.getEscrow(payload.GetUser())
	if err != nil {
		return nil, err
	}
	user := pgt.UserID(payload.GetUser())
	seen := make(map[uint64]bool, len(payload.GetEntries()))
	tickets := make([]*pgt.PulseTicket, 0, len(payload.GetEntries()))
	for i, entry := range payload.GetEntries() {
		msg := pgt.CommitMessage(a.progID(), round.RoundId, user, entry.GetNonce(), entry.GetCommitment())
		if err := verifyEvidence(payload.GetEvidence()[i], escrow.SignPubkey, msg); err != nil {
			return nil, err
		}
		if seen[entry.GetNonce()] {
			return nil, pgt.ErrTicketExists
		}
		seen[entry.GetNonce()] = true
		ticket, err := a.buildTicket(round, payload.GetUser(), entry, true, i)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	count := int64(len(tickets))
	total, err := safeMul(round.StakeAmount, count)
	if err != nil {
		return nil, err
	}
	// 押金从用户托管额度里扣，链上冻结在充值时已经完成
	if escrow.Balance < total {
		return nil, pgt.ErrEscrowShort
	}
	prevBalance := escrow.Balance
	escrow.Balance -= total
	escrow.UpdatedSlot = a.height
	receipt := &types.Receipt{Ty: types.ExecOk}
	feeReceipt, err := a.chargeServiceFee(cfg, count)
	if err != nil {
		return nil, err
	}
	if feeReceipt != nil {
		mergeReceipt(receipt, feeReceipt)
	}
	round.CommittedCount += uint32(count)
	round.VaultTokens, err = safeAdd(round.VaultTokens, total)
	if err != nil {
		return nil, err
	}
	for _, ticket := range tickets {
		receipt.KV = append(receipt.KV, kvTicket(ticket))
		receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketCommit, pgt.TicketOpCommit, ticket))
	}
	receipt.KV = append(receipt.KV, kvEscrow(escrow), kvRound(round))
	receipt.Logs = append(receipt.Logs, escrowLog(pgt.EscrowOpDebit, escrow.Addr, prevBalance, escrow.Balance))
	return receipt, nil
}

// checkRevealOpen 披露路径的公共闸门，暂停不拦截披露
func (a *action) checkRevealOpen(round *pgt.PulseRound) error {
	if round.Finalized {
		return pgt.ErrAlreadyFinalized
	}
	if !round.PulseSet {
		return pgt.ErrPulseNotSet
	}
	if a.height > round.RevealDeadline {
		return pgt.ErrRevealClosed
	}
	return nil
}

func (a *action) applyReveal(round *pgt.PulseRound, ticket *pgt.PulseTicket, entry *pgt.RevealEntry) error {
	if ticket.Revealed || ticket.Processed {
		return pgt.ErrTicketNotRevealable
	}
	if entry.GetGuess() > 1 {
		return pgt.ErrBadGuess
	}
	if len(entry.GetSalt()) != pgt.SaltBytes {
		return pgt.ErrBadSaltSize
	}
	user := pgt.UserID(ticket.Addr)
	commitment := pgt.CommitmentHash(round.RoundId, user, ticket.Nonce, entry.GetGuess(), entry.GetSalt())
	if !bytes.Equal(commitment, ticket.Commitment) {
		return pgt.ErrCommitmentMismatch
	}
	if pgt.DeriveBitIndex(round.RoundId, user, ticket.Nonce) != ticket.BitIndex {
		return pgt.ErrBitIndexMismatch
	}
	ticket.Revealed = true
	ticket.Guess = entry.GetGuess()
	ticket.Win = pgt.PulseBit(round.Pulse, ticket.BitIndex) == entry.GetGuess()
	ticket.RevealSlot = a.height
	round.RevealedCount++
	if ticket.Win {
		round.WinCount++
	}
	return nil
}

func (a *action) reveal(payload *pgt.TicketReveal) (*types.Receipt, error) {
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkRevealOpen(round); err != nil {
		return nil, err
	}
	ticket, err := a.getTicket(round.RoundId, a.fromaddr, payload.GetNonce())
	if err != nil {
		return nil, err
	}
	entry := &pgt.RevealEntry{Nonce: payload.GetNonce(), Guess: payload.GetGuess(), Salt: payload.GetSalt()}
	if err := a.applyReveal(round, ticket, entry); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvTicket(ticket), kvRound(round)},
		Logs: []*types.ReceiptLog{ticketLog(pgt.TyLogTicketReveal, pgt.TicketOpReveal, ticket)},
	}, nil
}

func (a *action) revealBatch(payload *pgt.TicketRevealBatch) (*types.Receipt, error) {
	if err := checkBatch(len(payload.GetEntries())); err != nil {
		return nil, err
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkRevealOpen(round); err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	seen := make(map[uint64]bool, len(payload.GetEntries()))
	for _, entry := range payload.GetEntries() {
		if seen[entry.GetNonce()] {
			return nil, pgt.ErrTicketNotRevealable
		}
		seen[entry.GetNonce()] = true
		ticket, err := a.getTicket(round.RoundId, a.fromaddr, entry.GetNonce())
		if err != nil {
			return nil, err
		}
		if err := a.applyReveal(round, ticket, entry); err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, kvTicket(ticket))
		receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketReveal, pgt.TicketOpReveal, ticket))
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	return receipt, nil
}

func (a *action) revealBatchSigned(payload *pgt.TicketRevealBatchSigned) (*types.Receipt, error) {
	if err := checkBatch(len(payload.GetEntries())); err != nil {
		return nil, err
	}
	if len(payload.GetEvidence()) != len(payload.GetEntries()) {
		return nil, pgt.ErrEvidenceCount
	}
	round, err := a.getRound(payload.GetRoundId())
	if err != nil {
		return nil, err
	}
	if err := a.checkRevealOpen(round); err != nil {
		return nil, err
	}
	escrow, err := a.getEscrow(payload.GetUser())
	if err != nil {
		return nil, err
	}
	user := pgt.UserID(payload.GetUser())
	receipt := &types.Receipt{Ty: types.ExecOk}
	seen := make(map[uint64]bool, len(payload.GetEntries()))
	for i, entry := range payload.GetEntries() {
		msg := pgt.RevealMessage(a.progID(), round.RoundId, user, entry.GetNonce(), entry.GetGuess(), entry.GetSalt())
		if err := verifyEvidence(payload.GetEvidence()[i], escrow.SignPubkey, msg); err != nil {
			return nil, err
		}
		if seen[entry.GetNonce()] {
			return nil, pgt.ErrTicketNotRevealable
		}
		seen[entry.GetNonce()] = true
		ticket, err := a.getTicket(round.RoundId, payload.GetUser(), entry.GetNonce())
		if err != nil {
			return nil, err
		}
		if err := a.applyReveal(round, ticket, entry); err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, kvTicket(ticket))
		receipt.Logs = append(receipt.Logs, ticketLog(pgt.TyLogTicketReveal, pgt.TicketOpReveal, ticket))
	}
	receipt.KV = append(receipt.KV, kvRound(round))
	return receipt, nil
}
