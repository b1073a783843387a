package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func addRoundStatusKV(status int32, index int64, roundID uint64) *types.KeyValue {
	record := &pgt.RoundRecord{RoundId: roundID, Index: index}
	return &types.KeyValue{Key: calcRoundStatusKey(status, index), Value: types.Encode(record)}
}

func delRoundStatusKV(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcRoundStatusKey(status, index), Value: nil}
}

func addTicketIndexKV(ticket *pgt.PulseTicket) []*types.KeyValue {
	record := &pgt.TicketRecord{
		RoundId: ticket.RoundId,
		Addr:    ticket.Addr,
		Nonce:   ticket.Nonce,
		Index:   ticket.Index,
	}
	value := types.Encode(record)
	return []*types.KeyValue{
		{Key: calcTicketAddrKey(ticket.Addr, ticket.Index), Value: value},
		{Key: calcTicketRoundKey(ticket.RoundId, ticket.Index), Value: value},
	}
}

func delTicketIndexKV(ticket *pgt.PulseTicket) []*types.KeyValue {
	return []*types.KeyValue{
		{Key: calcTicketAddrKey(ticket.Addr, ticket.Index), Value: nil},
		{Key: calcTicketRoundKey(ticket.RoundId, ticket.Index), Value: nil},
	}
}

// roundStatusKV 轮次状态索引只跟着状态迁移走，其余回执不动索引
func roundStatusKV(ty int32, receipt *pgt.ReceiptPulseRound) []*types.KeyValue {
	round := receipt.GetRound()
	if round == nil {
		return nil
	}
	switch ty {
	case pgt.TyLogRoundCreate:
		return []*types.KeyValue{addRoundStatusKV(round.Status, round.Index, round.RoundId)}
	case pgt.TyLogRoundPulse, pgt.TyLogRoundFinalize:
		return []*types.KeyValue{
			delRoundStatusKV(receipt.PrevStatus, round.PrevIndex),
			addRoundStatusKV(round.Status, round.Index, round.RoundId),
		}
	case pgt.TyLogRoundClose:
		return []*types.KeyValue{delRoundStatusKV(receipt.PrevStatus, round.Index)}
	}
	return nil
}

func ticketIndexKV(ty int32, receipt *pgt.ReceiptPulseTicket) []*types.KeyValue {
	ticket := receipt.GetTicket()
	if ticket == nil {
		return nil
	}
	switch ty {
	case pgt.TyLogTicketCommit:
		return addTicketIndexKV(ticket)
	case pgt.TyLogTicketClose:
		return delTicketIndexKV(ticket)
	}
	return nil
}

// execLocalAll 全部动作共用的本地索引更新，由回执日志驱动
func (g *Pulsegame) execLocalAll(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	for _, item := range receiptData.Logs {
		switch item.Ty {
		case pgt.TyLogRoundCreate, pgt.TyLogRoundPulse, pgt.TyLogRoundFinalize, pgt.TyLogRoundClose:
			var receipt pgt.ReceiptPulseRound
			if err := types.Decode(item.Log, &receipt); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, roundStatusKV(item.Ty, &receipt)...)
		case pgt.TyLogTicketCommit, pgt.TyLogTicketClose:
			var receipt pgt.ReceiptPulseTicket
			if err := types.Decode(item.Log, &receipt); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, ticketIndexKV(item.Ty, &receipt)...)
		}
	}
	return dbSet, nil
}

// ExecLocal_CreateConfig 本地索引更新
func (g *Pulsegame) ExecLocal_CreateConfig(payload *pgt.PulseConfigCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetPause 本地索引更新
func (g *Pulsegame) ExecLocal_SetPause(payload *pgt.PulseConfigPause, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_UpdateStake 本地索引更新
func (g *Pulsegame) ExecLocal_UpdateStake(payload *pgt.PulseConfigStake, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetClaimGrace 本地索引更新
func (g *Pulsegame) ExecLocal_SetClaimGrace(payload *pgt.PulseConfigClaimGrace, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetServiceFee 本地索引更新
func (g *Pulsegame) ExecLocal_SetServiceFee(payload *pgt.PulseConfigServiceFee, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetOracleKey 本地索引更新
func (g *Pulsegame) ExecLocal_SetOracleKey(payload *pgt.PulseConfigOracleKey, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_MigrateConfig 本地索引更新
func (g *Pulsegame) ExecLocal_MigrateConfig(payload *pgt.PulseConfigMigrate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CloseConfig 本地索引更新
func (g *Pulsegame) ExecLocal_CloseConfig(payload *pgt.PulseConfigClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateRegistry 本地索引更新
func (g *Pulsegame) ExecLocal_CreateRegistry(payload *pgt.RegistryCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateRound 本地索引更新
func (g *Pulsegame) ExecLocal_CreateRound(payload *pgt.RoundCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateRoundAuto 本地索引更新
func (g *Pulsegame) ExecLocal_CreateRoundAuto(payload *pgt.RoundCreateAuto, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_FundVault 本地索引更新
func (g *Pulsegame) ExecLocal_FundVault(payload *pgt.VaultFund, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_Commit 本地索引更新
func (g *Pulsegame) ExecLocal_Commit(payload *pgt.TicketCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CommitBatch 本地索引更新
func (g *Pulsegame) ExecLocal_CommitBatch(payload *pgt.TicketCommitBatch, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CommitBatchSigned 本地索引更新
func (g *Pulsegame) ExecLocal_CommitBatchSigned(payload *pgt.TicketCommitBatchSigned, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_Reveal 本地索引更新
func (g *Pulsegame) ExecLocal_Reveal(payload *pgt.TicketReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_RevealBatch 本地索引更新
func (g *Pulsegame) ExecLocal_RevealBatch(payload *pgt.TicketRevealBatch, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_RevealBatchSigned 本地索引更新
func (g *Pulsegame) ExecLocal_RevealBatchSigned(payload *pgt.TicketRevealBatchSigned, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetPulse 本地索引更新
func (g *Pulsegame) ExecLocal_SetPulse(payload *pgt.PulseSet, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetPulseMock 本地索引更新
func (g *Pulsegame) ExecLocal_SetPulseMock(payload *pgt.PulseSetMock, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_FinalizeRound 本地索引更新
func (g *Pulsegame) ExecLocal_FinalizeRound(payload *pgt.RoundFinalize, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SettleRound 本地索引更新
func (g *Pulsegame) ExecLocal_SettleRound(payload *pgt.RoundSettle, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_ClaimReward 本地索引更新
func (g *Pulsegame) ExecLocal_ClaimReward(payload *pgt.RewardClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SweepRound 本地索引更新
func (g *Pulsegame) ExecLocal_SweepRound(payload *pgt.RoundSweep, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_RefundTicket 本地索引更新
func (g *Pulsegame) ExecLocal_RefundTicket(payload *pgt.TicketRefund, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CloseRound 本地索引更新
func (g *Pulsegame) ExecLocal_CloseRound(payload *pgt.RoundClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CloseTicket 本地索引更新
func (g *Pulsegame) ExecLocal_CloseTicket(payload *pgt.TicketClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateEscrow 本地索引更新
func (g *Pulsegame) ExecLocal_CreateEscrow(payload *pgt.EscrowCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_EscrowDeposit 本地索引更新
func (g *Pulsegame) ExecLocal_EscrowDeposit(payload *pgt.EscrowDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_EscrowWithdraw 本地索引更新
func (g *Pulsegame) ExecLocal_EscrowWithdraw(payload *pgt.EscrowWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateOracleSet 本地索引更新
func (g *Pulsegame) ExecLocal_CreateOracleSet(payload *pgt.OracleSetCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_AddOracle 本地索引更新
func (g *Pulsegame) ExecLocal_AddOracle(payload *pgt.OracleAdd, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_RemoveOracle 本地索引更新
func (g *Pulsegame) ExecLocal_RemoveOracle(payload *pgt.OracleRemove, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_SetOracleThreshold 本地索引更新
func (g *Pulsegame) ExecLocal_SetOracleThreshold(payload *pgt.OracleThreshold, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_CreateTokenomics 本地索引更新
func (g *Pulsegame) ExecLocal_CreateTokenomics(payload *pgt.TokenomicsCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_UpdateTokenomics 本地索引更新
func (g *Pulsegame) ExecLocal_UpdateTokenomics(payload *pgt.TokenomicsUpdate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_WithdrawTreasury 本地索引更新
func (g *Pulsegame) ExecLocal_WithdrawTreasury(payload *pgt.TreasuryWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}

// ExecLocal_WithdrawTreasuryToken 本地索引更新
func (g *Pulsegame) ExecLocal_WithdrawTreasuryToken(payload *pgt.TreasuryWithdrawToken, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocalAll(receiptData)
}
