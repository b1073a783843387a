package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

// roundStatusRollbackKV 回滚时按回执反向恢复轮次状态索引
func roundStatusRollbackKV(ty int32, receipt *pgt.ReceiptPulseRound) []*types.KeyValue {
	round := receipt.GetRound()
	if round == nil {
		return nil
	}
	switch ty {
	case pgt.TyLogRoundCreate:
		return []*types.KeyValue{delRoundStatusKV(round.Status, round.Index)}
	case pgt.TyLogRoundPulse, pgt.TyLogRoundFinalize:
		return []*types.KeyValue{
			delRoundStatusKV(round.Status, round.Index),
			addRoundStatusKV(receipt.PrevStatus, round.PrevIndex, round.RoundId),
		}
	case pgt.TyLogRoundClose:
		return []*types.KeyValue{addRoundStatusKV(receipt.PrevStatus, round.Index, round.RoundId)}
	}
	return nil
}

func ticketIndexRollbackKV(ty int32, receipt *pgt.ReceiptPulseTicket) []*types.KeyValue {
	ticket := receipt.GetTicket()
	if ticket == nil {
		return nil
	}
	switch ty {
	case pgt.TyLogTicketCommit:
		return delTicketIndexKV(ticket)
	case pgt.TyLogTicketClose:
		return addTicketIndexKV(ticket)
	}
	return nil
}

func (g *Pulsegame) execDelLocalAll(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	for _, item := range receiptData.Logs {
		switch item.Ty {
		case pgt.TyLogRoundCreate, pgt.TyLogRoundPulse, pgt.TyLogRoundFinalize, pgt.TyLogRoundClose:
			var receipt pgt.ReceiptPulseRound
			if err := types.Decode(item.Log, &receipt); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, roundStatusRollbackKV(item.Ty, &receipt)...)
		case pgt.TyLogTicketCommit, pgt.TyLogTicketClose:
			var receipt pgt.ReceiptPulseTicket
			if err := types.Decode(item.Log, &receipt); err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, ticketIndexRollbackKV(item.Ty, &receipt)...)
		}
	}
	return dbSet, nil
}

// ExecDelLocal_CreateConfig 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateConfig(payload *pgt.PulseConfigCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetPause 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetPause(payload *pgt.PulseConfigPause, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_UpdateStake 本地索引回滚
func (g *Pulsegame) ExecDelLocal_UpdateStake(payload *pgt.PulseConfigStake, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetClaimGrace 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetClaimGrace(payload *pgt.PulseConfigClaimGrace, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetServiceFee 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetServiceFee(payload *pgt.PulseConfigServiceFee, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetOracleKey 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetOracleKey(payload *pgt.PulseConfigOracleKey, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_MigrateConfig 本地索引回滚
func (g *Pulsegame) ExecDelLocal_MigrateConfig(payload *pgt.PulseConfigMigrate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CloseConfig 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CloseConfig(payload *pgt.PulseConfigClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateRegistry 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateRegistry(payload *pgt.RegistryCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateRound 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateRound(payload *pgt.RoundCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateRoundAuto 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateRoundAuto(payload *pgt.RoundCreateAuto, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_FundVault 本地索引回滚
func (g *Pulsegame) ExecDelLocal_FundVault(payload *pgt.VaultFund, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_Commit 本地索引回滚
func (g *Pulsegame) ExecDelLocal_Commit(payload *pgt.TicketCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CommitBatch 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CommitBatch(payload *pgt.TicketCommitBatch, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CommitBatchSigned 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CommitBatchSigned(payload *pgt.TicketCommitBatchSigned, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_Reveal 本地索引回滚
func (g *Pulsegame) ExecDelLocal_Reveal(payload *pgt.TicketReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_RevealBatch 本地索引回滚
func (g *Pulsegame) ExecDelLocal_RevealBatch(payload *pgt.TicketRevealBatch, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_RevealBatchSigned 本地索引回滚
func (g *Pulsegame) ExecDelLocal_RevealBatchSigned(payload *pgt.TicketRevealBatchSigned, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetPulse 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetPulse(payload *pgt.PulseSet, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetPulseMock 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetPulseMock(payload *pgt.PulseSetMock, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_FinalizeRound 本地索引回滚
func (g *Pulsegame) ExecDelLocal_FinalizeRound(payload *pgt.RoundFinalize, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SettleRound 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SettleRound(payload *pgt.RoundSettle, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_ClaimReward 本地索引回滚
func (g *Pulsegame) ExecDelLocal_ClaimReward(payload *pgt.RewardClaim, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SweepRound 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SweepRound(payload *pgt.RoundSweep, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_RefundTicket 本地索引回滚
func (g *Pulsegame) ExecDelLocal_RefundTicket(payload *pgt.TicketRefund, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CloseRound 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CloseRound(payload *pgt.RoundClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CloseTicket 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CloseTicket(payload *pgt.TicketClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateEscrow 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateEscrow(payload *pgt.EscrowCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_EscrowDeposit 本地索引回滚
func (g *Pulsegame) ExecDelLocal_EscrowDeposit(payload *pgt.EscrowDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_EscrowWithdraw 本地索引回滚
func (g *Pulsegame) ExecDelLocal_EscrowWithdraw(payload *pgt.EscrowWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateOracleSet 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateOracleSet(payload *pgt.OracleSetCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_AddOracle 本地索引回滚
func (g *Pulsegame) ExecDelLocal_AddOracle(payload *pgt.OracleAdd, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_RemoveOracle 本地索引回滚
func (g *Pulsegame) ExecDelLocal_RemoveOracle(payload *pgt.OracleRemove, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_SetOracleThreshold 本地索引回滚
func (g *Pulsegame) ExecDelLocal_SetOracleThreshold(payload *pgt.OracleThreshold, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_CreateTokenomics 本地索引回滚
func (g *Pulsegame) ExecDelLocal_CreateTokenomics(payload *pgt.TokenomicsCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_UpdateTokenomics 本地索引回滚
func (g *Pulsegame) ExecDelLocal_UpdateTokenomics(payload *pgt.TokenomicsUpdate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_WithdrawTreasury 本地索引回滚
func (g *Pulsegame) ExecDelLocal_WithdrawTreasury(payload *pgt.TreasuryWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}

// ExecDelLocal_WithdrawTreasuryToken 本地索引回滚
func (g *Pulsegame) ExecDelLocal_WithdrawTreasuryToken(payload *pgt.TreasuryWithdrawToken, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocalAll(receiptData)
}
