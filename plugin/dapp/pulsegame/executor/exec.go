package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

// Exec_CreateConfig 创建全局配置
func (g *Pulsegame) Exec_CreateConfig(payload *pgt.PulseConfigCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createConfig(payload)
}

// Exec_SetPause 暂停或恢复游戏
func (g *Pulsegame) Exec_SetPause(payload *pgt.PulseConfigPause, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setPause(payload)
}

// Exec_UpdateStake 调整后续轮次的押金额
func (g *Pulsegame) Exec_UpdateStake(payload *pgt.PulseConfigStake, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.updateStake(payload)
}

// Exec_SetClaimGrace 调整领奖宽限期
func (g *Pulsegame) Exec_SetClaimGrace(payload *pgt.PulseConfigClaimGrace, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setClaimGrace(payload)
}

// Exec_SetServiceFee 调整提交手续费
func (g *Pulsegame) Exec_SetServiceFee(payload *pgt.PulseConfigServiceFee, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setServiceFee(payload)
}

// Exec_SetOracleKey 更换预言机公钥
func (g *Pulsegame) Exec_SetOracleKey(payload *pgt.PulseConfigOracleKey, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setOracleKey(payload)
}

// Exec_MigrateConfig 配置版本迁移
func (g *Pulsegame) Exec_MigrateConfig(payload *pgt.PulseConfigMigrate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.migrateConfig(payload)
}

// Exec_CloseConfig 删除全局配置
func (g *Pulsegame) Exec_CloseConfig(payload *pgt.PulseConfigClose, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.closeConfig(payload)
}

// Exec_CreateRegistry 创建轮次登记表
func (g *Pulsegame) Exec_CreateRegistry(payload *pgt.RegistryCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createRegistry(payload)
}

// Exec_CreateRound 指定编号创建轮次
func (g *Pulsegame) Exec_CreateRound(payload *pgt.RoundCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createRound(payload)
}

// Exec_CreateRoundAuto 自动编号创建轮次
func (g *Pulsegame) Exec_CreateRoundAuto(payload *pgt.RoundCreateAuto, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createRoundAuto(payload)
}

// Exec_FundVault 注资轮次托管池
func (g *Pulsegame) Exec_FundVault(payload *pgt.VaultFund, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.fundVault(payload)
}

// Exec_Commit 提交单张承诺票
func (g *Pulsegame) Exec_Commit(payload *pgt.TicketCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.commit(payload)
}

// Exec_CommitBatch 批量提交承诺票
func (g *Pulsegame) Exec_CommitBatch(payload *pgt.TicketCommitBatch, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.commitBatch(payload)
}

// Exec_CommitBatchSigned 代理提交带签名的批量承诺
func (g *Pulsegame) Exec_CommitBatchSigned(payload *pgt.TicketCommitBatchSigned, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.commitBatchSigned(payload)
}

// Exec_Reveal 披露单张票
func (g *Pulsegame) Exec_Reveal(payload *pgt.TicketReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.reveal(payload)
}

// Exec_RevealBatch 批量披露
func (g *Pulsegame) Exec_RevealBatch(payload *pgt.TicketRevealBatch, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.revealBatch(payload)
}

// Exec_RevealBatchSigned 代理披露带签名的批量
func (g *Pulsegame) Exec_RevealBatchSigned(payload *pgt.TicketRevealBatchSigned, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.revealBatchSigned(payload)
}

// Exec_SetPulse 预言机签名落地脉冲
func (g *Pulsegame) Exec_SetPulse(payload *pgt.PulseSet, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setPulse(payload)
}

// Exec_SetPulseMock 测试模式直写脉冲
func (g *Pulsegame) Exec_SetPulseMock(payload *pgt.PulseSetMock, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setPulseMock(payload)
}

// Exec_FinalizeRound 终结轮次
func (g *Pulsegame) Exec_FinalizeRound(payload *pgt.RoundFinalize, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.finalizeRound(payload)
}

// Exec_SettleRound 批量结算票据
func (g *Pulsegame) Exec_SettleRound(payload *pgt.RoundSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.settleRound(payload)
}

// Exec_ClaimReward 赢家领奖
func (g *Pulsegame) Exec_ClaimReward(payload *pgt.RewardClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.claimReward(payload)
}

// Exec_SweepRound 清扫过期未领的奖金
func (g *Pulsegame) Exec_SweepRound(payload *pgt.RoundSweep, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.sweepRound(payload)
}

// Exec_RefundTicket 脉冲缺席时退款
func (g *Pulsegame) Exec_RefundTicket(payload *pgt.TicketRefund, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.refundTicket(payload)
}

// Exec_CloseRound 删除已了结轮次
func (g *Pulsegame) Exec_CloseRound(payload *pgt.RoundClose, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.closeRound(payload)
}

// Exec_CloseTicket 删除已了结票据
func (g *Pulsegame) Exec_CloseTicket(payload *pgt.TicketClose, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.closeTicket(payload)
}

// Exec_CreateEscrow 注册代签托管账户
func (g *Pulsegame) Exec_CreateEscrow(payload *pgt.EscrowCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createEscrow(payload)
}

// Exec_EscrowDeposit 托管充值
func (g *Pulsegame) Exec_EscrowDeposit(payload *pgt.EscrowDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.escrowDeposit(payload)
}

// Exec_EscrowWithdraw 托管取回
func (g *Pulsegame) Exec_EscrowWithdraw(payload *pgt.EscrowWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.escrowWithdraw(payload)
}

// Exec_CreateOracleSet 创建预言机集合
func (g *Pulsegame) Exec_CreateOracleSet(payload *pgt.OracleSetCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createOracleSet(payload)
}

// Exec_AddOracle 添加预言机公钥
func (g *Pulsegame) Exec_AddOracle(payload *pgt.OracleAdd, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.addOracle(payload)
}

// Exec_RemoveOracle 移除预言机公钥
func (g *Pulsegame) Exec_RemoveOracle(payload *pgt.OracleRemove, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.removeOracle(payload)
}

// Exec_SetOracleThreshold 调整预言机门限
func (g *Pulsegame) Exec_SetOracleThreshold(payload *pgt.OracleThreshold, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setOracleThreshold(payload)
}

// Exec_CreateTokenomics 创建代币经济参数
func (g *Pulsegame) Exec_CreateTokenomics(payload *pgt.TokenomicsCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.createTokenomics(payload)
}

// Exec_UpdateTokenomics 调整代币经济参数
func (g *Pulsegame) Exec_UpdateTokenomics(payload *pgt.TokenomicsUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.updateTokenomics(payload)
}

// Exec_WithdrawTreasury 从国库提取主币
func (g *Pulsegame) Exec_WithdrawTreasury(payload *pgt.TreasuryWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.withdrawTreasury(payload)
}

// Exec_WithdrawTreasuryToken 从国库提取游戏代币
func (g *Pulsegame) Exec_WithdrawTreasuryToken(payload *pgt.TreasuryWithdrawToken, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := newAction(g, tx, index)
	if err != nil {
		return nil, err
	}
	return action.withdrawTreasuryToken(payload)
}
