package types

import (
	"encoding/json"
	"reflect"

	log "github.com/inconshreveable/log15"

	"github.com/33cn/pulsegame/types"
)

var tlog = log.New("module", PulsegameX)

// ExecerPulsegame 执行器名字节串
var ExecerPulsegame = []byte(PulsegameX)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerPulsegame)
	types.RegistorExecutor(PulsegameX, NewType())
}

// PulsegameType 执行器类型
type PulsegameType struct {
	types.ExecTypeBase
}

// NewType 创建执行器类型对象
func NewType() *PulsegameType {
	c := &PulsegameType{}
	c.SetChild(c)
	return c
}

// GetName 获取执行器名
func (t *PulsegameType) GetName() string {
	return PulsegameX
}

// GetPayload 获取payload原型
func (t *PulsegameType) GetPayload() types.Message {
	return &PulsegameAction{}
}

// GetTypeMap 动作名到动作类型的映射
func (t *PulsegameType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"CreateConfig":          PulsegameActionCreateConfig,
		"SetPause":              PulsegameActionSetPause,
		"UpdateStake":           PulsegameActionUpdateStake,
		"SetClaimGrace":         PulsegameActionSetClaimGrace,
		"SetServiceFee":         PulsegameActionSetServiceFee,
		"SetOracleKey":          PulsegameActionSetOracleKey,
		"MigrateConfig":         PulsegameActionMigrateConfig,
		"CloseConfig":           PulsegameActionCloseConfig,
		"CreateRegistry":        PulsegameActionCreateRegistry,
		"CreateRound":           PulsegameActionCreateRound,
		"CreateRoundAuto":       PulsegameActionCreateRoundAuto,
		"FundVault":             PulsegameActionFundVault,
		"Commit":                PulsegameActionCommit,
		"CommitBatch":           PulsegameActionCommitBatch,
		"CommitBatchSigned":     PulsegameActionCommitBatchSigned,
		"Reveal":                PulsegameActionReveal,
		"RevealBatch":           PulsegameActionRevealBatch,
		"RevealBatchSigned":     PulsegameActionRevealBatchSigned,
		"SetPulse":              PulsegameActionSetPulse,
		"SetPulseMock":          PulsegameActionSetPulseMock,
		"FinalizeRound":         PulsegameActionFinalizeRound,
		"SettleRound":           PulsegameActionSettleRound,
		"ClaimReward":           PulsegameActionClaimReward,
		"SweepRound":            PulsegameActionSweepRound,
		"RefundTicket":          PulsegameActionRefundTicket,
		"CloseRound":            PulsegameActionCloseRound,
		"CloseTicket":           PulsegameActionCloseTicket,
		"CreateEscrow":          PulsegameActionCreateEscrow,
		"EscrowDeposit":         PulsegameActionEscrowDeposit,
		"EscrowWithdraw":        PulsegameActionEscrowWithdraw,
		"CreateOracleSet":       PulsegameActionCreateOracleSet,
		"AddOracle":             PulsegameActionAddOracle,
		"RemoveOracle":          PulsegameActionRemoveOracle,
		"SetOracleThreshold":    PulsegameActionSetOracleThreshold,
		"CreateTokenomics":      PulsegameActionCreateTokenomics,
		"UpdateTokenomics":      PulsegameActionUpdateTokenomics,
		"WithdrawTreasury":      PulsegameActionWithdrawTreasury,
		"WithdrawTreasuryToken": PulsegameActionWithdrawTreasuryToken,
	}
}

// GetLogMap 日志类型到收据结构的映射
func (t *PulsegameType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogPulseConfig:   {Ty: reflect.TypeOf(ReceiptPulseConfig{}), Name: "LogPulseConfig"},
		TyLogRegistry:      {Ty: reflect.TypeOf(ReceiptRegistry{}), Name: "LogRegistry"},
		TyLogRoundCreate:   {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogRoundCreate"},
		TyLogRoundPulse:    {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogRoundPulse"},
		TyLogRoundFinalize: {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogRoundFinalize"},
		TyLogRoundSettle:   {Ty: reflect.TypeOf(ReceiptRoundSettle{}), Name: "LogRoundSettle"},
		TyLogRoundSweep:    {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogRoundSweep"},
		TyLogRoundClose:    {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogRoundClose"},
		TyLogTicketCommit:  {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketCommit"},
		TyLogTicketReveal:  {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketReveal"},
		TyLogTicketSettle:  {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketSettle"},
		TyLogTicketClaim:   {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketClaim"},
		TyLogTicketRefund:  {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketRefund"},
		TyLogTicketClose:   {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketClose"},
		TyLogTicketSweep:   {Ty: reflect.TypeOf(ReceiptPulseTicket{}), Name: "LogTicketSweep"},
		TyLogEscrow:        {Ty: reflect.TypeOf(ReceiptEscrow{}), Name: "LogEscrow"},
		TyLogOracleSet:     {Ty: reflect.TypeOf(ReceiptOracleSet{}), Name: "LogOracleSet"},
		TyLogTokenomics:    {Ty: reflect.TypeOf(ReceiptTokenomics{}), Name: "LogTokenomics"},
		TyLogVaultFund:     {Ty: reflect.TypeOf(ReceiptPulseRound{}), Name: "LogVaultFund"},
	}
}

// CreateTx 根据动作名和json参数构造原始交易
func (t *PulsegameType) CreateTx(action string, msg json.RawMessage) (*types.Transaction, error) {
	tlog.Debug("pulsegame CreateTx", "action", action)
	if _, ok := t.GetTypeMap()[action]; !ok {
		return nil, types.ErrActionNotSupport
	}
	payload, err := buildAction(action, msg)
	if err != nil {
		tlog.Error("pulsegame CreateTx", "action", action, "err", err)
		return nil, err
	}
	return CreateRawTx(payload)
}

// CreateRawTx 将动作打包成未签名交易
func CreateRawTx(payload *PulsegameAction) (*types.Transaction, error) {
	tx := &types.Transaction{Payload: types.Encode(payload)}
	return types.FormatTx(PulsegameX, tx)
}

// buildAction 通过oneof包装类型的反射按动作名填充payload
func buildAction(action string, msg json.RawMessage) (*PulsegameAction, error) {
	want := "PulsegameAction_" + action
	for _, w := range (&PulsegameAction{}).XXX_OneofWrappers() {
		wt := reflect.TypeOf(w).Elem()
		if wt.Name() != want {
			continue
		}
		wrapper := reflect.New(wt)
		field := wrapper.Elem().Field(0)
		sub := reflect.New(field.Type().Elem())
		if len(msg) > 0 {
			if err := types.JSONToPB(msg, sub.Interface().(types.Message)); err != nil {
				return nil, err
			}
		}
		field.Set(sub)
		payload := &PulsegameAction{Ty: NewType().GetTypeMap()[action]}
		payload.Value = wrapper.Interface().(isPulsegameAction_Value)
		return payload, nil
	}
	return nil, types.ErrActionNotSupport
}
