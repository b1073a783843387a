package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/33cn/pulsegame/common/address"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func roundCmds() []*cobra.Command {
	return []*cobra.Command{
		CreateRoundRawTxCmd(),
		CreateRoundAutoRawTxCmd(),
		FundVaultRawTxCmd(),
		SetPulseRawTxCmd(),
		SetPulseMockRawTxCmd(),
		FinalizeRoundRawTxCmd(),
		SettleRoundRawTxCmd(),
		SweepRoundRawTxCmd(),
		CloseRoundRawTxCmd(),
	}
}

// parseTicketRefs 解析"addr:nonce"逗号串成票据引用列表
func parseTicketRefs(s string) ([]*pgt.TicketRef, error) {
	if s == "" {
		return nil, nil
	}
	var refs []*pgt.TicketRef
	for _, item := range strings.Split(s, ",") {
		parts := strings.Split(item, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad ticket ref %q, want addr:nonce", item)
		}
		nonce, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad nonce in ticket ref %q", item)
		}
		refs = append(refs, &pgt.TicketRef{Addr: parts[0], Nonce: nonce})
	}
	return refs, nil
}

// CreateRoundRawTxCmd 指定编号和截止高度建轮
func CreateRoundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_round",
		Short: "Create a round with explicit id and deadlines",
		Run:   createRound,
	}
	addCreateRoundFlags(cmd)
	return cmd
}

func addCreateRoundFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().Int64P("commitDeadline", "c", 0, "commit deadline height")
	cmd.MarkFlagRequired("commitDeadline")
	cmd.Flags().Int64P("revealDeadline", "d", 0, "reveal deadline height")
	cmd.MarkFlagRequired("revealDeadline")
	cmd.Flags().Uint32P("target", "t", 0, "beacon pulse index this round settles against")
}

func createRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	commitDeadline, _ := cmd.Flags().GetInt64("commitDeadline")
	revealDeadline, _ := cmd.Flags().GetInt64("revealDeadline")
	target, _ := cmd.Flags().GetUint32("target")

	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCreateRound,
		Value: &pgt.PulsegameAction_CreateRound{CreateRound: &pgt.RoundCreate{
			RoundId:          round,
			CommitDeadline:   commitDeadline,
			RevealDeadline:   revealDeadline,
			PulseIndexTarget: target,
		}},
	}
	outputRawTx(payload)
}

// CreateRoundAutoRawTxCmd 自动编号建轮，窗口相对当前高度
func CreateRoundAutoRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_round_auto",
		Short: "Create a round with the next registry id and relative windows",
		Run:   createRoundAuto,
	}
	cmd.Flags().Int64P("commitWindow", "c", 0, "commit window in blocks, 0 means config default")
	cmd.Flags().Int64P("revealWindow", "d", 0, "reveal window in blocks, 0 means config default")
	cmd.Flags().Uint32P("target", "t", 0, "beacon pulse index this round settles against")
	return cmd
}

func createRoundAuto(cmd *cobra.Command, args []string) {
	commitWindow, _ := cmd.Flags().GetInt64("commitWindow")
	revealWindow, _ := cmd.Flags().GetInt64("revealWindow")
	target, _ := cmd.Flags().GetUint32("target")

	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCreateRoundAuto,
		Value: &pgt.PulsegameAction_CreateRoundAuto{CreateRoundAuto: &pgt.RoundCreateAuto{
			CommitWindow:     commitWindow,
			RevealWindow:     revealWindow,
			PulseIndexTarget: target,
		}},
	}
	outputRawTx(payload)
}

// FundVaultRawTxCmd 给奖池注资
func FundVaultRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund_vault",
		Short: "Fund the reward vault of a round",
		Run:   fundVault,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func fundVault(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	amount, _ := cmd.Flags().GetFloat64("amount")

	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionFundVault,
		Value: &pgt.PulsegameAction_FundVault{FundVault: &pgt.VaultFund{
			RoundId: round,
			Amount:  amountToInt64(amount),
		}},
	}
	outputRawTx(payload)
}

// SetPulseRawTxCmd 提交带预言机签名的随机脉冲
func SetPulseRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_pulse",
		Short: "Attach a beacon pulse with its oracle signature",
		Run:   setPulse,
	}
	addSetPulseFlags(cmd)
	return cmd
}

func addSetPulseFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("pulse", "p", "", "hex encoded 64 byte pulse")
	cmd.MarkFlagRequired("pulse")
	cmd.Flags().Uint32P("target", "t", 0, "beacon pulse index, must match the round")
	cmd.Flags().StringP("pubkey", "k", "", "hex encoded ed25519 oracle pubkey")
	cmd.MarkFlagRequired("pubkey")
	cmd.Flags().StringP("signature", "s", "", "hex encoded ed25519 signature over the pulse message")
	cmd.MarkFlagRequired("signature")
}

func setPulse(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	target, _ := cmd.Flags().GetUint32("target")

	pulse, err := parseHexFlag(cmd, "pulse", pgt.PulseBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pubkey, err := parseHexFlag(cmd, "pubkey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	sig, err := parseHexFlag(cmd, "signature", pgt.Ed25519SigBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	// 证据消息在本地按规范格式重建，执行器会按存储的轮次参数复核
	progID := []byte(address.ExecAddress(types.ExecName(pgt.PulsegameX)))
	msg := pgt.PulseMessage(progID, round, target, pulse)
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionSetPulse,
		Value: &pgt.PulsegameAction_SetPulse{SetPulse: &pgt.PulseSet{
			RoundId: round,
			Pulse:   pulse,
			Evidence: &pgt.SignEvidence{
				Pubkey:    pubkey,
				Msg:       msg,
				Signature: sig,
			},
		}},
	}
	outputRawTx(payload)
}

// SetPulseMockRawTxCmd 测试链上直接写入脉冲
func SetPulseMockRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_pulse_mock",
		Short: "Attach a mock pulse, test chains only",
		Run:   setPulseMock,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("pulse", "p", "", "hex encoded 64 byte pulse")
	cmd.MarkFlagRequired("pulse")
	return cmd
}

func setPulseMock(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	pulse, err := parseHexFlag(cmd, "pulse", pgt.PulseBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionSetPulseMock,
		Value: &pgt.PulsegameAction_SetPulseMock{SetPulseMock: &pgt.PulseSetMock{
			RoundId: round,
			Pulse:   pulse,
		}},
	}
	outputRawTx(payload)
}

// FinalizeRoundRawTxCmd 终结轮次
func FinalizeRoundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize_round",
		Short: "Finalize a round after its reveal deadline",
		Run:   finalizeRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	return cmd
}

func finalizeRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionFinalizeRound,
		Value: &pgt.PulsegameAction_FinalizeRound{FinalizeRound: &pgt.RoundFinalize{RoundId: round}},
	}
	outputRawTx(payload)
}

// SettleRoundRawTxCmd 批量结算票据
func SettleRoundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle_round",
		Short: "Settle a batch of tickets of a finalized round",
		Run:   settleRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("tickets", "t", "", "comma separated addr:nonce list, at most 16")
	return cmd
}

func settleRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	ticketStr, _ := cmd.Flags().GetString("tickets")
	refs, err := parseTicketRefs(ticketStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionSettleRound,
		Value: &pgt.PulsegameAction_SettleRound{SettleRound: &pgt.RoundSettle{
			RoundId: round,
			Tickets: refs,
		}},
	}
	outputRawTx(payload)
}

// SweepRoundRawTxCmd 清扫过期未领的奖励
func SweepRoundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep_round",
		Short: "Sweep unclaimed winnings after the claim grace",
		Run:   sweepRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("tickets", "t", "", "comma separated addr:nonce list, at most 16")
	return cmd
}

func sweepRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	ticketStr, _ := cmd.Flags().GetString("tickets")
	refs, err := parseTicketRefs(ticketStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionSweepRound,
		Value: &pgt.PulsegameAction_SweepRound{SweepRound: &pgt.RoundSweep{
			RoundId: round,
			Tickets: refs,
		}},
	}
	outputRawTx(payload)
}

// CloseRoundRawTxCmd 关闭并删除轮次
func CloseRoundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close_round",
		Short: "Close a drained round and reclaim its state",
		Run:   closeRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	return cmd
}

func closeRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCloseRound,
		Value: &pgt.PulsegameAction_CloseRound{CloseRound: &pgt.RoundClose{RoundId: round}},
	}
	outputRawTx(payload)
}
