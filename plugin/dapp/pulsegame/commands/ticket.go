package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/33cn/pulsegame/common"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
)

func ticketCmds() []*cobra.Command {
	return []*cobra.Command{
		CommitmentCmd(),
		CommitRawTxCmd(),
		CommitBatchRawTxCmd(),
		RevealRawTxCmd(),
		RevealBatchRawTxCmd(),
		ClaimRewardRawTxCmd(),
		RefundTicketRawTxCmd(),
		CloseTicketRawTxCmd(),
		CreateEscrowRawTxCmd(),
		EscrowDepositRawTxCmd(),
		EscrowWithdrawRawTxCmd(),
	}
}

type commitmentResult struct {
	Commitment string `json:"commitment"`
	BitIndex   uint32 `json:"bitIndex"`
}

// CommitmentCmd 本地计算承诺哈希与脉冲位下标
func CommitmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitment",
		Short: "Compute a commitment hash and bit index locally",
		Run:   commitment,
	}
	addCommitFlags(cmd)
	return cmd
}

func addCommitFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("addr", "a", "", "committing address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Uint64P("nonce", "n", 0, "ticket nonce, unique per address and round")
	cmd.Flags().Uint32P("guess", "g", 0, "guessed bit, 0 or 1")
	cmd.Flags().StringP("salt", "s", "", "hex encoded 32 byte salt, keep it secret until reveal")
	cmd.MarkFlagRequired("salt")
}

func commitInputs(cmd *cobra.Command) (round uint64, addr string, nonce uint64, guess uint32, salt []byte, err error) {
	round, _ = cmd.Flags().GetUint64("round")
	addr, _ = cmd.Flags().GetString("addr")
	nonce, _ = cmd.Flags().GetUint64("nonce")
	guess, _ = cmd.Flags().GetUint32("guess")
	if guess > 1 {
		return 0, "", 0, 0, nil, fmt.Errorf("guess must be 0 or 1")
	}
	salt, err = parseHexFlag(cmd, "salt", pgt.SaltBytes)
	return round, addr, nonce, guess, salt, err
}

func commitment(cmd *cobra.Command, args []string) {
	round, addr, nonce, guess, salt, err := commitInputs(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	user := pgt.UserID(addr)
	result := commitmentResult{
		Commitment: common.ToHex(pgt.CommitmentHash(round, user, nonce, guess, salt)),
		BitIndex:   pgt.DeriveBitIndex(round, user, nonce),
	}
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}

// CommitRawTxCmd 提交一张承诺票，承诺哈希在本地计算
func CommitRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a ticket, the guess stays hidden until reveal",
		Run:   commit,
	}
	addCommitFlags(cmd)
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	round, addr, nonce, guess, salt, err := commitInputs(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCommit,
		Value: &pgt.PulsegameAction_Commit{Commit: &pgt.TicketCommit{
			RoundId:    round,
			Nonce:      nonce,
			Commitment: pgt.CommitmentHash(round, pgt.UserID(addr), nonce, guess, salt),
		}},
	}
	outputRawTx(payload)
}

// parseCommitEntries 解析"nonce:commitment"逗号串
func parseCommitEntries(s string) ([]*pgt.CommitEntry, error) {
	var entries []*pgt.CommitEntry
	for _, item := range strings.Split(s, ",") {
		parts := strings.Split(item, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad commit entry %q, want nonce:commitment", item)
		}
		nonce, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad nonce in commit entry %q", item)
		}
		commitment, err := common.FromHexFixed(parts[1], pgt.CommitmentBytes)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &pgt.CommitEntry{Nonce: nonce, Commitment: commitment})
	}
	return entries, nil
}

// CommitBatchRawTxCmd 一笔交易提交多张票
func CommitBatchRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit_batch",
		Short: "Commit several tickets in one transaction",
		Run:   commitBatch,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("entries", "e", "", "comma separated nonce:commitment list, at most 16")
	cmd.MarkFlagRequired("entries")
	return cmd
}

func commitBatch(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	entryStr, _ := cmd.Flags().GetString("entries")
	entries, err := parseCommitEntries(entryStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCommitBatch,
		Value: &pgt.PulsegameAction_CommitBatch{CommitBatch: &pgt.TicketCommitBatch{
			RoundId: round,
			Entries: entries,
		}},
	}
	outputRawTx(payload)
}

// RevealRawTxCmd 披露猜测和盐
func RevealRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the guess and salt of a committed ticket",
		Run:   reveal,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().Uint64P("nonce", "n", 0, "ticket nonce")
	cmd.Flags().Uint32P("guess", "g", 0, "guessed bit, 0 or 1")
	cmd.Flags().StringP("salt", "s", "", "hex encoded 32 byte salt used at commit time")
	cmd.MarkFlagRequired("salt")
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	guess, _ := cmd.Flags().GetUint32("guess")
	salt, err := parseHexFlag(cmd, "salt", pgt.SaltBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionReveal,
		Value: &pgt.PulsegameAction_Reveal{Reveal: &pgt.TicketReveal{
			RoundId: round,
			Nonce:   nonce,
			Guess:   guess,
			Salt:    salt,
		}},
	}
	outputRawTx(payload)
}

// parseRevealEntries 解析"nonce:guess:salt"逗号串
func parseRevealEntries(s string) ([]*pgt.RevealEntry, error) {
	var entries []*pgt.RevealEntry
	for _, item := range strings.Split(s, ",") {
		parts := strings.Split(item, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad reveal entry %q, want nonce:guess:salt", item)
		}
		nonce, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad nonce in reveal entry %q", item)
		}
		guess, err := strconv.ParseUint(parts[1], 10, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "guess in %q must be 0 or 1", item)
		}
		salt, err := common.FromHexFixed(parts[2], pgt.SaltBytes)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &pgt.RevealEntry{Nonce: nonce, Guess: uint32(guess), Salt: salt})
	}
	return entries, nil
}

// RevealBatchRawTxCmd 一笔交易披露多张票
func RevealBatchRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal_batch",
		Short: "Reveal several tickets in one transaction",
		Run:   revealBatch,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("entries", "e", "", "comma separated nonce:guess:salt list, at most 16")
	cmd.MarkFlagRequired("entries")
	return cmd
}

func revealBatch(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	entryStr, _ := cmd.Flags().GetString("entries")
	entries, err := parseRevealEntries(entryStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionRevealBatch,
		Value: &pgt.PulsegameAction_RevealBatch{RevealBatch: &pgt.TicketRevealBatch{
			RoundId: round,
			Entries: entries,
		}},
	}
	outputRawTx(payload)
}

// ClaimRewardRawTxCmd 领取中奖奖励
func ClaimRewardRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the reward of a winning ticket",
		Run:   claimReward,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().Uint64P("nonce", "n", 0, "ticket nonce")
	return cmd
}

func claimReward(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionClaimReward,
		Value: &pgt.PulsegameAction_ClaimReward{ClaimReward: &pgt.RewardClaim{
			RoundId: round,
			Nonce:   nonce,
		}},
	}
	outputRawTx(payload)
}

// RefundTicketRawTxCmd 退回滞留轮次的押金
func RefundTicketRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund_ticket",
		Short: "Refund the stake of a ticket in a pulse starved round",
		Run:   refundTicket,
	}
	addTicketKeyFlags(cmd)
	return cmd
}

func addTicketKeyFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().StringP("addr", "a", "", "ticket owner address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Uint64P("nonce", "n", 0, "ticket nonce")
}

func refundTicket(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	addr, _ := cmd.Flags().GetString("addr")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionRefundTicket,
		Value: &pgt.PulsegameAction_RefundTicket{RefundTicket: &pgt.TicketRefund{
			RoundId: round,
			Addr:    addr,
			Nonce:   nonce,
		}},
	}
	outputRawTx(payload)
}

// CloseTicketRawTxCmd 删除已了结的票据
func CloseTicketRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close_ticket",
		Short: "Close a resolved ticket and reclaim its state",
		Run:   closeTicket,
	}
	addTicketKeyFlags(cmd)
	return cmd
}

func closeTicket(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	addr, _ := cmd.Flags().GetString("addr")
	nonce, _ := cmd.Flags().GetUint64("nonce")
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCloseTicket,
		Value: &pgt.PulsegameAction_CloseTicket{CloseTicket: &pgt.TicketClose{
			RoundId: round,
			Addr:    addr,
			Nonce:   nonce,
		}},
	}
	outputRawTx(payload)
}

// CreateEscrowRawTxCmd 开通代提交托管账户
func CreateEscrowRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_escrow",
		Short: "Create an escrow account for relayed commits",
		Run:   createEscrow,
	}
	cmd.Flags().StringP("pubkey", "k", "", "hex encoded ed25519 pubkey that signs relayed entries")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func createEscrow(cmd *cobra.Command, args []string) {
	pubkey, err := parseHexFlag(cmd, "pubkey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateEscrow,
		Value: &pgt.PulsegameAction_CreateEscrow{CreateEscrow: &pgt.EscrowCreate{SignPubkey: pubkey}},
	}
	outputRawTx(payload)
}

// EscrowDepositRawTxCmd 托管账户充值
func EscrowDepositRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow_deposit",
		Short: "Deposit tokens into the escrow account",
		Run:   escrowDeposit,
	}
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func escrowDeposit(cmd *cobra.Command, args []string) {
	amount, _ := cmd.Flags().GetFloat64("amount")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionEscrowDeposit,
		Value: &pgt.PulsegameAction_EscrowDeposit{EscrowDeposit: &pgt.EscrowDeposit{Amount: amountToInt64(amount)}},
	}
	outputRawTx(payload)
}

// EscrowWithdrawRawTxCmd 托管账户取回未占用额度
func EscrowWithdrawRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow_withdraw",
		Short: "Withdraw unused tokens from the escrow account",
		Run:   escrowWithdraw,
	}
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func escrowWithdraw(cmd *cobra.Command, args []string) {
	amount, _ := cmd.Flags().GetFloat64("amount")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionEscrowWithdraw,
		Value: &pgt.PulsegameAction_EscrowWithdraw{EscrowWithdraw: &pgt.EscrowWithdraw{Amount: amountToInt64(amount)}},
	}
	outputRawTx(payload)
}
