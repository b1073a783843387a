package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
)

func adminCmds() []*cobra.Command {
	return []*cobra.Command{
		CreateOracleSetRawTxCmd(),
		AddOracleRawTxCmd(),
		RemoveOracleRawTxCmd(),
		SetOracleThresholdRawTxCmd(),
		CreateTokenomicsRawTxCmd(),
		UpdateTokenomicsRawTxCmd(),
		WithdrawTreasuryRawTxCmd(),
	}
}

// CreateOracleSetRawTxCmd 创建多签预言机集合
func CreateOracleSetRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_oracle_set",
		Short: "Create the oracle key set",
		Run:   createOracleSet,
	}
	return cmd
}

func createOracleSet(cmd *cobra.Command, args []string) {
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateOracleSet,
		Value: &pgt.PulsegameAction_CreateOracleSet{CreateOracleSet: &pgt.OracleSetCreate{}},
	}
	outputRawTx(payload)
}

// AddOracleRawTxCmd 添加预言机公钥
func AddOracleRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_oracle",
		Short: "Add an oracle pubkey to the set",
		Run:   addOracle,
	}
	cmd.Flags().StringP("pubkey", "k", "", "hex encoded ed25519 pubkey")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func addOracle(cmd *cobra.Command, args []string) {
	pubkey, err := parseHexFlag(cmd, "pubkey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionAddOracle,
		Value: &pgt.PulsegameAction_AddOracle{AddOracle: &pgt.OracleAdd{Pubkey: pubkey}},
	}
	outputRawTx(payload)
}

// RemoveOracleRawTxCmd 移除预言机公钥
func RemoveOracleRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove_oracle",
		Short: "Remove an oracle pubkey from the set",
		Run:   removeOracle,
	}
	cmd.Flags().StringP("pubkey", "k", "", "hex encoded ed25519 pubkey")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func removeOracle(cmd *cobra.Command, args []string) {
	pubkey, err := parseHexFlag(cmd, "pubkey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionRemoveOracle,
		Value: &pgt.PulsegameAction_RemoveOracle{RemoveOracle: &pgt.OracleRemove{Pubkey: pubkey}},
	}
	outputRawTx(payload)
}

// SetOracleThresholdRawTxCmd 调整预言机签名门限
func SetOracleThresholdRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_oracle_threshold",
		Short: "Update the oracle signature threshold",
		Run:   setOracleThreshold,
	}
	cmd.Flags().Uint32P("threshold", "t", 1, "signatures required per pulse")
	cmd.MarkFlagRequired("threshold")
	return cmd
}

func setOracleThreshold(cmd *cobra.Command, args []string) {
	threshold, _ := cmd.Flags().GetUint32("threshold")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleThreshold,
		Value: &pgt.PulsegameAction_SetOracleThreshold{SetOracleThreshold: &pgt.OracleThreshold{Threshold: threshold}},
	}
	outputRawTx(payload)
}

// CreateTokenomicsRawTxCmd 创建分成与金库参数
func CreateTokenomicsRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_tokenomics",
		Short: "Create the fee split and treasury parameters",
		Run:   createTokenomics,
	}
	addTokenomicsFlags(cmd)
	cmd.MarkFlagRequired("feePool")
	cmd.MarkFlagRequired("treasury")
	return cmd
}

func addTokenomicsFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32P("bps", "b", 0, "reward fee in basis points, at most 10000")
	cmd.Flags().StringP("feePool", "p", "", "fee pool address")
	cmd.Flags().StringP("treasury", "t", "", "treasury address")
}

func createTokenomics(cmd *cobra.Command, args []string) {
	bps, _ := cmd.Flags().GetUint32("bps")
	feePool, _ := cmd.Flags().GetString("feePool")
	treasury, _ := cmd.Flags().GetString("treasury")

	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCreateTokenomics,
		Value: &pgt.PulsegameAction_CreateTokenomics{CreateTokenomics: &pgt.TokenomicsCreate{
			RewardFeeBps: bps,
			FeePool:      feePool,
			Treasury:     treasury,
		}},
	}
	outputRawTx(payload)
}

// UpdateTokenomicsRawTxCmd 更新分成与金库参数，留空的地址不变
func UpdateTokenomicsRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update_tokenomics",
		Short: "Update the fee split and treasury parameters",
		Run:   updateTokenomics,
	}
	addTokenomicsFlags(cmd)
	return cmd
}

func updateTokenomics(cmd *cobra.Command, args []string) {
	bps, _ := cmd.Flags().GetUint32("bps")
	feePool, _ := cmd.Flags().GetString("feePool")
	treasury, _ := cmd.Flags().GetString("treasury")

	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionUpdateTokenomics,
		Value: &pgt.PulsegameAction_UpdateTokenomics{UpdateTokenomics: &pgt.TokenomicsUpdate{
			RewardFeeBps: bps,
			UpdateBps:    cmd.Flags().Changed("bps"),
			FeePool:      feePool,
			Treasury:     treasury,
		}},
	}
	outputRawTx(payload)
}

// WithdrawTreasuryRawTxCmd 从国库提款给管理员
func WithdrawTreasuryRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_treasury",
		Short: "Withdraw from the treasury to the authority",
		Run:   withdrawTreasury,
	}
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().BoolP("token", "k", false, "withdraw the game token instead of the base coin")
	return cmd
}

func withdrawTreasury(cmd *cobra.Command, args []string) {
	amount, _ := cmd.Flags().GetFloat64("amount")
	token, _ := cmd.Flags().GetBool("token")

	payload := &pgt.PulsegameAction{}
	if token {
		payload.Ty = pgt.PulsegameActionWithdrawTreasuryToken
		payload.Value = &pgt.PulsegameAction_WithdrawTreasuryToken{
			WithdrawTreasuryToken: &pgt.TreasuryWithdrawToken{Amount: amountToInt64(amount)},
		}
	} else {
		payload.Ty = pgt.PulsegameActionWithdrawTreasury
		payload.Value = &pgt.PulsegameAction_WithdrawTreasury{
			WithdrawTreasury: &pgt.TreasuryWithdraw{Amount: amountToInt64(amount)},
		}
	}
	outputRawTx(payload)
}
