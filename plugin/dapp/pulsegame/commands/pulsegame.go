package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/33cn/pulsegame/common"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	jsonrpc "github.com/33cn/pulsegame/rpc/jsonclient"
	rpctypes "github.com/33cn/pulsegame/rpc/types"
	"github.com/33cn/pulsegame/types"
)

// PulsegameCmd 竞猜游戏命令行
func PulsegameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulsegame",
		Short: "pulse guessing game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		CreateConfigRawTxCmd(),
		SetPauseRawTxCmd(),
		UpdateStakeRawTxCmd(),
		SetClaimGraceRawTxCmd(),
		SetServiceFeeRawTxCmd(),
		SetOracleKeyRawTxCmd(),
		MigrateConfigRawTxCmd(),
		CloseConfigRawTxCmd(),
		CreateRegistryRawTxCmd(),
		RawActionTxCmd(),
	)
	cmd.AddCommand(roundCmds()...)
	cmd.AddCommand(ticketCmds()...)
	cmd.AddCommand(adminCmds()...)
	cmd.AddCommand(queryCmds()...)

	return cmd
}

// outputRawTx 本地构造未签名交易并输出十六进制串
func outputRawTx(payload *pgt.PulsegameAction) {
	tx, err := pgt.CreateRawTx(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(hex.EncodeToString(types.Encode(tx)))
}

// amountToInt64 按4位小数精度把金额换算到代币最小单位
func amountToInt64(amount float64) int64 {
	return int64(math.Trunc((amount+0.0000001)*1e4)) * 1e4
}

func parseHexFlag(cmd *cobra.Command, name string, size int) ([]byte, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return nil, nil
	}
	if size > 0 {
		return common.FromHexFixed(s, size)
	}
	return common.FromHex(s)
}

func runQuery(cmd *cobra.Command, funcName string, payload interface{}, res interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Cli{
		Execer:   pgt.PulsegameX,
		FuncName: funcName,
		Payload:  payload,
	}
	ctx := jsonrpc.NewRpcCtx(rpcLaddr, "Chain33.Query", params, res)
	ctx.Run()
}

// CreateConfigRawTxCmd 创建全局配置
func CreateConfigRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_config",
		Short: "Create the global game config",
		Run:   createConfig,
	}
	addCreateConfigFlags(cmd)
	return cmd
}

func addCreateConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("stake", "s", 0, "stake amount per ticket, 0 means default")
	cmd.Flags().Int64P("commitWindow", "c", 0, "commit window in blocks, 0 means default")
	cmd.Flags().Int64P("revealWindow", "r", 0, "reveal window in blocks, 0 means default")
	cmd.Flags().Int64P("claimGrace", "g", 0, "claim grace in blocks, 0 means default")
	cmd.Flags().Float64P("serviceFee", "e", 0, "service fee per commit in coins")
	cmd.Flags().StringP("oracleKey", "o", "", "hex encoded ed25519 oracle pubkey, optional")
	cmd.Flags().BoolP("allowMock", "m", false, "allow mock pulses, test chains only")
}

func createConfig(cmd *cobra.Command, args []string) {
	stake, _ := cmd.Flags().GetFloat64("stake")
	commitWindow, _ := cmd.Flags().GetInt64("commitWindow")
	revealWindow, _ := cmd.Flags().GetInt64("revealWindow")
	claimGrace, _ := cmd.Flags().GetInt64("claimGrace")
	serviceFee, _ := cmd.Flags().GetFloat64("serviceFee")
	allowMock, _ := cmd.Flags().GetBool("allowMock")

	oracleKey, err := parseHexFlag(cmd, "oracleKey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCreateConfig,
		Value: &pgt.PulsegameAction_CreateConfig{CreateConfig: &pgt.PulseConfigCreate{
			StakeAmount:    amountToInt64(stake),
			CommitWindow:   commitWindow,
			RevealWindow:   revealWindow,
			ClaimGrace:     claimGrace,
			ServiceFee:     amountToInt64(serviceFee),
			OraclePubkey:   oracleKey,
			AllowMockPulse: allowMock,
		}},
	}
	outputRawTx(payload)
}

// SetPauseRawTxCmd 暂停或恢复提交
func SetPauseRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_pause",
		Short: "Pause or resume new commits",
		Run:   setPause,
	}
	cmd.Flags().BoolP("pause", "p", true, "true to pause, false to resume")
	return cmd
}

func setPause(cmd *cobra.Command, args []string) {
	pause, _ := cmd.Flags().GetBool("pause")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetPause,
		Value: &pgt.PulsegameAction_SetPause{SetPause: &pgt.PulseConfigPause{Pause: pause}},
	}
	outputRawTx(payload)
}

// UpdateStakeRawTxCmd 调整后续轮次的押金额
func UpdateStakeRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update_stake",
		Short: "Update the stake amount for future rounds",
		Run:   updateStake,
	}
	cmd.Flags().Float64P("stake", "s", 0, "stake amount per ticket in coins")
	cmd.MarkFlagRequired("stake")
	return cmd
}

func updateStake(cmd *cobra.Command, args []string) {
	stake, _ := cmd.Flags().GetFloat64("stake")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionUpdateStake,
		Value: &pgt.PulsegameAction_UpdateStake{UpdateStake: &pgt.PulseConfigStake{StakeAmount: amountToInt64(stake)}},
	}
	outputRawTx(payload)
}

// SetClaimGraceRawTxCmd 调整领奖宽限期
func SetClaimGraceRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_claim_grace",
		Short: "Update the claim grace period",
		Run:   setClaimGrace,
	}
	cmd.Flags().Int64P("grace", "g", 0, "claim grace in blocks after the reveal deadline")
	cmd.MarkFlagRequired("grace")
	return cmd
}

func setClaimGrace(cmd *cobra.Command, args []string) {
	grace, _ := cmd.Flags().GetInt64("grace")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetClaimGrace,
		Value: &pgt.PulsegameAction_SetClaimGrace{SetClaimGrace: &pgt.PulseConfigClaimGrace{ClaimGrace: grace}},
	}
	outputRawTx(payload)
}

// SetServiceFeeRawTxCmd 调整提交服务费
func SetServiceFeeRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_service_fee",
		Short: "Update the per commit service fee",
		Run:   setServiceFee,
	}
	cmd.Flags().Float64P("fee", "e", 0, "service fee per commit in coins")
	cmd.MarkFlagRequired("fee")
	return cmd
}

func setServiceFee(cmd *cobra.Command, args []string) {
	fee, _ := cmd.Flags().GetFloat64("fee")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetServiceFee,
		Value: &pgt.PulsegameAction_SetServiceFee{SetServiceFee: &pgt.PulseConfigServiceFee{ServiceFee: amountToInt64(fee)}},
	}
	outputRawTx(payload)
}

// SetOracleKeyRawTxCmd 更换预言机公钥
func SetOracleKeyRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_oracle_key",
		Short: "Rotate the oracle ed25519 pubkey",
		Run:   setOracleKey,
	}
	cmd.Flags().StringP("pubkey", "k", "", "hex encoded ed25519 pubkey")
	cmd.MarkFlagRequired("pubkey")
	return cmd
}

func setOracleKey(cmd *cobra.Command, args []string) {
	pubkey, err := parseHexFlag(cmd, "pubkey", pgt.Ed25519PubkeyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetOracleKey,
		Value: &pgt.PulsegameAction_SetOracleKey{SetOracleKey: &pgt.PulseConfigOracleKey{OraclePubkey: pubkey}},
	}
	outputRawTx(payload)
}

// MigrateConfigRawTxCmd 配置版本迁移
func MigrateConfigRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate_config",
		Short: "Bump the config schema version",
		Run:   migrateConfig,
	}
	cmd.Flags().Uint32P("target", "t", 0, "target version, must be current version plus one")
	cmd.MarkFlagRequired("target")
	return cmd
}

func migrateConfig(cmd *cobra.Command, args []string) {
	target, _ := cmd.Flags().GetUint32("target")
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionMigrateConfig,
		Value: &pgt.PulsegameAction_MigrateConfig{MigrateConfig: &pgt.PulseConfigMigrate{TargetVersion: target}},
	}
	outputRawTx(payload)
}

// CloseConfigRawTxCmd 注销全局配置
func CloseConfigRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close_config",
		Short: "Close the global game config",
		Run:   closeConfig,
	}
	return cmd
}

func closeConfig(cmd *cobra.Command, args []string) {
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCloseConfig,
		Value: &pgt.PulsegameAction_CloseConfig{CloseConfig: &pgt.PulseConfigClose{}},
	}
	outputRawTx(payload)
}

// CreateRegistryRawTxCmd 创建轮次编号分配器
func CreateRegistryRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_registry",
		Short: "Create the round id registry",
		Run:   createRegistry,
	}
	return cmd
}

func createRegistry(cmd *cobra.Command, args []string) {
	payload := &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateRegistry,
		Value: &pgt.PulsegameAction_CreateRegistry{CreateRegistry: &pgt.RegistryCreate{}},
	}
	outputRawTx(payload)
}

// RawActionTxCmd 通用动作构造，签名代提交等复杂载荷走json
func RawActionTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Create a raw transaction from an action name and json payload",
		Run:   rawAction,
	}
	cmd.Flags().StringP("action", "a", "", "action name, for example CommitBatchSigned")
	cmd.MarkFlagRequired("action")
	cmd.Flags().StringP("data", "d", "{}", "json encoded action payload")
	return cmd
}

func rawAction(cmd *cobra.Command, args []string) {
	action, _ := cmd.Flags().GetString("action")
	data, _ := cmd.Flags().GetString("data")
	tx, err := pgt.NewType().CreateTx(action, json.RawMessage(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(hex.EncodeToString(types.Encode(tx)))
}
