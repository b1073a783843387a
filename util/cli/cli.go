// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口，汇集各插件的子命令
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/33cn/pulsegame/common/log"
	"github.com/33cn/pulsegame/pluginmgr"
	"github.com/33cn/pulsegame/rpc/jsonclient"
	rpctypes "github.com/33cn/pulsegame/rpc/types"
)

var rootCmd = &cobra.Command{
	Use:   "pulsegame-cli",
	Short: "pulsegame client tools",
}

// SendTxCmd 发送已签名交易
func SendTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_tx",
		Short: "Send a signed transaction",
		Run:   sendTx,
	}
	cmd.Flags().StringP("data", "d", "", "hex encoded signed transaction")
	cmd.MarkFlagRequired("data")
	return cmd
}

func sendTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, _ := cmd.Flags().GetString("data")

	params := rpctypes.RawParm{Data: data}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Chain33.SendTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

// QueryTxCmd 按哈希查询交易
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_tx",
		Short: "Query a transaction by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")

	params := rpctypes.QueryParm{Hash: hash}
	var res interface{}
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Chain33.QueryTransaction", params, &res)
	ctx.Run()
}

// Run 运行命令行
func Run(rpcAddr string) {
	log.SetLogLevel("error")
	rootCmd.AddCommand(
		SendTxCmd(),
		QueryTxCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
