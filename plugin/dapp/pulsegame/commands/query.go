package commands

import (
	"github.com/spf13/cobra"

	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func queryCmds() []*cobra.Command {
	return []*cobra.Command{
		QueryConfigCmd(),
		QueryRegistryCmd(),
		QueryRoundCmd(),
		QueryRoundListCmd(),
		QueryTicketCmd(),
		QueryTicketListCmd(),
		QueryEscrowCmd(),
		QueryTokenomicsCmd(),
		QueryOracleSetCmd(),
		QueryBitIndexCmd(),
	}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("count", "c", 0, "number of entries, 0 means default")
	cmd.Flags().Int32P("direction", "d", 0, "0 ascending, 1 descending")
	cmd.Flags().Int64P("index", "i", 0, "start after this index, 0 means from the head")
}

// QueryConfigCmd 查询全局配置
func QueryConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the global game config",
		Run: func(cmd *cobra.Command, args []string) {
			var res pgt.PulseConfig
			runQuery(cmd, pgt.FuncNameGetConfig, &types.ReqNil{}, &res)
		},
	}
	return cmd
}

// QueryRegistryCmd 查询轮次编号分配器
func QueryRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Show the round id registry",
		Run: func(cmd *cobra.Command, args []string) {
			var res pgt.RoundRegistry
			runQuery(cmd, pgt.FuncNameGetRegistry, &types.ReqNil{}, &res)
		},
	}
	return cmd
}

// QueryRoundCmd 查询单个轮次
func QueryRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Show one round",
		Run:   queryRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	return cmd
}

func queryRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	var res pgt.PulseRound
	runQuery(cmd, pgt.FuncNameGetRound, &pgt.ReqRoundInfo{RoundId: round}, &res)
}

// QueryRoundListCmd 按状态翻页查询轮次
func QueryRoundListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round_list",
		Short: "List rounds of a status",
		Run:   queryRoundList,
	}
	cmd.Flags().Int32P("status", "s", 0, "0 announced, 1 pulse set, 2 finalized")
	addListFlags(cmd)
	return cmd
}

func queryRoundList(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetInt32("status")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")

	req := &pgt.ReqRoundList{
		Status:    status,
		Count:     count,
		Direction: direction,
		Index:     index,
	}
	var res pgt.ReplyRoundList
	runQuery(cmd, pgt.FuncNameGetRoundListByStatus, req, &res)
}

// QueryTicketCmd 查询单张票据
func QueryTicketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Show one ticket",
		Run:   queryTicket,
	}
	addTicketKeyFlags(cmd)
	return cmd
}

func queryTicket(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	addr, _ := cmd.Flags().GetString("addr")
	nonce, _ := cmd.Flags().GetUint64("nonce")

	req := &pgt.ReqTicketInfo{RoundId: round, Addr: addr, Nonce: nonce}
	var res pgt.PulseTicket
	runQuery(cmd, pgt.FuncNameGetTicket, req, &res)
}

// QueryTicketListCmd 按地址或轮次翻页查询票据
func QueryTicketListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket_list",
		Short: "List tickets of an address or a round",
		Run:   queryTicketList,
	}
	cmd.Flags().StringP("addr", "a", "", "ticket owner address")
	cmd.Flags().Uint64P("round", "r", 0, "round id, used when addr is empty")
	addListFlags(cmd)
	return cmd
}

func queryTicketList(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	round, _ := cmd.Flags().GetUint64("round")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")

	var res pgt.ReplyTicketList
	if addr != "" {
		req := &pgt.ReqTicketListByAddr{Addr: addr, Count: count, Direction: direction, Index: index}
		runQuery(cmd, pgt.FuncNameGetTicketListByAddr, req, &res)
		return
	}
	req := &pgt.ReqTicketListByRound{RoundId: round, Count: count, Direction: direction, Index: index}
	runQuery(cmd, pgt.FuncNameGetTicketListByRound, req, &res)
}

// QueryEscrowCmd 查询托管账户
func QueryEscrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Show the escrow account of an address",
		Run:   queryEscrow,
	}
	cmd.Flags().StringP("addr", "a", "", "escrow owner address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func queryEscrow(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	var res pgt.UserEscrow
	runQuery(cmd, pgt.FuncNameGetEscrow, &pgt.ReqEscrow{Addr: addr}, &res)
}

// QueryTokenomicsCmd 查询分成与金库参数
func QueryTokenomicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenomics",
		Short: "Show the fee split and treasury parameters",
		Run: func(cmd *cobra.Command, args []string) {
			var res pgt.PulseTokenomics
			runQuery(cmd, pgt.FuncNameGetTokenomics, &types.ReqNil{}, &res)
		},
	}
	return cmd
}

// QueryOracleSetCmd 查询预言机集合
func QueryOracleSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle_set",
		Short: "Show the oracle key set",
		Run: func(cmd *cobra.Command, args []string) {
			var res pgt.OracleSet
			runQuery(cmd, pgt.FuncNameGetOracleSet, &types.ReqNil{}, &res)
		},
	}
	return cmd
}

// QueryBitIndexCmd 查询票据对应的脉冲位下标
func QueryBitIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bit_index",
		Short: "Show the pulse bit a ticket settles against",
		Run:   queryBitIndex,
	}
	addTicketKeyFlags(cmd)
	return cmd
}

func queryBitIndex(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	addr, _ := cmd.Flags().GetString("addr")
	nonce, _ := cmd.Flags().GetUint64("nonce")

	req := &pgt.ReqBitIndex{RoundId: round, Addr: addr, Nonce: nonce}
	var res pgt.ReplyBitIndex
	runQuery(cmd, pgt.FuncNameGetBitIndex, req, &res)
}
