package executor

import (
	"github.com/pkg/errors"

	dbm "github.com/33cn/pulsegame/common/db"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

const (
	defaultListCount = int32(20)
	maxListCount     = int32(100)
)

func (g *Pulsegame) loadState(key []byte, value types.Message) error {
	data, err := g.GetStateDB().Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return types.ErrNotFound
		}
		return err
	}
	return types.Decode(data, value)
}

func listCount(count int32) int32 {
	if count <= 0 {
		return defaultListCount
	}
	if count > maxListCount {
		return maxListCount
	}
	return count
}

// Query_GetConfig 查询全局配置
func (g *Pulsegame) Query_GetConfig(in *types.ReqNil) (types.Message, error) {
	var cfg pgt.PulseConfig
	if err := g.loadState(calcConfigKey(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Query_GetRegistry 查询轮次登记表
func (g *Pulsegame) Query_GetRegistry(in *types.ReqNil) (types.Message, error) {
	var reg pgt.RoundRegistry
	if err := g.loadState(calcRegistryKey(), &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Query_GetRound 查询单个轮次
func (g *Pulsegame) Query_GetRound(in *pgt.ReqRoundInfo) (types.Message, error) {
	var round pgt.PulseRound
	if err := g.loadState(calcRoundKey(in.GetRoundId()), &round); err != nil {
		return nil, err
	}
	return &round, nil
}

// Query_GetRoundListByStatus 按状态分页查询轮次
func (g *Pulsegame) Query_GetRoundListByStatus(in *pgt.ReqRoundList) (types.Message, error) {
	var primaryKey []byte
	if in.GetIndex() > 0 {
		primaryKey = calcRoundStatusKey(in.GetStatus(), in.GetIndex())
	}
	values, err := g.GetLocalDB().List(calcRoundStatusPrefix(in.GetStatus()), primaryKey,
		listCount(in.GetCount()), in.GetDirection())
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, errors.Wrap(err, "db.List round status index")
	}
	reply := &pgt.ReplyRoundList{}
	for _, value := range values {
		var record pgt.RoundRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		var round pgt.PulseRound
		err := g.loadState(calcRoundKey(record.RoundId), &round)
		if err == types.ErrNotFound {
			// 索引落后于状态库一拍时跳过
			continue
		}
		if err != nil {
			return nil, err
		}
		reply.Rounds = append(reply.Rounds, &round)
	}
	if len(reply.Rounds) == 0 {
		return nil, types.ErrNotFound
	}
	return reply, nil
}

// Query_GetTicket 查询单张票据
func (g *Pulsegame) Query_GetTicket(in *pgt.ReqTicketInfo) (types.Message, error) {
	var ticket pgt.PulseTicket
	if err := g.loadState(calcTicketKey(in.GetRoundId(), in.GetAddr(), in.GetNonce()), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (g *Pulsegame) ticketList(prefix, primaryKey []byte, count, direction int32) (types.Message, error) {
	values, err := g.GetLocalDB().List(prefix, primaryKey, listCount(count), direction)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, errors.Wrap(err, "db.List ticket index")
	}
	reply := &pgt.ReplyTicketList{}
	for _, value := range values {
		var record pgt.TicketRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		var ticket pgt.PulseTicket
		err := g.loadState(calcTicketKey(record.RoundId, record.Addr, record.Nonce), &ticket)
		if err == types.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		reply.Tickets = append(reply.Tickets, &ticket)
	}
	if len(reply.Tickets) == 0 {
		return nil, types.ErrNotFound
	}
	return reply, nil
}

// Query_GetTicketListByAddr 按地址分页查询票据
func (g *Pulsegame) Query_GetTicketListByAddr(in *pgt.ReqTicketListByAddr) (types.Message, error) {
	var primaryKey []byte
	if in.GetIndex() > 0 {
		primaryKey = calcTicketAddrKey(in.GetAddr(), in.GetIndex())
	}
	return g.ticketList(calcTicketAddrPrefix(in.GetAddr()), primaryKey, in.GetCount(), in.GetDirection())
}

// Query_GetTicketListByRound 按轮次分页查询票据
func (g *Pulsegame) Query_GetTicketListByRound(in *pgt.ReqTicketListByRound) (types.Message, error) {
	var primaryKey []byte
	if in.GetIndex() > 0 {
		primaryKey = calcTicketRoundKey(in.GetRoundId(), in.GetIndex())
	}
	return g.ticketList(calcTicketRoundPrefix(in.GetRoundId()), primaryKey, in.GetCount(), in.GetDirection())
}

// Query_GetEscrow 查询托管账户
func (g *Pulsegame) Query_GetEscrow(in *pgt.ReqEscrow) (types.Message, error) {
	var escrow pgt.UserEscrow
	if err := g.loadState(calcEscrowKey(in.GetAddr()), &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// Query_GetTokenomics 查询代币经济参数
func (g *Pulsegame) Query_GetTokenomics(in *types.ReqNil) (types.Message, error) {
	var tk pgt.PulseTokenomics
	if err := g.loadState(calcTokenomicsKey(), &tk); err != nil {
		return nil, err
	}
	return &tk, nil
}

// Query_GetOracleSet 查询预言机集合
func (g *Pulsegame) Query_GetOracleSet(in *types.ReqNil) (types.Message, error) {
	var set pgt.OracleSet
	if err := g.loadState(calcOracleSetKey(), &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// Query_GetBitIndex 离线推导票据对应的脉冲位下标
func (g *Pulsegame) Query_GetBitIndex(in *pgt.ReqBitIndex) (types.Message, error) {
	if in.GetAddr() == "" {
		return nil, types.ErrInvalidParam
	}
	idx := pgt.DeriveBitIndex(in.GetRoundId(), pgt.UserID(in.GetAddr()), in.GetNonce())
	return &pgt.ReplyBitIndex{BitIndex: idx}, nil
}
