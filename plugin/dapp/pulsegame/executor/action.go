package executor

import (
	"bytes"
	"math"

	"github.com/33cn/pulsegame/account"
	"github.com/33cn/pulsegame/common/crypto"
	dbm "github.com/33cn/pulsegame/common/db"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	drivers "github.com/33cn/pulsegame/system/dapp"
	"github.com/33cn/pulsegame/types"
)

type action struct {
	coinsAccount *account.DB
	tokenAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

func newAction(p *Pulsegame, tx *types.Transaction, index int) (*action, error) {
	tokenAccount, err := account.NewAccountDB(pgt.PulsegameX, pgt.TokenSymbol, p.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &action{
		coinsAccount: p.GetCoinsAccount(),
		tokenAccount: tokenAccount,
		db:           p.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    p.GetBlockTime(),
		height:       p.GetHeight(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		index:        index,
	}, nil
}

// heightIndex 当前交易的全局索引
func (a *action) heightIndex() int64 {
	return a.height*types.MaxTxsPerBlock + int64(a.index)
}

// progID 规范消息中标识本执行器实例的字节串
func (a *action) progID() []byte {
	return []byte(a.execaddr)
}

func (a *action) loadValue(key []byte, value types.Message) error {
	data, err := a.db.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return types.ErrNotFound
		}
		return err
	}
	return types.Decode(data, value)
}

func (a *action) exists(key []byte) (bool, error) {
	_, err := a.db.Get(key)
	if err == nil {
		return true, nil
	}
	if err == dbm.ErrNotFoundInDb {
		return false, nil
	}
	return false, err
}

func (a *action) getConfig() (*pgt.PulseConfig, error) {
	var cfg pgt.PulseConfig
	if err := a.loadValue(calcConfigKey(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (a *action) getRegistry() (*pgt.RoundRegistry, error) {
	var reg pgt.RoundRegistry
	if err := a.loadValue(calcRegistryKey(), &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (a *action) getRound(roundID uint64) (*pgt.PulseRound, error) {
	var round pgt.PulseRound
	if err := a.loadValue(calcRoundKey(roundID), &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func (a *action) getTicket(roundID uint64, addr string, nonce uint64) (*pgt.PulseTicket, error) {
	var ticket pgt.PulseTicket
	if err := a.loadValue(calcTicketKey(roundID, addr, nonce), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (a *action) getEscrow(addr string) (*pgt.UserEscrow, error) {
	var escrow pgt.UserEscrow
	if err := a.loadValue(calcEscrowKey(addr), &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

func (a *action) getTokenomics() (*pgt.PulseTokenomics, error) {
	var tok pgt.PulseTokenomics
	if err := a.loadValue(calcTokenomicsKey(), &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (a *action) getOracleSet() (*pgt.OracleSet, error) {
	var set pgt.OracleSet
	if err := a.loadValue(calcOracleSetKey(), &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// requireAuthority 管理员权限检查
func (a *action) requireAuthority(cfg *pgt.PulseConfig) error {
	if cfg.Authority != a.fromaddr {
		return pgt.ErrUnauthorized
	}
	return nil
}

func safeAdd(x, y int64) (int64, error) {
	if y > 0 && x > math.MaxInt64-y {
		return 0, pgt.ErrMathOverflow
	}
	if y < 0 && x < math.MinInt64-y {
		return 0, pgt.ErrMathOverflow
	}
	return x + y, nil
}

func safeMul(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	r := x * y
	if r/y != x {
		return 0, pgt.ErrMathOverflow
	}
	return r, nil
}

// verifyEvidence 校验ed25519签名证据：消息逐字节一致，公钥与期望签名人一致，签名有效
func verifyEvidence(ev *pgt.SignEvidence, expectPubkey, expectMsg []byte) error {
	if ev == nil {
		return pgt.ErrEvidenceCount
	}
	if !bytes.Equal(ev.GetMsg(), expectMsg) {
		return pgt.ErrEvidenceMessage
	}
	if len(ev.GetPubkey()) != pgt.Ed25519PubkeyBytes || !bytes.Equal(ev.GetPubkey(), expectPubkey) {
		return pgt.ErrEvidencePubkey
	}
	if len(ev.GetSignature()) != pgt.Ed25519SigBytes {
		return pgt.ErrEvidenceSignature
	}
	c, err := crypto.New(types.GetSignName("", types.ED25519))
	if err != nil {
		return err
	}
	pub, err := c.PubKeyFromBytes(ev.GetPubkey())
	if err != nil {
		return err
	}
	sig, err := c.SignatureFromBytes(ev.GetSignature())
	if err != nil {
		return err
	}
	if !pub.VerifyBytes(ev.GetMsg(), sig) {
		return pgt.ErrEvidenceSignature
	}
	return nil
}

func mergeReceipt(dst *types.Receipt, src *types.Receipt) {
	dst.KV = append(dst.KV, src.KV...)
	dst.Logs = append(dst.Logs, src.Logs...)
}

func kvConfig(cfg *pgt.PulseConfig) *types.KeyValue {
	return &types.KeyValue{Key: calcConfigKey(), Value: types.Encode(cfg)}
}

func kvRegistry(reg *pgt.RoundRegistry) *types.KeyValue {
	return &types.KeyValue{Key: calcRegistryKey(), Value: types.Encode(reg)}
}

func kvRound(round *pgt.PulseRound) *types.KeyValue {
	return &types.KeyValue{Key: calcRoundKey(round.RoundId), Value: types.Encode(round)}
}

func kvTicket(ticket *pgt.PulseTicket) *types.KeyValue {
	return &types.KeyValue{
		Key:   calcTicketKey(ticket.RoundId, ticket.Addr, ticket.Nonce),
		Value: types.Encode(ticket),
	}
}

func kvEscrow(escrow *pgt.UserEscrow) *types.KeyValue {
	return &types.KeyValue{Key: calcEscrowKey(escrow.Addr), Value: types.Encode(escrow)}
}

func kvTokenomics(tok *pgt.PulseTokenomics) *types.KeyValue {
	return &types.KeyValue{Key: calcTokenomicsKey(), Value: types.Encode(tok)}
}

func kvOracleSet(set *pgt.OracleSet) *types.KeyValue {
	return &types.KeyValue{Key: calcOracleSetKey(), Value: types.Encode(set)}
}

// kvDelete 状态删除通过写入nil值表达，应用侧将其转为删除
func kvDelete(key []byte) *types.KeyValue {
	return &types.KeyValue{Key: key, Value: nil}
}

func configLog(op int32, prev, cur *pgt.PulseConfig) *types.ReceiptLog {
	r := &pgt.ReceiptPulseConfig{Op: op, Prev: prev, Current: cur}
	return &types.ReceiptLog{Ty: pgt.TyLogPulseConfig, Log: types.Encode(r)}
}

func registryLog(reg *pgt.RoundRegistry) *types.ReceiptLog {
	r := &pgt.ReceiptRegistry{Registry: reg}
	return &types.ReceiptLog{Ty: pgt.TyLogRegistry, Log: types.Encode(r)}
}

func roundLog(ty int32, prevStatus int32, round *pgt.PulseRound) *types.ReceiptLog {
	r := &pgt.ReceiptPulseRound{PrevStatus: prevStatus, Round: round}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func ticketLog(ty int32, op int32, ticket *pgt.PulseTicket) *types.ReceiptLog {
	r := &pgt.ReceiptPulseTicket{Op: op, Ticket: ticket}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func escrowLog(op int32, addr string, prev, cur int64) *types.ReceiptLog {
	r := &pgt.ReceiptEscrow{Op: op, Addr: addr, PrevBalance: prev, CurrentBalance: cur}
	return &types.ReceiptLog{Ty: pgt.TyLogEscrow, Log: types.Encode(r)}
}

func oracleSetLog(prev, cur *pgt.OracleSet) *types.ReceiptLog {
	r := &pgt.ReceiptOracleSet{Prev: prev, Current: cur}
	return &types.ReceiptLog{Ty: pgt.TyLogOracleSet, Log: types.Encode(r)}
}

func tokenomicsLog(prev, cur *pgt.PulseTokenomics) *types.ReceiptLog {
	r := &pgt.ReceiptTokenomics{Prev: prev, Current: cur}
	return &types.ReceiptLog{Ty: pgt.TyLogTokenomics, Log: types.Encode(r)}
}
