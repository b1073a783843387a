package executor

import (
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
)

func (a *action) createEscrow(payload *pgt.EscrowCreate) (*types.Receipt, error) {
	if len(payload.GetSignPubkey()) != pgt.Ed25519PubkeyBytes {
		return nil, pgt.ErrBadPubkeySize
	}
	ok, err := a.exists(calcEscrowKey(a.fromaddr))
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, pgt.ErrEscrowExists
	}
	escrow := &pgt.UserEscrow{
		Addr:        a.fromaddr,
		SignPubkey:  payload.GetSignPubkey(),
		CreatedSlot: a.height,
		UpdatedSlot: a.height,
	}
	glog.Info("pulsegame create escrow", "addr", a.fromaddr)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kvEscrow(escrow)},
		Logs: []*types.ReceiptLog{escrowLog(pgt.EscrowOpCreate, escrow.Addr, 0, 0)},
	}, nil
}

func (a *action) escrowDeposit(payload *pgt.EscrowDeposit) (*types.Receipt, error) {
	if payload.GetAmount() <= 0 || payload.GetAmount() > types.MaxCoin {
		return nil, types.ErrAmount
	}
	escrow, err := a.getEscrow(a.fromaddr)
	if err != nil {
		return nil, err
	}
	receipt, err := a.tokenAccount.ExecFrozen(a.fromaddr, a.execaddr, payload.GetAmount())
	if err != nil {
		glog.Error("pulsegame escrow deposit", "addr", a.fromaddr, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	prevBalance := escrow.Balance
	escrow.Balance, err = safeAdd(escrow.Balance, payload.GetAmount())
	if err != nil {
		return nil, err
	}
	escrow.UpdatedSlot = a.height
	receipt.KV = append(receipt.KV, kvEscrow(escrow))
	receipt.Logs = append(receipt.Logs, escrowLog(pgt.EscrowOpDeposit, escrow.Addr, prevBalance, escrow.Balance))
	return receipt, nil
}

func (a *action) escrowWithdraw(payload *pgt.EscrowWithdraw) (*types.Receipt, error) {
	if payload.GetAmount() <= 0 || payload.GetAmount() > types.MaxCoin {
		return nil, types.ErrAmount
	}
	escrow, err := a.getEscrow(a.fromaddr)
	if err != nil {
		return nil, err
	}
	// 只有未被在途票据占用的额度可以取回
	if escrow.Balance < payload.GetAmount() {
		return nil, pgt.ErrEscrowShort
	}
	receipt, err := a.tokenAccount.ExecActive(a.fromaddr, a.execaddr, payload.GetAmount())
	if err != nil {
		glog.Error("pulsegame escrow withdraw", "addr", a.fromaddr, "amount", payload.GetAmount(), "err", err)
		return nil, err
	}
	prevBalance := escrow.Balance
	escrow.Balance -= payload.GetAmount()
	escrow.UpdatedSlot = a.height
	receipt.KV = append(receipt.KV, kvEscrow(escrow))
	receipt.Logs = append(receipt.Logs, escrowLog(pgt.EscrowOpWithdraw, escrow.Addr, prevBalance, escrow.Balance))
	return receipt, nil
}
