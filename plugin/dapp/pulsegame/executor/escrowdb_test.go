package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/pulsegame/common/crypto"
	pgt "github.com/33cn/pulsegame/plugin/dapp/pulsegame/types"
	"github.com/33cn/pulsegame/types"
	"github.com/33cn/pulsegame/util"
)

func escrowCreateAction(pubkey []byte) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionCreateEscrow,
		Value: &pgt.PulsegameAction_CreateEscrow{CreateEscrow: &pgt.EscrowCreate{SignPubkey: pubkey}},
	}
}

func escrowDepositAction(amount int64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionEscrowDeposit,
		Value: &pgt.PulsegameAction_EscrowDeposit{EscrowDeposit: &pgt.EscrowDeposit{Amount: amount}},
	}
}

func escrowWithdrawAction(amount int64) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionEscrowWithdraw,
		Value: &pgt.PulsegameAction_EscrowWithdraw{EscrowWithdraw: &pgt.EscrowWithdraw{Amount: amount}},
	}
}

func commitSignedAction(roundID uint64, user string, entries []*pgt.CommitEntry, evidence []*pgt.SignEvidence) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionCommitBatchSigned,
		Value: &pgt.PulsegameAction_CommitBatchSigned{CommitBatchSigned: &pgt.TicketCommitBatchSigned{
			RoundId:  roundID,
			User:     user,
			Entries:  entries,
			Evidence: evidence,
		}},
	}
}

func revealSignedAction(roundID uint64, user string, entries []*pgt.RevealEntry, evidence []*pgt.SignEvidence) *pgt.PulsegameAction {
	return &pgt.PulsegameAction{
		Ty: pgt.PulsegameActionRevealBatchSigned,
		Value: &pgt.PulsegameAction_RevealBatchSigned{RevealBatchSigned: &pgt.TicketRevealBatchSigned{
			RoundId:  roundID,
			User:     user,
			Entries:  entries,
			Evidence: evidence,
		}},
	}
}

// signedCommitEntries 为托管用户构造承诺及配套的离线签名证据
func signedCommitEntries(env *execEnv, signer crypto.PrivKey, roundID uint64, user string, nonces []uint64, guess uint32, salt []byte) ([]*pgt.CommitEntry, []*pgt.SignEvidence) {
	userID := pgt.UserID(user)
	entries := make([]*pgt.CommitEntry, 0, len(nonces))
	evidence := make([]*pgt.SignEvidence, 0, len(nonces))
	for _, nonce := range nonces {
		commitment := pgt.CommitmentHash(roundID, userID, nonce, guess, salt)
		entries = append(entries, &pgt.CommitEntry{Nonce: nonce, Commitment: commitment})
		msg := pgt.CommitMessage([]byte(env.execAddr), roundID, userID, nonce, commitment)
		evidence = append(evidence, signEvidence(signer, msg))
	}
	return entries, evidence
}

func TestCreateEscrowGuards(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)

	_, _, err := env.execTx(env.playerPriv, escrowCreateAction([]byte{1, 2, 3}))
	assert.Equal(t, pgt.ErrBadPubkeySize, err)

	_, receipt := env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(pgt.TyLogEscrow), receipt.Logs[0].Ty)
	escrow := env.loadEscrow(env.playerAddr)
	assert.Equal(t, env.playerAddr, escrow.Addr)
	assert.Equal(t, signer.PubKey().Bytes(), escrow.SignPubkey)
	assert.Equal(t, int64(0), escrow.Balance)
	assert.Equal(t, int64(10), escrow.CreatedSlot)

	_, _, err = env.execTx(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	assert.Equal(t, pgt.ErrEscrowExists, err)
}

func TestEscrowDepositWithdraw(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)
	env.fundToken(env.playerAddr, 10*testStake)

	// 先开户再充值
	_, _, err := env.execTx(env.playerPriv, escrowDepositAction(testStake))
	assert.Equal(t, types.ErrNotFound, err)

	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	_, _, err = env.execTx(env.playerPriv, escrowDepositAction(0))
	assert.Equal(t, types.ErrAmount, err)
	_, _, err = env.execTx(env.playerPriv, escrowDepositAction(types.MaxCoin+1))
	assert.Equal(t, types.ErrAmount, err)

	env.setHeight(20)
	env.mustExec(env.playerPriv, escrowDepositAction(3*testStake))
	escrow := env.loadEscrow(env.playerAddr)
	assert.Equal(t, 3*testStake, escrow.Balance)
	assert.Equal(t, int64(20), escrow.UpdatedSlot)
	acc := env.tokenOf(env.playerAddr)
	assert.Equal(t, 7*testStake, acc.Balance)
	assert.Equal(t, 3*testStake, acc.Frozen)

	// 取回不能超出托管余额
	_, _, err = env.execTx(env.playerPriv, escrowWithdrawAction(4*testStake))
	assert.Equal(t, pgt.ErrEscrowShort, err)

	env.mustExec(env.playerPriv, escrowWithdrawAction(testStake))
	escrow = env.loadEscrow(env.playerAddr)
	assert.Equal(t, 2*testStake, escrow.Balance)
	acc = env.tokenOf(env.playerAddr)
	assert.Equal(t, 8*testStake, acc.Balance)
	assert.Equal(t, 2*testStake, acc.Frozen)
}

func TestCommitBatchSigned(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	env.mustExec(env.playerPriv, escrowDepositAction(5*testStake))

	salt := testSalt(0x21)
	env.setHeight(50)
	entries, evidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{1, 2}, 1, salt)

	// 证据必须与条目一一对应
	_, _, err := env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, entries, evidence[:1]))
	assert.Equal(t, pgt.ErrEvidenceCount, err)

	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, "not-an-address", entries, evidence))
	assert.Error(t, err)

	// 没开托管户的用户不能由中继代提交
	strangerAddr, _ := util.Genaddress()
	sEntries, sEvidence := signedCommitEntries(env, signer, 1, strangerAddr, []uint64{1}, 1, salt)
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, strangerAddr, sEntries, sEvidence))
	assert.Equal(t, types.ErrNotFound, err)

	// 签名人必须是托管户登记的公钥
	other := edKey(t)
	oEntries, oEvidence := signedCommitEntries(env, other, 1, env.playerAddr, []uint64{1, 2}, 1, salt)
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, oEntries, oEvidence))
	assert.Equal(t, pgt.ErrEvidencePubkey, err)

	badEvidence := []*pgt.SignEvidence{signEvidence(signer, []byte("junk")), evidence[1]}
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, entries, badEvidence))
	assert.Equal(t, pgt.ErrEvidenceMessage, err)

	zeroSig := &pgt.SignEvidence{
		Pubkey:    signer.PubKey().Bytes(),
		Msg:       pgt.CommitMessage([]byte(env.execAddr), 1, pgt.UserID(env.playerAddr), 1, entries[0].Commitment),
		Signature: make([]byte, pgt.Ed25519SigBytes),
	}
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, entries[:1], []*pgt.SignEvidence{zeroSig}))
	assert.Equal(t, pgt.ErrEvidenceSignature, err)

	dupEntries, dupEvidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{3, 3}, 1, salt)
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, dupEntries, dupEvidence))
	assert.Equal(t, pgt.ErrTicketExists, err)

	_, receipt, err := env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, entries, evidence))
	require.NoError(t, err)
	last := receipt.Logs[len(receipt.Logs)-1]
	assert.Equal(t, int32(pgt.TyLogEscrow), last.Ty)
	var ep pgt.ReceiptEscrow
	require.NoError(t, types.Decode(last.Log, &ep))
	assert.Equal(t, pgt.EscrowOpDebit, ep.Op)
	assert.Equal(t, 5*testStake, ep.PrevBalance)
	assert.Equal(t, 3*testStake, ep.CurrentBalance)

	assert.Equal(t, 3*testStake, env.loadEscrow(env.playerAddr).Balance)
	ticket := env.loadTicket(1, env.playerAddr, 1)
	assert.True(t, ticket.ViaEscrow)
	assert.True(t, ticket.StakePaid)
	assert.Equal(t, pgt.DeriveBitIndex(1, pgt.UserID(env.playerAddr), 1), ticket.BitIndex)
	round := env.loadRound(1)
	assert.Equal(t, uint32(2), round.CommittedCount)
	assert.Equal(t, 2*testStake, round.VaultTokens)

	// 链上冻结在充值时已完成，代提交只动托管余额
	acc := env.tokenOf(env.playerAddr)
	assert.Equal(t, 5*testStake, acc.Balance)
	assert.Equal(t, 5*testStake, acc.Frozen)

	// 剩余3*stake不够4张票的押金
	bigEntries, bigEvidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{10, 11, 12, 13}, 1, salt)
	_, _, err = env.execTx(env.authPriv, commitSignedAction(1, env.playerAddr, bigEntries, bigEvidence))
	assert.Equal(t, pgt.ErrEscrowShort, err)
}

func TestCommitSignedServiceFee(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)
	feePool, _ := util.Genaddress()
	treasury, _ := util.Genaddress()
	env.setupConfig(true)
	env.setupTokenomics(100, feePool, treasury)
	env.mustExec(env.authPriv, &pgt.PulsegameAction{
		Ty:    pgt.PulsegameActionSetServiceFee,
		Value: &pgt.PulsegameAction_SetServiceFee{SetServiceFee: &pgt.PulseConfigServiceFee{ServiceFee: testServiceFee}},
	})
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	env.fundCoins(env.authAddr, 10*testServiceFee)
	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	env.mustExec(env.playerPriv, escrowDepositAction(5*testStake))

	env.setHeight(50)
	entries, evidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{1, 2}, 1, testSalt(0x22))
	env.mustExec(env.authPriv, commitSignedAction(1, env.playerAddr, entries, evidence))

	// 服务费由发交易的中继承担，不动托管用户
	assert.Equal(t, 8*testServiceFee, env.coinsOf(env.authAddr).Balance)
	assert.Equal(t, 2*testServiceFee, env.coinsOf(treasury).Balance)
	assert.Equal(t, int64(0), env.coinsOf(env.playerAddr).Balance)
}

func TestRevealBatchSigned(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	env.mustExec(env.playerPriv, escrowDepositAction(5*testStake))

	salt := testSalt(0x23)
	env.setHeight(50)
	entries, evidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{1, 2}, 1, salt)
	env.mustExec(env.authPriv, commitSignedAction(1, env.playerAddr, entries, evidence))

	env.setHeight(120)
	env.mustExec(env.authPriv, mockPulseAction(1, pulseForGuess(1, env.playerAddr, 1, 1)))

	env.setHeight(180)
	userID := pgt.UserID(env.playerAddr)
	revealEntries := []*pgt.RevealEntry{
		{Nonce: 1, Guess: 1, Salt: salt},
		{Nonce: 2, Guess: 1, Salt: salt},
	}
	revealEvidence := make([]*pgt.SignEvidence, 0, len(revealEntries))
	for _, entry := range revealEntries {
		msg := pgt.RevealMessage([]byte(env.execAddr), 1, userID, entry.Nonce, entry.Guess, entry.Salt)
		revealEvidence = append(revealEvidence, signEvidence(signer, msg))
	}

	_, _, err := env.execTx(env.authPriv, revealSignedAction(1, env.playerAddr, revealEntries, revealEvidence[:1]))
	assert.Equal(t, pgt.ErrEvidenceCount, err)

	// 目标用户没有托管户直接拒绝
	_, _, err = env.execTx(env.authPriv, revealSignedAction(1, env.authAddr, revealEntries, revealEvidence))
	assert.Equal(t, types.ErrNotFound, err)

	env.mustExec(env.authPriv, revealSignedAction(1, env.playerAddr, revealEntries, revealEvidence))
	ticket := env.loadTicket(1, env.playerAddr, 1)
	assert.True(t, ticket.Revealed)
	assert.True(t, ticket.Win)
	assert.Equal(t, uint32(2), env.loadRound(1).RevealedCount)

	_, _, err = env.execTx(env.authPriv, revealSignedAction(1, env.playerAddr, revealEntries, revealEvidence))
	assert.Equal(t, pgt.ErrTicketNotRevealable, err)
}

func TestRefundToEscrow(t *testing.T) {
	env := newExecEnv(t, 10)
	signer := edKey(t)
	env.setupConfig(true)
	env.setupRound(1, 100, 200)
	env.fundToken(env.playerAddr, 10*testStake)
	env.mustExec(env.playerPriv, escrowCreateAction(signer.PubKey().Bytes()))
	env.mustExec(env.playerPriv, escrowDepositAction(5*testStake))

	env.setHeight(50)
	entries, evidence := signedCommitEntries(env, signer, 1, env.playerAddr, []uint64{1}, 1, testSalt(0x24))
	env.mustExec(env.authPriv, commitSignedAction(1, env.playerAddr, entries, evidence))
	assert.Equal(t, 4*testStake, env.loadEscrow(env.playerAddr).Balance)

	// 脉冲缺席超时，押金退回托管余额而不是链上账户
	env.setHeight(351)
	_, receipt, err := env.execTx(env.authPriv, refundAction(1, env.playerAddr, 1))
	require.NoError(t, err)
	assert.Equal(t, 5*testStake, env.loadEscrow(env.playerAddr).Balance)
	acc := env.tokenOf(env.playerAddr)
	assert.Equal(t, 5*testStake, acc.Balance)
	assert.Equal(t, 5*testStake, acc.Frozen)

	hasCredit := false
	for _, l := range receipt.Logs {
		if l.Ty != pgt.TyLogEscrow {
			continue
		}
		var ep pgt.ReceiptEscrow
		require.NoError(t, types.Decode(l.Log, &ep))
		if ep.Op == pgt.EscrowOpCredit {
			hasCredit = true
			assert.Equal(t, 4*testStake, ep.PrevBalance)
			assert.Equal(t, 5*testStake, ep.CurrentBalance)
		}
	}
	assert.True(t, hasCredit)

	ticket := env.loadTicket(1, env.playerAddr, 1)
	assert.True(t, ticket.Processed)
	assert.True(t, ticket.Claimed)
	round := env.loadRound(1)
	assert.Equal(t, uint32(0), round.CommittedCount)
	assert.Equal(t, int64(0), round.VaultTokens)
}
