package types

import (
	fmt "fmt"
)

// PulseConfig 全局配置单例
type PulseConfig struct {
	Authority      string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	OraclePubkey   []byte `protobuf:"bytes,2,opt,name=oraclePubkey,proto3" json:"oraclePubkey,omitempty"`
	StakeAmount    int64  `protobuf:"varint,3,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	CommitWindow   int64  `protobuf:"varint,4,opt,name=commitWindow,proto3" json:"commitWindow,omitempty"`
	RevealWindow   int64  `protobuf:"varint,5,opt,name=revealWindow,proto3" json:"revealWindow,omitempty"`
	ClaimGrace     int64  `protobuf:"varint,6,opt,name=claimGrace,proto3" json:"claimGrace,omitempty"`
	ServiceFee     int64  `protobuf:"varint,7,opt,name=serviceFee,proto3" json:"serviceFee,omitempty"`
	Paused         bool   `protobuf:"varint,8,opt,name=paused,proto3" json:"paused,omitempty"`
	AllowMockPulse bool   `protobuf:"varint,9,opt,name=allowMockPulse,proto3" json:"allowMockPulse,omitempty"`
	Version        uint32 `protobuf:"varint,10,opt,name=version,proto3" json:"version,omitempty"`
	CreatedSlot    int64  `protobuf:"varint,11,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
	UpdatedSlot    int64  `protobuf:"varint,12,opt,name=updatedSlot,proto3" json:"updatedSlot,omitempty"`
}

func (m *PulseConfig) Reset()         { *m = PulseConfig{} }
func (m *PulseConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfig) ProtoMessage()    {}

// GetAuthority 获取管理员地址
func (m *PulseConfig) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

// GetOraclePubkey 获取预言机公钥
func (m *PulseConfig) GetOraclePubkey() []byte {
	if m != nil {
		return m.OraclePubkey
	}
	return nil
}

// GetStakeAmount 获取押金额
func (m *PulseConfig) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetCommitWindow 获取提交窗口
func (m *PulseConfig) GetCommitWindow() int64 {
	if m != nil {
		return m.CommitWindow
	}
	return 0
}

// GetRevealWindow 获取披露窗口
func (m *PulseConfig) GetRevealWindow() int64 {
	if m != nil {
		return m.RevealWindow
	}
	return 0
}

// GetClaimGrace 获取领奖宽限期
func (m *PulseConfig) GetClaimGrace() int64 {
	if m != nil {
		return m.ClaimGrace
	}
	return 0
}

// GetServiceFee 获取服务费
func (m *PulseConfig) GetServiceFee() int64 {
	if m != nil {
		return m.ServiceFee
	}
	return 0
}

// GetPaused 获取暂停状态
func (m *PulseConfig) GetPaused() bool {
	if m != nil {
		return m.Paused
	}
	return false
}

// GetAllowMockPulse 获取是否允许mock脉冲
func (m *PulseConfig) GetAllowMockPulse() bool {
	if m != nil {
		return m.AllowMockPulse
	}
	return false
}

// GetVersion 获取配置版本
func (m *PulseConfig) GetVersion() uint32 {
	if m != nil {
		return m.Version
	}
	return 0
}

// GetCreatedSlot 获取创建高度
func (m *PulseConfig) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// GetUpdatedSlot 获取更新高度
func (m *PulseConfig) GetUpdatedSlot() int64 {
	if m != nil {
		return m.UpdatedSlot
	}
	return 0
}

// RoundRegistry 轮次id分配器单例
type RoundRegistry struct {
	NextRoundId uint64 `protobuf:"varint,1,opt,name=nextRoundId,proto3" json:"nextRoundId,omitempty"`
	CreatedSlot int64  `protobuf:"varint,2,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
}

func (m *RoundRegistry) Reset()         { *m = RoundRegistry{} }
func (m *RoundRegistry) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundRegistry) ProtoMessage()    {}

// GetNextRoundId 获取下一个轮次id
func (m *RoundRegistry) GetNextRoundId() uint64 {
	if m != nil {
		return m.NextRoundId
	}
	return 0
}

// GetCreatedSlot 获取创建高度
func (m *RoundRegistry) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// PulseRound 一轮游戏
type PulseRound struct {
	RoundId          uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Status           int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	Authority        string `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
	CommitDeadline   int64  `protobuf:"varint,4,opt,name=commitDeadline,proto3" json:"commitDeadline,omitempty"`
	RevealDeadline   int64  `protobuf:"varint,5,opt,name=revealDeadline,proto3" json:"revealDeadline,omitempty"`
	PulseIndexTarget uint32 `protobuf:"varint,6,opt,name=pulseIndexTarget,proto3" json:"pulseIndexTarget,omitempty"`
	Pulse            []byte `protobuf:"bytes,7,opt,name=pulse,proto3" json:"pulse,omitempty"`
	PulseSet         bool   `protobuf:"varint,8,opt,name=pulseSet,proto3" json:"pulseSet,omitempty"`
	Finalized        bool   `protobuf:"varint,9,opt,name=finalized,proto3" json:"finalized,omitempty"`
	Swept            bool   `protobuf:"varint,10,opt,name=swept,proto3" json:"swept,omitempty"`
	TokenSettled     bool   `protobuf:"varint,11,opt,name=tokenSettled,proto3" json:"tokenSettled,omitempty"`
	PulseSlot        int64  `protobuf:"varint,12,opt,name=pulseSlot,proto3" json:"pulseSlot,omitempty"`
	FinalizedSlot    int64  `protobuf:"varint,13,opt,name=finalizedSlot,proto3" json:"finalizedSlot,omitempty"`
	SweptSlot        int64  `protobuf:"varint,14,opt,name=sweptSlot,proto3" json:"sweptSlot,omitempty"`
	TokenSettledSlot int64  `protobuf:"varint,15,opt,name=tokenSettledSlot,proto3" json:"tokenSettledSlot,omitempty"`
	CommittedCount   uint32 `protobuf:"varint,16,opt,name=committedCount,proto3" json:"committedCount,omitempty"`
	RevealedCount    uint32 `protobuf:"varint,17,opt,name=revealedCount,proto3" json:"revealedCount,omitempty"`
	WinCount         uint32 `protobuf:"varint,18,opt,name=winCount,proto3" json:"winCount,omitempty"`
	SettledCount     uint32 `protobuf:"varint,19,opt,name=settledCount,proto3" json:"settledCount,omitempty"`
	StakeAmount      int64  `protobuf:"varint,20,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	VaultTokens      int64  `protobuf:"varint,21,opt,name=vaultTokens,proto3" json:"vaultTokens,omitempty"`
	CreatedSlot      int64  `protobuf:"varint,22,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
	Index            int64  `protobuf:"varint,23,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex        int64  `protobuf:"varint,24,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *PulseRound) Reset()         { *m = PulseRound{} }
func (m *PulseRound) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseRound) ProtoMessage()    {}

// GetRoundId 获取轮次id
func (m *PulseRound) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

// GetStatus 获取轮次状态
func (m *PulseRound) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetAuthority 获取建轮人
func (m *PulseRound) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

// GetCommitDeadline 获取提交截止高度
func (m *PulseRound) GetCommitDeadline() int64 {
	if m != nil {
		return m.CommitDeadline
	}
	return 0
}

// GetRevealDeadline 获取披露截止高度
func (m *PulseRound) GetRevealDeadline() int64 {
	if m != nil {
		return m.RevealDeadline
	}
	return 0
}

// GetPulseIndexTarget 获取目标脉冲序号
func (m *PulseRound) GetPulseIndexTarget() uint32 {
	if m != nil {
		return m.PulseIndexTarget
	}
	return 0
}

// GetPulse 获取脉冲字节
func (m *PulseRound) GetPulse() []byte {
	if m != nil {
		return m.Pulse
	}
	return nil
}

// GetPulseSet 获取脉冲写入标记
func (m *PulseRound) GetPulseSet() bool {
	if m != nil {
		return m.PulseSet
	}
	return false
}

// GetFinalized 获取终结标记
func (m *PulseRound) GetFinalized() bool {
	if m != nil {
		return m.Finalized
	}
	return false
}

// GetSwept 获取清扫标记
func (m *PulseRound) GetSwept() bool {
	if m != nil {
		return m.Swept
	}
	return false
}

// GetTokenSettled 获取代币结算标记
func (m *PulseRound) GetTokenSettled() bool {
	if m != nil {
		return m.TokenSettled
	}
	return false
}

// GetPulseSlot 获取脉冲写入高度
func (m *PulseRound) GetPulseSlot() int64 {
	if m != nil {
		return m.PulseSlot
	}
	return 0
}

// GetFinalizedSlot 获取终结高度
func (m *PulseRound) GetFinalizedSlot() int64 {
	if m != nil {
		return m.FinalizedSlot
	}
	return 0
}

// GetSweptSlot 获取清扫高度
func (m *PulseRound) GetSweptSlot() int64 {
	if m != nil {
		return m.SweptSlot
	}
	return 0
}

// GetTokenSettledSlot 获取代币结算高度
func (m *PulseRound) GetTokenSettledSlot() int64 {
	if m != nil {
		return m.TokenSettledSlot
	}
	return 0
}

// GetCommittedCount 获取已提交票数
func (m *PulseRound) GetCommittedCount() uint32 {
	if m != nil {
		return m.CommittedCount
	}
	return 0
}

// GetRevealedCount 获取已披露票数
func (m *PulseRound) GetRevealedCount() uint32 {
	if m != nil {
		return m.RevealedCount
	}
	return 0
}

// GetWinCount 获取获胜票数
func (m *PulseRound) GetWinCount() uint32 {
	if m != nil {
		return m.WinCount
	}
	return 0
}

// GetSettledCount 获取已结算票数
func (m *PulseRound) GetSettledCount() uint32 {
	if m != nil {
		return m.SettledCount
	}
	return 0
}

// GetStakeAmount 获取本轮押金额
func (m *PulseRound) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetVaultTokens 获取托管代币量
func (m *PulseRound) GetVaultTokens() int64 {
	if m != nil {
		return m.VaultTokens
	}
	return 0
}

// GetCreatedSlot 获取创建高度
func (m *PulseRound) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// GetIndex 获取当前索引
func (m *PulseRound) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// GetPrevIndex 获取上一个索引
func (m *PulseRound) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// PulseTicket 一张票
type PulseTicket struct {
	RoundId     uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr        string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce       uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Commitment  []byte `protobuf:"bytes,4,opt,name=commitment,proto3" json:"commitment,omitempty"`
	BitIndex    uint32 `protobuf:"varint,5,opt,name=bitIndex,proto3" json:"bitIndex,omitempty"`
	StakePaid   bool   `protobuf:"varint,6,opt,name=stakePaid,proto3" json:"stakePaid,omitempty"`
	ViaEscrow   bool   `protobuf:"varint,7,opt,name=viaEscrow,proto3" json:"viaEscrow,omitempty"`
	Revealed    bool   `protobuf:"varint,8,opt,name=revealed,proto3" json:"revealed,omitempty"`
	Guess       uint32 `protobuf:"varint,9,opt,name=guess,proto3" json:"guess,omitempty"`
	Win         bool   `protobuf:"varint,10,opt,name=win,proto3" json:"win,omitempty"`
	Processed   bool   `protobuf:"varint,11,opt,name=processed,proto3" json:"processed,omitempty"`
	Claimed     bool   `protobuf:"varint,12,opt,name=claimed,proto3" json:"claimed,omitempty"`
	Swept       bool   `protobuf:"varint,13,opt,name=swept,proto3" json:"swept,omitempty"`
	StakeAmount int64  `protobuf:"varint,14,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	CommitSlot  int64  `protobuf:"varint,15,opt,name=commitSlot,proto3" json:"commitSlot,omitempty"`
	RevealSlot  int64  `protobuf:"varint,16,opt,name=revealSlot,proto3" json:"revealSlot,omitempty"`
	SettledSlot int64  `protobuf:"varint,17,opt,name=settledSlot,proto3" json:"settledSlot,omitempty"`
	ClaimedSlot int64  `protobuf:"varint,18,opt,name=claimedSlot,proto3" json:"claimedSlot,omitempty"`
	Index       int64  `protobuf:"varint,19,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex   int64  `protobuf:"varint,20,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *PulseTicket) Reset()         { *m = PulseTicket{} }
func (m *PulseTicket) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseTicket) ProtoMessage()    {}

// GetRoundId 获取轮次id
func (m *PulseTicket) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

// GetAddr 获取持票人地址
func (m *PulseTicket) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetNonce 获取票据序号
func (m *PulseTicket) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// GetCommitment 获取承诺哈希
func (m *PulseTicket) GetCommitment() []byte {
	if m != nil {
		return m.Commitment
	}
	return nil
}

// GetBitIndex 获取脉冲位下标
func (m *PulseTicket) GetBitIndex() uint32 {
	if m != nil {
		return m.BitIndex
	}
	return 0
}

// GetStakePaid 获取押金到位标记
func (m *PulseTicket) GetStakePaid() bool {
	if m != nil {
		return m.StakePaid
	}
	return false
}

// GetViaEscrow 获取是否托管代付
func (m *PulseTicket) GetViaEscrow() bool {
	if m != nil {
		return m.ViaEscrow
	}
	return false
}

// GetRevealed 获取披露标记
func (m *PulseTicket) GetRevealed() bool {
	if m != nil {
		return m.Revealed
	}
	return false
}

// GetGuess 获取猜测值
func (m *PulseTicket) GetGuess() uint32 {
	if m != nil {
		return m.Guess
	}
	return 0
}

// GetWin 获取是否获胜
func (m *PulseTicket) GetWin() bool {
	if m != nil {
		return m.Win
	}
	return false
}

// GetProcessed 获取代币结算标记
func (m *PulseTicket) GetProcessed() bool {
	if m != nil {
		return m.Processed
	}
	return false
}

// GetClaimed 获取领奖标记
func (m *PulseTicket) GetClaimed() bool {
	if m != nil {
		return m.Claimed
	}
	return false
}

// GetSwept 获取清扫标记
func (m *PulseTicket) GetSwept() bool {
	if m != nil {
		return m.Swept
	}
	return false
}

// GetStakeAmount 获取押金额
func (m *PulseTicket) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetCommitSlot 获取提交高度
func (m *PulseTicket) GetCommitSlot() int64 {
	if m != nil {
		return m.CommitSlot
	}
	return 0
}

// GetRevealSlot 获取披露高度
func (m *PulseTicket) GetRevealSlot() int64 {
	if m != nil {
		return m.RevealSlot
	}
	return 0
}

// GetSettledSlot 获取结算高度
func (m *PulseTicket) GetSettledSlot() int64 {
	if m != nil {
		return m.SettledSlot
	}
	return 0
}

// GetClaimedSlot 获取领奖高度
func (m *PulseTicket) GetClaimedSlot() int64 {
	if m != nil {
		return m.ClaimedSlot
	}
	return 0
}

// GetIndex 获取当前索引
func (m *PulseTicket) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// GetPrevIndex 获取上一个索引
func (m *PulseTicket) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// UserEscrow 用户托管账户，用于代提交
type UserEscrow struct {
	Addr        string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	SignPubkey  []byte `protobuf:"bytes,2,opt,name=signPubkey,proto3" json:"signPubkey,omitempty"`
	Balance     int64  `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	CreatedSlot int64  `protobuf:"varint,4,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
	UpdatedSlot int64  `protobuf:"varint,5,opt,name=updatedSlot,proto3" json:"updatedSlot,omitempty"`
}

func (m *UserEscrow) Reset()         { *m = UserEscrow{} }
func (m *UserEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*UserEscrow) ProtoMessage()    {}

// GetAddr 获取托管账户地址
func (m *UserEscrow) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetSignPubkey 获取代签公钥
func (m *UserEscrow) GetSignPubkey() []byte {
	if m != nil {
		return m.SignPubkey
	}
	return nil
}

// GetBalance 获取托管余额
func (m *UserEscrow) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetCreatedSlot 获取创建高度
func (m *UserEscrow) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// GetUpdatedSlot 获取更新高度
func (m *UserEscrow) GetUpdatedSlot() int64 {
	if m != nil {
		return m.UpdatedSlot
	}
	return 0
}

// PulseTokenomics 代币经济参数单例
type PulseTokenomics struct {
	RewardFeeBps uint32 `protobuf:"varint,1,opt,name=rewardFeeBps,proto3" json:"rewardFeeBps,omitempty"`
	FeePool      string `protobuf:"bytes,2,opt,name=feePool,proto3" json:"feePool,omitempty"`
	Treasury     string `protobuf:"bytes,3,opt,name=treasury,proto3" json:"treasury,omitempty"`
	CreatedSlot  int64  `protobuf:"varint,4,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
	UpdatedSlot  int64  `protobuf:"varint,5,opt,name=updatedSlot,proto3" json:"updatedSlot,omitempty"`
}

func (m *PulseTokenomics) Reset()         { *m = PulseTokenomics{} }
func (m *PulseTokenomics) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseTokenomics) ProtoMessage()    {}

// GetRewardFeeBps 获取奖励抽成
func (m *PulseTokenomics) GetRewardFeeBps() uint32 {
	if m != nil {
		return m.RewardFeeBps
	}
	return 0
}

// GetFeePool 获取抽成接收地址
func (m *PulseTokenomics) GetFeePool() string {
	if m != nil {
		return m.FeePool
	}
	return ""
}

// GetTreasury 获取金库地址
func (m *PulseTokenomics) GetTreasury() string {
	if m != nil {
		return m.Treasury
	}
	return ""
}

// GetCreatedSlot 获取创建高度
func (m *PulseTokenomics) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// GetUpdatedSlot 获取更新高度
func (m *PulseTokenomics) GetUpdatedSlot() int64 {
	if m != nil {
		return m.UpdatedSlot
	}
	return 0
}

// OracleSet 预言机集合
type OracleSet struct {
	Oracles     [][]byte `protobuf:"bytes,1,rep,name=oracles,proto3" json:"oracles,omitempty"`
	Threshold   uint32   `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	CreatedSlot int64    `protobuf:"varint,3,opt,name=createdSlot,proto3" json:"createdSlot,omitempty"`
	UpdatedSlot int64    `protobuf:"varint,4,opt,name=updatedSlot,proto3" json:"updatedSlot,omitempty"`
}

func (m *OracleSet) Reset()         { *m = OracleSet{} }
func (m *OracleSet) String() string { return fmt.Sprintf("%+v", *m) }
func (*OracleSet) ProtoMessage()    {}

// GetOracles 获取预言机公钥列表
func (m *OracleSet) GetOracles() [][]byte {
	if m != nil {
		return m.Oracles
	}
	return nil
}

// GetThreshold 获取门限
func (m *OracleSet) GetThreshold() uint32 {
	if m != nil {
		return m.Threshold
	}
	return 0
}

// GetCreatedSlot 获取创建高度
func (m *OracleSet) GetCreatedSlot() int64 {
	if m != nil {
		return m.CreatedSlot
	}
	return 0
}

// GetUpdatedSlot 获取更新高度
func (m *OracleSet) GetUpdatedSlot() int64 {
	if m != nil {
		return m.UpdatedSlot
	}
	return 0
}

// SignEvidence ed25519签名证据
type SignEvidence struct {
	Pubkey    []byte `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Msg       []byte `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *SignEvidence) Reset()         { *m = SignEvidence{} }
func (m *SignEvidence) String() string { return fmt.Sprintf("%+v", *m) }
func (*SignEvidence) ProtoMessage()    {}

// GetPubkey 获取签名公钥
func (m *SignEvidence) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

// GetMsg 获取被签名消息
func (m *SignEvidence) GetMsg() []byte {
	if m != nil {
		return m.Msg
	}
	return nil
}

// GetSignature 获取签名
func (m *SignEvidence) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// PulseConfigCreate 创建配置
type PulseConfigCreate struct {
	StakeAmount    int64  `protobuf:"varint,1,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	CommitWindow   int64  `protobuf:"varint,2,opt,name=commitWindow,proto3" json:"commitWindow,omitempty"`
	RevealWindow   int64  `protobuf:"varint,3,opt,name=revealWindow,proto3" json:"revealWindow,omitempty"`
	ClaimGrace     int64  `protobuf:"varint,4,opt,name=claimGrace,proto3" json:"claimGrace,omitempty"`
	ServiceFee     int64  `protobuf:"varint,5,opt,name=serviceFee,proto3" json:"serviceFee,omitempty"`
	OraclePubkey   []byte `protobuf:"bytes,6,opt,name=oraclePubkey,proto3" json:"oraclePubkey,omitempty"`
	AllowMockPulse bool   `protobuf:"varint,7,opt,name=allowMockPulse,proto3" json:"allowMockPulse,omitempty"`
}

func (m *PulseConfigCreate) Reset()         { *m = PulseConfigCreate{} }
func (m *PulseConfigCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigCreate) ProtoMessage()    {}

func (m *PulseConfigCreate) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

func (m *PulseConfigCreate) GetCommitWindow() int64 {
	if m != nil {
		return m.CommitWindow
	}
	return 0
}

func (m *PulseConfigCreate) GetRevealWindow() int64 {
	if m != nil {
		return m.RevealWindow
	}
	return 0
}

func (m *PulseConfigCreate) GetClaimGrace() int64 {
	if m != nil {
		return m.ClaimGrace
	}
	return 0
}

func (m *PulseConfigCreate) GetServiceFee() int64 {
	if m != nil {
		return m.ServiceFee
	}
	return 0
}

func (m *PulseConfigCreate) GetOraclePubkey() []byte {
	if m != nil {
		return m.OraclePubkey
	}
	return nil
}

func (m *PulseConfigCreate) GetAllowMockPulse() bool {
	if m != nil {
		return m.AllowMockPulse
	}
	return false
}

// PulseConfigPause 设置暂停开关
type PulseConfigPause struct {
	Pause bool `protobuf:"varint,1,opt,name=pause,proto3" json:"pause,omitempty"`
}

func (m *PulseConfigPause) Reset()         { *m = PulseConfigPause{} }
func (m *PulseConfigPause) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigPause) ProtoMessage()    {}

func (m *PulseConfigPause) GetPause() bool {
	if m != nil {
		return m.Pause
	}
	return false
}

// PulseConfigStake 更新押金额
type PulseConfigStake struct {
	StakeAmount int64 `protobuf:"varint,1,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
}

func (m *PulseConfigStake) Reset()         { *m = PulseConfigStake{} }
func (m *PulseConfigStake) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigStake) ProtoMessage()    {}

func (m *PulseConfigStake) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// PulseConfigClaimGrace 更新领奖宽限期
type PulseConfigClaimGrace struct {
	ClaimGrace int64 `protobuf:"varint,1,opt,name=claimGrace,proto3" json:"claimGrace,omitempty"`
}

func (m *PulseConfigClaimGrace) Reset()         { *m = PulseConfigClaimGrace{} }
func (m *PulseConfigClaimGrace) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigClaimGrace) ProtoMessage()    {}

func (m *PulseConfigClaimGrace) GetClaimGrace() int64 {
	if m != nil {
		return m.ClaimGrace
	}
	return 0
}

// PulseConfigServiceFee 更新服务费
type PulseConfigServiceFee struct {
	ServiceFee int64 `protobuf:"varint,1,opt,name=serviceFee,proto3" json:"serviceFee,omitempty"`
}

func (m *PulseConfigServiceFee) Reset()         { *m = PulseConfigServiceFee{} }
func (m *PulseConfigServiceFee) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigServiceFee) ProtoMessage()    {}

func (m *PulseConfigServiceFee) GetServiceFee() int64 {
	if m != nil {
		return m.ServiceFee
	}
	return 0
}

// PulseConfigOracleKey 更新预言机公钥
type PulseConfigOracleKey struct {
	OraclePubkey []byte `protobuf:"bytes,1,opt,name=oraclePubkey,proto3" json:"oraclePubkey,omitempty"`
}

func (m *PulseConfigOracleKey) Reset()         { *m = PulseConfigOracleKey{} }
func (m *PulseConfigOracleKey) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigOracleKey) ProtoMessage()    {}

func (m *PulseConfigOracleKey) GetOraclePubkey() []byte {
	if m != nil {
		return m.OraclePubkey
	}
	return nil
}

// PulseConfigMigrate 迁移配置版本
type PulseConfigMigrate struct {
	TargetVersion uint32 `protobuf:"varint,1,opt,name=targetVersion,proto3" json:"targetVersion,omitempty"`
}

func (m *PulseConfigMigrate) Reset()         { *m = PulseConfigMigrate{} }
func (m *PulseConfigMigrate) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigMigrate) ProtoMessage()    {}

func (m *PulseConfigMigrate) GetTargetVersion() uint32 {
	if m != nil {
		return m.TargetVersion
	}
	return 0
}

// PulseConfigClose 关闭配置
type PulseConfigClose struct {
}

func (m *PulseConfigClose) Reset()         { *m = PulseConfigClose{} }
func (m *PulseConfigClose) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseConfigClose) ProtoMessage()    {}

// RegistryCreate 创建轮次id分配器
type RegistryCreate struct {
}

func (m *RegistryCreate) Reset()         { *m = RegistryCreate{} }
func (m *RegistryCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegistryCreate) ProtoMessage()    {}

// RoundCreate 手动建轮
type RoundCreate struct {
	RoundId          uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	CommitDeadline   int64  `protobuf:"varint,2,opt,name=commitDeadline,proto3" json:"commitDeadline,omitempty"`
	RevealDeadline   int64  `protobuf:"varint,3,opt,name=revealDeadline,proto3" json:"revealDeadline,omitempty"`
	PulseIndexTarget uint32 `protobuf:"varint,4,opt,name=pulseIndexTarget,proto3" json:"pulseIndexTarget,omitempty"`
}

func (m *RoundCreate) Reset()         { *m = RoundCreate{} }
func (m *RoundCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundCreate) ProtoMessage()    {}

func (m *RoundCreate) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *RoundCreate) GetCommitDeadline() int64 {
	if m != nil {
		return m.CommitDeadline
	}
	return 0
}

func (m *RoundCreate) GetRevealDeadline() int64 {
	if m != nil {
		return m.RevealDeadline
	}
	return 0
}

func (m *RoundCreate) GetPulseIndexTarget() uint32 {
	if m != nil {
		return m.PulseIndexTarget
	}
	return 0
}

// RoundCreateAuto 按注册器自动分配id建轮
type RoundCreateAuto struct {
	CommitWindow     int64  `protobuf:"varint,1,opt,name=commitWindow,proto3" json:"commitWindow,omitempty"`
	RevealWindow     int64  `protobuf:"varint,2,opt,name=revealWindow,proto3" json:"revealWindow,omitempty"`
	PulseIndexTarget uint32 `protobuf:"varint,3,opt,name=pulseIndexTarget,proto3" json:"pulseIndexTarget,omitempty"`
}

func (m *RoundCreateAuto) Reset()         { *m = RoundCreateAuto{} }
func (m *RoundCreateAuto) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundCreateAuto) ProtoMessage()    {}

func (m *RoundCreateAuto) GetCommitWindow() int64 {
	if m != nil {
		return m.CommitWindow
	}
	return 0
}

func (m *RoundCreateAuto) GetRevealWindow() int64 {
	if m != nil {
		return m.RevealWindow
	}
	return 0
}

func (m *RoundCreateAuto) GetPulseIndexTarget() uint32 {
	if m != nil {
		return m.PulseIndexTarget
	}
	return 0
}

// VaultFund 注资轮次奖池
type VaultFund struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Amount  int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *VaultFund) Reset()         { *m = VaultFund{} }
func (m *VaultFund) String() string { return fmt.Sprintf("%+v", *m) }
func (*VaultFund) ProtoMessage()    {}

func (m *VaultFund) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *VaultFund) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// CommitEntry 批量提交中的一项
type CommitEntry struct {
	Nonce      uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment,omitempty"`
}

func (m *CommitEntry) Reset()         { *m = CommitEntry{} }
func (m *CommitEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*CommitEntry) ProtoMessage()    {}

func (m *CommitEntry) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

func (m *CommitEntry) GetCommitment() []byte {
	if m != nil {
		return m.Commitment
	}
	return nil
}

// TicketCommit 提交一张票
type TicketCommit struct {
	RoundId    uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Nonce      uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Commitment []byte `protobuf:"bytes,3,opt,name=commitment,proto3" json:"commitment,omitempty"`
}

func (m *TicketCommit) Reset()         { *m = TicketCommit{} }
func (m *TicketCommit) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketCommit) ProtoMessage()    {}

func (m *TicketCommit) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketCommit) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

func (m *TicketCommit) GetCommitment() []byte {
	if m != nil {
		return m.Commitment
	}
	return nil
}

// TicketCommitBatch 批量提交
type TicketCommitBatch struct {
	RoundId uint64         `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Entries []*CommitEntry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *TicketCommitBatch) Reset()         { *m = TicketCommitBatch{} }
func (m *TicketCommitBatch) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketCommitBatch) ProtoMessage()    {}

func (m *TicketCommitBatch) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketCommitBatch) GetEntries() []*CommitEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

// TicketCommitBatchSigned 带签名证据的代提交
type TicketCommitBatchSigned struct {
	RoundId  uint64          `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	User     string          `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	Entries  []*CommitEntry  `protobuf:"bytes,3,rep,name=entries,proto3" json:"entries,omitempty"`
	Evidence []*SignEvidence `protobuf:"bytes,4,rep,name=evidence,proto3" json:"evidence,omitempty"`
}

func (m *TicketCommitBatchSigned) Reset()         { *m = TicketCommitBatchSigned{} }
func (m *TicketCommitBatchSigned) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketCommitBatchSigned) ProtoMessage()    {}

func (m *TicketCommitBatchSigned) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketCommitBatchSigned) GetUser() string {
	if m != nil {
		return m.User
	}
	return ""
}

func (m *TicketCommitBatchSigned) GetEntries() []*CommitEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

func (m *TicketCommitBatchSigned) GetEvidence() []*SignEvidence {
	if m != nil {
		return m.Evidence
	}
	return nil
}

// RevealEntry 批量披露中的一项
type RevealEntry struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Guess uint32 `protobuf:"varint,2,opt,name=guess,proto3" json:"guess,omitempty"`
	Salt  []byte `protobuf:"bytes,3,opt,name=salt,proto3" json:"salt,omitempty"`
}

func (m *RevealEntry) Reset()         { *m = RevealEntry{} }
func (m *RevealEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*RevealEntry) ProtoMessage()    {}

func (m *RevealEntry) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

func (m *RevealEntry) GetGuess() uint32 {
	if m != nil {
		return m.Guess
	}
	return 0
}

func (m *RevealEntry) GetSalt() []byte {
	if m != nil {
		return m.Salt
	}
	return nil
}

// TicketReveal 披露一张票
type TicketReveal struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Nonce   uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Guess   uint32 `protobuf:"varint,3,opt,name=guess,proto3" json:"guess,omitempty"`
	Salt    []byte `protobuf:"bytes,4,opt,name=salt,proto3" json:"salt,omitempty"`
}

func (m *TicketReveal) Reset()         { *m = TicketReveal{} }
func (m *TicketReveal) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketReveal) ProtoMessage()    {}

func (m *TicketReveal) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketReveal) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

func (m *TicketReveal) GetGuess() uint32 {
	if m != nil {
		return m.Guess
	}
	return 0
}

func (m *TicketReveal) GetSalt() []byte {
	if m != nil {
		return m.Salt
	}
	return nil
}

// TicketRevealBatch 批量披露
type TicketRevealBatch struct {
	RoundId uint64         `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Entries []*RevealEntry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *TicketRevealBatch) Reset()         { *m = TicketRevealBatch{} }
func (m *TicketRevealBatch) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketRevealBatch) ProtoMessage()    {}

func (m *TicketRevealBatch) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketRevealBatch) GetEntries() []*RevealEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

// TicketRevealBatchSigned 带签名证据的代披露
type TicketRevealBatchSigned struct {
	RoundId  uint64          `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	User     string          `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	Entries  []*RevealEntry  `protobuf:"bytes,3,rep,name=entries,proto3" json:"entries,omitempty"`
	Evidence []*SignEvidence `protobuf:"bytes,4,rep,name=evidence,proto3" json:"evidence,omitempty"`
}

func (m *TicketRevealBatchSigned) Reset()         { *m = TicketRevealBatchSigned{} }
func (m *TicketRevealBatchSigned) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketRevealBatchSigned) ProtoMessage()    {}

func (m *TicketRevealBatchSigned) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketRevealBatchSigned) GetUser() string {
	if m != nil {
		return m.User
	}
	return ""
}

func (m *TicketRevealBatchSigned) GetEntries() []*RevealEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

func (m *TicketRevealBatchSigned) GetEvidence() []*SignEvidence {
	if m != nil {
		return m.Evidence
	}
	return nil
}

// PulseSet 写入带预言机签名的脉冲
type PulseSet struct {
	RoundId  uint64        `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Pulse    []byte        `protobuf:"bytes,2,opt,name=pulse,proto3" json:"pulse,omitempty"`
	Evidence *SignEvidence `protobuf:"bytes,3,opt,name=evidence,proto3" json:"evidence,omitempty"`
}

func (m *PulseSet) Reset()         { *m = PulseSet{} }
func (m *PulseSet) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseSet) ProtoMessage()    {}

func (m *PulseSet) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *PulseSet) GetPulse() []byte {
	if m != nil {
		return m.Pulse
	}
	return nil
}

func (m *PulseSet) GetEvidence() *SignEvidence {
	if m != nil {
		return m.Evidence
	}
	return nil
}

// PulseSetMock 写入无签名的测试脉冲
type PulseSetMock struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Pulse   []byte `protobuf:"bytes,2,opt,name=pulse,proto3" json:"pulse,omitempty"`
}

func (m *PulseSetMock) Reset()         { *m = PulseSetMock{} }
func (m *PulseSetMock) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulseSetMock) ProtoMessage()    {}

func (m *PulseSetMock) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *PulseSetMock) GetPulse() []byte {
	if m != nil {
		return m.Pulse
	}
	return nil
}

// RoundFinalize 终结一轮
type RoundFinalize struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
}

func (m *RoundFinalize) Reset()         { *m = RoundFinalize{} }
func (m *RoundFinalize) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundFinalize) ProtoMessage()    {}

func (m *RoundFinalize) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

// TicketRef 票据引用
type TicketRef struct {
	Addr  string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *TicketRef) Reset()         { *m = TicketRef{} }
func (m *TicketRef) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketRef) ProtoMessage()    {}

func (m *TicketRef) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *TicketRef) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// RoundSettle 分批结算代币
type RoundSettle struct {
	RoundId uint64       `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Tickets []*TicketRef `protobuf:"bytes,2,rep,name=tickets,proto3" json:"tickets,omitempty"`
}

func (m *RoundSettle) Reset()         { *m = RoundSettle{} }
func (m *RoundSettle) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundSettle) ProtoMessage()    {}

func (m *RoundSettle) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *RoundSettle) GetTickets() []*TicketRef {
	if m != nil {
		return m.Tickets
	}
	return nil
}

// RewardClaim 领取奖励
type RewardClaim struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Nonce   uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *RewardClaim) Reset()         { *m = RewardClaim{} }
func (m *RewardClaim) String() string { return fmt.Sprintf("%+v", *m) }
func (*RewardClaim) ProtoMessage()    {}

func (m *RewardClaim) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *RewardClaim) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// RoundSweep 宽限期后清扫未领取奖励
type RoundSweep struct {
	RoundId uint64       `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Tickets []*TicketRef `protobuf:"bytes,2,rep,name=tickets,proto3" json:"tickets,omitempty"`
}

func (m *RoundSweep) Reset()         { *m = RoundSweep{} }
func (m *RoundSweep) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundSweep) ProtoMessage()    {}

func (m *RoundSweep) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *RoundSweep) GetTickets() []*TicketRef {
	if m != nil {
		return m.Tickets
	}
	return nil
}

// TicketRefund 超时退款
type TicketRefund struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce   uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *TicketRefund) Reset()         { *m = TicketRefund{} }
func (m *TicketRefund) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketRefund) ProtoMessage()    {}

func (m *TicketRefund) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketRefund) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *TicketRefund) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// RoundClose 关闭已结清的轮次
type RoundClose struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
}

func (m *RoundClose) Reset()         { *m = RoundClose{} }
func (m *RoundClose) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundClose) ProtoMessage()    {}

func (m *RoundClose) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

// TicketClose 关闭已结清的票据
type TicketClose struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce   uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *TicketClose) Reset()         { *m = TicketClose{} }
func (m *TicketClose) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketClose) ProtoMessage()    {}

func (m *TicketClose) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketClose) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *TicketClose) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// EscrowCreate 创建托管账户
type EscrowCreate struct {
	SignPubkey []byte `protobuf:"bytes,1,opt,name=signPubkey,proto3" json:"signPubkey,omitempty"`
}

func (m *EscrowCreate) Reset()         { *m = EscrowCreate{} }
func (m *EscrowCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*EscrowCreate) ProtoMessage()    {}

func (m *EscrowCreate) GetSignPubkey() []byte {
	if m != nil {
		return m.SignPubkey
	}
	return nil
}

// EscrowDeposit 托管充值
type EscrowDeposit struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *EscrowDeposit) Reset()         { *m = EscrowDeposit{} }
func (m *EscrowDeposit) String() string { return fmt.Sprintf("%+v", *m) }
func (*EscrowDeposit) ProtoMessage()    {}

func (m *EscrowDeposit) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// EscrowWithdraw 托管提现
type EscrowWithdraw struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *EscrowWithdraw) Reset()         { *m = EscrowWithdraw{} }
func (m *EscrowWithdraw) String() string { return fmt.Sprintf("%+v", *m) }
func (*EscrowWithdraw) ProtoMessage()    {}

func (m *EscrowWithdraw) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// OracleSetCreate 创建预言机集合
type OracleSetCreate struct {
}

func (m *OracleSetCreate) Reset()         { *m = OracleSetCreate{} }
func (m *OracleSetCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*OracleSetCreate) ProtoMessage()    {}

// OracleAdd 添加预言机公钥
type OracleAdd struct {
	Pubkey []byte `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
}

func (m *OracleAdd) Reset()         { *m = OracleAdd{} }
func (m *OracleAdd) String() string { return fmt.Sprintf("%+v", *m) }
func (*OracleAdd) ProtoMessage()    {}

func (m *OracleAdd) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

// OracleRemove 移除预言机公钥
type OracleRemove struct {
	Pubkey []byte `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
}

func (m *OracleRemove) Reset()         { *m = OracleRemove{} }
func (m *OracleRemove) String() string { return fmt.Sprintf("%+v", *m) }
func (*OracleRemove) ProtoMessage()    {}

func (m *OracleRemove) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

// OracleThreshold 设置门限
type OracleThreshold struct {
	Threshold uint32 `protobuf:"varint,1,opt,name=threshold,proto3" json:"threshold,omitempty"`
}

func (m *OracleThreshold) Reset()         { *m = OracleThreshold{} }
func (m *OracleThreshold) String() string { return fmt.Sprintf("%+v", *m) }
func (*OracleThreshold) ProtoMessage()    {}

func (m *OracleThreshold) GetThreshold() uint32 {
	if m != nil {
		return m.Threshold
	}
	return 0
}

// TokenomicsCreate 创建代币经济参数
type TokenomicsCreate struct {
	RewardFeeBps uint32 `protobuf:"varint,1,opt,name=rewardFeeBps,proto3" json:"rewardFeeBps,omitempty"`
	FeePool      string `protobuf:"bytes,2,opt,name=feePool,proto3" json:"feePool,omitempty"`
	Treasury     string `protobuf:"bytes,3,opt,name=treasury,proto3" json:"treasury,omitempty"`
}

func (m *TokenomicsCreate) Reset()         { *m = TokenomicsCreate{} }
func (m *TokenomicsCreate) String() string { return fmt.Sprintf("%+v", *m) }
func (*TokenomicsCreate) ProtoMessage()    {}

func (m *TokenomicsCreate) GetRewardFeeBps() uint32 {
	if m != nil {
		return m.RewardFeeBps
	}
	return 0
}

func (m *TokenomicsCreate) GetFeePool() string {
	if m != nil {
		return m.FeePool
	}
	return ""
}

func (m *TokenomicsCreate) GetTreasury() string {
	if m != nil {
		return m.Treasury
	}
	return ""
}

// TokenomicsUpdate 更新代币经济参数
type TokenomicsUpdate struct {
	RewardFeeBps uint32 `protobuf:"varint,1,opt,name=rewardFeeBps,proto3" json:"rewardFeeBps,omitempty"`
	UpdateBps    bool   `protobuf:"varint,2,opt,name=updateBps,proto3" json:"updateBps,omitempty"`
	FeePool      string `protobuf:"bytes,3,opt,name=feePool,proto3" json:"feePool,omitempty"`
	Treasury     string `protobuf:"bytes,4,opt,name=treasury,proto3" json:"treasury,omitempty"`
}

func (m *TokenomicsUpdate) Reset()         { *m = TokenomicsUpdate{} }
func (m *TokenomicsUpdate) String() string { return fmt.Sprintf("%+v", *m) }
func (*TokenomicsUpdate) ProtoMessage()    {}

func (m *TokenomicsUpdate) GetRewardFeeBps() uint32 {
	if m != nil {
		return m.RewardFeeBps
	}
	return 0
}

func (m *TokenomicsUpdate) GetUpdateBps() bool {
	if m != nil {
		return m.UpdateBps
	}
	return false
}

func (m *TokenomicsUpdate) GetFeePool() string {
	if m != nil {
		return m.FeePool
	}
	return ""
}

func (m *TokenomicsUpdate) GetTreasury() string {
	if m != nil {
		return m.Treasury
	}
	return ""
}

// TreasuryWithdraw 提取金库主币
type TreasuryWithdraw struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TreasuryWithdraw) Reset()         { *m = TreasuryWithdraw{} }
func (m *TreasuryWithdraw) String() string { return fmt.Sprintf("%+v", *m) }
func (*TreasuryWithdraw) ProtoMessage()    {}

func (m *TreasuryWithdraw) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// TreasuryWithdrawToken 提取金库代币
type TreasuryWithdrawToken struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TreasuryWithdrawToken) Reset()         { *m = TreasuryWithdrawToken{} }
func (m *TreasuryWithdrawToken) String() string { return fmt.Sprintf("%+v", *m) }
func (*TreasuryWithdrawToken) ProtoMessage()    {}

func (m *TreasuryWithdrawToken) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// PulsegameAction 游戏动作
type PulsegameAction struct {
	// Types that are valid to be assigned to Value:
	//	*PulsegameAction_CreateConfig
	//	*PulsegameAction_SetPause
	//	*PulsegameAction_UpdateStake
	//	*PulsegameAction_SetClaimGrace
	//	*PulsegameAction_SetServiceFee
	//	*PulsegameAction_SetOracleKey
	//	*PulsegameAction_MigrateConfig
	//	*PulsegameAction_CloseConfig
	//	*PulsegameAction_CreateRegistry
	//	*PulsegameAction_CreateRound
	//	*PulsegameAction_CreateRoundAuto
	//	*PulsegameAction_FundVault
	//	*PulsegameAction_Commit
	//	*PulsegameAction_CommitBatch
	//	*PulsegameAction_CommitBatchSigned
	//	*PulsegameAction_Reveal
	//	*PulsegameAction_RevealBatch
	//	*PulsegameAction_RevealBatchSigned
	//	*PulsegameAction_SetPulse
	//	*PulsegameAction_SetPulseMock
	//	*PulsegameAction_FinalizeRound
	//	*PulsegameAction_SettleRound
	//	*PulsegameAction_ClaimReward
	//	*PulsegameAction_SweepRound
	//	*PulsegameAction_RefundTicket
	//	*PulsegameAction_CloseRound
	//	*PulsegameAction_CloseTicket
	//	*PulsegameAction_CreateEscrow
	//	*PulsegameAction_EscrowDeposit
	//	*PulsegameAction_EscrowWithdraw
	//	*PulsegameAction_CreateOracleSet
	//	*PulsegameAction_AddOracle
	//	*PulsegameAction_RemoveOracle
	//	*PulsegameAction_SetOracleThreshold
	//	*PulsegameAction_CreateTokenomics
	//	*PulsegameAction_UpdateTokenomics
	//	*PulsegameAction_WithdrawTreasury
	//	*PulsegameAction_WithdrawTreasuryToken
	Value isPulsegameAction_Value `protobuf_oneof:"value"`
	Ty    int32                   `protobuf:"varint,40,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *PulsegameAction) Reset()         { *m = PulsegameAction{} }
func (m *PulsegameAction) String() string { return fmt.Sprintf("%+v", *m) }
func (*PulsegameAction) ProtoMessage()    {}

type isPulsegameAction_Value interface {
	isPulsegameAction_Value()
}

// PulsegameAction_CreateConfig oneof包装
type PulsegameAction_CreateConfig struct {
	CreateConfig *PulseConfigCreate `protobuf:"bytes,1,opt,name=createConfig,proto3,oneof"`
}

// PulsegameAction_SetPause oneof包装
type PulsegameAction_SetPause struct {
	SetPause *PulseConfigPause `protobuf:"bytes,2,opt,name=setPause,proto3,oneof"`
}

// PulsegameAction_UpdateStake oneof包装
type PulsegameAction_UpdateStake struct {
	UpdateStake *PulseConfigStake `protobuf:"bytes,3,opt,name=updateStake,proto3,oneof"`
}

// PulsegameAction_SetClaimGrace oneof包装
type PulsegameAction_SetClaimGrace struct {
	SetClaimGrace *PulseConfigClaimGrace `protobuf:"bytes,4,opt,name=setClaimGrace,proto3,oneof"`
}

// PulsegameAction_SetServiceFee oneof包装
type PulsegameAction_SetServiceFee struct {
	SetServiceFee *PulseConfigServiceFee `protobuf:"bytes,5,opt,name=setServiceFee,proto3,oneof"`
}

// PulsegameAction_SetOracleKey oneof包装
type PulsegameAction_SetOracleKey struct {
	SetOracleKey *PulseConfigOracleKey `protobuf:"bytes,6,opt,name=setOracleKey,proto3,oneof"`
}

// PulsegameAction_MigrateConfig oneof包装
type PulsegameAction_MigrateConfig struct {
	MigrateConfig *PulseConfigMigrate `protobuf:"bytes,7,opt,name=migrateConfig,proto3,oneof"`
}

// PulsegameAction_CloseConfig oneof包装
type PulsegameAction_CloseConfig struct {
	CloseConfig *PulseConfigClose `protobuf:"bytes,8,opt,name=closeConfig,proto3,oneof"`
}

// PulsegameAction_CreateRegistry oneof包装
type PulsegameAction_CreateRegistry struct {
	CreateRegistry *RegistryCreate `protobuf:"bytes,9,opt,name=createRegistry,proto3,oneof"`
}

// PulsegameAction_CreateRound oneof包装
type PulsegameAction_CreateRound struct {
	CreateRound *RoundCreate `protobuf:"bytes,10,opt,name=createRound,proto3,oneof"`
}

// PulsegameAction_CreateRoundAuto oneof包装
type PulsegameAction_CreateRoundAuto struct {
	CreateRoundAuto *RoundCreateAuto `protobuf:"bytes,11,opt,name=createRoundAuto,proto3,oneof"`
}

// PulsegameAction_FundVault oneof包装
type PulsegameAction_FundVault struct {
	FundVault *VaultFund `protobuf:"bytes,12,opt,name=fundVault,proto3,oneof"`
}

// PulsegameAction_Commit oneof包装
type PulsegameAction_Commit struct {
	Commit *TicketCommit `protobuf:"bytes,13,opt,name=commit,proto3,oneof"`
}

// PulsegameAction_CommitBatch oneof包装
type PulsegameAction_CommitBatch struct {
	CommitBatch *TicketCommitBatch `protobuf:"bytes,14,opt,name=commitBatch,proto3,oneof"`
}

// PulsegameAction_CommitBatchSigned oneof包装
type PulsegameAction_CommitBatchSigned struct {
	CommitBatchSigned *TicketCommitBatchSigned `protobuf:"bytes,15,opt,name=commitBatchSigned,proto3,oneof"`
}

// PulsegameAction_Reveal oneof包装
type PulsegameAction_Reveal struct {
	Reveal *TicketReveal `protobuf:"bytes,16,opt,name=reveal,proto3,oneof"`
}

// PulsegameAction_RevealBatch oneof包装
type PulsegameAction_RevealBatch struct {
	RevealBatch *TicketRevealBatch `protobuf:"bytes,17,opt,name=revealBatch,proto3,oneof"`
}

// PulsegameAction_RevealBatchSigned oneof包装
type PulsegameAction_RevealBatchSigned struct {
	RevealBatchSigned *TicketRevealBatchSigned `protobuf:"bytes,18,opt,name=revealBatchSigned,proto3,oneof"`
}

// PulsegameAction_SetPulse oneof包装
type PulsegameAction_SetPulse struct {
	SetPulse *PulseSet `protobuf:"bytes,19,opt,name=setPulse,proto3,oneof"`
}

// PulsegameAction_SetPulseMock oneof包装
type PulsegameAction_SetPulseMock struct {
	SetPulseMock *PulseSetMock `protobuf:"bytes,20,opt,name=setPulseMock,proto3,oneof"`
}

// PulsegameAction_FinalizeRound oneof包装
type PulsegameAction_FinalizeRound struct {
	FinalizeRound *RoundFinalize `protobuf:"bytes,21,opt,name=finalizeRound,proto3,oneof"`
}

// PulsegameAction_SettleRound oneof包装
type PulsegameAction_SettleRound struct {
	SettleRound *RoundSettle `protobuf:"bytes,22,opt,name=settleRound,proto3,oneof"`
}

// PulsegameAction_ClaimReward oneof包装
type PulsegameAction_ClaimReward struct {
	ClaimReward *RewardClaim `protobuf:"bytes,23,opt,name=claimReward,proto3,oneof"`
}

// PulsegameAction_SweepRound oneof包装
type PulsegameAction_SweepRound struct {
	SweepRound *RoundSweep `protobuf:"bytes,24,opt,name=sweepRound,proto3,oneof"`
}

// PulsegameAction_RefundTicket oneof包装
type PulsegameAction_RefundTicket struct {
	RefundTicket *TicketRefund `protobuf:"bytes,25,opt,name=refundTicket,proto3,oneof"`
}

// PulsegameAction_CloseRound oneof包装
type PulsegameAction_CloseRound struct {
	CloseRound *RoundClose `protobuf:"bytes,26,opt,name=closeRound,proto3,oneof"`
}

// PulsegameAction_CloseTicket oneof包装
type PulsegameAction_CloseTicket struct {
	CloseTicket *TicketClose `protobuf:"bytes,27,opt,name=closeTicket,proto3,oneof"`
}

// PulsegameAction_CreateEscrow oneof包装
type PulsegameAction_CreateEscrow struct {
	CreateEscrow *EscrowCreate `protobuf:"bytes,28,opt,name=createEscrow,proto3,oneof"`
}

// PulsegameAction_EscrowDeposit oneof包装
type PulsegameAction_EscrowDeposit struct {
	EscrowDeposit *EscrowDeposit `protobuf:"bytes,29,opt,name=escrowDeposit,proto3,oneof"`
}

// PulsegameAction_EscrowWithdraw oneof包装
type PulsegameAction_EscrowWithdraw struct {
	EscrowWithdraw *EscrowWithdraw `protobuf:"bytes,30,opt,name=escrowWithdraw,proto3,oneof"`
}

// PulsegameAction_CreateOracleSet oneof包装
type PulsegameAction_CreateOracleSet struct {
	CreateOracleSet *OracleSetCreate `protobuf:"bytes,31,opt,name=createOracleSet,proto3,oneof"`
}

// PulsegameAction_AddOracle oneof包装
type PulsegameAction_AddOracle struct {
	AddOracle *OracleAdd `protobuf:"bytes,32,opt,name=addOracle,proto3,oneof"`
}

// PulsegameAction_RemoveOracle oneof包装
type PulsegameAction_RemoveOracle struct {
	RemoveOracle *OracleRemove `protobuf:"bytes,33,opt,name=removeOracle,proto3,oneof"`
}

// PulsegameAction_SetOracleThreshold oneof包装
type PulsegameAction_SetOracleThreshold struct {
	SetOracleThreshold *OracleThreshold `protobuf:"bytes,34,opt,name=setOracleThreshold,proto3,oneof"`
}

// PulsegameAction_CreateTokenomics oneof包装
type PulsegameAction_CreateTokenomics struct {
	CreateTokenomics *TokenomicsCreate `protobuf:"bytes,35,opt,name=createTokenomics,proto3,oneof"`
}

// PulsegameAction_UpdateTokenomics oneof包装
type PulsegameAction_UpdateTokenomics struct {
	UpdateTokenomics *TokenomicsUpdate `protobuf:"bytes,36,opt,name=updateTokenomics,proto3,oneof"`
}

// PulsegameAction_WithdrawTreasury oneof包装
type PulsegameAction_WithdrawTreasury struct {
	WithdrawTreasury *TreasuryWithdraw `protobuf:"bytes,37,opt,name=withdrawTreasury,proto3,oneof"`
}

// PulsegameAction_WithdrawTreasuryToken oneof包装
type PulsegameAction_WithdrawTreasuryToken struct {
	WithdrawTreasuryToken *TreasuryWithdrawToken `protobuf:"bytes,38,opt,name=withdrawTreasuryToken,proto3,oneof"`
}

func (*PulsegameAction_CreateConfig) isPulsegameAction_Value()          {}
func (*PulsegameAction_SetPause) isPulsegameAction_Value()              {}
func (*PulsegameAction_UpdateStake) isPulsegameAction_Value()           {}
func (*PulsegameAction_SetClaimGrace) isPulsegameAction_Value()         {}
func (*PulsegameAction_SetServiceFee) isPulsegameAction_Value()         {}
func (*PulsegameAction_SetOracleKey) isPulsegameAction_Value()          {}
func (*PulsegameAction_MigrateConfig) isPulsegameAction_Value()         {}
func (*PulsegameAction_CloseConfig) isPulsegameAction_Value()           {}
func (*PulsegameAction_CreateRegistry) isPulsegameAction_Value()        {}
func (*PulsegameAction_CreateRound) isPulsegameAction_Value()           {}
func (*PulsegameAction_CreateRoundAuto) isPulsegameAction_Value()       {}
func (*PulsegameAction_FundVault) isPulsegameAction_Value()             {}
func (*PulsegameAction_Commit) isPulsegameAction_Value()                {}
func (*PulsegameAction_CommitBatch) isPulsegameAction_Value()           {}
func (*PulsegameAction_CommitBatchSigned) isPulsegameAction_Value()     {}
func (*PulsegameAction_Reveal) isPulsegameAction_Value()                {}
func (*PulsegameAction_RevealBatch) isPulsegameAction_Value()           {}
func (*PulsegameAction_RevealBatchSigned) isPulsegameAction_Value()     {}
func (*PulsegameAction_SetPulse) isPulsegameAction_Value()              {}
func (*PulsegameAction_SetPulseMock) isPulsegameAction_Value()          {}
func (*PulsegameAction_FinalizeRound) isPulsegameAction_Value()         {}
func (*PulsegameAction_SettleRound) isPulsegameAction_Value()           {}
func (*PulsegameAction_ClaimReward) isPulsegameAction_Value()           {}
func (*PulsegameAction_SweepRound) isPulsegameAction_Value()            {}
func (*PulsegameAction_RefundTicket) isPulsegameAction_Value()          {}
func (*PulsegameAction_CloseRound) isPulsegameAction_Value()            {}
func (*PulsegameAction_CloseTicket) isPulsegameAction_Value()           {}
func (*PulsegameAction_CreateEscrow) isPulsegameAction_Value()          {}
func (*PulsegameAction_EscrowDeposit) isPulsegameAction_Value()         {}
func (*PulsegameAction_EscrowWithdraw) isPulsegameAction_Value()        {}
func (*PulsegameAction_CreateOracleSet) isPulsegameAction_Value()       {}
func (*PulsegameAction_AddOracle) isPulsegameAction_Value()             {}
func (*PulsegameAction_RemoveOracle) isPulsegameAction_Value()          {}
func (*PulsegameAction_SetOracleThreshold) isPulsegameAction_Value()    {}
func (*PulsegameAction_CreateTokenomics) isPulsegameAction_Value()      {}
func (*PulsegameAction_UpdateTokenomics) isPulsegameAction_Value()      {}
func (*PulsegameAction_WithdrawTreasury) isPulsegameAction_Value()      {}
func (*PulsegameAction_WithdrawTreasuryToken) isPulsegameAction_Value() {}

// GetValue 获取oneof值
func (m *PulsegameAction) GetValue() isPulsegameAction_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

// GetTy 获取动作类型
func (m *PulsegameAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetCreateConfig 获取创建配置动作
func (m *PulsegameAction) GetCreateConfig() *PulseConfigCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateConfig); ok {
		return x.CreateConfig
	}
	return nil
}

// GetSetPause 获取暂停动作
func (m *PulsegameAction) GetSetPause() *PulseConfigPause {
	if x, ok := m.GetValue().(*PulsegameAction_SetPause); ok {
		return x.SetPause
	}
	return nil
}

// GetUpdateStake 获取押金更新动作
func (m *PulsegameAction) GetUpdateStake() *PulseConfigStake {
	if x, ok := m.GetValue().(*PulsegameAction_UpdateStake); ok {
		return x.UpdateStake
	}
	return nil
}

// GetSetClaimGrace 获取宽限期更新动作
func (m *PulsegameAction) GetSetClaimGrace() *PulseConfigClaimGrace {
	if x, ok := m.GetValue().(*PulsegameAction_SetClaimGrace); ok {
		return x.SetClaimGrace
	}
	return nil
}

// GetSetServiceFee 获取服务费更新动作
func (m *PulsegameAction) GetSetServiceFee() *PulseConfigServiceFee {
	if x, ok := m.GetValue().(*PulsegameAction_SetServiceFee); ok {
		return x.SetServiceFee
	}
	return nil
}

// GetSetOracleKey 获取预言机公钥更新动作
func (m *PulsegameAction) GetSetOracleKey() *PulseConfigOracleKey {
	if x, ok := m.GetValue().(*PulsegameAction_SetOracleKey); ok {
		return x.SetOracleKey
	}
	return nil
}

// GetMigrateConfig 获取配置迁移动作
func (m *PulsegameAction) GetMigrateConfig() *PulseConfigMigrate {
	if x, ok := m.GetValue().(*PulsegameAction_MigrateConfig); ok {
		return x.MigrateConfig
	}
	return nil
}

// GetCloseConfig 获取配置关闭动作
func (m *PulsegameAction) GetCloseConfig() *PulseConfigClose {
	if x, ok := m.GetValue().(*PulsegameAction_CloseConfig); ok {
		return x.CloseConfig
	}
	return nil
}

// GetCreateRegistry 获取注册器创建动作
func (m *PulsegameAction) GetCreateRegistry() *RegistryCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateRegistry); ok {
		return x.CreateRegistry
	}
	return nil
}

// GetCreateRound 获取建轮动作
func (m *PulsegameAction) GetCreateRound() *RoundCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateRound); ok {
		return x.CreateRound
	}
	return nil
}

// GetCreateRoundAuto 获取自动建轮动作
func (m *PulsegameAction) GetCreateRoundAuto() *RoundCreateAuto {
	if x, ok := m.GetValue().(*PulsegameAction_CreateRoundAuto); ok {
		return x.CreateRoundAuto
	}
	return nil
}

// GetFundVault 获取奖池注资动作
func (m *PulsegameAction) GetFundVault() *VaultFund {
	if x, ok := m.GetValue().(*PulsegameAction_FundVault); ok {
		return x.FundVault
	}
	return nil
}

// GetCommit 获取提交动作
func (m *PulsegameAction) GetCommit() *TicketCommit {
	if x, ok := m.GetValue().(*PulsegameAction_Commit); ok {
		return x.Commit
	}
	return nil
}

// GetCommitBatch 获取批量提交动作
func (m *PulsegameAction) GetCommitBatch() *TicketCommitBatch {
	if x, ok := m.GetValue().(*PulsegameAction_CommitBatch); ok {
		return x.CommitBatch
	}
	return nil
}

// GetCommitBatchSigned 获取代提交动作
func (m *PulsegameAction) GetCommitBatchSigned() *TicketCommitBatchSigned {
	if x, ok := m.GetValue().(*PulsegameAction_CommitBatchSigned); ok {
		return x.CommitBatchSigned
	}
	return nil
}

// GetReveal 获取披露动作
func (m *PulsegameAction) GetReveal() *TicketReveal {
	if x, ok := m.GetValue().(*PulsegameAction_Reveal); ok {
		return x.Reveal
	}
	return nil
}

// GetRevealBatch 获取批量披露动作
func (m *PulsegameAction) GetRevealBatch() *TicketRevealBatch {
	if x, ok := m.GetValue().(*PulsegameAction_RevealBatch); ok {
		return x.RevealBatch
	}
	return nil
}

// GetRevealBatchSigned 获取代披露动作
func (m *PulsegameAction) GetRevealBatchSigned() *TicketRevealBatchSigned {
	if x, ok := m.GetValue().(*PulsegameAction_RevealBatchSigned); ok {
		return x.RevealBatchSigned
	}
	return nil
}

// GetSetPulse 获取脉冲写入动作
func (m *PulsegameAction) GetSetPulse() *PulseSet {
	if x, ok := m.GetValue().(*PulsegameAction_SetPulse); ok {
		return x.SetPulse
	}
	return nil
}

// GetSetPulseMock 获取测试脉冲写入动作
func (m *PulsegameAction) GetSetPulseMock() *PulseSetMock {
	if x, ok := m.GetValue().(*PulsegameAction_SetPulseMock); ok {
		return x.SetPulseMock
	}
	return nil
}

// GetFinalizeRound 获取终结动作
func (m *PulsegameAction) GetFinalizeRound() *RoundFinalize {
	if x, ok := m.GetValue().(*PulsegameAction_FinalizeRound); ok {
		return x.FinalizeRound
	}
	return nil
}

// GetSettleRound 获取结算动作
func (m *PulsegameAction) GetSettleRound() *RoundSettle {
	if x, ok := m.GetValue().(*PulsegameAction_SettleRound); ok {
		return x.SettleRound
	}
	return nil
}

// GetClaimReward 获取领奖动作
func (m *PulsegameAction) GetClaimReward() *RewardClaim {
	if x, ok := m.GetValue().(*PulsegameAction_ClaimReward); ok {
		return x.ClaimReward
	}
	return nil
}

// GetSweepRound 获取清扫动作
func (m *PulsegameAction) GetSweepRound() *RoundSweep {
	if x, ok := m.GetValue().(*PulsegameAction_SweepRound); ok {
		return x.SweepRound
	}
	return nil
}

// GetRefundTicket 获取退款动作
func (m *PulsegameAction) GetRefundTicket() *TicketRefund {
	if x, ok := m.GetValue().(*PulsegameAction_RefundTicket); ok {
		return x.RefundTicket
	}
	return nil
}

// GetCloseRound 获取关轮动作
func (m *PulsegameAction) GetCloseRound() *RoundClose {
	if x, ok := m.GetValue().(*PulsegameAction_CloseRound); ok {
		return x.CloseRound
	}
	return nil
}

// GetCloseTicket 获取关票动作
func (m *PulsegameAction) GetCloseTicket() *TicketClose {
	if x, ok := m.GetValue().(*PulsegameAction_CloseTicket); ok {
		return x.CloseTicket
	}
	return nil
}

// GetCreateEscrow 获取托管创建动作
func (m *PulsegameAction) GetCreateEscrow() *EscrowCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateEscrow); ok {
		return x.CreateEscrow
	}
	return nil
}

// GetEscrowDeposit 获取托管充值动作
func (m *PulsegameAction) GetEscrowDeposit() *EscrowDeposit {
	if x, ok := m.GetValue().(*PulsegameAction_EscrowDeposit); ok {
		return x.EscrowDeposit
	}
	return nil
}

// GetEscrowWithdraw 获取托管提现动作
func (m *PulsegameAction) GetEscrowWithdraw() *EscrowWithdraw {
	if x, ok := m.GetValue().(*PulsegameAction_EscrowWithdraw); ok {
		return x.EscrowWithdraw
	}
	return nil
}

// GetCreateOracleSet 获取预言机集合创建动作
func (m *PulsegameAction) GetCreateOracleSet() *OracleSetCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateOracleSet); ok {
		return x.CreateOracleSet
	}
	return nil
}

// GetAddOracle 获取预言机添加动作
func (m *PulsegameAction) GetAddOracle() *OracleAdd {
	if x, ok := m.GetValue().(*PulsegameAction_AddOracle); ok {
		return x.AddOracle
	}
	return nil
}

// GetRemoveOracle 获取预言机移除动作
func (m *PulsegameAction) GetRemoveOracle() *OracleRemove {
	if x, ok := m.GetValue().(*PulsegameAction_RemoveOracle); ok {
		return x.RemoveOracle
	}
	return nil
}

// GetSetOracleThreshold 获取门限设置动作
func (m *PulsegameAction) GetSetOracleThreshold() *OracleThreshold {
	if x, ok := m.GetValue().(*PulsegameAction_SetOracleThreshold); ok {
		return x.SetOracleThreshold
	}
	return nil
}

// GetCreateTokenomics 获取代币经济创建动作
func (m *PulsegameAction) GetCreateTokenomics() *TokenomicsCreate {
	if x, ok := m.GetValue().(*PulsegameAction_CreateTokenomics); ok {
		return x.CreateTokenomics
	}
	return nil
}

// GetUpdateTokenomics 获取代币经济更新动作
func (m *PulsegameAction) GetUpdateTokenomics() *TokenomicsUpdate {
	if x, ok := m.GetValue().(*PulsegameAction_UpdateTokenomics); ok {
		return x.UpdateTokenomics
	}
	return nil
}

// GetWithdrawTreasury 获取金库主币提取动作
func (m *PulsegameAction) GetWithdrawTreasury() *TreasuryWithdraw {
	if x, ok := m.GetValue().(*PulsegameAction_WithdrawTreasury); ok {
		return x.WithdrawTreasury
	}
	return nil
}

// GetWithdrawTreasuryToken 获取金库代币提取动作
func (m *PulsegameAction) GetWithdrawTreasuryToken() *TreasuryWithdrawToken {
	if x, ok := m.GetValue().(*PulsegameAction_WithdrawTreasuryToken); ok {
		return x.WithdrawTreasuryToken
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*PulsegameAction) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*PulsegameAction_CreateConfig)(nil),
		(*PulsegameAction_SetPause)(nil),
		(*PulsegameAction_UpdateStake)(nil),
		(*PulsegameAction_SetClaimGrace)(nil),
		(*PulsegameAction_SetServiceFee)(nil),
		(*PulsegameAction_SetOracleKey)(nil),
		(*PulsegameAction_MigrateConfig)(nil),
		(*PulsegameAction_CloseConfig)(nil),
		(*PulsegameAction_CreateRegistry)(nil),
		(*PulsegameAction_CreateRound)(nil),
		(*PulsegameAction_CreateRoundAuto)(nil),
		(*PulsegameAction_FundVault)(nil),
		(*PulsegameAction_Commit)(nil),
		(*PulsegameAction_CommitBatch)(nil),
		(*PulsegameAction_CommitBatchSigned)(nil),
		(*PulsegameAction_Reveal)(nil),
		(*PulsegameAction_RevealBatch)(nil),
		(*PulsegameAction_RevealBatchSigned)(nil),
		(*PulsegameAction_SetPulse)(nil),
		(*PulsegameAction_SetPulseMock)(nil),
		(*PulsegameAction_FinalizeRound)(nil),
		(*PulsegameAction_SettleRound)(nil),
		(*PulsegameAction_ClaimReward)(nil),
		(*PulsegameAction_SweepRound)(nil),
		(*PulsegameAction_RefundTicket)(nil),
		(*PulsegameAction_CloseRound)(nil),
		(*PulsegameAction_CloseTicket)(nil),
		(*PulsegameAction_CreateEscrow)(nil),
		(*PulsegameAction_EscrowDeposit)(nil),
		(*PulsegameAction_EscrowWithdraw)(nil),
		(*PulsegameAction_CreateOracleSet)(nil),
		(*PulsegameAction_AddOracle)(nil),
		(*PulsegameAction_RemoveOracle)(nil),
		(*PulsegameAction_SetOracleThreshold)(nil),
		(*PulsegameAction_CreateTokenomics)(nil),
		(*PulsegameAction_UpdateTokenomics)(nil),
		(*PulsegameAction_WithdrawTreasury)(nil),
		(*PulsegameAction_WithdrawTreasuryToken)(nil),
	}
}

// ReceiptPulseConfig 配置变更收据
type ReceiptPulseConfig struct {
	Op      int32        `protobuf:"varint,1,opt,name=op,proto3" json:"op,omitempty"`
	Prev    *PulseConfig `protobuf:"bytes,2,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *PulseConfig `protobuf:"bytes,3,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptPulseConfig) Reset()         { *m = ReceiptPulseConfig{} }
func (m *ReceiptPulseConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptPulseConfig) ProtoMessage()    {}

func (m *ReceiptPulseConfig) GetOp() int32 {
	if m != nil {
		return m.Op
	}
	return 0
}

func (m *ReceiptPulseConfig) GetPrev() *PulseConfig {
	if m != nil {
		return m.Prev
	}
	return nil
}

func (m *ReceiptPulseConfig) GetCurrent() *PulseConfig {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptRegistry 注册器创建收据
type ReceiptRegistry struct {
	Registry *RoundRegistry `protobuf:"bytes,1,opt,name=registry,proto3" json:"registry,omitempty"`
}

func (m *ReceiptRegistry) Reset()         { *m = ReceiptRegistry{} }
func (m *ReceiptRegistry) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptRegistry) ProtoMessage()    {}

func (m *ReceiptRegistry) GetRegistry() *RoundRegistry {
	if m != nil {
		return m.Registry
	}
	return nil
}

// ReceiptPulseRound 轮次变更收据
type ReceiptPulseRound struct {
	PrevStatus int32       `protobuf:"varint,1,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Round      *PulseRound `protobuf:"bytes,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReceiptPulseRound) Reset()         { *m = ReceiptPulseRound{} }
func (m *ReceiptPulseRound) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptPulseRound) ProtoMessage()    {}

func (m *ReceiptPulseRound) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

func (m *ReceiptPulseRound) GetRound() *PulseRound {
	if m != nil {
		return m.Round
	}
	return nil
}

// ReceiptPulseTicket 票据变更收据
type ReceiptPulseTicket struct {
	Op     int32        `protobuf:"varint,1,opt,name=op,proto3" json:"op,omitempty"`
	Ticket *PulseTicket `protobuf:"bytes,2,opt,name=ticket,proto3" json:"ticket,omitempty"`
}

func (m *ReceiptPulseTicket) Reset()         { *m = ReceiptPulseTicket{} }
func (m *ReceiptPulseTicket) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptPulseTicket) ProtoMessage()    {}

func (m *ReceiptPulseTicket) GetOp() int32 {
	if m != nil {
		return m.Op
	}
	return 0
}

func (m *ReceiptPulseTicket) GetTicket() *PulseTicket {
	if m != nil {
		return m.Ticket
	}
	return nil
}

// ReceiptRoundSettle 结算批次收据
type ReceiptRoundSettle struct {
	RoundId        uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	ProcessedCount uint32 `protobuf:"varint,2,opt,name=processedCount,proto3" json:"processedCount,omitempty"`
	LosersBurned   uint32 `protobuf:"varint,3,opt,name=losersBurned,proto3" json:"losersBurned,omitempty"`
	TokensBurned   int64  `protobuf:"varint,4,opt,name=tokensBurned,proto3" json:"tokensBurned,omitempty"`
	TokenSettled   bool   `protobuf:"varint,5,opt,name=tokenSettled,proto3" json:"tokenSettled,omitempty"`
}

func (m *ReceiptRoundSettle) Reset()         { *m = ReceiptRoundSettle{} }
func (m *ReceiptRoundSettle) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptRoundSettle) ProtoMessage()    {}

func (m *ReceiptRoundSettle) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *ReceiptRoundSettle) GetProcessedCount() uint32 {
	if m != nil {
		return m.ProcessedCount
	}
	return 0
}

func (m *ReceiptRoundSettle) GetLosersBurned() uint32 {
	if m != nil {
		return m.LosersBurned
	}
	return 0
}

func (m *ReceiptRoundSettle) GetTokensBurned() int64 {
	if m != nil {
		return m.TokensBurned
	}
	return 0
}

func (m *ReceiptRoundSettle) GetTokenSettled() bool {
	if m != nil {
		return m.TokenSettled
	}
	return false
}

// ReceiptEscrow 托管账户变更收据
type ReceiptEscrow struct {
	Op             int32  `protobuf:"varint,1,opt,name=op,proto3" json:"op,omitempty"`
	Addr           string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	PrevBalance    int64  `protobuf:"varint,3,opt,name=prevBalance,proto3" json:"prevBalance,omitempty"`
	CurrentBalance int64  `protobuf:"varint,4,opt,name=currentBalance,proto3" json:"currentBalance,omitempty"`
}

func (m *ReceiptEscrow) Reset()         { *m = ReceiptEscrow{} }
func (m *ReceiptEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptEscrow) ProtoMessage()    {}

func (m *ReceiptEscrow) GetOp() int32 {
	if m != nil {
		return m.Op
	}
	return 0
}

func (m *ReceiptEscrow) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptEscrow) GetPrevBalance() int64 {
	if m != nil {
		return m.PrevBalance
	}
	return 0
}

func (m *ReceiptEscrow) GetCurrentBalance() int64 {
	if m != nil {
		return m.CurrentBalance
	}
	return 0
}

// ReceiptOracleSet 预言机集合变更收据
type ReceiptOracleSet struct {
	Prev    *OracleSet `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *OracleSet `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptOracleSet) Reset()         { *m = ReceiptOracleSet{} }
func (m *ReceiptOracleSet) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptOracleSet) ProtoMessage()    {}

func (m *ReceiptOracleSet) GetPrev() *OracleSet {
	if m != nil {
		return m.Prev
	}
	return nil
}

func (m *ReceiptOracleSet) GetCurrent() *OracleSet {
	if m != nil {
		return m.Current
	}
	return nil
}

// ReceiptTokenomics 代币经济参数变更收据
type ReceiptTokenomics struct {
	Prev    *PulseTokenomics `protobuf:"bytes,1,opt,name=prev,proto3" json:"prev,omitempty"`
	Current *PulseTokenomics `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
}

func (m *ReceiptTokenomics) Reset()         { *m = ReceiptTokenomics{} }
func (m *ReceiptTokenomics) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReceiptTokenomics) ProtoMessage()    {}

func (m *ReceiptTokenomics) GetPrev() *PulseTokenomics {
	if m != nil {
		return m.Prev
	}
	return nil
}

func (m *ReceiptTokenomics) GetCurrent() *PulseTokenomics {
	if m != nil {
		return m.Current
	}
	return nil
}

// RoundRecord 轮次本地索引记录
type RoundRecord struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Index   int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *RoundRecord) Reset()         { *m = RoundRecord{} }
func (m *RoundRecord) String() string { return fmt.Sprintf("%+v", *m) }
func (*RoundRecord) ProtoMessage()    {}

func (m *RoundRecord) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *RoundRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// TicketRecord 票据本地索引记录
type TicketRecord struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce   uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Index   int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *TicketRecord) Reset()         { *m = TicketRecord{} }
func (m *TicketRecord) String() string { return fmt.Sprintf("%+v", *m) }
func (*TicketRecord) ProtoMessage()    {}

func (m *TicketRecord) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *TicketRecord) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *TicketRecord) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

func (m *TicketRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReqRoundInfo 轮次查询请求
type ReqRoundInfo struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
}

func (m *ReqRoundInfo) Reset()         { *m = ReqRoundInfo{} }
func (m *ReqRoundInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqRoundInfo) ProtoMessage()    {}

func (m *ReqRoundInfo) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

// ReqRoundList 按状态查询轮次列表请求
type ReqRoundList struct {
	Status    int32 `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Count     int32 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32 `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64 `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqRoundList) Reset()         { *m = ReqRoundList{} }
func (m *ReqRoundList) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqRoundList) ProtoMessage()    {}

func (m *ReqRoundList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReqRoundList) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqRoundList) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *ReqRoundList) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReplyRoundList 轮次列表应答
type ReplyRoundList struct {
	Rounds []*PulseRound `protobuf:"bytes,1,rep,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *ReplyRoundList) Reset()         { *m = ReplyRoundList{} }
func (m *ReplyRoundList) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReplyRoundList) ProtoMessage()    {}

func (m *ReplyRoundList) GetRounds() []*PulseRound {
	if m != nil {
		return m.Rounds
	}
	return nil
}

// ReqTicketInfo 票据查询请求
type ReqTicketInfo struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce   uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *ReqTicketInfo) Reset()         { *m = ReqTicketInfo{} }
func (m *ReqTicketInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqTicketInfo) ProtoMessage()    {}

func (m *ReqTicketInfo) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *ReqTicketInfo) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReqTicketInfo) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// ReqTicketListByAddr 按地址查询票据列表请求
type ReqTicketListByAddr struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqTicketListByAddr) Reset()         { *m = ReqTicketListByAddr{} }
func (m *ReqTicketListByAddr) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqTicketListByAddr) ProtoMessage()    {}

func (m *ReqTicketListByAddr) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReqTicketListByAddr) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqTicketListByAddr) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *ReqTicketListByAddr) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReqTicketListByRound 按轮次查询票据列表请求
type ReqTicketListByRound struct {
	RoundId   uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqTicketListByRound) Reset()         { *m = ReqTicketListByRound{} }
func (m *ReqTicketListByRound) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqTicketListByRound) ProtoMessage()    {}

func (m *ReqTicketListByRound) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *ReqTicketListByRound) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqTicketListByRound) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *ReqTicketListByRound) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReplyTicketList 票据列表应答
type ReplyTicketList struct {
	Tickets []*PulseTicket `protobuf:"bytes,1,rep,name=tickets,proto3" json:"tickets,omitempty"`
}

func (m *ReplyTicketList) Reset()         { *m = ReplyTicketList{} }
func (m *ReplyTicketList) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReplyTicketList) ProtoMessage()    {}

func (m *ReplyTicketList) GetTickets() []*PulseTicket {
	if m != nil {
		return m.Tickets
	}
	return nil
}

// ReqEscrow 托管账户查询请求
type ReqEscrow struct {
	Addr string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqEscrow) Reset()         { *m = ReqEscrow{} }
func (m *ReqEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqEscrow) ProtoMessage()    {}

func (m *ReqEscrow) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReqBitIndex 位下标推导查询请求
type ReqBitIndex struct {
	RoundId uint64 `protobuf:"varint,1,opt,name=roundId,proto3" json:"roundId,omitempty"`
	Addr    string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Nonce   uint64 `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *ReqBitIndex) Reset()         { *m = ReqBitIndex{} }
func (m *ReqBitIndex) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReqBitIndex) ProtoMessage()    {}

func (m *ReqBitIndex) GetRoundId() uint64 {
	if m != nil {
		return m.RoundId
	}
	return 0
}

func (m *ReqBitIndex) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReqBitIndex) GetNonce() uint64 {
	if m != nil {
		return m.Nonce
	}
	return 0
}

// ReplyBitIndex 位下标推导应答
type ReplyBitIndex struct {
	BitIndex uint32 `protobuf:"varint,1,opt,name=bitIndex,proto3" json:"bitIndex,omitempty"`
}

func (m *ReplyBitIndex) Reset()         { *m = ReplyBitIndex{} }
func (m *ReplyBitIndex) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReplyBitIndex) ProtoMessage()    {}

func (m *ReplyBitIndex) GetBitIndex() uint32 {
	if m != nil {
		return m.BitIndex
	}
	return 0
}
