package types

// 执行器名称
const (
	// PulsegameX 执行器名
	PulsegameX = "pulsegame"
	// TokenSymbol 押金与奖励使用的代币符号
	TokenSymbol = "PGT"
)

// 动作类型，与PulsegameAction的oneof字段序号一致
const (
	PulsegameActionCreateConfig = iota + 1
	PulsegameActionSetPause
	PulsegameActionUpdateStake
	PulsegameActionSetClaimGrace
	PulsegameActionSetServiceFee
	PulsegameActionSetOracleKey
	PulsegameActionMigrateConfig
	PulsegameActionCloseConfig
	PulsegameActionCreateRegistry
	PulsegameActionCreateRound
	PulsegameActionCreateRoundAuto
	PulsegameActionFundVault
	PulsegameActionCommit
	PulsegameActionCommitBatch
	PulsegameActionCommitBatchSigned
	PulsegameActionReveal
	PulsegameActionRevealBatch
	PulsegameActionRevealBatchSigned
	PulsegameActionSetPulse
	PulsegameActionSetPulseMock
	PulsegameActionFinalizeRound
	PulsegameActionSettleRound
	PulsegameActionClaimReward
	PulsegameActionSweepRound
	PulsegameActionRefundTicket
	PulsegameActionCloseRound
	PulsegameActionCloseTicket
	PulsegameActionCreateEscrow
	PulsegameActionEscrowDeposit
	PulsegameActionEscrowWithdraw
	PulsegameActionCreateOracleSet
	PulsegameActionAddOracle
	PulsegameActionRemoveOracle
	PulsegameActionSetOracleThreshold
	PulsegameActionCreateTokenomics
	PulsegameActionUpdateTokenomics
	PulsegameActionWithdrawTreasury
	PulsegameActionWithdrawTreasuryToken
)

// 日志类型
const (
	// TyLogPulseConfig 配置变更日志
	TyLogPulseConfig = 880
	// TyLogRegistry 轮次注册器创建日志
	TyLogRegistry = 881
	// TyLogRoundCreate 建轮日志
	TyLogRoundCreate = 882
	// TyLogRoundPulse 脉冲写入日志
	TyLogRoundPulse = 883
	// TyLogRoundFinalize 终结日志
	TyLogRoundFinalize = 884
	// TyLogRoundSettle 结算批次日志
	TyLogRoundSettle = 885
	// TyLogRoundSweep 清扫日志
	TyLogRoundSweep = 886
	// TyLogRoundClose 关轮日志
	TyLogRoundClose = 887
	// TyLogTicketCommit 提交日志
	TyLogTicketCommit = 888
	// TyLogTicketReveal 披露日志
	TyLogTicketReveal = 889
	// TyLogTicketSettle 单票结算日志
	TyLogTicketSettle = 890
	// TyLogTicketClaim 领奖日志
	TyLogTicketClaim = 891
	// TyLogTicketRefund 退款日志
	TyLogTicketRefund = 892
	// TyLogTicketClose 关票日志
	TyLogTicketClose = 893
	// TyLogTicketSweep 单票清扫日志
	TyLogTicketSweep = 894
	// TyLogEscrow 托管账户日志
	TyLogEscrow = 895
	// TyLogOracleSet 预言机集合日志
	TyLogOracleSet = 896
	// TyLogTokenomics 代币经济参数日志
	TyLogTokenomics = 897
	// TyLogVaultFund 奖池注资日志
	TyLogVaultFund = 898
)

// 轮次状态
const (
	// RoundStatusAnnounced 已公布，接受提交
	RoundStatusAnnounced = int32(0)
	// RoundStatusPulseSet 脉冲已写入，接受披露
	RoundStatusPulseSet = int32(1)
	// RoundStatusFinalized 已终结
	RoundStatusFinalized = int32(2)
)

// 配置收据op
const (
	ConfigOpCreate  = int32(1)
	ConfigOpUpdate  = int32(2)
	ConfigOpMigrate = int32(3)
	ConfigOpClose   = int32(4)
)

// 票据收据op
const (
	TicketOpCommit = int32(1)
	TicketOpReveal = int32(2)
	TicketOpSettle = int32(3)
	TicketOpClaim  = int32(4)
	TicketOpRefund = int32(5)
	TicketOpClose  = int32(6)
	TicketOpSweep  = int32(7)
)

// 托管收据op
const (
	EscrowOpCreate   = int32(1)
	EscrowOpDeposit  = int32(2)
	EscrowOpWithdraw = int32(3)
	EscrowOpDebit    = int32(4)
	EscrowOpCredit   = int32(5)
)

// 时间窗口与额度限制，单位为区块高度或代币最小单位
const (
	// MinRevealWindow 披露窗口最短长度
	MinRevealWindow = int64(60)
	// RefundTimeout 披露截止后多少高度允许退款
	RefundTimeout = int64(150)
	// LatePulseSafetyBuffer 脉冲最晚写入点距披露截止的保护距离
	LatePulseSafetyBuffer = int64(50)
	// DefaultCommitWindow 默认提交窗口
	DefaultCommitWindow = int64(1000)
	// DefaultRevealWindow 默认披露窗口
	DefaultRevealWindow = int64(1000)
	// DefaultClaimGrace 默认领奖宽限期
	DefaultClaimGrace = int64(900)
	// DefaultStakeAmount 默认押金额
	DefaultStakeAmount = int64(1e9)
	// DefaultRewardFeeBps 默认奖励抽成
	DefaultRewardFeeBps = uint32(100)
	// MaxBatch 批量提交和披露的单笔上限
	MaxBatch = 16
	// MaxOracles 预言机集合上限
	MaxOracles = 16
	// MaxBps 万分比上限
	MaxBps = uint32(10000)
	// InitialVersion 配置初始版本
	InitialVersion = uint32(1)
	// PulseBytes 脉冲字节数，共512位
	PulseBytes = 64
	// PulseBits 脉冲位数
	PulseBits = 512
	// CommitmentBytes 承诺哈希字节数
	CommitmentBytes = 32
	// SaltBytes 盐字节数
	SaltBytes = 32
	// Ed25519PubkeyBytes ed25519公钥字节数
	Ed25519PubkeyBytes = 32
	// Ed25519SigBytes ed25519签名字节数
	Ed25519SigBytes = 64
)

// 查询方法名
const (
	FuncNameGetConfig            = "GetConfig"
	FuncNameGetRegistry          = "GetRegistry"
	FuncNameGetRound             = "GetRound"
	FuncNameGetRoundListByStatus = "GetRoundListByStatus"
	FuncNameGetTicket            = "GetTicket"
	FuncNameGetTicketListByAddr  = "GetTicketListByAddr"
	FuncNameGetTicketListByRound = "GetTicketListByRound"
	FuncNameGetEscrow            = "GetEscrow"
	FuncNameGetTokenomics        = "GetTokenomics"
	FuncNameGetOracleSet         = "GetOracleSet"
	FuncNameGetBitIndex          = "GetBitIndex"
)
