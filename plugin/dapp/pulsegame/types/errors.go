package types

import "errors"

// 权限与开关
var (
	// ErrUnauthorized 非管理员或非持票人
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrOracleNotSet 配置中未设置预言机公钥
	ErrOracleNotSet = errors.New("ErrOracleNotSet")
	// ErrPaused 游戏已暂停
	ErrPaused = errors.New("ErrPaused")
	// ErrMockPulseDisabled 当前配置禁止mock脉冲
	ErrMockPulseDisabled = errors.New("ErrMockPulseDisabled")
)

// 阶段与窗口
var (
	// ErrCommitClosed 提交窗口已关闭
	ErrCommitClosed = errors.New("ErrCommitClosed")
	// ErrCommitNotClosed 提交窗口尚未关闭
	ErrCommitNotClosed = errors.New("ErrCommitNotClosed")
	// ErrRevealClosed 披露窗口已关闭
	ErrRevealClosed = errors.New("ErrRevealClosed")
	// ErrPulseAlreadySet 脉冲已写入
	ErrPulseAlreadySet = errors.New("ErrPulseAlreadySet")
	// ErrPulseNotSet 脉冲尚未写入
	ErrPulseNotSet = errors.New("ErrPulseNotSet")
	// ErrPulseTooLate 距披露截止太近，禁止写入脉冲
	ErrPulseTooLate = errors.New("ErrPulseTooLate")
	// ErrAlreadyFinalized 轮次已终结
	ErrAlreadyFinalized = errors.New("ErrAlreadyFinalized")
	// ErrCannotFinalizeYet 披露窗口未过，不能终结
	ErrCannotFinalizeYet = errors.New("ErrCannotFinalizeYet")
	// ErrRoundNotFinalized 轮次尚未终结
	ErrRoundNotFinalized = errors.New("ErrRoundNotFinalized")
	// ErrRoundNotSwept 轮次尚未清扫
	ErrRoundNotSwept = errors.New("ErrRoundNotSwept")
	// ErrGraceNotElapsed 领奖宽限期未过
	ErrGraceNotElapsed = errors.New("ErrGraceNotElapsed")
	// ErrRefundTooEarly 退款等待期未过
	ErrRefundTooEarly = errors.New("ErrRefundTooEarly")
	// ErrDeadlineOrder 截止高度顺序非法
	ErrDeadlineOrder = errors.New("ErrDeadlineOrder")
	// ErrWindowTooShort 披露窗口太短
	ErrWindowTooShort = errors.New("ErrWindowTooShort")
)

// 数据完整性
var (
	// ErrCommitmentMismatch 承诺哈希不匹配
	ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")
	// ErrBitIndexMismatch 位下标不匹配
	ErrBitIndexMismatch = errors.New("ErrBitIndexMismatch")
	// ErrEvidencePubkey 证据公钥与期望签名人不符
	ErrEvidencePubkey = errors.New("ErrEvidencePubkey")
	// ErrEvidenceMessage 证据消息与规范消息不符
	ErrEvidenceMessage = errors.New("ErrEvidenceMessage")
	// ErrEvidenceSignature 证据签名验证失败
	ErrEvidenceSignature = errors.New("ErrEvidenceSignature")
	// ErrEvidenceCount 证据数量与条目数量不符
	ErrEvidenceCount = errors.New("ErrEvidenceCount")
	// ErrTicketKeyMismatch 票据键与请求不一致
	ErrTicketKeyMismatch = errors.New("ErrTicketKeyMismatch")
	// ErrBadGuess 猜测值必须是0或1
	ErrBadGuess = errors.New("ErrBadGuess")
	// ErrBadPulseSize 脉冲必须是64字节
	ErrBadPulseSize = errors.New("ErrBadPulseSize")
	// ErrBadCommitmentSize 承诺必须是32字节
	ErrBadCommitmentSize = errors.New("ErrBadCommitmentSize")
	// ErrBadSaltSize 盐必须是32字节
	ErrBadSaltSize = errors.New("ErrBadSaltSize")
	// ErrBadPubkeySize 公钥必须是32字节
	ErrBadPubkeySize = errors.New("ErrBadPubkeySize")
)

// 资金
var (
	// ErrInsufficientVault 轮次托管额不足
	ErrInsufficientVault = errors.New("ErrInsufficientVault")
	// ErrMathOverflow 算术溢出
	ErrMathOverflow = errors.New("ErrMathOverflow")
	// ErrStakeNotPaid 押金未到位
	ErrStakeNotPaid = errors.New("ErrStakeNotPaid")
	// ErrAlreadyClaimed 已领取
	ErrAlreadyClaimed = errors.New("ErrAlreadyClaimed")
	// ErrClaimAfterSweep 清扫后禁止领取
	ErrClaimAfterSweep = errors.New("ErrClaimAfterSweep")
	// ErrRoundNotSettled 轮次代币尚未结清
	ErrRoundNotSettled = errors.New("ErrRoundNotSettled")
	// ErrEscrowShort 托管余额不足
	ErrEscrowShort = errors.New("ErrEscrowShort")
	// ErrNotWinner 不是获胜票
	ErrNotWinner = errors.New("ErrNotWinner")
	// ErrNotRevealed 票据未披露
	ErrNotRevealed = errors.New("ErrNotRevealed")
)

// 重放与一致性
var (
	// ErrTicketExists 票据已存在
	ErrTicketExists = errors.New("ErrTicketExists")
	// ErrTicketNotRevealable 票据不可披露
	ErrTicketNotRevealable = errors.New("ErrTicketNotRevealable")
	// ErrRoundExists 轮次已存在
	ErrRoundExists = errors.New("ErrRoundExists")
	// ErrAlreadySwept 轮次已清扫
	ErrAlreadySwept = errors.New("ErrAlreadySwept")
	// ErrTicketProcessed 票据已结算
	ErrTicketProcessed = errors.New("ErrTicketProcessed")
	// ErrTicketNotProcessed 票据尚未结算
	ErrTicketNotProcessed = errors.New("ErrTicketNotProcessed")
	// ErrTicketSwept 票据已被清扫
	ErrTicketSwept = errors.New("ErrTicketSwept")
	// ErrConfigExists 配置已存在
	ErrConfigExists = errors.New("ErrConfigExists")
	// ErrRegistryExists 注册器已存在
	ErrRegistryExists = errors.New("ErrRegistryExists")
	// ErrEscrowExists 托管账户已存在
	ErrEscrowExists = errors.New("ErrEscrowExists")
	// ErrOracleSetExists 预言机集合已存在
	ErrOracleSetExists = errors.New("ErrOracleSetExists")
	// ErrTokenomicsExists 代币经济参数已存在
	ErrTokenomicsExists = errors.New("ErrTokenomicsExists")
	// ErrOracleExists 预言机公钥已存在
	ErrOracleExists = errors.New("ErrOracleExists")
	// ErrOracleUnknown 预言机公钥不存在
	ErrOracleUnknown = errors.New("ErrOracleUnknown")
	// ErrTooManyOracles 预言机数量超限
	ErrTooManyOracles = errors.New("ErrTooManyOracles")
	// ErrBadThreshold 门限非法
	ErrBadThreshold = errors.New("ErrBadThreshold")
	// ErrBatchSize 批量条目数非法
	ErrBatchSize = errors.New("ErrBatchSize")
	// ErrRoundNotEmpty 轮次尚未结清，不能关闭
	ErrRoundNotEmpty = errors.New("ErrRoundNotEmpty")
	// ErrTicketUnresolved 票据未了结，不能关闭
	ErrTicketUnresolved = errors.New("ErrTicketUnresolved")
	// ErrBadVersion 目标版本必须是当前版本加一
	ErrBadVersion = errors.New("ErrBadVersion")
)
