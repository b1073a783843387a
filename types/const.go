// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 系统日志类型
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	//TyLogTransfer 转账
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
	TyLogMint            = 13
	TyLogBurn            = 14
	TyLogExecBurnFrozen  = 15
)

// 来自chain33主链的系统参数
const (
	// Coin 1e8
	Coin int64 = 1e8
	// MaxCoin 可管理的最大余额
	MaxCoin int64 = 1e17
	// MaxTxSize 单笔交易最大值
	MaxTxSize = 100000
	// MaxTxsPerBlock 单个区块最大交易数
	MaxTxsPerBlock int64 = 100000
	// MinFee 最低交易费
	MinFee int64 = 1e5
	// MaxTxFee max transaction fee (1000 coins)
	MaxTxFee int64 = 1e11
	// CoinSymbol 本链主币符号
	CoinSymbol = "bty"
)

// 签名类型
const (
	Invalid   = 0
	SECP256K1 = 1
	ED25519   = 2
)

// GetSignName 获取签名类型
func GetSignName(execer string, signType int) string {
	switch signType {
	case SECP256K1:
		return "secp256k1"
	case ED25519:
		return "ed25519"
	}
	return "unknown"
}

// GetSignType 获取签名类型值
func GetSignType(execer string, name string) int {
	switch name {
	case "secp256k1":
		return SECP256K1
	case "ed25519":
		return ED25519
	}
	return Invalid
}
