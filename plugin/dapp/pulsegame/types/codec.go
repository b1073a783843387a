package types

import (
	"encoding/binary"

	"github.com/33cn/pulsegame/common"
)

// 规范消息的域分隔串，跨实现重现时必须逐字节一致
const (
	bitIndexDomain  = "bitindex"
	commitDomain    = "commit"
	commitMsgPrefix = "pulsegame:commit_v1"
	revealMsgPrefix = "pulsegame:reveal_v1"
	pulseMsgPrefix  = "pulsegame:pulse_v1"
)

// UserID 用户的32字节身份，取地址串的sha256
func UserID(addr string) []byte {
	return common.Sha256([]byte(addr))
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// DeriveBitIndex 推导票据对应的脉冲位下标，范围[0,512)
func DeriveBitIndex(roundID uint64, user []byte, nonce uint64) uint32 {
	buf := make([]byte, 0, len(bitIndexDomain)+8+len(user)+8)
	buf = append(buf, bitIndexDomain...)
	buf = appendUint64(buf, roundID)
	buf = append(buf, user...)
	buf = appendUint64(buf, nonce)
	sum := common.Sha256(buf)
	return uint32(binary.LittleEndian.Uint16(sum[:2])) % PulseBits
}

// CommitmentHash 计算承诺哈希 sha256(domain||roundId||user||nonce||guess||salt)
func CommitmentHash(roundID uint64, user []byte, nonce uint64, guess uint32, salt []byte) []byte {
	buf := make([]byte, 0, len(commitDomain)+8+len(user)+8+1+len(salt))
	buf = append(buf, commitDomain...)
	buf = appendUint64(buf, roundID)
	buf = append(buf, user...)
	buf = appendUint64(buf, nonce)
	buf = append(buf, byte(guess))
	buf = append(buf, salt...)
	return common.Sha256(buf)
}

// CommitMessage 代提交证据的规范签名消息
func CommitMessage(progID []byte, roundID uint64, user []byte, nonce uint64, commitment []byte) []byte {
	buf := make([]byte, 0, len(commitMsgPrefix)+len(progID)+8+len(user)+8+len(commitment))
	buf = append(buf, commitMsgPrefix...)
	buf = append(buf, progID...)
	buf = appendUint64(buf, roundID)
	buf = append(buf, user...)
	buf = appendUint64(buf, nonce)
	buf = append(buf, commitment...)
	return buf
}

// RevealMessage 代披露证据的规范签名消息
func RevealMessage(progID []byte, roundID uint64, user []byte, nonce uint64, guess uint32, salt []byte) []byte {
	buf := make([]byte, 0, len(revealMsgPrefix)+len(progID)+8+len(user)+8+1+len(salt))
	buf = append(buf, revealMsgPrefix...)
	buf = append(buf, progID...)
	buf = appendUint64(buf, roundID)
	buf = append(buf, user...)
	buf = appendUint64(buf, nonce)
	buf = append(buf, byte(guess))
	buf = append(buf, salt...)
	return buf
}

// PulseMessage 脉冲证据的规范签名消息
func PulseMessage(progID []byte, roundID uint64, pulseIndexTarget uint32, pulse []byte) []byte {
	buf := make([]byte, 0, len(pulseMsgPrefix)+len(progID)+8+8+len(pulse))
	buf = append(buf, pulseMsgPrefix...)
	buf = append(buf, progID...)
	buf = appendUint64(buf, roundID)
	buf = appendUint64(buf, uint64(pulseIndexTarget))
	buf = append(buf, pulse...)
	return buf
}

// PulseBit 读取脉冲第idx位，字节内从低位数起
func PulseBit(pulse []byte, idx uint32) uint32 {
	return uint32(pulse[idx/8]>>(idx%8)) & 1
}
