package types

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func le64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

func TestUserID(t *testing.T) {
	addr := "1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj"
	id := UserID(addr)
	require.Len(t, id, 32)
	want := sha256.Sum256([]byte(addr))
	assert.Equal(t, want[:], id)
	// 不同地址得到不同身份
	other := UserID("1EbDHAXpoiewjPLX9uqoz38HsKqMXayZrF")
	assert.NotEqual(t, id, other)
}

func TestDeriveBitIndex(t *testing.T) {
	user := UserID("1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj")
	// 手工按规范重算，逐字节对齐
	buf := append([]byte("bitindex"), le64(7)...)
	buf = append(buf, user...)
	buf = append(buf, le64(11)...)
	sum := sha256.Sum256(buf)
	want := uint32(binary.LittleEndian.Uint16(sum[:2])) % PulseBits
	assert.Equal(t, want, DeriveBitIndex(7, user, 11))

	for nonce := uint64(0); nonce < 64; nonce++ {
		idx := DeriveBitIndex(1, user, nonce)
		require.True(t, idx < PulseBits)
		assert.Equal(t, idx, DeriveBitIndex(1, user, nonce))
	}
	// 轮次、用户或nonce变化时下标应当随之变化（对抗碰撞无保证，但至少可区分）
	assert.NotEqual(t, DeriveBitIndex(1, user, 0), DeriveBitIndex(2, user, 0))
}

func TestCommitmentHash(t *testing.T) {
	user := UserID("1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj")
	salt := make([]byte, SaltBytes)
	for i := range salt {
		salt[i] = byte(i)
	}
	buf := append([]byte("commit"), le64(3)...)
	buf = append(buf, user...)
	buf = append(buf, le64(5)...)
	buf = append(buf, byte(1))
	buf = append(buf, salt...)
	want := sha256.Sum256(buf)
	got := CommitmentHash(3, user, 5, 1, salt)
	require.Len(t, got, CommitmentBytes)
	assert.Equal(t, want[:], got)

	// 任一输入变化都应改变承诺
	assert.NotEqual(t, got, CommitmentHash(4, user, 5, 1, salt))
	assert.NotEqual(t, got, CommitmentHash(3, user, 6, 1, salt))
	assert.NotEqual(t, got, CommitmentHash(3, user, 5, 0, salt))
	salt2 := append([]byte{}, salt...)
	salt2[0] ^= 0xff
	assert.NotEqual(t, got, CommitmentHash(3, user, 5, 1, salt2))
}

func TestCommitMessage(t *testing.T) {
	prog := []byte("16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp")
	user := UserID("1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj")
	commitment := make([]byte, CommitmentBytes)
	msg := CommitMessage(prog, 9, user, 2, commitment)

	want := append([]byte("pulsegame:commit_v1"), prog...)
	want = append(want, le64(9)...)
	want = append(want, user...)
	want = append(want, le64(2)...)
	want = append(want, commitment...)
	assert.Equal(t, want, msg)
}

func TestRevealMessage(t *testing.T) {
	prog := []byte("16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp")
	user := UserID("1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj")
	salt := make([]byte, SaltBytes)
	msg := RevealMessage(prog, 9, user, 2, 1, salt)

	want := append([]byte("pulsegame:reveal_v1"), prog...)
	want = append(want, le64(9)...)
	want = append(want, user...)
	want = append(want, le64(2)...)
	want = append(want, byte(1))
	want = append(want, salt...)
	assert.Equal(t, want, msg)
}

func TestPulseMessage(t *testing.T) {
	prog := []byte("16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp")
	pulse := make([]byte, PulseBytes)
	pulse[0] = 0xaa
	msg := PulseMessage(prog, 9, 300, pulse)

	want := append([]byte("pulsegame:pulse_v1"), prog...)
	want = append(want, le64(9)...)
	want = append(want, le64(300)...)
	want = append(want, pulse...)
	assert.Equal(t, want, msg)
}

func TestPulseBit(t *testing.T) {
	pulse := make([]byte, PulseBytes)
	pulse[0] = 0x02  // 第1位
	pulse[1] = 0x01  // 第8位
	pulse[63] = 0x80 // 第511位

	assert.Equal(t, uint32(0), PulseBit(pulse, 0))
	assert.Equal(t, uint32(1), PulseBit(pulse, 1))
	assert.Equal(t, uint32(0), PulseBit(pulse, 2))
	assert.Equal(t, uint32(1), PulseBit(pulse, 8))
	assert.Equal(t, uint32(0), PulseBit(pulse, 9))
	assert.Equal(t, uint32(1), PulseBit(pulse, 511))
	assert.Equal(t, uint32(0), PulseBit(pulse, 510))
}
