// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/rand"

	"github.com/33cn/pulsegame/common"
	"github.com/33cn/pulsegame/common/address"
	"github.com/33cn/pulsegame/common/crypto"
)

// Hash 交易的哈希(不包含签名)
func (tx *Transaction) Hash() []byte {
	copytx := CloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return common.Sha256(data)
}

// Size 交易的大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 检测交易的签名
func (tx *Transaction) CheckSign() bool {
	copytx := CloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	if tx.GetSignature() == nil {
		return false
	}
	return checkSign(data, tx.GetSignature())
}

func checkSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(GetSignName("", int(sign.Ty)))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

// From 交易的发送方地址
func (tx *Transaction) From() string {
	if tx.GetSignature() == nil {
		return ""
	}
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}

// GetRealFee 获取交易真实的费用
func (tx *Transaction) GetRealFee(minFee int64) (int64, error) {
	txSize := Size(tx)
	//如果签名为空，那么加上签名的空间
	if tx.Signature == nil {
		txSize += 300
	}
	if txSize > MaxTxSize {
		return 0, ErrTxMsgSizeTooBig
	}
	// 检查交易费是否小于最低值
	realFee := int64(txSize/1000+1) * minFee
	return realFee, nil
}

// SetRealFee 设置交易真实的费用
func (tx *Transaction) SetRealFee(minFee int64) error {
	if tx.Fee == 0 {
		fee, err := tx.GetRealFee(minFee)
		if err != nil {
			return err
		}
		tx.Fee = fee
	}
	return nil
}

// CheckTxBasic 交易的基本检查
func (tx *Transaction) CheckTxBasic() error {
	if tx == nil {
		return ErrEmpty
	}
	if len(tx.Execer) == 0 {
		return ErrExecNameNotAllow
	}
	txSize := Size(tx)
	if txSize > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	return nil
}

// FormatTx 格式化tx交易，补齐to地址、nonce和交易费
func FormatTx(name string, tx *Transaction) (*Transaction, error) {
	tx.Execer = []byte(ExecName(name))
	tx.To = address.ExecAddress(name)
	err := tx.SetRealFee(MinFee)
	if err != nil {
		return nil, err
	}
	random := rand.New(rand.NewSource(Now().UnixNano()))
	tx.Nonce = random.Int63()
	return tx, nil
}
