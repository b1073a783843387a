// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 系统级error
var (
	ErrNotFound                   = errors.New("ErrNotFound")
	ErrActionNotSupport           = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport            = errors.New("ErrQueryNotSupport")
	ErrAmount                     = errors.New("ErrAmount")
	ErrNoBalance                  = errors.New("ErrNoBalance")
	ErrBalanceLessThanTenTimesFee = errors.New("ErrBalanceLessThanTenTimesFee")
	ErrAccountNotExist            = errors.New("ErrAccountNotExist")
	ErrInvalidAddress             = errors.New("ErrInvalidAddress")
	ErrInvalidParam               = errors.New("ErrInvalidParam")
	ErrDecode                     = errors.New("ErrDecode")
	ErrSign                       = errors.New("ErrSign")
	ErrFeeLimit                   = errors.New("ErrFeeLimit")
	ErrTxFeeTooLow                = errors.New("ErrTxFeeTooLow")
	ErrTxMsgSizeTooBig            = errors.New("ErrTxMsgSizeTooBig")
	ErrEmpty                      = errors.New("ErrEmpty")
	ErrNotSupport                 = errors.New("ErrNotSupport")
	ErrExecNameNotAllow           = errors.New("ErrExecNameNotAllow")
	ErrNotAllowKey                = errors.New("ErrNotAllowKey")
	ErrToAddrNotSameToExecAddr    = errors.New("ErrToAddrNotSameToExecAddr")
	ErrTypeAsset                  = errors.New("ErrTypeAsset")
	ErrUnknowDriver               = errors.New("ErrUnknowDriver")
	ErrExecPanic                  = errors.New("ErrExecPanic")
	ErrDBFlag                     = errors.New("ErrDBFlag")
	ErrLocalDBPerfix              = errors.New("ErrLocalDBPerfix")
	ErrMethodNotFound             = errors.New("ErrMethodNotFound")
	ErrMethodReturnType           = errors.New("ErrMethodReturnType")
	ErrSendSameToRecv             = errors.New("ErrSendSameToRecv")
)
