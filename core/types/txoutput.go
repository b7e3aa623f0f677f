// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"
	"io"

	s "github.com/Qitmeer/btk/core/serialization"
	"github.com/pkg/errors"
)

// ErrTxOutputIncomplete is returned when the raw bytes end before the
// output does.
var ErrTxOutputIncomplete = errors.New("transaction output data is incomplete")

// TxOutput defines a bitcoin transaction output.
type TxOutput struct {
	Amount   Amount
	PkScript []byte
}

// NewTxOutput returns a new bitcoin transaction output with the provided
// transaction value and public key script.
func NewTxOutput(amount Amount, pkScript []byte) *TxOutput {
	return &TxOutput{
		Amount:   amount,
		PkScript: pkScript,
	}
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (to *TxOutput) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + s.VarIntSerializeSize(uint64(len(to.PkScript))) + len(to.PkScript)
}

// Encode writes the wire form of the output to w.
func (to *TxOutput) Encode(w io.Writer) error {
	err := s.BinarySerializer.PutUint64(w, binary.LittleEndian, uint64(to.Amount))
	if err != nil {
		return err
	}
	return s.WriteVarBytes(w, to.PkScript)
}

// Bytes returns the wire form of the output.
func (to *TxOutput) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, to.SerializeSize()))
	// Writes to a bytes.Buffer never fail.
	_ = to.Encode(buf)
	return buf.Bytes()
}

// TxOutputFromRaw parses one output from the front of raw and reports how
// many bytes it used.  Trailing bytes are left for the caller.
func TxOutputFromRaw(raw []byte) (*TxOutput, int, error) {
	r := bytes.NewReader(raw)

	value, err := s.BinarySerializer.Uint64(r, binary.LittleEndian)
	if err != nil {
		return nil, 0, incomplete(err, "amount")
	}

	count, err := s.ReadVarInt(r)
	if err != nil {
		return nil, 0, incomplete(err, "script size")
	}

	// The script can never be longer than what is left, so check before
	// allocating.
	if count > uint64(r.Len()) {
		return nil, 0, errors.Wrapf(ErrTxOutputIncomplete, "script needs %d bytes, %d left", count, r.Len())
	}
	script := make([]byte, count)
	if _, err := io.ReadFull(r, script); err != nil {
		return nil, 0, incomplete(err, "script")
	}

	consumed := len(raw) - r.Len()
	return NewTxOutput(Amount(value), script), consumed, nil
}

func incomplete(err error, field string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrTxOutputIncomplete, "reading %s", field)
	}
	return errors.Wrapf(err, "reading %s", field)
}
