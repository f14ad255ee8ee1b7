//******************************************************************************************************
//  MTHeader.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  07/31/2026 - Initial version of source code.
//
//******************************************************************************************************

package ie

import (
	"io"

	"github.com/iridium-sbd/directip-go/wire"
)

// mtHeaderBodyLen is the fixed body length of an MT-Header: 4 (client_msg_id) + 15 (imei) + 2 (flags).
const mtHeaderBodyLen uint16 = 21

// IMEILen is the fixed length, in bytes, of an IMEI as carried on the wire: 15 ASCII decimal digits.
const IMEILen = 15

// IMEI identifies the satellite modem a message addresses. The codec only checks its length; it
// does not validate that the bytes are ASCII decimal digits.
type IMEI [IMEILen]byte

// String renders the IMEI as its ASCII digits.
func (i IMEI) String() string {
	return string(i[:])
}

// MTHeader is the Mobile-Terminated Header Information Element (IEI 0x41). When present it is
// always the first element of an MTMessage; a Gateway Confirmation reply carries none.
type MTHeader struct {
	ClientMsgID      uint32
	IMEI             IMEI
	DispositionFlags DispositionFlags
}

// Identifier returns IdentifierMTHeader.
func (MTHeader) Identifier() uint8 { return IdentifierMTHeader }

// Len returns the fixed MT-Header body length of 21 bytes.
func (MTHeader) Len() uint16 { return mtHeaderBodyLen }

// TotalSize returns 3 + Len().
func (h MTHeader) TotalSize() int { return 3 + int(h.Len()) }

// WriteTo emits the MT-Header to w.
func (h MTHeader) WriteTo(w io.Writer) (int, error) {
	if err := wire.WriteUint8(w, h.Identifier()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, h.Len()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, h.ClientMsgID); err != nil {
		return 0, wire.NewIOError(err)
	}
	if _, err := w.Write(h.IMEI[:]); err != nil {
		return 0, wire.NewIOError(err)
	}
	if _, err := h.DispositionFlags.Write(w); err != nil {
		return 0, err
	}

	return h.TotalSize(), nil
}

// ReadMTHeader reads an MT-Header from r, expecting the identifier byte at the current position.
func ReadMTHeader(r io.Reader) (MTHeader, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MTHeader{}, wire.NewIOError(err)
	}
	if id != IdentifierMTHeader {
		return MTHeader{}, wire.NewWrongIEType(IdentifierMTHeader, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MTHeader{}, wire.NewIOError(err)
	}
	if length != mtHeaderBodyLen {
		return MTHeader{}, wire.NewInvalidLength(mtHeaderBodyLen, length)
	}

	clientMsgID, err := wire.ReadUint32(r)
	if err != nil {
		return MTHeader{}, wire.NewIOError(err)
	}

	var imei IMEI
	if err := wire.ReadExact(r, imei[:]); err != nil {
		return MTHeader{}, wire.NewIOError(err)
	}

	flags, err := ReadDispositionFlags(r)
	if err != nil {
		return MTHeader{}, err
	}

	return MTHeader{ClientMsgID: clientMsgID, IMEI: imei, DispositionFlags: flags}, nil
}

// MTHeaderBuilder constructs an MTHeader, validating required fields at Build().
// DispositionFlags defaults to all-false, matching the Rust builder's derive default.
type MTHeaderBuilder struct {
	clientMsgID      uint32
	clientMsgIDSet   bool
	imei             IMEI
	imeiSet          bool
	dispositionFlags DispositionFlags
}

// NewMTHeaderBuilder returns an empty MTHeaderBuilder.
func NewMTHeaderBuilder() *MTHeaderBuilder {
	return &MTHeaderBuilder{}
}

// ClientMsgID sets the required client-assigned message ID.
func (b *MTHeaderBuilder) ClientMsgID(id uint32) *MTHeaderBuilder {
	b.clientMsgID = id
	b.clientMsgIDSet = true
	return b
}

// IMEI sets the required destination IMEI.
func (b *MTHeaderBuilder) IMEI(imei IMEI) *MTHeaderBuilder {
	b.imei = imei
	b.imeiSet = true
	return b
}

// DispositionFlags sets the optional disposition flags; the zero value (all false) is used if
// never called.
func (b *MTHeaderBuilder) DispositionFlags(flags DispositionFlags) *MTHeaderBuilder {
	b.dispositionFlags = flags
	return b
}

// Build validates required fields and returns the constructed MTHeader.
func (b *MTHeaderBuilder) Build() (MTHeader, error) {
	if !b.clientMsgIDSet {
		return MTHeader{}, wire.NewUninitializedField("client_msg_id")
	}
	if !b.imeiSet {
		return MTHeader{}, wire.NewUninitializedField("imei")
	}

	return MTHeader{
		ClientMsgID:      b.clientMsgID,
		IMEI:             b.imei,
		DispositionFlags: b.dispositionFlags,
	}, nil
}
