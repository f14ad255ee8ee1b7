//******************************************************************************************************
//  MOHeader.go - Gbtc
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
	"time"

	"github.com/iridium-sbd/directip-go/wire"
)

// moHeaderBodyLen is the fixed body length of an MO-Header:
// 4 (cdr_uid) + 15 (imei) + 1 (session_status) + 2 (momsn) + 2 (mtmsn) + 4 (time_of_session).
const moHeaderBodyLen uint16 = 28

// MOHeader is the Mobile-Originated Header Information Element (IEI 0x01). It is always the
// first element of a well-formed MOMessage.
type MOHeader struct {
	CDRUID        uint32
	IMEI          IMEI
	SessionStatus SessionStatusEnum
	MOMSN         uint16
	MTMSN         uint16
	TimeOfSession time.Time
}

// Identifier returns IdentifierMOHeader.
func (MOHeader) Identifier() uint8 { return IdentifierMOHeader }

// Len returns the fixed MO-Header body length of 28 bytes.
func (MOHeader) Len() uint16 { return moHeaderBodyLen }

// TotalSize returns 3 + Len().
func (h MOHeader) TotalSize() int { return 3 + int(h.Len()) }

// WriteTo emits the MO-Header to w.
func (h MOHeader) WriteTo(w io.Writer) (int, error) {
	timeOfSession, err := wire.TimeToUnix(h.TimeOfSession)
	if err != nil {
		return 0, wire.NewIOError(err)
	}

	if err := wire.WriteUint8(w, h.Identifier()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, h.Len()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, h.CDRUID); err != nil {
		return 0, wire.NewIOError(err)
	}
	if _, err := w.Write(h.IMEI[:]); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint8(w, h.SessionStatus.Encode()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, h.MOMSN); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, h.MTMSN); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, timeOfSession); err != nil {
		return 0, wire.NewIOError(err)
	}

	return h.TotalSize(), nil
}

// ReadMOHeader reads an MO-Header from r, expecting the identifier byte at the current position.
func ReadMOHeader(r io.Reader) (MOHeader, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}
	if id != IdentifierMOHeader {
		return MOHeader{}, wire.NewWrongIEType(IdentifierMOHeader, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}
	if length != moHeaderBodyLen {
		return MOHeader{}, wire.NewInvalidLength(moHeaderBodyLen, length)
	}

	cdrUID, err := wire.ReadUint32(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	var imei IMEI
	if err := wire.ReadExact(r, imei[:]); err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	statusByte, err := wire.ReadUint8(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	sessionStatus, err := DecodeSessionStatus(statusByte)
	if err != nil {
		return MOHeader{}, err
	}

	momsn, err := wire.ReadUint16(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	mtmsn, err := wire.ReadUint16(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	timeOfSession, err := wire.ReadUint32(r)
	if err != nil {
		return MOHeader{}, wire.NewIOError(err)
	}

	return MOHeader{
		CDRUID:        cdrUID,
		IMEI:          imei,
		SessionStatus: sessionStatus,
		MOMSN:         momsn,
		MTMSN:         mtmsn,
		TimeOfSession: wire.UnixToTime(timeOfSession),
	}, nil
}

// MOHeaderBuilder constructs an MOHeader, validating required fields at Build().
type MOHeaderBuilder struct {
	cdrUID           uint32
	cdrUIDSet        bool
	imei             IMEI
	imeiSet          bool
	sessionStatus    SessionStatusEnum
	sessionStatusSet bool
	momsn            uint16
	mtmsn            uint16
	timeOfSession    time.Time
	timeOfSessionSet bool
}

// NewMOHeaderBuilder returns an empty MOHeaderBuilder.
func NewMOHeaderBuilder() *MOHeaderBuilder {
	return &MOHeaderBuilder{}
}

// CDRUID sets the required Gateway-assigned call data record identifier.
func (b *MOHeaderBuilder) CDRUID(id uint32) *MOHeaderBuilder {
	b.cdrUID = id
	b.cdrUIDSet = true
	return b
}

// IMEI sets the required originating IMEI.
func (b *MOHeaderBuilder) IMEI(imei IMEI) *MOHeaderBuilder {
	b.imei = imei
	b.imeiSet = true
	return b
}

// SessionStatus sets the required session outcome.
func (b *MOHeaderBuilder) SessionStatus(status SessionStatusEnum) *MOHeaderBuilder {
	b.sessionStatus = status
	b.sessionStatusSet = true
	return b
}

// MOMSN sets the modem-maintained Mobile-Originated sequence number.
func (b *MOHeaderBuilder) MOMSN(momsn uint16) *MOHeaderBuilder {
	b.momsn = momsn
	return b
}

// MTMSN sets the Gateway-maintained Mobile-Terminated sequence number.
func (b *MOHeaderBuilder) MTMSN(mtmsn uint16) *MOHeaderBuilder {
	b.mtmsn = mtmsn
	return b
}

// TimeOfSession sets the required session completion time.
func (b *MOHeaderBuilder) TimeOfSession(t time.Time) *MOHeaderBuilder {
	b.timeOfSession = t
	b.timeOfSessionSet = true
	return b
}

// Build validates required fields and returns the constructed MOHeader.
func (b *MOHeaderBuilder) Build() (MOHeader, error) {
	if !b.cdrUIDSet {
		return MOHeader{}, wire.NewUninitializedField("cdr_uid")
	}
	if !b.imeiSet {
		return MOHeader{}, wire.NewUninitializedField("imei")
	}
	if !b.sessionStatusSet {
		return MOHeader{}, wire.NewUninitializedField("session_status")
	}
	if !b.timeOfSessionSet {
		return MOHeader{}, wire.NewUninitializedField("time_of_session")
	}

	return MOHeader{
		CDRUID:        b.cdrUID,
		IMEI:          b.imei,
		SessionStatus: b.sessionStatus,
		MOMSN:         b.momsn,
		MTMSN:         b.mtmsn,
		TimeOfSession: b.timeOfSession,
	}, nil
}
