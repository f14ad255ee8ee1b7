//******************************************************************************************************
//  MTConfirmation.go - Gbtc
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

// mtConfirmationBodyLen is the fixed body length of an MT-Confirmation:
// 4 (client_msg_id) + 15 (imei) + 4 (id_reference) + 2 (message_status).
const mtConfirmationBodyLen uint16 = 25

// MTConfirmation is the Gateway's reply to an MT submission (IEI 0x44). It is mutually exclusive
// with MTPayload within a single MTMessage.
type MTConfirmation struct {
	ClientMsgID   uint32
	IMEI          IMEI
	IDReference   uint32
	MessageStatus MessageStatusEnum
}

// Identifier returns IdentifierMTConfirmation.
func (MTConfirmation) Identifier() uint8 { return IdentifierMTConfirmation }

// Len returns the fixed MT-Confirmation body length of 25 bytes.
func (MTConfirmation) Len() uint16 { return mtConfirmationBodyLen }

// TotalSize returns 3 + Len().
func (c MTConfirmation) TotalSize() int { return 3 + int(c.Len()) }

// WriteTo emits the MT-Confirmation to w.
func (c MTConfirmation) WriteTo(w io.Writer) (int, error) {
	if err := wire.WriteUint8(w, c.Identifier()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, c.Len()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, c.ClientMsgID); err != nil {
		return 0, wire.NewIOError(err)
	}
	if _, err := w.Write(c.IMEI[:]); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, c.IDReference); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteInt16(w, c.MessageStatus.Encode()); err != nil {
		return 0, wire.NewIOError(err)
	}

	return c.TotalSize(), nil
}

// ReadMTConfirmation reads an MT-Confirmation from r, expecting the identifier byte at the
// current position.
func ReadMTConfirmation(r io.Reader) (MTConfirmation, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}
	if id != IdentifierMTConfirmation {
		return MTConfirmation{}, wire.NewWrongIEType(IdentifierMTConfirmation, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}
	if length != mtConfirmationBodyLen {
		return MTConfirmation{}, wire.NewInvalidLength(mtConfirmationBodyLen, length)
	}

	clientMsgID, err := wire.ReadUint32(r)
	if err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}

	var imei IMEI
	if err := wire.ReadExact(r, imei[:]); err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}

	idReference, err := wire.ReadUint32(r)
	if err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}

	statusCode, err := wire.ReadInt16(r)
	if err != nil {
		return MTConfirmation{}, wire.NewIOError(err)
	}

	messageStatus, err := DecodeMessageStatus(statusCode)
	if err != nil {
		return MTConfirmation{}, err
	}

	return MTConfirmation{
		ClientMsgID:   clientMsgID,
		IMEI:          imei,
		IDReference:   idReference,
		MessageStatus: messageStatus,
	}, nil
}

// MTConfirmationBuilder constructs an MTConfirmation, validating required fields at Build().
type MTConfirmationBuilder struct {
	clientMsgID      uint32
	clientMsgIDSet   bool
	imei             IMEI
	imeiSet          bool
	idReference      uint32
	idReferenceSet   bool
	messageStatus    MessageStatusEnum
	messageStatusSet bool
}

// NewMTConfirmationBuilder returns an empty MTConfirmationBuilder.
func NewMTConfirmationBuilder() *MTConfirmationBuilder {
	return &MTConfirmationBuilder{}
}

// ClientMsgID sets the required client message ID being confirmed.
func (b *MTConfirmationBuilder) ClientMsgID(id uint32) *MTConfirmationBuilder {
	b.clientMsgID = id
	b.clientMsgIDSet = true
	return b
}

// IMEI sets the required destination IMEI.
func (b *MTConfirmationBuilder) IMEI(imei IMEI) *MTConfirmationBuilder {
	b.imei = imei
	b.imeiSet = true
	return b
}

// IDReference sets the required Gateway-assigned reference (zero on error).
func (b *MTConfirmationBuilder) IDReference(ref uint32) *MTConfirmationBuilder {
	b.idReference = ref
	b.idReferenceSet = true
	return b
}

// MessageStatus sets the required queue order or failure reason.
func (b *MTConfirmationBuilder) MessageStatus(status MessageStatusEnum) *MTConfirmationBuilder {
	b.messageStatus = status
	b.messageStatusSet = true
	return b
}

// Build validates required fields and returns the constructed MTConfirmation.
func (b *MTConfirmationBuilder) Build() (MTConfirmation, error) {
	if !b.clientMsgIDSet {
		return MTConfirmation{}, wire.NewUninitializedField("client_msg_id")
	}
	if !b.imeiSet {
		return MTConfirmation{}, wire.NewUninitializedField("imei")
	}
	if !b.idReferenceSet {
		return MTConfirmation{}, wire.NewUninitializedField("id_reference")
	}
	if !b.messageStatusSet {
		return MTConfirmation{}, wire.NewUninitializedField("message_status")
	}

	return MTConfirmation{
		ClientMsgID:   b.clientMsgID,
		IMEI:          b.imei,
		IDReference:   b.idReference,
		MessageStatus: b.messageStatus,
	}, nil
}
