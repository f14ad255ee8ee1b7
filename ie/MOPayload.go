//******************************************************************************************************
//  MOPayload.go - Gbtc
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

// MOPayloadMaxLen is the maximum accepted payload length for a Mobile-Originated message.
const MOPayloadMaxLen = 1960

// MOPayload is the Mobile-Originated Payload Information Element (IEI 0x02): the raw bytes
// collected from a modem and relayed by the Gateway. An MOMessage carries at most one of these.
type MOPayload struct {
	Payload []byte
}

// Identifier returns IdentifierMOPayload.
func (MOPayload) Identifier() uint8 { return IdentifierMOPayload }

// Len returns the payload length in bytes.
func (p MOPayload) Len() uint16 { return uint16(len(p.Payload)) }

// TotalSize returns 3 + Len().
func (p MOPayload) TotalSize() int { return 3 + len(p.Payload) }

// WriteTo emits the MO-Payload to w.
func (p MOPayload) WriteTo(w io.Writer) (int, error) {
	if len(p.Payload) > MOPayloadMaxLen {
		return 0, wire.NewPayloadOversize(len(p.Payload), MOPayloadMaxLen)
	}

	if err := wire.WriteUint8(w, p.Identifier()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, p.Len()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if len(p.Payload) > 0 {
		if _, err := w.Write(p.Payload); err != nil {
			return 0, wire.NewIOError(err)
		}
	}

	return p.TotalSize(), nil
}

// ReadMOPayload reads an MO-Payload from r, expecting the identifier byte at the current position.
func ReadMOPayload(r io.Reader) (MOPayload, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MOPayload{}, wire.NewIOError(err)
	}
	if id != IdentifierMOPayload {
		return MOPayload{}, wire.NewWrongIEType(IdentifierMOPayload, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MOPayload{}, wire.NewIOError(err)
	}
	if int(length) > MOPayloadMaxLen {
		return MOPayload{}, wire.NewPayloadOversize(int(length), MOPayloadMaxLen)
	}

	payload := make([]byte, length)
	if length > 0 {
		if err := wire.ReadExact(r, payload); err != nil {
			return MOPayload{}, wire.NewIOError(err)
		}
	}

	return MOPayload{Payload: payload}, nil
}

// MOPayloadBuilder constructs an MOPayload, validating its size bound at Build().
type MOPayloadBuilder struct {
	payload []byte
}

// NewMOPayloadBuilder returns an empty MOPayloadBuilder.
func NewMOPayloadBuilder() *MOPayloadBuilder {
	return &MOPayloadBuilder{}
}

// Payload sets the raw bytes collected from the modem.
func (b *MOPayloadBuilder) Payload(payload []byte) *MOPayloadBuilder {
	b.payload = payload
	return b
}

// Build validates the size bound and returns the constructed MOPayload.
func (b *MOPayloadBuilder) Build() (MOPayload, error) {
	if len(b.payload) > MOPayloadMaxLen {
		return MOPayload{}, wire.NewPayloadOversize(len(b.payload), MOPayloadMaxLen)
	}
	return MOPayload{Payload: b.payload}, nil
}
