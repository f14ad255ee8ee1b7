//******************************************************************************************************
//  MTPayload.go - Gbtc
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

// MTPayloadMaxLen is the maximum accepted payload length for a Mobile-Terminated message.
const MTPayloadMaxLen = 1890

// MTPayload is the Mobile-Terminated Payload Information Element (IEI 0x42): the raw bytes
// submitted to the Gateway for delivery to a modem.
type MTPayload struct {
	Payload []byte
}

// Identifier returns IdentifierMTPayload.
func (MTPayload) Identifier() uint8 { return IdentifierMTPayload }

// Len returns the payload length in bytes.
func (p MTPayload) Len() uint16 { return uint16(len(p.Payload)) }

// TotalSize returns 3 + Len().
func (p MTPayload) TotalSize() int { return 3 + len(p.Payload) }

// WriteTo emits the MT-Payload to w.
func (p MTPayload) WriteTo(w io.Writer) (int, error) {
	if len(p.Payload) > MTPayloadMaxLen {
		return 0, wire.NewPayloadOversize(len(p.Payload), MTPayloadMaxLen)
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

// ReadMTPayload reads an MT-Payload from r, expecting the identifier byte at the current position.
func ReadMTPayload(r io.Reader) (MTPayload, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MTPayload{}, wire.NewIOError(err)
	}
	if id != IdentifierMTPayload {
		return MTPayload{}, wire.NewWrongIEType(IdentifierMTPayload, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MTPayload{}, wire.NewIOError(err)
	}
	if int(length) > MTPayloadMaxLen {
		return MTPayload{}, wire.NewPayloadOversize(int(length), MTPayloadMaxLen)
	}

	payload := make([]byte, length)
	if length > 0 {
		if err := wire.ReadExact(r, payload); err != nil {
			return MTPayload{}, wire.NewIOError(err)
		}
	}

	return MTPayload{Payload: payload}, nil
}

// MTPayloadBuilder constructs an MTPayload, validating its size bound at Build().
type MTPayloadBuilder struct {
	payload []byte
}

// NewMTPayloadBuilder returns an empty MTPayloadBuilder.
func NewMTPayloadBuilder() *MTPayloadBuilder {
	return &MTPayloadBuilder{}
}

// Payload sets the raw bytes to submit.
func (b *MTPayloadBuilder) Payload(payload []byte) *MTPayloadBuilder {
	b.payload = payload
	return b
}

// Build validates the size bound and returns the constructed MTPayload.
func (b *MTPayloadBuilder) Build() (MTPayload, error) {
	if len(b.payload) > MTPayloadMaxLen {
		return MTPayload{}, wire.NewPayloadOversize(len(b.payload), MTPayloadMaxLen)
	}
	return MTPayload{Payload: b.payload}, nil
}
