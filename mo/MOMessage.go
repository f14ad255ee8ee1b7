//******************************************************************************************************
//  MOMessage.go - Gbtc
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

// Package mo implements the Mobile-Originated envelope: the message family a modem submits to the
// Gateway, optionally carrying a payload and/or a location fix.
package mo

import (
	"bytes"
	"io"

	"github.com/iridium-sbd/directip-go/ie"
	"github.com/iridium-sbd/directip-go/wire"
)

const protocolVersion uint8 = 1

// MOMessage is the `{version, elements}` envelope for the Mobile-Originated family. Its first
// element is always an MOHeader; at most one MOPayload and one MOLocation may follow.
type MOMessage struct {
	Elements []ie.InformationElement
}

// Header returns the message's MOHeader, which is always its first element.
func (m MOMessage) Header() (ie.MOHeader, bool) {
	if len(m.Elements) == 0 {
		return ie.MOHeader{}, false
	}
	h, ok := m.Elements[0].(ie.MOHeader)
	return h, ok
}

// Payload returns the message's MOPayload, if present.
func (m MOMessage) Payload() (ie.MOPayload, bool) {
	for _, e := range m.Elements {
		if p, ok := e.(ie.MOPayload); ok {
			return p, true
		}
	}
	return ie.MOPayload{}, false
}

// Location returns the message's MOLocation, if present.
func (m MOMessage) Location() (ie.MOLocation, bool) {
	for _, e := range m.Elements {
		if l, ok := e.(ie.MOLocation); ok {
			return l, true
		}
	}
	return ie.MOLocation{}, false
}

// IMEI returns the 15-byte identity carried by the header.
func (m MOMessage) IMEI() (ie.IMEI, bool) {
	h, ok := m.Header()
	if !ok {
		return ie.IMEI{}, false
	}
	return h.IMEI, true
}

func (m MOMessage) totalLen() uint16 {
	var total int
	for _, e := range m.Elements {
		total += e.TotalSize()
	}
	return uint16(total)
}

// WriteTo emits the envelope header followed by every element in stored order, and returns the
// total number of bytes written (always 3 + totalLen()).
func (m MOMessage) WriteTo(w io.Writer) (int, error) {
	if err := wire.WriteUint8(w, protocolVersion); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, m.totalLen()); err != nil {
		return 0, wire.NewIOError(err)
	}

	written := 3
	for _, e := range m.Elements {
		n, err := e.WriteTo(w)
		if err != nil {
			return 0, err
		}
		written += n
	}

	return written, nil
}

// ReadMOMessage reads and validates a Mobile-Originated envelope from r. A leading identifier byte
// that isn't a recognized MO element yields WrongIEType.
func ReadMOMessage(r io.Reader) (MOMessage, error) {
	version, err := wire.ReadUint8(r)
	if err != nil {
		return MOMessage{}, wire.NewIOError(err)
	}
	if version != protocolVersion {
		return MOMessage{}, wire.NewProtocolVersionError(version)
	}

	declaredLen, err := wire.ReadUint16(r)
	if err != nil {
		return MOMessage{}, wire.NewIOError(err)
	}

	body := make([]byte, declaredLen)
	if declaredLen > 0 {
		if err := wire.ReadExact(r, body); err != nil {
			return MOMessage{}, wire.NewIOError(err)
		}
	}

	br := bytes.NewReader(body)

	var (
		elements    []ie.InformationElement
		sawPayload  bool
		sawLocation bool
	)

	for br.Len() > 0 {
		id, err := br.ReadByte()
		if err != nil {
			return MOMessage{}, wire.NewIOError(err)
		}
		if err := br.UnreadByte(); err != nil {
			return MOMessage{}, wire.NewIOError(err)
		}

		if len(elements) == 0 && id != ie.IdentifierMOHeader {
			return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOHeader, id)
		}

		switch id {
		case ie.IdentifierMOHeader:
			if len(elements) != 0 {
				return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOPayload, id)
			}
			h, err := ie.ReadMOHeader(br)
			if err != nil {
				return MOMessage{}, err
			}
			elements = append(elements, h)
		case ie.IdentifierMOPayload:
			// Rejects a second MO-Payload; the original source left this unguarded.
			if sawPayload {
				return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOLocation, id)
			}
			p, err := ie.ReadMOPayload(br)
			if err != nil {
				return MOMessage{}, err
			}
			elements = append(elements, p)
			sawPayload = true
		case ie.IdentifierMOLocation:
			if sawLocation {
				return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOPayload, id)
			}
			l, err := ie.ReadMOLocation(br)
			if err != nil {
				return MOMessage{}, err
			}
			elements = append(elements, l)
			sawLocation = true
		default:
			return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOPayload, id)
		}
	}

	if len(elements) == 0 {
		return MOMessage{}, wire.NewWrongIEType(ie.IdentifierMOHeader, 0)
	}

	msg := MOMessage{Elements: elements}
	if msg.totalLen() != declaredLen {
		return MOMessage{}, wire.NewLengthMismatch(declaredLen, msg.totalLen())
	}

	return msg, nil
}
