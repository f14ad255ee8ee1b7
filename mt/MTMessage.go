//******************************************************************************************************
//  MTMessage.go - Gbtc
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

// Package mt implements the Mobile-Terminated envelope: the message family the Gateway delivers
// toward a modem, and the confirmation it returns to the submitting client.
package mt

import (
	"bytes"
	"io"

	"github.com/iridium-sbd/directip-go/ie"
	"github.com/iridium-sbd/directip-go/wire"
)

// protocolVersion is the only envelope version this codec understands.
const protocolVersion uint8 = 1

// MTMessage is the `{version, elements}` envelope for the Mobile-Terminated family. A submission
// carries an MTHeader as its first element; the Gateway's reply instead carries a lone
// MTConfirmation with no header. An MTPayload and an MTConfirmation are mutually exclusive within
// the same message.
type MTMessage struct {
	Elements []ie.InformationElement
}

// Header returns the message's MTHeader, which is always its first element.
func (m MTMessage) Header() (ie.MTHeader, bool) {
	if len(m.Elements) == 0 {
		return ie.MTHeader{}, false
	}
	h, ok := m.Elements[0].(ie.MTHeader)
	return h, ok
}

// Payload returns the message's MTPayload, if present.
func (m MTMessage) Payload() (ie.MTPayload, bool) {
	for _, e := range m.Elements {
		if p, ok := e.(ie.MTPayload); ok {
			return p, true
		}
	}
	return ie.MTPayload{}, false
}

// Confirmation returns the message's MTConfirmation, if present.
func (m MTMessage) Confirmation() (ie.MTConfirmation, bool) {
	for _, e := range m.Elements {
		if c, ok := e.(ie.MTConfirmation); ok {
			return c, true
		}
	}
	return ie.MTConfirmation{}, false
}

// IMEI returns the 15-byte identity carried by whichever header is present. A submission carries
// it on the MTHeader; a Confirmation-only reply carries its own IMEI instead.
func (m MTMessage) IMEI() (ie.IMEI, bool) {
	if h, ok := m.Header(); ok {
		return h.IMEI, true
	}
	if c, ok := m.Confirmation(); ok {
		return c.IMEI, true
	}
	return ie.IMEI{}, false
}

// ConfirmationMessage returns the human-readable status of the message's MTConfirmation, if present.
func (m MTMessage) ConfirmationMessage() (string, bool) {
	c, ok := m.Confirmation()
	if !ok {
		return "", false
	}
	return c.MessageStatus.String(), true
}

// totalLen sums the on-wire size of every element.
func (m MTMessage) totalLen() uint16 {
	var total int
	for _, e := range m.Elements {
		total += e.TotalSize()
	}
	return uint16(total)
}

// WriteTo emits the envelope header followed by every element in stored order, and returns the
// total number of bytes written (always 3 + totalLen()).
func (m MTMessage) WriteTo(w io.Writer) (int, error) {
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

// ReadMTMessage reads and validates a Mobile-Terminated envelope from r. A leading identifier byte
// that isn't a recognized MT element yields WrongIEType, which callers use to detect "this is
// actually an MO envelope" and retry accordingly.
func ReadMTMessage(r io.Reader) (MTMessage, error) {
	version, err := wire.ReadUint8(r)
	if err != nil {
		return MTMessage{}, wire.NewIOError(err)
	}
	if version != protocolVersion {
		return MTMessage{}, wire.NewProtocolVersionError(version)
	}

	declaredLen, err := wire.ReadUint16(r)
	if err != nil {
		return MTMessage{}, wire.NewIOError(err)
	}

	body := make([]byte, declaredLen)
	if declaredLen > 0 {
		if err := wire.ReadExact(r, body); err != nil {
			return MTMessage{}, wire.NewIOError(err)
		}
	}

	br := bytes.NewReader(body)

	var (
		elements        []ie.InformationElement
		sawPayload      bool
		sawConfirmation bool
	)

	for br.Len() > 0 {
		id, err := br.ReadByte()
		if err != nil {
			return MTMessage{}, wire.NewIOError(err)
		}
		if err := br.UnreadByte(); err != nil {
			return MTMessage{}, wire.NewIOError(err)
		}

		if len(elements) == 0 && id != ie.IdentifierMTHeader && id != ie.IdentifierMTConfirmation {
			return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTHeader, id)
		}

		switch id {
		case ie.IdentifierMTHeader:
			if len(elements) != 0 {
				return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTPayload, id)
			}
			h, err := ie.ReadMTHeader(br)
			if err != nil {
				return MTMessage{}, err
			}
			elements = append(elements, h)
		case ie.IdentifierMTPayload:
			if sawConfirmation {
				return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTConfirmation, id)
			}
			p, err := ie.ReadMTPayload(br)
			if err != nil {
				return MTMessage{}, err
			}
			elements = append(elements, p)
			sawPayload = true
		case ie.IdentifierMTConfirmation:
			if sawPayload {
				return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTPayload, id)
			}
			c, err := ie.ReadMTConfirmation(br)
			if err != nil {
				return MTMessage{}, err
			}
			elements = append(elements, c)
			sawConfirmation = true
		default:
			return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTPayload, id)
		}
	}

	if len(elements) == 0 {
		return MTMessage{}, wire.NewWrongIEType(ie.IdentifierMTHeader, 0)
	}

	msg := MTMessage{Elements: elements}
	if msg.totalLen() != declaredLen {
		return MTMessage{}, wire.NewLengthMismatch(declaredLen, msg.totalLen())
	}

	return msg, nil
}
