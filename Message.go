//******************************************************************************************************
//  Message.go - Gbtc
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

// Package directip implements the codec for Iridium's SBD Direct-IP protocol: a framed,
// TLV-structured binary format exchanged between an Iridium Gateway and a client over TCP.
package directip

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/iridium-sbd/directip-go/ie"
	"github.com/iridium-sbd/directip-go/metrics"
	"github.com/iridium-sbd/directip-go/mo"
	"github.com/iridium-sbd/directip-go/mt"
	"github.com/iridium-sbd/directip-go/wire"
)

// Direction names which message family a Message carries.
type Direction string

const (
	// DirectionMT identifies a Mobile-Terminated message.
	DirectionMT Direction = "MT"
	// DirectionMO identifies a Mobile-Originated message.
	DirectionMO Direction = "MO"
)

// Message is a direction-tagged union over an MTMessage and an MOMessage. The direction is not
// stored on the wire; it is recovered by attempting to parse as MT first, and falling back to MO
// when the leading element isn't a recognized MT identifier.
type Message struct {
	Direction Direction
	MT        mt.MTMessage
	MO        mo.MOMessage
}

// NewMTMessage wraps an already-built MTMessage as a Message.
func NewMTMessage(m mt.MTMessage) Message {
	return Message{Direction: DirectionMT, MT: m}
}

// NewMOMessage wraps an already-built MOMessage as a Message.
func NewMOMessage(m mo.MOMessage) Message {
	return Message{Direction: DirectionMO, MO: m}
}

// IMEI delegates to the inner header of whichever direction this Message carries.
func (m Message) IMEI() (ie.IMEI, bool) {
	switch m.Direction {
	case DirectionMT:
		return m.MT.IMEI()
	case DirectionMO:
		return m.MO.IMEI()
	default:
		return ie.IMEI{}, false
	}
}

// MessageType returns the literal string "MT" or "MO".
func (m Message) MessageType() string {
	return string(m.Direction)
}

// ToVec re-encodes the Message losslessly into a fresh byte slice.
func (m Message) ToVec() ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch m.Direction {
	case DirectionMT:
		_, err = m.MT.WriteTo(&buf)
	case DirectionMO:
		_, err = m.MO.WriteTo(&buf)
	default:
		return nil, wire.NewProtocolVersionError(0)
	}
	if err != nil {
		return nil, err
	}

	metrics.EnvelopesEncoded.Inc()
	metrics.EnvelopeSizeBytes.Observe(float64(buf.Len()))

	return buf.Bytes(), nil
}

// FromReader parses a Message out of r. Per the rewindable-source requirement described by
// Message::from_reader, the envelope's declared length is read up front and the whole envelope is
// buffered into memory before the MT/MO attempts, rather than requiring r itself to support Seek.
func FromReader(r io.Reader) (Message, error) {
	prefix := make([]byte, 3)
	if err := wire.ReadExact(r, prefix); err != nil {
		metrics.DecodeErrors.WithLabelValues(wire.KindIO.String()).Inc()
		return Message{}, wire.NewIOError(err)
	}

	version := prefix[0]
	if version != 1 {
		metrics.DecodeErrors.WithLabelValues(wire.KindProtocolVersion.String()).Inc()
		return Message{}, wire.NewProtocolVersionError(version)
	}

	declaredLen := binary.BigEndian.Uint16(prefix[1:3])

	body := make([]byte, declaredLen)
	if declaredLen > 0 {
		if err := wire.ReadExact(r, body); err != nil {
			metrics.DecodeErrors.WithLabelValues(wire.KindIO.String()).Inc()
			return Message{}, wire.NewIOError(err)
		}
	}

	envelope := append(prefix, body...)

	mtMsg, mtErr := mt.ReadMTMessage(bytes.NewReader(envelope))
	if mtErr == nil {
		metrics.EnvelopesDecoded.Inc()
		return NewMTMessage(mtMsg), nil
	}

	moMsg, moErr := mo.ReadMOMessage(bytes.NewReader(envelope))
	if moErr == nil {
		metrics.EnvelopesDecoded.Inc()
		return NewMOMessage(moMsg), nil
	}

	if wireErr, ok := wire.AsError(mtErr); ok && wireErr.Kind == wire.KindWrongIEType {
		metrics.DecodeErrors.WithLabelValues(wire.KindWrongIEType.String()).Inc()
		return Message{}, moErr
	}

	if wireErr, ok := wire.AsError(mtErr); ok {
		metrics.DecodeErrors.WithLabelValues(wireErr.Kind.String()).Inc()
	}
	return Message{}, mtErr
}
