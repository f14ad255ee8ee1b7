//******************************************************************************************************
//  Enums.go - Gbtc
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

// Package ie implements the Direct-IP Information Element codecs: the enumerated status codes,
// the lat/lon coordinate sub-codec, and the six typed {id, len, body} variants that compose MO
// and MT envelopes.
package ie

import (
	"io"

	"github.com/iridium-sbd/directip-go/wire"
)

// SessionStatusEnum is the wire representation of an MO-Header session status.
type SessionStatusEnum uint8

// SessionStatus enumerates the eight valid MO session status codes. The codes are not contiguous:
// values 3-9 and 11 are never valid.
var SessionStatus = struct {
	Success       SessionStatusEnum
	MTTooLarge    SessionStatusEnum
	BadLocation   SessionStatusEnum
	Timeout       SessionStatusEnum
	MOTooLarge    SessionStatusEnum
	RFLoss        SessionStatusEnum
	SSDAnomaly    SessionStatusEnum
	SSDProhibited SessionStatusEnum
}{
	Success:       0,
	MTTooLarge:    1,
	BadLocation:   2,
	Timeout:       10,
	MOTooLarge:    12,
	RFLoss:        13,
	SSDAnomaly:    14,
	SSDProhibited: 15,
}

// DecodeSessionStatus maps a wire byte to a SessionStatusEnum, rejecting unrecognized codes.
func DecodeSessionStatus(code uint8) (SessionStatusEnum, error) {
	switch SessionStatusEnum(code) {
	case SessionStatus.Success, SessionStatus.MTTooLarge, SessionStatus.BadLocation,
		SessionStatus.Timeout, SessionStatus.MOTooLarge, SessionStatus.RFLoss,
		SessionStatus.SSDAnomaly, SessionStatus.SSDProhibited:
		return SessionStatusEnum(code), nil
	default:
		return 0, wire.NewInvalidSessionStatus(code)
	}
}

// Encode returns the wire byte for a SessionStatusEnum.
func (s SessionStatusEnum) Encode() uint8 {
	return uint8(s)
}

// String returns the human-readable session status description.
func (s SessionStatusEnum) String() string {
	switch s {
	case SessionStatus.Success:
		return "Session completed successfully"
	case SessionStatus.MTTooLarge:
		return "MO transfer success, but MT message is too large"
	case SessionStatus.BadLocation:
		return "MO transfer success, but bad location"
	case SessionStatus.Timeout:
		return "Session timed out before completion"
	case SessionStatus.MOTooLarge:
		return "MO message too large"
	case SessionStatus.RFLoss:
		return "Lost connection during session"
	case SessionStatus.SSDAnomaly:
		return "Device protocol anomaly"
	case SessionStatus.SSDProhibited:
		return "Device prohibited from accessing the Gateway"
	default:
		return "Unknown session status"
	}
}

// MessageStatusEnum is the wire representation of an MT-Confirmation message status.
type MessageStatusEnum int16

// Named failure codes for MessageStatusEnum. SuccessfulQueueOrder(n) is represented directly by
// the non-negative value n (0..=50); there is no separate named constant for it.
const (
	MessageStatusInvalidIMEI             MessageStatusEnum = -1
	MessageStatusUnknownIMEI             MessageStatusEnum = -2
	MessageStatusPayloadOversized        MessageStatusEnum = -3
	MessageStatusPayloadMissing          MessageStatusEnum = -4
	MessageStatusMTQueueFull             MessageStatusEnum = -5
	MessageStatusMTResourcesUnavailable  MessageStatusEnum = -6
	MessageStatusProtocolViolation       MessageStatusEnum = -7
	MessageStatusRingAlertsDisabled      MessageStatusEnum = -8
	MessageStatusSSDNotAttached          MessageStatusEnum = -9
	MessageStatusSourceAddressRejected   MessageStatusEnum = -10
	MessageStatusMTMSNOutOfRange         MessageStatusEnum = -11
	MessageStatusCertificateRejected     MessageStatusEnum = -12
	messageStatusMaxQueueOrder           MessageStatusEnum = 50
)

// DecodeMessageStatus maps a wire i16 to a MessageStatusEnum. Values 0..=50 decode as a successful
// queue order; values 51..32767 are neither a success nor an enumerated failure and are rejected
// as invalid, per the Open Question resolution in the specification.
func DecodeMessageStatus(code int16) (MessageStatusEnum, error) {
	switch {
	case code >= 0 && MessageStatusEnum(code) <= messageStatusMaxQueueOrder:
		return MessageStatusEnum(code), nil
	case MessageStatusEnum(code) >= MessageStatusCertificateRejected && code < 0:
		return MessageStatusEnum(code), nil
	default:
		return 0, wire.NewInvalidMessageStatus(code)
	}
}

// Encode returns the wire i16 for a MessageStatusEnum.
func (m MessageStatusEnum) Encode() int16 {
	return int16(m)
}

// IsSuccess reports whether m represents a successful queue order rather than a failure reason.
func (m MessageStatusEnum) IsSuccess() bool {
	return m >= 0
}

// QueueOrder returns the queue position for a successful MessageStatusEnum and true, or
// (0, false) if m represents a failure reason.
func (m MessageStatusEnum) QueueOrder() (uint8, bool) {
	if !m.IsSuccess() {
		return 0, false
	}
	return uint8(m), true
}

// String returns the human-readable message status description used by
// MTMessage.ConfirmationMessage().
func (m MessageStatusEnum) String() string {
	if m.IsSuccess() {
		return "Successful transfer, queue order"
	}

	switch m {
	case MessageStatusInvalidIMEI:
		return "Invalid IMEI - too few characters, non-numeric characters"
	case MessageStatusUnknownIMEI:
		return "Unknown IMEI - not provisioned on the GSS"
	case MessageStatusPayloadOversized:
		return "Payload size exceeded maximum allowed"
	case MessageStatusPayloadMissing:
		return "Payload expected, but none received"
	case MessageStatusMTQueueFull:
		return "MT message queue full"
	case MessageStatusMTResourcesUnavailable:
		return "MT resources unavailable"
	case MessageStatusProtocolViolation:
		return "Violation of MT Direct-IP protocol"
	case MessageStatusRingAlertsDisabled:
		return "Ring alerts to the given SSD are disabled"
	case MessageStatusSSDNotAttached:
		return "The given SSD is not attached"
	case MessageStatusSourceAddressRejected:
		return "Source address rejected by MT filter"
	case MessageStatusMTMSNOutOfRange:
		return "MTMSN value is out of range"
	case MessageStatusCertificateRejected:
		return "Client SSL/TLS certificate rejected by MT filter"
	default:
		return "Unknown message status"
	}
}

// OrientationEnum is the 2-bit quadrant tag packed into byte 0 of an encoded Coordinate.
type OrientationEnum uint8

// Orientation enumerates the four lat/lon sign quadrants.
var Orientation = struct {
	NE OrientationEnum
	NW OrientationEnum
	SE OrientationEnum
	SW OrientationEnum
}{
	NE: 0,
	NW: 1,
	SE: 2,
	SW: 3,
}

// DecodeOrientation maps the low 2 bits of a coordinate's first byte to an OrientationEnum. Every
// 2-bit value is a valid quadrant, so this never fails.
func DecodeOrientation(code uint8) OrientationEnum {
	return OrientationEnum(code & 0x03)
}

// Encode returns the 2-bit wire code for an OrientationEnum.
func (o OrientationEnum) Encode() uint8 {
	return uint8(o)
}

// DispositionFlags is the set of five independent MT submission flags packed into a big-endian
// u16 on the wire. Bit 2 is reserved and always emitted as zero; it is masked out on decode.
type DispositionFlags struct {
	FlushQueue     bool
	SendRingAlert  bool
	UpdateLocation bool
	HighPriority   bool
	AssignMTMSN    bool
}

const (
	dispositionFlushQueue     uint16 = 1 << 0
	dispositionSendRingAlert  uint16 = 1 << 1
	dispositionReservedBit2   uint16 = 1 << 2
	dispositionUpdateLocation uint16 = 1 << 3
	dispositionHighPriority   uint16 = 1 << 4
	dispositionAssignMTMSN    uint16 = 1 << 5
	dispositionKnownBitsMask  uint16 = dispositionFlushQueue | dispositionSendRingAlert |
		dispositionUpdateLocation | dispositionHighPriority | dispositionAssignMTMSN
)

// DecodeDispositionFlags unpacks a wire u16 into a DispositionFlags value. Bit 2 and bits 6-15 are
// reserved/unused and are silently ignored, per the Open Question resolution in the specification.
func DecodeDispositionFlags(code uint16) DispositionFlags {
	if code&dispositionReservedBit2 != 0 {
		logReservedDispositionBit()
	}

	return DispositionFlags{
		FlushQueue:     code&dispositionFlushQueue != 0,
		SendRingAlert:  code&dispositionSendRingAlert != 0,
		UpdateLocation: code&dispositionUpdateLocation != 0,
		HighPriority:   code&dispositionHighPriority != 0,
		AssignMTMSN:    code&dispositionAssignMTMSN != 0,
	}
}

// Encode packs a DispositionFlags into its wire u16 representation. The reserved bit 2 and all
// bits above 5 are always emitted as zero.
func (d DispositionFlags) Encode() uint16 {
	var code uint16

	if d.FlushQueue {
		code |= dispositionFlushQueue
	}
	if d.SendRingAlert {
		code |= dispositionSendRingAlert
	}
	if d.UpdateLocation {
		code |= dispositionUpdateLocation
	}
	if d.HighPriority {
		code |= dispositionHighPriority
	}
	if d.AssignMTMSN {
		code |= dispositionAssignMTMSN
	}

	return code & dispositionKnownBitsMask
}

// ReadDispositionFlags reads and decodes a DispositionFlags from r.
func ReadDispositionFlags(r io.Reader) (DispositionFlags, error) {
	code, err := wire.ReadUint16(r)
	if err != nil {
		return DispositionFlags{}, wire.NewIOError(err)
	}
	return DecodeDispositionFlags(code), nil
}

// Write encodes and writes d to w, returning the number of bytes written (always 2).
func (d DispositionFlags) Write(w io.Writer) (int, error) {
	if err := wire.WriteUint16(w, d.Encode()); err != nil {
		return 0, wire.NewIOError(err)
	}
	return 2, nil
}

// reservedDispositionBitLogger is overridden by SetReservedBitLogger so that callers outside this
// package (the directip root package) can route the observation through their own logging hook
// without ie importing the root package and creating an import cycle.
var reservedDispositionBitLogger func(message string) = func(string) {}

// SetReservedBitLogger installs fn to receive a message whenever a decoded DispositionFlags value
// carries a non-zero reserved bit 2. Passing nil disables the notification.
func SetReservedBitLogger(fn func(message string)) {
	if fn == nil {
		fn = func(string) {}
	}
	reservedDispositionBitLogger = fn
}

func logReservedDispositionBit() {
	reservedDispositionBitLogger("directip: non-zero reserved bit 2 observed in DispositionFlags, ignoring")
}
