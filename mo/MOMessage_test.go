//******************************************************************************************************
//  MOMessage_test.go - Gbtc
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

package mo

import (
	"bytes"
	"testing"
	"time"

	"github.com/iridium-sbd/directip-go/ie"
)

func TestReadMOLocation(t *testing.T) {
	body := []byte{0x03, 0x00, 0x0b, 0x01, 0x21, 0x28, 0x47, 0x76, 0x7f, 0x06, 0x00, 0x01, 0x00, 0x00}

	location, err := ie.ReadMOLocation(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("ReadMOLocation: %v", err)
	}
	if location.CEPRadius != 0x00010000 {
		t.Fatalf("cep_radius = %#x, want 0x00010000", location.CEPRadius)
	}
	if location.TotalSize() != 14 {
		t.Fatalf("TotalSize() = %d, want 14", location.TotalSize())
	}
}

func TestReadMOHeaderInvalidSessionStatus(t *testing.T) {
	body := []byte{
		0x01, 0x00, 0x1c,
		0x00, 0x00, 0x00, 0x01, // cdr_uid
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, // imei
		0x0b,                   // session_status = 11, invalid
		0x00, 0x01, 0x00, 0x02, // momsn, mtmsn
		0x00, 0x00, 0x00, 0x00, // time_of_session
	}

	if _, err := ie.ReadMOHeader(bytes.NewReader(body)); err == nil {
		t.Fatal("expected InvalidSessionStatus error")
	}
}

func TestMOMessageBuilderHeaderOnly(t *testing.T) {
	var imei ie.IMEI
	copy(imei[:], []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})

	msg, err := NewMOMessageBuilder().
		CDRUID(1).
		IMEI(imei).
		SessionStatus(ie.SessionStatus.Success).
		TimeOfSession(time.Unix(0, 0).UTC()).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	decoded, err := ReadMOMessage(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadMOMessage: %v", err)
	}
	if _, ok := decoded.Payload(); ok {
		t.Fatal("expected no payload")
	}
	if _, ok := decoded.Location(); ok {
		t.Fatal("expected no location")
	}
}

func TestMOMessageRejectsDuplicatePayload(t *testing.T) {
	var imei ie.IMEI
	copy(imei[:], []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})

	msg, err := NewMOMessageBuilder().
		CDRUID(1).
		IMEI(imei).
		SessionStatus(ie.SessionStatus.Success).
		TimeOfSession(time.Unix(0, 0).UTC()).
		Payload([]byte("hello")).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	payload, _ := msg.Payload()
	var extra bytes.Buffer
	if _, err := payload.WriteTo(&extra); err != nil {
		t.Fatalf("WriteTo payload: %v", err)
	}

	body := append(append([]byte{}, buf.Bytes()...), extra.Bytes()...)
	newLen := uint16(len(body) - 3)
	body[1] = byte(newLen >> 8)
	body[2] = byte(newLen)

	if _, err := ReadMOMessage(bytes.NewReader(body)); err == nil {
		t.Fatal("expected an error for a duplicate MO-Payload")
	}
}
