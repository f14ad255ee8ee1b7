//******************************************************************************************************
//  MTMessage_test.go - Gbtc
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

package mt

import (
	"bytes"
	"testing"

	"github.com/iridium-sbd/directip-go/ie"
)

func confirmationEnvelope() []byte {
	return []byte{
		0x01, 0x00, 0x1c,
		0x44, 0x00, 0x19,
		0x00, 0x00, 0x27, 0x0f,
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xf5,
	}
}

func TestReadMTMessageConfirmation(t *testing.T) {
	msg, err := ReadMTMessage(bytes.NewReader(confirmationEnvelope()))
	if err != nil {
		t.Fatalf("ReadMTMessage: %v", err)
	}

	confirmation, ok := msg.Confirmation()
	if !ok {
		t.Fatal("expected a Confirmation IE")
	}
	if confirmation.IDReference != 0xFFFFFFFF {
		t.Fatalf("id_reference = %#x, want 0xFFFFFFFF", confirmation.IDReference)
	}
	if confirmation.MessageStatus != ie.MessageStatusMTMSNOutOfRange {
		t.Fatalf("message_status = %v, want MTMSNOutOfRange", confirmation.MessageStatus)
	}

	imei, ok := msg.IMEI()
	want := ie.IMEI{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if !ok || imei != want {
		t.Fatalf("unexpected imei: %v", imei)
	}
}

func TestMTMessageRoundTrip(t *testing.T) {
	original := confirmationEnvelope()

	msg, err := ReadMTMessage(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("ReadMTMessage: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), original) {
		t.Fatalf("round trip mismatch:\n got: % x\nwant: % x", buf.Bytes(), original)
	}
}

func TestMTMessageBuilderSubmission(t *testing.T) {
	var imei ie.IMEI
	copy(imei[:], []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})

	flags := ie.DispositionFlags{
		FlushQueue:     true,
		SendRingAlert:  true,
		UpdateLocation: true,
		HighPriority:   true,
		AssignMTMSN:    true,
	}

	msg, err := NewMTMessageBuilder().
		ClientMsgID(9999).
		IMEI(imei).
		DispositionFlags(flags).
		Payload(nil).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	header := buf.Bytes()[3:]
	want := []byte{
		0x41, 0x00, 0x15,
		0x00, 0x00, 0x27, 0x0f,
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
		0x00, 0x3b,
	}
	if !bytes.Equal(header, want) {
		t.Fatalf("header bytes mismatch:\n got: % x\nwant: % x", header, want)
	}
}

func TestMTMessageRejectsPayloadWithConfirmation(t *testing.T) {
	buf := append([]byte{}, confirmationEnvelope()...)
	buf = append(buf, 0x42, 0x00, 0x00) // trailing MT-Payload IE
	buf[1] = 0x00
	buf[2] = 0x1f // adjust declared total_len to include the trailing IE

	if _, err := ReadMTMessage(bytes.NewReader(buf)); err == nil {
		t.Fatal("expected an error for Payload+Confirmation in the same message")
	}
}
