//******************************************************************************************************
//  Enums_test.go - Gbtc
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

import "testing"

func TestDecodeSessionStatusRejectsGap(t *testing.T) {
	if _, err := DecodeSessionStatus(11); err == nil {
		t.Fatal("expected an error for session status 11, which is never valid")
	}
	if _, err := DecodeSessionStatus(3); err == nil {
		t.Fatal("expected an error for session status 3, which is never valid")
	}
}

func TestDecodeSessionStatusAcceptsEveryNamedCode(t *testing.T) {
	for _, code := range []uint8{0, 1, 2, 10, 12, 13, 14, 15} {
		status, err := DecodeSessionStatus(code)
		if err != nil {
			t.Fatalf("DecodeSessionStatus(%d): %v", code, err)
		}
		if status.Encode() != code {
			t.Fatalf("Encode() = %d, want %d", status.Encode(), code)
		}
	}
}

func TestDecodeMessageStatusSuccessRange(t *testing.T) {
	status, err := DecodeMessageStatus(50)
	if err != nil {
		t.Fatalf("DecodeMessageStatus(50): %v", err)
	}
	order, ok := status.QueueOrder()
	if !ok || order != 50 {
		t.Fatalf("QueueOrder() = (%d, %v), want (50, true)", order, ok)
	}
}

func TestDecodeMessageStatusRejectsAboveMaxQueueOrder(t *testing.T) {
	if _, err := DecodeMessageStatus(51); err == nil {
		t.Fatal("expected an error for message status 51, which is neither a success nor a named failure")
	}
}

func TestDecodeMessageStatusNamedFailure(t *testing.T) {
	status, err := DecodeMessageStatus(-11)
	if err != nil {
		t.Fatalf("DecodeMessageStatus(-11): %v", err)
	}
	if status != MessageStatusMTMSNOutOfRange {
		t.Fatalf("status = %v, want MessageStatusMTMSNOutOfRange", status)
	}
	if status.IsSuccess() {
		t.Fatal("expected IsSuccess() to be false for a failure code")
	}
}

func TestDecodeMessageStatusRejectsBelowMinFailure(t *testing.T) {
	if _, err := DecodeMessageStatus(-13); err == nil {
		t.Fatal("expected an error for message status -13, below the lowest named failure code")
	}
}

func TestDecodeOrientationMasksToTwoBits(t *testing.T) {
	if o := DecodeOrientation(0xff); o != Orientation.SW {
		t.Fatalf("DecodeOrientation(0xff) = %v, want Orientation.SW", o)
	}
	if o := DecodeOrientation(0x04); o != Orientation.NE {
		t.Fatalf("DecodeOrientation(0x04) = %v, want Orientation.NE", o)
	}
}

func TestDispositionFlagsAllOnEncodesTo0x3B(t *testing.T) {
	flags := DispositionFlags{
		FlushQueue:     true,
		SendRingAlert:  true,
		UpdateLocation: true,
		HighPriority:   true,
		AssignMTMSN:    true,
	}
	if code := flags.Encode(); code != 0x3b {
		t.Fatalf("Encode() = %#x, want 0x3b", code)
	}
}

func TestDecodeDispositionFlagsIgnoresReservedBit(t *testing.T) {
	flags := DecodeDispositionFlags(0xffff)
	if flags.Encode() != 0x3b {
		t.Fatalf("round trip of 0xffff = %#x, want 0x3b (reserved/unused bits stripped)", flags.Encode())
	}
}

func TestDispositionFlagsRoundTrip(t *testing.T) {
	want := DispositionFlags{FlushQueue: true, HighPriority: true}
	got := DecodeDispositionFlags(want.Encode())
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
