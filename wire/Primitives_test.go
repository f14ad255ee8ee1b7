//******************************************************************************************************
//  Primitives_test.go - Gbtc
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

package wire

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestUint16RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteUint16(&buf, 0xABCD); err != nil {
		t.Fatalf("WriteUint16: unexpected error: %v", err)
	}

	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xAB, 0xCD}) {
		t.Fatalf("WriteUint16: unexpected bytes %x", got)
	}

	v, err := ReadUint16(&buf)
	if err != nil {
		t.Fatalf("ReadUint16: unexpected error: %v", err)
	}

	if v != 0xABCD {
		t.Fatalf("ReadUint16: expected 0xABCD, got %#x", v)
	}
}

func TestReadUint32ShortRead(t *testing.T) {
	_, err := ReadUint32(bytes.NewReader([]byte{0x01, 0x02}))

	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestInt16RoundTripNegative(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteInt16(&buf, -11); err != nil {
		t.Fatalf("WriteInt16: unexpected error: %v", err)
	}

	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xff, 0xf5}) {
		t.Fatalf("WriteInt16: unexpected bytes %x", got)
	}

	v, err := ReadInt16(&buf)
	if err != nil {
		t.Fatalf("ReadInt16: unexpected error: %v", err)
	}

	if v != -11 {
		t.Fatalf("ReadInt16: expected -11, got %d", v)
	}
}

func TestUnixTimeRoundTrip(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 30, 0, 0, time.UTC)

	seconds, err := TimeToUnix(now)
	if err != nil {
		t.Fatalf("TimeToUnix: unexpected error: %v", err)
	}

	back := UnixToTime(seconds)
	if !back.Equal(now) {
		t.Fatalf("UnixToTime: expected %s, got %s", now, back)
	}
}

func TestTimeToUnixRejectsBeforeEpoch(t *testing.T) {
	before := time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC)

	if _, err := TimeToUnix(before); err == nil {
		t.Fatalf("expected error for timestamp before the UNIX epoch")
	}
}
