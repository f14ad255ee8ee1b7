//******************************************************************************************************
//  MTPayload_test.go - Gbtc
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
	"bytes"
	"testing"

	"github.com/iridium-sbd/directip-go/wire"
)

func TestMTPayloadBuilderRejectsOversizePayload(t *testing.T) {
	_, err := NewMTPayloadBuilder().Payload(make([]byte, 1891)).Build()
	wireErr, ok := wire.AsError(err)
	if !ok || wireErr.Kind != wire.KindPayloadOversize {
		t.Fatalf("err = %v, want KindPayloadOversize", err)
	}
	if wireErr.Actual != 1891 || wireErr.Max != 1890 {
		t.Fatalf("Actual=%d Max=%d, want 1891/1890", wireErr.Actual, wireErr.Max)
	}
}

func TestMTPayloadRoundTrip(t *testing.T) {
	p := MTPayload{Payload: []byte("hello, gateway")}

	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	decoded, err := ReadMTPayload(&buf)
	if err != nil {
		t.Fatalf("ReadMTPayload: %v", err)
	}
	if !bytes.Equal(decoded.Payload, p.Payload) {
		t.Fatalf("decoded payload = %q, want %q", decoded.Payload, p.Payload)
	}
}

func TestReadMTPayloadRejectsOversizeDeclaredLength(t *testing.T) {
	buf := []byte{IdentifierMTPayload, 0x07, 0x63} // len = 1891, no body needed to hit the check
	_, err := ReadMTPayload(bytes.NewReader(buf))
	wireErr, ok := wire.AsError(err)
	if !ok || wireErr.Kind != wire.KindPayloadOversize {
		t.Fatalf("err = %v, want KindPayloadOversize", err)
	}
}
