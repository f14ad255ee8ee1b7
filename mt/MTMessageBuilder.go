//******************************************************************************************************
//  MTMessageBuilder.go - Gbtc
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

import "github.com/iridium-sbd/directip-go/ie"

// MTMessageBuilder proxies field setters onto an inner MTHeaderBuilder and MTPayloadBuilder, and
// assembles an MTMessage with exactly [Header, Payload] on Build(). DispositionFlags defaults to
// all-false when never called.
type MTMessageBuilder struct {
	header  ie.MTHeaderBuilder
	payload ie.MTPayloadBuilder
}

// NewMTMessageBuilder returns an empty MTMessageBuilder.
func NewMTMessageBuilder() *MTMessageBuilder {
	return &MTMessageBuilder{}
}

// ClientMsgID sets the required client-assigned message ID.
func (b *MTMessageBuilder) ClientMsgID(id uint32) *MTMessageBuilder {
	b.header.ClientMsgID(id)
	return b
}

// IMEI sets the required destination IMEI.
func (b *MTMessageBuilder) IMEI(imei ie.IMEI) *MTMessageBuilder {
	b.header.IMEI(imei)
	return b
}

// Payload sets the raw bytes to submit.
func (b *MTMessageBuilder) Payload(payload []byte) *MTMessageBuilder {
	b.payload.Payload(payload)
	return b
}

// DispositionFlags sets the optional disposition flags.
func (b *MTMessageBuilder) DispositionFlags(flags ie.DispositionFlags) *MTMessageBuilder {
	b.header.DispositionFlags(flags)
	return b
}

// Build validates required fields and returns the constructed MTMessage.
func (b *MTMessageBuilder) Build() (MTMessage, error) {
	header, err := b.header.Build()
	if err != nil {
		return MTMessage{}, err
	}

	payload, err := b.payload.Build()
	if err != nil {
		return MTMessage{}, err
	}

	return MTMessage{Elements: []ie.InformationElement{header, payload}}, nil
}
