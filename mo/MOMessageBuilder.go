//******************************************************************************************************
//  MOMessageBuilder.go - Gbtc
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
	"time"

	"github.com/iridium-sbd/directip-go/ie"
)

// MOMessageBuilder proxies field setters onto an inner MOHeaderBuilder, and optionally attaches a
// payload and/or a location fix on Build(). Unlike MTMessageBuilder, Payload and Location are both
// optional: a bare header is a valid MOMessage (e.g. a session with no mobile-originated data).
type MOMessageBuilder struct {
	header      ie.MOHeaderBuilder
	payload     []byte
	payloadSet  bool
	coordinate  ie.Coordinate
	cepRadius   uint32
	locationSet bool
}

// NewMOMessageBuilder returns an empty MOMessageBuilder.
func NewMOMessageBuilder() *MOMessageBuilder {
	return &MOMessageBuilder{}
}

// CDRUID sets the required call data record identifier.
func (b *MOMessageBuilder) CDRUID(id uint32) *MOMessageBuilder {
	b.header.CDRUID(id)
	return b
}

// IMEI sets the required originating IMEI.
func (b *MOMessageBuilder) IMEI(imei ie.IMEI) *MOMessageBuilder {
	b.header.IMEI(imei)
	return b
}

// SessionStatus sets the required session outcome.
func (b *MOMessageBuilder) SessionStatus(status ie.SessionStatusEnum) *MOMessageBuilder {
	b.header.SessionStatus(status)
	return b
}

// MOMSN sets the modem-maintained Mobile-Originated sequence number.
func (b *MOMessageBuilder) MOMSN(momsn uint16) *MOMessageBuilder {
	b.header.MOMSN(momsn)
	return b
}

// MTMSN sets the Gateway-maintained Mobile-Terminated sequence number.
func (b *MOMessageBuilder) MTMSN(mtmsn uint16) *MOMessageBuilder {
	b.header.MTMSN(mtmsn)
	return b
}

// TimeOfSession sets the required session completion time.
func (b *MOMessageBuilder) TimeOfSession(t time.Time) *MOMessageBuilder {
	b.header.TimeOfSession(t)
	return b
}

// Payload attaches an optional MO-Payload.
func (b *MOMessageBuilder) Payload(payload []byte) *MOMessageBuilder {
	b.payload = payload
	b.payloadSet = true
	return b
}

// Location attaches an optional MO-Location.
func (b *MOMessageBuilder) Location(coordinate ie.Coordinate, cepRadius uint32) *MOMessageBuilder {
	b.coordinate = coordinate
	b.cepRadius = cepRadius
	b.locationSet = true
	return b
}

// Build validates required fields and returns the constructed MOMessage.
func (b *MOMessageBuilder) Build() (MOMessage, error) {
	header, err := b.header.Build()
	if err != nil {
		return MOMessage{}, err
	}

	elements := []ie.InformationElement{header}

	if b.payloadSet {
		payload, err := ie.NewMOPayloadBuilder().Payload(b.payload).Build()
		if err != nil {
			return MOMessage{}, err
		}
		elements = append(elements, payload)
	}

	if b.locationSet {
		location, err := ie.NewMOLocationBuilder().Coordinate(b.coordinate).CEPRadius(b.cepRadius).Build()
		if err != nil {
			return MOMessage{}, err
		}
		elements = append(elements, location)
	}

	return MOMessage{Elements: elements}, nil
}
