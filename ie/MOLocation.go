//******************************************************************************************************
//  MOLocation.go - Gbtc
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
	"io"

	"github.com/iridium-sbd/directip-go/wire"
)

// moLocationBodyLen is the fixed body length of an MO-Location: 7 (coordinate) + 4 (cep_radius).
const moLocationBodyLen uint16 = 11

// MOLocation is the Mobile-Originated Location Information Element (IEI 0x03): the modem's
// estimated position and its radius of uncertainty. An MOMessage carries at most one of these.
type MOLocation struct {
	Coordinate Coordinate
	CEPRadius  uint32
}

// Identifier returns IdentifierMOLocation.
func (MOLocation) Identifier() uint8 { return IdentifierMOLocation }

// Len returns the fixed MO-Location body length of 11 bytes.
func (MOLocation) Len() uint16 { return moLocationBodyLen }

// TotalSize returns 3 + Len().
func (l MOLocation) TotalSize() int { return 3 + int(l.Len()) }

// WriteTo emits the MO-Location to w.
func (l MOLocation) WriteTo(w io.Writer) (int, error) {
	coordinate, err := l.Coordinate.Encode()
	if err != nil {
		return 0, err
	}

	if err := wire.WriteUint8(w, l.Identifier()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint16(w, l.Len()); err != nil {
		return 0, wire.NewIOError(err)
	}
	if _, err := w.Write(coordinate[:]); err != nil {
		return 0, wire.NewIOError(err)
	}
	if err := wire.WriteUint32(w, l.CEPRadius); err != nil {
		return 0, wire.NewIOError(err)
	}

	return l.TotalSize(), nil
}

// ReadMOLocation reads an MO-Location from r, expecting the identifier byte at the current
// position.
func ReadMOLocation(r io.Reader) (MOLocation, error) {
	id, err := wire.ReadUint8(r)
	if err != nil {
		return MOLocation{}, wire.NewIOError(err)
	}
	if id != IdentifierMOLocation {
		return MOLocation{}, wire.NewWrongIEType(IdentifierMOLocation, id)
	}

	length, err := wire.ReadUint16(r)
	if err != nil {
		return MOLocation{}, wire.NewIOError(err)
	}
	if length != moLocationBodyLen {
		return MOLocation{}, wire.NewInvalidLength(moLocationBodyLen, length)
	}

	var coordinateBuf [CoordinateSize]byte
	if err := wire.ReadExact(r, coordinateBuf[:]); err != nil {
		return MOLocation{}, wire.NewIOError(err)
	}

	cepRadius, err := wire.ReadUint32(r)
	if err != nil {
		return MOLocation{}, wire.NewIOError(err)
	}

	return MOLocation{
		Coordinate: DecodeCoordinate(coordinateBuf),
		CEPRadius:  cepRadius,
	}, nil
}

// MOLocationBuilder constructs an MOLocation, validating required fields at Build().
type MOLocationBuilder struct {
	coordinate    Coordinate
	coordinateSet bool
	cepRadius     uint32
}

// NewMOLocationBuilder returns an empty MOLocationBuilder.
func NewMOLocationBuilder() *MOLocationBuilder {
	return &MOLocationBuilder{}
}

// Coordinate sets the required modem position.
func (b *MOLocationBuilder) Coordinate(coordinate Coordinate) *MOLocationBuilder {
	b.coordinate = coordinate
	b.coordinateSet = true
	return b
}

// CEPRadius sets the radius of uncertainty, in kilometers, around Coordinate.
func (b *MOLocationBuilder) CEPRadius(radius uint32) *MOLocationBuilder {
	b.cepRadius = radius
	return b
}

// Build validates required fields and returns the constructed MOLocation.
func (b *MOLocationBuilder) Build() (MOLocation, error) {
	if !b.coordinateSet {
		return MOLocation{}, wire.NewUninitializedField("coordinate")
	}

	return MOLocation{Coordinate: b.coordinate, CEPRadius: b.cepRadius}, nil
}
