//******************************************************************************************************
//  Coordinate.go - Gbtc
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

	"github.com/shopspring/decimal"

	"github.com/iridium-sbd/directip-go/wire"
)

// CoordinateSize is the fixed on-wire size, in bytes, of an encoded Coordinate.
const CoordinateSize = 7

// minutesPerDegree is used to convert a fractional degree into thousandths of a minute.
var minutesPerDegree = decimal.NewFromInt(60000)

// Coordinate is a lat/lon pair as reported by an MO-Location Information Element.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Encode packs c into its 7-byte wire representation. The decimal package is used for the
// fractional-minute computation instead of raw float64 arithmetic so that the
// frac(|degrees|)*60000 truncation the protocol specifies doesn't pick up binary floating-point
// rounding drift near exact thousandths (e.g. 0.5 degrees must truncate to exactly 30000, not
// 29999 from an IEEE-754 rounding artifact).
func (c Coordinate) Encode() ([CoordinateSize]byte, error) {
	var buf [CoordinateSize]byte

	if c.Latitude < -90 || c.Latitude > 90 {
		return buf, wire.NewCoordinateOutOfRange("latitude", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return buf, wire.NewCoordinateOutOfRange("longitude", c.Longitude)
	}

	orientation := orientationFor(c.Latitude, c.Longitude)
	buf[0] = orientation.Encode()

	latDegrees, latMinutes := splitDegrees(c.Latitude)
	lonDegrees, lonMinutes := splitDegrees(c.Longitude)

	buf[1] = latDegrees
	buf[2] = byte(latMinutes >> 8)
	buf[3] = byte(latMinutes)
	buf[4] = lonDegrees
	buf[5] = byte(lonMinutes >> 8)
	buf[6] = byte(lonMinutes)

	return buf, nil
}

// Write encodes and writes c to w, returning the number of bytes written (always CoordinateSize).
func (c Coordinate) Write(w io.Writer) (int, error) {
	buf, err := c.Encode()
	if err != nil {
		return 0, err
	}

	if _, err := w.Write(buf[:]); err != nil {
		return 0, wire.NewIOError(err)
	}

	return CoordinateSize, nil
}

// DecodeCoordinate unpacks a 7-byte wire buffer into a Coordinate. Every well-formed 7-byte input
// decodes successfully; the resulting float64 reproduces the encoded value exactly to the
// precision of 1/60000 of a degree.
func DecodeCoordinate(buf [CoordinateSize]byte) Coordinate {
	orientation := DecodeOrientation(buf[0])

	latDegrees := buf[1]
	latMinutes := uint16(buf[2])<<8 | uint16(buf[3])
	lonDegrees := buf[4]
	lonMinutes := uint16(buf[5])<<8 | uint16(buf[6])

	lat := joinDegrees(latDegrees, latMinutes)
	lon := joinDegrees(lonDegrees, lonMinutes)

	switch orientation {
	case Orientation.NE:
		// lat >= 0, lon >= 0
	case Orientation.NW:
		lon = -lon
	case Orientation.SE:
		lat = -lat
	case Orientation.SW:
		lat = -lat
		lon = -lon
	}

	return Coordinate{Latitude: lat, Longitude: lon}
}

// ReadCoordinate reads and decodes a Coordinate from r.
func ReadCoordinate(r io.Reader) (Coordinate, error) {
	var buf [CoordinateSize]byte

	if err := wire.ReadExact(r, buf[:]); err != nil {
		return Coordinate{}, wire.NewIOError(err)
	}

	return DecodeCoordinate(buf), nil
}

// orientationFor computes the quadrant from the signs of lat and lon; zero is treated as positive.
func orientationFor(lat, lon float64) OrientationEnum {
	switch {
	case lat < 0 && lon < 0:
		return Orientation.SW
	case lat < 0:
		return Orientation.SE
	case lon < 0:
		return Orientation.NW
	default:
		return Orientation.NE
	}
}

// splitDegrees decomposes |degrees| into an integer degree byte and thousandths-of-a-minute.
func splitDegrees(degrees float64) (byte, uint16) {
	magnitude := decimal.NewFromFloat(degrees).Abs()
	wholeDegrees := magnitude.Truncate(0)
	fraction := magnitude.Sub(wholeDegrees)
	minutesThousandths := fraction.Mul(minutesPerDegree).Truncate(0)

	return byte(wholeDegrees.IntPart()), uint16(minutesThousandths.IntPart())
}

// joinDegrees reassembles a signed-magnitude degree value from its wire components.
func joinDegrees(degrees byte, minutesThousandths uint16) float64 {
	d := decimal.NewFromInt(int64(degrees))
	m := decimal.NewFromInt(int64(minutesThousandths)).Div(minutesPerDegree)
	value, _ := d.Add(m).Float64()
	return value
}
