//******************************************************************************************************
//  Coordinate_test.go - Gbtc
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
	"testing"

	"github.com/iridium-sbd/directip-go/wire"
)

func TestCoordinateRoundTrip(t *testing.T) {
	cases := []Coordinate{
		{Latitude: 27.3456, Longitude: 86.7833},   // NE, Everest
		{Latitude: -33.8567, Longitude: 151.2153}, // SE, Sydney
		{Latitude: 48.8566, Longitude: -2.3522},   // NW, Paris
		{Latitude: -22.9068, Longitude: -43.1729}, // SW, Rio
		{Latitude: 0.5, Longitude: 0},
	}

	for _, c := range cases {
		buf, err := c.Encode()
		if err != nil {
			t.Fatalf("Encode(%+v): %v", c, err)
		}
		got := DecodeCoordinate(buf)
		if got.Latitude != c.Latitude || got.Longitude != c.Longitude {
			t.Fatalf("round trip %+v -> %+v, want exact match", c, got)
		}
	}
}

func TestCoordinateSubMinuteFractionHasNoRoundingDrift(t *testing.T) {
	c := Coordinate{Latitude: 10.0005, Longitude: 0}
	buf, err := c.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// 0.0005 degrees * 60000 thousandths-per-degree = 30 thousandths-of-a-minute, exactly.
	minutesThousandths := uint16(buf[2])<<8 | uint16(buf[3])
	if minutesThousandths != 30 {
		t.Fatalf("minutes thousandths = %d, want 30 (no float64 rounding drift)", minutesThousandths)
	}
}

func TestCoordinateEncodeRejectsOutOfRangeLatitude(t *testing.T) {
	_, err := Coordinate{Latitude: 90.1, Longitude: 0}.Encode()
	wireErr, ok := wire.AsError(err)
	if !ok || wireErr.Kind != wire.KindCoordinateOutOfRange {
		t.Fatalf("err = %v, want KindCoordinateOutOfRange", err)
	}
}

func TestCoordinateEncodeRejectsOutOfRangeLongitude(t *testing.T) {
	_, err := Coordinate{Latitude: 0, Longitude: 180.1}.Encode()
	wireErr, ok := wire.AsError(err)
	if !ok || wireErr.Kind != wire.KindCoordinateOutOfRange {
		t.Fatalf("err = %v, want KindCoordinateOutOfRange", err)
	}
}
