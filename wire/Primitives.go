//******************************************************************************************************
//  Primitives.go - Gbtc
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

// Package wire provides the big-endian primitive reads and writes shared by every
// Direct-IP Information Element codec, plus the UNIX-seconds <-> UTC time conversion
// used by the MO-Header's time_of_session field.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrShortRead is returned when fewer bytes were available than a fixed-width field requires.
var ErrShortRead = errors.New("wire: short read")

// ReadUint8 reads a single unsigned byte from r.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteUint8 writes a single unsigned byte to w.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// ReadUint16 reads a big-endian uint16 from r.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteUint16 writes v to w as a big-endian uint16.
func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadUint32 reads a big-endian uint32 from r.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readExact(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// WriteUint32 writes v to w as a big-endian uint32.
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadInt16 reads a big-endian two's-complement int16 from r.
func ReadInt16(r io.Reader) (int16, error) {
	u, err := ReadUint16(r)
	if err != nil {
		return 0, err
	}
	return int16(u), nil
}

// WriteInt16 writes v to w as a big-endian two's-complement int16.
func WriteInt16(w io.Writer, v int16) error {
	return WriteUint16(w, uint16(v))
}

// ReadExact fills buf entirely from r. When r runs out early it returns an error that wraps
// ErrShortRead and carries the underlying EOF in its message; any other read error is returned
// unchanged.
func ReadExact(r io.Reader, buf []byte) error {
	return readExact(r, buf)
}

func readExact(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %v", ErrShortRead, err)
		}
		return err
	}
	return nil
}

// UnixToTime converts a Direct-IP 32-bit UNIX seconds timestamp to the unique UTC instant it denotes.
func UnixToTime(seconds uint32) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}

// TimeToUnix converts t to a 32-bit UNIX seconds timestamp. Instants before the UNIX epoch are rejected,
// matching the encode-time rejection spec.md requires of the primitive time converter.
func TimeToUnix(t time.Time) (uint32, error) {
	secs := t.Unix()
	if secs < 0 {
		return 0, fmt.Errorf("wire: time %s is before the UNIX epoch", t.Format(time.RFC3339))
	}
	if secs > int64(^uint32(0)) {
		return 0, fmt.Errorf("wire: time %s overflows a 32-bit UNIX timestamp", t.Format(time.RFC3339))
	}
	return uint32(secs), nil
}
