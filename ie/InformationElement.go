//******************************************************************************************************
//  InformationElement.go - Gbtc
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

import "io"

// Identifier bytes (IEI) for every Information Element variant the Direct-IP protocol defines.
const (
	IdentifierMOHeader       uint8 = 0x01
	IdentifierMOPayload      uint8 = 0x02
	IdentifierMOLocation     uint8 = 0x03
	IdentifierMTHeader       uint8 = 0x41
	IdentifierMTPayload      uint8 = 0x42
	IdentifierMTConfirmation uint8 = 0x44
)

// InformationElement is implemented by every {id, len, body} sub-record that composes an MO or MT
// envelope. There is a single closed set of variants (MTHeader, MTPayload, MTConfirmation,
// MOHeader, MOPayload, MOLocation); no virtual dispatch beyond this interface is needed.
type InformationElement interface {
	// Identifier returns the IE's 1-byte identifier (IEI).
	Identifier() uint8
	// Len returns the body length in bytes, not counting the 3-byte {id, len} prefix.
	Len() uint16
	// TotalSize returns 3 + Len(), the number of bytes WriteTo emits.
	TotalSize() int
	// WriteTo emits {id, len, body} to w and returns the number of bytes written, which always
	// equals TotalSize().
	WriteTo(w io.Writer) (int, error)
}
