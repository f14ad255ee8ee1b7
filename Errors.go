//******************************************************************************************************
//  Errors.go - Gbtc
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

package directip

import "github.com/iridium-sbd/directip-go/wire"

// Error and Kind are aliased from package wire so that every codec sub-package (wire, ie, mt, mo)
// can construct the same structured error type described in the Direct-IP error taxonomy without
// importing this root package, which would create an import cycle through Message's use of mt/mo.
type (
	Error = wire.Error
	Kind  = wire.Kind
)

const (
	KindIO                   = wire.KindIO
	KindProtocolVersion      = wire.KindProtocolVersion
	KindWrongIEType          = wire.KindWrongIEType
	KindInvalidLength        = wire.KindInvalidLength
	KindPayloadOversize      = wire.KindPayloadOversize
	KindInvalidSessionStatus = wire.KindInvalidSessionStatus
	KindInvalidMessageStatus = wire.KindInvalidMessageStatus
	KindUninitializedField   = wire.KindUninitializedField
	KindLengthMismatch       = wire.KindLengthMismatch
	KindCoordinateOutOfRange = wire.KindCoordinateOutOfRange
)

// AsError reports whether err is a codec *Error, returning it for inspection.
func AsError(err error) (*Error, bool) {
	return wire.AsError(err)
}
