//******************************************************************************************************
//  Logging.go - Gbtc
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

import (
	"sync"

	"github.com/iridium-sbd/directip-go/ie"
)

func init() {
	ie.SetReservedBitLogger(func(message string) {
		logMessage(LevelDebug, message)
	})
}

// Level identifies the severity of a diagnostic message emitted by the codec.
type Level int

const (
	// LevelDebug is used for low-level diagnostics, e.g. an ignored reserved bit.
	LevelDebug Level = iota
	// LevelInfo marks routine informational messages. No code in this module emits at this level.
	LevelInfo
	// LevelWarn marks anomalies recovered from without failing the operation. No code in this
	// module emits at this level.
	LevelWarn
)

// Logger receives diagnostic messages from the codec. The only message emitted is the LevelDebug
// notice for a non-zero reserved DispositionFlags bit; the storage backends do not log. The default logger
// discards everything; callers wire their own logging backend with SetLogger, the same hook
// shape as the teacher's SubscriberBase status/error message callbacks.
type Logger func(level Level, message string)

var (
	loggerMu sync.RWMutex
	logger   Logger = func(Level, string) {}
)

// SetLogger installs fn as the package-wide diagnostic sink. Passing nil restores the no-op logger.
func SetLogger(fn Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if fn == nil {
		fn = func(Level, string) {}
	}

	logger = fn
}

func logMessage(level Level, message string) {
	loggerMu.RLock()
	fn := logger
	loggerMu.RUnlock()

	fn(level, message)
}
