//******************************************************************************************************
//  Storage.go - Gbtc
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

// Package storage persists decoded Direct-IP messages behind a single collaborator interface, with
// in-memory, filesystem, and embedded-database backends selected by a URI scheme.
package storage

import (
	"context"
	"fmt"
	"net/url"

	directip "github.com/iridium-sbd/directip-go"
)

// Storage is the save-only collaborator the codec hands decoded messages to. Save is a cooperative
// operation: callers may invoke it concurrently from multiple goroutines, each call independent
// and individually awaited, with no ordering guarantee between concurrent calls. A backend commits
// a single message fully or not at all.
type Storage interface {
	// Save persists msg. An aborted call (ctx canceled) may or may not have persisted bytes; once
	// Save returns nil the message is durably and atomically committed.
	Save(ctx context.Context, msg directip.Message) error
	// Close releases any resources held by the backend. Save after Close returns an error.
	Close() error
}

// NewStorage dispatches on uri's scheme and returns the corresponding backend:
//   - "volatile://"          -> MemoryStorage
//   - "filesystem://<path>"  -> FilesystemStorage rooted at path
//   - "sqlite://<path>"      -> BoltStorage backed by the bbolt file at path
func NewStorage(uri string) (Storage, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("directip/storage: invalid storage URI %q: %w", uri, err)
	}

	switch parsed.Scheme {
	case "volatile":
		return NewMemoryStorage(), nil
	case "filesystem":
		root := parsed.Path
		if root == "" {
			root = parsed.Opaque
		}
		return NewFilesystemStorage(root)
	case "sqlite":
		path := parsed.Path
		if path == "" {
			path = parsed.Opaque
		}
		return NewBoltStorage(path)
	default:
		return nil, fmt.Errorf("directip/storage: unrecognized storage scheme %q", parsed.Scheme)
	}
}
