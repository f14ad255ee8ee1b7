//******************************************************************************************************
//  Storage_test.go - Gbtc
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

package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageVolatile(t *testing.T) {
	s, err := NewStorage("volatile://")
	require.NoError(t, err)
	_, ok := s.(*MemoryStorage)
	assert.True(t, ok)
}

func TestNewStorageFilesystem(t *testing.T) {
	root := t.TempDir()

	s, err := NewStorage(fmt.Sprintf("filesystem://%s", root))
	require.NoError(t, err)
	_, ok := s.(*FilesystemStorage)
	assert.True(t, ok)
}

func TestNewStorageSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.db")

	s, err := NewStorage(fmt.Sprintf("sqlite://%s", path))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*BoltStorage)
	assert.True(t, ok)
}

func TestNewStorageUnknownScheme(t *testing.T) {
	_, err := NewStorage("ftp://example.com")
	assert.Error(t, err)
}
