//******************************************************************************************************
//  FilesystemStorage_test.go - Gbtc
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
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directip "github.com/iridium-sbd/directip-go"
)

func mustOpen(t *testing.T, path string) io.Reader {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestFilesystemStorageRoundTrip(t *testing.T) {
	root := t.TempDir()

	s, err := NewFilesystemStorage(root)
	require.NoError(t, err)
	defer s.Close()

	original := buildTestMessage(t, 9999)
	require.NoError(t, s.Save(context.Background(), original))

	var found string
	err = filepath.WalkDir(filepath.Join(root, "data"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".isbd" {
			found = path
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, found, "expected a .isbd file under <root>/data")

	originalBytes, err := original.ToVec()
	require.NoError(t, err)

	decoded, err := directip.FromReader(mustOpen(t, found))
	require.NoError(t, err)

	decodedBytes, err := decoded.ToVec()
	require.NoError(t, err)
	assert.Equal(t, originalBytes, decodedBytes)
}

func TestFilesystemStorageRejectsMissingRoot(t *testing.T) {
	_, err := NewFilesystemStorage(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
