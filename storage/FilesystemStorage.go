//******************************************************************************************************
//  FilesystemStorage.go - Gbtc
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
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/tevino/abool/v2"

	directip "github.com/iridium-sbd/directip-go"
	"github.com/iridium-sbd/directip-go/metrics"
)

// FilesystemStorage is the "filesystem://" backend. Each Save writes exactly one file under
// <root>/data/<imei-hex>/<YYYY>/<YYYYmmddHHMMSS><6-digit sequence>.isbd, per the persisted-state layout: the
// IMEI directory is the 15 bytes rendered as 30 lowercase hex characters, or the literal "Unknown"
// when the message carries no header. Directories are created on demand.
type FilesystemStorage struct {
	root     string
	closed   abool.AtomicBool
	sequence uint64
}

// NewFilesystemStorage returns a FilesystemStorage rooted at root, which must already exist and be
// a directory.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("directip/storage: filesystem root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("directip/storage: filesystem root %q is not a directory", root)
	}

	return &FilesystemStorage{root: root}, nil
}

// Save encodes msg and writes it to a uniquely named final path; atomicity comes from the fact
// that the filename is unique per call and is never rewritten in place.
func (s *FilesystemStorage) Save(ctx context.Context, msg directip.Message) error {
	if s.closed.IsSet() {
		return ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := msg.ToVec()
	if err != nil {
		return fmt.Errorf("directip/storage: encoding message: %w", err)
	}

	now := time.Now().UTC()
	dir := filepath.Join(s.root, "data", imeiDirectory(msg), fmt.Sprintf("%04d", now.Year()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("directip/storage: creating %q: %w", dir, err)
	}

	seq := atomic.AddUint64(&s.sequence, 1)
	filename := fmt.Sprintf("%s%06d.isbd", now.Format("20060102150405"), seq)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("directip/storage: writing %q: %w", path, err)
	}

	metrics.MessagesSaved.WithLabelValues("filesystem").Inc()
	return nil
}

// Close marks the backend closed; subsequent Save calls return ErrStorageClosed.
func (s *FilesystemStorage) Close() error {
	s.closed.Set()
	return nil
}

// imeiDirectory renders the message's IMEI as 30 lowercase hex characters, or "Unknown" when the
// message carries no header.
func imeiDirectory(msg directip.Message) string {
	imei, ok := msg.IMEI()
	if !ok {
		return "Unknown"
	}
	return hex.EncodeToString(imei[:])
}
