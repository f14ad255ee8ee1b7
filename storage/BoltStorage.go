//******************************************************************************************************
//  BoltStorage.go - Gbtc
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
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	directip "github.com/iridium-sbd/directip-go"
	"github.com/iridium-sbd/directip-go/metrics"
)

// inboxBucket is the single bucket BoltStorage uses, standing in for the "sqlite://" scheme's
// inbox(payload BLOB) table: one row per saved message, keyed by save order.
var inboxBucket = []byte("inbox")

// BoltStorage is the "sqlite://" backend. No sqlite driver is available in this module's
// dependency set, so an embedded bbolt database plays the same role: every committed transaction
// is a single atomic write, and a row's value is read back through decode unchanged.
type BoltStorage struct {
	db *bbolt.DB
}

// NewBoltStorage opens (creating if necessary) a bbolt database at path and ensures the inbox
// bucket exists.
func NewBoltStorage(path string) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("directip/storage: opening bolt database %q: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(inboxBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("directip/storage: creating inbox bucket: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

// Save encodes msg and commits it as a single bbolt transaction, keyed by a monotonically
// increasing sequence number so that rows are ordered by save order.
func (s *BoltStorage) Save(ctx context.Context, msg directip.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := msg.ToVec()
	if err != nil {
		return fmt.Errorf("directip/storage: encoding message: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(inboxBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(itob(seq), encoded)
	})
	if err != nil {
		return fmt.Errorf("directip/storage: saving message: %w", err)
	}

	metrics.MessagesSaved.WithLabelValues("sqlite").Inc()
	return nil
}

// Close closes the underlying bbolt database.
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

// itob renders a bbolt sequence number as a big-endian key, preserving insertion order under
// bbolt's byte-lexicographic key ordering.
func itob(v uint64) []byte {
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}
