//******************************************************************************************************
//  MemoryStorage.go - Gbtc
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
	"errors"
	"sync"

	"github.com/tevino/abool/v2"

	directip "github.com/iridium-sbd/directip-go"
	"github.com/iridium-sbd/directip-go/metrics"
)

// ErrStorageClosed is returned by Save once a backend has been Closed.
var ErrStorageClosed = errors.New("directip/storage: storage is closed")

// MemoryStorage is the "volatile://" backend: an in-process slice of received messages, guarded by
// a single-writer/multi-reader lock so that concurrent Save calls block each other only briefly
// while readers (Messages) never block each other.
type MemoryStorage struct {
	mu       sync.RWMutex
	messages []directip.Message
	closed   abool.AtomicBool
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Save appends msg to the in-memory sequence.
func (s *MemoryStorage) Save(ctx context.Context, msg directip.Message) error {
	if s.closed.IsSet() {
		return ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	metrics.MessagesSaved.WithLabelValues("volatile").Inc()
	return nil
}

// Messages returns a snapshot of every message saved so far, in save order.
func (s *MemoryStorage) Messages() []directip.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]directip.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close marks the backend closed; subsequent Save calls return ErrStorageClosed.
func (s *MemoryStorage) Close() error {
	s.closed.Set()
	return nil
}
