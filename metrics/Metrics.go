//******************************************************************************************************
//  Metrics.go - Gbtc
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

// Package metrics exposes Prometheus instrumentation for envelope codec and storage operations,
// wired the same way the teacher instruments metadata refreshes in sttp/Metrics.go.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// EnvelopesEncoded counts every successful MO/MT envelope encode.
	EnvelopesEncoded prometheus.Counter
	// EnvelopesDecoded counts every successful MO/MT envelope decode.
	EnvelopesDecoded prometheus.Counter
	// DecodeErrors counts decode failures, labeled by error kind.
	DecodeErrors *prometheus.CounterVec
	// EnvelopeSizeBytes histograms the total encoded size of envelopes passing through the codec.
	EnvelopeSizeBytes prometheus.Histogram
	// MessagesSaved counts successful Storage.Save calls, labeled by backend.
	MessagesSaved *prometheus.CounterVec
)

func init() {
	EnvelopesEncoded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directip",
		Subsystem: "codec",
		Name:      "envelopes_encoded_total",
		Help:      "The number of MO/MT envelopes successfully encoded since program start",
	})

	EnvelopesDecoded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directip",
		Subsystem: "codec",
		Name:      "envelopes_decoded_total",
		Help:      "The number of MO/MT envelopes successfully decoded since program start",
	})

	DecodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "directip",
		Subsystem: "codec",
		Name:      "decode_errors_total",
		Help:      "The number of envelope decode failures, labeled by error kind",
	}, []string{"kind"})

	EnvelopeSizeBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "directip",
		Subsystem: "codec",
		Name:      "envelope_size_bytes",
		Help:      "The sizes of observed Direct-IP envelopes in bytes",
		Buckets:   prometheus.ExponentialBuckets(32, 2.0, 8), // 32B .. 4096B
	})

	MessagesSaved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "directip",
		Subsystem: "storage",
		Name:      "messages_saved_total",
		Help:      "The number of messages persisted, labeled by storage backend",
	}, []string{"backend"})

	prometheus.MustRegister(EnvelopesEncoded, EnvelopesDecoded, DecodeErrors, EnvelopeSizeBytes, MessagesSaved)
}
