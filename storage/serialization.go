// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/frontdesk/core"
)

// snapshotMUS serializes core.FeedSnapshot in MUS format:
// feed, url, payload (length-prefixed strings), fetch time in Unix microseconds.
var snapshotMUS = snapshotSerializer{}

type snapshotSerializer struct{}

func (snapshotSerializer) Marshal(s core.FeedSnapshot, bs []byte) (n int) {
	n = ord.String.Marshal(s.Feed, bs)
	n += ord.String.Marshal(s.URL, bs[n:])
	n += ord.String.Marshal(string(s.Payload), bs[n:])
	n += varint.Int64.Marshal(s.FetchedAt.UnixMicro(), bs[n:])
	return
}

func (snapshotSerializer) Unmarshal(bs []byte) (s core.FeedSnapshot, n int, err error) {
	var n1 int
	s.Feed, n1, err = ord.String.Unmarshal(bs)
	n += n1
	if err != nil {
		return
	}
	s.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var payload string
	payload, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Payload = []byte(payload)
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.FetchedAt = time.UnixMicro(micros).UTC()
	return
}

func (snapshotSerializer) Size(s core.FeedSnapshot) (size int) {
	size = ord.String.Size(s.Feed)
	size += ord.String.Size(s.URL)
	size += ord.String.Size(string(s.Payload))
	return size + varint.Int64.Size(s.FetchedAt.UnixMicro())
}

// MarshalSnapshot serializes a FeedSnapshot to bytes.
func MarshalSnapshot(snapshot *core.FeedSnapshot) []byte {
	buf := make([]byte, snapshotMUS.Size(*snapshot))
	snapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalSnapshot deserializes a FeedSnapshot from bytes.
func UnmarshalSnapshot(data []byte) (*core.FeedSnapshot, error) {
	snapshot, _, err := snapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &snapshot, nil
}

// MarshalVector serializes a vector as little-endian float32 values.
func MarshalVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// UnmarshalVector deserializes a vector written by MarshalVector.
func UnmarshalVector(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of floats", ErrTruncatedData, len(data))
	}
	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return vec, nil
}
