package badger

import (
	"encoding/binary"
	"errors"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/storage"
)

// Key prefixes for different data types
const (
	snapshotPrefix = "feedsnap:"
	vectorPrefix   = "faqvec:"
)

var errClosed = storage.ErrStorageClosed

// makeSnapshotKey generates a key for a feed snapshot.
// Format: prefix + feed name
func makeSnapshotKey(feed string) []byte {
	return []byte(snapshotPrefix + feed)
}

// makeVectorKey generates a key for an embedding vector.
// Format: prefix + 8-byte big-endian ID
func makeVectorKey(id core.ID) []byte {
	buf := make([]byte, len(vectorPrefix)+8)
	offset := copy(buf, vectorPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

func isNotFound(err error) bool {
	return errors.Is(err, errKeyNotFound)
}
