package redisx

import "time"

const (
	// Blob koleksi: {prefix}:{collection} -> JSON
	KeyBlob = "%s:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var TTLDedup = 48 * time.Hour
