package service

import "time"

const blobCleanupTimeout = 10 * time.Second

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
