package domain

import "time"

// Receipt records a completed download next to the saved artifact.
type Receipt struct {
	PackageName string `json:"package"`
	VersionCode int64  `json:"version_code"`
	// Digest is the hex xxhash64 of the artifact, empty when it could not be computed.
	Digest    string    `json:"xxhash64,omitempty"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}
