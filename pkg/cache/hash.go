package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Charts are hashed with it, and the
// result keys every artifact rendered from them.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// artifactKey builds "artifact:<format>:<digest>". The digest covers the chart
// hash and every option in opts; the format is kept readable so a shared
// backend can be inspected or purged per output format.
func artifactKey(chartHash string, opts ArtifactKeyOpts) string {
	h := sha256.New()
	h.Write([]byte(chartHash))
	h.Write([]byte{0})
	// ArtifactKeyOpts holds only strings and numbers, so encoding cannot fail.
	_ = json.NewEncoder(h).Encode(opts)

	format := opts.Format
	if format == "" {
		format = "any"
	}
	return "artifact:" + format + ":" + hex.EncodeToString(h.Sum(nil))
}
