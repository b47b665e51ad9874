// Package cache stores finished optimization results keyed by a content hash
// of the inputs. Recomputing is deterministic, so writes are idempotent and
// concurrent callers need no coordination beyond the store itself.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Cache is the result store the pipeline consults before running.
type Cache interface {
	// Get returns the cached result for key, or ErrNotFound when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (*types.OptimizationResult, error)
	// Set stores the result under key for the store's TTL.
	Set(ctx context.Context, key string, result *types.OptimizationResult) error
}

// Key derives the cache key from the optimization inputs: a hex SHA-256 over
// the resume's JSON form and the job-description text. Identical inputs hash
// identically, so a hit is always a valid answer.
func Key(resume types.ResumeDocument, jdText string) string {
	h := sha256.New()
	if data, err := json.Marshal(resume); err == nil {
		h.Write(data)
	}
	h.Write([]byte{0})
	h.Write([]byte(jdText))
	return hex.EncodeToString(h.Sum(nil))
}
