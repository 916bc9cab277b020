package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// QueryCache is the read-through cache in front of the availability
// queries. A nil or unreachable cache degrades to direct reads.
type QueryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	availableCacheKey     = "profils:disponibles"
	availableCachePattern = "profils:*"
	availableCacheTTL     = 60 * time.Second
)

type availabilityFilterKeyInput struct {
	Kind        string   `json:"kind"`
	Competences []string `json:"competences"`
	Rating      int      `json:"rating"`
}

func availabilityFilterCacheKey(kind string, labels []string, rating int) string {
	normalized := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		normalized = append(normalized, l)
	}
	sort.Strings(normalized)

	b, _ := json.Marshal(availabilityFilterKeyInput{Kind: kind, Competences: normalized, Rating: rating})
	sum := sha256.Sum256(b)
	return "profils:filtre:" + hex.EncodeToString(sum[:])
}
