// README: Recent destination store backed by a capped Redis list. Routing
// to a place pushes it to the front; duplicates are collapsed so the list
// reads as "most recently used, once each".
package places

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cardash/internal/types"
)

const (
	recentsKey = "places:recents"
	recentsCap = 20
)

type RecentStore struct {
	redis *redis.Client
}

func NewRecentStore(redis *redis.Client) *RecentStore {
	return &RecentStore{redis: redis}
}

// Record satisfies the navigation session's history sink.
func (s *RecentStore) Record(ctx context.Context, name string, coord types.Coordinate) error {
	entry := Recent{Name: name, Coord: coord, RoutedAt: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// Drop any older entry for the same place before pushing the new one.
	existing, err := s.redis.LRange(ctx, recentsKey, 0, recentsCap-1).Result()
	if err == nil {
		for _, raw := range existing {
			var old Recent
			if json.Unmarshal([]byte(raw), &old) == nil && old.Name == name {
				s.redis.LRem(ctx, recentsKey, 0, raw)
			}
		}
	}

	pipe := s.redis.TxPipeline()
	pipe.LPush(ctx, recentsKey, data)
	pipe.LTrim(ctx, recentsKey, 0, recentsCap-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RecentStore) List(ctx context.Context) ([]Recent, error) {
	raw, err := s.redis.LRange(ctx, recentsKey, 0, recentsCap-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Recent, 0, len(raw))
	for _, item := range raw {
		var r Recent
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
