package revoke

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"notesapi/internal/model"
	"notesapi/internal/repo"
)

// Store is the server-side token denylist. The table is the source of
// truth; an expirable LRU caches lookups so hot-path authentication
// does not pay a query per request.
type Store struct {
	tokens *repo.RevokedTokenRepo
	cache  *expirable.LRU[string, bool]
}

func NewStore(tokens *repo.RevokedTokenRepo, cacheSize int, cacheTTL time.Duration) *Store {
	var cache *expirable.LRU[string, bool]
	if cacheSize > 0 && cacheTTL > 0 {
		cache = expirable.NewLRU[string, bool](cacheSize, nil, cacheTTL)
	}
	return &Store{tokens: tokens, cache: cache}
}

func (s *Store) Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	err := s.tokens.Create(ctx, &model.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt.Unix(),
		Ctime:     time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Add(jti, true)
	}
	return nil
}

// IsRevoked fails open on storage errors: a broken denylist must not
// lock every valid token out of the API.
func (s *Store) IsRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	if s.cache != nil {
		if revoked, ok := s.cache.Get(jti); ok {
			return revoked
		}
	}
	revoked, err := s.tokens.Exists(ctx, jti)
	if err != nil {
		logutil.GetLogger(ctx).Warn("revocation lookup failed", zap.Error(err))
		return false
	}
	if s.cache != nil {
		s.cache.Add(jti, revoked)
	}
	return revoked
}
