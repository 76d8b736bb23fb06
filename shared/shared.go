package shared

import (
	"context"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and its parts into a colon-separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix. Failures
// are logged only; invalidation is best-effort and must never fail the
// mutation that triggered it.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
