package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_content_engine/internal/service"
)

// maxCooldownTTL предел срока жизни хеша. Отметки мест с большим периодом
// подавления теряются через этот срок без новых срабатываний.
const maxCooldownTTL = 366 * 24 * time.Hour

// saveCooldownScript записывает отметку и только продлевает срок жизни хеша:
// отметка места с длинным периодом не теряется после записи места с коротким.
var saveCooldownScript = redis.NewScript(`
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
local ttl = tonumber(ARGV[3])
if ttl > 0 and redis.call('PTTL', KEYS[1]) < ttl then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return 1
`)

// CooldownRepository хранит отметки срабатываний устройства в хеше Redis.
// Хеш живет не меньше ttl и не меньше периода подавления последней записанной отметки.
type CooldownRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCooldownRepository(redisClient *redis.Client, ttl time.Duration) *CooldownRepository {
	return &CooldownRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

var _ service.CooldownStore = (*CooldownRepository)(nil)

// Load возвращает снимок place_id -> время срабатывания в мс
func (r *CooldownRepository) Load(ctx context.Context, deviceID string) (map[string]int64, error) {
	values, err := r.redisClient.HGetAll(ctx, cooldownKey(deviceID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cooldowns from Redis: %w", err)
	}

	snapshot := make(map[string]int64, len(values))
	for placeID, raw := range values {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		snapshot[placeID] = ts
	}
	return snapshot, nil
}

// Save записывает отметку и продлевает срок жизни хеша до max(ttl, cooldown)
func (r *CooldownRepository) Save(ctx context.Context, deviceID, placeID string, firedAtMs int64, cooldown time.Duration) error {
	keys := []string{cooldownKey(deviceID)}
	err := saveCooldownScript.Run(ctx, r.redisClient, keys, placeID, firedAtMs, r.expiry(cooldown).Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("failed to save cooldown to Redis: %w", err)
	}
	return nil
}

// expiry срок жизни хеша после записи. Ноль означает хеш без срока.
func (r *CooldownRepository) expiry(cooldown time.Duration) time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	return min(max(r.ttl, cooldown), maxCooldownTTL)
}

func cooldownKey(deviceID string) string {
	return fmt.Sprintf("cooldown:%s", deviceID)
}
