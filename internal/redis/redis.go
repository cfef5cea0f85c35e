package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func Close() {
	if Rdb != nil {
		if err := Rdb.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
}

// hijriSyncRecord is the telemetry blob written after a completed
// Hijri synchronization run.
type hijriSyncRecord struct {
	Year       int       `json:"year"`
	Months     int       `json:"months"`
	FinishedAt time.Time `json:"finished_at"`
}

// RecordHijriSync stores a best-effort record of a completed sync run
// under "sync:hijri:<year>". Failures are logged and ignored; nothing
// on the request path ever reads these keys.
func RecordHijriSync(ctx context.Context, year, months int) {
	if Rdb == nil {
		return
	}

	payload, err := json.Marshal(hijriSyncRecord{
		Year:       year,
		Months:     months,
		FinishedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to marshal hijri sync record")
		return
	}

	key := fmt.Sprintf("sync:hijri:%d", year)
	if err := Rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to record hijri sync run")
	}
}
