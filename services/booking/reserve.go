package booking

import (
	"context"
	"fmt"

	"lawyerup/utils"

	"github.com/go-redis/redis/v8"
)

// SlotReserver serializes booking creation per lawyer+slot. Reserve returns
// false when another in-flight request already holds the slot; Release frees
// it once the create has committed or failed.
type SlotReserver interface {
	Reserve(ctx context.Context, lawyerID, date, timeOfDay string) (bool, error)
	Release(ctx context.Context, lawyerID, date, timeOfDay string)
}

// RedisSlotReserver implements SlotReserver with a SetNX key per
// lawyer+slot. The TTL bounds how long a crashed request can hold a slot.
type RedisSlotReserver struct {
	Client *redis.Client
}

func slotKey(lawyerID, date, timeOfDay string) string {
	return utils.SlotLockPrefix + lawyerID + ":" + date + ":" + timeOfDay
}

// Reserve takes the slot key. A false return means a concurrent request for
// the same slot is already past its conflict check.
func (r *RedisSlotReserver) Reserve(ctx context.Context, lawyerID, date, timeOfDay string) (bool, error) {
	ok, err := r.Client.SetNX(ctx, slotKey(lawyerID, date, timeOfDay), 1, utils.SlotLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("slot reservation failed: %w", err)
	}
	return ok, nil
}

// Release frees the slot key. Errors are ignored; the TTL reclaims the key.
func (r *RedisSlotReserver) Release(ctx context.Context, lawyerID, date, timeOfDay string) {
	r.Client.Del(ctx, slotKey(lawyerID, date, timeOfDay))
}
