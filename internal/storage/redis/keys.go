package redis

import (
	"fmt"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Key prefix for all front-end data
const keyPrefix = "teamhub"

// sessionKey returns the Redis key for a SessionRecord
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}
