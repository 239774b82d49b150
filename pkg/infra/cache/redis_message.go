package cache

import "encoding/json"

// RedisMessage is the envelope written to the review channel.
type RedisMessage struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}
