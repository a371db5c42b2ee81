package redis

import (
	"context"
	"time"
)

// NopCache never hits. It is used when no Redis URL is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (NopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (NopCache) Delete(context.Context, ...string) error {
	return nil
}
