// Package mock provides test doubles for the integration suite.
package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles a miniredis instance with a connected client.
type Redis struct {
	server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts an in-process Redis server and connects a client to it.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	return &Redis{server: server, Client: client}
}

// Close shuts the client and the in-process server down.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.server.Close()
}
