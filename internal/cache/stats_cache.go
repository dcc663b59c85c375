package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	statsGenKey        = "dashboard:stats:gen"
	statsPayloadPrefix = "dashboard:stats:v"
)

// StatsCache guarda o snapshot JSON do dashboard no redis, chaveado por
// uma geração. Toda escrita de entidade incrementa a geração; o snapshot
// é gravado sob a geração observada ANTES de computá-lo, então um commit
// no meio da computação muda a chave corrente e o snapshot velho nunca
// mais é lido — a resposta não fica atrás do último commit. Um
// *StatsCache nil é um cache desligado: todos os métodos viram no-op.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(addr string, ttl time.Duration) *StatsCache {
	if addr == "" {
		return nil
	}

	if ttl <= 0 {
		ttl = time.Minute
	}

	return &StatsCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Get devolve o snapshot da geração corrente e a própria geração, para o
// chamador gravar o recomputado sob a mesma chave via Set.
func (c *StatsCache) Get(ctx context.Context) ([]byte, int64, bool) {
	if c == nil {
		return nil, 0, false
	}

	gen, err := c.rdb.Get(ctx, statsGenKey).Int64()
	if err != nil && err != redis.Nil {
		log.Println("stats cache gen:", err)
		return nil, 0, false
	}

	payload, err := c.rdb.Get(ctx, payloadKey(gen)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("stats cache get:", err)
		}
		return nil, gen, false
	}

	return payload, gen, true
}

// Set grava o snapshot sob a geração passada. Se uma escrita incrementou
// a geração nesse meio-tempo, a chave gravada já não é a corrente e o
// payload obsoleto apenas expira pelo TTL.
func (c *StatsCache) Set(ctx context.Context, gen int64, payload []byte) {
	if c == nil {
		return
	}

	if err := c.rdb.Set(ctx, payloadKey(gen), payload, c.ttl).Err(); err != nil {
		log.Println("stats cache set:", err)
	}
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, statsGenKey).Err(); err != nil {
		log.Println("stats cache invalidate:", err)
	}
}

func payloadKey(gen int64) string {
	return fmt.Sprintf("%s%d", statsPayloadPrefix, gen)
}
