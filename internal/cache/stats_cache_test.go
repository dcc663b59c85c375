package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatsCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewStatsCache(mr.Addr(), time.Minute)
	ctx := context.Background()

	_, gen, ok := c.Get(ctx)
	assert.False(t, ok)

	payload := []byte(`{"total_customers":1}`)
	c.Set(ctx, gen, payload)

	got, _, ok := c.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestStatsCacheInvalidate(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewStatsCache(mr.Addr(), time.Minute)
	ctx := context.Background()

	_, gen, _ := c.Get(ctx)
	c.Set(ctx, gen, []byte(`{}`))
	c.Invalidate(ctx)

	_, _, ok := c.Get(ctx)
	assert.False(t, ok)
}

// Commit no meio da computação: o snapshot gravado sob a geração antiga
// não pode ser servido depois que uma escrita incrementou a geração.
func TestStatsCacheStaleSnapshotIsNeverServed(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewStatsCache(mr.Addr(), time.Minute)
	ctx := context.Background()

	// Leitor observa a geração e sai para computar
	_, gen, ok := c.Get(ctx)
	assert.False(t, ok)

	// Escrita commita enquanto o leitor computa
	c.Invalidate(ctx)

	// Leitor grava o snapshot já obsoleto sob a geração antiga
	c.Set(ctx, gen, []byte(`{"total_customers":0}`))

	_, newGen, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.NotEqual(t, gen, newGen)

	// A geração nova aceita snapshot normalmente
	c.Set(ctx, newGen, []byte(`{"total_customers":1}`))
	got, _, ok := c.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total_customers":1}`), got)
}

func TestStatsCacheExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewStatsCache(mr.Addr(), time.Second)
	ctx := context.Background()

	_, gen, _ := c.Get(ctx)
	c.Set(ctx, gen, []byte(`{}`))
	mr.FastForward(2 * time.Second)

	_, _, ok := c.Get(ctx)
	assert.False(t, ok)
}

// Cache desligado (addr vazio) é um *StatsCache nil: tudo vira no-op.
func TestDisabledCacheIsNil(t *testing.T) {
	c := NewStatsCache("", time.Minute)
	assert.Nil(t, c)

	ctx := context.Background()
	_, _, ok := c.Get(ctx)
	assert.False(t, ok)
	c.Set(ctx, 0, []byte(`{}`))
	c.Invalidate(ctx)
}
