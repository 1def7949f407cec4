package embedding

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := NewCache(2)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Set("a", []float32{1})
	c.Set("b", []float32{2})
	if v, ok := c.Get("a"); !ok || v[0] != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}

	// "a" was just touched, so inserting "c" evicts "b".
	c.Set("c", []float32{3})
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

type countingEmbedder struct {
	inner Embedder
	calls int
	err   error
}

func (e *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.inner.Embed(ctx, text)
}

func (e *countingEmbedder) Dimensions() int { return e.inner.Dimensions() }

func TestCachedEmbedder(t *testing.T) {
	counting := &countingEmbedder{inner: NewMockEmbedder(8)}
	cached := NewCachedEmbedder(counting, 16)
	ctx := context.Background()

	first, err := cached.Embed(ctx, "food bank")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := cached.Embed(ctx, "food bank")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if counting.calls != 1 {
		t.Errorf("inner embedder called %d times, want 1", counting.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached embedding differs from original")
	}
	if cached.Dimensions() != 8 {
		t.Errorf("Dimensions() = %d, want 8", cached.Dimensions())
	}
}

func TestCachedEmbedder_ErrorsNotCached(t *testing.T) {
	counting := &countingEmbedder{inner: NewMockEmbedder(8), err: errors.New("api down")}
	cached := NewCachedEmbedder(counting, 16)
	ctx := context.Background()

	if _, err := cached.Embed(ctx, "query"); err == nil {
		t.Fatal("expected error")
	}
	counting.err = nil
	if _, err := cached.Embed(ctx, "query"); err != nil {
		t.Fatalf("expected recovery after provider error cleared: %v", err)
	}
	if counting.calls != 2 {
		t.Errorf("inner embedder called %d times, want 2 (errors must not be cached)", counting.calls)
	}
}

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(16)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "shelter tonight")
	b, _ := e.Embed(ctx, "shelter tonight")
	other, _ := e.Embed(ctx, "completely different")

	if !reflect.DeepEqual(a, b) {
		t.Error("same text must produce the same embedding")
	}
	if reflect.DeepEqual(a, other) {
		t.Error("different text should produce a different embedding")
	}

	var norm float64
	for _, v := range a {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-5 {
		t.Errorf("embedding norm = %v, want 1", math.Sqrt(norm))
	}
}
