package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load decodes the JSON document stored under key into a T.
//
// A missing key or a stored JSON null yields fallback with a nil error.
// A read or decode failure also yields fallback, together with the error so
// the caller can log it; callers are expected to carry on with the fallback.
func Load[T any](ctx context.Context, r Repository, key string, fallback T) (T, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if raw == nil || string(raw) == "null" {
		return fallback, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

// Save encodes v as JSON and stores it under key, replacing any previous
// document.
func Save(ctx context.Context, r Repository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.Set(ctx, key, b)
}
