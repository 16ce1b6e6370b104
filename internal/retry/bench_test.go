package retry

import (
	"context"
	"fmt"
	"testing"
)

// BenchmarkBudget_ImmediateSuccess measures overhead when the first
// attempt succeeds (the common case).
func BenchmarkBudget_ImmediateSuccess(b *testing.B) {
	bu := Bounded(3)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bu.Do(ctx, func(_ int) error { return nil }) //nolint:errcheck
	}
}

// BenchmarkBudget_Exhausted measures a full bounded run with no delay.
func BenchmarkBudget_Exhausted(b *testing.B) {
	bu := Bounded(3)
	ctx := context.Background()
	fail := fmt.Errorf("nope")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bu.Do(ctx, func(_ int) error { return fail }) //nolint:errcheck
	}
}
