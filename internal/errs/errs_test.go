package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreWrappable(t *testing.T) {
	wrapped := fmt.Errorf("loading config: %w", ErrConfigInvalid)
	if !errors.Is(wrapped, ErrConfigInvalid) {
		t.Error("expected errors.Is to see through the %w wrap to ErrConfigInvalid")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrProgramNotFound,
		ErrDatasetBucketConflict,
		ErrConfigInvalid,
		ErrPredictorUnavailable,
		ErrStoreClosed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d (%v) should not match sentinel %d (%v)", i, a, j, b)
			}
		}
	}
}
