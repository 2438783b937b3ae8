// ABOUTME: Tests for domain-level sentinel errors
// ABOUTME: Ensures error values work correctly with errors.Is
package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Defined(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNoTrainingData", ErrNoTrainingData},
		{"ErrModelDecode", ErrModelDecode},
		{"ErrModelNotFound", ErrModelNotFound},
		{"ErrNoArticleContent", ErrNoArticleContent},
		{"ErrEmptyDocument", ErrEmptyDocument},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Errorf("%s should not be nil", s.name)
			}
			if s.err.Error() == "" {
				t.Errorf("%s should have non-empty message", s.name)
			}
		})
	}
}

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "direct match ErrNoTrainingData",
			err:    ErrNoTrainingData,
			target: ErrNoTrainingData,
			want:   true,
		},
		{
			name:   "wrapped ErrModelDecode",
			err:    fmt.Errorf("classify: %w", ErrModelDecode),
			target: ErrModelDecode,
			want:   true,
		},
		{
			name:   "different sentinels do not match",
			err:    ErrNoTrainingData,
			target: ErrModelDecode,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}
