package framer_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/framer"
	framertest "github.com/zoobzio/framer/testing"
)

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  framer.Option
		want error
	}{
		{"nil codec", framer.WithCodec(nil), framer.ErrMissingCodec},
		{"zero capacity", framer.WithCapacity(0), framer.ErrInvalidCapacity},
		{"trailer-only capacity", framer.WithCapacity(framer.TrailerSize), framer.ErrInvalidCapacity},
		{"unknown checksum", framer.WithChecksum("md5"), framer.ErrInvalidChecksum},
		{"unknown target", framer.WithTarget("kernel"), framer.ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := framer.New[framertest.Point](tt.opt)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			var ce *framer.ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("New() error should be *ConfigError, got %T", err)
			}
		})
	}
}

func TestNew_SmallestCapacity(t *testing.T) {
	if _, err := framer.New[int](framer.WithCapacity(framer.TrailerSize + 1)); err != nil {
		t.Errorf("New() with capacity %d error: %v", framer.TrailerSize+1, err)
	}
}
