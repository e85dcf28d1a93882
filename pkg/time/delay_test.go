package time_test

import (
	"context"
	"testing"
	"time"

	pkgTime "github.com/plgd-dev/notification2/pkg/time"
	"github.com/stretchr/testify/require"
)

func TestSleep(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	tests := []struct {
		name    string
		ctx     context.Context
		d       time.Duration
		wantErr error
	}{
		{name: "elapsed", ctx: context.Background(), d: 10 * time.Millisecond},
		{name: "zero", ctx: context.Background()},
		{name: "canceled", ctx: canceled, d: time.Hour, wantErr: context.Canceled},
		{name: "zero canceled", ctx: canceled, wantErr: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			err := pkgTime.Sleep(tt.ctx, tt.d)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Less(t, time.Since(start), time.Minute)
				return
			}
			require.NoError(t, err)
			require.GreaterOrEqual(t, time.Since(start), tt.d)
		})
	}
}
