package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	type doc struct {
		D Duration `yaml:"d"`
	}

	tests := []struct {
		name    string
		yaml    string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", yaml: "d: 30s", want: 30 * time.Second},
		{name: "minutes", yaml: "d: 5m", want: 5 * time.Minute},
		{name: "compound", yaml: "d: 1h30m", want: 90 * time.Minute},
		{name: "milliseconds", yaml: "d: 250ms", want: 250 * time.Millisecond},
		{name: "integer nanoseconds", yaml: "d: 1000000000", want: 1 * time.Second},
		{name: "garbage", yaml: "d: soon", wantErr: true},
		{name: "bare number with unit typo", yaml: "d: 5 minutes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got doc
			err := yaml.Unmarshal([]byte(tt.yaml), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.D.Duration())
		})
	}
}

func TestDurationMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		D Duration `yaml:"d"`
	}{D: Duration(90 * time.Second)})
	require.NoError(t, err)
	assert.Equal(t, "d: 1m30s\n", string(out))
}

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 4, cfg.MaxConcurrentSessions)
	assert.Equal(t, 1*time.Second, cfg.PollInterval.Duration())
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter.Duration())
	assert.Equal(t, 10*time.Minute, cfg.SessionTimeout.Duration())
	assert.Equal(t, 2*time.Minute, cfg.GracefulShutdownTimeout.Duration())
	assert.Equal(t, 1*time.Minute, cfg.OrphanDetectionInterval.Duration())
	assert.Equal(t, 15*time.Minute, cfg.OrphanThreshold.Duration())
}

func TestDefaultRetentionConfig(t *testing.T) {
	cfg := DefaultRetentionConfig()

	assert.Equal(t, 30, cfg.AuditRetentionDays)
	assert.Equal(t, 90, cfg.AuditYoloRetentionDays)
	assert.Equal(t, 30, cfg.SessionRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.CleanupInterval.Duration())
}
