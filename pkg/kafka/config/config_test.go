package kafka_config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, " broker-1:9092 , broker-2:9092")
	t.Setenv(EnvKafkaProducerCompression, "zstd")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Brokers) != 2 || cfg.Brokers[0] != "broker-1:9092" || cfg.Brokers[1] != "broker-2:9092" {
		t.Errorf("Brokers = %v", cfg.Brokers)
	}
	if cfg.ProducerCompression != "zstd" {
		t.Errorf("ProducerCompression = %s, want zstd", cfg.ProducerCompression)
	}
	if cfg.ProducerMaxAttempts != DefaultProducerMaxAttempts {
		t.Errorf("ProducerMaxAttempts = %d, want default", cfg.ProducerMaxAttempts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantParts []string
	}{
		{
			name: "valid",
			cfg: Config{
				Brokers:              []string{"localhost:9092"},
				ProducerMaxAttempts:  1,
				ProducerBatchTimeout: 1,
				ProducerRequireAcks:  1,
				ProducerCompression:  "none",
			},
		},
		{
			name: "everything wrong",
			cfg: Config{
				Brokers:             []string{""},
				ProducerRequireAcks: 2,
				ProducerCompression: "brotli",
			},
			wantParts: []string{
				"Broker 0 cannot be empty",
				"ProducerMaxAttempts must be positive",
				"ProducerBatchTimeout must be positive",
				"ProducerCompression must be one of",
				"ProducerRequireAcks must be -1, 0, or 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantParts) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("error missing %q:\n%s", part, err.Error())
				}
			}
		})
	}
}
