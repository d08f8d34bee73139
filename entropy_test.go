package entropy

import "testing"

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero value",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "explicit defaults",
			config:  Config{TargetBits: 256, MaxPoolBytes: 4096},
			wantErr: false,
		},
		{
			name:    "custom target",
			config:  Config{TargetBits: 384},
			wantErr: false,
		},
		{
			name:    "negative target",
			config:  Config{TargetBits: -1},
			wantErr: true,
		},
		{
			name:    "negative pool size",
			config:  Config{MaxPoolBytes: -1},
			wantErr: true,
		},
		{
			name:    "negative entropy cap",
			config:  Config{MaxEntropyBits: -8},
			wantErr: true,
		},
		{
			name:    "cap below target",
			config:  Config{TargetBits: 256, MaxEntropyBits: 128},
			wantErr: true,
		},
		{
			name:    "pool too small for target",
			config:  Config{TargetBits: 256, MaxPoolBytes: 16},
			wantErr: true,
		},
		{
			name:    "pool exactly target sized",
			config:  Config{TargetBits: 256, MaxPoolBytes: 32},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := (&Config{}).withDefaults()
	if cfg.TargetBits != DefaultTargetBits {
		t.Errorf("TargetBits = %d, want %d", cfg.TargetBits, DefaultTargetBits)
	}
	if cfg.MaxPoolBytes != DefaultMaxPoolBytes {
		t.Errorf("MaxPoolBytes = %d, want %d", cfg.MaxPoolBytes, DefaultMaxPoolBytes)
	}
	if cfg.MaxEntropyBits != 8*DefaultMaxPoolBytes {
		t.Errorf("MaxEntropyBits = %d, want %d", cfg.MaxEntropyBits, 8*DefaultMaxPoolBytes)
	}

	custom := (&Config{TargetBits: 128, MaxPoolBytes: 64}).withDefaults()
	if custom.TargetBits != 128 || custom.MaxPoolBytes != 64 {
		t.Error("withDefaults() overwrote explicit fields")
	}
	if custom.MaxEntropyBits != 512 {
		t.Errorf("MaxEntropyBits = %d, want 512", custom.MaxEntropyBits)
	}
}

func TestNewPoolRejectsInvalidConfig(t *testing.T) {
	if _, err := NewPool(Config{TargetBits: -5}); err == nil {
		t.Error("NewPool() accepted a negative target")
	}
}
