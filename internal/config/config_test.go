// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
)

// clearEnv unsets every variable read by Config for the rest of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"EXACTSUM_ORACLE_PREC", "EXACTSUM_PERMUTATIONS", "EXACTSUM_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OraclePrec != 4096 || cfg.LogLevel != "info" {
		t.Errorf("Load() = %+v, want OraclePrec 4096 and LogLevel info", cfg)
	}
	if cfg.Permutations != nil {
		t.Errorf("Permutations = %d, want unset", *cfg.Permutations)
	}
	for _, def := range []int{0, 1, 7} {
		if got := cfg.PermutationsOr(def); got != def {
			t.Errorf("PermutationsOr(%d) = %d, want %d", def, got, def)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXACTSUM_ORACLE_PREC", "8192")
	t.Setenv("EXACTSUM_PERMUTATIONS", "25")
	t.Setenv("EXACTSUM_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OraclePrec != 8192 || cfg.LogLevel != "debug" {
		t.Errorf("Load() = %+v, want OraclePrec 8192 and LogLevel debug", cfg)
	}
	if got := cfg.PermutationsOr(1); got != 25 {
		t.Errorf("PermutationsOr(1) = %d, want 25", got)
	}
	lvl, err := cfg.Level()
	if err != nil || lvl != zapcore.DebugLevel {
		t.Errorf("Level() = %v, %v, want debug", lvl, err)
	}
}

func TestLoadZeroPermutations(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXACTSUM_PERMUTATIONS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.PermutationsOr(1); got != 0 {
		t.Errorf("PermutationsOr(1) = %d, want 0 from the environment", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
		invalid          bool
	}{
		{"unparsable precision", "EXACTSUM_ORACLE_PREC", "lots", false},
		{"low precision", "EXACTSUM_ORACLE_PREC", "512", true},
		{"negative permutations", "EXACTSUM_PERMUTATIONS", "-3", true},
		{"unknown level", "EXACTSUM_LOG_LEVEL", "chatty", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}
