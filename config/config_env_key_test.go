package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "calshare",
		},
		"shareLinks": map[string]any{
			"indexKey":      "",
			"publicBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SHARELINKS_INDEXKEY", want: "shareLinks.indexKey"},
		{envKey: "SHARELINKS_PUBLICBASEURL", want: "shareLinks.publicBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyShareLinkDefaults(t *testing.T) {
	cfg := &Config{}
	applyShareLinkDefaults(cfg)

	if cfg.ShareLinks.CreateRetries != 3 {
		t.Fatalf("CreateRetries = %d, want 3", cfg.ShareLinks.CreateRetries)
	}
	if cfg.ShareLinks.Argon2.MemoryKiB != 64*1024 {
		t.Fatalf("Argon2.MemoryKiB = %d, want %d", cfg.ShareLinks.Argon2.MemoryKiB, 64*1024)
	}
	if cfg.ShareLinks.IndexKey != "" {
		t.Fatalf("IndexKey should have no default, got %q", cfg.ShareLinks.IndexKey)
	}
}
