package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":      "",
			"database": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"smtp": map[string]any{
			"host": "",
		},
		"phone": map[string]any{
			"defaultCountryCode": "91",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SMTP_HOST", want: "smtp.host"},
		{envKey: "PHONE_DEFAULTCOUNTRYCODE", want: "phone.defaultCountryCode"},
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
