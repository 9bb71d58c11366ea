package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Volatile alert fields excluded from fingerprinting. Monitoring systems
// re-fire the same alert with fresh timestamps; those must not defeat dedup.
var volatileAlertFields = map[string]struct{}{
	"timestamp":    {},
	"timestamp_us": {},
}

// CanonicalizeAlertData renders the alert payload as deterministic JSON:
// top-level volatile fields removed, keys sorted. encoding/json already
// emits map keys in sorted order, so one marshal is enough.
func CanonicalizeAlertData(data map[string]any) (string, error) {
	stable := make(map[string]any, len(data))
	for k, v := range data {
		if _, volatile := volatileAlertFields[k]; volatile {
			continue
		}
		stable[k] = v
	}

	encoded, err := json.Marshal(stable)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize alert data: %w", err)
	}
	return string(encoded), nil
}

// ComputeFingerprint derives the dedup key for an alert:
// sha256(alert_type + "\n" + canonical payload), hex-encoded.
func ComputeFingerprint(alertType string, data map[string]any) (string, error) {
	canonical, err := CanonicalizeAlertData(data)
	if err != nil {
		return "", err
	}

	h := sha256.Sum256([]byte(alertType + "\n" + canonical))
	return hex.EncodeToString(h[:]), nil
}
