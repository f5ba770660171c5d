package styles_test

import (
	"os"
	"testing"
)

func mustEmbedded(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("styles.yaml")
	if err != nil {
		t.Fatalf("Failed to read styles.yaml: %v", err)
	}
	return data
}
