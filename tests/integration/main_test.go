//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL string

func TestMain(m *testing.M) {
	baseURL = envOrDefault("TRIVIA_API_BASE_URL", "http://localhost:5000")

	// Wait for the API to come up before running the suite.
	deadline := time.Now().Add(15 * time.Second)
	for {
		resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			fmt.Fprintf(os.Stderr, "API at %s not healthy, aborting integration tests\n", baseURL)
			os.Exit(1)
		}
		time.Sleep(500 * time.Millisecond)
	}

	os.Exit(m.Run())
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
