package main

import (
	"net/http"
	"os"
	"time"
)

func main() {
	target := "http://127.0.0.1:8080/api/ping"
	if v := os.Getenv("ROGUE_HEALTHCHECK_URL"); v != "" {
		target = v
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(target)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
