// Minimal end‑to‑end integration test for the TruthLens API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

var baseURL = getenv("API_URL", "http://localhost:8080")

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

var client = &http.Client{Timeout: 10 * time.Second}

func main() {
	checkHealth()
	checkStatus()

	requestID := predict("BREAKING!! Scientists HIDE the SECRET cure they don't want you to see — SHARE before it's DELETED!", "FAKE")
	pollContextual(requestID)

	predict("According to researchers, a new peer-reviewed study published in a leading journal found that daily exercise reduces cardiovascular risk by 20 percent.", "REAL")
	expectRejection("too short")
	checkMetrics()

	fmt.Println("✓ all endpoints passed")
}

func checkHealth() {
	var resp struct {
		Status string `json:"status"`
	}
	getJSON("/health", &resp)
	if resp.Status != "healthy" {
		log.Fatalf("health: got %q", resp.Status)
	}
}

func checkStatus() {
	var resp struct {
		ModelReady bool   `json:"model_ready"`
		Version    string `json:"version"`
	}
	getJSON("/api/status", &resp)
	if !resp.ModelReady {
		log.Fatal("status: model not ready")
	}
	log.Printf("status ok (version %s)", resp.Version)
}

func predict(text, wantLabel string) string {
	payload, _ := json.Marshal(map[string]string{"text": text})
	resp, err := client.Post(baseURL+"/api/predict", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("predict: status %d", resp.StatusCode)
	}

	var result struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
		RequestID  string  `json:"request_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("predict decode: %v", err)
	}
	if result.Label != wantLabel {
		log.Fatalf("predict: want %s, got %s (%.1f%%)", wantLabel, result.Label, result.Confidence)
	}
	log.Printf("predict ok: %s (%.1f%%)", result.Label, result.Confidence)
	return result.RequestID
}

func pollContextual(requestID string) {
	resp, err := client.Get(baseURL + "/api/gemini-result/" + requestID)
	if err != nil {
		log.Fatalf("gemini-result: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("gemini-result: status %d", resp.StatusCode)
	}

	var result struct {
		Ready bool `json:"ready"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("gemini-result decode: %v", err)
	}
	if !result.Ready {
		log.Fatal("gemini-result: not ready")
	}
	log.Printf("gemini-result ok for %s", requestID)
}

func expectRejection(text string) {
	payload, _ := json.Marshal(map[string]string{"text": text})
	resp, err := client.Post(baseURL+"/api/predict", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("predict (invalid): %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		log.Fatalf("predict (invalid): want 400, got %d", resp.StatusCode)
	}
	log.Print("validation rejection ok")
}

func checkMetrics() {
	var resp struct {
		BestModel string `json:"best_model"`
	}
	getJSON("/api/metrics", &resp)
	if resp.BestModel == "" {
		log.Fatal("metrics: empty best_model")
	}
	log.Printf("metrics ok (%s)", resp.BestModel)
}

func getJSON(path string, out interface{}) {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		log.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("GET %s decode: %v", path, err)
	}
}
