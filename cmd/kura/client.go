package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hyperjump/kura/internal/cli"
	"github.com/hyperjump/kura/internal/models"
)

var httpClient = &http.Client{Timeout: 5 * time.Minute}

func findViaHTTP(serverURL string, req *models.FindRequest) (*models.FindResponse, error) {
	var out models.FindResponse
	if err := doJSON(http.MethodPost, serverURL+"/api/v1/find", req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func statusViaHTTP(serverURL string) (*cli.Status, error) {
	var out cli.Status
	if err := doJSON(http.MethodGet, serverURL+"/api/v1/status", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func ingestViaHTTP(serverURL, dir string) (int, error) {
	var out models.IngestResponse
	if err := doJSON(http.MethodPost, serverURL+"/api/v1/ingest", models.IngestRequest{Path: dir}, http.StatusOK, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func watchAddViaHTTP(serverURL, path string) error {
	body := map[string]interface{}{"path": path, "sync": true}
	return doJSON(http.MethodPost, serverURL+"/api/v1/watch/directories", body, http.StatusCreated, nil)
}

func watchRemoveViaHTTP(serverURL, path string) error {
	target := serverURL + "/api/v1/watch/directories?path=" + url.QueryEscape(path)
	return doJSON(http.MethodDelete, target, nil, http.StatusOK, nil)
}

func watchListViaHTTP(serverURL string) ([]string, error) {
	var out struct {
		Directories []string `json:"directories"`
	}
	if err := doJSON(http.MethodGet, serverURL+"/api/v1/watch/directories", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Directories, nil
}

// doJSON sends body as JSON and decodes a response with the wanted status into out.
func doJSON(method, target string, body interface{}, want int, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, target, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverError(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func serverError(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}
