package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveTestConfig() *Config {
	return &Config{sourceLang: "auto", provider: "google"}
}

func TestIndexPage(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body bytes.Buffer
	body.ReadFrom(resp.Body)
	if !strings.Contains(body.String(), "Subtitle Translator") {
		t.Error("index page missing title")
	}
}

func TestLanguagesEndpoint(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/languages")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var langs []Language
	if err := json.NewDecoder(resp.Body).Decode(&langs); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, l := range langs {
		if l.Code == "ar" {
			found = true
		}
	}
	if !found {
		t.Error("language table missing ar")
	}
}

func postSubtitle(t *testing.T, url string, fields map[string]string, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	mw.Close()

	resp, err := http.Post(url+"/api/translate", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestTranslateEndpointRejectsMissingTarget(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp := postSubtitle(t, srv.URL, nil, "subs.ass", sampleASS)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTranslateEndpointRejectsBadExtension(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp := postSubtitle(t, srv.URL, map[string]string{"target": "ar"}, "subs.vtt", "WEBVTT\n")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Error, "unsupported") {
		t.Errorf("error = %q", body.Error)
	}
}

func TestTranslateEndpointRejectsMissingFile(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp := postSubtitle(t, srv.URL, map[string]string{"target": "ar"}, "", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTranslateEndpointRejectsOpenAIWithoutKey(t *testing.T) {
	srv := httptest.NewServer(newRouter(serveTestConfig()))
	defer srv.Close()

	resp := postSubtitle(t, srv.URL, map[string]string{"target": "ar", "provider": "openai"}, "subs.ass", sampleASS)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
