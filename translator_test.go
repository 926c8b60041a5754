package main

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTranslatorDefaultsToGoogle(t *testing.T) {
	tr, err := newTranslator(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Name() != "google" {
		t.Errorf("default provider = %q", tr.Name())
	}
}

func TestNewTranslatorOpenAIRequiresKey(t *testing.T) {
	_, err := newTranslator(&Config{provider: "openai"})
	if !errors.Is(err, errMissingAPIKey) {
		t.Errorf("err = %v, want errMissingAPIKey", err)
	}
	tr, err := newTranslator(&Config{provider: "openai", apiKey: "sk-test"})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Name() != "openai" {
		t.Errorf("provider = %q", tr.Name())
	}
}

func TestNewTranslatorUnknownProvider(t *testing.T) {
	if _, err := newTranslator(&Config{provider: "bing"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestBatchSystemPrompt(t *testing.T) {
	prompt := batchSystemPrompt("auto", "ar", 7)
	if !strings.Contains(prompt, "Arabic") {
		t.Errorf("prompt missing target language name: %q", prompt)
	}
	if !strings.Contains(prompt, "7") {
		t.Errorf("prompt missing segment count: %q", prompt)
	}
	if !strings.Contains(prompt, strings.TrimSpace(batchSeparator)) {
		t.Errorf("prompt missing separator marker: %q", prompt)
	}
}
