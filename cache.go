package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// translationCache memoizes provider results for the lifetime of one run,
// keyed by a fingerprint of (content, source language, target language,
// provider). There is no eviction. With --cache-file the map is also
// persisted as JSON across runs.
type translationCache struct {
	entries map[string]string
	hits    int
	misses  int
}

func newTranslationCache() *translationCache {
	return &translationCache{entries: make(map[string]string)}
}

func cacheKey(content, sourceLang, targetLang, provider string) string {
	h := sha256.Sum256([]byte(content + "\x00" + sourceLang + "\x00" + targetLang + "\x00" + provider))
	return hex.EncodeToString(h[:])
}

func (c *translationCache) Get(content, sourceLang, targetLang, provider string) (string, bool) {
	translation, ok := c.entries[cacheKey(content, sourceLang, targetLang, provider)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return translation, ok
}

func (c *translationCache) Put(content, sourceLang, targetLang, provider, translation string) {
	c.entries[cacheKey(content, sourceLang, targetLang, provider)] = translation
}

func (c *translationCache) Len() int {
	return len(c.entries)
}

// LoadFile merges previously persisted entries. A missing file is not an
// error; the cache simply starts cold.
func (c *translationCache) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache file: %w", err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse cache file: %w", err)
	}
	for k, v := range entries {
		c.entries[k] = v
	}
	return nil
}

func (c *translationCache) SaveFile(path string) error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
