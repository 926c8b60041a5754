package main

import (
	"context"
	"os"
	"time"

	googletrans "github.com/Conight/go-googletrans"
)

// GoogleTranslator uses the free Google web translation endpoint, one
// request per content span. No credential is required.
type GoogleTranslator struct {
	proxy   string
	backoff time.Duration
}

func NewGoogleTranslator() *GoogleTranslator {
	return &GoogleTranslator{
		// Pick up the proxy from the environment.
		proxy:   os.Getenv("http_proxy"),
		backoff: 5 * time.Second,
	}
}

func (g *GoogleTranslator) Name() string {
	return "google"
}

func (g *GoogleTranslator) TranslateSpans(ctx context.Context, spans []string, sourceLang, targetLang string) ([]string, error) {
	t := googletrans.New(googletrans.Config{Proxy: g.proxy})
	results := make([]string, len(spans))
	for i, span := range spans {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := t.Translate(span, sourceLang, targetLang)
		if err != nil {
			// Wait out transient throttling and try once more.
			time.Sleep(g.backoff)
			result, err = t.Translate(span, sourceLang, targetLang)
		}
		if err != nil {
			// Leave this span untranslated; the caller keeps the original.
			continue
		}
		results[i] = result.Text
	}
	return results, nil
}
