package main

import (
	"fmt"
	"strings"
)

// Language pairs a translation-service language code with a display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Commonly used language codes. Any other ISO 639-1 code is accepted as
// well and passed through to the provider unchanged.
var supportedLanguages = []Language{
	{"ar", "العربية"},
	{"en", "English"},
	{"ja", "日本語 (Japanese)"},
	{"ko", "한국어 (Korean)"},
	{"zh-CN", "中文 简体 (Chinese Simplified)"},
	{"zh-TW", "中文 繁體 (Chinese Traditional)"},
	{"fr", "Français"},
	{"de", "Deutsch"},
	{"es", "Español"},
	{"it", "Italiano"},
	{"pt", "Português"},
	{"ru", "Русский"},
	{"tr", "Türkçe"},
	{"hi", "हिन्दी"},
	{"th", "ไทย"},
	{"vi", "Tiếng Việt"},
	{"id", "Bahasa Indonesia"},
	{"ms", "Bahasa Melayu"},
	{"fa", "فارسی"},
}

// English names used when building LLM prompts.
var languageNames = map[string]string{
	"auto":  "the auto-detected source language",
	"ar":    "Arabic",
	"en":    "English",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh-CN": "Simplified Chinese",
	"zh-TW": "Traditional Chinese",
	"fr":    "French",
	"de":    "German",
	"es":    "Spanish",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"tr":    "Turkish",
	"hi":    "Hindi",
	"th":    "Thai",
	"vi":    "Vietnamese",
	"id":    "Indonesian",
	"ms":    "Malay",
	"fa":    "Persian",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func printLanguages() {
	fmt.Println("\nSupported languages:")
	fmt.Println(strings.Repeat("-", 40))
	for _, lang := range supportedLanguages {
		fmt.Printf("  %-8s %s\n", lang.Code, lang.Name)
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Println("\nFor more languages use any ISO 639-1 code,")
	fmt.Println("e.g. uk for Ukrainian, nl for Dutch.")
}
