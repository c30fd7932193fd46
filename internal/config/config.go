package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	GroqAPIKey   string
	GroqModel    string
	YTMusicURL   string
	DefaultCount int
	SessionsPath string
}

type fileConfig struct {
	GroqModel    string `json:"groqModel"`
	YTMusicURL   string `json:"ytmusicApiUrl"`
	DefaultCount int    `json:"defaultCount"`
	SessionsPath string `json:"sessionsPath"`
}

func init() {
	_ = godotenv.Load()
}

func Load() Config {
	fc := loadFileConfig()

	ytURL := firstNonEmpty(os.Getenv("YTMUSIC_API_URL"), fc.YTMusicURL, "http://localhost:8080")
	model := firstNonEmpty(os.Getenv("GROQ_MODEL"), fc.GroqModel)
	sessions := firstNonEmpty(os.Getenv("VIBECHECK_SESSIONS"), fc.SessionsPath)

	count := fc.DefaultCount
	if v := os.Getenv("VIBECHECK_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			count = n
		}
	}
	if count == 0 {
		count = 12
	}

	return Config{
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    model,
		YTMusicURL:   ytURL,
		DefaultCount: count,
		SessionsPath: sessions,
	}
}

func loadFileConfig() fileConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileConfig{}
	}
	configPath := filepath.Join(home, ".config", "vibecheck", "config.json")
	b, err := os.ReadFile(configPath)
	if err != nil {
		return fileConfig{}
	}
	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
