package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string `yaml:"addr"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBHost       string `yaml:"db_host"`
	DBPort       string `yaml:"db_port"`
	DBName       string `yaml:"db_name"`
	JWTSecret    string `yaml:"jwt_secret"`
	OpenAIAPIKey string `yaml:"openai_api_key"`
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := Config{
		Addr:         getEnv("ADDR", ":8000"),
		DBUser:       getEnv("DB_USER", ""),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBHost:       getEnv("DB_HOST", ""),
		DBPort:       getEnv("DB_PORT", ""),
		DBName:       getEnv("DB_NAME", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}

	// Optional YAML overlay for local development; absent fields keep the
	// environment values.
	if path := os.Getenv("AICHAT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Println("config file unreadable:", err)
			return cfg
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Println("invalid config file:", err)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
