package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	assetsFileENV     = "ASSETS_FILE"
	jaegerHostENV     = "JAEGER_HOST"
)

// Config ...
type Config struct {
	Service struct {
		Host       string `yaml:"host"`
		PublicPort int    `yaml:"public_port"`
		AdminPort  int    `yaml:"admin_port"`
	} `yaml:"service"`

	Jaeger struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
	} `yaml:"jaeger"`

	// Путь к YAML со справочником активов. Пусто => встроенный справочник.
	AssetsFile string `yaml:"assets_file"`

	// Дефолты расчётов для API/CLI, когда вызывающий не передал своё
	DefaultHoldHours float64 `yaml:"default_hold_hours"` // горизонт комиссий
	DefaultTolerance string  `yaml:"default_tolerance"`  // профиль риска

	LogLevel string `yaml:"log_level"`
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{
		DefaultHoldHours: floatFromEnv("DEFAULT_HOLD_HOURS", 24),
		DefaultTolerance: getenvDefault("DEFAULT_TOLERANCE", "moderate"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
	}
	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	if af := os.Getenv(assetsFileENV); af != "" {
		config.AssetsFile = af
	}
	if jh := os.Getenv(jaegerHostENV); jh != "" {
		config.Jaeger.Host = jh
	}

	if config.Service.PublicPort == 0 {
		config.Service.PublicPort = intFromEnv("PUBLIC_PORT", 8080)
	}
	if config.Service.AdminPort == 0 {
		config.Service.AdminPort = intFromEnv("ADMIN_PORT", 8081)
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
