package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	ProjectID      string
	Region         string
	LogLevel       string
	VertexModel    string
	AITTL          time.Duration
	CORSOrigins    []string
	UseMemoryStore bool
}

const (
	defaultPort  = 8080
	defaultAITTL = 24 * time.Hour
)

// New reads the environment, loading a .env file first when one exists.
// Values that fail to parse fall back to their defaults; Validate reports
// what is missing.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnvInt("PORT", defaultPort),
		ProjectID:      os.Getenv("PROJECTID"),
		Region:         os.Getenv("REGION"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		VertexModel:    os.Getenv("VERTEXMODEL"),
		AITTL:          getEnvDuration("AITTL", defaultAITTL),
		CORSOrigins:    getEnvList("CORSORIGINS", []string{"*"}),
		UseMemoryStore: getEnvBool("USEMEMORYSTORE", false),
	}
}

func (c *Config) Validate() error {
	var problems []error
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.AITTL < 0 {
		problems = append(problems, errors.New("AITTL must not be negative"))
	}
	if !c.UseMemoryStore {
		if c.ProjectID == "" {
			problems = append(problems, errors.New("PROJECTID is required"))
		}
		if c.Region == "" {
			problems = append(problems, errors.New("REGION is required"))
		}
		if c.VertexModel == "" {
			problems = append(problems, errors.New("VERTEXMODEL is required"))
		}
	}
	return errors.Join(problems...)
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
