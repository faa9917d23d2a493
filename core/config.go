package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. A single instance is loaded at startup
// from defaults, an optional dotenv file and prefixed environment variables.
type Config struct {
	AppName  string
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	Build    string

	APIBaseURL string
	APITimeout time.Duration

	// TokenPath overrides the default token location under the user config dir.
	TokenPath string

	RollbarToken string
}

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Assignment Tracker")
	v.SetDefault("build", "dev")
	v.SetDefault("apiBaseURL", "https://tutam9-backend-beta.vercel.app/api")
	v.SetDefault("apiTimeout", 15*time.Second)
	v.SetDefault("tokenPath", "")
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		APIBaseURL:   v.GetString("apiBaseURL"),
		APITimeout:   v.GetDuration("apiTimeout"),
		TokenPath:    v.GetString("tokenPath"),
		RollbarToken: v.GetString("rollbarToken"),
	}
}
