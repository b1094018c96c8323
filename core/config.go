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

type (
	ServerConfig struct {
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	Config struct {
		AppName        string
		Env            string // DEV (local; default), TEST, QA, PROD
		Build          string
		Debug          bool
		TestMode       bool
		RollbarToken   string
		DefaultCountry string
		AvatarGroupMax int
		Server         ServerConfig
	}
)

// NewConfig loads the app configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the env name, eg. `PROD_SERVER_ADDRESS`.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Académie Jacques Levinet")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("defaultCountry", "FR")
	conf.SetDefault("avatarGroupMax", 4)
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugAddress", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:        conf.GetString("appName"),
		Env:            env,
		Build:          conf.GetString("build"),
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		RollbarToken:   conf.GetString("rollbarToken"),
		DefaultCountry: strings.ToUpper(CleanString(conf.GetString("defaultCountry"))),
		AvatarGroupMax: conf.GetInt("avatarGroupMax"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			DebugAddress:    conf.GetString("server.debugAddress"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
	}
}
