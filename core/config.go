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

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "StudentPortal")
	Conf.SetDefault("apiBaseURL", "http://localhost:8080/api")
	Conf.SetDefault("requestTimeout", 30*time.Second)
	Conf.SetDefault("stateDir", defaultStateDir())
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "studentportal")
	}
	return filepath.Join(Getwd(), ".studentportal")
}
