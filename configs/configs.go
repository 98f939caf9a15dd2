package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: initializeViper(),
		}
	})
	return config
}

func initializeViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetDefault("server.port", 8000)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("broadcast.soft_limit", 9000)
	v.SetDefault("broadcast.hard_limit", 10240)
	v.SetDefault("whiteboard.debounce_seconds", 3)
	v.SetDefault("jwt.expiration_time", 86400)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults and environment")
		} else {
			log.Fatalf("Failed to read config: %v", err)
		}
	}

	return v
}
