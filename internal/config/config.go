package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	Security  SecurityConfig
	Websocket WebsocketConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"notification-service"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	// Channel is the pub/sub channel used to fan multicasts out across instances.
	Channel string `env:"REDIS_MULTICAST_CHANNEL" envDefault:"notifications.multicast"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DATABASE" envDefault:"notifications"`
}

type SecurityConfig struct {
	JWTSecret string `env:"JWT_SECRET,required"`
}

type WebsocketConfig struct {
	SendBuffer int `env:"WS_SEND_BUFFER" envDefault:"16"`
}

type LoggingConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"text"`
	Directory string `env:"LOG_DIR" envDefault:"./logs"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
