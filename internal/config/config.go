package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	LLM         LLMConfig
	TextExtract TextExtractConfig
	Invitation  InvitationConfig
	Auth        AuthConfig
	Logger      LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LLMConfig struct {
	ServerURL string
	Model     string
}

type TextExtractConfig struct {
	BaseURL string
	Timeout time.Duration
}

type InvitationConfig struct {
	// BaseURL is the public origin used when composing shareable take links,
	// e.g. "https://hire.example.com".
	BaseURL string
}

type AuthConfig struct {
	JWTSecret string
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			DSN: viper.GetString("db.dsn"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			ServerURL: viper.GetString("llm.server"),
			Model:     viper.GetString("llm.model"),
		},
		TextExtract: TextExtractConfig{
			BaseURL: viper.GetString("text_extract.base_url"),
			Timeout: viper.GetDuration("text_extract.timeout") * time.Second,
		},
		Invitation: InvitationConfig{
			BaseURL: viper.GetString("invitation.base_url"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		config.DB.DSN = dsn
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if llmModel := os.Getenv("LLM_MODEL"); llmModel != "" {
		config.LLM.Model = llmModel
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if extractURL := os.Getenv("TEXT_EXTRACT_URL"); extractURL != "" {
		config.TextExtract.BaseURL = extractURL
	}
	if inviteBase := os.Getenv("INVITATION_BASE_URL"); inviteBase != "" {
		config.Invitation.BaseURL = inviteBase
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.Auth.JWTSecret = jwtSecret
	}

	if config.TextExtract.Timeout == 0 {
		config.TextExtract.Timeout = 30 * time.Second
	}

	return config, nil
}
