package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Notifier     Notifier
	JWTSecret    string
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Notifier struct {
	// Kind selects the dispatcher variant once at startup:
	// "local", "system" or "email".
	Kind        string
	SendgridKey string
	EmailFrom   string
	EmailTo     string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("NOTIFIER", "local")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Notifier.Kind = viper.GetString("NOTIFIER")
	config.Notifier.SendgridKey = viper.GetString("SENDGRID_API_KEY")
	config.Notifier.EmailFrom = viper.GetString("NOTIFIER_EMAIL_FROM")
	config.Notifier.EmailTo = viper.GetString("NOTIFIER_EMAIL_TO")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("notifier", config.Notifier.Kind).Msg("Config loaded")
	return &config, nil
}
