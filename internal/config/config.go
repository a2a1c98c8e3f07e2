package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"equisports-backend/internal/logging"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	DBUser    string
	DBPass    string
	DBHost    string
	DBAppName string
	DBURI     string
	DBName    string
	DBTimeout time.Duration

	UsersCollection     string
	EquipmentCollection string

	AllowedOrigins []string

	Logging logging.Config
}

var defaults = map[string]any{
	"port":                 "5000",
	"db_host":              "cluster0.mkgqk.mongodb.net",
	"db_app_name":          "Cluster0",
	"db_name":              "EquiSports",
	"db_timeout":           "10s",
	"users_collection":     "users",
	"equipment_collection": "equipment",
	"cors_allowed_origins": "*",
	"log_level":            "info",
	"log_include_src":      false,
	"log_to_file":          false,
	"log_filename":         "equisports.log",
	"log_max_size":         50,
	"log_max_age":          30,
	"log_max_backups":      5,
	"log_compress":         false,
}

// Load reads the configuration from environment variables, falling back to
// defaults. When CONFIG_FILE is set, that file is read first and environment
// variables still take precedence over it.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	timeout := v.GetDuration("db_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("DB_TIMEOUT must be a positive duration, got %q", v.GetString("db_timeout"))
	}

	return &Config{
		Port:                v.GetString("port"),
		DBUser:              v.GetString("db_user"),
		DBPass:              v.GetString("db_pass"),
		DBHost:              v.GetString("db_host"),
		DBAppName:           v.GetString("db_app_name"),
		DBURI:               v.GetString("mongodb_uri"),
		DBName:              v.GetString("db_name"),
		DBTimeout:           timeout,
		UsersCollection:     v.GetString("users_collection"),
		EquipmentCollection: v.GetString("equipment_collection"),
		AllowedOrigins:      splitList(v.GetString("cors_allowed_origins")),
		Logging: logging.Config{
			Level:      v.GetString("log_level"),
			IncludeSrc: v.GetBool("log_include_src"),
			ToFile:     v.GetBool("log_to_file"),
			Filename:   v.GetString("log_filename"),
			MaxSize:    v.GetInt("log_max_size"),
			MaxAge:     v.GetInt("log_max_age"),
			MaxBackups: v.GetInt("log_max_backups"),
			Compress:   v.GetBool("log_compress"),
		},
	}, nil
}

// MongoURI returns MONGODB_URI when set, otherwise an SRV connection string
// built from the credentials and cluster host.
func (c *Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=" + url.QueryEscape(c.DBAppName),
	}
	if c.DBUser != "" || c.DBPass != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPass)
	}
	return u.String()
}

// HasCredentials reports whether a usable connection string can be built.
func (c *Config) HasCredentials() bool {
	return c.DBURI != "" || (c.DBUser != "" && c.DBPass != "")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
