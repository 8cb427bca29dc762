package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"creator-dashboard/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	YouTube     YouTube     `json:"youtube"`
	RedisClient RedisClient `json:"redisClient"`
	Events      Events      `json:"events"`
	Cors        Cors        `json:"cors"`
}

type App struct {
	Port        int    `json:"port"`
	SecretKey   string `json:"secretKey"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type Database struct {
	// Vendor is one of postgres, mysql, mssql. Empty picks by ENV.
	Vendor string `json:"vendor"`
	Psql   Db     `json:"psql"`
	MySql  Db     `json:"mysql"`
	Mssql  Db     `json:"mssql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

type YouTube struct {
	APIKey         string `json:"apiKey"`
	BaseURL        string `json:"baseURL"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
	DB       int    `json:"db"`
	// TrendingTTLSeconds enables the trending response cache when > 0.
	TrendingTTLSeconds int `json:"trendingTTLSeconds"`
}

type Events struct {
	// Provider is one of none, pubsub, servicebus.
	Provider   string     `json:"provider"`
	Topic      string     `json:"topic"`
	Pubsub     Pubsub     `json:"pubsub"`
	ServiceBus ServiceBus `json:"serviceBus"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	Reload()
}

// Reload rebuilds C from the config file and the current environment.
// Call it after loading env files so their values take effect.
func Reload() {
	C = Config{}
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initRedis(&C)
	initEvents(&C)
	initCors(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if v := os.Getenv("DB_VENDOR"); v != "" {
		C.Database.Vendor = v
	}
	if C.Database.Vendor == "" {
		env := os.Getenv("ENV")
		if env == "production" || env == "prod" {
			C.Database.Vendor = "mssql"
		} else {
			C.Database.Vendor = "postgres"
		}
	}
	C.Database.Vendor = strings.ToLower(C.Database.Vendor)

	fillDb(&C.Database.Psql, "DB", Db{Host: "localhost", Port: "5432", User: "postgres", SSLMode: "disable"})
	fillDb(&C.Database.MySql, "MYSQL", Db{Host: "localhost", Port: "3306", User: "root"})
	fillDb(&C.Database.Mssql, "MSSQL", Db{Host: "localhost", Port: "1433", User: "sa"})
	if C.Database.Mssql.Name == "" {
		C.Database.Mssql.Name = os.Getenv("MSSQL_DB_NAME")
	}
}

// fillDb fills empty fields from PREFIX_NAME, PREFIX_HOST, ... and then from defaults.
func fillDb(db *Db, prefix string, defaults Db) {
	fields := []struct {
		dst *string
		env string
		def string
	}{
		{&db.Name, prefix + "_NAME", defaults.Name},
		{&db.Host, prefix + "_HOST", defaults.Host},
		{&db.Port, prefix + "_PORT", defaults.Port},
		{&db.User, prefix + "_USER", defaults.User},
		{&db.Password, prefix + "_PASSWORD", defaults.Password},
		{&db.SSLMode, prefix + "_SSLMODE", defaults.SSLMode},
	}
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		if v := os.Getenv(f.env); v != "" {
			*f.dst = v
		} else {
			*f.dst = f.def
		}
	}
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order: APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			C.App.TLSEnabled = b
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initRedis(C *Config) {
	if v := os.Getenv("REDIS_HOST"); v != "" {
		C.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		C.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		C.RedisClient.Password = v
	}
	if v := os.Getenv("REDIS_USERNAME"); v != "" {
		C.RedisClient.Username = v
	}
	if v := os.Getenv("TRENDING_CACHE_TTL_SECONDS"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			C.RedisClient.TrendingTTLSeconds = ttl
		}
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = "localhost"
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
}

func initEvents(C *Config) {
	if v := os.Getenv("EVENTS_PROVIDER"); v != "" {
		C.Events.Provider = v
	}
	if v := os.Getenv("PUBSUB_PROJECT_ID"); v != "" {
		C.Events.Pubsub.ProjectID = v
	}
	if v := os.Getenv("SERVICEBUS_NAMESPACE"); v != "" {
		C.Events.ServiceBus.Namespace = v
	}
	C.Events.Provider = strings.ToLower(C.Events.Provider)
	if C.Events.Provider == "" {
		C.Events.Provider = "none"
	}
	if C.Events.Topic == "" {
		C.Events.Topic = "script-requests"
	}
}

func initCors(C *Config) {
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		C.Cors.AllowOrigins = strings.Split(v, ",")
	}
	if len(C.Cors.AllowOrigins) == 0 {
		C.Cors.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
}
