// internal/config/config.go
// Loader konfigurasi dari environment variables (viper)

package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type MySQL struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	MaxOpen  int
	MaxIdle  int
	// DSN, bila diisi, menimpa Host/Port/DB/User/Password.
	DSN string
}

type LLM struct {
	Provider string // default: openai
	APIKey   string
	APIBase  string
	Model    string
}

type Admin struct {
	User      string
	PassHash  string // bcrypt
	JWTSecret string
}

// Analysis: default perhitungan kurva IPR dan grid nodal.
type Analysis struct {
	PressureStep    float64 // psia
	CurveResolution int
	NodalMaxRate    float64 // bpd
	NodalGridPoints int
}

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	MCPPort   string
	LogLevel  string
	LogFormat string
	APIKey    string

	MySQL    MySQL
	LLM      LLM
	Admin    Admin
	Analysis Analysis
}

var defaults = map[string]any{
	"app_name":   "nodal-oilgas",
	"app_env":    "development",
	"app_port":   "8080",
	"mcp_port":   "8090",
	"log_level":  "debug",
	"log_format": "json",
	"api_key":    "",

	"mysql_host":           "localhost",
	"mysql_port":           "3306",
	"mysql_db":             "mcp",
	"mysql_user":           "root",
	"mysql_password":       "",
	"mysql_max_open_conns": 10,
	"mysql_max_idle_conns": 5,
	"db_dsn":               "",

	"llm_provider":    "openai",
	"openai_api_key":  "",
	"openai_api_base": "https://api.openai.com/v1",
	"openai_model":    "gpt-4o-mini",

	"admin_user":       "",
	"admin_pass_hash":  "",
	"admin_jwt_secret": "",

	"ipr_pressure_step":    400.0,
	"ipr_curve_resolution": 500,
	"nodal_max_rate":       7500.0,
	"nodal_grid_points":    10,
}

func Load() *Config {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	c := &Config{}
	c.AppName = v.GetString("app_name")
	c.AppEnv = v.GetString("app_env")
	c.AppPort = v.GetString("app_port")
	c.MCPPort = v.GetString("mcp_port")
	c.LogLevel = v.GetString("log_level")
	c.LogFormat = v.GetString("log_format")
	c.APIKey = v.GetString("api_key")

	c.MySQL.Host = v.GetString("mysql_host")
	c.MySQL.Port = v.GetString("mysql_port")
	c.MySQL.DB = v.GetString("mysql_db")
	c.MySQL.User = v.GetString("mysql_user")
	c.MySQL.Password = v.GetString("mysql_password")
	c.MySQL.MaxOpen = v.GetInt("mysql_max_open_conns")
	c.MySQL.MaxIdle = v.GetInt("mysql_max_idle_conns")
	c.MySQL.DSN = v.GetString("db_dsn")

	// LLM / OpenAI
	c.LLM.Provider = v.GetString("llm_provider")
	c.LLM.APIKey = v.GetString("openai_api_key")
	c.LLM.APIBase = v.GetString("openai_api_base")
	c.LLM.Model = v.GetString("openai_model")

	c.Admin.User = v.GetString("admin_user")
	c.Admin.PassHash = v.GetString("admin_pass_hash")
	c.Admin.JWTSecret = v.GetString("admin_jwt_secret")

	c.Analysis.PressureStep = v.GetFloat64("ipr_pressure_step")
	c.Analysis.CurveResolution = v.GetInt("ipr_curve_resolution")
	c.Analysis.NodalMaxRate = v.GetFloat64("nodal_max_rate")
	c.Analysis.NodalGridPoints = v.GetInt("nodal_grid_points")
	return c
}

// Warn mencatat konfigurasi yang membuat fitur opsional nonaktif.
func (c *Config) Warn(log *slog.Logger) {
	if c.LLM.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, nodal explanations use the extractive fallback")
	}
	if c.Admin.JWTSecret == "" {
		log.Warn("ADMIN_JWT_SECRET is not set, admin routes are disabled")
	}
}
