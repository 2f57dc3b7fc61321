package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 客户端配置结构
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig 客户端配置
type ClientConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Timeout            time.Duration `mapstructure:"timeout"`
	DefaultLockTimeout time.Duration `mapstructure:"default_lock_timeout"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 加载配置：默认值 < 配置文件 < .env < 环境变量
func Load() (*Config, error) {
	// .env存在时先载入进程环境，不存在不算错误
	_ = godotenv.Load()

	// 设置默认值
	viper.SetDefault("client.timeout", 30*time.Second)
	viper.SetDefault("client.default_lock_timeout", 10*time.Minute)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// 优先从配置文件加载
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.davctl")

	// 从环境变量加载
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// 如果设置了环境变量，覆盖配置文件
	setEnvOverrides()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &config, nil
}

// setEnvOverrides 设置环境变量覆盖
func setEnvOverrides() {
	if baseURL := os.Getenv("WEBDAV_BASE_URL"); baseURL != "" {
		viper.Set("client.base_url", baseURL)
	}
	if username := os.Getenv("WEBDAV_USERNAME"); username != "" {
		viper.Set("client.username", username)
	}
	if password := os.Getenv("WEBDAV_PASSWORD"); password != "" {
		viper.Set("client.password", password)
	}
	if timeout := os.Getenv("WEBDAV_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			viper.Set("client.timeout", parsed)
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		viper.Set("logging.level", level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		viper.Set("logging.format", format)
	}
}

// BaseURL 解析配置的基础地址，必须是绝对地址
func (c *Config) BaseURL() (*url.URL, error) {
	if c.Client.BaseURL == "" {
		return nil, fmt.Errorf("client.base_url is required")
	}
	parsed, err := url.Parse(c.Client.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url %q must be absolute", c.Client.BaseURL)
	}
	return parsed, nil
}
