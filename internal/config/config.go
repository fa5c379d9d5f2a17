package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port      string `mapstructure:"port"`
		Env       string `mapstructure:"env"`
		StaticDir string `mapstructure:"static_dir"`
		ImagesDir string `mapstructure:"images_dir"`
	} `mapstructure:"app"`
	Scrollspy struct {
		Lookahead float64 `mapstructure:"lookahead"`
	} `mapstructure:"scrollspy"`
	Visitors struct {
		DBPath string `mapstructure:"db_path"`
	} `mapstructure:"visitors"`
	Admin struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"admin"`

	// Sources lists the files that contributed, in load order.
	Sources []string `mapstructure:"-"`
}

// LoadConfig reads .env, then config.yaml from paths, then the environment.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err := godotenv.Load(); err == nil {
		cfg.Sources = append(cfg.Sources, ".env")
	}

	v := viper.New()
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.static_dir", "./static")
	v.SetDefault("app.images_dir", "./images")
	v.SetDefault("scrollspy.lookahead", 100)
	v.SetDefault("visitors.db_path", "visitors.db")
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		err = nil
	} else {
		cfg.Sources = append(cfg.Sources, v.ConfigFileUsed())
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("app.port", "APP_PORT", "PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.static_dir", "STATIC_DIR")
	v.BindEnv("app.images_dir", "IMAGES_DIR")
	v.BindEnv("scrollspy.lookahead", "SCROLLSPY_LOOKAHEAD")
	v.BindEnv("visitors.db_path", "VISITORS_DB_PATH")
	v.BindEnv("admin.username", "ADMIN_USERNAME")
	v.BindEnv("admin.password", "ADMIN_PASSWORD")

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	// viper treats an empty variable as unset; an empty path must still
	// be able to switch visitor tracking off.
	if path, ok := os.LookupEnv("VISITORS_DB_PATH"); ok {
		cfg.Visitors.DBPath = path
	}
	if cfg.Scrollspy.Lookahead < 0 {
		return cfg, fmt.Errorf("scrollspy.lookahead must not be negative, got %v", cfg.Scrollspy.Lookahead)
	}
	return cfg, nil
}
