package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64  `mapstructure:"admin_chat_id"`
		WebAppURL   string `mapstructure:"webapp_url"`
	} `mapstructure:"telegram"`

	Sheets struct {
		SpreadsheetID   string `mapstructure:"spreadsheet_id"`
		SheetName       string `mapstructure:"sheet_name"`
		CredentialsFile string `mapstructure:"credentials_file"`
	} `mapstructure:"sheets"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func Load(path string) (Config, error) {
	// .env рядом с бинарём, если есть
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if c.Sheets.SheetName == "" {
		c.Sheets.SheetName = "Лист1"
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("config: telegram.token is required")
	}
	if c.Telegram.AdminChatID == 0 {
		return fmt.Errorf("config: telegram.admin_chat_id is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("config: sheets.spreadsheet_id is required")
	}
	return nil
}
