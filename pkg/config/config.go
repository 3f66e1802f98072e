package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Log   LogConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// StoreConfig configuração do banco SQLite embutido.
// Path relativo é resolvido contra o diretório de trabalho, garantindo
// um local fixo e determinístico para o arquivo do banco.
type StoreConfig struct {
	Path string
}

// LogConfig nível de log.
type LogConfig struct {
	Level string
}

// AbsPath devolve o caminho absoluto do arquivo do banco.
func (c StoreConfig) AbsPath() string {
	if filepath.IsAbs(c.Path) {
		return c.Path
	}
	wd, err := os.Getwd()
	if err != nil {
		return c.Path
	}
	return filepath.Join(wd, c.Path)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, DB_PATH, LOG_LEVEL.
// Nenhuma variável é obrigatória; todos os valores têm default.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração config.env na raiz
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "dose-certa"),
		},
		Store: StoreConfig{
			Path: getString(v, "DB_PATH", "dose_certa.db"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
