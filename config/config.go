package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuration globale de l'application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Classeur  ClasseurConfig  `mapstructure:"classeur"`
	Documents DocumentsConfig `mapstructure:"documents"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig configuration du serveur HTTP
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig configuration des origines autorisées
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// ClasseurConfig configuration du classeur de données (fichier .xlsx)
type ClasseurConfig struct {
	Path string `mapstructure:"path"`
}

// DocumentsConfig configuration du moteur documentaire
type DocumentsConfig struct {
	TemplateDir string `mapstructure:"template_dir"`
	OutputDir   string `mapstructure:"output_dir"`
	TrashDir    string `mapstructure:"trash_dir"`

	// Identifiants opaques des modèles de documents
	IndividualTemplateID   string `mapstructure:"individual_template_id"`
	NoteMultipleTemplateID string `mapstructure:"note_multiple_template_id"`
	NoteSingleTemplateID   string `mapstructure:"note_single_template_id"`
	SFMMultipleTemplateID  string `mapstructure:"sfm_multiple_template_id"`
	SFMSingleTemplateID    string `mapstructure:"sfm_single_template_id"`
}

// RedisConfig configuration du cache Redis (optionnel)
// Une adresse vide désactive complètement le cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LogConfig configuration des journaux
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load charge la configuration depuis le fichier et les variables d'environnement
// Priorité : variables d'environnement > fichier de configuration > valeurs par défaut
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valeurs par défaut ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("classeur.path", "data/srtb.xlsx")

	v.SetDefault("documents.template_dir", "data/templates")
	v.SetDefault("documents.output_dir", "data/documents")
	v.SetDefault("documents.trash_dir", "data/corbeille")
	v.SetDefault("documents.individual_template_id", "odm-individuel")
	v.SetDefault("documents.note_multiple_template_id", "note-service-multiple")
	v.SetDefault("documents.note_single_template_id", "note-service-simple")
	v.SetDefault("documents.sfm_multiple_template_id", "odm-sfm-multiple")
	v.SetDefault("documents.sfm_single_template_id", "odm-sfm-simple")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", "5m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Fichier de configuration ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables d'environnement ──
	v.SetEnvPrefix("ODM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("lecture du fichier de configuration: %w", err)
		}
		// Sans fichier, seuls les défauts et l'environnement s'appliquent
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("analyse de la configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate vérifie les éléments critiques de la configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuration invalide: server.port doit être entre 1 et 65535")
	}
	if c.Classeur.Path == "" {
		return fmt.Errorf("configuration invalide: classeur.path ne peut pas être vide")
	}
	if c.Documents.TemplateDir == "" {
		return fmt.Errorf("configuration invalide: documents.template_dir ne peut pas être vide")
	}
	return nil
}
