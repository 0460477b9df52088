package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/config"
)

// Client enveloppe Redis de l'application.
// Sert de cache aux résultats d'autocomplétion ; une panne Redis n'est
// jamais bloquante, les recherches retombent sur le classeur.
type Client struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie un Ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("connexion Redis établie", zap.String("addr", cfg.Addr))

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Client{rdb: rdb, ttl: ttl, logger: logger}, nil
}

// ── Cache de recherche ──

const searchPrefix = "search:"

// GetSearch relit un résultat de recherche mis en cache ; ok=false si absent
func (c *Client) GetSearch(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, searchPrefix+key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetSearch met un résultat de recherche en cache avec le TTL configuré
func (c *Client) SetSearch(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, searchPrefix+key, raw, c.ttl).Err()
}

// Close ferme la connexion Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
