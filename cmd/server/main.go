package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/config"
	"github.com/tech-sunvi/gas-gomission/internal/api/handler"
	"github.com/tech-sunvi/gas-gomission/internal/api/router"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
	"github.com/tech-sunvi/gas-gomission/pkg/docs"
	applogger "github.com/tech-sunvi/gas-gomission/pkg/logger"
	"github.com/tech-sunvi/gas-gomission/pkg/redis"
)

func main() {
	// 1. Chargement de la configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec du chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialisation des journaux
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec de l'initialisation des journaux: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Ouverture du classeur de données
	store, err := classeur.NewExcelStore(cfg.Classeur.Path, logger)
	if err != nil {
		logger.Fatal("échec de l'ouverture du classeur", zap.Error(err))
	}
	logger.Info("classeur de données ouvert", zap.String("path", cfg.Classeur.Path))

	// 4. Initialisation du magasin documentaire
	docStore, err := docs.NewStore(
		cfg.Documents.TemplateDir,
		cfg.Documents.OutputDir,
		cfg.Documents.TrashDir,
		cfg.Server.BaseURL,
		logger,
	)
	if err != nil {
		logger.Fatal("échec de l'initialisation du magasin documentaire", zap.Error(err))
	}

	// 5. Connexion Redis (optionnel : en cas d'échec on continue sans cache)
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("connexion Redis impossible, les recherches se feront sans cache", zap.Error(err))
			rdb = nil
		}
	}

	// 6. Injection des dépendances : Repository → Service → Handler
	repo := repository.NewRepository(store, logger)
	svc, err := service.NewService(cfg, repo, docStore, rdb, logger)
	if err != nil {
		logger.Fatal("échec de l'initialisation des services", zap.Error(err))
	}
	h := handler.NewHandler(svc, docStore)

	// 7. Initialisation du routage
	engine := router.Setup(cfg, h, logger)

	// 8. Lancement du serveur HTTP (arrêt gracieux)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP en erreur", zap.Error(err))
		}
	}()

	// 9. Attente d'un signal système puis arrêt gracieux
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal d'arrêt reçu, fermeture en cours...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur en erreur", zap.Error(err))
	}

	// Fermeture du classeur (persiste les modifications en attente)
	if err := store.Close(); err != nil {
		logger.Error("fermeture du classeur en erreur", zap.Error(err))
	}

	// Fermeture de la connexion Redis
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
