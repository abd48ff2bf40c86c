package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wandernest-api/internal/adapter/exchangerate"
	"wandernest-api/internal/adapter/fuzzymatch"
	"wandernest-api/internal/adapter/selection"
	"wandernest-api/internal/catalog"
	"wandernest-api/internal/handler"
	"wandernest-api/internal/service"
	"wandernest-api/internal/usecase"
	"wandernest-api/pkg/config"
	"wandernest-api/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log := logger.Init(cfg.Log.Level)

	log.Info("Starting app...")

	// initialize adapters
	rateClient := exchangerate.NewClient(cfg.Rates.URL, log)
	selectionStore := selection.NewFileStore(cfg.Storage.SelectionPath, log)
	scorer := fuzzymatch.NewWeightedScorer()
	log.Info("Initialized adapters")

	// initialize services
	currencyService := service.NewCurrencyService(rateClient, selectionStore, log)
	searchService := service.NewSearchService(catalog.All(), scorer, log)
	log.Info("Initialized service layer")

	// restore persisted selection and start the first rate fetch
	currencyService.Initialize(context.Background())

	if err := currencyService.StartRefreshing(cfg.Rates.RefreshSchedule); err != nil {
		log.Fatalf("Failed to schedule rate refresh: %v", err)
	}

	// initialize usecases
	currencyUsecase := usecase.NewCurrencyUsecase(currencyService, log)
	destinationUsecase := usecase.NewDestinationUsecase(searchService, currencyService, catalog.ByID, log)
	log.Info("Initialized usecase layer")

	currencyHandler := handler.NewCurrencyHandler(currencyUsecase, log)
	destinationHandler := handler.NewDestinationHandler(destinationUsecase, log)

	r := gin.Default()

	// cors middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/currency/countries", currencyHandler.GetCountries)
	r.GET("/currency/selected", currencyHandler.GetSelected)
	r.PUT("/currency/selected", currencyHandler.SelectCountry)
	r.GET("/currency/convert", currencyHandler.Convert)
	r.GET("/currency/rates", currencyHandler.GetRates)
	r.POST("/currency/refresh", currencyHandler.Refresh)

	r.GET("/destinations", destinationHandler.List)
	r.GET("/destinations/suggest", destinationHandler.Suggest)
	r.GET("/destinations/:id", destinationHandler.Get)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Server starting on port %s...", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Got shutdown signal...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Error server shutdown:", err)
	}
	log.Info("Server stopped")

	currencyService.Stop()

	log.Info("Gracefully shut down")
}
