package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bearingml/internal/config"
	"bearingml/internal/handlers"
	"bearingml/internal/ml"
	"bearingml/internal/services"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.json", "Path to config file")
	modelPath := flag.String("model", "", "Path to model artifact (overrides config)")
	port := flag.String("port", "", "Server port (overrides config)")
	createSample := flag.Bool("create-sample-model", false, "Write a sample model artifact to the model path and exit")
	flag.Parse()

	logger, _ := zap.NewProduction(zap.AddStacktrace(zap.FatalLevel))
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load configuration
	cfg, err := config.LoadConfigWithDefaults(*configPath)
	if err != nil {
		sugar.Fatalw("failed to load config", "error", err)
	}

	// Override with command line flags if provided
	if *modelPath != "" {
		cfg.Model.Path = *modelPath
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	if *createSample {
		if err := ml.CreateSampleModel(cfg.Model.Path); err != nil {
			sugar.Fatalw("failed to create sample model", "error", err)
		}
		sugar.Infow("sample model created", "path", cfg.Model.Path)
		return
	}

	// Load the model once; a failure here is not fatal, the service keeps
	// running and serves the degraded "model not loaded" payload instead.
	var classifier services.Classifier
	model, err := ml.LoadModel(cfg.Model.Path)
	if err != nil {
		sugar.Errorw("failed to load model, running degraded", "path", cfg.Model.Path, "error", err)
	} else {
		sugar.Infow("model loaded", "path", cfg.Model.Path, "columns", model.Columns, "threshold", model.Threshold)
		classifier = model
	}

	// Initialize services
	predictor := services.NewPredictor(classifier, sugar)

	// Initialize handlers
	bothHandler := handlers.NewPredictHandler(predictor, handlers.OutputBoth, sugar)
	classificationHandler := handlers.NewPredictHandler(predictor, handlers.OutputClassification, sugar)
	regressionHandler := handlers.NewPredictHandler(predictor, handlers.OutputRegression, sugar)
	healthHandler := handlers.NewHealthHandler(predictor)

	// Setup router
	router := mux.NewRouter()

	api := router.PathPrefix("/predict").Subrouter()
	api.Handle("/both", bothHandler).Methods("POST", "OPTIONS")
	api.Handle("/classification", classificationHandler).Methods("POST", "OPTIONS")
	api.Handle("/regression", regressionHandler).Methods("POST", "OPTIONS")

	router.HandleFunc("/health", healthHandler.Handle).Methods("GET")

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	sugar.Infof("starting bearing failure prediction service on %s", addr)
	sugar.Infof("endpoints:")
	sugar.Infof("  POST /predict/classification")
	sugar.Infof("  POST /predict/regression")
	sugar.Infof("  POST /predict/both")
	sugar.Infof("  GET  /health")
	sugar.Infof("local URL: http://localhost:%s", cfg.Server.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		sugar.Fatalw("server failed", "error", err)
	}
}
