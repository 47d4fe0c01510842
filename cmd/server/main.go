package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"symptom-checker/internal/analysis"
	"symptom-checker/internal/catalog"
	"symptom-checker/internal/config"
	"symptom-checker/internal/engine"
	"symptom-checker/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symptom-checker",
		Short: "Symptom analysis and triage engine",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the analysis API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func checkCmd() *cobra.Command {
	var in engine.Input
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a single analysis and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, eng, err := loadEngine()
			if err != nil {
				return err
			}

			res, err := eng.Analyze(in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&in.Symptoms, "symptoms", "", "comma-separated symptoms")
	cmd.Flags().StringVar(&in.Age, "age", "", "patient age")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "patient gender")
	cmd.Flags().StringVar(&in.Duration, "duration", "", "symptom duration")
	cmd.Flags().StringVar(&in.Severity, "severity", "", "severity 1-10")
	cmd.Flags().StringVar(&in.AdditionalInfo, "info", "", "additional free-text details")
	return cmd
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Condition catalog utilities",
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog file (or the built-in catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			source := "built-in"
			if len(args) == 1 {
				loaded, err := catalog.LoadFile(args[0])
				if err != nil {
					return err
				}
				cat = loaded
				source = args[0]
			} else if err := cat.Validate(); err != nil {
				return err
			}
			fmt.Printf("Catalog %s is valid: %d conditions, %d emergency.\n",
				source, len(cat.Conditions), len(cat.Emergencies()))
			return nil
		},
	}

	cmd.AddCommand(validateCmd)
	return cmd
}

func loadEngine() (*config.Config, *catalog.Catalog, *engine.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	eng, err := engine.New(cat, cfg.Tunables())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, cat, eng, nil
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, cat, eng, err := loadEngine()
	if err != nil {
		return err
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	}

	svc := analysis.NewService(eng, cat, report.NewService(), logger)
	handler := analysis.NewHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the browser UI
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		analysis.RegisterRoutes(r, handler)
	})

	logger.Info().
		Str("port", cfg.Port).
		Int("conditions", len(cat.Conditions)).
		Msg("server starting")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
	return nil
}
