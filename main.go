package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"quotedrop/config"
	"quotedrop/database"
	routes "quotedrop/internal/app/http"
	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/site"
	"quotedrop/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:           "quotedrop",
	Short:         "QuoteDrop backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(); err != nil {
			return err
		}
		if err := logging.Init(config.Settings.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		pricing.Load(pricing.NewCatalog(config.Settings.PriceIDs()))
		config.AppURL = site.ResolveURL(config.Getenv)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the proposals table DDL",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), entity.CreateTableSQL(entity.Proposal))
		return nil
	},
}

var catalogYAML bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the pricing catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(cmd, pricing.Current(), catalogYAML)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the entity, pricing and site configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkConfigs(pricing.Current(), site.Default(config.AppURL)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration ok")
		return nil
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogYAML, "yaml", false, "print YAML instead of a table")
	rootCmd.AddCommand(serveCmd, schemaCmd, catalogCmd, checkCmd)
}

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// checkConfigs validates the three static tables together.
func checkConfigs(cat *pricing.Catalog, sc site.Config) error {
	var errs []error
	if err := entity.Validate(entity.Proposal); err != nil {
		errs = append(errs, fmt.Errorf("entity: %w", err))
	}
	if err := cat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pricing: %w", err))
	}
	if err := site.CheckLinks(sc); err != nil {
		errs = append(errs, fmt.Errorf("site: %w", err))
	}
	return errors.Join(errs...)
}

func printCatalog(cmd *cobra.Command, cat *pricing.Catalog, asYAML bool) error {
	out := cmd.OutOrStdout()
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cat); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "model: %s, trial: %d days\n", cat.Model, cat.TrialDays)
	for _, p := range cat.Plans {
		limit := "unlimited"
		if n := p.Limits[pricing.LimitProposals]; n != pricing.Unlimited {
			limit = fmt.Sprint(n)
		}
		yearly := "-"
		if p.Price.Yearly != nil {
			yearly = p.Price.Yearly.String()
		}
		fmt.Fprintf(out, "%-8s %6s/mo %6s/yr  proposals: %s\n", p.ID, p.Price.Monthly.String(), yearly, limit)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Settings
	if err := cfg.RequireServe(); err != nil {
		return err
	}
	if err := checkConfigs(pricing.Current(), site.Default(config.AppURL)); err != nil {
		return err
	}

	if cfg.StripeSecretKey == "" {
		logging.L.Warn("STRIPE_SECRET_KEY not set, billing endpoints will fail")
	}

	if err := database.InitDB(cfg.DBDriver, cfg.DBURL); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logging.L.Info("listening",
		zap.String("port", cfg.Port),
		zap.String("app_url", config.AppURL),
		zap.String("db_driver", cfg.DBDriver))
	return r.Run(":" + cfg.Port)
}
