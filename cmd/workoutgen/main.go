package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkovacev/liftcycle/internal/accessory"
	"github.com/mkovacev/liftcycle/internal/config"
	"github.com/mkovacev/liftcycle/internal/db"
	"github.com/mkovacev/liftcycle/internal/logging"
	"github.com/mkovacev/liftcycle/internal/progression"
	"github.com/mkovacev/liftcycle/internal/report"
	"github.com/mkovacev/liftcycle/internal/telemetry/metrics"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/internal/users"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// workoutgen renders the weekly workout page for every active lifter
// and drops the HTML files into the configured output dir. Meant to be
// run from cron, shortly after midnight on Sundays.

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	logsPath := flag.String("logs-path", "/var/log/liftcycle/workoutgen.log", "logs file path (empty for stdout)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	log.Println("starting workout generation ...")

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("workout generation failed: %s", err)
	}

	log.Println("workout generation done")
}

func run(ctx context.Context, cfg *config.Config) (err error) {
	ctx, span := tracing.GlobalWorkoutGenTracer.Start(ctx, "workoutgen.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	dirExists, err := pkg.PathExists(cfg.WorkoutPagesPath, true)
	if err != nil {
		return fmt.Errorf("check workout pages dir: %w", err)
	}
	if !dirExists {
		if err := os.MkdirAll(cfg.WorkoutPagesPath, 0o755); err != nil {
			return fmt.Errorf("create workout pages dir: %w", err)
		}
	}

	metricsManager := metrics.NewManager("liftcycle", "workoutgen", prometheus.NewRegistry())

	usersRepo := users.NewRepo(dbPool)
	engine := progression.NewEngine(progression.NewEngineParams{
		Cycles:     progression.NewCyclesRepo(dbPool),
		Increments: progression.NewIncrementsRepo(dbPool),
		Users:      usersRepo,
		Metrics:    metricsManager,
	})

	renderer, err := report.NewRenderer()
	if err != nil {
		return fmt.Errorf("new workout page renderer: %w", err)
	}
	generator := report.NewGenerator(engine, accessory.NewRepo(dbPool), renderer, metricsManager)

	activeUsers, err := usersRepo.Active(ctx)
	if err != nil {
		return fmt.Errorf("get active users: %w", err)
	}
	if len(activeUsers) == 0 {
		log.Warnln("no active users, nothing to generate")
		return nil
	}

	defer func(begin time.Time) {
		metricsManager.HistWorkoutGenDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	var failed int
	for _, user := range activeUsers {
		page, err := generator.WeeklyReport(ctx, user)
		if err != nil {
			log.Errorf("generate workout page for %s: %s", user.Name, err)
			failed++
			continue
		}

		fileName := fmt.Sprintf("%s-lp-workout.html", normalizeFileName(user.Name))
		pagePath := filepath.Join(cfg.WorkoutPagesPath, fileName)
		if err := os.WriteFile(pagePath, page, 0o644); err != nil {
			log.Errorf("write workout page for %s: %s", user.Name, err)
			failed++
			continue
		}

		log.Printf("workout page for %s written to %s", user.Name, pagePath)
	}

	if failed > 0 {
		return fmt.Errorf("failed to generate workout pages for %d of %d users", failed, len(activeUsers))
	}
	return nil
}

func normalizeFileName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
