package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/config"
	"github.com/mvukovic/trophystats/internal/db"
	"github.com/mvukovic/trophystats/internal/statistics"
	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
	"github.com/mvukovic/trophystats/internal/trophies"
	"github.com/mvukovic/trophystats/internal/users"
	"github.com/mvukovic/trophystats/internal/workouts"
)

// trophyctl is the admin side door: catalog loading, statistics
// recomputes and trophy evaluation without going through the HTTP API.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	loadCatalog := flag.String("load-catalog", "", `trophy catalog TOML path, or "default" for the built-in catalog`)
	evaluate := flag.Bool("evaluate", false, "evaluate trophies (scope via -user and/or -trophy)")
	recompute := flag.Bool("recompute", false, "recompute statistics snapshots (-user, or all active users)")
	userID := flag.String("user", "", "target user id; empty means all active users")
	trophyName := flag.String("trophy", "", "limit -evaluate to a single trophy, by name")
	verbose := flag.Bool("verbose", false, "debug logs")
	flag.Parse()

	log.SetOutput(os.Stdout)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *loadCatalog == "" && !*evaluate && !*recompute {
		fmt.Fprintln(os.Stderr, "nothing to do: use -load-catalog, -evaluate or -recompute")
		flag.Usage()
		os.Exit(1)
	}
	if *trophyName != "" && !*evaluate {
		fmt.Fprintln(os.Stderr, "-trophy makes sense only together with -evaluate")
		os.Exit(1)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	workoutsRepo := workouts.NewRepo(dbPool)
	statsRepo := statistics.NewRepo(dbPool)
	trophiesRepo := trophies.NewRepo(dbPool)
	usersRepo := users.NewRepo(dbPool)

	metricsManager := metrics.NewManager("trophystats", "trophyctl", prometheus.NewRegistry())
	registry := trophies.DefaultRegistry()

	aggregator := statistics.NewAggregator(
		workoutsRepo, statsRepo, metricsManager,
		statistics.AggregatorConfig{
			WorkoutGapResetDays:   cfg.WorkoutGapResetDays,
			WeekendStaleAfterDays: cfg.WeekendStaleAfterDays,
		},
	)
	evaluator := trophies.NewEvaluator(
		trophiesRepo, statsRepo, usersRepo, registry, metricsManager,
		trophies.EvaluatorConfig{
			TrophiesEnabled:    true, // admin runs bypass the global kill switch
			UserInactivityDays: cfg.UserInactivityDays,
		},
	)

	if *loadCatalog != "" {
		runLoadCatalog(ctx, trophiesRepo, registry, *loadCatalog)
	}
	if *recompute {
		runRecompute(ctx, aggregator, usersRepo, cfg.UserInactivityDays, *userID)
	}
	if *evaluate {
		runEvaluate(ctx, evaluator, trophiesRepo, *userID, *trophyName)
	}
}

func runLoadCatalog(ctx context.Context, repo *trophies.Repo, registry *trophies.Registry, source string) {
	catalog := trophies.DefaultCatalog()
	if source != "default" {
		var err error
		catalog, err = trophies.LoadCatalog(source)
		if err != nil {
			log.Errorf("load catalog [%s]: %s", source, err)
			return
		}
	}

	synced, err := trophies.SyncCatalog(ctx, repo, registry, catalog)
	if err != nil {
		log.Errorf("sync catalog: %s", err)
	}
	fmt.Printf("catalog: %d of %d trophies synced\n", synced, len(catalog))
}

func runRecompute(
	ctx context.Context,
	aggregator *statistics.Aggregator,
	usersRepo *users.Repo,
	inactivityDays int,
	userID string,
) {
	userIDs := []string{userID}
	if userID == "" {
		var err error
		userIDs, err = usersRepo.ListActiveIDs(ctx, inactivityDays)
		if err != nil {
			log.Errorf("list active users: %s", err)
			return
		}
	}

	var processed, errored int
	for _, id := range userIDs {
		if _, err := aggregator.FullRecompute(ctx, id); err != nil {
			log.Errorf("recompute for user [%s]: %s", id, err)
			errored++
			continue
		}
		processed++
	}
	fmt.Printf("recompute: %d processed, %d errored\n", processed, errored)
}

func runEvaluate(
	ctx context.Context,
	evaluator *trophies.Evaluator,
	repo *trophies.Repo,
	userID, trophyName string,
) {
	var trophyIDs []uuid.UUID
	if trophyName != "" {
		trophy, err := repo.GetTrophyByName(ctx, trophyName)
		if err != nil {
			log.Errorf("get trophy [%s]: %s", trophyName, err)
			return
		}
		trophyIDs = []uuid.UUID{trophy.ID}
	}

	var userIDs []string
	if userID != "" {
		userIDs = []string{userID}
	}

	result, err := evaluator.Reevaluate(ctx, trophyIDs, userIDs)
	if err != nil {
		// partial failures, the run itself still completed
		log.Errorf("evaluation errors: %s", err)
	}
	if result != nil {
		fmt.Printf("evaluate: %d users checked, %d trophies awarded\n",
			result.UsersChecked, result.TrophiesAwarded)
	}
}
