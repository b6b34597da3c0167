package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/mkovacev/liftcycle/internal"
	"github.com/mkovacev/liftcycle/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	// bcrypt hash of "testpass"
	testAdminUsername     = "coach"
	testAdminPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i"
	testCronAgentSecret   = "cron-agent-test-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			AdminUsername:           testAdminUsername,
			AdminPasswordHash:       testAdminPasswordHash,
			CronAgentSecret:         testCronAgentSecret,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		LogToStdout:                 true,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              "liftcycle",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9001",
		LoginRateLimitAllowedPerMin: 100,
		WorkoutPagesPath:            os.TempDir(),
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=liftcycle",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/liftcycle?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	if err := db.Ping(); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

// initSQL mirrors scripts/schema.sql. The versioned tables deliberately
// carry no primary key constraint, the record store enforces uniqueness
// with its delete-then-insert write path.
const initSQL = `
CREATE TABLE public.lift_user
(
    id    SERIAL PRIMARY KEY,
    name  VARCHAR NOT NULL UNIQUE,
    email VARCHAR NOT NULL DEFAULT ''
);

ALTER TABLE public.lift_user OWNER TO postgres;

CREATE TABLE public.pause_workout
(
    user_id    INTEGER NOT NULL REFERENCES public.lift_user (id),
    paused     BOOLEAN NOT NULL DEFAULT FALSE,
    pause_date TIMESTAMP WITHOUT TIME ZONE
);

ALTER TABLE public.pause_workout OWNER TO postgres;

CREATE TABLE public.training_cycle
(
    user_id      INTEGER NOT NULL REFERENCES public.lift_user (id),
    start_date   DATE NOT NULL,
    end_date     DATE NOT NULL,
    squat        DOUBLE PRECISION NOT NULL,
    bench        DOUBLE PRECISION NOT NULL,
    deadlift     DOUBLE PRECISION NOT NULL,
    ohp          DOUBLE PRECISION NOT NULL,
    published_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.training_cycle OWNER TO postgres;
CREATE INDEX ix_training_cycle_user_start ON public.training_cycle (user_id, start_date);

CREATE TABLE public.progression_increment
(
    user_id  INTEGER NOT NULL REFERENCES public.lift_user (id),
    squat    DOUBLE PRECISION NOT NULL,
    bench    DOUBLE PRECISION NOT NULL,
    deadlift DOUBLE PRECISION NOT NULL,
    ohp      DOUBLE PRECISION NOT NULL
);

ALTER TABLE public.progression_increment OWNER TO postgres;

CREATE TABLE public.accessory
(
    user_id      INTEGER NOT NULL REFERENCES public.lift_user (id),
    main_lift    VARCHAR NOT NULL,
    name         VARCHAR NOT NULL,
    weight       DOUBLE PRECISION NOT NULL,
    sets         INTEGER NOT NULL,
    reps         INTEGER NOT NULL,
    published_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);

ALTER TABLE public.accessory OWNER TO postgres;
CREATE INDEX ix_accessory_user_published ON public.accessory (user_id, published_at);
`
