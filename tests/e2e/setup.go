//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-booking/cmd/bootstrap"
	"travel-booking/cmd/bootstrap/components"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	containersOnce        sync.Once
	postgresTestContainer testcontainers.Container
	redisTestContainer    testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

type environment struct {
	pool   *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
	cfg    config.Config
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) environment {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	cfg := createTestConfig(dbConfig, redisInfo)
	env, app := buildE2EApp(pool, cfg)
	require.NotNil(t, env.router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"postgres", postgresInfo.Addr(),
		"redis", redisInfo.Addr())

	return env
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	startContainersOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")

	return postgresInfo, redisInfo
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
			slog.Warn("データベース作成を再試行中", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")

	require.NoError(t, applySchema(pool), "スキーマの適用に失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	return pool, dbConfig
}

// applySchema runs the initial schema; go test starts in the package directory.
func applySchema(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	const file = "migrations/001_initial_schema.sql"
	var (
		sqlContent []byte
		readErr    error
	)
	for _, cand := range []string{
		file,
		filepath.Join("..", file),
		filepath.Join("..", "..", file),
		filepath.Join("..", "..", "..", file),
	} {
		if sqlContent, readErr = os.ReadFile(cand); readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read %s: %w", file, readErr)
	}
	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", file, err)
	}
	return nil
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, cfg config.Config, extra ...fx.Option) (environment, *fx.App) {
	var env environment

	app := fx.New(
		fx.Options(extra...),
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.TracingModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		bootstrap.NotifyModule,
		components.PersistenceModule,
		components.ServicesModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&env.router, &env.redis),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	env.pool = pool
	env.cfg = cfg
	return env, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = redisInfo.Addr()
	return cfg
}

// ------------------------------------------------------------
// コンテナをプロセス内で一度だけ起動
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeout time.Duration) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startContainersOnce(t *testing.T) {
	containersOnce.Do(func() {
		var err error
		postgresTestContainer, err = startGenericContainer(postgresRequest(), 3*time.Minute)
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")

		redisTestContainer, err = startGenericContainer(redisRequest(), time.Minute)
		require.NoError(t, err, "Redisコンテナの起動に失敗")

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			for name, c := range map[string]testcontainers.Container{"postgres": postgresTestContainer, "redis": redisTestContainer} {
				if c == nil {
					continue
				}
				if err := c.Terminate(ctx); err != nil {
					slog.Warn("コンテナの終了に失敗しました", "container", name, "error", err.Error())
				}
			}
		})
	})
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
			"TZ":                "UTC",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=512m",
		},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "shared_buffers=256MB",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.Router = env.router
	s.Redis = env.redis
	s.Config = env.cfg
	require.NotNil(t, s.DB, "DBのセットアップに失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
	require.NotNil(t, s.Redis, "Redisクライアントの取得に失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// RouterWithGateway starts a second application on the suite's database and
// Redis whose booking flow charges through gw.
func (s *SharedSuite) RouterWithGateway(gw shared.PaymentGateway) *gin.Engine {
	env, app := buildE2EApp(s.DB, s.Config, fx.Decorate(func(shared.PaymentGateway) shared.PaymentGateway { return gw }))
	s.T().Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return env.router
}

// SetupSubTest gives every s.Run a clean database and an empty draft store.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "Failed to flush redis")
}
