package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/modelboard/backend/conf"
	"github.com/modelboard/backend/http"
	"github.com/modelboard/backend/pages"
	"github.com/modelboard/backend/scoring"
	"github.com/modelboard/backend/subfile"
	"github.com/modelboard/backend/subm"
	"github.com/modelboard/backend/user"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	configPath := os.Getenv("CONTEST_CONFIG")
	if configPath == "" {
		configPath = "contest.toml"
	}
	cfg, err := conf.ReadContestConfig(configPath)
	if err != nil {
		slog.Error("failed to load contest config", "error", err)
		os.Exit(1)
	}

	key, err := scoring.LoadAnswerKey(cfg.AnswerKeyPath, scoring.Columns{
		ID:         cfg.IDColumn,
		Value:      cfg.ValueColumn,
		PublicFlag: cfg.PublicFlagColumn,
	})
	if err != nil {
		slog.Error("failed to load answer key", "error", err)
		os.Exit(1)
	}
	slog.Info("answer key loaded", "rows", key.Len())

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var files subfile.Store
	if cfg.S3Bucket != "" {
		files, err = subfile.NewS3Store(cfg.S3Region, cfg.S3Bucket)
	} else {
		files, err = subfile.NewLocalStore(cfg.UploadDir)
	}
	if err != nil {
		slog.Error("failed to set up submission archive", "error", err)
		os.Exit(1)
	}

	userSrvc := user.NewUserSrvc(user.NewPgRepo(pool))
	submSrvc := subm.NewSubmissionSrvc(cfg, key, subm.NewPgRepo(pool), files)
	pagesSrvc := pages.NewPagesSrvc(cfg.ContentDir, cfg.Pages)

	httpServer := http.NewHttpServer(cfg, submSrvc, userSrvc, pagesSrvc, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
