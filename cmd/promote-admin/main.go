package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"e-commerce.backend/internal/config"
	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/internal/infrastructure/datasources/postgres"
	"e-commerce.backend/internal/infrastructure/repositories"
	"e-commerce.backend/internal/usecases"
)

var openPromoteDB = postgres.NewConnection

var openPromoteSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type promoteRuntime interface {
	PromoteByEmail(ctx context.Context, email string) (*entities.User, error)
}

type promoteDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (promoteRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func preparePromote(cfg *config.Config) (promoteRuntime, io.Closer, error) {
	db, err := openPromoteDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect db: %w", err)
	}

	sqlDB, err := openPromoteSQLDB(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
	}

	// promotion sends no email, so no notifier is wired
	return usecases.NewAdminUsecase(repositories.NewUserRepository(db), nil), sqlDB, nil
}

func defaultPromoteDeps() promoteDeps {
	return promoteDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: preparePromote,
		out:     os.Stdout,
	}
}

func resolveEmail(flagValue string, rest []string) (string, error) {
	email := strings.TrimSpace(flagValue)
	if email == "" && len(rest) > 0 {
		email = strings.TrimSpace(rest[0])
	}
	if email == "" {
		return "", fmt.Errorf("--email is required")
	}
	return email, nil
}

func runPromoteAdmin(args []string, deps promoteDeps) error {
	def := defaultPromoteDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("promote-admin", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "email of the account to promote (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := resolveEmail(*emailFlag, fs.Args())
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	user, err := runtime.PromoteByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to promote %s: %w", email, err)
	}

	_, _ = fmt.Fprintln(deps.out, "User promoted to admin")
	_, _ = fmt.Fprintf(deps.out, "user_id=%d\n", user.ID)
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	return nil
}

func main() {
	if err := runPromoteAdmin(os.Args[1:], defaultPromoteDeps()); err != nil {
		log.Fatal(err)
	}
}
