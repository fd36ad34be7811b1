package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/mareviva/mareviva/internal/config"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/services"
	"github.com/mareviva/mareviva/internal/storage"

	_ "modernc.org/sqlite"
)

// App holds the wired services and the interactive session state.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     services.AuthService
	products services.ProductService
	messages services.MessageService
	profiles services.ProfileService
	seed     *services.SeedService

	// current is the logged-in user, nil when logged out. Restored from
	// the device session on startup.
	current *models.User

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, runs migrations, wires the services, seeds
// demo data when configured, and restores the device session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, repos, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	auth := services.NewAuthService(repos.Users, repos.Recovery, repos.Metadata, log)
	products := services.NewProductService(repos.Products, log)
	messages := services.NewMessageService(db, log)
	profiles := services.NewProfileService(repos.Profiles, log)
	seed := services.NewSeedService(db, repos.Metadata, products, messages, log)

	a := &App{
		config:   cfg,
		log:      log,
		db:       db,
		auth:     auth,
		products: products,
		messages: messages,
		profiles: profiles,
		seed:     seed,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if cfg.SeedTestData {
		if err := seed.InitializeTestData(ctx); err != nil {
			log.Warn(ctx, "demo data seeding failed", "error", err)
		}
	}

	a.current = auth.CurrentUser(ctx)

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.current.Name)
}
