package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/luvletter/internal/client/config"
	"github.com/dmitrijs2005/luvletter/internal/client/sms"
	"github.com/dmitrijs2005/luvletter/internal/client/store"
	"github.com/dmitrijs2005/luvletter/internal/logging"
)

// App ties the local store, the relay client and the interactive loop
// together.
type App struct {
	config *config.Config
	store  *store.Store
	db     *sql.DB
	sms    *sms.Client
	logger logging.Logger
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	st, db, err := store.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	smsClient := sms.NewClient(c.RelayEndpoint, &http.Client{Timeout: c.HTTPTimeout})

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return &App{
		config: c,
		store:  st,
		db:     db,
		sms:    smsClient,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
