// Package cli defines the cobra command tree for carpet.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/client"
	"github.com/evcraddock/carpet/internal/config"
	"github.com/evcraddock/carpet/internal/db"
	"github.com/evcraddock/carpet/internal/property"
)

var (
	flagFormat    string
	flagStore     string
	flagStorePath string
	flagServer    string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carpet",
		Short:         "Calculate carpet and claimed areas of a home",
		Long:          "Enter room dimensions in feet and inches to get per-room areas, total carpet area, the claimed (super built-up) area and a diagrammatic floorplan. Save named properties and compare them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagStore, "store", "", "property store (json|sqlite, default: json)")
	root.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "property store path (default: ~/.carpet/properties.json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "carpet server URL; when set, properties are read and saved remotely")

	root.AddCommand(
		newCalcCmd(),
		newSaveCmd(),
		newListCmd(),
		newShowCmd(),
		newCompareCmd(),
		newExportCmd(),
		newLayoutCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if flagStore != "" && flagStore != cfg.Store {
		// A default path for the old store kind would point at the wrong file.
		if def, err := config.DefaultStorePath(cfg.Store); err == nil && def == cfg.StorePath {
			cfg.StorePath = ""
		}
		cfg.Store = flagStore
	}
	if flagStorePath != "" {
		cfg.StorePath = flagStorePath
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if cfg.StorePath == "" {
		path, err := config.DefaultStorePath(cfg.Store)
		if err != nil {
			return config.Config{}, err
		}
		cfg.StorePath = path
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore opens and loads the configured local store. A store that fails
// to load is still returned, empty, with a warning logged.
func openStore(cfg config.Config) (*property.Store, func(), error) {
	var (
		backend property.Backend
		cleanup = func() {}
	)

	switch cfg.Store {
	case config.StoreSQLite:
		database, err := db.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		backend = property.NewRepository(database)
		cleanup = func() { closeDB(database) }
	default:
		backend = property.NewFileBackend(cfg.StorePath)
	}

	store := property.NewStore(backend)
	if err := store.Load(); err != nil {
		slog.Warn("starting with an empty property store", "path", cfg.StorePath, "error", err)
	}
	return store, cleanup, nil
}

// properties is where saved properties live: the local store or a server.
type properties interface {
	Save(name string, in area.Input) (*property.Property, error)
	List() ([]*property.Property, error)
	Get(name string) (*property.Property, error)
	Compare() ([]property.Comparison, error)
}

// openProperties returns the remote client when a server is configured,
// otherwise the local store.
func openProperties() (properties, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.ServerURL != "" {
		return client.New(cfg.ServerURL), func() {}, nil
	}

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return localProperties{store: store}, cleanup, nil
}

// localProperties adapts a Store to the properties interface.
type localProperties struct {
	store *property.Store
}

func (l localProperties) Save(name string, in area.Input) (*property.Property, error) {
	rooms, err := area.BuildRooms(in)
	if err != nil {
		return nil, err
	}
	p, err := property.New(name, rooms)
	if err != nil {
		return nil, err
	}
	if err := l.store.Save(p.Name, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (l localProperties) List() ([]*property.Property, error) {
	return l.store.ListAll(), nil
}

func (l localProperties) Get(name string) (*property.Property, error) {
	p, ok := l.store.Get(name)
	if !ok {
		return nil, fmt.Errorf("property %q not found", name)
	}
	return p, nil
}

func (l localProperties) Compare() ([]property.Comparison, error) {
	return property.Compare(l.store.ListAll()), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
