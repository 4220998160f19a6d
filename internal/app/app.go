package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/typeslots/internal/builtins"
	"github.com/vk/typeslots/internal/config"
	"github.com/vk/typeslots/internal/ctxlog"
	"github.com/vk/typeslots/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *registry.Registry
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. A catalogue that cannot be loaded, built or verified is a
// fatal startup error and panics.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	fsys, root, err := manifestSource(appConfig.ManifestsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	cfgModel, err := loader.Load(ctx, fsys, root)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Catalogue loaded into the unified model.", "types", len(cfgModel.Types))

	us := builtins.Units()
	reg, err := builtins.Build(ctx, cfgModel, us, builtins.BuildOptions{CheckInvariants: appConfig.CheckInvariants})
	if err != nil {
		panic(fmt.Errorf("failed to build registry: %w", err))
	}
	logger.Info("Type registry built.", "types", reg.Len())

	if appConfig.Verify {
		// A mismatch between manifests and units is a programmer error.
		if err := reg.ValidateContributors(ctx, us); err != nil {
			panic(err)
		}
		logger.Debug("Registry validation passed.", "units", us.Len())
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    cfgModel,
		registry: reg,
	}
}

// manifestSource returns the file system and the root path the loader reads
// from. A file path is served from its parent directory.
func manifestSource(path string) (fs.FS, string, error) {
	if path == "" {
		return builtins.Manifests(), builtins.ManifestDir, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if info.IsDir() {
		return os.DirFS(path), ".", nil
	}
	return os.DirFS(filepath.Dir(path)), filepath.Base(path), nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
