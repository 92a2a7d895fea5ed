package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dashboardadapter "github.com/bnema/toll-backoffice/internal/adapters/render/dashboard"
	seedtoml "github.com/bnema/toll-backoffice/internal/adapters/seed/toml"
	"github.com/bnema/toll-backoffice/internal/application"
	"github.com/bnema/toll-backoffice/internal/domain"
	"github.com/bnema/toll-backoffice/internal/ports"
)

const (
	configName  = "config"
	configType  = "toml"
	configDir   = ".toll"
	seedPathKey = "seed.path"
	logLevelKey = "log.level"
	envPrefix   = "TOLL"
)

var errSeedNotSpecified = errors.New("seed file not specified (use --seed or set seed.path in config)")

// app is the composition root shared by every command. The engine is wired
// per invocation: each run loads the seed into a fresh in-memory engine.
type app struct {
	seedPath string
	logLevel string

	cfg               *viper.Viper
	cfgErr            error
	dashboardRenderer func(application.Dashboard, dashboardadapter.RenderOptions) (string, error)
	now               func() time.Time
}

func newApp() *app {
	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(logLevelKey, "warn")

	var cfgErr error
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			cfgErr = fmt.Errorf("read config file: %w", err)
		}
	}

	return &app{
		cfg:               cfg,
		cfgErr:            cfgErr,
		dashboardRenderer: dashboardadapter.Render,
		now:               time.Now,
	}
}

// wireEngine builds a logger and a seeded engine. The returned seed keeps
// the scripted transit entries for `toll simulate`.
func (a *app) wireEngine() (*application.Engine, *seedtoml.Seed, error) {
	if a.cfgErr != nil {
		return nil, nil, a.cfgErr
	}

	log, err := a.newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("wire logger: %w", err)
	}

	path := a.seedPath
	if path == "" {
		path = a.cfg.GetString(seedPathKey)
	}
	if path == "" {
		return nil, nil, errSeedNotSpecified
	}

	engine := application.NewEngine(log, ports.SystemClock{})

	// Stand-in for the push-delivery adapter: system-wide events surface in
	// the log.
	engine.Subscribe(domain.NewObserverFunc(func(event domain.Event) {
		log.Debug("bus event", zap.String("event", string(event)))
	}))

	seed, err := seedtoml.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := seedtoml.Apply(engine, seed); err != nil {
		return nil, nil, fmt.Errorf("apply seed: %w", err)
	}

	return engine, seed, nil
}

func (a *app) newLogger() (*zap.Logger, error) {
	level := a.logLevel
	if level == "" {
		level = a.cfg.GetString(logLevelKey)
	}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
