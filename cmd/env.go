package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/app"
	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/session"
	"github.com/aiaware/aiaware/internal/store"
)

// env bundles what most commands need: the store, the course and the
// learner's session.
type env struct {
	store   *store.Store
	catalog *catalog.Catalog
	session *session.Session
}

func (e *env) Close() error {
	return e.store.Close()
}

// loadCatalog returns the --catalog course, or the built-in course in the
// --lang language.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cat, err := catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load course: %w", err)
		}
		return cat, nil
	}

	lang, _ := cmd.Flags().GetString("lang")
	tag, err := catalog.ParseLocale(lang)
	if err != nil {
		return nil, err
	}
	cat, got, err := catalog.Seed(tag)
	if err != nil {
		return nil, fmt.Errorf("load built-in course: %w", err)
	}
	want, _ := tag.Base()
	if served, _ := got.Base(); served != want {
		logger.Warn("course not available in the requested language",
			zap.String("lang", lang),
			zap.String("using", got.String()),
			zap.String("available", localeList()))
	}
	logger.Debug("using built-in course", zap.String("lang", got.String()))
	return cat, nil
}

// openStore opens the database named by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("opened store", zap.String("path", dbPath))
	return st, nil
}

// openEnv opens the store, loads the course and resumes the session.
func openEnv(cmd *cobra.Command) (*env, error) {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return nil, err
	}
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	sess, err := session.Open(cmd.Context(), cat, session.Config{
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Logger:    logger,
		Strict:    strict,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return &env{store: st, catalog: cat, session: sess}, nil
}

// newHelper picks the AI helper: the offline demo when asked for (or when
// the mock provider is configured), otherwise the configured LLM. It
// returns an error when no LLM is configured.
func newHelper(cmd *cobra.Command, events store.EventRepo) (app.Helper, error) {
	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		return advisor.NewDemo(advisor.DefaultConfig(), logger), nil
	}

	cfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, fmt.Errorf("%w (or pass --demo to try the offline helper)", err)
	}
	if cfg.Provider == llm.ProviderMock {
		return advisor.NewDemo(advisor.DefaultConfig(), logger), nil
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, events, logger)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	logger.Debug("using LLM", zap.String("provider", cfg.Provider), zap.String("model", provider.ModelID()))
	return advisor.New(provider, advisor.DefaultConfig(), logger), nil
}
