// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"varsweep/internal/config"
	"varsweep/internal/docfile"
	"varsweep/internal/document"
	"varsweep/internal/issue"
)

// App bundles the dependencies the command handlers share: the config
// provider and the document loader. Commands receive it at construction
// so tests can swap the provider.
type App struct {
	Config config.Provider
}

func newApp() *App {
	return &App{Config: config.NewProvider()}
}

// loadConfig loads the effective configuration, honoring the --config flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// loadDocument resolves the snapshot path from the --doc flag or the
// configuration and parses it into an in-memory document.
func (a *App) loadDocument(ctx context.Context) (*document.Memory, error) {
	path := docFile
	if path == "" {
		cfg, err := a.loadConfig(ctx)
		if err != nil {
			return nil, err
		}
		path = string(cfg.Document)
	}

	if path == "" {
		rendered, _ := issue.Get(issue.SnapshotNotFoundId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return nil, issue.NewErrorContext().
			WithOperation("load document snapshot").
			WithSuggestion("Pass --doc with the snapshot path").
			WithSuggestion("Or set 'document' in the config file").
			Wrap(fmt.Errorf("no document snapshot configured")).
			BuildError()
	}

	logger().Debug("loading document snapshot", "path", path)

	doc, err := docfile.Parse(path)
	if err != nil {
		rendered, _ := issue.Get(issue.SnapshotParseErrorId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return nil, err
	}
	return doc, nil
}

// excludeClonesSetting resolves the clone-exclusion default from config,
// overridden by the per-command flags when set.
func (a *App) excludeClonesSetting(ctx context.Context, excludeSet, includeSet bool) bool {
	if includeSet {
		return false
	}
	if excludeSet {
		return true
	}
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return config.DefaultConfig().ExcludeClones
	}
	return cfg.ExcludeClones
}

// reportWidthSetting resolves the report wrap width from config.
func (a *App) reportWidthSetting(ctx context.Context) int {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return config.DefaultReportWidth
	}
	return cfg.UI.ReportWidth
}
