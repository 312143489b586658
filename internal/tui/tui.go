// Package tui implements the interactive terminal browser of catalogctl.
package tui

import (
	"context"

	"github.com/MKhiriev/food-catalog/internal/adapter"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.CatalogAdapter
	creds     models.Credentials
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

// New creates a browser backed by catalog. Non-empty creds are checked
// against the server on start so delete is available right away.
func New(catalog adapter.CatalogAdapter, creds models.Credentials, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: catalog, creds: creds, buildInfo: buildInfo, logger: logger}
}

// Browse runs the browser until the user quits or ctx is cancelled.
func (t *TUI) Browse(ctx context.Context, sel models.Selector) error {
	model := newBrowserModel(ctx, t.adapter, t.creds, t.buildInfo, t.logger)
	model.tab = tabIndex(sel)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(browserModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
