package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/food-catalog/internal/adapter"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
var statusTTL = 3 * time.Second

var tabs = []models.Selector{models.SelectorAll, models.SelectorFruit, models.SelectorVegetable}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func tabIndex(sel models.Selector) int {
	for i, s := range tabs {
		if s == sel {
			return i
		}
	}
	return 0
}

type browserModel struct {
	ctx       context.Context
	adapter   adapter.CatalogAdapter
	logger    *logger.Logger
	buildInfo models.BuildInfo

	creds   models.Credentials
	session models.Session

	tab     int
	view    models.CatalogView
	idx     int
	loading bool
	spinner spinner.Model

	detail        bool
	confirmDelete bool
	loggingIn     bool
	login         loginFormModel
	showBuildInfo bool
	serverVersion string

	status string
	errMsg string
}

func newBrowserModel(ctx context.Context, catalog adapter.CatalogAdapter, creds models.Credentials, buildInfo models.BuildInfo, log *logger.Logger) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:       ctx,
		adapter:   catalog,
		logger:    log,
		buildInfo: buildInfo,
		creds:     creds,
		session:   models.Anonymous(),
		loading:   true,
		spinner:   s,
	}
}

func (m browserModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.cmdLoad(), m.cmdVersion()}
	if m.creds.Email != "" {
		cmds = append(cmds, m.cmdLogin(m.creds))
	}
	return tea.Batch(cmds...)
}

func (m browserModel) selector() models.Selector {
	return tabs[m.tab]
}

func (m browserModel) current() (models.ClassifiedItem, bool) {
	if len(m.view.Items) == 0 || m.idx < 0 || m.idx >= len(m.view.Items) {
		return models.ClassifiedItem{}, false
	}
	return m.view.Items[m.idx], true
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case versionMsg:
		m.serverVersion = string(msg)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case viewLoadedMsg:
		return m.onViewLoaded(msg)
	case itemDeletedMsg:
		return m.onItemDeleted(msg)
	case sessionMsg:
		return m.onSession(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.loggingIn {
			var cmd tea.Cmd
			m.login, cmd = m.login.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch {
	case m.loggingIn:
		return m.updateLogin(keyMsg)
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.confirmDelete:
		return m.updateConfirmDelete(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.login):
		if m.session.Privileged {
			return m, m.cmdLogout()
		}
		m.loggingIn = true
		m.login = newLoginFormModel(m.creds.Email)
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		return m.reload()
	case key.Matches(keyMsg, keys.copy):
		return m.copyID()
	case key.Matches(keyMsg, keys.delete):
		return m.askDelete()
	}

	if m.detail {
		if key.Matches(keyMsg, keys.esc) {
			m.detail = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.view.Items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.right, keys.tab):
		m.tab = (m.tab + 1) % len(tabs)
		return m.reload()
	case key.Matches(keyMsg, keys.left, keys.backtab):
		m.tab = (m.tab + len(tabs) - 1) % len(tabs)
		return m.reload()
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			return m.setStatus("No items")
		}
		m.detail = true
	}

	return m, nil
}

func (m browserModel) onViewLoaded(msg viewLoadedMsg) (tea.Model, tea.Cmd) {
	// a response for a tab the user already left
	if msg.selector != m.selector() {
		return m, nil
	}

	m.loading = false
	m.view = msg.view
	m.errMsg = ""
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Str("func", "browserModel.onViewLoaded").Msg("catalog load failed")
		m.errMsg = humanizeError(msg.err)
	}

	if m.idx >= len(m.view.Items) {
		m.idx = len(m.view.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	if len(m.view.Items) == 0 {
		m.detail = false
	}
	return m, nil
}

func (m browserModel) onItemDeleted(msg itemDeletedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.detail = false
		m.status = "Deleted " + msg.item.Name
	case errors.Is(msg.err, adapter.ErrNotFound):
		m.detail = false
		m.status = "Already deleted"
	case errors.Is(msg.err, adapter.ErrUnauthorized):
		m.session = models.Anonymous()
		m.errMsg = humanizeError(msg.err)
		return m, nil
	default:
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), clearStatusAfter(statusTTL))
}

func (m browserModel) onSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	if msg.logout {
		m.creds = models.Credentials{}
		m.session = models.Anonymous()
		m.detail = false
		return m.setStatus("Signed out")
	}

	if msg.err != nil {
		m.session = models.Anonymous()
		if m.loggingIn {
			m.login.submitting = false
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.creds = models.Credentials{}
		m.errMsg = "Stored credentials rejected: " + humanizeError(msg.err)
		return m, nil
	}

	m.creds = msg.creds
	m.session = msg.session
	m.loggingIn = false
	return m.setStatus("Signed in as " + msg.session.Email)
}

func (m browserModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.loggingIn = false
		return m, nil
	case key.Matches(msg, keys.tab):
		m.login.nextField(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login.nextField(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		creds := m.login.credentials()
		if creds.Email == "" || creds.Password == "" {
			m.login.errMsg = "email and password are required"
			return m, nil
		}
		m.login.submitting = true
		m.login.errMsg = ""
		return m, m.cmdLogin(creds)
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m browserModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(item)
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m browserModel) askDelete() (tea.Model, tea.Cmd) {
	if !m.session.Privileged {
		return m.setStatus("Sign in (l) to delete items")
	}
	if _, ok := m.current(); !ok {
		return m.setStatus("No items")
	}
	m.confirmDelete = true
	return m, nil
}

func (m browserModel) copyID() (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m.setStatus("Nothing to copy")
	}
	if err := writeClipboard(item.ID); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	return m.setStatus("Copied id of " + item.Name)
}

func (m browserModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.detail = false
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m browserModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, clearStatusAfter(statusTTL)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browserModel) cmdLoad() tea.Cmd {
	ctx, catalog, sel := m.ctx, m.adapter, m.selector()

	return func() tea.Msg {
		view, err := catalog.Browse(ctx, sel)
		return viewLoadedMsg{selector: sel, view: view, err: err}
	}
}

func (m browserModel) cmdVersion() tea.Cmd {
	ctx, catalog := m.ctx, m.adapter

	return func() tea.Msg {
		version, err := catalog.Version(ctx)
		if err != nil {
			return versionMsg("")
		}
		return versionMsg(version)
	}
}

func (m browserModel) cmdDelete(item models.ClassifiedItem) tea.Cmd {
	ctx, catalog, creds := m.ctx, m.adapter, m.creds

	return func() tea.Msg {
		err := catalog.Delete(ctx, creds, item.ID)
		return itemDeletedMsg{item: item, err: err}
	}
}

func (m browserModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, catalog := m.ctx, m.adapter

	return func() tea.Msg {
		session, err := catalog.Login(ctx, creds)
		return sessionMsg{creds: creds, session: session, err: err}
	}
}

func (m browserModel) cmdLogout() tea.Cmd {
	ctx, catalog := m.ctx, m.adapter

	return func() tea.Msg {
		session, err := catalog.Logout(ctx)
		return sessionMsg{session: session, logout: true, err: err}
	}
}

func (m browserModel) View() string {
	switch {
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	case m.loggingIn:
		return appStyle.Render(m.login.View())
	}

	if m.detail {
		if item, ok := m.current(); ok {
			out := renderDetail(item, m.session.Privileged)
			if m.confirmDelete {
				out += "\n\n" + overlayBoxStyle.Render("Delete "+item.Name+"? y / n")
			}
			return appStyle.Render(out)
		}
	}

	return appStyle.Render(m.viewList())
}

func (m browserModel) viewTabs() string {
	parts := make([]string, 0, len(tabs))
	for i, sel := range tabs {
		label := fmt.Sprintf("%s %d", selectorLabel(sel), selectorCount(sel, m.view.Counts))
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "│")
}

func (m browserModel) viewList() string {
	var b strings.Builder

	who := "anonymous"
	if m.session.Privileged {
		who = m.session.Email + " (privileged)"
	}
	b.WriteString("Session: " + who + "\n")
	b.WriteString(m.viewTabs() + "\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.view.Items) == 0:
		b.WriteString("No items\n")
	default:
		b.WriteString("  Name                     │ Kind       │ Calories\n")
		b.WriteString("──────────────────────────┼────────────┼─────────────\n")
		for i, item := range m.view.Items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-24s │ %-10s │ %s\n",
				cursor,
				fitText(item.Name, 24),
				item.Kind,
				calorieLabel(item.Calorie),
			)
		}
	}

	hotKeys := "←/→: category │ ↑/↓: nav. │ enter: open │ r: refresh │ c: copy id │ v: about"
	if m.session.Privileged {
		hotKeys += " │ d: delete │ l: sign out"
	} else {
		hotKeys += " │ l: sign in"
	}
	if m.confirmDelete {
		if item, ok := m.current(); ok {
			b.WriteString("\n" + overlayBoxStyle.Render("Delete "+item.Name+"? y / n") + "\n")
		}
	}

	return renderPage("FOOD CATALOG", strings.TrimRight(b.String(), "\n"), hotKeys)
}
