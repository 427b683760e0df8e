package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/observability"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file. Empty means ~/.cubepop/host_key,
	// generated on first start.
	HostKeyPath string

	// DBPath is the scores database. Empty disables persistence.
	DBPath string

	// IdleTimeout closes connections without input for this long.
	IdleTimeout time.Duration

	// MetricsAddress serves Prometheus metrics when set (e.g., ":9110").
	MetricsAddress string

	TickRate int
	Logger   *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.cubepop/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer serves CubePop to SSH clients through Wish.
type SSHServer struct {
	config     SSHServerConfig
	server     *ssh.Server
	store      *storage.Store
	logger     *log.Logger
	metrics    *observability.Metrics
	metricsSrv *http.Server
}

// NewSSHServer creates a server; call ListenAndServe to start it.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NewLogger(os.Stderr, "info", "cubepop-ssh")
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil
		}
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		logger:  logger,
		metrics: observability.NewMetrics(),
	}

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", srv.metrics.Handler())
		srv.metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".cubepop", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates the per-connection Bubble Tea program.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	user := sess.User()
	model := NewSessionModel(s.store, cfg, func(g registry.Game) {
		s.attach(g, user)
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// attach wires metrics and per-user event logging into a new game.
func (s *SSHServer) attach(g registry.Game, user string) {
	obs, ok := g.(registry.Observable)
	if !ok {
		return
	}
	obs.AddListener(s.metrics)
	obs.AddListener(observability.NewEventLogger(s.logger, "user", user, "game", g.ID()))
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote)
		s.metrics.PlayerConnected()
		defer func() {
			s.metrics.PlayerDisconnected()
			s.logger.Info("session ended", "user", sess.User(), "remote", remote)
		}()
		next(sess)
	}
}

// ListenAndServe runs the SSH server, and the metrics endpoint when
// configured, until ctx is cancelled or a listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting SSH server", "address", s.config.Address)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})

	if s.metricsSrv != nil {
		g.Go(func() error {
			s.logger.Info("serving metrics", "address", s.metricsSrv.Addr)
			if err := s.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down...")
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown stops the servers and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if s.metricsSrv != nil {
		errs = append(errs, s.metricsSrv.Shutdown(ctx))
	}
	errs = append(errs, s.server.Shutdown(ctx))
	if s.store != nil {
		errs = append(errs, s.store.Close())
		s.store = nil
	}
	return errors.Join(errs...)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server's metric collectors.
func (s *SSHServer) Metrics() *observability.Metrics {
	return s.metrics
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives one connection: menu, game and scoreboard.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	onGame   func(registry.Game)
	screen   sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates the top-level model. onGame, when set, is called
// for every game the player starts.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, onGame func(registry.Game)) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		onGame: onGame,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes the message to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, nil
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}
		if m.onGame != nil {
			m.onGame(game)
		}
		m.game = NewModel(game, m.config, ModelOptions{Store: m.store, Embedded: true})
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.menu = NewMenuModel(m.store, m.config)
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.menu = NewMenuModel(m.store, m.config)
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, onGame func(registry.Game)) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, onGame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
