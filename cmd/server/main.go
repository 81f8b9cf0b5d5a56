// raywizard-server hosts single-player games over SSH. Every connection
// gets its own world; sessions never share state. Build:
//
//	go build -o raywizard-server ./cmd/server
//
// Usage:
//
//	./raywizard-server [--port 2222] [--key host_key] [--save bolt|redis|none]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
//	ssh -t -p 2222 localhost continue   # resume the latest save
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unicode"
	"unicode/utf8"

	"raywizard/internal/config"
	"raywizard/internal/engine"
	"raywizard/internal/game"
	"raywizard/internal/logger"
	"raywizard/internal/savegame"
	internalssh "raywizard/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps user names in logs.
const maxNameBytes = 16

func main() {
	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cmd := &cobra.Command{
		Use:          "raywizard-server",
		Short:        "Host raywizard games over SSH",
		Long:         `raywizard-server accepts SSH connections and runs one single-player game per session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().IntVar(&cfg.SSHPort, "port", cfg.SSHPort, "SSH server port")
	cmd.Flags().StringVar(&cfg.HostKey, "key", cfg.HostKey, "path to the PEM host key (generated if absent)")
	return cmd, nil
}

func runServer(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.HostKey, log)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := savegame.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	h := &host{cfg: cfg, store: store, log: log}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		// No authentication: meant for a private server.
		HostSigners: []gossh.Signer{signer},
	}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.WithFields(logrus.Fields{"port": cfg.SSHPort, "save": cfg.SaveBackend}).Info("raywizard SSH server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	log.Info("server stopped")
	return nil
}

// host holds what every session shares: settings and the save store.
type host struct {
	cfg   config.Config
	store savegame.Store
	log   logrus.FieldLogger
}

// handleSession plays one game on the connection. It blocks for the
// duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	log := h.log.WithFields(logrus.Fields{"user": sanitizeName(s.User()), "remote": s.RemoteAddr().String()})

	if _, _, ok := s.Pty(); !ok {
		fmt.Fprintf(s, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", h.cfg.SSHPort)
		s.Exit(1)
		return
	}
	term := internalssh.TermFromEnv(s.Environ())
	if !internalssh.Allowed(term) {
		fmt.Fprintf(s, "Terminal %q is not supported. Try TERM=xterm-256color.\n", term)
		s.Exit(1)
		return
	}
	screen, err := internalssh.NewScreen(s, term)
	if err != nil {
		log.WithError(err).Warn("screen setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		s.Exit(1)
		return
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	// A disconnect closes the screen, which ends the game as a quit.
	ctx := s.Context()
	go func() {
		<-ctx.Done()
		fini()
	}()

	opts := game.Options{
		Config:   h.cfg,
		Store:    h.store,
		Continue: wantsContinue(s.Command()),
	}
	// the game outlives the connection long enough to save
	runCtx := context.WithoutCancel(ctx)
	g, err := game.New(runCtx, screen, opts, log)
	if err != nil {
		fini()
		log.WithError(err).Error("game setup failed")
		fmt.Fprintf(s, "Game setup failed: %v\n", err)
		s.Exit(1)
		return
	}
	log.Info("session started")
	outcome, err := g.Run(runCtx)
	fini()
	if err != nil {
		log.WithError(err).Error("game ended with an error")
		s.Exit(1)
		return
	}
	log.WithFields(logrus.Fields{"outcome": outcome.String(), "turn": g.World().Turn}).Info("session ended")
	fmt.Fprintln(s, farewell(outcome, g.SavedID, h.cfg.SSHPort))
	s.Exit(0)
}

func wantsContinue(args []string) bool {
	return len(args) > 0 && args[0] == "continue"
}

func farewell(outcome engine.Outcome, savedID string, port int) string {
	switch {
	case outcome == engine.OutcomeWon:
		return "You escaped. Thanks for playing!"
	case outcome == engine.OutcomeDied:
		return "You died. Thanks for playing!"
	case savedID != "":
		return fmt.Sprintf("Game saved. Resume with: ssh -t -p %d <host> continue", port)
	}
	return "Goodbye."
}

// sanitizeName strips control characters from an SSH user name and caps
// it at maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if block, err := xssh.MarshalPrivateKey(key, "raywizard server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.WithError(err).Warn("host key not saved")
		}
	}
	return signer, nil
}
