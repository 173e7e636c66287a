package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/activity"
	"github.com/heartmarshall/traveleats-backend/internal/app"
	"github.com/heartmarshall/traveleats-backend/internal/client"
	"github.com/heartmarshall/traveleats-backend/internal/config"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/session"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

// shell holds what one command invocation needs.
type shell struct {
	out   io.Writer
	log   *slog.Logger
	api   *client.Client
	store *client.FileStore
	gate  *session.Gate

	presenter *activity.Presenter
}

type command func(ctx context.Context, sh *shell, args []string) error

var commands = map[string]command{
	"register":      cmdRegister,
	"login":         cmdLogin,
	"logout":        cmdLogout,
	"me":            cmdMe,
	"set-username":  updateCommand("set-username", func(u *client.ProfileUpdate, v string) { u.Username = &v }),
	"set-fullname":  updateCommand("set-fullname", func(u *client.ProfileUpdate, v string) { u.FullName = &v }),
	"set-avatar":    updateCommand("set-avatar", func(u *client.ProfileUpdate, v string) { u.AvatarURL = &v }),
	"remove-avatar": cmdRemoveAvatar,
	"meals":         searchCommand(domain.ContentMeal),
	"drinks":        searchCommand(domain.ContentDrink),
	"meal":          detailCommand(domain.ContentMeal),
	"drink":         detailCommand(domain.ContentDrink),
	"activity":      cmdActivity,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usageText)
		return exitUsage
	}
	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s\n", name, usageText)
		return exitUsage
	}

	cfg, err := client.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	logger := app.NewLogger(config.LogConfig{Level: cfg.LogLevel, Format: "text"})
	sh := &shell{
		out:   stdout,
		log:   logger,
		api:   client.New(cfg.APIURL, cfg.Timeout, logger),
		store: client.NewFileStore(cfg.SessionFile),
		gate:  session.NewGate(),
	}

	if name == "activity" {
		sh.presenter = activity.NewPresenter(logger, sh.api)
		sh.presenter.Attach(sh.gate)
		defer sh.presenter.Close()
	}

	if err := sh.restore(); err != nil {
		logger.Warn("saved session ignored", slog.String("error", err.Error()))
	}

	if err := cmd(ctx, sh, rest); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%v\n\n%s\n", err, usageText)
			return exitUsage
		}
		logger.Debug("command failed", slog.String("command", name), slog.String("error", err.Error()))
		fmt.Fprintln(stderr, client.Message(err))
		return exitError
	}
	return exitOK
}

// restore loads the saved session and signs the gate in with it. Every
// session the client obtains afterwards is saved and mirrored on the gate.
func (sh *shell) restore() error {
	sh.api.OnSessionChange(func(s client.Session) {
		if s.IsZero() {
			sh.gate.SignOut()
			if err := sh.store.Clear(); err != nil {
				sh.log.Warn("clear session", slog.String("error", err.Error()))
			}
			return
		}
		if err := sh.store.Save(s); err != nil {
			sh.log.Warn("save session", slog.String("error", err.Error()))
		}
		sh.gate.SignIn(s.UserID)
	})

	sess, err := sh.store.Load()
	if err != nil {
		return err
	}
	if sess.IsZero() {
		return nil
	}
	sh.api.SetSession(sess)
	sh.gate.SignIn(sess.UserID)
	return nil
}

func (sh *shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}

func parseFlags(name string, args []string, define func(fs *flag.FlagSet)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	define(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w: %w", name, errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: %w: unexpected argument %q", name, errUsage, fs.Arg(0))
	}
	return nil
}

func joinArgs(name string, args []string) (string, error) {
	s := strings.TrimSpace(strings.Join(args, " "))
	if s == "" {
		return "", fmt.Errorf("%s: %w: missing argument", name, errUsage)
	}
	return s, nil
}

const usageText = `usage: traveleats <command> [arguments]

commands:
  register -email E -password P -username U -fullname F
  login -email E -password P
  logout
  me
  set-username NAME
  set-fullname NAME
  set-avatar URI       replace the profile picture
  remove-avatar
  meals KEYWORD        search meals
  drinks KEYWORD       search drinks
  meal ID              show a meal
  drink ID             show a drink
  activity             recently viewed meals and drinks`
