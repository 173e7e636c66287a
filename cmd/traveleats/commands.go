package main

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/client"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

var errActivityUnavailable = errors.New("activity could not be loaded")

func cmdRegister(ctx context.Context, sh *shell, args []string) error {
	var req client.RegisterRequest
	err := parseFlags("register", args, func(fs *flag.FlagSet) {
		fs.StringVar(&req.Email, "email", "", "email address")
		fs.StringVar(&req.Password, "password", "", "password, at least 8 characters")
		fs.StringVar(&req.Username, "username", "", "username")
		fs.StringVar(&req.FullName, "fullname", "", "full name")
	})
	if err != nil {
		return err
	}

	p, err := sh.api.Register(ctx, req)
	if err != nil {
		return err
	}
	sh.printf("Welcome, %s! You are signed in as %s.\n", p.FullName, p.Email)
	return nil
}

func cmdLogin(ctx context.Context, sh *shell, args []string) error {
	var email, password string
	err := parseFlags("login", args, func(fs *flag.FlagSet) {
		fs.StringVar(&email, "email", "", "email address")
		fs.StringVar(&password, "password", "", "password")
	})
	if err != nil {
		return err
	}

	p, err := sh.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	sh.printf("Signed in as %s.\n", p.Email)
	return nil
}

func cmdLogout(ctx context.Context, sh *shell, _ []string) error {
	if err := sh.api.Logout(ctx); err != nil {
		return err
	}
	sh.printf("Signed out.\n")
	return nil
}

func cmdMe(ctx context.Context, sh *shell, _ []string) error {
	p, err := sh.api.Me(ctx)
	if err != nil {
		return err
	}
	printProfile(sh, p)
	return nil
}

// updateCommand sends one profile field taken from the joined arguments.
func updateCommand(name string, set func(u *client.ProfileUpdate, v string)) command {
	return func(ctx context.Context, sh *shell, args []string) error {
		v, err := joinArgs(name, args)
		if err != nil {
			return err
		}

		var u client.ProfileUpdate
		set(&u, v)
		return sh.updateProfile(ctx, u)
	}
}

func cmdRemoveAvatar(ctx context.Context, sh *shell, _ []string) error {
	empty := ""
	return sh.updateProfile(ctx, client.ProfileUpdate{AvatarURL: &empty})
}

func (sh *shell) updateProfile(ctx context.Context, u client.ProfileUpdate) error {
	p, err := sh.api.UpdateProfile(ctx, u)
	if err != nil {
		return err
	}
	printProfile(sh, p)
	return nil
}

func printProfile(sh *shell, p *client.Profile) {
	sh.printf("Name:     %s\n", p.FullName)
	sh.printf("Username: %s\n", p.Username)
	sh.printf("Email:    %s\n", p.Email)
	if p.AvatarURL != nil {
		sh.printf("Avatar:   %s\n", *p.AvatarURL)
	}
}

func searchCommand(kind domain.ContentKind) command {
	return func(ctx context.Context, sh *shell, args []string) error {
		keyword, err := joinArgs(string(kind)+"s", args)
		if err != nil {
			return err
		}

		results, err := sh.api.Search(ctx, kind, keyword)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			sh.printf("No %ss found for %q.\n", kind, keyword)
			return nil
		}
		for _, r := range results {
			if r.Category != "" {
				sh.printf("%-8s %s (%s)\n", r.ID, r.Name, r.Category)
			} else {
				sh.printf("%-8s %s\n", r.ID, r.Name)
			}
		}
		return nil
	}
}

func detailCommand(kind domain.ContentKind) command {
	return func(ctx context.Context, sh *shell, args []string) error {
		id, err := joinArgs(string(kind), args)
		if err != nil {
			return err
		}

		item, err := sh.api.Detail(ctx, kind, id)
		if err != nil {
			return err
		}

		sh.printf("%s\n", item.Name)
		if item.Category != "" {
			sh.printf("Category: %s\n", item.Category)
		}
		if item.Area != "" {
			sh.printf("Area:     %s\n", item.Area)
		}
		if item.Glass != "" {
			sh.printf("Glass:    %s\n", item.Glass)
		}
		if len(item.Tags) > 0 {
			sh.printf("Tags:     %s\n", strings.Join(item.Tags, ", "))
		}
		if item.Instructions != "" {
			sh.printf("\n%s\n", item.Instructions)
		}
		return nil
	}
}

// cmdActivity shows the history loaded by the presenter when the restored
// session signed the gate in.
func cmdActivity(_ context.Context, sh *shell, _ []string) error {
	if !sh.gate.Current().IsAuthenticated() {
		return client.ErrSignedOut
	}

	sh.presenter.Wait()
	st := sh.presenter.Snapshot()
	if !st.Loaded {
		return errActivityUnavailable
	}

	if st.View.Empty {
		sh.printf("%s\n", st.View.Placeholder)
		return nil
	}
	for _, row := range st.View.Rows {
		sh.printf("%s  %s\n", row.Label, row.Subtitle)
	}
	return nil
}
