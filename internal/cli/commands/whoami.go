package commands

import (
	"context"
	"fmt"

	"HeritagePartage/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Afficher l'identité en cours" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	id, err := requireIdentity(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s (id %d)\n", id.Name, id.UserID)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Oublier l'identité stockée" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := identityStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Identité oubliée")
	return nil
}

func init() {
	RegisterCmd(whoamiCmd{})
	RegisterCmd(logoutCmd{})
}
