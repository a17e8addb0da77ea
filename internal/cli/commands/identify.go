package commands

import (
	"context"
	"fmt"
	"strings"

	fsrepo "HeritagePartage/internal/cli/repo/fs"
	"HeritagePartage/internal/config"
)

type identifyCmd struct{}

func (identifyCmd) Name() string        { return "identify" }
func (identifyCmd) Description() string { return "S'identifier par son prénom (liste partagée)" }
func (identifyCmd) Usage() string       { return "identify <prénom>" }

func (identifyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	name := args[0]

	users, err := newClient(cfg).Users()
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			id := fsrepo.Identity{UserID: u.ID, Name: u.Name}
			if err := identityStore(cfg).Save(id); err != nil {
				return err
			}
			fmt.Fprintf(Out, "Identifié comme %s (%s)\n", u.Name, u.Role)
			return nil
		}
	}
	return fmt.Errorf("prénom inconnu: %q, ajoutez-le avec `hpcli user-add`", name)
}

func init() { RegisterCmd(identifyCmd{}) }
