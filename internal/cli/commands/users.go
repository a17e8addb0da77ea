package commands

import (
	"context"
	"fmt"

	"HeritagePartage/internal/config"
)

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "Lister les membres de la famille" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	users, err := newClient(cfg).Users()
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(Out, "%3d  %-20s %s\n", u.ID, u.Name, u.Role)
	}
	if len(users) == 0 {
		fmt.Fprintln(Out, "Aucun membre pour le moment")
	}
	return nil
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Ajouter un membre (rôle: parent ou enfant)" }
func (userAddCmd) Usage() string       { return "user-add <prénom> <parent|enfant>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	u, err := newClient(cfg).CreateUser(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Créé: %s (%s), id %d\n", u.Name, u.Role, u.ID)
	return nil
}

func init() {
	RegisterCmd(usersCmd{})
	RegisterCmd(userAddCmd{})
}
