package commands

import (
	"context"
	"fmt"
	"strconv"

	"HeritagePartage/internal/config"
)

type preferCmd struct{}

func (preferCmd) Name() string        { return "prefer" }
func (preferCmd) Description() string { return "Exprimer sa préférence sur une fiche" }
func (preferCmd) Usage() string       { return "prefer <fiche> <love|maybe|no>" }

func (preferCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || itemID <= 0 {
		return ErrUsage
	}
	level := args[1]
	if level != "love" && level != "maybe" && level != "no" {
		return ErrUsage
	}
	if _, err := requireIdentity(cfg); err != nil {
		return err
	}
	if _, err := newClient(cfg).SetPreference(itemID, level); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Préférence enregistrée: %s\n", level)
	return nil
}

type commentCmd struct{}

func (commentCmd) Name() string        { return "comment" }
func (commentCmd) Description() string { return "Laisser un commentaire sur une fiche" }
func (commentCmd) Usage() string       { return "comment <fiche> <texte>" }

func (commentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || itemID <= 0 {
		return ErrUsage
	}
	if _, err := requireIdentity(cfg); err != nil {
		return err
	}
	if _, err := newClient(cfg).AddComment(itemID, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Commentaire ajouté")
	return nil
}

func init() {
	RegisterCmd(preferCmd{})
	RegisterCmd(commentCmd{})
}
