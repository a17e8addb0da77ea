package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"HeritagePartage/internal/cli/api"
	"HeritagePartage/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Lister les fiches (filtres: deleted, my-love, user-love, user-preferences, conflicts, to-review)"
}
func (itemsCmd) Usage() string { return "items [--filter=...] [--user=N] [--no-deleted]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	filter := fs.String("filter", "", "filtre serveur")
	user := fs.Int64("user", 0, "membre visé par user-love/user-preferences")
	noDeleted := fs.Bool("no-deleted", false, "exclure les fiches supprimées")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	items, err := newClient(cfg).Items(*filter, *user, !*noDeleted)
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Fprintln(Out, formatItemLine(&it))
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "Aucune fiche")
	}
	return nil
}

func formatItemLine(it *api.Item) string {
	title := "(sans titre)"
	if it.Title != nil {
		title = *it.Title
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "n°%-4d %-30s %d photo(s)", it.Number, title, len(it.Photos))
	if it.Value != nil {
		fmt.Fprintf(&sb, "  %.2f €", *it.Value)
	}
	if it.DeletedAt != nil {
		sb.WriteString("  [supprimée")
		if it.DeletedByName != nil {
			sb.WriteString(" par " + *it.DeletedByName)
		}
		sb.WriteString("]")
	}
	if it.LoveCount >= 2 {
		fmt.Fprintf(&sb, "  conflit: %s", strings.Join(it.Lovers, ", "))
	}
	if it.UserPreference != nil {
		fmt.Fprintf(&sb, "  préférence: %s", *it.UserPreference)
	}
	return sb.String()
}

type itemShowCmd struct{}

func (itemShowCmd) Name() string        { return "item" }
func (itemShowCmd) Description() string { return "Afficher une fiche avec ses commentaires" }
func (itemShowCmd) Usage() string       { return "item <id>" }

func (itemShowCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return ErrUsage
	}
	client := newClient(cfg)
	it, err := client.Item(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, formatItemLine(it))
	if it.Description != nil {
		fmt.Fprintf(Out, "  %s\n", *it.Description)
	}

	comments, err := client.Comments(id)
	if err != nil {
		return err
	}
	if len(comments) > 0 {
		fmt.Fprintln(Out, "Commentaires:")
		for _, c := range comments {
			fmt.Fprintf(Out, "  [%s] %s\n", c.User.Name, c.Text)
		}
	}
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemShowCmd{})
}
