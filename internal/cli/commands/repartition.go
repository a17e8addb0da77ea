package commands

import (
	"context"
	"fmt"

	"HeritagePartage/internal/config"
)

type repartitionCmd struct{}

func (repartitionCmd) Name() string        { return "repartition" }
func (repartitionCmd) Description() string { return "Vue de répartition par membre" }
func (repartitionCmd) Usage() string       { return "repartition" }

func (repartitionCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	stats, err := newClient(cfg).Repartition()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(Out, "Aucun choix enregistré")
		return nil
	}
	for _, st := range stats {
		fmt.Fprintf(Out, "%-20s %d objet(s), %.2f €", st.UserName, st.ItemCount, st.TotalValue)
		if st.ItemsWithValue < st.ItemCount {
			fmt.Fprintf(Out, " (%d valorisé(s))", st.ItemsWithValue)
		}
		if st.MaybeCount > 0 {
			fmt.Fprintf(Out, "  peut-être: %d (%.2f €)", st.MaybeCount, st.MaybeValue)
		}
		fmt.Fprintln(Out)
	}
	return nil
}

func init() { RegisterCmd(repartitionCmd{}) }
