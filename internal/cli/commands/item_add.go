package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"HeritagePartage/internal/cli/imaging"
	"HeritagePartage/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Créer une fiche par image (plusieurs images = plusieurs fiches)"
}
func (itemAddCmd) Usage() string { return "item-add <image> [<image>...]" }

// Run uploads sequentially, one file at a time: a later failure neither
// blocks nor rolls back earlier fiches; partial success is reported.
func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	if _, err := requireIdentity(cfg); err != nil {
		return err
	}
	client := newClient(cfg)

	created := 0
	for _, path := range args {
		dataURL, err := loadAndCompress(path)
		if err != nil {
			fmt.Fprintf(Out, "× %s: %v\n", path, err)
			continue
		}
		it, err := client.CreateItem(dataURL)
		if err != nil {
			fmt.Fprintf(Out, "× %s: %v\n", path, err)
			continue
		}
		created++
		fmt.Fprintf(Out, "✓ %s → fiche n°%d\n", path, it.Number)
	}
	fmt.Fprintf(Out, "%d/%d fiche(s) créée(s)\n", created, len(args))
	return nil
}

// loadAndCompress reads the file and downscales it before upload.
func loadAndCompress(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	compressed, err := imaging.Downscale(raw, imaging.MaxEdge, imaging.JPEGQuality)
	if err != nil {
		return "", err
	}
	return imaging.DataURL(compressed), nil
}

type photoAddCmd struct{}

func (photoAddCmd) Name() string        { return "photo-add" }
func (photoAddCmd) Description() string { return "Ajouter une photo à une fiche existante" }
func (photoAddCmd) Usage() string       { return "photo-add <fiche> <image>" }

func (photoAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	dataURL, err := loadAndCompress(args[1])
	if err != nil {
		return err
	}
	p, err := newClient(cfg).AddPhoto(itemID, dataURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Photo ajoutée en position %d\n", p.Position)
	return nil
}

func init() {
	RegisterCmd(itemAddCmd{})
	RegisterCmd(photoAddCmd{})
}
