package commands

import (
	"errors"

	"HeritagePartage/internal/cli/api"
	fsrepo "HeritagePartage/internal/cli/repo/fs"
	"HeritagePartage/internal/config"
)

// identityStore builds the fs store from config.
func identityStore(cfg *config.Config) fsrepo.IdentityFSStore {
	return fsrepo.IdentityFSStore{Path: cfg.IdentityFile}
}

// newClient builds an API client carrying the stored identity, when any.
func newClient(cfg *config.Config) *api.Client {
	var userID int64
	if id, err := identityStore(cfg).Load(); err == nil {
		userID = id.UserID
	}
	return api.New(cfg.ServerURL, userID)
}

// requireIdentity loads the stored identity or explains how to get one.
func requireIdentity(cfg *config.Config) (fsrepo.Identity, error) {
	id, err := identityStore(cfg).Load()
	if err != nil {
		return fsrepo.Identity{}, errors.New("aucune identité: lancez d'abord `hpcli identify <prénom>`")
	}
	return id, nil
}
