package service

import (
	"context"
	"errors"
	"testing"

	"HeritagePartage/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceService_SetAnnouncesEachChangeOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	marie := env.mkUser(t, "Marie", model.RoleParent)
	it := env.mkItem(t, marie.ID)

	p, err := env.prefs.Set(ctx, marie.ID, it.ID, model.LevelMaybe)
	assert.NoError(t, err)
	assert.Equal(t, model.LevelMaybe, p.Level)

	comments, err := env.commentRepo.ListByItem(ctx, it.ID)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "Marie est peut-être intéressé(e)", comments[0].Text)

	// same level again: no new row, no new comment
	_, err = env.prefs.Set(ctx, marie.ID, it.ID, model.LevelMaybe)
	assert.NoError(t, err)
	comments, _ = env.commentRepo.ListByItem(ctx, it.ID)
	assert.Len(t, comments, 1)

	// a real change upserts in place and announces once
	p, err = env.prefs.Set(ctx, marie.ID, it.ID, model.LevelLove)
	assert.NoError(t, err)
	assert.Equal(t, model.LevelLove, p.Level)
	comments, _ = env.commentRepo.ListByItem(ctx, it.ID)
	assert.Len(t, comments, 2)
	assert.Equal(t, "Marie a un coup de cœur !", comments[1].Text)

	all, err := env.prefs.ListForItem(ctx, it.ID)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPreferenceService_SetValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	marie := env.mkUser(t, "Marie", model.RoleParent)
	it := env.mkItem(t, marie.ID)

	_, err := env.prefs.Set(ctx, 42, it.ID, model.LevelLove)
	assert.True(t, errors.Is(err, ErrUnauthenticated))

	_, err = env.prefs.Set(ctx, marie.ID, it.ID, "adore")
	assert.True(t, IsValidation(err))

	_, err = env.prefs.Set(ctx, marie.ID, 999, model.LevelLove)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPreferenceService_GetMineAbsentIsNotAnError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	marie := env.mkUser(t, "Marie", model.RoleParent)
	it := env.mkItem(t, marie.ID)

	p, err := env.prefs.GetMine(ctx, marie.ID, it.ID)
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = env.prefs.Set(ctx, marie.ID, it.ID, model.LevelNo)
	assert.NoError(t, err)
	p, err = env.prefs.GetMine(ctx, marie.ID, it.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.LevelNo, p.Level)
}

func TestPreferenceService_Repartition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	marie := env.mkUser(t, "Marie", model.RoleParent)
	jean := env.mkUser(t, "Jean", model.RoleParent)
	sophie := env.mkUser(t, "Sophie", model.RoleEnfant)

	clock := env.mkItem(t, marie.ID)
	dresser := env.mkItem(t, marie.ID)
	mirror := env.mkItem(t, jean.ID)

	_, err := env.items.Update(ctx, marie.ID, clock.ID, ItemUpdate{Value: decp(300)})
	assert.NoError(t, err)
	_, err = env.items.Update(ctx, marie.ID, dresser.ID, ItemUpdate{Value: decp(150)})
	assert.NoError(t, err)
	// mirror stays without an estimate

	mustSet := func(uid, itemID int64, level string) {
		t.Helper()
		_, err := env.prefs.Set(ctx, uid, itemID, level)
		assert.NoError(t, err)
	}
	mustSet(marie.ID, clock.ID, model.LevelLove)
	mustSet(marie.ID, mirror.ID, model.LevelLove)
	mustSet(jean.ID, dresser.ID, model.LevelLove)
	mustSet(jean.ID, clock.ID, model.LevelMaybe)
	mustSet(sophie.ID, mirror.ID, model.LevelNo)

	stats, err := env.prefs.Repartition(ctx)
	assert.NoError(t, err)
	// Sophie only said no: she does not appear
	assert.Len(t, stats, 2)

	// Marie leads: 300 vs Jean's 150
	assert.Equal(t, "Marie", stats[0].UserName)
	assert.Equal(t, 2, stats[0].ItemCount)
	assert.Equal(t, 1, stats[0].ItemsWithValue)
	assert.True(t, stats[0].TotalValue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 0, stats[0].MaybeCount)

	assert.Equal(t, "Jean", stats[1].UserName)
	assert.Equal(t, 1, stats[1].ItemCount)
	assert.True(t, stats[1].TotalValue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 1, stats[1].MaybeCount)
	assert.Equal(t, 1, stats[1].MaybeWithValue)
	assert.True(t, stats[1].MaybeValue.Equal(decimal.NewFromInt(300)))
}

func TestPreferenceService_RepartitionTieBreaksOnName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	zoe := env.mkUser(t, "Zoé", model.RoleEnfant)
	anne := env.mkUser(t, "anne", model.RoleParent)
	it := env.mkItem(t, zoe.ID)

	_, err := env.prefs.Set(ctx, zoe.ID, it.ID, model.LevelLove)
	assert.NoError(t, err)
	other := env.mkItem(t, zoe.ID)
	_, err = env.prefs.Set(ctx, anne.ID, other.ID, model.LevelLove)
	assert.NoError(t, err)

	stats, err := env.prefs.Repartition(ctx)
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	// equal totals: case-insensitive name order decides
	assert.Equal(t, "anne", stats[0].UserName)
	assert.Equal(t, "Zoé", stats[1].UserName)
}
