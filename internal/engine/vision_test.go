package engine

import (
	"testing"

	"raywizard/internal/gamemap"

	"github.com/stretchr/testify/assert"
)

func TestSharedVision(t *testing.T) {
	w, _ := newArenaWorld(t, 40, 5, 2, 2)
	for y := range 5 {
		w.Level.Map.Set(20, y, gamemap.TileWall)
	}
	scout := spawn(w, KindScout, 30, 2)

	assert.False(t, w.FOV(w.Player, false)[2][32])
	assert.True(t, w.FOV(w.Player, true)[2][32], "the scout shares what it sees")
	assert.False(t, w.FOV(scout, true)[2][2], "the player does not share vision")

	scout.Faction = FactionHostile
	assert.False(t, w.FOV(w.Player, true)[2][32], "only allies share")
}

func TestScoutsShareWithEachOther(t *testing.T) {
	w, _ := newArenaWorld(t, 60, 5, 2, 2)
	for y := range 5 {
		w.Level.Map.Set(20, y, gamemap.TileWall)
		w.Level.Map.Set(40, y, gamemap.TileWall)
	}
	a := spawn(w, KindScout, 30, 2)
	spawn(w, KindScout, 50, 2)

	assert.True(t, w.FOV(w.Player, true)[2][52])
	assert.True(t, w.FOV(a, true)[2][52], "scouts share with each other")
	assert.False(t, w.FOV(a, false)[2][52])
}

func TestEarthVision(t *testing.T) {
	w, _ := newArenaWorld(t, 12, 12, 5, 5)
	m := w.Level.Map
	for y := range m.Height {
		m.Set(6, y, gamemap.TileWall)
		m.Set(7, y, gamemap.TileWall)
	}

	w.Player.Status[StatusEarthVision] = 12
	vis := w.FOV(w.Player, false)
	assert.True(t, vis[5][6], "adjacent rock")
	assert.False(t, vis[5][7], "rock two cells in stays hidden")
	assert.False(t, vis[5][8], "open ground behind the rock stays hidden")
	assert.True(t, vis[5][4], "normal sight still applies")
}

func TestEarthVisionInsideRock(t *testing.T) {
	w, _ := newArenaWorld(t, 12, 6, 3, 2)
	m := w.Level.Map
	for y := range m.Height {
		for x := range m.Width {
			if x > 3 || y < 1 || y > 3 {
				m.Set(x, y, gamemap.TileWall)
			}
		}
	}
	m.Set(9, 2, gamemap.TileFloor)
	w.Player.Status[StatusEarthVision] = 12

	vis := w.FOV(w.Player, false)
	assert.True(t, vis[2][4], "wall next to the bearer")
	assert.False(t, vis[2][5], "rock two cells in")
	assert.False(t, vis[2][8], "deep rock")
	assert.False(t, vis[2][9], "floor beyond deep rock")
}

func TestTargets(t *testing.T) {
	w, _ := newArenaWorld(t, 12, 12, 1, 1)
	h := spawn(w, KindHunter, 5, 5)
	totem := spawn(w, KindTotem, 2, 2)

	assert.Equal(t, []*Actor{h}, w.Targets(w.Player, true))
	assert.Equal(t, []*Actor{w.Player, totem}, w.Targets(h, true), "totems side with the player")
	assert.Equal(t, h, w.nearestTarget(w.Player))
}

func TestPlayerSeesNothingOnceGone(t *testing.T) {
	w, _ := newArenaWorld(t, 12, 12, 1, 1)
	assert.True(t, w.PlayerSees(2, 2))
	w.Level.RemoveActor(w.Player)
	assert.False(t, w.PlayerSees(2, 2))
	assert.False(t, w.PlayerSees(-1, 2))
}
