package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alieninvasion/game"
	"alieninvasion/game/mocks"
)

func TestRenderInactiveDrawsPlayButtonLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := newTestGame(t, nil)
	sink := mocks.NewMockRenderSink(ctrl)

	gomock.InOrder(
		sink.EXPECT().Background(g.Settings().BackgroundColor),
		sink.EXPECT().Ship(g.Ship().Bounds()),
		sink.EXPECT().Alien(gomock.Any()).Times(36),
		sink.EXPECT().Scoreboard(g.Scoreboard()),
		sink.EXPECT().PlayButton(g.PlayButton()),
	)

	g.Render(sink)
}

func TestRenderActiveOmitsPlayButton(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := newTestGame(t, nil)
	clickPlay(t, g)
	require.NoError(t, g.Tick(game.Input{Fire: true}))
	require.Equal(t, 1, g.BulletCount())

	var bullet *game.Bullet
	for b := range g.Bullets() {
		bullet = b
	}

	sink := mocks.NewMockRenderSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Background(gomock.Any()),
		sink.EXPECT().Ship(g.Ship().Bounds()),
		sink.EXPECT().Bullet(bullet.Bounds(), g.Settings().BulletColor),
		sink.EXPECT().Alien(gomock.Any()).Times(36),
		sink.EXPECT().Scoreboard(g.Scoreboard()),
	)

	g.Render(sink)
}
