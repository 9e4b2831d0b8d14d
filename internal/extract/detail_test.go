package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/hltb/internal/domain"
)

func TestDetail_Bayonetta(t *testing.T) {
	d, err := Extractor{}.Detail(readFixture(t, "detail_bayonetta.html"))
	require.NoError(t, err)

	assert.Equal(t, 966, d.ID)
	assert.Equal(t, "Bayonetta", d.Name)
	assert.Equal(t, "Bayonetta is an action game set in a city in Europe, where the titular character, a witch, battles angels.", d.Description)
	assert.Equal(t, "https://howlongtobeat.com/games/Bayonetta_Coverart.png", d.ImageURL)

	assert.Contains(t, d.Platforms, "Nintendo Switch")
	assert.Len(t, d.Platforms, 7)
	assert.ElementsMatch(t, []string{"Hack and Slash", "Action"}, d.Genres)
	assert.Equal(t, []string{"PlatinumGames"}, d.Developers)
	assert.Equal(t, []string{"SEGA, Nintendo"}, d.Publishers, "发行商保留原文")
	assert.Equal(t, map[domain.Region]string{
		domain.RegionNA: "January 5th, 2010",
		domain.RegionEU: "January 8th, 2010",
		domain.RegionJP: "October 29th, 2009",
	}, d.ReleaseDates)
}

func TestDetail_BayonettaStats(t *testing.T) {
	d, err := Extractor{}.Detail(readFixture(t, "detail_bayonetta.html"))
	require.NoError(t, err)

	playing, ok := d.Stats.Count("playing")
	assert.True(t, ok)
	assert.Equal(t, "1.2K", playing)
	beat, _ := d.Stats.Count("beat")
	assert.Equal(t, "9.8K", beat)

	require.NotNil(t, d.Stats.Retired)
	require.NotNil(t, d.Stats.Rating)
	assert.InDelta(t, 0.03, *d.Stats.Retired, 1e-9)
	assert.InDelta(t, 0.86, *d.Stats.Rating, 1e-9)
}

func TestDetail_BayonettaTables(t *testing.T) {
	d, err := Extractor{}.Detail(readFixture(t, "detail_bayonetta.html"))
	require.NoError(t, err)
	g := d.Gameplays

	assert.Equal(t, []domain.TableKind{domain.TableSingle, domain.TableSpeedrun, domain.TablePlatforms}, g.Kinds(),
		"Completions 表不被识别")

	require.Len(t, g.Single, 4)
	require.NotNil(t, g.Single[0].Type)
	assert.Equal(t, "Main Story", *g.Single[0].Type)
	require.NotNil(t, g.Single[0].Average)
	assert.Equal(t, "11h 47m", *g.Single[0].Average)

	require.Len(t, g.Platforms, 8)
	assert.Equal(t, "Xbox 360", *g.Platforms[7].Platform)
	assert.Equal(t, "16h 42m", *g.Platforms[1].Extended)
	assert.Nil(t, g.Platforms[6].Extended, "占位符 -- 不出现")
	assert.Nil(t, g.Platforms[6].Completionist)

	require.Len(t, g.Speedrun, 2)
	assert.Equal(t, "100%", *g.Speedrun[1].Type)
	assert.Nil(t, g.Speedrun[1].Polled)
	assert.Nil(t, g.Speedrun[1].Fastest)
}

func TestDetail_EldenRingUnreleased(t *testing.T) {
	d, err := Extractor{}.Detail(readFixture(t, "detail_elden_ring.html"))
	require.NoError(t, err)

	assert.Equal(t, 68151, d.ID)
	assert.Equal(t, "Elden Ring", d.Name)
	assert.Empty(t, d.ImageURL)
	assert.Contains(t, d.Platforms, "PlayStation 5")
	assert.Subset(t, d.Genres, []string{"Third-Person", "Action"})
	assert.Equal(t, []string{"From Software"}, d.Developers)
	assert.Equal(t, []string{"Bandai Namco Entertainment"}, d.Publishers)

	assert.Nil(t, d.Gameplays.Single)
	assert.Empty(t, d.Gameplays.Kinds())
	assert.Nil(t, d.ReleaseDates, "空日期不记录")

	require.NotNil(t, d.Stats.Retired)
	assert.Zero(t, *d.Stats.Retired)
	assert.Nil(t, d.Stats.Rating)
}

func TestDetail_NoDocument(t *testing.T) {
	for _, html := range []string{"", "   \n", "<html><head><title>x</title></head><body></body></html>"} {
		_, err := Extractor{}.Detail(html)
		require.Error(t, err, "html=%q", html)

		var pe *ParseError
		assert.True(t, errors.As(err, &pe), "html=%q", html)
		assert.ErrorIs(t, err, ErrNoDocument, "html=%q", html)
	}
}

func TestDetail_SkeletonDegrades(t *testing.T) {
	d, err := Extractor{}.Detail(`<div id="global_site"><p>maintenance</p></div>`)
	require.NoError(t, err)

	assert.Zero(t, d.ID)
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Description)
	assert.Nil(t, d.Platforms)
	assert.Nil(t, d.Stats.Counts)
	assert.Empty(t, d.Gameplays.Kinds())
}

func TestDetail_JSONShape(t *testing.T) {
	d, err := Extractor{}.Detail(readFixture(t, "detail_bayonetta.html"))
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	stats, ok := m["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.2K", stats["playing"])
	assert.InDelta(t, 0.86, stats["rating"], 1e-9)

	gp, ok := m["gameplays"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, gp, "single")
	assert.NotContains(t, gp, "dlc")
}
