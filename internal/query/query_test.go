package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/hltb/internal/domain"
)

var defaultParams = []string{
	"queryString=",
	"t=games",
	"sorthead=popular",
	"sortd=0",
	"plat=",
	"length_type=main",
	"length_min=",
	"length_max=",
	"v=",
	"f=",
	"g=",
	"detail=",
	"randomize=0",
}

func TestEncode_Defaults(t *testing.T) {
	assert.Equal(t, strings.Join(defaultParams, "&"), Encode(domain.Query{}))
}

func TestEncode_Randomize(t *testing.T) {
	want := append([]string{}, defaultParams[:12]...)
	want = append(want, "randomize=1")

	assert.Equal(t, strings.Join(want, "&"), Encode(domain.Query{Randomize: true}))
}

func TestEncode_FixedOrderAndEscaping(t *testing.T) {
	q := domain.Query{
		Search:      "zelda & link",
		Page:        4,
		LengthType:  domain.LengthCompletionist,
		LengthMin:   "10",
		LengthMax:   "40",
		Platform:    domain.PlatformXbox360,
		SortBy:      domain.SortReleaseDate,
		SortOrder:   domain.SortAscending,
		Perspective: domain.PerspectiveThirdPerson,
		Flow:        domain.FlowMassiveMultiplayer,
		Genre:       domain.GenreHackAndSlash,
		Modifier:    domain.ModifierHideDLC,
	}

	want := "queryString=zelda+%26+link&t=games&sorthead=release&sortd=1&plat=Xbox+360" +
		"&length_type=comp&length_min=10&length_max=40&v=Third-Person&f=Massively+Mutiplayer" +
		"&g=Hack+and+Slash&detail=hide_dlc&randomize=0"
	assert.Equal(t, want, Encode(q))

	// page 不进入表单体。
	assert.NotContains(t, Encode(q), "page=")
}

func TestEncode_Deterministic(t *testing.T) {
	q := domain.Query{Search: "halo", Genre: domain.GenreRolePlaying, Randomize: true}
	assert.Equal(t, Encode(q), Encode(q))
}

func TestParams_Keys(t *testing.T) {
	ps := Params(domain.Query{})
	require.Len(t, ps, 13)

	keys := make([]string, 0, len(ps))
	for _, p := range ps {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{
		"queryString", "t", "sorthead", "sortd", "plat", "length_type",
		"length_min", "length_max", "v", "f", "g", "detail", "randomize",
	}, keys)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(domain.Query{}))
	require.NoError(t, Validate(domain.Query{
		Platform: domain.PlatformPC,
		SortBy:   domain.SortMostSubmitted,
		Genre:    domain.GenreRolePlaying,
		Modifier: domain.ModifierOnlyDLC,
	}))

	bad := []domain.Query{
		{SortBy: "votes"},
		{SortOrder: 2},
		{LengthType: "forever"},
		{Platform: "Dreamcast 2"},
		{Genre: "Cooking"},
		{Perspective: "Fourth-Person"},
		{Flow: "Massively Multiplayer"},
		{Modifier: "dlc_only"},
	}
	for _, q := range bad {
		assert.Error(t, Validate(q), "%+v", q)
	}
}
