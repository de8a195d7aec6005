package partido

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sample() *Partido {
	return &Partido{
		Teams: Teams{
			Home: Team{ID: 1, Name: "Boca", Logo: "boca.png"},
			Away: Team{ID: 2, Name: "River", Logo: "river.png"},
		},
		Goals: Goals{Home: ptr(1), Away: ptr(2)},
	}
}

func TestPatchApply_OnlyHomeGoals(t *testing.T) {
	p := sample()
	Patch{
		Teams: TeamsPatch{Home: &TeamPatch{}, Away: &TeamPatch{}},
		Goals: &GoalsPatch{Home: ptr(0)},
	}.Apply(p)

	require.Equal(t, "Boca", p.Teams.Home.Name)
	require.Equal(t, "boca.png", p.Teams.Home.Logo)
	require.Equal(t, "River", p.Teams.Away.Name)
	require.Equal(t, "river.png", p.Teams.Away.Logo)
	require.Equal(t, 0, *p.Goals.Home)
	require.Equal(t, 2, *p.Goals.Away)
}

func TestPatchApply_EmptyStringIsExplicit(t *testing.T) {
	p := sample()
	Patch{
		Teams: TeamsPatch{Home: &TeamPatch{Logo: ptr("")}, Away: &TeamPatch{Name: ptr("Racing")}},
		Goals: &GoalsPatch{},
	}.Apply(p)

	require.Equal(t, "", p.Teams.Home.Logo)
	require.Equal(t, "Boca", p.Teams.Home.Name)
	require.Equal(t, "Racing", p.Teams.Away.Name)
	require.Equal(t, 1, *p.Goals.Home)
}

func TestPatchSetFields(t *testing.T) {
	pt := Patch{
		Teams: TeamsPatch{Home: &TeamPatch{Name: ptr("A")}, Away: &TeamPatch{Logo: ptr("b.png")}},
		Goals: &GoalsPatch{Away: ptr(3)},
	}
	require.Equal(t, map[string]any{
		"teams.home.name": "A",
		"teams.away.logo": "b.png",
		"goals.away":      3,
	}, pt.SetFields())
	require.True(t, pt.Complete())

	require.Empty(t, Patch{}.SetFields())
	require.False(t, Patch{Teams: TeamsPatch{Home: &TeamPatch{}, Away: &TeamPatch{}}}.Complete())
}
