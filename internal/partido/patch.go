package partido

// Patch is a partial update of a Partido. A nil pointer leaves the stored
// value untouched; any non-nil value, including "" and 0, overwrites it.
type Patch struct {
	Teams TeamsPatch  `json:"teams"`
	Goals *GoalsPatch `json:"goals" binding:"required"`
}

type TeamsPatch struct {
	Home *TeamPatch `json:"home" binding:"required"`
	Away *TeamPatch `json:"away" binding:"required"`
}

type TeamPatch struct {
	Name *string `json:"name"`
	Logo *string `json:"logo"`
}

type GoalsPatch struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Apply merges the supplied leaf fields into p.
func (pt Patch) Apply(p *Partido) {
	for path, val := range pt.SetFields() {
		switch path {
		case "teams.home.name":
			p.Teams.Home.Name = val.(string)
		case "teams.home.logo":
			p.Teams.Home.Logo = val.(string)
		case "teams.away.name":
			p.Teams.Away.Name = val.(string)
		case "teams.away.logo":
			p.Teams.Away.Logo = val.(string)
		case "goals.home":
			g := val.(int)
			p.Goals.Home = &g
		case "goals.away":
			g := val.(int)
			p.Goals.Away = &g
		}
	}
}

// SetFields returns the supplied leaf fields keyed by their dotted document path.
func (pt Patch) SetFields() map[string]any {
	out := map[string]any{}
	if h := pt.Teams.Home; h != nil {
		setString(out, "teams.home.name", h.Name)
		setString(out, "teams.home.logo", h.Logo)
	}
	if a := pt.Teams.Away; a != nil {
		setString(out, "teams.away.name", a.Name)
		setString(out, "teams.away.logo", a.Logo)
	}
	if g := pt.Goals; g != nil {
		if g.Home != nil {
			out["goals.home"] = *g.Home
		}
		if g.Away != nil {
			out["goals.away"] = *g.Away
		}
	}
	return out
}

// Complete reports whether the fields a client must always send are present.
func (pt Patch) Complete() bool {
	return pt.Teams.Home != nil && pt.Teams.Away != nil && pt.Goals != nil
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
