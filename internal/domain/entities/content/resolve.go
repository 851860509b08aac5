package content

// ResolvedTeamMember is the id-joined view of a global team member image and
// the matching language text. Resolved is false when the language has no
// entry for the id; the text fields are then empty.
type ResolvedTeamMember struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Resolved bool   `json:"resolved"`
}

// ResolvedService is a language service entry joined with its global icon.
type ResolvedService struct {
	Key         string `json:"key"`
	IconKey     string `json:"iconKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResolvedCoreValue is a language core value joined with its global icon.
type ResolvedCoreValue struct {
	Key         string `json:"key"`
	IconKey     string `json:"iconKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Join walks primary in order and pairs every element with the first element
// of secondary that shares its key. merge receives nil when nothing matches.
func Join[P, S any, K comparable, R any](primary []P, secondary []S, primaryKey func(P) K, secondaryKey func(S) K, merge func(P, *S) R) []R {
	index := make(map[K]int, len(secondary))
	for i := len(secondary) - 1; i >= 0; i-- {
		index[secondaryKey(secondary[i])] = i
	}

	out := make([]R, 0, len(primary))
	for _, p := range primary {
		var match *S
		if i, ok := index[primaryKey(p)]; ok {
			match = &secondary[i]
		}
		out = append(out, merge(p, match))
	}
	return out
}

// ResolveTeamMembers resolves team members in global order.
func ResolveTeamMembers(global []TeamMemberImage, text []TeamMemberText) []ResolvedTeamMember {
	return Join(global, text,
		func(g TeamMemberImage) int64 { return g.ID },
		func(t TeamMemberText) int64 { return t.ID },
		func(g TeamMemberImage, t *TeamMemberText) ResolvedTeamMember {
			member := ResolvedTeamMember{ID: g.ID, ImageURL: g.ImageURL}
			if t != nil {
				member.Name = t.Name
				member.Title = t.Title
				member.Bio = t.Bio
				member.Resolved = true
			}
			return member
		})
}

// ResolveServices resolves services in language order. A service without a
// global icon entry keeps an empty icon key.
func ResolveServices(services []Service, icons []IconRef) []ResolvedService {
	return Join(services, icons,
		func(s Service) string { return s.Key },
		func(i IconRef) string { return i.Key },
		func(s Service, icon *IconRef) ResolvedService {
			out := ResolvedService{Key: s.Key, Title: s.Title, Description: s.Description}
			if icon != nil {
				out.IconKey = icon.IconKey
			}
			return out
		})
}

// ResolveCoreValues resolves core values in language order.
func ResolveCoreValues(values []CoreValue, icons []IconRef) []ResolvedCoreValue {
	return Join(values, icons,
		func(v CoreValue) string { return v.Key },
		func(i IconRef) string { return i.Key },
		func(v CoreValue, icon *IconRef) ResolvedCoreValue {
			out := ResolvedCoreValue{Key: v.Key, Title: v.Title, Description: v.Description}
			if icon != nil {
				out.IconKey = icon.IconKey
			}
			return out
		})
}

// TeamMembers resolves the document's team members for lang.
func (d *Document) TeamMembers(lang Language) []ResolvedTeamMember {
	l := d.Lang(lang)
	if l == nil {
		return ResolveTeamMembers(d.Global.TeamMembers, nil)
	}
	return ResolveTeamMembers(d.Global.TeamMembers, l.TeamMembers)
}

// Services resolves the document's services for lang.
func (d *Document) Services(lang Language) []ResolvedService {
	l := d.Lang(lang)
	if l == nil {
		return []ResolvedService{}
	}
	return ResolveServices(l.Services, d.Global.Services)
}

// CoreValues resolves the document's core values for lang.
func (d *Document) CoreValues(lang Language) []ResolvedCoreValue {
	l := d.Lang(lang)
	if l == nil {
		return []ResolvedCoreValue{}
	}
	return ResolveCoreValues(l.CoreValues, d.Global.CoreValues)
}
