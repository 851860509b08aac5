// Package content defines the site's core content entities and the rules for
// combining language-invariant and language-specific records.
package content

// Language identifies one of the per-language content records.
type Language string

const (
	LangEN Language = "en"
	LangAR Language = "ar"
)

// Languages lists the supported languages in the order they are fetched.
var Languages = []Language{LangEN, LangAR}

// ParseLanguage validates a raw language code.
func ParseLanguage(raw string) (Language, bool) {
	switch Language(raw) {
	case LangEN:
		return LangEN, true
	case LangAR:
		return LangAR, true
	default:
		return "", false
	}
}

// Category is the gallery classification of a project.
type Category string

const (
	CategoryBuildings Category = "Buildings"
	CategoryVillas    Category = "Villas"
)

// Valid reports whether c is a known project category.
func (c Category) Valid() bool {
	return c == CategoryBuildings || c == CategoryVillas
}

type MapCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SocialMediaLinks struct {
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

type GalleryProject struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Location      string   `json:"location"`
	CoverImageURL string   `json:"coverImageUrl"`
	ImageURLs     []string `json:"imageUrls"`
}

type TeamMemberImage struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
}

type TeamPhoto struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
}

// IconRef binds a service or core value key to an icon.
type IconRef struct {
	Key     string `json:"key"`
	IconKey string `json:"iconKey"`
}

// GlobalContent holds the facts that are identical in every language.
type GlobalContent struct {
	CompanyLogoURL       string            `json:"companyLogoUrl"`
	CompanyProfilePDFURL string            `json:"companyProfilePdfUrl"`
	MapCoordinates       MapCoordinates    `json:"mapCoordinates"`
	SocialMediaLinks     SocialMediaLinks  `json:"socialMediaLinks"`
	GalleryProjects      []GalleryProject  `json:"galleryProjects"`
	TeamMembers          []TeamMemberImage `json:"teamMembers"`
	TeamPhotos           []TeamPhoto       `json:"teamPhotos"`
	Services             []IconRef         `json:"services"`
	CoreValues           []IconRef         `json:"coreValues"`
}

type Service struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CoreValue struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMemberText struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
}

type WorkingHour struct {
	ID   int64  `json:"id"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

// LangContent holds all text for a single language.
type LangContent struct {
	General      GeneralText      `json:"general"`
	Services     []Service        `json:"services"`
	CoreValues   []CoreValue      `json:"coreValues"`
	TeamMembers  []TeamMemberText `json:"teamMembers"`
	WorkingHours []WorkingHour    `json:"workingHours"`
}

// Document is the unit that is fetched, held and edited.
type Document struct {
	Global GlobalContent `json:"global"`
	EN     LangContent   `json:"en"`
	AR     LangContent   `json:"ar"`
}

// Lang returns the language record for lang. Unknown languages return nil.
func (d *Document) Lang(lang Language) *LangContent {
	switch lang {
	case LangEN:
		return &d.EN
	case LangAR:
		return &d.AR
	default:
		return nil
	}
}

// EmptyDocument returns the placeholder served before the first successful
// load. Every list is non-nil so page projections never see a nil slice.
func EmptyDocument() *Document {
	return &Document{
		Global: GlobalContent{
			SocialMediaLinks: SocialMediaLinks{WhatsApp: "#", Instagram: "#", Facebook: "#"},
			GalleryProjects:  []GalleryProject{},
			TeamMembers:      []TeamMemberImage{},
			TeamPhotos:       []TeamPhoto{},
			Services:         []IconRef{},
			CoreValues:       []IconRef{},
		},
		EN: emptyLang(),
		AR: emptyLang(),
	}
}

func emptyLang() LangContent {
	return LangContent{
		General:      GeneralText{},
		Services:     []Service{},
		CoreValues:   []CoreValue{},
		TeamMembers:  []TeamMemberText{},
		WorkingHours: []WorkingHour{},
	}
}

// Clone returns a deep copy of d that shares no slices or maps with it.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Global: d.Global.Clone(),
		EN:     d.EN.Clone(),
		AR:     d.AR.Clone(),
	}
}

// Clone returns a deep copy of g.
func (g GlobalContent) Clone() GlobalContent {
	out := g
	out.GalleryProjects = make([]GalleryProject, len(g.GalleryProjects))
	for i, p := range g.GalleryProjects {
		out.GalleryProjects[i] = p.Clone()
	}
	out.TeamMembers = append([]TeamMemberImage{}, g.TeamMembers...)
	out.TeamPhotos = append([]TeamPhoto{}, g.TeamPhotos...)
	out.Services = append([]IconRef{}, g.Services...)
	out.CoreValues = append([]IconRef{}, g.CoreValues...)
	return out
}

// Clone returns a deep copy of p.
func (p GalleryProject) Clone() GalleryProject {
	out := p
	out.ImageURLs = append([]string{}, p.ImageURLs...)
	return out
}

// Clone returns a deep copy of l.
func (l LangContent) Clone() LangContent {
	return LangContent{
		General:      l.General.Clone(),
		Services:     append([]Service{}, l.Services...),
		CoreValues:   append([]CoreValue{}, l.CoreValues...),
		TeamMembers:  append([]TeamMemberText{}, l.TeamMembers...),
		WorkingHours: append([]WorkingHour{}, l.WorkingHours...),
	}
}

// Normalize replaces nil lists with empty ones. Records decoded from the
// remote store may omit lists entirely.
func (d *Document) Normalize() {
	if d.Global.GalleryProjects == nil {
		d.Global.GalleryProjects = []GalleryProject{}
	}
	if d.Global.TeamMembers == nil {
		d.Global.TeamMembers = []TeamMemberImage{}
	}
	if d.Global.TeamPhotos == nil {
		d.Global.TeamPhotos = []TeamPhoto{}
	}
	if d.Global.Services == nil {
		d.Global.Services = []IconRef{}
	}
	if d.Global.CoreValues == nil {
		d.Global.CoreValues = []IconRef{}
	}
	for _, lang := range Languages {
		l := d.Lang(lang)
		if l.General == nil {
			l.General = GeneralText{}
		}
		if l.Services == nil {
			l.Services = []Service{}
		}
		if l.CoreValues == nil {
			l.CoreValues = []CoreValue{}
		}
		if l.TeamMembers == nil {
			l.TeamMembers = []TeamMemberText{}
		}
		if l.WorkingHours == nil {
			l.WorkingHours = []WorkingHour{}
		}
	}
}
