package content

// GeneralText maps the named page text fields of one language to their values.
type GeneralText map[string]string

// GeneralFields lists every editable general text field in admin display order.
var GeneralFields = []string{
	"heroTitle", "heroSubtitle",
	"homeAboutTitle", "homeAboutDesc",
	"counterProjects", "counterClients", "counterExperience",
	"homeServicesTitle", "homeServicesSubtitle", "homeProjectsCta",
	"homeValuesTitle", "homeValuesSubtitle",
	"homeTeamTitle", "homeTeamSubtitle",
	"homeCtaTitle", "homeCtaSubtitle", "homeCtaButton",
	"footerTagline", "footerAddress",
	"aboutPageTitle", "aboutPageSubtitle",
	"aboutIntroTitle", "aboutIntroDesc",
	"aboutVisionTitle", "aboutVisionDesc",
	"aboutMissionTitle", "aboutMission1", "aboutMission2", "aboutMission3",
	"aboutChairmanTitle", "aboutChairmanName", "aboutChairmanPosition", "aboutChairmanMessage",
	"aboutTeamTitle", "aboutTeamSubtitle",
	"aboutQhseTitle", "aboutQhseSubtitle",
	"aboutQhseHealthTitle", "aboutQhseHealthDesc",
	"aboutQhseEnvTitle", "aboutQhseEnvDesc",
	"aboutQhseQualityTitle", "aboutQhseQualityDesc",
	"contactPageTitle", "contactPageSubtitle",
	"contactInfoTitle", "contactWorkingHoursTitle",
	"contactPhone1", "contactPhone2", "contactEmail",
	"profilePageTitle", "profilePageSubtitle",
}

var generalFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(GeneralFields))
	for _, f := range GeneralFields {
		set[f] = struct{}{}
	}
	return set
}()

// IsGeneralField reports whether name is a known general text field.
func IsGeneralField(name string) bool {
	_, ok := generalFieldSet[name]
	return ok
}

// Get returns the value of field, or "" when it is absent.
func (g GeneralText) Get(field string) string {
	return g[field]
}

// Clone returns a copy of g. A nil map clones to an empty one.
func (g GeneralText) Clone() GeneralText {
	out := make(GeneralText, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}
