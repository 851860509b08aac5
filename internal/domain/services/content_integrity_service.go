// Package services provides cross-record checks over the site document
package services

import (
	"fmt"
	"sort"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
)

// Issue kinds reported by the integrity check.
const (
	IssueMissingIcon      = "missing_icon"
	IssueOrphanIcon       = "orphan_icon"
	IssueOrphanMemberText = "orphan_member_text"
	IssueMissingMember    = "missing_member_text"
	IssueDuplicateID      = "duplicate_id"
)

// Issue is one dangling cross-reference in a document.
type Issue struct {
	Kind    string           `json:"kind"`
	Lang    content.Language `json:"lang,omitempty"`
	Ref     string           `json:"ref"`
	Message string           `json:"message"`
}

type ContentIntegrityService struct{}

func NewContentIntegrityService() *ContentIntegrityService {
	return &ContentIntegrityService{}
}

// Check reports references that the resolver will silently drop or render
// without an icon. A clean document yields an empty slice. Pages still render
// whatever the resolver can join.
func (s *ContentIntegrityService) Check(doc *content.Document) []Issue {
	issues := []Issue{}

	serviceIcons := iconKeys(doc.Global.Services)
	valueIcons := iconKeys(doc.Global.CoreValues)
	memberImages := make(map[int64]bool, len(doc.Global.TeamMembers))
	for _, m := range doc.Global.TeamMembers {
		memberImages[m.ID] = true
	}

	issues = append(issues, duplicateIDs("gallery", len(doc.Global.GalleryProjects), func(i int) int64 { return doc.Global.GalleryProjects[i].ID })...)
	issues = append(issues, duplicateIDs("team_photo", len(doc.Global.TeamPhotos), func(i int) int64 { return doc.Global.TeamPhotos[i].ID })...)
	issues = append(issues, duplicateIDs("team_member", len(doc.Global.TeamMembers), func(i int) int64 { return doc.Global.TeamMembers[i].ID })...)

	usedServices := make(map[string]bool)
	usedValues := make(map[string]bool)
	for _, lang := range content.Languages {
		l := doc.Lang(lang)

		for _, svc := range l.Services {
			usedServices[svc.Key] = true
			if !serviceIcons[svc.Key] {
				issues = append(issues, Issue{Kind: IssueMissingIcon, Lang: lang, Ref: "service:" + svc.Key,
					Message: fmt.Sprintf("service %q has no global icon", svc.Key)})
			}
		}
		for _, v := range l.CoreValues {
			usedValues[v.Key] = true
			if !valueIcons[v.Key] {
				issues = append(issues, Issue{Kind: IssueMissingIcon, Lang: lang, Ref: "core_value:" + v.Key,
					Message: fmt.Sprintf("core value %q has no global icon", v.Key)})
			}
		}

		texts := make(map[int64]bool, len(l.TeamMembers))
		for _, m := range l.TeamMembers {
			texts[m.ID] = true
			if !memberImages[m.ID] {
				issues = append(issues, Issue{Kind: IssueOrphanMemberText, Lang: lang, Ref: fmt.Sprintf("team_member:%d", m.ID),
					Message: fmt.Sprintf("team member %d has text but no global image", m.ID)})
			}
		}
		for _, m := range doc.Global.TeamMembers {
			if !texts[m.ID] {
				issues = append(issues, Issue{Kind: IssueMissingMember, Lang: lang, Ref: fmt.Sprintf("team_member:%d", m.ID),
					Message: fmt.Sprintf("team member %d is not rendered: no %s text", m.ID, lang)})
			}
		}
	}

	for _, key := range sortedKeys(serviceIcons) {
		if !usedServices[key] {
			issues = append(issues, Issue{Kind: IssueOrphanIcon, Ref: "service:" + key,
				Message: fmt.Sprintf("global service icon %q matches no service", key)})
		}
	}
	for _, key := range sortedKeys(valueIcons) {
		if !usedValues[key] {
			issues = append(issues, Issue{Kind: IssueOrphanIcon, Ref: "core_value:" + key,
				Message: fmt.Sprintf("global core value icon %q matches no core value", key)})
		}
	}

	return issues
}

func iconKeys(refs []content.IconRef) map[string]bool {
	keys := make(map[string]bool, len(refs))
	for _, r := range refs {
		keys[r.Key] = true
	}
	return keys
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func duplicateIDs(list string, n int, idAt func(int) int64) []Issue {
	var issues []Issue
	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		if seen[id] {
			issues = append(issues, Issue{Kind: IssueDuplicateID, Ref: fmt.Sprintf("%s:%d", list, id),
				Message: fmt.Sprintf("%s id %d appears more than once", list, id)})
		}
		seen[id] = true
	}
	return issues
}
