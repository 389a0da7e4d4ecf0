package catalog

import (
	"strings"

	"github.com/gosimple/slug"
)

// mistakeSuffix marks hook categories that belong to the mistake family.
const mistakeSuffix = " - Mistakes"

var (
	regularCategories = []string{
		"Ex TikTok",
		"Professor",
		"Official TikTok",
		"Experienced",
		"Journalist",
		"New TikTok Algorithm",
		"Learnings",
		"AI Tips",
	}
	mistakeCategories = []string{
		"Ex TikTok" + mistakeSuffix,
		"Professor" + mistakeSuffix,
		"Official TikTok" + mistakeSuffix,
		"Experienced" + mistakeSuffix,
		"Learnings" + mistakeSuffix,
	}
)

// HookCategories returns the hook categories offered for a style family, in tab order.
func HookCategories(mistake bool) []string {
	src := regularCategories
	if mistake {
		src = mistakeCategories
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsMistakeCategory reports whether a hook category belongs to the mistake family.
func IsMistakeCategory(category string) bool {
	return strings.HasSuffix(category, mistakeSuffix)
}

// CategoryLabel is the tab label of a category. Mistake categories share the
// labels of their regular counterparts.
func CategoryLabel(category string) string {
	return strings.TrimSuffix(category, mistakeSuffix)
}

// CategorySlug returns the URL form of a category, e.g. "ex-tiktok-mistakes".
func CategorySlug(category string) string {
	return slug.Make(category)
}

// HooksInCategory returns the hooks of one category in catalog order.
func (c *Catalog) HooksInCategory(category string) []Hook {
	var out []Hook
	for _, h := range c.hooks {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

// HooksBySlug returns the hooks whose category slug matches s.
func (c *Catalog) HooksBySlug(s string) []Hook {
	s = strings.ToLower(strings.TrimSpace(s))
	var out []Hook
	for _, h := range c.hooks {
		if CategorySlug(h.Category) == s {
			out = append(out, h)
		}
	}
	return out
}

// HooksForFamily returns all hooks offered for a style family.
func (c *Catalog) HooksForFamily(mistake bool) []Hook {
	var out []Hook
	for _, h := range c.hooks {
		if IsMistakeCategory(h.Category) == mistake {
			out = append(out, h)
		}
	}
	return out
}
