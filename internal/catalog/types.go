package catalog

import "strings"

// ScriptType classifies a script and decides which selection slots may hold it.
type ScriptType string

const (
	TypeOther             ScriptType = "other"
	TypeEngagement        ScriptType = "engagement"
	TypeViralPlug         ScriptType = "viral_plug"
	TypeMistake           ScriptType = "mistake"
	TypeMistakeEngagement ScriptType = "mistake_engagement"
	TypeMistakeViral      ScriptType = "mistake_viral"
)

// ScriptTypes lists every known script type in display order.
var ScriptTypes = []ScriptType{
	TypeOther,
	TypeEngagement,
	TypeViralPlug,
	TypeMistake,
	TypeMistakeEngagement,
	TypeMistakeViral,
}

// Valid reports whether t is one of the known script types.
func (t ScriptType) Valid() bool {
	for _, known := range ScriptTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human readable name of the script type.
func (t ScriptType) Label() string {
	switch t {
	case TypeOther:
		return "Other Script"
	case TypeEngagement:
		return "Engagement Trigger"
	case TypeViralPlug:
		return "Viral Plug"
	case TypeMistake:
		return "Mistake Script"
	case TypeMistakeEngagement:
		return "Mistake Engagement"
	case TypeMistakeViral:
		return "Mistake Viral Plug"
	default:
		return string(t)
	}
}

// Style is a visual presentation style for the slideshow.
type Style struct {
	ID     string   `yaml:"id" json:"id"`
	Title  string   `yaml:"title" json:"title"`
	Images []string `yaml:"images" json:"images"`
	Info   string   `yaml:"info,omitempty" json:"info,omitempty"`
}

// IsMistake reports whether the style belongs to the mistake family.
func (s Style) IsMistake() bool {
	return strings.Contains(strings.ToLower(s.Title), "mistake")
}

// DisplayTitle returns the title without its trailing colon.
func (s Style) DisplayTitle() string {
	return strings.TrimSuffix(strings.TrimSpace(s.Title), ":")
}

// Hook is an opening line for the video.
type Hook struct {
	ID             string `yaml:"id" json:"id"`
	Idea           string `yaml:"idea" json:"idea"`
	Category       string `yaml:"category" json:"category"`
	Rank           *int   `yaml:"rank,omitempty" json:"rank,omitempty"`
	ReferenceLinks string `yaml:"reference_links,omitempty" json:"reference_links,omitempty"`
	Notes          string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Script is a two-paragraph slide body.
type Script struct {
	ID         string     `yaml:"id" json:"id"`
	Paragraph1 string     `yaml:"paragraph1" json:"paragraph1"`
	Paragraph2 string     `yaml:"paragraph2" json:"paragraph2"`
	Type       ScriptType `yaml:"type" json:"type"`
	Rank       *int       `yaml:"rank,omitempty" json:"rank,omitempty"`
	Notes      string     `yaml:"notes,omitempty" json:"notes,omitempty"`
}
