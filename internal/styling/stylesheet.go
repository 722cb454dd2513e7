package styling

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Status DrawStyling

	Axis      DrawStyling
	LaneLabel DrawStyling
	EraBand   DrawStyling
	Selected  DrawStyling

	Detail DrawStyling
	Help   DrawStyling

	Prompt      DrawStyling
	PromptError DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.Status = StyleFromConfig(config.Status)
	stylesheet.Axis = StyleFromConfig(config.Axis)
	stylesheet.LaneLabel = StyleFromConfig(config.LaneLabel)
	stylesheet.EraBand = StyleFromConfig(config.EraBand)
	stylesheet.Selected = StyleFromConfig(config.Selected)
	stylesheet.Detail = StyleFromConfig(config.Detail)
	stylesheet.Help = StyleFromConfig(config.Help)
	stylesheet.Prompt = StyleFromConfig(config.Prompt)
	stylesheet.PromptError = StyleFromConfig(config.PromptError)
	stylesheet.LogDefault = StyleFromConfig(config.LogDefault)
	stylesheet.LogTitleBox = StyleFromConfig(config.LogTitleBox)
	stylesheet.LogEntryTypeError = StyleFromConfig(config.LogEntryTypeError)
	stylesheet.LogEntryTypeWarn = StyleFromConfig(config.LogEntryTypeWarn)
	stylesheet.LogEntryTypeInfo = StyleFromConfig(config.LogEntryTypeInfo)
	stylesheet.LogEntryTypeDebug = StyleFromConfig(config.LogEntryTypeDebug)
	stylesheet.LogEntryTypeTrace = StyleFromConfig(config.LogEntryTypeTrace)
	stylesheet.LogEntryLocation = StyleFromConfig(config.LogEntryLocation)
	stylesheet.LogEntryTime = StyleFromConfig(config.LogEntryTime)

	return &stylesheet
}

// StyleFromConfig converts a config styling to a DrawStyling.
// Invalid colors are logged and replaced by gray on black.
func StyleFromConfig(c config.Styling) DrawStyling {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		log.Warn().Err(err).Msg("invalid styling in config, using fallback")
		s = StyleFromColors(colorGray, black)
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s
}
