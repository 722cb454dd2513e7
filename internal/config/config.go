package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${ANNALES_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Timeline   Timeline          `yaml:"timeline"`
	Export     Export            `yaml:"export"`
	Lanes      map[string]string `yaml:"lanes"`

	// Keys binds keyspecs (e.g. "gg", "<c-d>") to timeline action names.
	// Bindings given here are added to (or replace) the default ones.
	Keys map[string]string `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	Status            Styling `yaml:"status"`
	Axis              Styling `yaml:"axis"`
	LaneLabel         Styling `yaml:"lane-label"`
	Detail            Styling `yaml:"detail"`
	Help              Styling `yaml:"help"`
	Prompt            Styling `yaml:"prompt"`
	PromptError       Styling `yaml:"prompt-error"`
	Selected          Styling `yaml:"selected"`
	EraBand           Styling `yaml:"era-band"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Timeline configures the viewport and zoom behavior.
// Zero values mean "not set" and are replaced by the defaults.
type Timeline struct {
	ViewportWidth   float64 `yaml:"viewport-width"`
	MinScale        float64 `yaml:"min-scale"`
	MaxScale        float64 `yaml:"max-scale"`
	ZoomFactor      float64 `yaml:"zoom-factor"`
	PanStep         float64 `yaml:"pan-step"`
	PixelsPerColumn float64 `yaml:"pixels-per-column"`
}

// Export configures the SVG and PNG exporters.
type Export struct {
	Background string  `yaml:"background"`
	AxisColor  string  `yaml:"axis-color"`
	TextColor  string  `yaml:"text-color"`
	FontSize   float64 `yaml:"font-size"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	if parsedConfig.Timeline.MinScale != 0 && parsedConfig.Timeline.MaxScale != 0 &&
		parsedConfig.Timeline.MinScale > parsedConfig.Timeline.MaxScale {
		return defaultConfig, fmt.Errorf("min-scale %g exceeds max-scale %g", parsedConfig.Timeline.MinScale, parsedConfig.Timeline.MaxScale)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Timeline = base.Timeline.augmentWith(augment.Timeline)
	result.Export = base.Export.augmentWith(augment.Export)

	if len(augment.Lanes) > 0 {
		result.Lanes = make(map[string]string, len(base.Lanes)+len(augment.Lanes))
		for id, color := range base.Lanes {
			result.Lanes[id] = color
		}
		for id, color := range augment.Lanes {
			result.Lanes[id] = color
		}
	}

	if len(augment.Keys) > 0 {
		result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
		for spec, name := range base.Keys {
			result.Keys[spec] = name
		}
		for spec, name := range augment.Keys {
			result.Keys[spec] = name
		}
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Status.overwriteIfDefined(augment.Status)
	result.Axis.overwriteIfDefined(augment.Axis)
	result.LaneLabel.overwriteIfDefined(augment.LaneLabel)
	result.Detail.overwriteIfDefined(augment.Detail)
	result.Help.overwriteIfDefined(augment.Help)
	result.Prompt.overwriteIfDefined(augment.Prompt)
	result.PromptError.overwriteIfDefined(augment.PromptError)
	result.Selected.overwriteIfDefined(augment.Selected)
	result.EraBand.overwriteIfDefined(augment.EraBand)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		if s.Style == nil {
			s.Style = &FontStyle{}
		}
		s.Style.Bold = augment.Style.Bold
		s.Style.Italic = augment.Style.Italic
		s.Style.Underlined = augment.Style.Underlined
	}
}

func (base Timeline) augmentWith(augment Timeline) Timeline {
	result := base
	overwriteIfPositive(&result.ViewportWidth, augment.ViewportWidth)
	overwriteIfPositive(&result.MinScale, augment.MinScale)
	overwriteIfPositive(&result.MaxScale, augment.MaxScale)
	if augment.ZoomFactor > 1 {
		result.ZoomFactor = augment.ZoomFactor
	}
	overwriteIfPositive(&result.PanStep, augment.PanStep)
	overwriteIfPositive(&result.PixelsPerColumn, augment.PixelsPerColumn)
	return result
}

func (base Export) augmentWith(augment Export) Export {
	result := base
	if augment.Background != "" {
		result.Background = augment.Background
	}
	if augment.AxisColor != "" {
		result.AxisColor = augment.AxisColor
	}
	if augment.TextColor != "" {
		result.TextColor = augment.TextColor
	}
	overwriteIfPositive(&result.FontSize, augment.FontSize)
	return result
}

func overwriteIfPositive(v *float64, augment float64) {
	if augment > 0 {
		*v = augment
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
