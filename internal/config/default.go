package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Timeline: Timeline{
			ViewportWidth:   1200,
			MinScale:        1,
			MaxScale:        100,
			ZoomFactor:      1.5,
			PanStep:         100,
			PixelsPerColumn: 8,
		},
		Export: defaultExport(colorschemeType),
	}
}

func defaultExport(colorschemeType ColorschemeType) Export {
	if colorschemeType == Dark {
		return Export{Background: "#1e1e1e", AxisColor: "#c0c0c0", TextColor: "#f0f0f0", FontSize: 12}
	}
	return Export{Background: "#ffffff", AxisColor: "#333333", TextColor: "#222222", FontSize: 12}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			Axis:              Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LaneLabel:         Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			Detail:            Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
			Prompt:            Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
			PromptError:       Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			Selected:          Styling{Fg: "#000000", Bg: "#ffd700", Style: &FontStyle{Bold: true}},
			EraBand:           Styling{Fg: "#808080", Bg: "#101018", Style: &FontStyle{Italic: true}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Axis:              Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
			LaneLabel:         Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Detail:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Prompt:            Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
			PromptError:       Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			Selected:          Styling{Fg: "#000000", Bg: "#ffd700", Style: &FontStyle{Bold: true}},
			EraBand:           Styling{Fg: "#808080", Bg: "#f6f6fa", Style: &FontStyle{Italic: true}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
		}
	}
}
