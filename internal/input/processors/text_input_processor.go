package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/annales/internal/control/action"
	"github.com/ja-he/annales/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor specifically for text input.
// It can have a number of defined mappings for non-runes (e.g. ESC for a
// callback to remove this processor as an overlay).
// Any runes it is asked to process will be given to its callback function for
// runes, which could, e.g., append the given rune to a string.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune)
}

// ProcessInput passes runes to the rune callback and does the mapped action
// for anything else.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	a, ok := p.mappings[key]
	if !ok {
		return false
	}
	a.Do()
	return true
}

// CapturesInput always returns true, text input takes all keys.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Every keyspec has to be exactly one key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = a
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
	}, nil
}
