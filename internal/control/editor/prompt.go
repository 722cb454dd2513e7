// Package editor implements the single line text prompt used for entering a
// year to go to or a search query.
package editor

import (
	"strconv"
	"sync"
)

// PromptView allows inspection of a prompt.
type PromptView interface {
	// Active returns whether the prompt is open.
	Active() bool
	// Label is what the prompt asks for, e.g. "Go to year".
	Label() string
	// Content returns the current (edited) contents.
	Content() string
	// CursorPos returns the current cursor position in the content, 0 being
	// the first character.
	CursorPos() int
	// ErrorMessage is the message of the last rejected submit, if any.
	ErrorMessage() string
}

// Prompt is a single line text editor with a submit callback.
// A submit that the callback rejects keeps the prompt open and shows the
// error message; an accepted submit closes it.
type Prompt struct {
	mtx sync.Mutex

	active       bool
	label        string
	content      []rune
	cursorPos    int
	errorMessage string

	onSubmit func(string) error
	onClose  func()
}

// NewPrompt returns a closed prompt. onClose is called whenever the prompt
// closes, be it by cancel or by accepted submit.
func NewPrompt(onClose func()) *Prompt {
	return &Prompt{onClose: onClose}
}

// Open opens the prompt with empty content.
func (p *Prompt) Open(label string, onSubmit func(string) error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.active = true
	p.label = label
	p.content = nil
	p.cursorPos = 0
	p.errorMessage = ""
	p.onSubmit = onSubmit
}

// Cancel closes the prompt without submitting.
func (p *Prompt) Cancel() {
	p.mtx.Lock()
	if !p.active {
		p.mtx.Unlock()
		return
	}
	p.active = false
	p.mtx.Unlock()
	if p.onClose != nil {
		p.onClose()
	}
}

// Submit passes the content to the submit callback.
func (p *Prompt) Submit() {
	p.mtx.Lock()
	if !p.active {
		p.mtx.Unlock()
		return
	}
	content, onSubmit := string(p.content), p.onSubmit
	p.mtx.Unlock()

	if onSubmit != nil {
		if err := onSubmit(content); err != nil {
			p.mtx.Lock()
			p.errorMessage = err.Error()
			p.mtx.Unlock()
			return
		}
	}
	p.Cancel()
}

func (p *Prompt) Active() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.active
}

func (p *Prompt) Label() string {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.label
}

func (p *Prompt) Content() string {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return string(p.content)
}

func (p *Prompt) CursorPos() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.cursorPos
}

func (p *Prompt) ErrorMessage() string {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.errorMessage
}

// edit applies a change to the content; any change clears the error.
func (p *Prompt) edit(change func()) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	change()
	p.errorMessage = ""
}

// AddRune inserts the rune at the cursor. Non-printable runes are ignored.
func (p *Prompt) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	p.edit(func() {
		tmp := make([]rune, 0, len(p.content)+1)
		tmp = append(tmp, p.content[:p.cursorPos]...)
		tmp = append(tmp, newRune)
		tmp = append(tmp, p.content[p.cursorPos:]...)
		p.content = tmp
		p.cursorPos++
	})
}

// BackspaceRune removes the rune before the cursor.
func (p *Prompt) BackspaceRune() {
	p.edit(func() {
		if p.cursorPos == 0 {
			return
		}
		p.content = append(p.content[:p.cursorPos-1], p.content[p.cursorPos:]...)
		p.cursorPos--
	})
}

// DeleteRune removes the rune under the cursor.
func (p *Prompt) DeleteRune() {
	p.edit(func() {
		if p.cursorPos >= len(p.content) {
			return
		}
		p.content = append(p.content[:p.cursorPos], p.content[p.cursorPos+1:]...)
	})
}

// BackspaceToBeginning removes everything before the cursor.
func (p *Prompt) BackspaceToBeginning() {
	p.edit(func() {
		p.content = append([]rune{}, p.content[p.cursorPos:]...)
		p.cursorPos = 0
	})
}

func (p *Prompt) MoveCursorLeft() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.cursorPos > 0 {
		p.cursorPos--
	}
}

func (p *Prompt) MoveCursorRight() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.cursorPos < len(p.content) {
		p.cursorPos++
	}
}

func (p *Prompt) MoveCursorToBeginning() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cursorPos = 0
}

func (p *Prompt) MoveCursorPastEnd() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cursorPos = len(p.content)
}
