package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence as written in configuration, e.g. "gg" or
// "<c-d>".
type Keyspec string

// namedKeys are the special identifiers other than the ctrl-letter ones.
var namedKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"tab":   {Key: tcell.KeyTab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},
	"pgup":  {Key: tcell.KeyPgUp},
	"pgdn":  {Key: tcell.KeyPgDn},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialKeys maps the identifiers usable between '<' and '>' to keys and
// identifiers maps keys back. Some ctrl-letters are the same key as a named
// one (e.g. <c-i> and <tab>); the named identifier is preferred then.
var specialKeys, identifiers = func() (map[string]Key, map[Key]string) {
	keys := make(map[string]Key)
	ids := make(map[Key]string)
	for i := 0; i < 26; i++ {
		identifier := fmt.Sprintf("c-%c", 'a'+i)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
		keys[identifier] = key
		ids[key] = identifier
	}
	for identifier, key := range namedKeys {
		keys[identifier] = key
		ids[key] = identifier
	}
	return keys, ids
}()

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)
	var special []rune
	inSpecial := false

	for pos, r := range []rune(spec) {
		switch {

		case r == '<' && !inSpecial:
			inSpecial = true
			special = special[:0]

		case r == '<':
			return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)

		case r == '>' && inSpecial:
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%w)", string(special), err)
			}
			result = append(result, key)

		case r == '>':
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)

		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})

		}
	}

	if inSpecial {
		return nil, fmt.Errorf("special context ('<') not closed in '%s'", spec)
	}
	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, e.g. "x" or "<esc>".
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := identifiers[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", strings.ToLower(tcell.KeyNames[k.Key]))
}
