package user

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// User is a record with a caller-supplied identifier and a display name.
// Neither field is validated.
type User struct {
	ID   int32
	Name string
}

// New returns a User holding id and name as given.
func New(id int32, name string) User {
	return User{ID: id, Name: name}
}

// String returns the debug rendering, e.g. `User { id: 1, name: "Ada" }`.
// The name is quoted with debugQuote.
func (u User) String() string {
	return fmt.Sprintf("User { id: %d, name: %s }", u.ID, debugQuote(u.Name))
}

// GoString makes %#v print the same rendering as %v.
func (u User) GoString() string {
	return u.String()
}

// debugQuote wraps s in double quotes. Quote, backslash, NUL, tab, CR and LF
// get short escapes. Any other non-printable rune, a combining mark at the
// start of s, and each invalid UTF-8 byte (as U+FFFD) become \u{hex}.
func debugQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == 0:
			b.WriteString(`\0`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\n':
			b.WriteString(`\n`)
		case i == 0 && unicode.In(r, unicode.Mn, unicode.Me):
			fmt.Fprintf(&b, `\u{%x}`, r)
		case unicode.IsPrint(r) && !(r == utf8.RuneError && size == 1):
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, `\u{%x}`, r)
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// Roster is an ordered list of users. Insertion order is preserved.
type Roster []User

// DefaultRoster returns the two built-in users.
func DefaultRoster() Roster {
	return Roster{
		New(1, "Ada"),
		New(2, "Linus"),
	}
}

// First returns the user at index 0, or false if the roster is empty.
func (r Roster) First() (User, bool) {
	if len(r) == 0 {
		return User{}, false
	}
	return r[0], true
}

// Len returns the number of users in the roster.
func (r Roster) Len() int { return len(r) }
