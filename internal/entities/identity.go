package entities

import (
	"slices"
	"strings"
)

// Identity is one set of names a character goes by.
type Identity struct {
	// Forenames in order; the first is the name the character is called by.
	Forenames []string `json:"forenames,omitempty"`
	Surname   string   `json:"surname,omitempty"`
	HonorName string   `json:"honor_name,omitempty"`
	Nickname  string   `json:"nickname,omitempty"`
	Supername string   `json:"supername,omitempty"`
}

// NewIdentity creates an identity from a surname and first name.
func NewIdentity(surname, firstName string) Identity {
	id := Identity{Surname: surname}
	if firstName != "" {
		id.Forenames = []string{firstName}
	}
	return id
}

// FirstName returns the first forename.
func (i Identity) FirstName() string {
	if len(i.Forenames) == 0 {
		return ""
	}
	return i.Forenames[0]
}

// RealName is the birth name: first name and surname.
func (i Identity) RealName() string {
	return joinNonEmpty(i.FirstName(), i.Surname)
}

// FullName lists every forename followed by the surname.
func (i Identity) FullName() string {
	parts := append(slices.Clone(i.Forenames), i.Surname)
	return joinNonEmpty(parts...)
}

// DisplayName is the name printed on the sheet: first "nick" last.
func (i Identity) DisplayName() string {
	first := i.FirstName()
	if i.Nickname != "" {
		first = joinNonEmpty(first, `"`+i.Nickname+`"`)
	}
	return joinNonEmpty(first, i.Surname)
}

// HonorDisplayName is the first name followed by the honor name.
func (i Identity) HonorDisplayName() string {
	return joinNonEmpty(i.FirstName(), i.HonorName)
}

// IsEmpty reports whether no name is set.
func (i Identity) IsEmpty() bool {
	return strings.TrimSpace(i.FullName()) == "" && i.HonorName == "" &&
		i.Nickname == "" && i.Supername == ""
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// IdentityList holds every identity of one character. The first entry is
// always the true name; later entries are aliases.
type IdentityList []Identity

// Reset removes every identity.
func (l *IdentityList) Reset() {
	*l = nil
}

// Add appends an identity. The first identity added becomes the true name.
func (l *IdentityList) Add(id Identity) {
	*l = append(*l, id)
}

// Insert places an alias at index. Index 0 stays the true name, so inserts
// before it land at index 1.
func (l *IdentityList) Insert(index int, id Identity) {
	if len(*l) == 0 {
		*l = IdentityList{id}
		return
	}
	index = max(index, 1)
	index = min(index, len(*l))
	*l = slices.Insert(*l, index, id)
}

// SetReal replaces the true name, creating it when the list is empty.
func (l *IdentityList) SetReal(id Identity) {
	if len(*l) == 0 {
		*l = IdentityList{id}
		return
	}
	(*l)[0] = id
}

// Real returns the true-name identity.
func (l IdentityList) Real() (Identity, bool) {
	if len(l) == 0 {
		return Identity{}, false
	}
	return l[0], true
}

// RealName returns the composed name of the true identity.
func (l IdentityList) RealName() string {
	id, ok := l.Real()
	if !ok {
		return ""
	}
	return id.RealName()
}
