package person

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Person is any user-like record: a member, an instructor, a lead, an account...
// All fields are optional.
type Person struct {
	ID        string `json:"id,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// DisplayName is the name used for avatar colors and alt texts: full_name, then name, then first_name.
func (p *Person) DisplayName() string {
	if p == nil {
		return ""
	}
	switch {
	case p.FullName != "":
		return p.FullName
	case p.Name != "":
		return p.Name
	default:
		return p.FirstName
	}
}

// Photo returns the first available picture URL.
func (p *Person) Photo() string {
	if p == nil {
		return ""
	}
	switch {
	case p.PhotoURL != "":
		return p.PhotoURL
	case p.AvatarURL != "":
		return p.AvatarURL
	default:
		return p.ImageURL
	}
}

const unknownInitials = "?"

// AvatarInitials returns the one or two letters drawn in place of a missing photo.
// full_name wins over first_name/last_name, which win over name. A single word gives
// its first two letters, unlike Initials which only keeps one.
func AvatarInitials(p *Person) string {
	switch {
	case p == nil:
		return unknownInitials
	case p.FullName != "":
		return wordsInitials(p.FullName)
	case p.FirstName != "" || p.LastName != "":
		if ini := firstRune(p.FirstName) + firstRune(p.LastName); ini != "" {
			return ini
		}
		return unknownInitials
	case p.Name != "":
		return wordsInitials(p.Name)
	default:
		return unknownInitials
	}
}

func wordsInitials(s string) string {
	words := strings.Fields(s)
	switch len(words) {
	case 0:
		return unknownInitials
	case 1:
		w := words[0]
		_, n := utf8.DecodeRuneInString(w)
		ini := firstRune(w)
		if n < len(w) {
			ini += firstRune(w[n:])
		}
		return ini
	}
	return firstRune(words[0]) + firstRune(words[len(words)-1])
}

// Color is a background/foreground style pair.
type Color struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Class returns both styles as a single class list.
func (c Color) Class() string {
	return c.Background + " " + c.Foreground
}

var palette = [...]Color{
	{Background: "bg-primary/20", Foreground: "text-primary"},
	{Background: "bg-accent/20", Foreground: "text-accent"},
	{Background: "bg-secondary/20", Foreground: "text-secondary"},
	{Background: "bg-green-500/20", Foreground: "text-green-500"},
	{Background: "bg-blue-500/20", Foreground: "text-blue-500"},
	{Background: "bg-purple-500/20", Foreground: "text-purple-500"},
	{Background: "bg-orange-500/20", Foreground: "text-orange-500"},
	{Background: "bg-pink-500/20", Foreground: "text-pink-500"},
	{Background: "bg-cyan-500/20", Foreground: "text-cyan-500"},
	{Background: "bg-yellow-500/20", Foreground: "text-yellow-500"},
}

// Palette returns a copy of the avatar colors, in index order.
func Palette() []Color {
	p := make([]Color, len(palette))
	copy(p, palette[:])
	return p
}

// nameHash is `h = c + (h << 5) - h` over the UTF-16 code units of name, wrapped to 32 bits.
func nameHash(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + (h << 5) - h
	}
	return h
}

// PaletteIndex maps name onto the palette. The same name always gets the same index.
func PaletteIndex(name string) int {
	h := int64(nameHash(name))
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(palette)))
}

// ColorFor returns the avatar color of p, derived from its DisplayName.
func ColorFor(p *Person) Color {
	return palette[PaletteIndex(p.DisplayName())]
}

// Avatar sizes
const (
	SizeXS = "xs"
	SizeSM = "sm"
	SizeMD = "md"
	SizeLG = "lg"
	SizeXL = "xl"
)

// SizeClasses are the styles of one avatar size.
type SizeClasses struct {
	Container string `json:"container"`
	Text      string `json:"text"`
	Indicator string `json:"indicator"`
}

var sizes = map[string]SizeClasses{
	SizeXS: {Container: "w-6 h-6", Text: "text-[10px]", Indicator: "w-1.5 h-1.5 border"},
	SizeSM: {Container: "w-8 h-8", Text: "text-xs", Indicator: "w-2 h-2 border"},
	SizeMD: {Container: "w-10 h-10", Text: "text-sm", Indicator: "w-2.5 h-2.5 border-2"},
	SizeLG: {Container: "w-12 h-12", Text: "text-base", Indicator: "w-3 h-3 border-2"},
	SizeXL: {Container: "w-16 h-16", Text: "text-xl", Indicator: "w-4 h-4 border-2"},
}

// ValidSize reports whether size is a known avatar size.
func ValidSize(size string) bool {
	_, ok := sizes[size]
	return ok
}

// Identity is everything needed to draw a person's avatar.
type Identity struct {
	PhotoURL            string      `json:"photo_url,omitempty"`
	Alt                 string      `json:"alt"`
	Initials            string      `json:"initials"`
	Color               Color       `json:"color"`
	Size                string      `json:"size"`
	Classes             SizeClasses `json:"classes"`
	ShowOnlineIndicator bool        `json:"show_online_indicator"`
	Online              bool        `json:"online"`
}

// Avatar derives the avatar of p. Unknown sizes fall back to md.
// The online indicator is only shown when online is set.
func Avatar(p *Person, size string, online *bool) Identity {
	if !ValidSize(size) {
		size = SizeMD
	}
	alt := "Avatar"
	if p != nil && p.FullName != "" {
		alt = p.FullName
	} else if p != nil && p.Name != "" {
		alt = p.Name
	}

	id := Identity{
		PhotoURL: p.Photo(),
		Alt:      alt,
		Initials: AvatarInitials(p),
		Color:    ColorFor(p),
		Size:     size,
		Classes:  sizes[size],
	}
	if online != nil {
		id.ShowOnlineIndicator = true
		id.Online = *online
	}
	return id
}

// DefaultGroupMax is how many avatars a group shows before the counter.
const DefaultGroupMax = 4

// Group is a stack of avatars followed by a "+N" counter for the people left out.
type Group struct {
	Avatars   []Identity `json:"avatars"`
	Remaining int        `json:"remaining"`
	Overflow  string     `json:"overflow,omitempty"`
}

// AvatarGroup returns the avatars of the first max people (DefaultGroupMax when max <= 0).
// An empty size defaults to sm.
func AvatarGroup(people []Person, max int, size string) Group {
	if max <= 0 {
		max = DefaultGroupMax
	}
	if size == "" {
		size = SizeSM
	}

	n := len(people)
	if n > max {
		n = max
	}
	g := Group{Avatars: make([]Identity, 0, n)}
	for i := range people[:n] {
		g.Avatars = append(g.Avatars, Avatar(&people[i], size, nil))
	}
	if remaining := len(people) - n; remaining > 0 {
		g.Remaining = remaining
		g.Overflow = "+" + strconv.Itoa(remaining)
	}
	return g
}
