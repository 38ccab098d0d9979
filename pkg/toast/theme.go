package toast

// Mode is the global theme mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Theme is the color record a card renders with.
type Theme struct {
	Background string
	Border     string
	Font       string
}

// Palette maps every notification type (including TypeNone, the neutral
// entry) to its theme for one mode.
type Palette map[Type]Theme

var lightPalette = Palette{
	TypeSuccess: {Background: "#edf7ed", Border: "#4caf50", Font: "#1e4620"},
	TypeError:   {Background: "#fdeded", Border: "#ef5350", Font: "#5f2120"},
	TypeInfo:    {Background: "#e5f6fd", Border: "#03a9f4", Font: "#014361"},
	TypeAlert:   {Background: "#fff4e5", Border: "#ff9800", Font: "#663c00"},
	TypeNone:    {Background: "#ffffff", Border: "#e0e0e0", Font: "#212121"},
}

var darkPalette = Palette{
	TypeSuccess: {Background: "#0c130d", Border: "#66bb6a", Font: "#cce8cd"},
	TypeError:   {Background: "#160b0b", Border: "#f44336", Font: "#f4c7c7"},
	TypeInfo:    {Background: "#071318", Border: "#29b6f6", Font: "#b8e7fb"},
	TypeAlert:   {Background: "#191207", Border: "#ffa726", Font: "#ffe2b7"},
	TypeNone:    {Background: "#1e1e1e", Border: "#424242", Font: "#fafafa"},
}

// DefaultPalette returns the built-in palette for a mode.
func DefaultPalette(mode Mode) Palette {
	if mode == ModeDark {
		return darkPalette
	}
	return lightPalette
}

// ComputeColors resolves the colors a card renders with.
//
// The effective theme is the notification's override if present, otherwise
// the palette entry for its type. The colored mode then decides how much of
// it applies: full takes everything, border keeps the neutral background,
// and none renders entirely neutral (the override is ignored).
func ComputeColors(colored ColoredMode, typ Type, override *Theme, palette Palette) Theme {
	neutral := palette[TypeNone]

	effective := palette[typ]
	if override != nil {
		effective = *override
	}

	switch colored {
	case ColoredBorder:
		return Theme{
			Background: neutral.Background,
			Border:     effective.Border,
			Font:       effective.Font,
		}
	case ColoredNone:
		return neutral
	default:
		return effective
	}
}

// defaultIcons maps each type to its bundled icon asset.
var defaultIcons = map[Type]string{
	TypeSuccess: "/static/icons/success.svg",
	TypeError:   "/static/icons/error.svg",
	TypeInfo:    "/static/icons/info.svg",
	TypeAlert:   "/static/icons/alert.svg",
	TypeNone:    "/static/icons/none.svg",
}

// DefaultIcon returns the bundled icon asset path for a type.
func DefaultIcon(typ Type) string {
	if icon, ok := defaultIcons[typ]; ok {
		return icon
	}
	return defaultIcons[TypeNone]
}
