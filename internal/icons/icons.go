package icons

// Style selects which glyph set Init installs.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// set holds the glyphs one style uses for browser entries and the
// status bar toggles.
type set struct {
	folder  string
	image   string
	upscale string
	frame   string
	filter  string
}

var sets = map[Style]set{
	StyleNerd: {
		folder:  " ", // nf-fa-folder
		image:   " ", // nf-fa-picture_o
		upscale: "",  // nf-fa-search_plus
		frame:   "",  // nf-fa-window_maximize
		filter:  "",  // nf-fa-sliders
	},
	StyleUnicode: {
		folder:  "📁 ",
		image:   "🖼 ",
		upscale: "🔍",
		frame:   "⛶",
		filter:  "🎚",
	},
	StyleNone: {
		folder:  "/",
		upscale: "[U]",
		frame:   "[F]",
	},
}

var (
	active  = StyleNone
	current = sets[StyleNone]
)

// Init installs the glyph set for the given style name. Call once at
// startup with the config value; unknown names fall back to plain
// ASCII.
func Init(style string) {
	s := Style(style)
	if _, ok := sets[s]; !ok {
		s = StyleNone
	}
	active = s
	current = sets[s]
}

// FormatDir decorates a directory name. Icon styles prefix a glyph,
// the plain style appends "/" instead.
func FormatDir(name string) string {
	if active == StyleNone {
		return name + current.folder
	}
	return current.folder + name
}

// FormatImage decorates an image file name. The plain style leaves it
// untouched.
func FormatImage(name string) string {
	if active == StyleNone {
		return name
	}
	return current.image + name
}

// Upscale returns the indicator shown while upscaling is on.
func Upscale() string { return current.upscale }

// Frame returns the indicator shown while the frame is on.
func Frame() string { return current.frame }

// Filter returns the indicator shown next to the filter name.
func Filter() string { return current.filter }
