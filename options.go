package ui

// DefaultFontName is the registry name a Button resolves its label font
// from unless [WithFont] overrides it.
const DefaultFontName = "Roboto.ttf"

// DefaultCharacterSize is the label character size in logical pixels.
const DefaultCharacterSize = 30.0

// buttonConfig collects construction-time settings for a Button.
type buttonConfig struct {
	fontName      string
	characterSize float64
	paddings      Paddings
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		fontName:      DefaultFontName,
		characterSize: DefaultCharacterSize,
	}
}

// ButtonOption configures a Button at construction time.
type ButtonOption func(*buttonConfig)

// WithFont selects the label font by its asset registry name.
func WithFont(name string) ButtonOption {
	return func(c *buttonConfig) { c.fontName = name }
}

// WithCharacterSize sets the label character size in logical pixels.
func WithCharacterSize(size float64) ButtonOption {
	return func(c *buttonConfig) { c.characterSize = size }
}

// WithPaddings sets the initial paddings around the label.
func WithPaddings(p Paddings) ButtonOption {
	return func(c *buttonConfig) { c.paddings = p }
}
