package style

type ThemeColor int

const (
	Dark1 ThemeColor = iota
	Light1
	Dark2
	Light2
	Accent1
	Accent2
	Accent3
	Accent4
	Accent5
	Accent6
	Hyperlink
	FollowedHyperlink
)

// Theme lists the RGB values of the theme colors in ThemeColor order.
type Theme []string

var officeTheme = Theme{
	"000000",
	"FFFFFF",
	"44546A",
	"E7E6E6",
	"4472C4",
	"ED7D31",
	"A5A5A5",
	"FFC000",
	"5B9BD5",
	"70AD47",
	"0563C1",
	"954F72",
}

func DefaultTheme() Theme {
	return append(Theme(nil), officeTheme...)
}

// Resolve gives the RGB value of c, using the default theme for colors the
// theme does not define.
func (t Theme) Resolve(c ThemeColor) string {
	ix := int(c)
	if ix >= 0 && ix < len(t) && t[ix] != "" {
		return t[ix]
	}
	if ix >= 0 && ix < len(officeTheme) {
		return officeTheme[ix]
	}
	return officeTheme[Dark1]
}

// Accent gives the accent color used for the nth series (0 based), cycling
// over the six accents.
func (t Theme) Accent(n int) string {
	if n < 0 {
		n = -n
	}
	return t.Resolve(Accent1 + ThemeColor(n%6))
}
