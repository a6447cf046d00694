package colors

// Named colors. These are plain values; copy, don't mutate shared
// references to them.
var (
	Black       = FromRGB(0, 0, 0)
	White       = FromRGB(255, 255, 255)
	Red         = FromRGB(255, 0, 0)
	Green       = FromRGB(0, 255, 0)
	Blue        = FromRGB(0, 0, 255)
	Yellow      = FromRGB(255, 255, 0)
	Cyan        = FromRGB(0, 255, 255)
	Magenta     = FromRGB(255, 0, 255)
	Gray        = FromRGB(128, 128, 128)
	Transparent = FromRGBA(0, 0, 0, 0)
)
