package color

// Named colors in the style of early-90s shooters.
var (
	Sky   = FromHex(0x2C3E50) // deep blue-gray
	Floor = FromHex(0x1A1A1A) // near black

	WallRed   = FromHex(0xC0392B)
	WallGreen = FromHex(0x27AE60)
	WallBlue  = FromHex(0x2980B9)
	WallStone = FromHex(0x7F8C8D)
)

// Named looks up a palette color by its lowercase name.
func Named(name string) (Color, bool) {
	switch name {
	case "sky":
		return Sky, true
	case "floor":
		return Floor, true
	case "wall_red":
		return WallRed, true
	case "wall_green":
		return WallGreen, true
	case "wall_blue":
		return WallBlue, true
	case "wall_stone":
		return WallStone, true
	}
	return Color{}, false
}
