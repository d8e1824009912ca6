package utils

const (
	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Discord UI Colors
	BackgroundColor   = 0x2B2D31
	EmbedDefaultColor = 0x2B2D31

	// Rating Colors
	RatingPoorColor    = 0x808080
	RatingDecentColor  = 0x00BFFF
	RatingGoodColor    = 0x9370DB
	RatingGreatColor   = 0xFFD700
	RatingClassicColor = 0xFF4500
)

// RatingColor maps a 0-100 match rating to its embed color tier.
func RatingColor(rating int) int {
	switch {
	case rating >= 95:
		return RatingClassicColor
	case rating >= 85:
		return RatingGreatColor
	case rating >= 70:
		return RatingGoodColor
	case rating >= 50:
		return RatingDecentColor
	default:
		return RatingPoorColor
	}
}
