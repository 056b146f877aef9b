package render

// Palette, slate/space theme
var (
	RgbBackground   = RGB{15, 23, 42}    // slate-900
	RgbWell         = RGB{22, 32, 56}    // inside the walls
	RgbWallEdge     = RGB{71, 85, 105}   // slate-600
	RgbDangerLine   = RGB{239, 68, 68}   // red-500
	RgbDangerText   = RGB{120, 45, 55}   // faint red over the well
	RgbGuide        = RGB{60, 72, 96}    // drop guide line
	RgbHUDBg        = RGB{30, 41, 59}    // slate-800
	RgbHUDLabel     = RGB{148, 163, 184} // slate-400
	RgbScore        = RGB{250, 204, 21}  // yellow-400
	RgbTitleFrom    = RGB{96, 165, 250}  // blue-400
	RgbTitleTo      = RGB{168, 85, 247}  // purple-500
	RgbText         = RGB{226, 232, 240} // slate-200
	RgbTextDim      = RGB{100, 116, 139} // slate-500
	RgbGameOver     = RGB{239, 68, 68}
	RgbBannerBg     = RGB{250, 204, 21}
	RgbBannerText   = RGB{113, 63, 18}  // yellow-900
	RgbBannerLocal  = RGB{253, 224, 71} // yellow-300
	RgbRingFill     = RGB{200, 200, 200}
	RgbRingStroke   = RGB{255, 255, 230}
	RgbContinent    = RGB{34, 197, 94}  // green-500
	RgbBlackHoleRim = RGB{168, 85, 247} // purple-500
	RgbStarCore     = RGB{255, 255, 255}
	RgbGasBand      = RGB{100, 0, 0}
	RgbGasSpot      = RGB{150, 0, 0}
)
