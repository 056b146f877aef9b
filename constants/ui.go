package constants

// UI Layout Constants
const (
	// HUDHeight is the number of rows reserved at the top for score and next planet
	HUDHeight = 1

	// LegendWidth is the column width of the rank legend panel
	LegendWidth = 30

	// MinFieldColumns hides the legend when the well would get narrower than this
	MinFieldColumns = 24

	// MinLabelDiameter is the smallest on-screen planet width (cells) that gets a label
	MinLabelDiameter = 3

	// DashLength and DashGap shape the death line in pixels
	DashLength = 3
	DashGap    = 2

	// MenuPreviewRanks is how many planets the title screen previews
	MenuPreviewRanks = 5
)

// Overlay text
const (
	TitleText       = "COSMIC MERGE"
	TaglineText     = "Drop planets, merge them, and create a Black Hole!"
	StartHint       = "[s] Start Mission   [q] Quit"
	GameOverText    = "GAME OVER"
	FinalScoreLabel = "Final Score"
	RestartHint     = "[r] Restart   [m] Title"
	WinText         = "GAME CLEAR!"
	WinTextLocal    = "ゲームクリア！"
	DangerLineText  = "DANGER LINE"
	ControlsHint    = "h/l move  space drop  r restart  ? legend  M mute"
)
