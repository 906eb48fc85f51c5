package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup, history and color screens.
var MenuColors = struct {
	Border      tcell.Color
	CardBG      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),
	CardBG:      tcell.PaletteColor(236),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(109),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
