package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotSeedling MascotVariant = iota // nothing played yet
	MascotGrowing                       // some progress
	MascotBlooming                      // a family reached the top level
)

const mascotSeedling = `
   ,
  (•‿•)
 __|__`

const mascotGrowing = `  \ | /
  (•‿•)
   \|/
 ___|___`

const mascotBlooming = ` ✿ ✿ ✿
 \(★‿★)/
   \|/
 ___|___`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotSeedling, theme.Primary
	switch v {
	case MascotGrowing:
		art = mascotGrowing
	case MascotBlooming:
		art, fg = mascotBlooming, theme.Sun
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
