package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/ui/theme"
)

// BannerArt is the block-letter title shared by the splash and home screens.
const BannerArt = ` █████╗ ██╗    █████╗ ██╗    ██╗ █████╗ ██████╗ ███████╗
██╔══██╗██║   ██╔══██╗██║    ██║██╔══██╗██╔══██╗██╔════╝
███████║██║   ███████║██║ █╗ ██║███████║██████╔╝█████╗
██╔══██║██║   ██╔══██║██║███╗██║██╔══██║██╔══██╗██╔══╝
██║  ██║██║   ██║  ██║╚███╔███╔╝██║  ██║██║  ██║███████╗
╚═╝  ╚═╝╚═╝   ╚═╝  ╚═╝ ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝`

// BannerCompact is the one-line title for narrow terminals.
const BannerCompact = "A I · A W A R E"

// BannerWidth is the display width of BannerArt.
const BannerWidth = 56

// RenderBanner returns the banner styled in the primary color, falling back
// to the compact title when width is too narrow for the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
