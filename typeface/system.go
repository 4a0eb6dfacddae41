package typeface

import "runtime"

// SystemCandidates returns well known font files for the current OS,
// Arial first. Only single-font TTF files are listed; collections are not
// supported.
func SystemCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"C:\\Windows\\Fonts\\arial.ttf",
			"C:\\Windows\\Fonts\\calibri.ttf",
			"C:\\Windows\\Fonts\\segoeui.ttf",
		}
	case "darwin":
		return []string{
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/SFNSText.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
			"/usr/share/fonts/truetype/msttcorefonts/arial.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
		}
	}
}
