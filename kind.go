package markers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a marker kind is not one of BCC, FCC or HCP.
var ErrUnknownKind = errors.New("markers: unknown marker kind")

// Kind identifies one of the marker patterns.
// The names are crystal lattice structures used only as pattern labels.
type Kind int

const (
	// BCC is the body-centered cubic pattern: isometric cube with dots.
	BCC Kind = iota
	// FCC is the face-centered cubic pattern: nested diamonds with squares.
	FCC
	// HCP is the hexagonal close-packed pattern: concentric hexagons.
	HCP
)

// Kinds returns every marker kind in generation order.
func Kinds() []Kind {
	return []Kind{BCC, FCC, HCP}
}

// String returns the label drawn on the marker ("BCC", "FCC", "HCP").
func (k Kind) String() string {
	switch k {
	case BCC:
		return "BCC"
	case FCC:
		return "FCC"
	case HCP:
		return "HCP"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Name returns the lowercase short name used in file names and config.
func (k Kind) Name() string {
	return strings.ToLower(k.String())
}

// Title returns the long name of the lattice the pattern is named after.
func (k Kind) Title() string {
	switch k {
	case BCC:
		return "Body-Centered Cubic"
	case FCC:
		return "Face-Centered Cubic"
	case HCP:
		return "Hexagonal Close-Packed"
	default:
		return k.String()
	}
}

// FileName returns the output file name, e.g. "marker_bcc.png".
func (k Kind) FileName() string {
	return "marker_" + k.Name() + ".png"
}

func (k Kind) valid() bool {
	return k >= BCC && k <= HCP
}

// ParseKind converts a short name ("bcc") or label ("BCC") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bcc":
		return BCC, nil
	case "fcc":
		return FCC, nil
	case "hcp":
		return HCP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds parses a list of names and returns the kinds in generation
// order with duplicates removed.
func ParseKinds(names []string) ([]Kind, error) {
	seen := make(map[Kind]bool, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		seen[k] = true
	}
	kinds := make([]Kind, 0, len(seen))
	for _, k := range Kinds() {
		if seen[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}
