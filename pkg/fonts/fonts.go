// Package fonts loads the TrueType resource used for map labels.
//
// The font file lives in the classifier's resource directory (the "db"
// option) rather than in the binary, so the map uses the same typeface as
// the rest of the classifier output.
package fonts

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/locusmap/pkg/errors"
)

// DefaultFile is the font file looked up in the resource directory.
const DefaultFile = "arial.ttf"

// Point sizes of the three label faces.
const (
	LabelSize  = 30
	HeaderSize = 50
	TickSize   = 20
)

// Set holds the faces used while drawing a map.
type Set struct {
	Label  font.Face // gene and array labels
	Header font.Face // row headers
	Tick   font.Face // grid tick labels
}

// Load reads file from dir and builds a Set. A missing or unparseable font
// is a CONFIGURATION error.
func Load(dir, file string) (*Set, error) {
	if file == "" {
		file = DefaultFile
	}
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "cannot read font %s", path)
	}
	return Parse(data)
}

// Parse builds a Set from TTF data.
func Parse(data []byte) (*Set, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "cannot parse font")
	}
	return &Set{
		Label:  face(f, LabelSize),
		Header: face(f, HeaderSize),
		Tick:   face(f, TickSize),
	}, nil
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
