package aerocoef

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// NumChannels is the number of aerodynamic coefficient channels. The order
// is fixed everywhere in this package: Cx, Cy, Cz, Cxx, Cyy, Czz.
const NumChannels = 6

// Channel indices, structural frame.
const (
	ChCx = iota // axial force, along the girder
	ChCy        // horizontal force, normal to the girder
	ChCz        // vertical force
	ChCxx       // torsional moment, about the girder axis
	ChCyy       // bending moment about the horizontal normal axis
	ChCzz       // bending moment about the vertical axis
)

var channelNames = [NumChannels]string{"Cx", "Cy", "Cz", "Cxx", "Cyy", "Czz"}

// ChannelName returns the conventional name of a coefficient channel.
func ChannelName(ch int) string {
	return channelNames[ch]
}

// ChannelIndex resolves a conventional channel name to its index.
func ChannelIndex(name string) (int, error) {
	for ch, n := range channelNames {
		if n == name {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrUnsupported, name)
}

// Table holds the wind-tunnel measurement samples in the structural frame.
// Angles are in radians. The table is immutable after loading; all fits read
// from it and never write back.
type Table struct {
	Betas  []float64 // yaw of each sample, canonical quadrant
	Thetas []float64 // inclination of each sample
	Alphas []float64 // torsional rotation of the section model
	Coefs  [NumChannels][]float64
}

// Len returns the number of measurement samples.
func (tbl *Table) Len() int {
	return len(tbl.Betas)
}

var tableColumns = []string{
	"beta[deg]", "theta[deg]", "alpha[deg]",
	"Cx_Ls", "Cy_Ls", "Cz_Ls", "Cxx_Ls", "Cyy_Ls", "Czz_Ls",
}

// LoadTable reads a measurement table from CSV. The file carries angles in
// degrees; they are converted to radians here, at the boundary.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("table: reading header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	idx := make([]int, len(tableColumns))
	for i, name := range tableColumns {
		j, ok := colIdx[name]
		if !ok {
			return nil, fmt.Errorf("table: missing column %q", name)
		}
		idx[i] = j
	}

	tbl := &Table{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: line %d: %w", line, err)
		}
		vals := make([]float64, len(idx))
		for i, j := range idx {
			vals[i], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("table: line %d, column %q: %w", line, tableColumns[i], err)
			}
		}
		tbl.Betas = append(tbl.Betas, Rad(vals[0]))
		tbl.Thetas = append(tbl.Thetas, Rad(vals[1]))
		tbl.Alphas = append(tbl.Alphas, Rad(vals[2]))
		for ch := 0; ch < NumChannels; ch++ {
			tbl.Coefs[ch] = append(tbl.Coefs[ch], vals[3+ch])
		}
	}
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("table: no measurement samples")
	}
	return tbl, nil
}

// LoadTableFile reads a measurement table from a CSV file on disk.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTable(f)
}
