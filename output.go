package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Encode writes the x axis, the y axis and then every pixel to w, one
// value per line.
func Encode(w io.Writer, x, y []float32, pixels iter.Seq[Pixel]) error {
	bw := bufio.NewWriter(w)
	// bufio errors are sticky, Flush reports the first one.
	for _, v := range x {
		bw.WriteString(FormatCoord(v))
		bw.WriteByte('\n')
	}
	for _, v := range y {
		bw.WriteString(FormatCoord(v))
		bw.WriteByte('\n')
	}
	for p := range pixels {
		bw.WriteString(p.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile truncates path and encodes into it.
func WriteFile(path string, x, y []float32, pixels iter.Seq[Pixel]) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return errors.Wrapf(Encode(f, x, y, pixels), "writing %s", path)
}

// Coords is a parsed output file.
type Coords struct {
	X, Y   []float32
	Pixels []Pixel
}

// Lines is the number of lines the file held.
func (c *Coords) Lines() int {
	return len(c.X) + len(c.Y) + len(c.Pixels)
}

// ReadFile parses the output file at path, see Parse.
func ReadFile(path string, d int) (*Coords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening coords")
	}
	defer f.Close()
	return Parse(f, d)
}

// Parse reads d x values, d y values and then pixels until EOF.
func Parse(r io.Reader, d int) (*Coords, error) {
	if d < 2 {
		return nil, errors.Wrapf(ErrDimension, "got %d", d)
	}
	c := &Coords{X: make([]float32, 0, d), Y: make([]float32, 0, d)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		switch {
		case line <= d:
			v, err := parseCoord(text)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			c.X = append(c.X, v)
		case line <= 2*d:
			v, err := parseCoord(text)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			c.Y = append(c.Y, v)
		default:
			var p Pixel
			if _, err := fmt.Sscanf(text, "(%d, %d, %d)", &p.R, &p.G, &p.B); err != nil {
				return nil, errors.Wrapf(err, "line %d: bad pixel %q", line, text)
			}
			c.Pixels = append(c.Pixels, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading coords")
	}
	if line < 2*d {
		return nil, errors.Errorf("expected at least %d axis lines, got %d", 2*d, line)
	}
	return c, nil
}

func parseCoord(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, errors.Errorf("coordinate %s outside [0, 1]", s)
	}
	return float32(v), nil
}
