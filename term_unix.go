//go:build unix

package main

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// cellSize reports the pixel size of one character cell of the terminal
// on fd.
func cellSize(fd int) (w, h int, err error) {
	win, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, errors.Wrap(err, "not a terminal")
	}
	if win.Xpixel == 0 || win.Ypixel == 0 {
		return 0, 0, errors.New("terminal does not report its pixel size")
	}
	// just being paranoid about kernel input
	if win.Row == 0 {
		win.Row = 1
	}
	if win.Col == 0 {
		win.Col = 1
	}
	w = int(math.Ceil(float64(win.Xpixel) / float64(win.Col)))
	h = int(math.Ceil(float64(win.Ypixel) / float64(win.Row)))
	return w, h, nil
}
