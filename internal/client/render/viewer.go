package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Viewer runs the interactive starfield loop on a raw terminal. Without a
// TTY it degrades to printing a single frame.
type Viewer struct {
	Field *Starfield
	Out   io.Writer
}

func NewViewer(field *Starfield) *Viewer {
	return &Viewer{Field: field, Out: os.Stdout}
}

func (v *Viewer) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprint(v.Out, v.Field.Frame(80, 24))
		return nil
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprint(v.Out, v.Field.Frame(80, 24))
		return nil
	}
	defer term.Restore(fd, oldState)

	for {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width < 10 || height < 6 {
			width, height = 80, 24
		}

		// Leave two rows for the help line.
		frame := v.Field.Frame(width, height-2)
		fmt.Fprint(v.Out, "\x1b[2J\x1b[H")
		fmt.Fprint(v.Out, frameWithCRLF(frame))
		fmt.Fprint(v.Out, "arrows/hjkl rotate  +/- zoom  q quit\r\n")

		var buf [3]byte
		n, err := os.Stdin.Read(buf[:])
		if err != nil {
			return nil
		}

		switch key(buf[:n]) {
		case "q", "\x03":
			fmt.Fprint(v.Out, "\x1b[2J\x1b[H")
			return nil
		case "left", "h":
			v.Field.Rotate(-0.1, 0)
		case "right", "l":
			v.Field.Rotate(0.1, 0)
		case "up", "k":
			v.Field.Rotate(0, 0.1)
		case "down", "j":
			v.Field.Rotate(0, -0.1)
		case "+", "=":
			v.Field.ZoomBy(1.15)
		case "-", "_":
			v.Field.ZoomBy(1 / 1.15)
		}
	}
}

func key(buf []byte) string {
	if len(buf) == 3 && buf[0] == 0x1b && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return "up"
		case 'B':
			return "down"
		case 'C':
			return "right"
		case 'D':
			return "left"
		}
	}
	if len(buf) >= 1 {
		return string(buf[:1])
	}
	return ""
}

// Raw mode loses the usual LF -> CRLF translation.
func frameWithCRLF(frame string) string {
	out := make([]byte, 0, len(frame)+64)
	for i := 0; i < len(frame); i++ {
		if frame[i] == '\n' {
			out = append(out, '\r', '\n')
			continue
		}
		out = append(out, frame[i])
	}
	return string(out)
}
