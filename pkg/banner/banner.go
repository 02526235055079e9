// Package banner renders the toolkit's ASCII logo.
package banner

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const logoTemplate = `
═══════════ ╔═╗┬
┌┬┐┬─┐┌─┐┌─┐║  │
 │ ├┬┘├┤ ├┤ ╚═╝┴─┘
 ┴ ┴└─└─┘└─┘╭─────
┈┈┈┈┈┈┄┄┄┄┄─┤  ╭──
   V%s   ╰──┤
══════════════ ╰──
`

// Logo returns the banner with version filled in.
func Logo(version string) string {
	return fmt.Sprintf(logoTemplate, version)
}

// Fprint writes the banner to w, coloured when colored is set.
func Fprint(w io.Writer, version string, colored bool) error {
	logo := Logo(version)

	if colored {
		frame := color.New(color.FgCyan, color.Bold)
		frame.EnableColor()

		logo = frame.Sprint(logo)
	}

	_, err := io.WriteString(w, logo)
	if err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	return nil
}
