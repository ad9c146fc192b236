package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` __      __          __         .__                       .___`, "#fbbf24"},
	{`/  \    /  \_____    _/  |_  ____ |  | _____    ____    __| _/`, "#f59e0b"},
	{`\   \/\/   /\__  \  /  ___/\   __\/ __ \|  | \__  \  /    \  / __ | `, "#f97316"},
	{` \        /  / __ \_\___ \  |  | \  ___/|  |__/ __ \|   |  \/ /_/ | `, "#ea580c"},
	{`  \__/\  /  (____  /____  > |__|  \___  >____(____  /___|  /\____ | `, "#dc2626"},
	{`       \/        \/     \/            \/          \/     \/      \/ `, "#b91c1c"},
}

// PrintBanner writes the Wasteland banner and version to w.
// Colors degrade to the profile of the output terminal.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
