package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// narrativeSource is the dashboard's explanatory text, kept as markdown
// so it reads well in the repo too.
const narrativeSource = `
## Monte Carlo Bell violation

Two photons leave a source with correlated polarization and fly to two
polarizing detectors. Each detector either passes or absorbs its photon.
We track how often both detectors *agree* as a function of the angle
between them, for two rival pictures of what a photon is:

- **Local hidden variables** — each photon carries a fixed polarization
  angle and answers by Malus's law thresholded at 50%. No information
  crosses between the two sides. What Einstein hoped for.
- **1-bit superluminal communication** — the pair shares a reference
  angle, and the first photon to be measured sends its partner a single
  bit derived from its own detector setting. This recreates a model
  proposed by T. Maudlin in 1992.

Quantum mechanics predicts agreement of cos²(Δ) for detector angle
difference Δ. Any local model is confined to the triangle below the
line 1 − 2Δ/π — the Bell-local bound. The local model hugs that
triangle; the one-bit model climbs above it for small angle
differences, violating the Bell inequality, yet it still misses the
cos² curve. One bit of signaling buys non-locality, but not quantum
mechanics.

[1] T. Maudlin, *Bell's Inequality, Information Transmission, and
Prism Models* (1992), PSA: Proceedings of the Biennial Meeting of the
Philosophy of Science Association.
`

// renderNarrative converts the markdown narrative to safe-to-embed HTML
// once at startup.
func renderNarrative() template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	out := markdown.ToHTML([]byte(narrativeSource), p, renderer)
	return template.HTML(out)
}
