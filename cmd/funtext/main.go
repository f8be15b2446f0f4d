// Command funtext renders text animations described in scenario files.
//
//	funtext render --out site hello.yaml intro.yaml
//	funtext tree --dot hello.yaml | dot -Tsvg > hello.svg
//	funtext sample --index 2 hello.yaml
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/funtext"
	"github.com/npillmayer/funtext/dom"
	"github.com/npillmayer/funtext/dom/cssom/douceuradapter"
	"github.com/npillmayer/funtext/dom/domdbg"
	"github.com/npillmayer/funtext/preview"
	"github.com/npillmayer/funtext/scenario"
)

const version = "0.1.0"

// app defines the command-line interface.
type app struct {
	Render  RenderCmd  `cmd:"" help:"Render scenario files to standalone HTML pages"`
	Tree    TreeCmd    `cmd:"" help:"Print the fragment tree of a scenario"`
	Sample  SampleCmd  `cmd:"" help:"Tabulate animated values for one fragment"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// RenderCmd renders scenario files.
type RenderCmd struct {
	Files   []string `arg:"" help:"Scenario files" type:"existingfile"`
	Out     string   `short:"o" help:"Output directory (default: next to each scenario)" type:"path"`
	Jobs    int      `short:"j" help:"Number of scenarios rendered concurrently" default:"4"`
	Isolate bool     `help:"Use a unique keyframes prefix for every page"`
	Check   bool     `help:"Parse generated stylesheets before writing them"`
}

func (c *RenderCmd) Run(ctx *kong.Context) error {
	g := new(errgroup.Group)
	g.SetLimit(max(c.Jobs, 1))
	written := make([]string, len(c.Files))
	for i, path := range c.Files {
		i, path := i, path
		g.Go(func() error {
			out, err := c.render(path)
			written[i] = out
			return err
		})
	}
	err := g.Wait()
	for _, out := range written {
		if out != "" {
			fmt.Fprintf(ctx.Stdout, "wrote %s\n", out)
		}
	}
	return err
}

func (c *RenderCmd) render(path string) (string, error) {
	sc, err := scenario.Read(path)
	if err != nil {
		return "", err
	}
	if c.Isolate {
		sc.Options.KeyframesPrefix = "funtext-" + uuid.NewString()
	}
	text, err := sc.Compile()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	css := text.Stylesheet()
	if c.Check {
		if _, err := douceuradapter.Parse(css); err != nil {
			return "", fmt.Errorf("%s: generated stylesheet does not parse: %w", path, err)
		}
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := c.Out
	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(dir, name+".html")
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := html.Render(f, dom.Document(name, text.Nodes(), css)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, f.Close()
}

// TreeCmd prints the fragment tree of a scenario.
type TreeCmd struct {
	File      string `arg:"" help:"Scenario file" type:"existingfile"`
	Dot       bool   `help:"Print a GraphViz digraph instead of text"`
	Variables bool   `short:"v" help:"Include CSS custom properties in the digraph"`
}

func (c *TreeCmd) Run(ctx *kong.Context) error {
	text, err := compile(c.File)
	if err != nil {
		return err
	}
	if c.Dot {
		domdbg.ToGraphViz(text.Root, ctx.Stdout, c.Variables)
		return nil
	}
	_, err = io.WriteString(ctx.Stdout, domdbg.Sprint(text.Root))
	return err
}

// SampleCmd tabulates the values of all tracks for one fragment.
type SampleCmd struct {
	File     string  `arg:"" help:"Scenario file" type:"existingfile"`
	Index    int     `short:"i" help:"Index of the fragment within its scope" default:"0"`
	Interval float64 `help:"Sampling interval in seconds" default:"0.25"`
	Until    float64 `help:"Stop sampling at this time (default: when all animations have ended)"`
}

func (c *SampleCmd) Run(ctx *kong.Context) error {
	if c.Interval <= 0 {
		return fmt.Errorf("sampling interval must be positive, is %g", c.Interval)
	}
	text, err := compile(c.File)
	if err != nil {
		return err
	}
	tracks := text.Tracks.Tracks()
	if len(tracks) == 0 {
		return fmt.Errorf("%s: no animations", c.File)
	}
	until := c.Until
	if until <= 0 {
		for _, tr := range tracks {
			end := preview.End(tr, c.Index)
			if math.IsInf(end, 1) { // show the first iteration of endless animations
				end = tr.Delay + tr.OffsetAt(c.Index) + tr.Duration
			}
			until = max(until, end)
		}
	}
	tw := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "t")
	for _, tr := range tracks {
		fmt.Fprintf(tw, "\t%s@%d", tr.Property, tr.Priority())
	}
	fmt.Fprintln(tw)
	series := make([][]preview.Point, len(tracks))
	for i, tr := range tracks {
		series[i] = preview.Series(tr, c.Index, until, c.Interval)
	}
	for row := range series[0] {
		fmt.Fprintf(tw, "%.2f", series[0][row].T)
		for i := range tracks {
			fmt.Fprintf(tw, "\t%s", series[i][row].Step.WithDefault("-"))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "funtext version %s\n", version)
	return nil
}

func compile(path string) (*funtext.Text, error) {
	sc, err := scenario.Read(path)
	if err != nil {
		return nil, err
	}
	text, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

func main() {
	var cli app
	ctx := kong.Parse(&cli,
		kong.Name("funtext"),
		kong.Description("Compile declarative text animations into HTML and CSS"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
