package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/midbel/cli"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/chartxml"
	"github.com/midbel/chartkit/parts"
	"github.com/midbel/chartkit/plan"
	"github.com/midbel/chartkit/source"
)

var errFail = errors.New("fail")

var (
	summary = "chartkit"
	help    = "compose spreadsheet charts from a definition file and a workbook"
)

func main() {
	var (
		set  = cli.NewFlagSet("chartkit")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"render"}, &renderCmd)
	root.Register([]string{"inspect"}, &inspectCmd)
	root.Register([]string{"types"}, &typesCmd)
	return root
}

var renderCmd = cli.Command{
	Name:    "render",
	Alias:   []string{"build"},
	Summary: "write the chart part described by a definition file",
	Usage:   "render [-o file] [-m dir] [-v] <definition.yaml> <workbook.xlsx>",
	Handler: &RenderChartCommand{},
}

var inspectCmd = cli.Command{
	Name:    "inspect",
	Alias:   []string{"check"},
	Summary: "print the fragments and the axes of a chart part",
	Usage:   "inspect <chart.xml>",
	Handler: &InspectChartCommand{},
}

var typesCmd = cli.Command{
	Name:    "types",
	Alias:   []string{"list"},
	Summary: "list the built-in chart types",
	Usage:   "types [-c]",
	Handler: &ListTypesCommand{},
}

func createLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chartkit",
		Level:  level,
	})
}

type RenderChartCommand struct {
	OutFile  string
	MediaDir string
	Verbose  bool
}

func (c RenderChartCommand) Run(args []string) error {
	set := cli.NewFlagSet("render")
	set.StringVar(&c.OutFile, "o", "", "write chart part to output file")
	set.StringVar(&c.MediaDir, "m", "", "directory where pictures are copied")
	set.BoolVar(&c.Verbose, "v", false, "verbose")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 2 {
		return fmt.Errorf("definition and workbook expected")
	}
	logger := createLogger(c.Verbose)

	def, err := plan.LoadFile(set.Arg(0))
	if err != nil {
		return err
	}
	series, err := c.readSeries(def, set.Arg(1), logger)
	if err != nil {
		return err
	}
	ch, err := plan.NewBuilder(logger).Build(def, series)
	if err != nil {
		return err
	}
	reg := parts.NewRegistry(os.DirFS(filepath.Dir(set.Arg(0))))
	if err := c.writeChart(ch, reg); err != nil {
		return err
	}
	if reg.Len() == 0 {
		return nil
	}
	logger.Info("pictures registered", "count", reg.Len())
	return c.writeParts(reg)
}

func (c RenderChartCommand) readSeries(def *plan.Definition, file string, logger *log.Logger) ([]*chart.DataSeries, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := source.Options{
		ShowHidden: def.Hidden,
		Theme:      def.Theme(),
	}
	if def.Rows {
		opts.Orientation = source.RowsAsSeries
	}
	return source.NewReader(f, logger).Read(def.Range, opts)
}

func (c RenderChartCommand) writeChart(ch *chart.Chart, reg *parts.Registry) error {
	var w io.Writer = os.Stdout
	if c.OutFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.OutFile), 0755); err != nil {
			return err
		}
		f, err := os.Create(c.OutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return ch.Encode(w, reg)
}

// writeParts writes the relationships of the chart next to it, the way a
// package stores them, and copies the pictures into the media directory.
func (c RenderChartCommand) writeParts(reg *parts.Registry) error {
	if c.OutFile == "" {
		return fmt.Errorf("pictures used: output file required")
	}
	var (
		dir  = filepath.Dir(c.OutFile)
		rels = filepath.Join(dir, "_rels", filepath.Base(c.OutFile)+".rels")
	)
	if err := os.MkdirAll(filepath.Dir(rels), 0755); err != nil {
		return err
	}
	f, err := os.Create(rels)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := reg.Encode(f); err != nil {
		return err
	}
	media := c.MediaDir
	if media == "" {
		media = filepath.Join(dir, "..", "media")
	}
	return reg.Export(media)
}

type InspectChartCommand struct{}

func (c InspectChartCommand) Run(args []string) error {
	set := cli.NewFlagSet("inspect")
	if err := set.Parse(args); err != nil {
		return err
	}
	r, err := os.Open(set.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	sum, err := chartxml.Inspect(r)
	if err != nil {
		return err
	}
	tags, err := sum.Tags()
	if err != nil {
		return err
	}
	var (
		header = lipgloss.NewStyle().Bold(true)
		faint  = lipgloss.NewStyle().Faint(true)
	)
	fmt.Fprintln(os.Stdout, header.Render("fragments"))
	for i, f := range sum.Fragments {
		line := fmt.Sprintf("%d %-16s %-22s %d series", i+1, f.Name, tags[i], f.Series)
		fmt.Fprintln(os.Stdout, line, faint.Render(strings.Join(f.Axes, ",")))
	}
	if len(sum.Axes) > 0 {
		fmt.Fprintln(os.Stdout, header.Render("axes"))
	}
	for _, a := range sum.Axes {
		var (
			state   = "shown"
			crosses = a.Crosses
		)
		if a.Deleted {
			state = "deleted"
		}
		if crosses == "" {
			crosses = a.CrossesAt
		}
		line := fmt.Sprintf("%-10s %-6s pos=%s crosses=%s (%s)", a.ID, a.Kind, a.Position, crosses, state)
		fmt.Fprintln(os.Stdout, line, faint.Render("-> "+a.CrossAxis))
	}
	if !sum.Ordered() || !sum.Paired() {
		fmt.Fprintf(os.Stdout, "ordered: %t, paired: %t", sum.Ordered(), sum.Paired())
		fmt.Fprintln(os.Stdout)
		return errFail
	}
	return nil
}

type ListTypesCommand struct {
	Combinable bool
}

func (c ListTypesCommand) Run(args []string) error {
	set := cli.NewFlagSet("types")
	set.BoolVar(&c.Combinable, "c", false, "only list types that can be combined")
	if err := set.Parse(args); err != nil {
		return err
	}
	var (
		name   = lipgloss.NewStyle().Width(36)
		tag    = lipgloss.NewStyle().Width(24)
		header = lipgloss.NewStyle().Bold(true)
		faint  = lipgloss.NewStyle().Faint(true)
	)
	fmt.Fprintln(os.Stdout, header.Render(name.Render("type")+tag.Render("kind")+"flags"))
	for _, b := range chart.BuiltIns() {
		if c.Combinable && !b.Combinable() {
			continue
		}
		var flags []string
		if b.Combinable() {
			flags = append(flags, "combinable")
		}
		if b.Is3D() {
			flags = append(flags, "3d")
		}
		fmt.Fprintln(os.Stdout, name.Render(b.String())+tag.Render(b.Tag().String())+faint.Render(strings.Join(flags, ",")))
	}
	return nil
}
