package plan

import (
	"io"
	"strings"

	"charm.land/log/v2"

	"github.com/midbel/chartkit/chart"
	"github.com/midbel/chartkit/style"
)

// Builder applies a definition to the series read from a workbook. Requests
// the chart silently ignores are reported as warnings.
type Builder struct {
	logger *log.Logger
}

func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		logger: logger,
	}
}

func (b *Builder) Build(def *Definition, series []*chart.DataSeries) (*chart.Chart, error) {
	if err := def.Check(); err != nil {
		return nil, err
	}
	var (
		theme = def.Theme()
		kind  = def.BuiltIn()
		c     = chart.New(series, theme)
	)
	c.SetChartType(kind, def.Options.forTag(kind.Tag()))
	b.logger.Debug("chart type selected", "type", kind, "tag", kind.Tag(), "series", c.SeriesCount())

	if def.View3D != nil {
		if c.Is3D() {
			c.SetView3D(def.View3D.view())
		} else {
			b.logger.Warn("3d view ignored", "type", kind)
		}
	}
	b.chartArea(c, def)

	for _, p := range def.Plots {
		b.plot(c, p)
	}
	if err := b.axes(c, def.Axes); err != nil {
		return nil, err
	}
	if t := def.DataTable; t != nil {
		c.ShowDataTable(t.Horizontal, t.Vertical, t.Outline, t.Keys)
	}
	for _, s := range def.Series {
		if err := b.series(c, theme, s); err != nil {
			return nil, err
		}
	}
	if err := b.shapes(c, def); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Builder) chartArea(c *chart.Chart, def *Definition) {
	if def.Title != nil {
		if *def.Title == "" {
			c.HideTitle()
		} else {
			c.SetTitle(*def.Title)
		}
	}
	if pos, _ := parseLegend(def.Legend); pos == "" {
		c.HideLegend()
	} else {
		c.ShowLegend(pos, false)
	}
	blanks, _ := parseBlanks(def.Blanks)
	c.SetBlanksAs(blanks)
	c.RoundedCorners = def.Rounded
}

func (b *Builder) plot(c *chart.Chart, p Plot) {
	if !c.IsCombinable() {
		b.logger.Warn("plot ignored: chart type can not be combined", "series", p.Series, "as", p.As)
		return
	}
	if p.Series < 1 || p.Series > c.SeriesCount() {
		b.logger.Warn("plot ignored: series out of range", "series", p.Series, "count", c.SeriesCount())
		return
	}
	display, _ := parseDisplay(p.Display)
	b.logger.Debug("plot series", "series", p.Series, "as", p.As, "secondary", p.Secondary, "display", p.Display)

	opts := p.Options
	switch strings.ToLower(p.As) {
	case "bar":
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryBarChart(p.Series, display, opts.bar())
		} else {
			c.PlotDataSeriesAsPrimaryBarChart(p.Series, display, opts.bar())
		}
	case "column":
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryColumnChart(p.Series, display, opts.bar())
		} else {
			c.PlotDataSeriesAsPrimaryColumnChart(p.Series, display, opts.bar())
		}
	case "line":
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryLineChart(p.Series, display, opts.line())
		} else {
			c.PlotDataSeriesAsPrimaryLineChart(p.Series, display, opts.line())
		}
	case "area":
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryAreaChart(p.Series, display, opts.area())
		} else {
			c.PlotDataSeriesAsPrimaryAreaChart(p.Series, display, opts.area())
		}
	case "scatter":
		st := chart.ScatterStyle(opts.Style)
		if st == "" {
			st = chart.ScatterStyleLineMarker
		}
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryScatterChart(p.Series, st, opts.scatter())
		} else {
			c.PlotDataSeriesAsPrimaryScatterChart(p.Series, st, opts.scatter())
		}
	case "radar":
		st := chart.RadarStyle(opts.Style)
		if st == "" {
			st = chart.RadarStandard
		}
		if p.Secondary {
			c.PlotDataSeriesAsSecondaryRadarChart(p.Series, st, opts.radar())
		} else {
			c.PlotDataSeriesAsPrimaryRadarChart(p.Series, st, opts.radar())
		}
	case "pie":
		c.PlotDataSeriesAsPieChart(p.Series, opts.pie())
	case "doughnut":
		c.PlotDataSeriesAsDoughnutChart(p.Series, opts.doughnut())
	case "bar-of-pie":
		c.PlotDataSeriesAsBarOfPieChart(p.Series, opts.ofPie())
	case "pie-of-pie":
		c.PlotDataSeriesAsPieOfPieChart(p.Series, opts.ofPie())
	}
}

func (b *Builder) axes(c *chart.Chart, axes Axes) error {
	if x := axes.SecondaryText; x != nil && x.Hidden != nil {
		if c.SecondaryTextAxis() == nil {
			b.logger.Warn("secondary text axis ignored: no secondary axes")
		} else if *x.Hidden {
			c.HideSecondaryTextAxis()
		} else {
			c.ShowSecondaryTextAxis()
		}
	}
	list := []struct {
		Name string
		Conf *Axis
		Axis *chart.Axis
	}{
		{Name: "primary text", Conf: axes.PrimaryText, Axis: c.PrimaryTextAxis()},
		{Name: "primary value", Conf: axes.PrimaryValue, Axis: c.PrimaryValueAxis()},
		{Name: "secondary text", Conf: axes.SecondaryText, Axis: c.SecondaryTextAxis()},
		{Name: "secondary value", Conf: axes.SecondaryValue, Axis: c.SecondaryValueAxis()},
		{Name: "depth", Conf: axes.Depth, Axis: c.DepthAxis()},
	}
	for _, a := range list {
		if a.Conf == nil {
			continue
		}
		if a.Axis == nil {
			b.logger.Warn("axis settings ignored: axis does not exist", "axis", a.Name)
			continue
		}
		apply := a.Conf.apply
		if a.Name == "secondary text" {
			apply = a.Conf.configure
		}
		if err := apply(a.Axis); err != nil {
			return err
		}
		b.logger.Debug("axis configured", "axis", a.Name, "id", a.Axis.ID)
	}
	return nil
}

func (b *Builder) series(c *chart.Chart, theme style.Theme, s Series) error {
	if s.Index < 1 || s.Index > c.SeriesCount() {
		b.logger.Warn("series index corrected", "index", s.Index, "count", c.SeriesCount())
	}
	opts, err := s.options(theme, c.SeriesOptions(s.Index))
	if err != nil {
		return err
	}
	c.SetSeriesOptions(s.Index, opts)
	if s.Labels != nil {
		c.SetDataLabels(s.Index, s.Labels.labels())
	}
	for ix, p := range s.Points {
		opts, err := p.options(theme, chart.SeriesOptions{})
		if err != nil {
			return err
		}
		c.SetDataPointOptions(s.Index, ix, opts)
		if p.Labels != nil {
			c.SetDataPointLabels(s.Index, ix, p.Labels.labels())
		}
	}
	return nil
}

func (b *Builder) shapes(c *chart.Chart, def *Definition) error {
	if def.Fill != nil {
		c.Shape = style.NewShapeProperties(c.Theme)
		if err := def.Fill.apply(c.Shape); err != nil {
			return err
		}
	}
	if def.PlotFill != nil {
		c.PlotArea.Shape = style.NewShapeProperties(c.Theme)
		if err := def.PlotFill.apply(c.PlotArea.Shape); err != nil {
			return err
		}
	}
	if def.Floor == nil && def.Walls == nil {
		return nil
	}
	if !c.Is3D() {
		b.logger.Warn("floor and walls ignored", "type", c.Kind.Type)
		return nil
	}
	if def.Floor != nil {
		if err := def.Floor.apply(c.FloorWall().Shape); err != nil {
			return err
		}
	}
	if def.Walls != nil {
		if err := def.Walls.apply(c.Side().Shape); err != nil {
			return err
		}
		if err := def.Walls.apply(c.Back().Shape); err != nil {
			return err
		}
	}
	return nil
}
