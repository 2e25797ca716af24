package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/compass/construct"
	"github.com/osuushi/compass/internal/config"
	"github.com/osuushi/compass/internal/fixtures"
	"github.com/osuushi/compass/netgraph"
	"github.com/pkg/errors"
)

// Config file first, then the SVG circle, then explicit flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
	}

	if *svgIn != "" {
		f, err := os.Open(*svgIn)
		if err != nil {
			return cfg, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		drawing, err := fixtures.Parse(f)
		if err != nil {
			return cfg, errors.Wrapf(err, "in %s", *svgIn)
		}
		cfg.Circle = config.Circle{
			CenterX: drawing.Circle.Center.X,
			CenterY: drawing.Circle.Center.Y,
			Radius:  drawing.Circle.Radius,
		}
	}

	if setFlags["radius"] {
		cfg.Circle.Radius = *radius
	}
	if setFlags["center-x"] {
		cfg.Circle.CenterX = *centerX
	}
	if setFlags["center-y"] {
		cfg.Circle.CenterY = *centerY
	}
	if *pngOut != "" {
		cfg.Output.PNG = *pngOut
	}
	if *svgOut != "" {
		cfg.Output.SVG = *svgOut
	}
	if setFlags["show"] {
		cfg.Output.Show = *show
	}
	return cfg, nil
}

func baseCircle(cfg config.Config) construct.Circle {
	return construct.Circle{
		Center: construct.Pt(cfg.Circle.CenterX, cfg.Circle.CenterY),
		Radius: cfg.Circle.Radius,
	}
}

func runHeptadecagon(cfg config.Config, useConstruction bool) error {
	cfg.Vertices = construct.HeptadecagonSides
	if useConstruction {
		cfg.Variant = config.VariantRichmond
	} else if cfg.Variant == config.VariantRegular {
		cfg.Variant = config.VariantGauss
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c := baseCircle(cfg)
	ctx, err := construct.Richmond(c)
	if err != nil {
		return err
	}
	if *trace {
		fmt.Print(ctx)
	}
	if *dump {
		pretty.Println(ctx.Records())
	}

	var poly construct.Polygon
	if cfg.Variant == config.VariantRichmond {
		poly, err = construct.ConstructedHeptadecagon(c)
		if err != nil {
			return err
		}
	} else {
		poly = construct.Heptadecagon(c, cfg.Theta0)
	}
	printVertices(poly)
	return writeOutputs(cfg, ctx, poly)
}

func runPolygon(cfg config.Config, n int, theta0 float64) error {
	cfg.Vertices = n
	cfg.Variant = config.VariantRegular
	if err := cfg.Validate(); err != nil {
		return err
	}
	c := baseCircle(cfg)
	poly := construct.RegularPolygon(c, theta0+cfg.Theta0, n)
	printVertices(poly)
	ctx := construct.Context{}.
		WithCircle("Γ", c, "given circle").
		WithPoint("O", c.Center, "center")
	return writeOutputs(cfg, ctx, poly)
}

func runNetgraph(cfg config.Config, layers string) error {
	sizes := cfg.Layers
	if layers != "" {
		var err error
		sizes, err = netgraph.ParseLayerSizes(layers)
		if err != nil {
			return err
		}
	}
	graph, err := netgraph.Layout(sizes, netgraph.DefaultOptions)
	if err != nil {
		return err
	}
	for i, layer := range graph.Layers {
		fmt.Printf("%s %d\n", aurora.Bold("layer"), i+1)
		for _, node := range layer.Nodes {
			fmt.Printf("  %s\n", node.Center)
		}
	}
	fmt.Printf("%d connections\n", len(graph.Connections))

	if cfg.Output.PNG == "" {
		return nil
	}
	if err := graph.Draw(cfg.Output.Scale).SavePNG(cfg.Output.PNG); err != nil {
		return errors.Wrap(err, "writing png")
	}
	log.Println(aurora.Green("wrote"), cfg.Output.PNG)
	if cfg.Output.Show {
		return construct.ShowPNG(cfg.Output.PNG, os.Stdout)
	}
	return nil
}

func printVertices(poly construct.Polygon) {
	for i, p := range poly.Points {
		fmt.Printf("%s %s\n", aurora.Cyan(fmt.Sprintf("V%-2d", i)), p)
	}
}

func writeOutputs(cfg config.Config, ctx construct.Context, poly construct.Polygon) error {
	opts := construct.DrawOptions{
		Scale:       cfg.Output.Scale,
		Labels:      cfg.Output.Scaffolding,
		Scaffolding: cfg.Output.Scaffolding,
	}
	polygons := []construct.Polygon{poly}

	if cfg.Output.SVG != "" {
		f, err := os.Create(cfg.Output.SVG)
		if err != nil {
			return errors.Wrap(err, "creating svg")
		}
		err = construct.WriteSVG(f, ctx, polygons, opts)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return errors.Wrap(err, "writing svg")
		}
		log.Println(aurora.Green("wrote"), cfg.Output.SVG)
	}

	if cfg.Output.PNG != "" {
		if err := construct.SavePNG(cfg.Output.PNG, ctx, polygons, opts); err != nil {
			return errors.Wrap(err, "writing png")
		}
		log.Println(aurora.Green("wrote"), cfg.Output.PNG)
		if cfg.Output.Show {
			return construct.ShowPNG(cfg.Output.PNG, os.Stdout)
		}
	}
	return nil
}
