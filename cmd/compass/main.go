package main

import (
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("compass", "Compass and straightedge constructions, rendered to static previews.")

	configPath = app.Flag("config", "YAML config file").Short('c').ExistingFile()
	svgIn      = app.Flag("svg-in", "Take the base circle from the first <circle> of an SVG file").ExistingFile()
	radius     = app.Flag("radius", "Circle radius").Short('r').Action(markSet("radius")).Float64()
	centerX    = app.Flag("center-x", "Circle center x").Action(markSet("center-x")).Float64()
	centerY    = app.Flag("center-y", "Circle center y").Action(markSet("center-y")).Float64()
	pngOut     = app.Flag("png", "Write a PNG preview").String()
	svgOut     = app.Flag("svg", "Write an SVG preview").String()
	show       = app.Flag("show", "Print the PNG preview in the terminal (iTerm only)").Action(markSet("show")).Bool()
	trace      = app.Flag("trace", "Print each construction step").Bool()
	dump       = app.Flag("dump", "Dump raw construction records").Bool()

	heptadecagonCmd = app.Command("heptadecagon", "Regular 17-gon").Default()
	constructFlag   = heptadecagonCmd.Flag("construct", "Measure the step off Richmond's construction instead of Gauss's formula").Bool()

	polygonCmd    = app.Command("polygon", "Regular polygon")
	polygonSides  = polygonCmd.Arg("n", "Number of vertices").Required().Int()
	polygonTheta0 = polygonCmd.Flag("theta0", "Polar angle of the first vertex, in radians").Float64()

	netgraphCmd    = app.Command("netgraph", "Neural network diagram layout")
	netgraphLayers = netgraphCmd.Arg("layers", `Layer sizes, like "3 2 4 1"`).String()
)

var setFlags = map[string]bool{}

func markSet(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		setFlags[name] = true
		return nil
	}
}

func main() {
	log.SetFlags(0)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "")

	switch command {
	case heptadecagonCmd.FullCommand():
		err = runHeptadecagon(cfg, *constructFlag)
	case polygonCmd.FullCommand():
		err = runPolygon(cfg, *polygonSides, *polygonTheta0)
	case netgraphCmd.FullCommand():
		err = runNetgraph(cfg, *netgraphLayers)
	}
	app.FatalIfError(err, "")
}
