package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a point set and render it to a PNG. Points come from stdin as
// newline separated "x y" pairs, from the circles of an SVG file, or from a
// YAML session that replays add, undo and reset events the way the interactive
// canvas would receive them.

var (
	app = kingpin.New("delaunay", "Delaunay triangulation by incremental insertion.")

	svgFile     = app.Flag("svg", "Read points from the <circle> elements of an SVG file.").ExistingFile()
	sessionFile = app.Flag("session", "Replay a YAML list of add/undo/reset events.").ExistingFile()
	configFile  = app.Flag("config", "YAML render config.").ExistingFile()
	outFile     = app.Flag("out", "Write the rendered triangulation to this PNG file.").Short('o').String()
	showImgcat  = app.Flag("imgcat", "Print the rendered triangulation in the terminal (iTerm only).").Bool()
	dump        = app.Flag("dump", "Print the resulting triangles.").Bool()
	verbose     = app.Flag("verbose", "Log every recomputation.").Short('v').Bool()
)

func main() {
	log.SetFlags(0)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	config := render.DefaultConfig
	if *configFile != "" {
		var err error
		config, err = render.LoadConfig(*configFile)
		if err != nil {
			log.Fatal(aurora.Red(err))
		}
	}

	events, err := readEvents()
	if err != nil {
		log.Fatal(aurora.Red(err))
	}

	canvas := render.NewCanvas(config)
	var opts []delaunay.ControllerOption
	if *verbose {
		opts = append(opts, delaunay.WithLogger(log.New(os.Stderr, "delaunay: ", 0)))
	}
	controller := delaunay.NewController(canvas, opts...)

	rejected := Replay(controller, events, os.Stderr)

	triangles := controller.Triangles()
	fmt.Printf("%s %d points, %d triangles",
		aurora.Green("✔"), len(controller.Points()), len(triangles))
	if rejected > 0 {
		fmt.Printf(", %s", aurora.Yellow(fmt.Sprintf("%d events rejected", rejected)))
	}
	fmt.Println()

	if *dump {
		pretty.Println(triangles)
	}

	canvas.LabelTriangles(triangles)
	if *outFile != "" {
		if err := canvas.SavePNG(*outFile); err != nil {
			log.Fatal(aurora.Red(err))
		}
	}
	if *showImgcat {
		if err := canvas.Imgcat(); err != nil {
			log.Fatal(aurora.Red(err))
		}
	}
}

func readEvents() ([]Event, error) {
	switch {
	case *sessionFile != "":
		f, err := os.Open(*sessionFile)
		if err != nil {
			return nil, errors.Wrap(err, "opening session")
		}
		defer f.Close()
		return ReadSession(f)
	case *svgFile != "":
		f, err := os.Open(*svgFile)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		points, err := delaunay.ParseSVGPoints(f)
		if err != nil {
			return nil, err
		}
		return AddEvents(points), nil
	default:
		points, err := ReadPoints(os.Stdin)
		if err != nil {
			return nil, err
		}
		return AddEvents(points), nil
	}
}

// Feed events to the controller, reporting rejected ones to w. Returns the
// number of rejected events.
func Replay(controller *delaunay.Controller, events []Event, w io.Writer) int {
	rejected := 0
	for i, event := range events {
		var err error
		switch event.Kind {
		case AddEvent:
			err = controller.Add(event.Point)
		case UndoEvent:
			err = controller.Undo()
		case ResetEvent:
			controller.Reset()
		}
		if err != nil {
			rejected++
			fmt.Fprintf(w, "%s event %d: %v\n", aurora.Red("✘"), i+1, err)
		}
	}
	return rejected
}
