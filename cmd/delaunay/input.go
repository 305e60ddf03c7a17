package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type EventKind int

const (
	AddEvent EventKind = iota
	UndoEvent
	ResetEvent
)

// One step of an interactive session: a click adds a point, and the undo and
// reset keys retract the last point or clear everything.
type Event struct {
	Kind  EventKind
	Point delaunay.Point
}

// Sessions are YAML lists. Each entry is either the bare word "undo" or
// "reset", or a mapping "add: [x, y]".
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Value {
		case "undo":
			*e = Event{Kind: UndoEvent}
		case "reset":
			*e = Event{Kind: ResetEvent}
		default:
			return errors.Errorf("line %d: unknown event %q", value.Line, value.Value)
		}
		return nil
	case yaml.MappingNode:
		var add struct {
			Add []float64 `yaml:"add"`
		}
		if err := value.Decode(&add); err != nil {
			return errors.Wrapf(err, "line %d", value.Line)
		}
		if len(add.Add) != 2 {
			return errors.Errorf("line %d: add needs exactly two coordinates, got %d", value.Line, len(add.Add))
		}
		*e = Event{Kind: AddEvent, Point: delaunay.Point{X: add.Add[0], Y: add.Add[1]}}
		return nil
	}
	return errors.Errorf("line %d: invalid event", value.Line)
}

func ReadSession(r io.Reader) ([]Event, error) {
	var events []Event
	if err := yaml.NewDecoder(r).Decode(&events); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding session")
	}
	return events, nil
}

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadPoints(r io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid x %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid y %q", parts[1])
	}
	return delaunay.Point{X: x, Y: y}, nil
}

func AddEvents(points []delaunay.Point) []Event {
	events := make([]Event, len(points))
	for i, p := range points {
		events[i] = Event{Kind: AddEvent, Point: p}
	}
	return events
}
