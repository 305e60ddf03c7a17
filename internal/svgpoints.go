package internal

import (
	"io"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point list out of an SVG document. This is not a general SVG reader:
// every <circle> element contributes its center, in document order, and
// everything else is ignored. Transforms are not applied.
func ParseSVGPoints(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := rootEl.FindAll("circle")
	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		x, err := parseCoordinate(circle, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(circle, "cy")
		if err != nil {
			return nil, err
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

// Missing coordinates default to zero, as in SVG itself.
func parseCoordinate(el *svgparser.Element, attr string) (float64, error) {
	s, ok := el.Attributes[attr]
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", attr, s)
	}
	return v, nil
}
