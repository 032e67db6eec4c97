package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/xypong/resources"
)

const windowResource = "window"

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

func (g windowGeometry) String() string {
	return fmt.Sprintf("%d %d %d %d", g.x, g.y, g.w, g.h)
}

func parseGeometry(s string) (windowGeometry, error) {
	var g windowGeometry
	_, err := fmt.Sscanf(s, "%d %d %d %d", &g.x, &g.y, &g.w, &g.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("window geometry: %w", err)
	}
	if !g.valid() {
		return windowGeometry{}, fmt.Errorf("window geometry: invalid: %s", s)
	}
	return g, nil
}

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read(windowResource)
	if err != nil {
		return windowGeometry{}, err
	}

	// no geometry has been saved yet
	if s == "" {
		return windowGeometry{}, nil
	}

	geom, err := parseGeometry(s)
	if err != nil {
		return windowGeometry{}, err
	}

	ebiten.SetWindowPosition(geom.x, geom.y)
	ebiten.SetWindowSize(geom.w, geom.h)

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	return resources.Write(windowResource, geom.String())
}
