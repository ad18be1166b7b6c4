package album

import (
	"fmt"

	"github.com/disintegration/imaging"

	"usblcd/pkg/mixer"
)

func NewDrawer(mx *mixer.Drawer, album *Album) *Drawer {
	return &Drawer{mixer: mx, album: album}
}

type Drawer struct {
	mixer *mixer.Drawer
	album *Album
}

// Drawing fits the album's next image to the panel and pushes it out.
func (d *Drawer) Drawing() error {
	name, err := d.album.Next()
	if err != nil {
		return fmt.Errorf("pick image failed: %w", err)
	}

	img, err := d.album.Load(name)
	if err != nil {
		return fmt.Errorf("load image failed: %w", err)
	}

	img2 := imaging.Fill(img, PanelWidth, PanelHeight, imaging.Center, imaging.Lanczos)
	if err := d.mixer.Canvas(img2); err != nil {
		return fmt.Errorf("draw image failed: %w", err)
	}

	return nil
}
