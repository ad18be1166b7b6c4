package album

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Panel resolution of the 5" screen.
const (
	PanelWidth  = 800
	PanelHeight = 480
)

var imageExts = []string{".png", ".jpg", ".jpeg"}

// NewAlbum cycles over image files in a local directory.
func NewAlbum(dir string, opts ...Option) (*Album, error) {
	fs, err := newFs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "open album dir")
	}
	return NewAlbumFs(fs, opts...)
}

// NewAlbumFs is NewAlbum over an arbitrary filesystem.
func NewAlbumFs(fs afero.Fs, opts ...Option) (*Album, error) {
	a := &Album{
		fs:      fs,
		history: NewHistory(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

type Album struct {
	fs      afero.Fs
	files   []string
	idx     int
	shuffle bool
	history *History
}

type Option func(a *Album)

func WithShuffle() Option {
	return func(a *Album) { a.shuffle = true }
}

// Reload rescans the directory and restarts the cycle.
func (a *Album) Reload() error {
	infos, err := afero.ReadDir(a.fs, ".")
	if err != nil {
		return errors.Wrap(err, "scan album dir")
	}

	var files []string
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(fi.Name()))
		if lo.Contains(imageExts, ext) {
			files = append(files, fi.Name())
		}
	}

	if len(files) == 0 {
		return errors.New("album has no images")
	}

	if a.shuffle {
		files = lo.Shuffle(files)
	}

	a.files = files
	a.idx = 0
	return nil
}

// Next returns the next file name, rescanning when the cycle wraps.
func (a *Album) Next() (string, error) {
	if a.idx >= len(a.files) {
		if err := a.Reload(); err != nil {
			return "", err
		}
	}

	name := a.files[a.idx]
	a.idx++
	a.history.Add(name)
	return name, nil
}

// Load decodes one album image.
func (a *Album) Load(name string) (image.Image, error) {
	bs, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}

	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return img, nil
}

func (a *Album) History() *History {
	return a.history
}
