package album

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewDownloader fetches images over http(s). With a non-empty dir the
// downloads are kept on disk and reused.
func NewDownloader(dir string, logger *zap.Logger) (*Downloader, error) {
	d := &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	if dir == "" {
		return d, nil
	}

	if fs, err := newFs(dir); err != nil {
		return nil, fmt.Errorf("create downloader failed: %w", err)
	} else {
		d.fs = fs
	}

	return d, nil
}

type Downloader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func (d *Downloader) filename(rawURL string) string {
	u, _ := url.Parse(rawURL)
	return path.Base(u.Path)
}

func (d *Downloader) Get(rawURL string) ([]byte, error) {
	if d.fs != nil {
		file := d.filename(rawURL)
		if exists, err := afero.Exists(d.fs, file); err != nil {
			return nil, err
		} else if exists {
			d.log.With(zap.String("file", file)).Debug("download cache hit")
			return afero.ReadFile(d.fs, file)
		}
	}

	resp, err := d.cli.R().Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	body := resp.RawResponse.Body
	defer body.Close()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", rawURL))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), body); err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	if d.fs != nil {
		if err := afero.WriteFile(d.fs, d.filename(rawURL), buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("save download failed: %w", err)
		}
	}

	return buf.Bytes(), nil
}
