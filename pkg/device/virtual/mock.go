package virtual

import (
	"image"

	"go.uber.org/zap"

	"usblcd/pkg/proto"
)

func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Connect() error {
	m.l.Info("connect")
	return nil
}

func (m *Mocker) Restart() error {
	m.l.Info("restart")
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}

func (m *Mocker) ShowImage(image image.Image) error {
	m.l.With(
		zap.Int("w", image.Bounds().Dx()),
		zap.Int("h", image.Bounds().Dy()),
	).Info("show-image")
	return nil
}

func (m *Mocker) UpdateRegion(posX uint16, posY uint16, image image.Image) error {
	m.l.With(
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", image.Bounds().Dx()),
		zap.Int("h", image.Bounds().Dy()),
	).Info("update-region")
	return nil
}
