package album

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NewBot exposes slideshow control over a Telegram bot.
func NewBot(token string, drawer *Drawer, album *Album, logger *zap.Logger) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		drawer: drawer,
		album:  album,
		logger: logger,
	}
	bot.register()
	return bot, nil
}

type Bot struct {
	bot    *tele.Bot
	drawer *Drawer
	album  *Album
	logger *zap.Logger
}

func (b *Bot) register() {
	b.bot.Handle("/next", func(c tele.Context) error {
		if err := b.drawer.Drawing(); err != nil {
			b.logger.With(zap.Error(err)).Warn("bot draw failed")
			return c.Send(fmt.Sprintf("draw failed: %s", err))
		}
		return c.Send("ok")
	})

	b.bot.Handle("/recent", func(c tele.Context) error {
		names := b.album.History().Names()
		if len(names) == 0 {
			return c.Send("nothing shown yet")
		}
		return c.Send(strings.Join(names, "\n"))
	})

	b.bot.Handle("/rescan", func(c tele.Context) error {
		if err := b.album.Reload(); err != nil {
			return c.Send(fmt.Sprintf("rescan failed: %s", err))
		}
		return c.Send("ok")
	})
}

func (b *Bot) Start() {
	go b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
