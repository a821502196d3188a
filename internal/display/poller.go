package display

import (
	"context"

	"go.uber.org/zap"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
)

// Fetcher returns the relay's current report.
type Fetcher interface {
	FetchReport(ctx context.Context) (forecast.Report, error)
}

// Renderer draws a view somewhere.
type Renderer interface {
	Render(v View) error
}

// Poller runs one fetch-update-render cycle per call to Poll.
type Poller struct {
	fetcher   Fetcher
	board     *Board
	renderers []Renderer
	logger    *zap.Logger
}

func NewPoller(fetcher Fetcher, board *Board, logger *zap.Logger, renderers ...Renderer) *Poller {
	return &Poller{
		fetcher:   fetcher,
		board:     board,
		renderers: renderers,
		logger:    logger,
	}
}

// Poll fetches once, updates the board and re-renders. It never retries.
func (p *Poller) Poll(ctx context.Context) {
	report, err := p.fetcher.FetchReport(ctx)
	if err != nil {
		p.logger.Warn("weather poll failed", zap.Error(err))
		p.board.Fail()
	} else {
		p.board.Apply(report)
	}

	view := p.board.View()
	for _, r := range p.renderers {
		if err := r.Render(view); err != nil {
			p.logger.Error("render failed", zap.Error(err))
		}
	}
}
