package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/squaredcircle/booker/booker/game"
)

// PosterService renders show posters as PNGs by screenshotting a
// rendered HTML card in headless Chrome.
type PosterService struct {
	logger *slog.Logger
	tmpl   *template.Template
}

type posterData struct {
	ShowName string
	Venue    string
	Date     string
	Matches  []posterMatch
}

type posterMatch struct {
	Headline string
	Type     string
}

const posterTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { margin: 0; background: #111; font-family: Georgia, serif; }
  #poster { width: 600px; padding: 40px; background: linear-gradient(#1a1a2e, #16213e); color: #eee; }
  h1 { font-size: 42px; text-transform: uppercase; color: #e94560; margin: 0 0 8px; }
  .venue { font-size: 18px; color: #aaa; margin-bottom: 24px; }
  .match { border-top: 1px solid #333; padding: 14px 0; }
  .headline { font-size: 24px; }
  .type { font-size: 14px; color: #e94560; text-transform: uppercase; }
</style>
</head>
<body>
<div id="poster">
  <h1>{{.ShowName}}</h1>
  <div class="venue">{{.Venue}} &middot; {{.Date}}</div>
  {{range .Matches}}
  <div class="match">
    <div class="headline">{{.Headline}}</div>
    <div class="type">{{.Type}}</div>
  </div>
  {{end}}
</div>
</body>
</html>`

func NewPosterService() *PosterService {
	service := &PosterService{
		logger: slog.With(slog.String("service", "poster")),
		tmpl:   template.Must(template.New("poster").Parse(posterTemplate)),
	}

	service.testChromedpAvailability()

	return service
}

func (s *PosterService) testChromedpAvailability() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chromedpCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(chromedpCtx, chromedp.Navigate("data:text/html,<html><body>test</body></html>"))
	if err != nil {
		s.logger.Error("chromedp not available - poster generation will fail",
			slog.String("error", err.Error()))
	} else {
		s.logger.Info("chromedp is available and working")
	}
}

// GeneratePoster renders the show card into a PNG.
func (s *PosterService) GeneratePoster(ctx context.Context, show game.Show, wrestlers map[string]game.Wrestler) ([]byte, error) {
	start := time.Now()

	data := posterData{
		ShowName: show.Name,
		Venue:    show.Venue,
		Date:     show.Date.Format("January 2, 2006"),
	}
	for _, m := range show.Matches {
		data.Matches = append(data.Matches, posterMatch{
			Headline: matchHeadline(m, wrestlers),
			Type:     m.Type,
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render poster template: %w", err)
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	chromedpCtx, cancel = context.WithTimeout(chromedpCtx, 15*time.Second)
	defer cancel()

	var imageBytes []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(buf.String())),
		chromedp.WaitVisible("#poster", chromedp.ByID),
		chromedp.Sleep(200*time.Millisecond),
		chromedp.Screenshot("#poster", &imageBytes, chromedp.ByID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate poster: %w", err)
	}

	s.logger.Info("Poster generated",
		slog.String("show", show.Name),
		slog.Int("image_size", len(imageBytes)),
		slog.Duration("elapsed", time.Since(start)))

	return imageBytes, nil
}

func matchHeadline(m game.Match, wrestlers map[string]game.Wrestler) string {
	names := make([]string, 0, len(m.Participants))
	for _, id := range m.Participants {
		if w, ok := wrestlers[id]; ok {
			names = append(names, w.Name)
		} else {
			names = append(names, id)
		}
	}
	switch len(names) {
	case 0:
		return "TBA"
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1:] {
			out += " vs " + n
		}
		return out
	}
}
