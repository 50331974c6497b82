package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/sky-flux/sm2"
	"github.com/sky-flux/sm2/config"
	"github.com/sky-flux/sm2/simulator"
)

// env carries what every command needs once the global flags are parsed.
type env struct {
	in  io.Reader
	out io.Writer
	cfg *config.Config
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(in io.Reader, out io.Writer) *cli.App {
	e := &env{in: in, out: out, cfg: config.DefaultConfig()}
	app := &cli.App{
		Name:    "sm2",
		Usage:   "Ease-based spaced repetition scheduler",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to sm2.yaml (defaults built in)"},
		},
		Before: func(c *cli.Context) error {
			path := c.String("config")
			if path == "" {
				return nil
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			e.cfg = cfg
			return nil
		},
		Commands: []*cli.Command{
			scheduleCmd(e),
			previewCmd(e),
			statsCmd(e),
			simulateCmd(e),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func nowFlag() cli.Flag {
	return &cli.StringFlag{Name: "now", Usage: "Review time as RFC 3339 (defaults to the current time)"}
}

// scheduleCmd creates the schedule command.
func scheduleCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Schedule one response (reads the card's schedule JSON from stdin; empty for a new card)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "response", Aliases: []string{"r"}, Required: true, Usage: "hard|good|easy"},
			nowFlag(),
		},
		Action: func(c *cli.Context) error {
			r, err := sm2.ParseResponse(c.String("response"))
			if err != nil {
				return err
			}
			s, err := e.scheduler(c)
			if err != nil {
				return err
			}
			prev, err := e.readSchedule()
			if err != nil {
				return err
			}

			out, err := s.Schedule(r, prev)
			if err != nil {
				return err
			}
			next := sm2.Merge(prev, r, out)
			return e.writeJSON(struct {
				Outcome  sm2.ReviewOutcome `json:"outcome"`
				Schedule sm2.ScheduleInfo  `json:"schedule"`
			}{out, next})
		},
	}
}

// previewCmd creates the preview command.
func previewCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Show the outcome of every response (reads the card's schedule JSON from stdin)",
		Flags: []cli.Flag{nowFlag()},
		Action: func(c *cli.Context) error {
			s, err := e.scheduler(c)
			if err != nil {
				return err
			}
			prev, err := e.readSchedule()
			if err != nil {
				return err
			}
			return e.writeJSON(s.Preview(prev))
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Summarize a deck (reads a JSON array of cards from stdin)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Aliases: []string{"d"}, Value: 7, Usage: "Forecast window in days"},
			nowFlag(),
		},
		Action: func(c *cli.Context) error {
			s, err := e.scheduler(c)
			if err != nil {
				return err
			}
			var cards []sm2.Card
			if err := e.readJSON(&cards); err != nil {
				return err
			}
			days := c.Int("days")
			if days < 0 {
				return fmt.Errorf("days must not be negative: %d", days)
			}
			classes := make([]cardClass, len(cards))
			for i, card := range cards {
				classes[i] = cardClass{ID: card.ID, Maturity: sm2.MaturityOf(card.Schedule)}
			}
			return e.writeJSON(struct {
				Stats    sm2.Stats   `json:"stats"`
				DueNow   int         `json:"due_now"`
				DueSoon  int         `json:"due_within_days"`
				Forecast []int       `json:"forecast"`
				Cards    []cardClass `json:"cards"`
			}{
				Stats:    s.Statistics(cards),
				DueNow:   len(s.DueCards(cards)),
				DueSoon:  s.CountDueInDays(cards, days),
				Forecast: s.Forecast(cards, days),
				Cards:    classes,
			})
		},
	}
}

// cardClass is one card's maturity in the stats output.
type cardClass struct {
	ID       string       `json:"id"`
	Maturity sm2.Maturity `json:"maturity"`
}

// simulateCmd creates the simulate command.
func simulateCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Simulate review load for a synthetic deck",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "cards", Usage: "Deck size"},
			&cli.IntFlag{Name: "days", Aliases: []string{"d"}, Usage: "Days to simulate"},
			&cli.IntFlag{Name: "new-per-day", Usage: "New cards introduced per day (0: all on day one)"},
			&cli.Int64Flag{Name: "seed", Usage: "Random seed"},
			&cli.BoolFlag{Name: "no-balance", Usage: "Disable load balancing"},
			&cli.BoolFlag{Name: "with-cards", Usage: "Include final card states in the output"},
		},
		Action: func(c *cli.Context) error {
			simCfg := e.cfg.Simulator
			if c.IsSet("cards") {
				simCfg.Cards = c.Int("cards")
			}
			if c.IsSet("days") {
				simCfg.Days = c.Int("days")
			}
			if c.IsSet("new-per-day") {
				simCfg.NewPerDay = c.Int("new-per-day")
			}
			if c.IsSet("seed") {
				simCfg.Seed = c.Int64("seed")
			}
			settings := e.cfg.Scheduler
			if c.Bool("no-balance") {
				settings.LoadBalance = false
			}

			sim, err := simulator.NewSimulator(simCfg)
			if err != nil {
				return err
			}
			res, err := sim.Run(c.Context, settings)
			if err != nil {
				return err
			}
			if !c.Bool("with-cards") {
				res.Cards = nil
			}
			return e.writeJSON(res)
		},
	}
}

// scheduler builds a Scheduler from the loaded settings and the --now flag.
func (e *env) scheduler(c *cli.Context) (*sm2.Scheduler, error) {
	var opts []sm2.Option
	if v := c.String("now"); v != "" {
		now, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		opts = append(opts, sm2.WithClock(func() time.Time { return now }))
	}
	return sm2.NewScheduler(e.cfg.Scheduler, opts...)
}

// readSchedule decodes an optional ScheduleInfo from stdin.
// Empty input means a card that has never been scheduled.
func (e *env) readSchedule() (*sm2.ScheduleInfo, error) {
	data, err := io.ReadAll(e.in)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var info sm2.ScheduleInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("invalid schedule JSON: %w", err)
	}
	return &info, nil
}

func (e *env) readJSON(v any) error {
	data, err := io.ReadAll(e.in)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON input: %w", err)
	}
	return nil
}

func (e *env) writeJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
