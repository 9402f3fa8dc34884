// Package term implements the terminal frontend: a top-down view of the
// height field drawn with tcell, with the terminal mouse as the pointer.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/config"
	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/audio"
	"github.com/Faultbox/deformo/internal/engine/trigger"
	"github.com/Faultbox/deformo/internal/scene"
)

const (
	tickInterval = 16 * time.Millisecond // ~60 FPS
	maxTickDt    = 0.1
	statusRows   = 1
)

// Terminal is the terminal frontend instance.
type Terminal struct {
	screen tcell.Screen
	config *config.Config
	scene  *scene.Scene
	audio  *audio.Manager
	log    *zap.Logger

	tracker trigger.Tracker
	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
	pointer bool // mouse position known

	view View
	quit bool
}

// New initializes screen and builds the scene. A nil screen opens the
// controlling terminal.
func New(cfg *config.Config, screen tcell.Screen, log *zap.Logger) (*Terminal, error) {
	if log == nil {
		log = zap.NewNop()
	}

	sc, err := scene.New(cfg, log.Named("session"))
	if err != nil {
		return nil, err
	}

	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		config: cfg,
		scene:  sc,
		log:    log,
		audio: audio.New(audio.Config{
			Volume:     cfg.Audio.Volume,
			PushToneHz: cfg.Audio.PushToneHz,
			PullToneHz: cfg.Audio.PullToneHz,
		}),
	}
	if cfg.Audio.Enabled {
		if err := t.audio.Init(); err != nil {
			// Non-fatal, the terminal runs without sound
			log.Warn("audio disabled", zap.Error(err))
		}
	}
	t.fit()
	return t, nil
}

func (t *Terminal) fit() {
	w, h := t.screen.Size()
	t.view = NewView(w, h, statusRows, t.scene.Surface())
}

// Run reads events on a goroutine and ticks the scene on a fixed interval
// until the user quits or a tick fails.
func (t *Terminal) Run() error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for !t.quit {
		select {
		case ev := <-events:
			t.handleEvent(ev)

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxTickDt)
			last = now
			if err := t.step(float32(dt)); err != nil {
				return err
			}
			t.draw()
		}
	}
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.audio.Close()
	t.screen.Fini()
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)

	case *tcell.EventMouse:
		t.mouseX, t.mouseY = ev.Position()
		t.pointer = true
		cur := ev.Buttons()
		foldButtons(&t.tracker, t.buttons, cur)
		t.buttons = cur

	case *tcell.EventResize:
		t.screen.Sync()
		t.fit()

	case *tcell.EventFocus:
		if !ev.Focused {
			t.tracker.ReleaseAll()
			t.buttons = tcell.ButtonNone
		}
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	var err error
	switch ev.Rune() {
	case 'q':
		t.quit = true
	case 'r':
		err = t.scene.Rebuild()
	case '+', '=':
		err = t.scene.Resize(4)
		t.fit()
	case '-':
		err = t.scene.Resize(-4)
		t.fit()
	case '[':
		_, err = t.scene.ScaleRadius(1 / 1.25)
	case ']':
		_, err = t.scene.ScaleRadius(1.25)
	}
	if err != nil {
		t.log.Warn("key rejected", zap.String("key", string(ev.Rune())), zap.Error(err))
	}
}

// step ticks the scene with the triggers gathered since the last step.
func (t *Terminal) step(dt float32) error {
	in := deform.Input{
		Push: t.tracker.Push(),
		Pull: t.tracker.Pull(),
	}
	if t.pointer && t.view.Contains(t.mouseX, t.mouseY) {
		in.Ray = t.view.PointerRay(t.mouseX, t.mouseY, t.scene.Surface(), t.scene.Session().Params().MaxDepth)
	} else {
		// Pointing away from everything, so held triggers miss.
		in.Ray.Direction = t.scene.Normal()
		in.Ray.Origin = in.Ray.Direction.Scale(1e6)
	}
	t.tracker.BeginFrame()

	res, err := t.scene.Tick(dt, in)
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	dir := deform.Neutral
	if len(res.Brushed) > 0 {
		dir = res.Direction
	}
	if err := t.audio.SetStroke(dir); err != nil {
		t.log.Warn("stroke tone failed", zap.Error(err))
	}
	return nil
}

func (t *Terminal) draw() {
	s := t.scene.Surface()
	params := t.scene.Session().Params()
	albedo := t.config.Surface.Material.Albedo

	t.screen.Clear()
	for cy := 0; cy < t.view.Height; cy++ {
		for cx := 0; cx < t.view.Width; cx++ {
			x, y := t.view.CellToLocal(cx, cy)
			h, ok := SampleHeight(s, x, y)
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Background(heightColor(h, params.MaxDepth, albedo))
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}

	if t.pointer && t.view.Contains(t.mouseX, t.mouseY) {
		_, _, style, _ := t.screen.GetContent(t.mouseX, t.mouseY)
		t.screen.SetContent(t.mouseX, t.mouseY, '+', nil, style.Foreground(tcell.ColorBlack))
	}

	t.drawStatus(params)
	s.ClearDirty()
	t.screen.Show()
}

func (t *Terminal) drawStatus(params deform.BrushParams) {
	last := t.scene.Last()
	cfg := t.scene.Surface().Config()

	status := fmt.Sprintf(" %-8s %-7s radius %.2f  grid %dx%d  [ ] radius  +/- grid  r reset  q quit",
		last.State, last.Direction, params.Radius, cfg.Columns, cfg.Rows)

	_, h := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	for i, r := range status {
		t.screen.SetContent(i, h-1, r, nil, style)
	}
}
