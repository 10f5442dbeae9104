//go:build !headless

// video_backend_ebiten.go - Ebiten window presenter and keyboard input

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

type keyBinding struct {
	key ebiten.Key
	pad byte
}

// EbitenPresenter is an ebiten.Game. Ebiten's 60 TPS Update loop is the
// frame clock: each Update runs one FrameDriver frame, which in turn calls
// back into Present and Poll.
type EbitenPresenter struct {
	cfg      MachineConfig
	keypad   *Keypad
	bindings []keyBinding
	driver   *FrameDriver

	window      *ebiten.Image
	frameBuffer []byte
	width       int
	height      int
	on, off     color.RGBA

	fullscreen    bool
	showStatusBar bool
	fault         error

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenPresenter(cfg MachineConfig, keypad *Keypad) (*EbitenPresenter, error) {
	bindings, err := ebitenBindings(cfg.KeyMap)
	if err != nil {
		return nil, &VideoError{Operation: "backend creation", Details: "key map", Err: err}
	}
	p := &EbitenPresenter{
		cfg:         cfg,
		keypad:      keypad,
		bindings:    bindings,
		width:       CHIP8_SCREEN_WIDTH * cfg.Scale,
		height:      CHIP8_SCREEN_HEIGHT * cfg.Scale,
		frameBuffer: make([]byte, frameBufferSize(cfg.Scale)),
		on:          rgbToColor(cfg.OnColor),
		off:         rgbToColor(cfg.OffColor),
	}
	rasterizeRGBA(p.frameBuffer, [CHIP8_SCREEN_HEIGHT]uint64{}, cfg.Scale, p.on, p.off)
	return p, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// A machine fault freezes the picture with the status bar showing FAULT and
// is returned once the window goes away.
func (p *EbitenPresenter) Run(driver *FrameDriver) error {
	p.driver = driver
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle("Intuition Engine CHIP-8")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(CHIP8_FRAME_RATE)
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(p); err != nil {
		return err
	}
	return p.fault
}

// Present rasterizes video memory when it changed since the last frame.
func (p *EbitenPresenter) Present(video *VideoMemory) error {
	if video.TakeDirty() {
		rasterizeRGBA(p.frameBuffer, video.Rows(), p.cfg.Scale, p.on, p.off)
	}
	return nil
}

// Poll samples the bound physical keys into the keypad.
func (p *EbitenPresenter) Poll() {
	var keys [CHIP8_KEY_COUNT]bool
	for _, b := range p.bindings {
		if ebiten.IsKeyPressed(b.key) {
			keys[b.pad] = true
		}
	}
	p.keypad.SetAll(keys)
}

func (p *EbitenPresenter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if p.fault != nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !p.isBound(ebiten.KeyP) {
		p.driver.SetPaused(!p.driver.IsPaused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		p.fullscreen = !p.fullscreen
		ebiten.SetFullscreen(p.fullscreen)
		if !p.fullscreen {
			ebiten.SetWindowSize(p.width, p.height)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		p.showStatusBar = !p.showStatusBar
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.copyScreenshot()
	}
	return p.stepFrame()
}

// stepFrame runs one machine frame. A failed frame is latched in p.fault so
// the window stays open on the halted picture.
func (p *EbitenPresenter) stepFrame() error {
	if p.fault != nil {
		return nil
	}
	if err := p.driver.RunFrame(); err != nil {
		p.fault = err
		logf("video", "Machine halted: %v (Esc to quit)", err)
	}
	return nil
}

func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	if p.window == nil {
		p.window = ebiten.NewImage(p.width, p.height)
	}
	p.window.WritePixels(p.frameBuffer)
	screen.DrawImage(p.window, nil)

	s := runtimeStatus.snapshot()
	if p.showStatusBar || s.paused || s.fault != nil {
		p.drawStatusBar(screen, s)
	}
}

func (p *EbitenPresenter) Layout(_, _ int) (int, int) {
	return p.width, p.height
}

func (p *EbitenPresenter) isBound(key ebiten.Key) bool {
	for _, b := range p.bindings {
		if b.key == key {
			return true
		}
	}
	return false
}

func (p *EbitenPresenter) copyScreenshot() {
	p.clipboardOnce.Do(func() {
		p.clipboardOK = clipboard.Init() == nil
	})
	if !p.clipboardOK {
		logf("video", "Clipboard unavailable, screenshot skipped")
		return
	}
	img, err := encodeFramePNG(p.driver.CPU().Video().Rows(), p.cfg.Scale, p.on, p.off)
	if err != nil {
		logf("video", "Screenshot encode failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, img)
}

func (p *EbitenPresenter) drawStatusBar(screen *ebiten.Image, s runtimeStatusSnapshot) {
	face := basicfont.Face7x13
	barHeight := 30
	if barHeight >= p.height {
		return
	}
	y := p.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(p.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	labelColor := color.RGBA{190, 190, 190, 255}
	stateColor := color.RGBA{0, 220, 90, 255}
	if s.fault != nil || s.paused {
		stateColor = color.RGBA{230, 60, 60, 255}
	}

	label := s.stateLabel()
	text.Draw(screen, label, face, 6, y+13, stateColor)
	x := 6 + text.BoundString(face, label).Dx() + 10
	tone := "-"
	if s.tone {
		tone = "ON"
	}
	info := fmt.Sprintf("PC %03X  FRAME %d  CYCLE %d  TONE %s", s.pc, s.frames, s.cycles, tone)
	text.Draw(screen, info, face, x, y+13, labelColor)

	legend := "P Pause  F9 Copy  F11 Fullscreen  F12 Status  Esc Quit"
	text.Draw(screen, legend, face, 6, y+26, color.RGBA{160, 160, 160, 255})
}

// ebitenBindings resolves a key map onto Ebiten keys in a stable order.
func ebitenBindings(keyMap map[string]byte) ([]keyBinding, error) {
	names := make([]string, 0, len(keyMap))
	for name := range keyMap {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make([]keyBinding, 0, len(names))
	for _, name := range names {
		key, ok := ebitenKeyByName[name]
		if !ok {
			return nil, fmt.Errorf("no Ebiten key for %q", name)
		}
		pad := keyMap[name]
		if int(pad) >= CHIP8_KEY_COUNT {
			return nil, fmt.Errorf("%q bound to keypad key %d", name, pad)
		}
		bindings = append(bindings, keyBinding{key: key, pad: pad})
	}
	return bindings, nil
}

var ebitenKeyByName = map[string]ebiten.Key{
	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD, "E": ebiten.KeyE,
	"F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH, "I": ebiten.KeyI, "J": ebiten.KeyJ,
	"K": ebiten.KeyK, "L": ebiten.KeyL, "M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO,
	"P": ebiten.KeyP, "Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX, "Y": ebiten.KeyY,
	"Z": ebiten.KeyZ,
}
