//go:build !windows

// terminal_host.go - Raw terminal presenter and keyboard input

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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminals only report presses, so a key counts as held for this many
// frames after its last byte arrives. Auto-repeat refreshes the hold.
const TERMINAL_KEY_HOLD_FRAMES = 8

var errTerminalQuit = errors.New("terminal quit")

// TerminalHost renders video memory with half-block characters and feeds
// stdin key presses into the keypad. Only instantiated in main.go for
// interactive use.
type TerminalHost struct {
	keypad *Keypad
	keyMap map[byte]byte // upper-case ASCII -> keypad key
	out    io.Writer

	holdMu sync.Mutex
	hold   [CHIP8_KEY_COUNT]int

	pauseToggles atomic.Int32
	driver       *FrameDriver
	lastStatus   string

	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host that draws to stdout and reads stdin.
func NewTerminalHost(cfg MachineConfig, keypad *Keypad) (*TerminalHost, error) {
	keyMap := make(map[byte]byte, len(cfg.KeyMap))
	for name, pad := range cfg.KeyMap {
		if len(name) != 1 {
			return nil, &VideoError{Operation: "backend creation", Details: fmt.Sprintf("key %q is not a single character", name)}
		}
		keyMap[strings.ToUpper(name)[0]] = pad
	}
	return &TerminalHost{
		keypad: keypad,
		keyMap: keyMap,
		out:    os.Stdout,
	}, nil
}

// Run puts stdin into raw non-blocking mode and runs the frame driver and
// the stdin reader together until Escape, Ctrl-C or a machine fault.
func (h *TerminalHost) Run(driver *FrameDriver) error {
	h.driver = driver
	h.fd = int(os.Stdin.Fd())

	if !term.IsTerminal(h.fd) {
		return &VideoError{Operation: "terminal setup", Details: "stdin is not a terminal"}
	}
	if w, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < CHIP8_SCREEN_WIDTH || rows < TERM_ROWS+1) {
		return &VideoError{Operation: "terminal setup", Details: fmt.Sprintf("terminal is %dx%d, need %dx%d", w, rows, CHIP8_SCREEN_WIDTH, TERM_ROWS+1)}
	}

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		return &VideoError{Operation: "terminal setup", Details: "raw mode", Err: err}
	}
	h.oldTermState = oldState
	if err := unix.SetNonblock(h.fd, true); err != nil {
		h.restore()
		return &VideoError{Operation: "terminal setup", Details: "nonblocking stdin", Err: err}
	}
	h.nonblockSet = true
	defer h.restore()

	fmt.Fprint(h.out, TERM_HIDE_CURSOR+TERM_CLEAR)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return h.readKeys(ctx)
	})
	g.Go(func() error {
		return driver.Run(ctx)
	})
	err = g.Wait()
	if errors.Is(err, errTerminalQuit) {
		return nil
	}
	if err != nil {
		h.showFault(err)
	}
	return err
}

// showFault leaves the final status line and the error on screen.
func (h *TerminalHost) showFault(err error) {
	status := terminalStatusLine(runtimeStatus.snapshot())
	fmt.Fprintf(h.out, "\x1b[%d;1H%s\x1b[K%v\r\n", TERM_ROWS+1, status, err)
}

func (h *TerminalHost) restore() {
	fmt.Fprint(h.out, TERM_SHOW_CURSOR)
	if h.nonblockSet {
		_ = unix.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

func (h *TerminalHost) readKeys(ctx context.Context) error {
	buf := make([]byte, 16)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, err := unix.Read(h.fd, buf)
		for _, b := range buf[:max(n, 0)] {
			if quit := h.handleByte(b); quit {
				return errTerminalQuit
			}
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || (err == nil && n == 0) {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("terminal read: %w", err)
		}
	}
}

// handleByte routes one stdin byte and reports whether it requests quit.
func (h *TerminalHost) handleByte(b byte) bool {
	switch b {
	case 0x1B, 0x03: // Escape, Ctrl-C
		return true
	case ' ':
		h.pauseToggles.Add(1)
		return false
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if pad, ok := h.keyMap[b]; ok {
		h.holdMu.Lock()
		h.hold[pad] = TERMINAL_KEY_HOLD_FRAMES
		h.holdMu.Unlock()
	}
	return false
}

// Poll ages key holds by one frame and publishes the result.
func (h *TerminalHost) Poll() {
	var keys [CHIP8_KEY_COUNT]bool
	h.holdMu.Lock()
	for i := range h.hold {
		if h.hold[i] > 0 {
			keys[i] = true
			h.hold[i]--
		}
	}
	h.holdMu.Unlock()
	h.keypad.SetAll(keys)

	if toggles := h.pauseToggles.Swap(0); toggles%2 == 1 && h.driver != nil {
		h.driver.SetPaused(!h.driver.IsPaused())
	}
}

// Present redraws the picture when video memory changed and the status
// line when it differs from the last one written.
func (h *TerminalHost) Present(video *VideoMemory) error {
	var sb strings.Builder
	if video.TakeDirty() {
		sb.WriteString(TERM_CURSOR_HOME)
		sb.WriteString(renderHalfBlocks(video))
	}
	status := terminalStatusLine(runtimeStatus.snapshot())
	if status != h.lastStatus || sb.Len() > 0 {
		fmt.Fprintf(&sb, "\x1b[%d;1H%s", TERM_ROWS+1, status)
		h.lastStatus = status
	}
	if sb.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(h.out, sb.String()); err != nil {
		return &VideoError{Operation: "terminal present", Details: "write", Err: err}
	}
	return nil
}
