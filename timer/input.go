package timer

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

const commandBuffer = 8

// Controller turns keystrokes and termination signals into engine commands.
// While it runs the terminal is in raw mode so that single keys are
// delivered without waiting for Enter.
type Controller struct {
	in      *os.File
	keys    keymap
	cmds    chan Command
	done    chan struct{}
	signals chan os.Signal
	reader  cancelreader.CancelReader
	state   *term.State
	wg      sync.WaitGroup
	once    sync.Once
}

// NewController returns a Controller reading from in.
func NewController(in *os.File) *Controller {
	return &Controller{
		in:      in,
		keys:    defaultKeymap,
		cmds:    make(chan Command, commandBuffer),
		done:    make(chan struct{}),
		signals: make(chan os.Signal, 1),
	}
}

// Commands is the queue consumed by Engine.Run.
func (c *Controller) Commands() <-chan Command {
	return c.cmds
}

// Start begins listening for keystrokes and signals. Input that is not a
// terminal is read as is.
func (c *Controller) Start() error {
	fd := int(c.in.Fd())

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return errRawMode.Wrap(err)
		}

		c.state = state
	}

	signal.Notify(c.signals, os.Interrupt, syscall.SIGTERM)

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		c.watchSignals()
	}()

	// stdin redirected from a regular file cannot be polled, in which case
	// only signals are handled
	reader, err := cancelreader.NewReader(c.in)
	if err != nil {
		slog.Warn("keyboard input disabled", slog.Any("error", err))
		return nil
	}

	c.reader = reader

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		readCommands(c.reader, c.keys, c.cmds, c.done)
	}()

	return nil
}

func (c *Controller) watchSignals() {
	for {
		select {
		case s := <-c.signals:
			slog.Info("received signal", slog.String("signal", s.String()))

			if !send(c.cmds, CmdQuit, c.done) {
				return
			}
		case <-c.done:
			return
		}
	}
}

// Stop cancels the pending read, restores the terminal and releases stdin.
// It is safe to call more than once.
func (c *Controller) Stop() {
	c.once.Do(func() {
		signal.Stop(c.signals)
		close(c.done)

		if c.reader != nil {
			c.reader.Cancel()
		}

		c.wg.Wait()

		if c.reader != nil {
			_ = c.reader.Close()
		}

		c.restore()
	})
}

func (c *Controller) restore() {
	if c.state == nil {
		return
	}

	err := term.Restore(int(c.in.Fd()), c.state)
	if err != nil {
		slog.Error("unable to restore terminal", slog.Any("error", err))
	}

	c.state = nil
}

func send(out chan<- Command, cmd Command, done <-chan struct{}) bool {
	select {
	case out <- cmd:
		return true
	case <-done:
		return false
	}
}

// readCommands forwards the commands bound to the bytes read from r until r
// fails or done is closed.
func readCommands(
	r io.Reader,
	keys keymap,
	out chan<- Command,
	done <-chan struct{},
) {
	buf := make([]byte, 64)

	for {
		n, err := r.Read(buf)

		for _, b := range buf[:n] {
			cmd, ok := keys.command(b)
			if !ok {
				continue
			}

			if !send(out, cmd, done) {
				return
			}
		}

		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) &&
				!errors.Is(err, io.EOF) {
				slog.Error("unable to read input", slog.Any("error", err))
			}

			return
		}
	}
}
