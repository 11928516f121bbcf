package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/farmhand/go-automate/internal/display"
	"github.com/farmhand/go-automate/internal/engine"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

const banner = "go-automate status console. Type 'help' for commands.\n"

// Console serves the operator status console over a listener connection.
// It inspects the registry and can trigger rebuilds; it never edits world
// contents directly.
type Console struct {
	engine *engine.Engine
	world  *world.World
}

func New(e *engine.Engine, w *world.World) *Console {
	return &Console{
		engine: e,
		world:  w,
	}
}

// RunSession drives one connection until quit, disconnect, or shutdown.
func (c *Console) RunSession(ctx context.Context, rw io.ReadWriter) error {
	if _, err := rw.Write([]byte(banner)); err != nil {
		return err
	}

	br := bufio.NewReader(rw)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := prompt(rw, br, "> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var out string
		switch fields[0] {
		case "help":
			out = c.help()
		case "locations":
			out = c.locations()
		case "machines":
			if len(fields) < 2 {
				out = "usage: machines <location>\n"
				break
			}
			out = c.machines(storage.Identifier(fields[1]))
		case "rebuild":
			if len(fields) > 1 {
				c.engine.RebuildOne(storage.Identifier(fields[1]))
				out = fmt.Sprintf("rebuilt %s\n", fields[1])
			} else {
				c.engine.RebuildAll()
				out = "rebuilt all locations\n"
			}
		case "quit", "exit":
			_, _ = rw.Write([]byte("bye\n"))
			return nil
		default:
			out = fmt.Sprintf("unknown command %q; try 'help'\n", fields[0])
		}

		if _, err := rw.Write([]byte(display.Wrap(out))); err != nil {
			return err
		}
	}
}

func (c *Console) help() string {
	return "" +
		"locations            list known locations\n" +
		"machines <location>  list registered machines in a location\n" +
		"rebuild [location]   rebuild topology for one or all locations\n" +
		"quit                 close the session\n"
}

func (c *Console) locations() string {
	var b strings.Builder
	for _, st := range c.engine.Status() {
		fmt.Fprintf(&b, "%-20s %s (%d machines)\n", st.Id, st.Name, len(st.Machines))
	}
	if b.Len() == 0 {
		return "no locations known\n"
	}
	return b.String()
}

func (c *Console) machines(id storage.Identifier) string {
	for _, st := range c.engine.Status() {
		if st.Id != id.String() {
			continue
		}
		if len(st.Machines) == 0 {
			return "no machines registered\n"
		}
		var b strings.Builder
		for _, m := range st.Machines {
			fmt.Fprintf(&b, "%-16s %-8s %-10s %d store(s)\n", m.DisplayName, m.Tile, m.State, m.Stores)
		}
		return b.String()
	}
	return fmt.Sprintf("unknown location %q\n", id)
}
