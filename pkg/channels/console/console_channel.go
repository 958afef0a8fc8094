package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
)

// ConsoleChannel implements api.Channel as an interactive terminal REPL.
// It reads queries line by line from stdin and prints replies to stdout.
// Typing "quit", "exit" or "q" ends the loop.
type ConsoleChannel struct {
	in       io.Reader
	out      io.Writer
	stopOnce sync.Once
	stopped  chan struct{}
	done     chan struct{} // closed when the read loop exits
}

func NewConsoleChannel() *ConsoleChannel {
	return &ConsoleChannel{
		in:      os.Stdin,
		out:     os.Stdout,
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (c *ConsoleChannel) ID() string {
	return "console"
}

// Done is closed when the user exits the REPL. The main process can watch
// it to shut down after an interactive session ends.
func (c *ConsoleChannel) Done() <-chan struct{} {
	return c.done
}

func (c *ConsoleChannel) Start(ctx api.ChannelContext) error {
	go c.readLoop(ctx)
	return nil
}

func (c *ConsoleChannel) readLoop(ctx api.ChannelContext) {
	defer close(c.done)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Intelligent routing assistant is ready.")
	fmt.Fprintln(c.out, "Type your question, or 'quit' to exit.")
	fmt.Fprintln(c.out, strings.Repeat("-", 50))

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	session := api.SessionContext{
		ChannelID: "console",
		UserID:    "local",
		ChatID:    "local",
		Username:  "Console",
	}

	for {
		select {
		case <-c.stopped:
			return
		default:
		}

		fmt.Fprint(c.out, "\n> ")
		if !scanner.Scan() {
			return
		}

		query := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			fmt.Fprintln(c.out, "Goodbye!")
			return
		case "":
			fmt.Fprintln(c.out, "Please enter a valid question")
			continue
		}

		ctx.OnMessage(c.ID(), &api.UnifiedMessage{
			Session: session,
			Content: query,
		})
	}
}

func (c *ConsoleChannel) Stop() error {
	c.stopOnce.Do(func() {
		close(c.stopped)
	})
	return nil
}

func (c *ConsoleChannel) Send(session api.SessionContext, message string) error {
	_, err := fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", strings.Repeat("=", 50), message, strings.Repeat("=", 50))
	return err
}
