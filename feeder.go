package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// feed runs a shell command and types every non-blank line it prints on
// the simulated keypad. The command is killed when ctx is done, so there is
// no separate stop: a command that already exited needs nothing.
type feed struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func startFeed(ctx context.Context, command string, typeLine func(string)) (*feed, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start feed %q: %w", command, err)
	}

	f := &feed{cmd: cmd, done: make(chan struct{})}
	go func() {
		defer close(f.done)

		lines := bufio.NewScanner(out)
		for lines.Scan() {
			if line := strings.TrimSpace(lines.Text()); line != "" {
				typeLine(line)
			}
		}
		if err := lines.Err(); err != nil {
			log.Println("feed:", err)
		}
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			log.Printf("feed %q: %v", command, err)
		}
	}()
	return f, nil
}

// Done is closed once the command has exited and its output is consumed.
func (f *feed) Done() <-chan struct{} {
	return f.done
}
