package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Line is one console-format debug.log record split into its fields.
type Line struct {
	Time      string
	Level     string
	Component string
	Message   string
}

var levels = map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}

// Parse splits "TIME LEVEL component: message" into fields. Lines that do not
// follow the format come back whole in Message with ok false.
func Parse(raw string) (Line, bool) {
	ts, rest, found := strings.Cut(raw, " ")
	if !found {
		return Line{Message: raw}, false
	}
	level, rest, _ := strings.Cut(rest, " ")
	if !levels[level] {
		return Line{Message: raw}, false
	}
	line := Line{Time: ts, Level: level, Message: rest}
	if component, msg, ok := strings.Cut(rest, ": "); ok && component != "" && !strings.ContainsAny(component, " =") {
		line.Component = component
		line.Message = msg
	}
	return line, true
}
