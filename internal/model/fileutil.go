package model

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineContext represents a line from a file with surrounding context
type LineContext struct {
	Before     []string // Up to two lines before the target, oldest first
	Target     string   // The actual target line
	After      []string // Up to two lines after the target
	LineNumber int      // Line number of the target
	ErrorMsg   string   // Error message if file couldn't be read
}

// contextRadius is how many lines are kept on each side of the target.
const contextRadius = 2

// GetLineContext reads a file and returns the target line with surrounding context
func GetLineContext(filePath string, lineNumber int) LineContext {
	result := LineContext{
		LineNumber: lineNumber,
	}

	// Expand tilde in file path
	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			filePath = strings.Replace(filePath, "~", home, 1)
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		result.ErrorMsg = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	idx := lineNumber - 1
	result.Target = lines[idx]

	start := max(idx-contextRadius, 0)
	result.Before = append(result.Before, lines[start:idx]...)

	end := min(idx+1+contextRadius, len(lines))
	result.After = append(result.After, lines[idx+1:end]...)

	return result
}

// Lines renders the context as numbered lines, marking the target with "»".
func (c LineContext) Lines() []string {
	if c.ErrorMsg != "" {
		return []string{c.ErrorMsg}
	}
	out := make([]string, 0, len(c.Before)+1+len(c.After))
	first := c.LineNumber - len(c.Before)
	for i, l := range c.Before {
		out = append(out, fmt.Sprintf("  %4d  %s", first+i, l))
	}
	out = append(out, fmt.Sprintf("» %4d  %s", c.LineNumber, c.Target))
	for i, l := range c.After {
		out = append(out, fmt.Sprintf("  %4d  %s", c.LineNumber+1+i, l))
	}
	return out
}
