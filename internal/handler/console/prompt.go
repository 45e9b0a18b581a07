package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-guest-manager/internal/pkg/errs"
)

// Prompter reads one answer per line, whatever its length. io.EOF is returned once input is exhausted.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errs.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt asks again until the answer parses as an integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "\tNumber expected - you entered %q\n", line)
	}
}

// ReadBool accepts y/yes/true and n/no/false in any case.
func (p *Prompter) ReadBool(prompt string) (bool, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		fmt.Fprintf(p.out, "\tEnter y or n - you entered %q\n", line)
	}
}
