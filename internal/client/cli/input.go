package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/luggageshare/internal/client/docs"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetKg prompts for a weight in kilograms. An empty answer means 0.
func GetKg(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	s, err := getSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	kg, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrValidation, s)
	}
	return kg, nil
}

// getSimpleText and readDataURL are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	readDataURL   = docs.DataURL
)
