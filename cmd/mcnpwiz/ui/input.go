package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mcnpwiz/internal/lattice"
)

// Input parsing for the wizard prompts. Every parser returns a descriptive
// error the dialogue shows before reprompting; nothing here terminates the
// program.

func parseIntInput(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("invalid input, please enter an integer")
	}
	return n, nil
}

func parseFloatInput(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("invalid input, please enter a number")
	}
	return f, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errors.New("invalid input, please enter 'y' or 'n'")
}

// parseChoice parses a numbered menu answer within [1, n].
func parseChoice(s string, n int) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || c < 1 || c > n {
		return 0, fmt.Errorf("invalid choice, please enter a number between 1 and %d", n)
	}
	return c, nil
}

// parseDimension parses one lattice axis: a single index ("5") or an
// inclusive range ("0:9").
func parseDimension(s string) (lattice.Dimension, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return lattice.Dimension{}, errors.New("invalid range format, use 'min:max' (e.g. 0:9)")
		}
		lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return lattice.Dimension{}, errors.New("invalid numbers in range, try again")
		}
		d, err := lattice.NewRange(lo, hi)
		if err != nil {
			return lattice.Dimension{}, errors.New("minimum must be <= maximum")
		}
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return lattice.Dimension{}, errors.New("invalid input, enter a number or range (min:max)")
	}
	return lattice.Single(n), nil
}
