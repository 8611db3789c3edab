// Package keymapd turns scanner lines into runtime calls.
//
// Every line has the form type>>data. The event types are:
//
//	key>>row,col,pressed[,taps]
//	combo>>pressed,KEY,KEY...
//	dip>>index,active
//	encoder>>index,clockwise
//
// Booleans are 0/1 or true/false. Combo keys are keycode names or raw values
// such as 0x321A.
package keymapd

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"strconv"
	"strings"
)

var ErrInvalidLine = errors.New("invalid line")

type Dispatcher struct {
	listener EventListener
	engine   Engine
	log      *zap.SugaredLogger
}

func NewDispatcher(listener EventListener, engine Engine, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		listener: listener,
		engine:   engine,
		log:      log,
	}
}

// ProcessLines feeds lines from the listener to the engine until ctx is done
// or reading fails. Malformed lines and unknown combos are logged and skipped.
func (d *Dispatcher) ProcessLines(ctx context.Context) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		for {
			line, err := d.listener.ReadLine()
			if err != nil {
				errCh <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-lines:
			err := d.processLine(line)
			switch {
			case errors.Is(err, ErrInvalidLine), errors.Is(err, firmware.ErrNoCombo):
				d.log.Warnw("skipping event", "line", line, "error", err)
			case err != nil:
				return fmt.Errorf("process line: %w", err)
			}
		case err := <-errCh:
			return fmt.Errorf("get line: %w", err)
		}
	}
}

func (d *Dispatcher) processLine(line string) error {
	evType, evData, found := strings.Cut(line, ">>")
	if !found {
		return fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	fields := strings.Split(evData, ",")
	switch evType {
	case "key":
		return d.processKey(fields)
	case "combo":
		return d.processCombo(fields)
	case "dip":
		index, active, err := indexAndFlag(fields)
		if err != nil {
			return fmt.Errorf("dip switch: %w", err)
		}
		return d.engine.DipSwitchUpdate(index, active)
	case "encoder":
		index, clockwise, err := indexAndFlag(fields)
		if err != nil {
			return fmt.Errorf("encoder: %w", err)
		}
		return d.engine.EncoderUpdate(index, clockwise)
	}

	d.log.Debugw("ignoring unknown event", "type", evType)
	return nil
}

func (d *Dispatcher) processKey(fields []string) error {
	if len(fields) != 3 && len(fields) != 4 {
		return fmt.Errorf("%w: key event needs 3 or 4 fields, got %d", ErrInvalidLine, len(fields))
	}

	row, err := parseUint8(fields[0], keymap.MatrixRows)
	if err != nil {
		return fmt.Errorf("key row: %w", err)
	}
	col, err := parseUint8(fields[1], keymap.MatrixCols)
	if err != nil {
		return fmt.Errorf("key col: %w", err)
	}
	pressed, err := parseBool(fields[2])
	if err != nil {
		return fmt.Errorf("key pressed: %w", err)
	}

	var taps uint8
	if len(fields) == 4 {
		taps, err = parseUint8(fields[3], 256)
		if err != nil {
			return fmt.Errorf("key taps: %w", err)
		}
	}

	return d.engine.Process(firmware.Record{
		Pos:      keymap.Position{Row: row, Col: col},
		Pressed:  pressed,
		TapCount: taps,
	})
}

func (d *Dispatcher) processCombo(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: combo needs a state and at least two keys", ErrInvalidLine)
	}

	pressed, err := parseBool(fields[0])
	if err != nil {
		return fmt.Errorf("combo pressed: %w", err)
	}

	keys := make([]keycode.Keycode, 0, len(fields)-1)
	for _, name := range fields[1:] {
		kc, err := keycode.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: combo key: %w", ErrInvalidLine, err)
		}
		keys = append(keys, kc)
	}

	return d.engine.ProcessCombo(keys, pressed)
}

func indexAndFlag(fields []string) (int, bool, error) {
	if len(fields) != 2 {
		return 0, false, fmt.Errorf("%w: need 2 fields, got %d", ErrInvalidLine, len(fields))
	}
	index, err := parseUint8(fields[0], 256)
	if err != nil {
		return 0, false, err
	}
	flag, err := parseBool(fields[1])
	if err != nil {
		return 0, false, err
	}
	return int(index), flag, nil
}

func parseUint8(s string, limit int) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v >= limit {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidLine, s)
	}
	return uint8(v), nil
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidLine, s)
	}
	return v, nil
}
