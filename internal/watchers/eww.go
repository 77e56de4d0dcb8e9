package watchers

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// ewwUpdate is swapped in tests.
var ewwUpdate = func(assignment string) error {
	return exec.Command("eww", "update", assignment).Run()
}

func updateEww(module string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return ewwUpdate(module + "=" + string(jsonData))
}

func updateEwwNoJson(module string, data any) error {
	return ewwUpdate(fmt.Sprintf("%s=%v", module, data))
}

// EwwSink publishes the progress level and label as eww variables, so a
// bar widget can draw them. It implements brightness.ProgressSink and
// brightness.TextSink.
type EwwSink struct {
	LevelVar string
	LabelVar string
}

func (e *EwwSink) SetProgress(level int) error {
	if err := updateEwwNoJson(e.LevelVar, strconv.Itoa(level)); err != nil {
		return fmt.Errorf("eww update %s: %w", e.LevelVar, err)
	}
	return nil
}

func (e *EwwSink) SetText(label string) error {
	if err := updateEwwNoJson(e.LabelVar, label); err != nil {
		return fmt.Errorf("eww update %s: %w", e.LabelVar, err)
	}
	return nil
}
