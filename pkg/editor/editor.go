// Package editor lets a user blank out or replace any text block of a PDF
// through terminal prompts.
package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/extractors"
	"github.com/pyhub-apps/packlist/pkg/pdf"
	"github.com/pyhub-apps/packlist/pkg/prompt"
	"github.com/pyhub-apps/packlist/pkg/render"
)

// Editor collects edits interactively and applies them with an overlay
type Editor struct {
	Prompt  *prompt.Prompter
	Builder *extractors.BlockBuilder
	Overlay *render.Overlay
	Log     logrus.FieldLogger
}

// New creates an editor reading answers from p
func New(p *prompt.Prompter, log logrus.FieldLogger) *Editor {
	return &Editor{
		Prompt:  p,
		Builder: extractors.NewBlockBuilder(),
		Overlay: render.NewOverlay(log),
		Log:     log,
	}
}

// Run extracts the blocks of src, asks which ones to change and writes the
// edited copy to dst. It returns the number of edits applied.
func (e *Editor) Run(src, dst string) (int, error) {
	doc, err := pdf.Open(src)
	if err != nil {
		return 0, err
	}
	seq := e.Builder.Extract(doc)
	doc.Close()

	edits, err := e.Collect(seq)
	if err != nil {
		return 0, err
	}
	if len(edits) == 0 {
		e.Prompt.Println("\nNo changes made.")
		return 0, nil
	}

	if err := e.Overlay.Apply(src, dst, edits); err != nil {
		return 0, fmt.Errorf("failed to apply edits: %w", err)
	}
	e.Prompt.Printf("\nEdited PDF saved to: %s\n", dst)
	return len(edits), nil
}

// Collect shows the block preview and gathers edits until the user stops.
// Closing the input ends the session with the edits gathered so far.
func (e *Editor) Collect(seq block.Sequence) ([]render.Edit, error) {
	var edits []render.Edit
	for {
		more, err := e.round(seq, &edits)
		if errors.Is(err, io.EOF) {
			return edits, nil
		}
		if err != nil {
			return nil, err
		}
		if !more {
			return edits, nil
		}
	}
}

// round runs one preview and selection pass, reporting whether to continue
func (e *Editor) round(seq block.Sequence, edits *[]render.Edit) (bool, error) {
	e.Prompt.Println("=== Text blocks ===")
	var preview strings.Builder
	if err := seq.WritePreview(&preview); err != nil {
		return false, err
	}
	e.Prompt.Println(preview.String())

	answer, err := e.Prompt.Ask("Block ids to edit (comma separated, q to quit): ")
	if err != nil {
		return false, err
	}
	if strings.EqualFold(answer, "q") {
		return false, nil
	}

	ids, invalid := prompt.ParseIDs(answer, len(seq))
	for _, token := range invalid {
		e.Prompt.Printf("Invalid block id: %s\n", token)
	}

	for _, id := range ids {
		b := seq[id]
		e.Prompt.Printf("\nSelected block: %s\n", b.Text)
		action, err := e.Prompt.Ask("Action (delete/replace): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(action) {
		case "delete":
			*edits = append(*edits, render.NewEdit(b, render.EditDelete, ""))
		case "replace":
			text, err := e.Prompt.Ask("Replacement text: ")
			if err != nil {
				return false, err
			}
			if text == "" {
				e.Prompt.Println("Empty replacement, skipped.")
				continue
			}
			*edits = append(*edits, render.NewEdit(b, render.EditReplace, text))
		default:
			e.Prompt.Println("Unknown action, skipped.")
			continue
		}

		e.logger().WithFields(logrus.Fields{
			"id":     b.ID,
			"page":   b.Page,
			"action": strings.ToLower(action),
			"text":   b.Summary(30),
		}).Debug("edit queued")
	}

	return e.Prompt.Confirm("Edit more blocks?")
}

func (e *Editor) logger() logrus.FieldLogger {
	if e.Log == nil {
		return logrus.StandardLogger()
	}
	return e.Log
}
