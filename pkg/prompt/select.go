package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Candidate is a PDF found in the working directory
type Candidate struct {
	Path    string
	ModTime time.Time
}

// FindPDFs lists the *.pdf files of dir (any letter case), newest first
func FindPDFs(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var found []Candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		found = append(found, Candidate{Path: filepath.Join(dir, entry.Name()), ModTime: info.ModTime()})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].ModTime.After(found[j].ModTime)
	})
	return found, nil
}

// SelectPDF offers the newest PDF in dir and falls back to a numbered list.
// Enter, y or yes accept the newest file; an empty answer in the list does too.
func (p *Prompter) SelectPDF(dir string) (string, error) {
	found, err := FindPDFs(dir)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoPDF, dir)
	}

	latest := found[0]
	answer, err := p.Ask(fmt.Sprintf("Newest PDF: %s\nPress Enter to use it, or n to list all: ", filepath.Base(latest.Path)))
	if err != nil {
		return "", err
	}
	switch strings.ToLower(answer) {
	case "", "y", "yes":
		return latest.Path, nil
	}

	p.Println("\nPDF files:")
	for i, c := range found {
		p.Printf("[%d] %s (modified: %s)\n", i+1, filepath.Base(c.Path), c.ModTime.Format("2006-01-02 15:04:05"))
	}

	for {
		answer, err := p.Ask(fmt.Sprintf("File number (1-%d): ", len(found)))
		if err != nil {
			return "", err
		}
		if answer == "" {
			p.Println("Using the newest file")
			return latest.Path, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			p.Println("Please enter a number")
			continue
		}
		if n < 1 || n > len(found) {
			p.Println("Number out of range")
			continue
		}
		return found[n-1].Path, nil
	}
}
