package main

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

var errClipboardEmpty = errors.New("clipboard has no text")

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// clipboardReady initializes the system clipboard on first use. Headless
// sessions without a display fail here and copy/paste is disabled.
func clipboardReady() error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	return clipboardErr
}

func copyText(text string) error {
	if err := clipboardReady(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func pasteText() (string, error) {
	if err := clipboardReady(); err != nil {
		return "", err
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", errClipboardEmpty
	}
	return string(data), nil
}
