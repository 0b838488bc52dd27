package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// scoreLine is the text placed on the clipboard by the copy key.
func scoreLine(score, best int) string {
	return fmt.Sprintf("Snake score: %d (best %d)", score, best)
}

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
