package genfix

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// SourceProvider supplies an explicit file list: from stdin when piped,
// otherwise from the clipboard.
type SourceProvider struct{}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{}
}

func (sp *SourceProvider) GetFileList() ([]string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		c, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return ParseFileList(string(c)), nil
	}

	c, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	return ParseFileList(c), nil
}

// ParseFileList splits newline-separated paths, dropping blanks.
func ParseFileList(content string) []string {
	var paths []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		paths = append(paths, trimmed)
	}
	return paths
}
