package moderation

import (
	"bufio"
	"bytes"
	"chat-flex/errors"
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed words
var defaultWords embed.FS

const (
	CensoredDir = "words/censored"
	BlockedDir  = "words/blocked"
)

// WordList carries the result of the loading process including metadata for logging.
type WordList struct {
	Words     []string
	Languages []string
}

// WordLoader reads word lists from a filesystem, one file per language.
type WordLoader struct {
	fs fs.FS
}

func NewWordLoader(f fs.FS) *WordLoader {
	return &WordLoader{fs: f}
}

// DefaultWordLoader reads the word lists embedded in the binary.
func DefaultWordLoader() *WordLoader {
	return NewWordLoader(defaultWords)
}

// LoadAll scans dir for .txt files, each one being the dictionary of a language
// named after the file (e.g. "fr.txt" -> "fr"), and returns the unique words.
func (l *WordLoader) LoadAll(dir string) (*WordList, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})
	var words []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// bufio handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if _, seen := unique[line]; seen {
				continue
			}
			unique[line] = struct{}{}
			words = append(words, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return &WordList{Words: words, Languages: languages}, nil
}
