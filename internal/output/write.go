// Package output writes assembled subjects, sorted oligos and run reports to the filesystem.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/demux"
	log "github.com/sirupsen/logrus"
)

const (
	condensedSuffix  = "_condensed.txt"
	translatedSuffix = "_translated.txt"
)

// CondensedPath is where a subject's assembled DNA is written.
func CondensedPath(dir, subject string) string {
	return filepath.Join(dir, subject+condensedSuffix)
}

// TranslatedPath is where a subject's translated text is written.
func TranslatedPath(dir, subject string) string {
	return filepath.Join(dir, subject+translatedSuffix)
}

// WriteSubjects writes two files per subject to dir, creating it if needed:
// the assembled DNA and its translation, followed by a newline. A subject
// with nothing assembled gets two empty files.
func WriteSubjects(dir string, assemblies map[string]demux.Assembly, translate codon.Translator) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	var written []string
	for _, subject := range demux.SortedSubjects(assemblies) {
		seq := assemblies[subject].Sequence

		condensed := CondensedPath(dir, subject)
		if err := os.WriteFile(condensed, []byte(seq), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", condensed, err)
		}
		written = append(written, condensed)

		var text string
		if seq != "" {
			text = translate(seq) + "\n"
		}
		translated := TranslatedPath(dir, subject)
		if err := os.WriteFile(translated, []byte(text), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", translated, err)
		}
		written = append(written, translated)

		log.Debugf("wrote subject %s (%d bases)", subject, len(seq))
	}
	return written, nil
}
