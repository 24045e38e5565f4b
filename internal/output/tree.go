package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/demux"
	log "github.com/sirupsen/logrus"
)

// oligoFile is an open <subject>/<oligo>.txt file
type oligoFile struct {
	f *os.File
	w *bufio.Writer
}

// WriteTree sorts reads into a directory tree without building a consensus:
// the payload of every accepted read is appended, one per line, to
// <dir>/<subject>/<oligo>.txt. Rejected reads are skipped.
func WriteTree(dir string, src demux.ReadSource, translate codon.Translator) (stats demux.Stats, err error) {
	stats.Rejected = make(map[demux.Reject]int)

	if err = os.MkdirAll(dir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create tree directory %s: %w", dir, err)
	}

	files := make(map[string]*oligoFile)
	defer func() {
		for path, of := range files {
			if ferr := of.w.Flush(); ferr != nil && err == nil {
				err = fmt.Errorf("failed to write %s: %w", path, ferr)
			}
			if cerr := of.f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	for src.Scan() {
		stats.Reads++

		read := demux.Read{Header: src.Header(), Seq: src.Seq()}
		tag, reject := demux.Extract(read, translate)
		if reject != demux.Accepted {
			stats.Rejected[reject]++
			continue
		}
		stats.Accepted++

		path := filepath.Join(dir, tag.SubjectID, tag.OligoID+".txt")
		of, ok := files[path]
		if !ok {
			if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return stats, fmt.Errorf("failed to create subject directory: %w", err)
			}
			f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if ferr != nil {
				return stats, fmt.Errorf("failed to open %s: %w", path, ferr)
			}
			of = &oligoFile{f: f, w: bufio.NewWriter(f)}
			files[path] = of
			log.Debugf("created %s", path)
		}

		if _, err = of.w.WriteString(tag.Payload + "\n"); err != nil {
			return stats, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if serr := src.Err(); serr != nil {
		return stats, fmt.Errorf("failed reading after %d reads: %w", stats.Reads, serr)
	}
	return stats, nil
}
