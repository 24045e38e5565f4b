package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, returning what was written to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(RootCmd)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return stdout.String(), err
}

// resetFlags restores every flag to its default, since commands outlive a single test
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeReads writes a gzipped FASTQ of seqs to dir
func writeReads(t *testing.T, dir string, seqs ...string) string {
	t.Helper()

	var fq strings.Builder
	for i, seq := range seqs {
		fmt.Fprintf(&fq, "@M00001:1:000000000-A1B2C:1:1101:%d:1000 1:N:0:1\n%s\n+\n%s\n", i, seq, strings.Repeat("F", len(seq)))
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(fq.String()))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "merged.fastq.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func read(subject, oligo, text string) string {
	return "TGTC" + codon.Encode(subject) + "TGAT" + codon.Encode(oligo) + codon.Encode(text)
}

func fixture(t *testing.T) (dir, in string) {
	dir = t.TempDir()
	in = writeReads(t, dir,
		read("01", "000", "Hello, "),
		"CA"+read("01", "000", "Hello, "),
		read("01", "000", "Hellx, "),
		read("01", "001", "World"),
		read("01", "003", "!"),
		read("01", "004", "?"),
		read("02", "000", "DNA"),
		strings.Replace(read("02", "000", "DNA"), "A", "N", 1),
		"ACGTACGTACGTACGTACGTACGTACGTACGT",
	)
	return dir, in
}

func TestAssembleCmd(t *testing.T) {
	dir, in := fixture(t)
	out := filepath.Join(dir, "results")

	stdout, err := execute(t, "assemble", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "7 of 9 reads accepted")

	got, err := os.ReadFile(output.TranslatedPath(out, "01"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", string(got))

	got, err = os.ReadFile(output.CondensedPath(out, "02"))
	require.NoError(t, err)
	assert.Equal(t, codon.Encode("DNA"), string(got))

	raw, err := os.ReadFile(filepath.Join(out, "report.json"))
	require.NoError(t, err)
	var report output.Report
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, 9, report.Reads)
	assert.Equal(t, map[string]int{"bad-base": 1, "no-marker": 1}, report.Rejected)
	require.Len(t, report.Subjects, 2)
	assert.Equal(t, "003", report.Subjects[0].BreakAt)
	assert.Equal(t, []string{"004"}, report.Subjects[0].Dropped)
}

func TestAssembleCmdStrict(t *testing.T) {
	dir, in := fixture(t)
	out := filepath.Join(dir, "strict")
	report := filepath.Join(dir, "report.yaml")

	_, err := execute(t, "assemble", "-i", in, "-o", out, "-r", report, "--strict")
	require.NoError(t, err)

	got, err := os.ReadFile(output.TranslatedPath(out, "01"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World\n", string(got))
	assert.FileExists(t, report)
}

func TestAssembleCmdStrictThenDefault(t *testing.T) {
	dir, in := fixture(t)

	_, err := execute(t, "assemble", "-i", in, "-o", filepath.Join(dir, "strict"), "--strict")
	require.NoError(t, err)

	out := filepath.Join(dir, "default")
	_, err = execute(t, "assemble", "-i", in, "-o", out)
	require.NoError(t, err)

	got, err := os.ReadFile(output.TranslatedPath(out, "01"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", string(got))
}

func TestAssembleCmdEmptyPayload(t *testing.T) {
	dir := t.TempDir()
	in := writeReads(t, dir, read("05", "000", ""))
	out := filepath.Join(dir, "out")

	_, err := execute(t, "assemble", "-i", in, "-o", out)
	require.NoError(t, err)

	got, err := os.ReadFile(output.TranslatedPath(out, "05"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssembleCmdSettings(t *testing.T) {
	dir, in := fixture(t)
	out := filepath.Join(dir, "from-settings")
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte(fmt.Sprintf("in: %s\nout: %s\nreport-format: yaml\n", in, out)), 0644))

	_, err := execute(t, "assemble", "--settings", settings)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "report.yaml"))
	assert.FileExists(t, output.CondensedPath(out, "01"))
}

func TestAssembleCmdMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "assemble", "--in", filepath.Join(dir, "nope.fastq.gz"), "--out", dir)
	assert.Error(t, err)
}

func TestSortCmd(t *testing.T) {
	dir, in := fixture(t)
	tree := filepath.Join(dir, "tree")

	_, err := execute(t, "sort", "--in", in, "--tree", tree)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(tree, "01", "000.txt"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(got), "\n"))
	assert.FileExists(t, filepath.Join(tree, "02", "000.txt"))
}

func TestTranslateCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"tag", []string{"translate", "TGTCTCTTTCTATGATTCTTTCTTTCTG"}, "#01$002\n", false},
		{"split args are joined", []string{"decode", "TGTC", "TGAT"}, "#$\n", false},
		{"partial codon", []string{"translate", "TGT"}, "", true},
		{"encode", []string{"encode", "#01$002"}, "TGTCTCTTTCTATGATTCTTTCTTTCTG\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocsCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	_, err := execute(t, "docs", dir)
	require.NoError(t, err)

	root, err := os.ReadFile(filepath.Join(dir, "asciidna.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(root), "---\nlayout: default\ntitle: asciidna\n"))

	assemble, err := os.ReadFile(filepath.Join(dir, "asciidna_assemble.md"))
	require.NoError(t, err)
	assert.Contains(t, string(assemble), "parent: asciidna")
	assert.NoFileExists(t, filepath.Join(dir, "asciidna_docs.md"))
}
