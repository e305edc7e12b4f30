package frequency_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"

	"grocer/internal/frequency"
)

func newTracker(t *testing.T, input string) (*frequency.Tracker, frequency.Paths) {
	t.Helper()
	dir := t.TempDir()
	paths := frequency.Paths{
		Input:  filepath.Join(dir, "input.txt"),
		Backup: filepath.Join(dir, "frequency.dat"),
	}
	if err := os.WriteFile(paths.Input, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return frequency.New(paths), paths
}

func mustInitialize(t *testing.T, tracker *frequency.Tracker) {
	t.Helper()
	if err := tracker.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
}

func readBackup(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	return string(data)
}

func TestScenarioMixedCaseItems(t *testing.T) {
	tracker, paths := newTracker(t, "Apples\napples\nBANANA\napples")
	mustInitialize(t, tracker)

	want := []frequency.Entry{{Key: "apples", Count: 3}, {Key: "banana", Count: 1}}
	if got := tracker.ListAll(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ListAll = %+v, want %+v", got, want)
	}
	if got := tracker.Query("Apples"); got != 3 {
		t.Fatalf("Query(Apples) = %d, want 3", got)
	}
	wantRows := []frequency.HistogramRow{{Key: "apples", Bar: "***"}, {Key: "banana", Bar: "*"}}
	if got := tracker.HistogramRows('*'); !reflect.DeepEqual(got, wantRows) {
		t.Fatalf("HistogramRows = %+v, want %+v", got, wantRows)
	}
	if got := readBackup(t, paths.Backup); got != "apples 3\nbanana 1\n" {
		t.Fatalf("unexpected backup content %q", got)
	}
}

func TestQueryIgnoresCase(t *testing.T) {
	tracker, _ := newTracker(t, "Zucchini peas ZUCCHINI Peas zucchini")
	mustInitialize(t, tracker)

	for _, variant := range []string{"zucchini", "ZUCCHINI", "Zucchini", "zUcChInI"} {
		if got := tracker.Query(variant); got != 3 {
			t.Errorf("Query(%q) = %d, want 3", variant, got)
		}
	}
	for _, variant := range []string{"peas", "PEAS", "pEaS"} {
		if got := tracker.Query(variant); got != 2 {
			t.Errorf("Query(%q) = %d, want 2", variant, got)
		}
	}
}

func TestQueryUsesFirstTokenOnly(t *testing.T) {
	tracker, _ := newTracker(t, "green beans green")
	mustInitialize(t, tracker)

	if got := tracker.Query("  Green beans  "); got != 2 {
		t.Fatalf("Query(multi-word) = %d, want 2", got)
	}
	if got := tracker.Query("\tbeans\n"); got != 1 {
		t.Fatalf("Query(trimmed) = %d, want 1", got)
	}
}

func TestQueryNotFoundIsZero(t *testing.T) {
	tracker, _ := newTracker(t, "apples")
	mustInitialize(t, tracker)
	before := tracker.ListAll()

	for _, raw := range []string{"nonexistent-item", "", "   "} {
		if got := tracker.Query(raw); got != 0 {
			t.Errorf("Query(%q) = %d, want 0", raw, got)
		}
	}
	if after := tracker.ListAll(); !reflect.DeepEqual(before, after) {
		t.Fatalf("query altered table: before %+v after %+v", before, after)
	}
}

func TestCountConservation(t *testing.T) {
	input := "a b  c\n\nA\tB\r\nd e f g\va\fz"
	tracker, _ := newTracker(t, input)
	mustInitialize(t, tracker)

	sum := 0
	for _, entry := range tracker.ListAll() {
		sum += entry.Count
	}
	if want := len(strings.Fields(input)); sum != want {
		t.Fatalf("sum of counts = %d, want %d", sum, want)
	}
	if tracker.Total() != sum {
		t.Fatalf("Total() = %d, want %d", tracker.Total(), sum)
	}
}

func TestKeysAreNormalized(t *testing.T) {
	tracker, _ := newTracker(t, "  Pre-Cut\tCAN'T\nÉCLAIR onions. \n")
	mustInitialize(t, tracker)

	for _, entry := range tracker.ListAll() {
		if entry.Key == "" {
			t.Fatal("empty key in table")
		}
		if strings.TrimSpace(entry.Key) != entry.Key {
			t.Fatalf("key %q has surrounding whitespace", entry.Key)
		}
		if strings.ContainsAny(entry.Key, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			t.Fatalf("key %q is not lowercased", entry.Key)
		}
		if entry.Count < 1 {
			t.Fatalf("key %q has count %d", entry.Key, entry.Count)
		}
	}
	if tracker.Query("can't") != 1 || tracker.Query("pre-cut") != 1 || tracker.Query("onions.") != 1 {
		t.Fatalf("punctuation should be kept verbatim: %+v", tracker.ListAll())
	}
	if tracker.Query("Éclair") != 1 {
		t.Fatalf("non-ASCII letters should be kept verbatim: %+v", tracker.ListAll())
	}
}

func TestAscendingOrder(t *testing.T) {
	tracker, _ := newTracker(t, "pears Apples cherries apples BANANAS 10 2 zucchini")
	mustInitialize(t, tracker)

	entries := tracker.ListAll()
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly ascending: %q", keys)
		}
	}

	rows := tracker.HistogramRows('#')
	rowKeys := make([]string, 0, len(rows))
	for _, row := range rows {
		rowKeys = append(rowKeys, row.Key)
	}
	if !slices.Equal(keys, rowKeys) {
		t.Fatalf("histogram order %q differs from listing order %q", rowKeys, keys)
	}

	var iterKeys []string
	for key := range tracker.All() {
		iterKeys = append(iterKeys, key)
	}
	if !slices.Equal(keys, iterKeys) {
		t.Fatalf("All() order %q differs from listing order %q", iterKeys, keys)
	}
}

func TestHistogramRowsSymbol(t *testing.T) {
	tracker, _ := newTracker(t, "kale kale onions")
	mustInitialize(t, tracker)

	rows := tracker.HistogramRows('#')
	if rows[0].Bar != "##" || rows[1].Bar != "#" {
		t.Fatalf("unexpected bars: %+v", rows)
	}
	rows = tracker.HistogramRows(0)
	if rows[0].Bar != "**" {
		t.Fatalf("expected default symbol, got %+v", rows)
	}
	rows = tracker.HistogramRows('█')
	if rows[0].Bar != "██" {
		t.Fatalf("expected multi-byte symbol repeated, got %+v", rows)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	tracker, paths := newTracker(t, "Spinach radishes spinach Cranberries radishes Spinach")
	mustInitialize(t, tracker)

	// Expand each "<key> <count>" line back into count tokens and reload.
	var expanded strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(readBackup(t, paths.Backup), "\n"), "\n") {
		key, countText, ok := strings.Cut(line, " ")
		if !ok {
			t.Fatalf("malformed backup line %q", line)
		}
		count, err := strconv.Atoi(countText)
		if err != nil {
			t.Fatalf("malformed count in %q: %v", line, err)
		}
		for range count {
			expanded.WriteString(key)
			expanded.WriteByte('\n')
		}
	}

	reloaded, reloadedPaths := newTracker(t, expanded.String())
	mustInitialize(t, reloaded)

	if !reflect.DeepEqual(tracker.ListAll(), reloaded.ListAll()) {
		t.Fatalf("round trip mismatch: %+v vs %+v", tracker.ListAll(), reloaded.ListAll())
	}
	if readBackup(t, paths.Backup) != readBackup(t, reloadedPaths.Backup) {
		t.Fatal("expected identical backup files after round trip")
	}
}

func TestPersistOverwritesExistingBackup(t *testing.T) {
	tracker, paths := newTracker(t, "beets")
	if err := os.WriteFile(paths.Backup, []byte("stale 99\nlines 42\n"), 0o644); err != nil {
		t.Fatalf("seed backup: %v", err)
	}
	mustInitialize(t, tracker)

	if got := readBackup(t, paths.Backup); got != "beets 1\n" {
		t.Fatalf("expected backup to be overwritten, got %q", got)
	}
}

func TestEmptySource(t *testing.T) {
	tracker, paths := newTracker(t, "")
	mustInitialize(t, tracker)

	if !tracker.Loaded() {
		t.Fatal("expected tracker to be loaded")
	}
	if got := tracker.ListAll(); len(got) != 0 {
		t.Fatalf("expected empty listing, got %+v", got)
	}
	if got := tracker.HistogramRows('*'); len(got) != 0 {
		t.Fatalf("expected empty histogram, got %+v", got)
	}
	if got := readBackup(t, paths.Backup); got != "" {
		t.Fatalf("expected empty backup, got %q", got)
	}
}

func TestLoadMissingSource(t *testing.T) {
	dir := t.TempDir()
	tracker := frequency.New(frequency.Paths{
		Input:  filepath.Join(dir, "missing.txt"),
		Backup: filepath.Join(dir, "frequency.dat"),
	})

	err := tracker.Initialize()
	if !errors.Is(err, frequency.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if tracker.Loaded() {
		t.Fatal("tracker should stay unloaded")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "frequency.dat")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("backup must not be written after a failed load, stat err %v", statErr)
	}
}

func TestLoadUnreadableSource(t *testing.T) {
	dir := t.TempDir()
	tracker := frequency.New(frequency.Paths{Input: dir, Backup: filepath.Join(dir, "frequency.dat")})

	if err := tracker.Load(); !errors.Is(err, frequency.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable for a directory, got %v", err)
	}
}

func TestFailedReloadKeepsTable(t *testing.T) {
	tracker, paths := newTracker(t, "leeks leeks")
	mustInitialize(t, tracker)

	if err := os.Remove(paths.Input); err != nil {
		t.Fatalf("remove input: %v", err)
	}
	if err := tracker.Load(); !errors.Is(err, frequency.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if got := tracker.Query("leeks"); got != 2 {
		t.Fatalf("expected previous table kept, Query = %d", got)
	}
}

func TestReloadReplacesTable(t *testing.T) {
	tracker, paths := newTracker(t, "leeks leeks")
	mustInitialize(t, tracker)

	if err := os.WriteFile(paths.Input, []byte("garlic"), 0o644); err != nil {
		t.Fatalf("rewrite input: %v", err)
	}
	if err := tracker.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []frequency.Entry{{Key: "garlic", Count: 1}}
	if got := tracker.ListAll(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected table to be replaced, got %+v", got)
	}
}

func TestPersistMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("apples"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	tracker := frequency.New(frequency.Paths{Input: input, Backup: filepath.Join(dir, "missing", "frequency.dat")})

	err := tracker.Initialize()
	if !errors.Is(err, frequency.ErrSinkUnavailable) {
		t.Fatalf("expected ErrSinkUnavailable, got %v", err)
	}
	if got := tracker.Query("apples"); got != 1 {
		t.Fatalf("persist failure must not alter the table, Query = %d", got)
	}
}

func TestPersistWithLock(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("apples apples"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	lockPath := filepath.Join(dir, "state", "backup.lock")
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		t.Fatalf("mkdir state: %v", err)
	}
	backup := filepath.Join(dir, "frequency.dat")
	tracker := frequency.New(frequency.Paths{Input: input, Backup: backup}, frequency.WithLockPath(lockPath))
	mustInitialize(t, tracker)

	if got := readBackup(t, backup); got != "apples 2\n" {
		t.Fatalf("unexpected backup %q", got)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}
}

func TestUnloadedTracker(t *testing.T) {
	tracker := frequency.New(frequency.Paths{})

	if tracker.Loaded() {
		t.Fatal("expected unloaded tracker")
	}
	if got := tracker.Query("apples"); got != 0 {
		t.Fatalf("Query on unloaded tracker = %d", got)
	}
	if got := tracker.ListAll(); len(got) != 0 {
		t.Fatalf("ListAll on unloaded tracker = %+v", got)
	}
	if got := tracker.HistogramRows('*'); len(got) != 0 {
		t.Fatalf("HistogramRows on unloaded tracker = %+v", got)
	}
	if err := tracker.Persist(); !errors.Is(err, frequency.ErrNotLoaded) {
		t.Fatalf("Persist on unloaded tracker: %v", err)
	}
}

func TestLoadFromHandlesByteOrderMarks(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "Apples\napples\n"...)},
		{"utf16le bom", utf16LE("Apples\napples\n")},
		{"no bom", []byte("Apples\napples\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := frequency.New(frequency.Paths{})
			tokens, err := tracker.LoadFrom(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			if tokens != 2 {
				t.Fatalf("tokens = %d, want 2", tokens)
			}
			want := []frequency.Entry{{Key: "apples", Count: 2}}
			if got := tracker.ListAll(); !reflect.DeepEqual(got, want) {
				t.Fatalf("ListAll = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadFromKeepsInvalidUTF8Bytes(t *testing.T) {
	tracker := frequency.New(frequency.Paths{})
	if _, err := tracker.LoadFrom(bytes.NewReader([]byte("caf\xe9 CAF\xe9"))); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got := tracker.Query("caf\xe9"); got != 2 {
		t.Fatalf("expected raw bytes kept verbatim, got %+v", tracker.ListAll())
	}
}

func TestWriteToMatchesBackupFormat(t *testing.T) {
	tracker := frequency.New(frequency.Paths{})
	if _, err := tracker.LoadFrom(strings.NewReader("b a b c b")); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	var buf bytes.Buffer
	n, err := tracker.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := "a 1\nb 3\nc 1\n"
	if buf.String() != want || n != int64(len(want)) {
		t.Fatalf("WriteTo = %q (%d bytes), want %q", buf.String(), n, want)
	}
}

func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func ExampleTracker_HistogramRows() {
	tracker := frequency.New(frequency.Paths{})
	_, _ = tracker.LoadFrom(strings.NewReader("Apples\napples\nBANANA\napples"))
	for _, row := range tracker.HistogramRows('*') {
		fmt.Println(row.Key, row.Bar)
	}
	// Output:
	// apples ***
	// banana *
}

func TestLoadLongToken(t *testing.T) {
	long := strings.Repeat("X", 2<<20)
	tracker, _ := newTracker(t, long+" apples "+long)
	mustInitialize(t, tracker)

	if got := tracker.Query(strings.ToLower(long)); got != 2 {
		t.Fatalf("Query(long token) = %d, want 2", got)
	}
	if got := tracker.Query("apples"); got != 1 {
		t.Fatalf("Query(apples) = %d, want 1", got)
	}
}

func TestPersistThroughSymlinkKeepsMode(t *testing.T) {
	tracker, paths := newTracker(t, "a b a")
	target := filepath.Join(filepath.Dir(paths.Backup), "real.dat")
	if err := os.WriteFile(target, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("seed target: %v", err)
	}
	if err := os.Chmod(target, 0o600); err != nil {
		t.Fatalf("chmod target: %v", err)
	}
	if err := os.Symlink(target, paths.Backup); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	mustInitialize(t, tracker)

	if got := readBackup(t, target); got != "a 2\nb 1\n" {
		t.Fatalf("link target content = %q", got)
	}
	info, err := os.Lstat(paths.Backup)
	if err != nil {
		t.Fatalf("lstat backup: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatal("backup symlink was replaced by a regular file")
	}
	info, err = os.Stat(target)
	if err != nil {
		t.Fatalf("stat target: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("target mode = %v, want 0600", info.Mode().Perm())
	}
}
