package csv

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const snapshotDateLayout = "20060102"

// SnapshotName is the dated file name of base on day.
func SnapshotName(base string, day time.Time) string {
	return base + "_" + day.Format(snapshotDateLayout) + ".csv"
}

// WriteSnapshot writes t as <base>.csv in dir. When dated is set it also
// writes <base>_<YYYYMMDD>.csv for day and removes older dated copies of the
// same base; a rerun on the same day overwrites.
func WriteSnapshot(dir, base string, day time.Time, dated bool, t Table) error {
	if err := WriteTable(filepath.Join(dir, base+".csv"), t); err != nil {
		return err
	}
	if !dated {
		return nil
	}
	name := SnapshotName(base, day)
	if err := WriteTable(filepath.Join(dir, name), t); err != nil {
		return err
	}
	removeOldSnapshots(dir, base, name)
	return nil
}

func removeOldSnapshots(dir, base, keep string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("snapshot.list.error", "dir", dir, "error", err)
		return
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == keep || !isSnapshotOf(name, base) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			slog.Warn("snapshot.remove.error", "file", name, "error", err)
			continue
		}
		slog.Info("snapshot.remove", "file", name)
	}
}

// isSnapshotOf matches <base>_<8 digits>.csv only, so that e.g. the pivot of
// another year is never taken for an old snapshot.
func isSnapshotOf(name, base string) bool {
	stamp, ok := strings.CutPrefix(name, base+"_")
	if !ok {
		return false
	}
	stamp, ok = strings.CutSuffix(stamp, ".csv")
	if !ok || len(stamp) != len(snapshotDateLayout) {
		return false
	}
	_, err := time.Parse(snapshotDateLayout, stamp)
	return err == nil
}
