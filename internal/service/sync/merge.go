package sync

import (
	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
)

// Merge reconciles a local attendance snapshot with a remote one.
// Records are keyed by (Nama, Tanggal). Completeness wins: the remote
// copy replaces the local one only when the remote has a check-out and
// the local does not. In every other conflict the local copy stands,
// because local writes may still be in flight to the remote side and
// must not be clobbered by an older remote view. Records found on only
// one side are kept. The result is sorted newest date first, check-in
// time ascending within a date. changed counts records the merge added
// or replaced relative to local.
func Merge(local, remote []absensi.Absensi) (merged []absensi.Absensi, changed int) {
	index := make(map[string]int, len(local))
	merged = make([]absensi.Absensi, len(local))
	copy(merged, local)
	for i, a := range merged {
		index[mergeKey(a)] = i
	}

	for _, r := range remote {
		i, ok := index[mergeKey(r)]
		if !ok {
			index[mergeKey(r)] = len(merged)
			merged = append(merged, r)
			changed++
			continue
		}
		if r.Complete() && !merged[i].Complete() {
			// Keep the local id; remote ids come from a different
			// sequence and must not leak into the local store.
			r.ID = merged[i].ID
			merged[i] = r
			changed++
		}
	}

	localdb.SortAbsensi(merged)
	return merged, changed
}

func mergeKey(a absensi.Absensi) string {
	return a.Nama + "|" + a.Tanggal
}
