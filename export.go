package heartbloom

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gocarina/gocsv"
)

// PointRecord is one CSV row of an exported snapshot.
type PointRecord struct {
	Index int     `csv:"index"`
	Flow  bool    `csv:"flow"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	R     float64 `csv:"r"`
	G     float64 `csv:"g"`
	B     float64 `csv:"b"`
}

// SnapshotRecords converts snap into one record per particle. Particles at
// index heartCount and above are flagged as flow particles. When world is
// set, positions are passed through the snapshot's field transform.
func SnapshotRecords(snap Snapshot, heartCount int, world bool) []PointRecord {
	n := snap.Len()
	records := make([]PointRecord, n)
	m := snap.Transform.Matrix()
	for i := range records {
		j := i * 3
		x, y, z := snap.Positions[j], snap.Positions[j+1], snap.Positions[j+2]
		if world {
			v := m.Mul4x1(mgl64.Vec4{x, y, z, 1})
			x, y, z = v[0], v[1], v[2]
		}
		records[i] = PointRecord{
			Index: i,
			Flow:  i >= heartCount,
			X:     x,
			Y:     y,
			Z:     z,
			R:     snap.Colors[j],
			G:     snap.Colors[j+1],
			B:     snap.Colors[j+2],
		}
	}
	return records
}

// WriteSnapshotCSV writes snap as CSV with a header row.
func WriteSnapshotCSV(w io.Writer, snap Snapshot, heartCount int, world bool) error {
	records := SnapshotRecords(snap, heartCount, world)
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing snapshot csv: %w", err)
	}
	return nil
}
