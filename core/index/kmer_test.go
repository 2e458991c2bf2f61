// core/index/kmer_test.go
package index

import (
	"path/filepath"
	"reflect"
	"testing"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Build(4, []Transcript{
		{Name: "t1", Seq: []byte("AAAATTTT")},
		{Name: "t2", Seq: []byte("CCCCGGGG")},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return ix
}

func TestBuildRejectsBadK(t *testing.T) {
	if _, err := Build(0, nil); err == nil {
		t.Fatal("expected error for k=0")
	}
}

func TestMapReadSingleTranscript(t *testing.T) {
	ix := testIndex(t)
	hit, ok := ix.MapRead([]byte("AAAATTTT"))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Coverage != 5 { // 5 windows, all indexed for t1
		t.Errorf("coverage = %d, want 5", hit.Coverage)
	}
	if want := []uint32{0}; !reflect.DeepEqual(hit.EqClass, want) {
		t.Errorf("eq class = %v, want %v", hit.EqClass, want)
	}
}

func TestMapReadDisjointTranscripts(t *testing.T) {
	ix := testIndex(t)
	// AAAA hits t1 only, CCCC hits t2 only: the intersection is empty.
	hit, ok := ix.MapRead([]byte("AAAACCCC"))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Coverage != 2 {
		t.Errorf("coverage = %d, want 2", hit.Coverage)
	}
	if len(hit.EqClass) != 0 {
		t.Errorf("eq class = %v, want empty", hit.EqClass)
	}
}

func TestMapReadMiss(t *testing.T) {
	ix := testIndex(t)
	if _, ok := ix.MapRead([]byte("NNNNNNNN")); ok {
		t.Error("expected miss for foreign sequence")
	}
	if _, ok := ix.MapRead([]byte("AA")); ok {
		t.Error("expected miss for read shorter than k")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ix := testIndex(t)
	fn := filepath.Join(t.TempDir(), "transcriptome.idx")
	if err := ix.Save(fn); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(fn)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.K != ix.K || !reflect.DeepEqual(got.Transcripts, ix.Transcripts) {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, ix)
	}
	hit, ok := got.MapRead([]byte("CCCCGGGG"))
	if !ok || !reflect.DeepEqual(hit.EqClass, []uint32{1}) {
		t.Fatalf("loaded index maps wrong: %+v ok=%v", hit, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.idx")); err == nil {
		t.Fatal("expected error for missing index")
	}
}
