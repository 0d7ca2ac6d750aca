package treehash_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/physalialabs/primitives/treehash"
)

// checksumAlg is a minimal digest algorithm for exercising the batch
// machinery: parents fold their children, leaves fold position and element.
// The poison value makes any digest touching it fail.
type checksumAlg struct{}

const poison = uint64(0xdead)

var errPoisoned = errors.New("poisoned input")

func (checksumAlg) Arity() int { return 3 }

func (checksumAlg) Digest(children []uint64) (uint64, error) {
	var sum uint64
	for _, c := range children {
		if c == poison {
			return 0, errPoisoned
		}
		sum = sum*31 + c
	}
	return sum, nil
}

func (checksumAlg) DigestLeaf(pos uint64, elem uint64) (uint64, error) {
	if elem == poison {
		return 0, errPoisoned
	}
	return pos*31 + elem, nil
}

func nodeJobs(n int) []*treehash.NodeJob[uint64] {
	jobs := make([]*treehash.NodeJob[uint64], n)
	for i := range jobs {
		v := uint64(i)
		jobs[i] = &treehash.NodeJob[uint64]{Children: []uint64{v, v + 1, v + 2}}
	}
	return jobs
}

func TestBatchDigestNodesMatchesSerial(t *testing.T) {
	alg := checksumAlg{}
	batch := treehash.NewBatchDigester[uint64, uint64, uint64](alg)

	// Large enough to take the parallel path.
	jobs := nodeJobs(64)
	require.NoError(t, batch.DigestNodes(jobs))

	for _, job := range jobs {
		want, err := alg.Digest(job.Children)
		require.NoError(t, err)
		assert.NoError(t, job.Err)
		assert.Equal(t, want, job.Result)
	}
}

func TestBatchDigestLeavesMatchesSerial(t *testing.T) {
	alg := checksumAlg{}
	batch := treehash.NewBatchDigester[uint64, uint64, uint64](alg)

	jobs := make([]*treehash.LeafJob[uint64, uint64, uint64], 64)
	for i := range jobs {
		jobs[i] = &treehash.LeafJob[uint64, uint64, uint64]{Pos: uint64(i), Elem: uint64(i * 7)}
	}
	require.NoError(t, batch.DigestLeaves(jobs))

	for _, job := range jobs {
		want, err := alg.DigestLeaf(job.Pos, job.Elem)
		require.NoError(t, err)
		assert.NoError(t, job.Err)
		assert.Equal(t, want, job.Result)
	}
}

func TestBatchSmallAndEmpty(t *testing.T) {
	batch := treehash.NewBatchDigester[uint64, uint64, uint64](checksumAlg{})

	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single", 1},
		{"serial threshold", 2},
		{"just parallel", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := nodeJobs(tt.n)
			require.NoError(t, batch.DigestNodes(jobs))
			for _, job := range jobs {
				want, err := checksumAlg{}.Digest(job.Children)
				require.NoError(t, err)
				assert.Equal(t, want, job.Result)
			}
		})
	}
}

func TestBatchPropagatesFirstError(t *testing.T) {
	batch := treehash.NewBatchDigester[uint64, uint64, uint64](checksumAlg{})

	jobs := nodeJobs(16)
	jobs[11].Children = []uint64{1, poison, 3}

	err := batch.DigestNodes(jobs)
	require.ErrorIs(t, err, errPoisoned)

	// The failure is confined to its job; the rest still computed.
	require.ErrorIs(t, jobs[11].Err, errPoisoned)
	for i, job := range jobs {
		if i == 11 {
			continue
		}
		assert.NoError(t, job.Err)
		assert.NotZero(t, job.Result)
	}
}

func TestBatchLeafError(t *testing.T) {
	batch := treehash.NewBatchDigester[uint64, uint64, uint64](checksumAlg{})

	jobs := []*treehash.LeafJob[uint64, uint64, uint64]{
		{Pos: 0, Elem: 1},
		{Pos: 1, Elem: poison},
	}
	err := batch.DigestLeaves(jobs)
	require.ErrorIs(t, err, errPoisoned)
	assert.NoError(t, jobs[0].Err)
}

func TestBatchWorkerCap(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{"single worker", 1},
		{"more workers than jobs", 128},
		{"nonpositive clamps to one", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := treehash.NewBatchDigester[uint64, uint64, uint64](
				checksumAlg{}, treehash.MaxWorkers(tt.workers))

			jobs := nodeJobs(9)
			require.NoError(t, batch.DigestNodes(jobs))
			for _, job := range jobs {
				want, err := checksumAlg{}.Digest(job.Children)
				require.NoError(t, err)
				assert.Equal(t, want, job.Result)
			}
		})
	}
}
