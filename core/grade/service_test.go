package grade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erlanggafajar/nilai-ict/core/grade"
	inmemdb "github.com/erlanggafajar/nilai-ict/storage/database/inmem"
)

func setup(t *testing.T) *grade.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return grade.NewService(inmemdb.NewGradeRepository(db))
}

func newScore(nama, kelas string, v float64) grade.NewStudentScore {
	return grade.NewStudentScore{
		NamaSiswa: nama,
		Kelas:     kelas,
		Tugas1:    v, Tugas2: v, Tugas3: v, Ulangan1: v, Ulangan2: v, UTS: v, UAS: v,
	}
}

func TestService_CreateAndGet(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newScore("Budi", "XI-A", 80))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budi", got.NamaSiswa)
	assert.InDelta(t, 80, got.NilaiAkhir(), 1e-9)

	_, err = svc.GetByID(ctx, 999)
	assert.Equal(t, grade.ErrNotFound, err)
}

func TestService_QueryAll_orderedByName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	for _, nama := range []string{"Citra", "Andi", "Budi"} {
		_, err := svc.Create(ctx, newScore(nama, "XI-A", 75))
		require.NoError(t, err)
	}

	scores, err := svc.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, "Andi", scores[0].NamaSiswa)
	assert.Equal(t, "Budi", scores[1].NamaSiswa)
	assert.Equal(t, "Citra", scores[2].NamaSiswa)
}

func TestService_Update(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newScore("Budi", "XI-A", 60))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, newScore("Budi", "XI-B", 90))
	require.NoError(t, err)
	assert.Equal(t, "XI-B", updated.Kelas)
	assert.InDelta(t, 90, updated.NilaiAkhir(), 1e-9)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, 999, newScore("X", "Y", 50))
	assert.Equal(t, grade.ErrNotFound, err)
}

func TestService_Delete(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newScore("Budi", "XI-A", 70))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, grade.ErrNotFound, err)

	assert.Equal(t, grade.ErrNotFound, svc.Delete(ctx, created.ID))
}
