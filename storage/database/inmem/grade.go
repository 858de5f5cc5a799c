package inmemdb

import (
	"context"
	"sort"

	"github.com/erlanggafajar/nilai-ict/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) CreateScore(_ context.Context, score grade.StudentScore) (grade.StudentScore, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pk++
	score.ID = repo.db.pk
	repo.db.table[score.ID] = &score
	return score, nil
}

func (repo *gradeRepository) QueryAllScores(_ context.Context) ([]grade.StudentScore, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	scores := make([]grade.StudentScore, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		scores = append(scores, *s)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].NamaSiswa < scores[j].NamaSiswa })
	return scores, nil
}

func (repo *gradeRepository) GetScoreByID(_ context.Context, id int) (grade.StudentScore, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if score, ok := repo.db.table[id]; ok {
		return *score, nil
	}
	return grade.StudentScore{}, grade.ErrNotFound
}

func (repo *gradeRepository) UpdateScore(_ context.Context, score grade.StudentScore) (grade.StudentScore, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[score.ID]; !ok {
		return grade.StudentScore{}, grade.ErrNotFound
	}
	repo.db.table[score.ID] = &score
	return score, nil
}

func (repo *gradeRepository) DeleteScore(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return grade.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
