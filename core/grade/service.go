package grade

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("score record not found")

type (
	Repository interface {
		CreateScore(ctx context.Context, score StudentScore) (StudentScore, error)
		// QueryAllScores returns all records ordered by student name.
		QueryAllScores(ctx context.Context) ([]StudentScore, error)
		GetScoreByID(ctx context.Context, id int) (StudentScore, error)
		UpdateScore(ctx context.Context, score StudentScore) (StudentScore, error)
		DeleteScore(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewStudentScore) (StudentScore, error) {
	now := time.Now().UTC()
	score := StudentScore{
		NamaSiswa: ns.NamaSiswa,
		Kelas:     ns.Kelas,
		Tugas1:    ns.Tugas1,
		Tugas2:    ns.Tugas2,
		Tugas3:    ns.Tugas3,
		Ulangan1:  ns.Ulangan1,
		Ulangan2:  ns.Ulangan2,
		UTS:       ns.UTS,
		UAS:       ns.UAS,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateScore(ctx, score)
}

func (svc *Service) QueryAll(ctx context.Context) ([]StudentScore, error) {
	return svc.repo.QueryAllScores(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (StudentScore, error) {
	return svc.repo.GetScoreByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int, ns NewStudentScore) (StudentScore, error) {
	score, err := svc.repo.GetScoreByID(ctx, id)
	if err != nil {
		return StudentScore{}, err
	}
	score.NamaSiswa = ns.NamaSiswa
	score.Kelas = ns.Kelas
	score.Tugas1 = ns.Tugas1
	score.Tugas2 = ns.Tugas2
	score.Tugas3 = ns.Tugas3
	score.Ulangan1 = ns.Ulangan1
	score.Ulangan2 = ns.Ulangan2
	score.UTS = ns.UTS
	score.UAS = ns.UAS
	score.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateScore(ctx, score)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteScore(ctx, id)
}
