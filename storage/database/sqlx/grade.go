package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/erlanggafajar/nilai-ict/core/grade"
)

type dbScore struct {
	ID        int       `db:"id"`
	NamaSiswa string    `db:"nama_siswa"`
	Kelas     string    `db:"kelas"`
	Tugas1    float64   `db:"tugas1"`
	Tugas2    float64   `db:"tugas2"`
	Tugas3    float64   `db:"tugas3"`
	Ulangan1  float64   `db:"ulangan1"`
	Ulangan2  float64   `db:"ulangan2"`
	UTS       float64   `db:"uts"`
	UAS       float64   `db:"uas"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s dbScore) unpack() grade.StudentScore {
	return grade.StudentScore{
		ID:        s.ID,
		NamaSiswa: s.NamaSiswa,
		Kelas:     s.Kelas,
		Tugas1:    s.Tugas1,
		Tugas2:    s.Tugas2,
		Tugas3:    s.Tugas3,
		Ulangan1:  s.Ulangan1,
		Ulangan2:  s.Ulangan2,
		UTS:       s.UTS,
		UAS:       s.UAS,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

type gradeRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *sqlx.DB) *gradeRepository {
	return &gradeRepository{db: db}
}

func (repo gradeRepository) CreateScore(ctx context.Context, score grade.StudentScore) (grade.StudentScore, error) {
	err := repo.db.QueryRowContext(ctx,
		`INSERT INTO nilai_siswa (nama_siswa, kelas, tugas1, tugas2, tugas3, ulangan1, ulangan2, uts, uas, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		score.NamaSiswa, score.Kelas,
		score.Tugas1, score.Tugas2, score.Tugas3, score.Ulangan1, score.Ulangan2, score.UTS, score.UAS,
		score.CreatedAt, score.UpdatedAt,
	).Scan(&score.ID)
	if err != nil {
		return grade.StudentScore{}, errors.Wrap(err, "inserting score record")
	}
	return score, nil
}

func (repo gradeRepository) QueryAllScores(ctx context.Context) ([]grade.StudentScore, error) {
	var rows []dbScore
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM nilai_siswa ORDER BY nama_siswa`)
	if err != nil {
		return nil, errors.Wrap(err, "querying score records")
	}
	scores := make([]grade.StudentScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, row.unpack())
	}
	return scores, nil
}

func (repo gradeRepository) GetScoreByID(ctx context.Context, id int) (grade.StudentScore, error) {
	var row dbScore
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM nilai_siswa WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return grade.StudentScore{}, grade.ErrNotFound
		}
		return grade.StudentScore{}, errors.Wrap(err, "getting score record")
	}
	return row.unpack(), nil
}

func (repo gradeRepository) UpdateScore(ctx context.Context, score grade.StudentScore) (grade.StudentScore, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE nilai_siswa
		 SET nama_siswa = $1, kelas = $2, tugas1 = $3, tugas2 = $4, tugas3 = $5,
		     ulangan1 = $6, ulangan2 = $7, uts = $8, uas = $9, updated_at = $10
		 WHERE id = $11`,
		score.NamaSiswa, score.Kelas,
		score.Tugas1, score.Tugas2, score.Tugas3, score.Ulangan1, score.Ulangan2, score.UTS, score.UAS,
		score.UpdatedAt, score.ID,
	)
	if err != nil {
		return grade.StudentScore{}, errors.Wrap(err, "updating score record")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return grade.StudentScore{}, grade.ErrNotFound
	}
	return score, nil
}

func (repo gradeRepository) DeleteScore(ctx context.Context, id int) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM nilai_siswa WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting score record")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return grade.ErrNotFound
	}
	return nil
}
