package grade

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/erlanggafajar/nilai-ict/core"
)

// Final grade predicates.
const (
	PredikatA = "A"
	PredikatB = "B"
	PredikatC = "C"
	PredikatD = "D"
)

// StudentScore is one student's ICT scores for a class: three assignments
// (tugas), two quizzes (ulangan), the mid-term (UTS) and the final exam (UAS).
type StudentScore struct {
	ID        int       `json:"id"`
	NamaSiswa string    `json:"nama_siswa"`
	Kelas     string    `json:"kelas"`
	Tugas1    float64   `json:"tugas1"`
	Tugas2    float64   `json:"tugas2"`
	Tugas3    float64   `json:"tugas3"`
	Ulangan1  float64   `json:"ulangan1"`
	Ulangan2  float64   `json:"ulangan2"`
	UTS       float64   `json:"uts"`
	UAS       float64   `json:"uas"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NilaiAkhir is the final grade: the arithmetic mean of the seven components.
func (s StudentScore) NilaiAkhir() float64 {
	return (s.Tugas1 + s.Tugas2 + s.Tugas3 + s.Ulangan1 + s.Ulangan2 + s.UTS + s.UAS) / 7
}

func (s StudentScore) Predikat() string {
	switch na := s.NilaiAkhir(); {
	case na >= 85:
		return PredikatA
	case na >= 75:
		return PredikatB
	case na >= 65:
		return PredikatC
	default:
		return PredikatD
	}
}

// MarshalJSON includes the computed final grade and predicate.
func (s StudentScore) MarshalJSON() ([]byte, error) {
	type alias StudentScore
	return json.Marshal(struct {
		alias
		NilaiAkhir float64 `json:"nilai_akhir"`
		Predikat   string  `json:"predikat"`
	}{
		alias:      alias(s),
		NilaiAkhir: s.NilaiAkhir(),
		Predikat:   s.Predikat(),
	})
}

// NewStudentScore contains information needed to record a student's scores.
type NewStudentScore struct {
	NamaSiswa string  `json:"nama_siswa" validate:"required"`
	Kelas     string  `json:"kelas" validate:"required"`
	Tugas1    float64 `json:"tugas1" validate:"gte=0,lte=100"`
	Tugas2    float64 `json:"tugas2" validate:"gte=0,lte=100"`
	Tugas3    float64 `json:"tugas3" validate:"gte=0,lte=100"`
	Ulangan1  float64 `json:"ulangan1" validate:"gte=0,lte=100"`
	Ulangan2  float64 `json:"ulangan2" validate:"gte=0,lte=100"`
	UTS       float64 `json:"uts" validate:"gte=0,lte=100"`
	UAS       float64 `json:"uas" validate:"gte=0,lte=100"`
}

func (ns *NewStudentScore) Validate(validate *validator.Validate) error {
	ns.NamaSiswa = core.CleanString(ns.NamaSiswa)
	ns.Kelas = core.CleanString(ns.Kelas)
	return validate.Struct(ns)
}
