package grade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentScore_NilaiAkhir(t *testing.T) {
	tests := []struct {
		name  string
		score StudentScore
		want  float64
	}{
		{
			name:  "all equal",
			score: StudentScore{Tugas1: 80, Tugas2: 80, Tugas3: 80, Ulangan1: 80, Ulangan2: 80, UTS: 80, UAS: 80},
			want:  80,
		},
		{
			name:  "all zero",
			score: StudentScore{},
			want:  0,
		},
		{
			name:  "mixed",
			score: StudentScore{Tugas1: 70, Tugas2: 75, Tugas3: 80, Ulangan1: 85, Ulangan2: 90, UTS: 95, UAS: 100},
			want:  85,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.score.NilaiAkhir(), 1e-9)
		})
	}
}

func TestStudentScore_Predikat(t *testing.T) {
	uniform := func(v float64) StudentScore {
		return StudentScore{Tugas1: v, Tugas2: v, Tugas3: v, Ulangan1: v, Ulangan2: v, UTS: v, UAS: v}
	}
	tests := []struct {
		nilai float64
		want  string
	}{
		{nilai: 100, want: PredikatA},
		{nilai: 85, want: PredikatA},
		{nilai: 84.9, want: PredikatB},
		{nilai: 75, want: PredikatB},
		{nilai: 74.9, want: PredikatC},
		{nilai: 65, want: PredikatC},
		{nilai: 64.9, want: PredikatD},
		{nilai: 0, want: PredikatD},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uniform(tt.nilai).Predikat(), "nilai %v", tt.nilai)
	}
}

func TestStudentScore_MarshalJSON(t *testing.T) {
	score := StudentScore{
		ID:        1,
		NamaSiswa: "Budi",
		Kelas:     "XI-A",
		Tugas1:    90, Tugas2: 90, Tugas3: 90, Ulangan1: 90, Ulangan2: 90, UTS: 90, UAS: 90,
	}

	data, err := json.Marshal(score)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Budi", out["nama_siswa"])
	assert.InDelta(t, 90, out["nilai_akhir"], 1e-9)
	assert.Equal(t, PredikatA, out["predikat"])
}
