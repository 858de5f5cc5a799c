// Package inmemdb provides map-backed repositories with the same semantics as
// the postgres backend. Used as a hermetic double in tests.
package inmemdb

import (
	"sync"

	"github.com/erlanggafajar/nilai-ict/core/grade"
	"github.com/erlanggafajar/nilai-ict/core/user"
)

type DB struct {
	user  *userTable
	grade *gradeTable
}

func Open() (*DB, error) {
	return &DB{
		user:  &userTable{table: make(map[int]*user.User)},
		grade: &gradeTable{table: make(map[int]*grade.StudentScore)},
	}, nil
}

type userTable struct {
	mutex sync.RWMutex
	table map[int]*user.User
	pk    int
}

type gradeTable struct {
	mutex sync.RWMutex
	table map[int]*grade.StudentScore
	pk    int
}
