//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package store archives cleared expressions in a bbolt database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoMatchingExpression is returned when a query finds no archived
// expression.
var ErrNoMatchingExpression = errors.New("no matching expression")

const bucketExpression = "expression"

// initDB holds the setup steps run on every opened database.
var initDB = map[string](func(*bolt.Tx) error){}

// Store is the archive of cleared expressions.
type Store interface {
	NextExpressionSeq() (int, error)
	AddExpression(latex string) (int, error)
	DelExpression(seq int) error
	Expression(seq int) (string, error)
	Expressions(from, upto int) ([]Expression, error)
	Close() error
}

// Expression is an archived expression.
type Expression struct {
	Latex string
	Seq   int
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database at path, creating it if necessary.
func NewStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB wraps an open database, running the setup steps in one
// transaction.
func NewStoreFromDB(db *bolt.DB) (Store, error) {
	st := &dbStore{db: db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
