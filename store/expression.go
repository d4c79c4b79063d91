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
package store

import (
	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize expression table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketExpression))
		return err
	}
}

// NextExpressionSeq returns the sequence number the next archived expression
// will get.
func (s *dbStore) NextExpressionSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpression))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddExpression archives markup and returns its sequence number.
func (s *dbStore) AddExpression(latex string) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpression))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(latex))
	})
	return int(seq), err
}

// DelExpression deletes the archived expression with the given sequence
// number.
func (s *dbStore) DelExpression(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpression))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Expression returns the markup archived under seq.
func (s *dbStore) Expression(seq int) (string, error) {
	var latex string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpression))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingExpression
		}
		latex = string(v)
		return nil
	})
	return latex, err
}

// Expressions returns the archived expressions with sequence numbers in
// [from, upto).
func (s *dbStore) Expressions(from, upto int) ([]Expression, error) {
	var expressions []Expression
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketExpression)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			expressions = append(expressions, Expression{Latex: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return expressions, err
}
