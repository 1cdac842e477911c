// Copyright (c) 2024 The gbfcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package funcarchive_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/preagonal/gbfcore/funcarchive"
)

// archiveSuite exercises an Archive across a sequence of Store/Lookup/Len
// calls sharing one fixture, mirroring the teacher's suite-based test
// structure for stateful fixtures.
type archiveSuite struct {
	suite.Suite
	ar *funcarchive.Archive
	h1 funcarchive.Hash
	h2 funcarchive.Hash
}

func (s *archiveSuite) SetupTest() {
	s.ar = funcarchive.New()
	s.h1 = funcarchive.HashFunction(sampleFunction(1))
	s.h2 = funcarchive.HashFunction(sampleFunction(2))
}

func (s *archiveSuite) TestEmptyArchiveMisses() {
	_, ok := s.ar.Lookup(s.h1)
	s.False(ok)
	s.Equal(0, s.ar.Len())
}

func (s *archiveSuite) TestStoringTwoDistinctHashesKeepsBothRetrievable() {
	s.ar.Store(s.h1, "f1", "return 1;\n")
	s.ar.Store(s.h2, "f2", "return 2;\n")
	s.Equal(2, s.ar.Len())

	source, ok := s.ar.Lookup(s.h1)
	s.True(ok)
	s.Equal("return 1;\n", source)
}

func (s *archiveSuite) TestReStoringTheSameHashOverwritesRatherThanDuplicates() {
	s.ar.Store(s.h1, "f1", "return 1;\n")
	s.ar.Store(s.h1, "f1-renamed", "return 1;\n")
	s.Equal(1, s.ar.Len())
}

func TestArchiveSuite(t *testing.T) {
	suite.Run(t, new(archiveSuite))
}
