package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aetherium/battle-api/internal/errors"
	characterrepo "github.com/aetherium/battle-api/internal/repositories/character"
	"github.com/aetherium/battle-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    characterrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := testutils.CreateTestCharacter("char-1")

	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "char-1"})
	s.Require().NoError(err)

	s.Equal(char.ID, out.Character.ID)
	s.Equal(char.Name, out.Character.Name)
	s.Equal(char.Class, out.Character.Class)
	s.Equal(char.Attributes, out.Character.Attributes)
	s.True(char.CreatedAt.Equal(out.Character.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateRejected() {
	char := testutils.CreateTestCharacter("char-1")

	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "char-404"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, characterrepo.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
