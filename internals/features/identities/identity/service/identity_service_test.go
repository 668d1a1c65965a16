package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"bantal_backend/internals/features/identities/identity/dto"
	"bantal_backend/internals/features/identities/identity/model"
	"bantal_backend/internals/features/identities/identity/service"
	helper "bantal_backend/internals/helpers"
	"bantal_backend/internals/testutil"
)

type IdentitySyncSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *service.Service
	fx  testutil.Fixtures
	ctx context.Context
}

func (s *IdentitySyncSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.svc = service.New(s.db)
	s.fx = testutil.SeedFixtures(s.T(), s.db)
	s.ctx = context.Background()
}

func (s *IdentitySyncSuite) TestUnknownEmailIsForbidden() {
	_, err := s.svc.ValidateAndSync(s.ctx, dto.SSOClaims{Subject: "kc-1", Email: "asing@bantal.test"})
	s.ErrorIs(err, helper.ErrForbidden)

	_, err = s.svc.ValidateAndSync(s.ctx, dto.SSOClaims{Subject: "kc-1"})
	s.ErrorIs(err, helper.ErrForbidden)
}

func (s *IdentitySyncSuite) TestInactiveIsForbidden() {
	_, err := s.svc.SetActive(s.ctx, s.fx.Identity.IdentityID, false)
	s.Require().NoError(err)

	_, err = s.svc.ValidateAndSync(s.ctx, dto.SSOClaims{Subject: "kc-1", Email: s.fx.Identity.IdentityEmail})
	s.ErrorIs(err, helper.ErrForbidden)
}

func (s *IdentitySyncSuite) TestSubjectIsSyncedCaseInsensitively() {
	got, err := s.svc.ValidateAndSync(s.ctx, dto.SSOClaims{
		Subject:           "kc-1",
		Email:             "  " + strings.ToUpper(s.fx.Identity.IdentityEmail),
		PreferredUsername: "tester",
	})
	s.Require().NoError(err)
	s.Require().NotNil(got.IdentityKeycloakID)
	s.Equal("kc-1", *got.IdentityKeycloakID)

	got, err = s.svc.ValidateAndSync(s.ctx, dto.SSOClaims{Subject: "kc-2", Email: s.fx.Identity.IdentityEmail})
	s.Require().NoError(err)
	s.Equal("kc-2", *got.IdentityKeycloakID)

	var stored model.Identity
	s.Require().NoError(s.db.Where("identity_id = ?", s.fx.Identity.IdentityID).Take(&stored).Error)
	s.Equal("kc-2", *stored.IdentityKeycloakID)
	s.Require().NotNil(stored.IdentityPreferredUsername)
	s.Equal("tester", *stored.IdentityPreferredUsername)
}

func TestIdentitySyncSuite(t *testing.T) {
	suite.Run(t, new(IdentitySyncSuite))
}
