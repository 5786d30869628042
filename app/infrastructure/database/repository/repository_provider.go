package repository

import (
	"github.com/google/wire"

	"abled.ai/abled-api-gateway/app/infrastructure/database/repository/noterepo"
	"abled.ai/abled-api-gateway/app/infrastructure/database/repository/subjectrepo"
	"abled.ai/abled-api-gateway/app/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	noterepo.NewNoteGormRepository,
	subjectrepo.NewSubjectGormRepository,
)
