package domain

import (
	"github.com/google/wire"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/healthcheck"
	"abled.ai/abled-api-gateway/app/domain/note"
	"abled.ai/abled-api-gateway/app/domain/subject"
	"abled.ai/abled-api-gateway/app/domain/user"
)

var ServiceProvider = wire.NewSet(
	adaptation.NewAdaptationService,
	user.NewService,
	auth.NewAuthService,
	note.NewService,
	subject.NewService,
	healthcheck.NewService,
)
