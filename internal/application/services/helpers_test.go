package services_test

import "github.com/DanielPopoola/coinledger/internal/application"

func hasCode(err error, code string) bool {
	svcErr, ok := application.IsServiceError(err)
	return ok && svcErr.Code == code
}
