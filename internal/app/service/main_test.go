package service

import (
	"os"
	"testing"

	"codecade/internal/common/security"
	"codecade/internal/platform/config"
)

func TestMain(m *testing.M) {
	config.Load()
	security.InitJWT()
	os.Exit(m.Run())
}
