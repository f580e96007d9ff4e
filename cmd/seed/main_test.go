package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/db"
	"gatepass/internal/model"
	"gatepass/internal/repository"
	"gatepass/internal/service"
)

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - username: prof
    role: Faculty
    password: pw
  - username: guard
    role: security
    password_env: GUARD_PASSWORD
`), 0o600))

	users, err := loadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "prof", users[0].Username)
	assert.Equal(t, "Faculty", users[0].Role)
	assert.Equal(t, "GUARD_PASSWORD", users[1].PasswordEnv)

	_, err = loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeedUsers(t *testing.T) {
	gormDB, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	userRepo := repository.NewUserRepository(gormDB)
	credentials := service.NewCredentialService(userRepo)
	ctx := context.Background()

	t.Setenv("GUARD_PASSWORD", "from-env")
	users := []SeedUser{
		{Username: "prof", Role: "faculty", Password: "pw"},
		{Username: "guard", Role: "security", Password: "ignored", PasswordEnv: "GUARD_PASSWORD"},
	}

	created, existing, err := seedUsers(ctx, credentials, users)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Zero(t, existing)

	created, existing, err = seedUsers(ctx, credentials, users)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 2, existing)

	guard, ok, err := credentials.Verify(ctx, "guard", "from-env")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.RoleSecurity, guard.Role)

	_, _, err = seedUsers(ctx, credentials, []SeedUser{{Username: "x", Role: "admin", Password: "pw"}})
	assert.Error(t, err)
}
