package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

func TestCreateUserNormalizesNameAndEmail(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	user, err := uc.CreateUser("  Ada Lovelace  ", "  Ada@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestCreateUserDuplicateEmailIsCaseInsensitive(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	_, err := uc.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)

	_, err = uc.CreateUser("Imposter", "ADA@EXAMPLE.COM")
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestCreateUserEmptyName(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	_, err := uc.CreateUser("   ", "ada@example.com")
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestUpdateUserKeepsOwnEmail(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	user, err := uc.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)

	// Same address, different case: not a conflict with itself.
	updated, err := uc.UpdateUser(user.ID, "Ada L.", "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestUpdateUserToTakenEmail(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	_, err := uc.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)
	other, err := uc.CreateUser("Grace", "grace@example.com")
	require.NoError(t, err)

	_, err = uc.UpdateUser(other.ID, "Grace", "ada@example.com")
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestUpdateUserNotFound(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	_, err := uc.UpdateUser(99, "Nobody", "nobody@example.com")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestDeleteUser(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), testLogger())

	user, err := uc.CreateUser("Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUser(user.ID))

	err = uc.DeleteUser(user.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
