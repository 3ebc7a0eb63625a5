package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepo_FindContactByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM contacts c WHERE c.user_id").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "first_name", "middle_name", "last_name", "emails", "account_emails"}).
			AddRow("contact-1", "user-1", "Ada", "", "Lovelace", []string{}, []string{"ada@accounts.example"}))

	contact, err := repo.FindContactByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "ada@accounts.example", contact.PrimaryEmail())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepo_FindContactByUserID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM contacts").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "first_name", "middle_name", "last_name", "emails", "account_emails"}))

	contact, err := repo.FindContactByUserID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, contact)
}

func TestContactRepo_FindContactByUserID_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewContactRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM contacts").
		WithArgs("user-1").
		WillReturnError(errors.New("timeout"))

	contact, err := repo.FindContactByUserID(context.Background(), "user-1")
	assert.Error(t, err)
	assert.Nil(t, contact)
}
