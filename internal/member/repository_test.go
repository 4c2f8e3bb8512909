package member

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumns = []string{"id", "discount", "posts_limit_per_month"}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(memberColumns).
			AddRow("basic", 2.3, 20).
			AddRow("business", 7.7, 100)

		mock.ExpectQuery("SELECT id, discount, posts_limit_per_month FROM member_types ORDER BY id ASC").
			WillReturnRows(rows)

		res, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, Basic, res[0].ID)
		assert.Equal(t, 7.7, res[1].Discount)
		assert.Equal(t, int32(100), res[1].PostsLimitPerMonth)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM member_types").
			WillReturnRows(sqlmock.NewRows(memberColumns))

		res, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM member_types").
			WillReturnError(errors.New("db error"))

		res, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM member_types WHERE id = \\$1").
			WithArgs(Business).
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow("business", 7.7, 100))

		res, err := repo.GetByID(context.Background(), Business)
		require.NoError(t, err)
		assert.Equal(t, Business, res.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM member_types WHERE id = \\$1").
			WithArgs(Basic).
			WillReturnError(sql.ErrNoRows)

		res, err := repo.GetByID(context.Background(), Basic)
		assert.ErrorIs(t, err, ErrMemberTypeNotFound)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
